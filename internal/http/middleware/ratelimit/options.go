package ratelimit

import (
	"net/http"
	"time"
)

type Options struct {
	TrustHeaders bool
	Interval     time.Duration
	MaxBurst     int
	CacheSize    int
	CacheTTL     time.Duration
	// Called when a client exceeds its quota
	OnLimited func(w http.ResponseWriter, r *http.Request)
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		TrustHeaders: false,
		Interval:     time.Second,
		MaxBurst:     10,
		CacheSize:    1024,
		CacheTTL:     10 * time.Minute,
		OnLimited: func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithTrustHeaders(trust bool) OptionFunc {
	return func(opts *Options) {
		opts.TrustHeaders = trust
	}
}

func WithRate(interval time.Duration, maxBurst int) OptionFunc {
	return func(opts *Options) {
		opts.Interval = interval
		opts.MaxBurst = maxBurst
	}
}

func WithCache(size int, ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
		opts.CacheTTL = ttl
	}
}

func WithOnLimited(fn func(w http.ResponseWriter, r *http.Request)) OptionFunc {
	return func(opts *Options) {
		opts.OnLimited = fn
	}
}
