package local

import (
	"net/http"

	"github.com/bornholm/bbs/internal/http/middleware/authn"
)

type Options struct {
	PasswordEnabled bool
	Providers       []authn.Provider
	// Wraps the login form submission handler, rate limiting for example
	LoginMiddleware func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		PasswordEnabled: true,
		Providers:       make([]authn.Provider, 0),
		LoginMiddleware: func(h http.Handler) http.Handler { return h },
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithPasswordEnabled(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.PasswordEnabled = enabled
	}
}

func WithProviders(providers ...authn.Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithLoginMiddleware(middleware func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.LoginMiddleware = middleware
	}
}
