package oidc

type Options struct {
	// Called once an external identity has been asserted, before it is
	// stored in the session
	OnLogin func(provider string, success bool)
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		OnLogin: func(provider string, success bool) {},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithOnLogin(fn func(provider string, success bool)) OptionFunc {
	return func(opts *Options) {
		opts.OnLogin = fn
	}
}
