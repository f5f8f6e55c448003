package url

import (
	"net/url"
	"path"
	"strings"
)

type MutationFunc func(u *url.URL)

// Mutate returns a modified copy of u.
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	copy := *u

	for _, fn := range funcs {
		fn(&copy)
	}

	return &copy
}

// WithPath appends the given segments to the url path.
func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		var trailing bool
		if len(paths) > 0 {
			last := paths[len(paths)-1]
			trailing = len(last) > 1 && strings.HasSuffix(last, "/")
		}

		joined := path.Join(append([]string{"/", u.Path}, paths...)...)
		if trailing && joined != "/" {
			joined += "/"
		}

		u.Path = joined
	}
}

// WithValues adds the given key/value pairs to the query string.
func WithValues(keyValues ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()

		for i := 0; i+1 < len(keyValues); i += 2 {
			query.Add(keyValues[i], keyValues[i+1])
		}

		u.RawQuery = query.Encode()
	}
}

// WithValuesReset removes every query parameter.
func WithValuesReset() MutationFunc {
	return func(u *url.URL) {
		u.RawQuery = ""
	}
}

// WithoutValues removes the given keys from the query string.
func WithoutValues(keys ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()

		for _, k := range keys {
			query.Del(k)
		}

		u.RawQuery = query.Encode()
	}
}
