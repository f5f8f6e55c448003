package context

import (
	"context"
	"net/url"
)

const (
	keyBaseURL    contextKey = "baseURL"
	keyCurrentURL contextKey = "currentURL"
)

func BaseURL(ctx context.Context) *url.URL {
	baseURL, ok := ctx.Value(keyBaseURL).(*url.URL)
	if !ok {
		return &url.URL{Path: "/"}
	}

	return clone(baseURL)
}

func SetBaseURL(ctx context.Context, baseURL *url.URL) context.Context {
	return context.WithValue(ctx, keyBaseURL, baseURL)
}

func CurrentURL(ctx context.Context) *url.URL {
	currentURL, ok := ctx.Value(keyCurrentURL).(*url.URL)
	if !ok {
		return &url.URL{Path: "/"}
	}

	return clone(currentURL)
}

func SetCurrentURL(ctx context.Context, currentURL *url.URL) context.Context {
	return context.WithValue(ctx, keyCurrentURL, currentURL)
}

func clone(u *url.URL) *url.URL {
	copy := *u
	if u.User != nil {
		user := *u.User
		copy.User = &user
	}
	return &copy
}
