package common

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets/*
var assets embed.FS

// NewHandler serves the static assets shared by every page.
func NewHandler() http.Handler {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}

	return http.FileServerFS(sub)
}
