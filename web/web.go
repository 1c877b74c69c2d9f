// Package web embeds the storefront page shell and its client script.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var files embed.FS

// Page returns the embedded page shell.
func Page() []byte {
	data, err := files.ReadFile("index.html")
	if err != nil {
		panic(err)
	}
	return data
}

// Static returns the client assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
