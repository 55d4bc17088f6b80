// Package web holds the storefront page templates.
package web

import "embed"

//go:embed templates
var Templates embed.FS
