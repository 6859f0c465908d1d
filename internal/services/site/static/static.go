// Package static embeds the site's stylesheet and page script.
package static

import "embed"

//go:embed site.css site.js
var FS embed.FS
