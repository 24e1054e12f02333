package landing

import "embed"

// EmbeddedStatic contains the static files the landing page ships with:
// img/bear.jpg and css/landing.css.
//
//go:embed static
var EmbeddedStatic embed.FS
