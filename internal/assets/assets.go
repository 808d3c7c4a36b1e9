// Package assets embeds static files served by the API.
package assets

import _ "embed"

// DefaultPlayerImage is served when a proxied player image cannot be fetched.
//
//go:embed default-player.png
var DefaultPlayerImage []byte
