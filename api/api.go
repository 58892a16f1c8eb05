// Package api holds the served API documents.
package api

import _ "embed"

//go:embed openapi.json
var OpenAPIDoc []byte
