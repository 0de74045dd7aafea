package openapi

import _ "embed"

// Spec is the OpenAPI document the server code in this package was generated from.
//
//go:embed openapi.yaml
var Spec []byte
