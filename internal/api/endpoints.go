// Copyright (c) 2026 Newswire. All rights reserved.

package api

import (
	_ "embed"
	"net/http"
)

// endpointsJSON is the static manifest describing every route this API serves.
// It is compiled into the binary so GET /api never touches the filesystem.
//
//go:embed endpoints.json
var endpointsJSON []byte

// EndpointsHandler serves the API manifest at GET /api.
func EndpointsHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write(endpointsJSON)
	}
}
