// Package api holds the HTTP contract of the paynow service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// DocsPath serves the raw OpenAPI document.
const DocsPath = "/docs/openapi.yaml"

//go:embed openapi.yaml
var document []byte

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string { return string(document) }

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// RegisterDocsRoutes exposes the registered document under /docs.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+DocsPath, func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "api document unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(doc))
	})
}
