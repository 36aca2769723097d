package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const openAPIPath = "/api/v1/openapi.json"

//go:embed openapi.yml
var openAPIDocument []byte

// LoadOpenAPI parses and validates the embedded API document.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// RegisterDocs serves the document as JSON and the Swagger UI pointing at it.
func RegisterDocs(e *echo.Echo, doc *openapi3.T) {
	e.GET(openAPIPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL(openAPIPath)))
}
