package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// registerRegistry mounts the five CRUD routes of one parent registry.
// Req is the validated request body, converted to attributes A; each stored
// T is rendered through toResponse.
func registerRegistry[T any, A any, Req any, Resp any](
	g *echo.Group,
	path, entityType string,
	registry Registry[T, A],
	toAttrs func(Req) A,
	toResponse func(T) Resp,
) {
	g.POST(path, func(c echo.Context) error {
		var req Req
		if err := bindBody(c, &req); err != nil {
			return err
		}

		entity, err := registry.Create(c.Request().Context(), toAttrs(req))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, toResponse(entity))
	})

	g.GET(path, func(c echo.Context) error {
		entities, err := registry.List(c.Request().Context())
		if err != nil {
			return err
		}

		response := make([]Resp, len(entities))
		for i, entity := range entities {
			response[i] = toResponse(entity)
		}
		return c.JSON(http.StatusOK, response)
	})

	g.GET(path+"/:id", func(c echo.Context) error {
		id, err := pathID(c, "id", entityType)
		if err != nil {
			return err
		}

		entity, err := registry.Fetch(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toResponse(entity))
	})

	g.PUT(path+"/:id", func(c echo.Context) error {
		id, err := pathID(c, "id", entityType)
		if err != nil {
			return err
		}

		var req Req
		if err = bindBody(c, &req); err != nil {
			return err
		}

		entity, err := registry.Update(c.Request().Context(), id, toAttrs(req))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toResponse(entity))
	})

	g.DELETE(path+"/:id", func(c echo.Context) error {
		id, err := pathID(c, "id", entityType)
		if err != nil {
			return err
		}

		if err = registry.Delete(c.Request().Context(), id); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
}
