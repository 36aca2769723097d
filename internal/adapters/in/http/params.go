package http

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathID binds a simple-style path parameter and resolves it as a reference
// to entityType. An id that cannot be parsed is reported as not found.
func pathID(c echo.Context, name, entityType string) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return kernel.ReferenceFromString(entityType, raw)
}

// requiredQuery binds a form-style query parameter that must be present.
func requiredQuery(c echo.Context, name string) (string, error) {
	var v string
	if err := runtime.BindQueryParameter("form", true, true, name, c.QueryParams(), &v); err != nil {
		return "", errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return v, nil
}

// optionalQuery returns "" when the parameter is absent.
func optionalQuery(c echo.Context, name string) (string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

// bindBody decodes and validates a JSON request body.
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return c.Validate(dst)
}
