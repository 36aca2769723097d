package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"parceltrack/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	titleNotFound       = "Resource Not Found"
	titleValidation     = "Validation Failed"
	titleIntegrity      = "Data Integrity Violation"
	titleInternal       = "Internal Server Error"
	internalFailureText = "an unexpected error occurred"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// NewErrorHandler maps the errs taxonomy onto HTTP statuses. Only 5xx
// failures are logged; their detail never reaches the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, title, message := classify(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		body := ErrorResponse{
			Timestamp: time.Now().UTC(),
			Status:    status,
			Error:     title,
			Message:   message,
			Path:      c.Request().URL.Path,
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
		}
	}
}

func classify(err error) (int, string, string) {
	var (
		fieldErrs validator.ValidationErrors
		notFound  *errs.ObjectNotFoundError
		httpErr   *echo.HTTPError
	)

	switch {
	case errors.As(err, &fieldErrs):
		return http.StatusBadRequest, titleValidation, fieldMessages(fieldErrs)
	case errors.As(err, &notFound):
		return http.StatusNotFound, titleNotFound, errs.NewObjectNotFoundError(notFound.ParamName, notFound.ID).Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, titleNotFound, err.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, titleValidation, strings.Join(strings.Split(err.Error(), "\n"), "; ")
	case errors.Is(err, errs.ErrIntegrityViolation):
		return http.StatusBadRequest, titleIntegrity, err.Error()
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, titleInternal, internalFailureText
		}
		return httpErr.Code, http.StatusText(httpErr.Code), fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, titleInternal, internalFailureText
	}
}

func fieldMessages(fieldErrs validator.ValidationErrors) string {
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Field()+": "+describe(fe))
	}
	return strings.Join(messages, "; ")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "email":
		return "must be a well-formed email address"
	case "max":
		return "size must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "uuid":
		return "must be a valid identifier"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
