package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"tixly/internal/shared/apperror"
)

// OK writes a 200 success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// BadRequest writes a 400 envelope for binding failures before a service is
// ever reached. Validator errors are flattened into per-field messages.
func BadRequest(c *gin.Context, message string, err error) {
	body := Envelope{Success: false, Message: message}
	if err != nil {
		body.Error = bindingDetail(err)
	}
	c.JSON(http.StatusBadRequest, body)
}

func bindingDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "uuid":
			details = append(details, fmt.Sprintf("%s must be a valid uuid", strings.ToLower(fe.Field())))
		case "email":
			details = append(details, fmt.Sprintf("%s must be a valid email address", strings.ToLower(fe.Field())))
		case "gte", "min":
			details = append(details, fmt.Sprintf("%s must be at least %s", strings.ToLower(fe.Field()), fe.Param()))
		case "gt":
			details = append(details, fmt.Sprintf("%s must be greater than %s", strings.ToLower(fe.Field()), fe.Param()))
		default:
			details = append(details, fmt.Sprintf("%s failed %s validation", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return strings.Join(details, "; ")
}

// Error translates a service error into its envelope and status code.
// Driver-level detail is only exposed outside release mode.
func Error(c *gin.Context, err error) {
	body := Envelope{
		Success: false,
		Message: apperror.Message(err),
	}
	if gin.Mode() != gin.ReleaseMode {
		body.Error = err.Error()
	}
	c.JSON(apperror.HTTPStatus(err), body)
}
