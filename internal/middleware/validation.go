package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/pkg/validation"
)

// BindJSON decodes and validates the request body into obj. On failure it writes a
// 400 envelope listing every invalid field and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleValidationError(c, err)
		return false
	}
	return true
}

// HandleValidationError writes the 400 envelope for a binding error
func HandleValidationError(c *gin.Context, err error) {
	resp := dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request format")

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]dto.FieldError, 0, len(verrs))
		for _, e := range verrs {
			details = append(details, dto.FieldError{
				Field:   jsonFieldName(e),
				Message: formatValidationError(e),
			})
		}
		resp = dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(details)
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

func jsonFieldName(e validator.FieldError) string {
	name := e.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := jsonFieldName(e)
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "gt":
		return field + " must be greater than " + e.Param()
	case "len":
		return field + " must be exactly " + e.Param() + " characters"
	case "email":
		return field + " must be a valid email address"
	case "numeric":
		return field + " must contain only digits"
	case "oneof":
		return field + " must be one of: " + e.Param()
	case "startswith":
		return field + " must start with " + e.Param()
	case validation.TagMobile:
		return field + " must be a 10 digit mobile number"
	case validation.TagEntityID:
		if e.Param() != "" {
			return field + " must be a " + e.Param() + " id"
		}
		return field + " must be a valid id"
	default:
		return field + " validation failed: " + e.Tag()
	}
}
