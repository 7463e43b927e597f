package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/teacher-reviews/backend/internal/domain"
	"github.com/teacher-reviews/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// errorResponse writes the error envelope and records the error on the
// context so the transaction middleware rolls the request back.
func errorResponse(c *gin.Context, err error) {
	apiErr := domain.WrapError(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		errorResponse(c, domain.NewValidationError([]string{err.Error()}))
		return
	}

	messages := make([]string, len(verr))
	for i, ferr := range verr {
		messages[i] = msgForTag(ferr.Field(), ferr.Tag(), ferr.Param())
	}
	errorResponse(c, domain.NewValidationError(messages))
}

func msgForTag(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("The %s field is required", field)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("The %s field must be at most %s", field, param)
	}
	return fmt.Sprintf("The %s field is invalid", field)
}
