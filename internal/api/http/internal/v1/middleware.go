package v1

import (
	"context"
	"net/http"

	"github.com/teacher-reviews/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const basicRealm = `Basic realm="admin", charset="UTF-8"`

// transactionMiddleware scopes one database transaction to the request:
// committed when the handler chain recorded no errors, rolled back otherwise.
// Service-level transactions opened further down join this one.
func (h *Handler) transactionMiddleware(c *gin.Context) {
	//nolint:errcheck // the handler already wrote the error response
	_ = h.txManager.WithinTransaction(c.Request.Context(), func(ctx context.Context) error {
		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if len(c.Errors) > 0 {
			return c.Errors.Last().Err
		}
		return nil
	})
}

func (h *Handler) adminAuthMiddleware(c *gin.Context) {
	username, password, ok := c.Request.BasicAuth()
	if !ok {
		unauthorizedResponse(c)
		return
	}

	authenticated, err := h.services.AdminUsers.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		errorResponse(c, err)
		return
	}
	if !authenticated {
		unauthorizedResponse(c)
		return
	}

	c.Next()
}

func unauthorizedResponse(c *gin.Context) {
	c.Header("WWW-Authenticate", basicRealm)
	c.AbortWithStatusJSON(http.StatusUnauthorized, &domain.APIError{
		StatusCode:  http.StatusUnauthorized,
		Description: []string{"invalid credentials"},
	})
}
