package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-contact-management/internal/application"
	"github.com/oksasatya/go-contact-management/internal/domain/entity"
	"github.com/oksasatya/go-contact-management/pkg/response"
)

const (
	TokenHeader    = "X-API-TOKEN"
	CtxUserKey     = "user"
	CtxUsernameKey = "username"
)

// Authenticator resolves the principal behind an API token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// Auth reads the X-API-TOKEN header and resolves the user behind it.
// It sets the user and username in the Gin context on success.
func Auth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := auth.Authenticate(c.Request.Context(), c.GetHeader(TokenHeader))
		if err != nil {
			if errors.Is(err, application.ErrUnauthenticated) {
				response.Abort(c, http.StatusUnauthorized, "Unauthorized")
				return
			}
			_ = c.Error(err)
			response.Abort(c, http.StatusInternalServerError, "internal server error")
			return
		}

		c.Set(CtxUserKey, u)
		c.Set(CtxUsernameKey, u.Username)
		c.Next()
	}
}

// CurrentUser returns the principal set by Auth, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
