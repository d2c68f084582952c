package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-contact-management/internal/interface/http"
)

// UserModule wires user HTTP handlers into routes
// Public: POST /api/users, POST /api/users/login
// Protected: GET|PATCH|DELETE /api/users/current
type UserModule struct {
	Handler *handlers.UserHandler
	Guards  Guards
}

func NewUserModule(h *handlers.UserHandler, g Guards) *UserModule {
	return &UserModule{Handler: h, Guards: g}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	public := m.Guards.public()
	rg.POST("/users", append(public, m.Handler.Register)...)
	rg.POST("/users/login", append(public, m.Handler.Login)...)

	auth := m.Guards.protected(rg)
	{
		auth.GET("/users/current", m.Handler.Get)
		auth.PATCH("/users/current", m.Handler.Update)
		auth.DELETE("/users/current", m.Handler.Logout)
	}
}
