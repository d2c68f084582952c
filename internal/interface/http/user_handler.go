package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-contact-management/internal/application"
	"github.com/oksasatya/go-contact-management/internal/interface/middleware"
	"github.com/oksasatya/go-contact-management/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Register POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req application.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Login POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req application.LoginUserRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Get GET /api/users/current
func (h *UserHandler) Get(c *gin.Context) {
	res, err := h.Svc.Get(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Update PATCH /api/users/current
func (h *UserHandler) Update(c *gin.Context) {
	var req application.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Logout DELETE /api/users/current
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context(), middleware.CurrentUser(c)); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "OK")
}
