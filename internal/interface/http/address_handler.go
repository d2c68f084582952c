package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-contact-management/internal/application"
	"github.com/oksasatya/go-contact-management/internal/interface/middleware"
	"github.com/oksasatya/go-contact-management/pkg/response"
)

type AddressHandler struct {
	Svc    *application.AddressService
	Logger *logrus.Logger
}

func NewAddressHandler(svc *application.AddressService, logger *logrus.Logger) *AddressHandler {
	return &AddressHandler{Svc: svc, Logger: logger}
}

// Create POST /api/contacts/:contactId/addresses
func (h *AddressHandler) Create(c *gin.Context) {
	var req application.CreateAddressRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ContactID = pathID(c, "contactId")

	res, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Get GET /api/contacts/:contactId/addresses/:addressId
func (h *AddressHandler) Get(c *gin.Context) {
	req := application.GetAddressRequest{
		ContactID: pathID(c, "contactId"),
		ID:        pathID(c, "addressId"),
	}
	res, err := h.Svc.Get(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Update PUT /api/contacts/:contactId/addresses/:addressId
func (h *AddressHandler) Update(c *gin.Context) {
	var req application.UpdateAddressRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ContactID = pathID(c, "contactId")
	req.ID = pathID(c, "addressId")

	res, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Remove DELETE /api/contacts/:contactId/addresses/:addressId
func (h *AddressHandler) Remove(c *gin.Context) {
	req := application.RemoveAddressRequest{
		ContactID: pathID(c, "contactId"),
		ID:        pathID(c, "addressId"),
	}
	if err := h.Svc.Remove(c.Request.Context(), middleware.CurrentUser(c), req); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "OK")
}

// List GET /api/contacts/:contactId/addresses
func (h *AddressHandler) List(c *gin.Context) {
	res, err := h.Svc.List(c.Request.Context(), middleware.CurrentUser(c), pathID(c, "contactId"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
