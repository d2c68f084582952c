package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-contact-management/internal/application"
	"github.com/oksasatya/go-contact-management/internal/interface/middleware"
	"github.com/oksasatya/go-contact-management/pkg/response"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

// Create POST /api/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var req application.CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Get GET /api/contacts/:contactId
func (h *ContactHandler) Get(c *gin.Context) {
	res, err := h.Svc.Get(c.Request.Context(), middleware.CurrentUser(c), pathID(c, "contactId"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Update PUT /api/contacts/:contactId
func (h *ContactHandler) Update(c *gin.Context) {
	var req application.UpdateContactRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = pathID(c, "contactId")

	res, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Remove DELETE /api/contacts/:contactId
func (h *ContactHandler) Remove(c *gin.Context) {
	if err := h.Svc.Remove(c.Request.Context(), middleware.CurrentUser(c), pathID(c, "contactId")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "OK")
}

// Search GET /api/contacts?name=&email=&phone=&page=&size=
func (h *ContactHandler) Search(c *gin.Context) {
	req := application.SearchContactRequest{
		Name:  optionalQuery(c, "name"),
		Email: optionalQuery(c, "email"),
		Phone: optionalQuery(c, "phone"),
		Page:  intQuery(c, "page", application.DefaultPage),
		Size:  intQuery(c, "size", application.DefaultSize),
	}
	data, paging, err := h.Svc.Search(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Paged(c, data, paging)
}

func optionalQuery(c *gin.Context, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}

// intQuery returns def when key is absent and 0 when it is not a number.
func intQuery(c *gin.Context, key string, def int) int {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
