package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-contact-management/internal/interface/http"
)

// ContactModule wires contact and nested address routes; all are protected.
type ContactModule struct {
	Contacts  *handlers.ContactHandler
	Addresses *handlers.AddressHandler
	Guards    Guards
}

func NewContactModule(ch *handlers.ContactHandler, ah *handlers.AddressHandler, g Guards) *ContactModule {
	return &ContactModule{Contacts: ch, Addresses: ah, Guards: g}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	auth := m.Guards.protected(rg)
	{
		auth.POST("/contacts", m.Contacts.Create)
		auth.GET("/contacts", m.Contacts.Search)
		auth.GET("/contacts/:contactId", m.Contacts.Get)
		auth.PUT("/contacts/:contactId", m.Contacts.Update)
		auth.DELETE("/contacts/:contactId", m.Contacts.Remove)

		auth.POST("/contacts/:contactId/addresses", m.Addresses.Create)
		auth.GET("/contacts/:contactId/addresses", m.Addresses.List)
		auth.GET("/contacts/:contactId/addresses/:addressId", m.Addresses.Get)
		auth.PUT("/contacts/:contactId/addresses/:addressId", m.Addresses.Update)
		auth.DELETE("/contacts/:contactId/addresses/:addressId", m.Addresses.Remove)
	}
}
