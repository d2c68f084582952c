package router

import "github.com/gin-gonic/gin"

// Module is a feature area (users, contacts) that mounts its routes on the
// /api group. Modules receive their services and guards at construction.
type Module interface {
	Register(api *gin.RouterGroup)
}
