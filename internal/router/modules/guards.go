package modules

import "github.com/gin-gonic/gin"

// Guards are the middleware chains shared by feature modules.
// Auth resolves the principal; the limiters may be pass-through.
type Guards struct {
	Auth        gin.HandlerFunc
	PublicLimit gin.HandlerFunc // per IP and path, unauthenticated routes
	UserLimit   gin.HandlerFunc // per username, after Auth
}

// protected returns a group under rg that requires a valid API token.
func (g Guards) protected(rg *gin.RouterGroup) *gin.RouterGroup {
	auth := rg.Group("/")
	auth.Use(g.Auth)
	if g.UserLimit != nil {
		auth.Use(g.UserLimit)
	}
	return auth
}

func (g Guards) public() []gin.HandlerFunc {
	if g.PublicLimit == nil {
		return nil
	}
	return []gin.HandlerFunc{g.PublicLimit}
}
