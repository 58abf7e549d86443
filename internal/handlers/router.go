package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "Pong!")
	})

	// Public Routes
	r.POST("/signup", h.Signup)
	r.POST("/token", h.CreateToken)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(h.BearerAuth())
	{
		authorized.POST("/links", h.CreateLink)
		authorized.DELETE("/links/:short_url", h.DeleteLink)
	}

	// Catch-all Redirects
	r.GET("/:short_url", h.Redirect)
	r.GET("/:short_url/qr", h.QRCode)

	return r
}
