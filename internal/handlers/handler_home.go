package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Home endpoint
// @Description Returns a simple service identification message
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "citrus ledger backend",
	})
}

// registerHomeRoutes registers the public home route
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", getHome)
}
