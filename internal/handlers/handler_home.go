package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "MOSS Payroll Backend API v1"})
}

// registerHomeRoutes registers the service banner route.
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/", getHome)
}
