package httpserver

import (
	"net/http"

	alertsvc "github.com/Bart563/KBZ-Computers/internal/service/alert"
	"github.com/gin-gonic/gin"
)

func listAlertsHandler(svc *alertsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		alerts, err := svc.List(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"alerts": alerts, "count": len(alerts)})
	}
}

func createAlertHandler(svc *alertsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in alertsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		alert, err := svc.Create(c.Request.Context(), currentUser(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, alert)
	}
}

func deactivateAlertHandler(svc *alertsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Deactivate(c.Request.Context(), currentUser(c), c.Param("alertId")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
