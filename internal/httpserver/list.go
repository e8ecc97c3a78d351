package httpserver

import (
	"net/http"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	"github.com/gin-gonic/gin"
)

type toggleRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func listEntriesHandler(svc listService, kind domain.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := svc.List(c.Request.Context(), kind, currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": entries, "count": len(entries)})
	}
}

func toggleEntryHandler(svc listService, kind domain.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toggleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		entries, err := svc.Toggle(c.Request.Context(), kind, currentUser(c), req.ProductID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": entries, "count": len(entries)})
	}
}

func removeEntryHandler(svc listService, kind domain.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := svc.Remove(c.Request.Context(), kind, currentUser(c), c.Param("productId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": entries, "count": len(entries)})
	}
}

func clearEntriesHandler(svc listService, kind domain.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), kind, currentUser(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": []domain.ListEntry{}, "count": 0})
	}
}
