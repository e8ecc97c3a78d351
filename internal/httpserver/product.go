package httpserver

import (
	"net/http"
	"strings"

	catalogsvc "github.com/Bart563/KBZ-Computers/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), catalogsvc.Filter{
			Category: c.Query("category"),
			Brand:    c.Query("brand"),
			Query:    c.Query("q"),
			Sort:     c.Query("sort"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
	}
}

func getProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func compareTableHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.Query("ids"))
		if raw == "" {
			badRequest(c, "ids query parameter required")
			return
		}
		ids := strings.Split(raw, ",")
		for i := range ids {
			ids[i] = strings.TrimSpace(ids[i])
		}
		table, err := svc.Compare(c.Request.Context(), ids)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, table)
	}
}
