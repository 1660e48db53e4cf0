package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centrodrinks/internal/catalog"
)

// productsHandler lists the catalog filtered by ?category= and ?search=.
func productsHandler(c *gin.Context) {
	category := c.DefaultQuery("category", catalog.CategoryAll)
	search := c.Query("search")

	items := catalog.Filter(catalog.Products(), category, search)

	c.JSON(http.StatusOK, gin.H{
		"products":   items,
		"categories": catalog.Categories,
	})
}
