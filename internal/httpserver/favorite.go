package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type favoriteAddRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func favoritesListHandler(favorites favoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := favorites.List(c.Request.Context(), uidFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorites": list})
	}
}

func favoritesAddHandler(favorites favoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req favoriteAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}

		fav, err := favorites.Add(c.Request.Context(), uidFrom(c), req.ProductID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, fav)
	}
}

func favoritesRemoveHandler(favorites favoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := favorites.Remove(c.Request.Context(), uidFrom(c), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
