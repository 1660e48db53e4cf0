package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centrodrinks/internal/domain"
)

type locationPutRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Address   string   `json:"address"`
}

func locationGetHandler(locations locationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc, err := locations.Get(c.Request.Context(), uidFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, loc)
	}
}

func locationPutHandler(locations locationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req locationPutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}

		coord := domain.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
		loc, err := locations.Save(c.Request.Context(), uidFrom(c), coord, req.Address)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, loc)
	}
}
