package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func ordersHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.List(c.Request.Context(), uidFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

// trackHandler reports courier progress toward the user. When either
// coordinate is unknown the estimate fields are omitted and available is
// false; that is a normal state, not an error.
func trackHandler(track trackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		est, ok, err := track.Estimate(c.Request.Context(), uidFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		if !ok {
			c.JSON(http.StatusOK, gin.H{"available": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"available": true, "estimate": est})
	}
}
