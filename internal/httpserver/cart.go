package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type cartAddRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type cartQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func cartViewHandler(cart cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := cart.View(c.Request.Context(), uidFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func cartAddHandler(cart cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}

		item, err := cart.AddProduct(c.Request.Context(), uidFrom(c), req.ProductID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// cartQuantityHandler applies a signed delta to a line's quantity. A
// decrement below one is refused and reported with applied=false; the stored
// line is returned unchanged.
func cartQuantityHandler(cart cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}

		item, applied, err := cart.ChangeQuantity(c.Request.Context(), uidFrom(c), c.Param("id"), req.Delta)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item, "applied": applied})
	}
}

func cartRemoveHandler(cart cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cart.Remove(c.Request.Context(), uidFrom(c), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func checkoutHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.Checkout(c.Request.Context(), uidFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
