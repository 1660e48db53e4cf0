package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	customersvc "centrodrinks/internal/service/customer"
)

// Fixed user-facing messages for the sign-in and sign-up flows. Clients
// display these verbatim, so changing them is a breaking change.
const (
	msgUserNotFound    = "Usuario no encontrado."
	msgWrongCredential = "Contraseña incorrecta."
	msgInvalidEmail    = "Correo inválido."
	msgEmailInUse      = "El correo ya está en uso."
	msgWeakPassword    = "La contraseña debe tener al menos 6 caracteres."
	msgResetSent       = "Hemos enviado instrucciones a tu correo. Revisa tu bandeja de entrada o spam."
	msgResetNoAccount  = "Ese correo no está registrado."
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

type customerResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

func signupHandler(auth authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customersvc.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}

		cust, err := auth.Register(c.Request.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, customersvc.ErrEmailInUse):
				c.JSON(http.StatusConflict, gin.H{"error": msgEmailInUse})
			case errors.Is(err, customersvc.ErrInvalidEmail):
				badRequest(c, msgInvalidEmail)
			case errors.Is(err, customersvc.ErrWeakPassword):
				badRequest(c, msgWeakPassword)
			default:
				writeError(c, err)
			}
			return
		}

		c.JSON(http.StatusCreated, customerResponse{UID: cust.UID, Email: cust.Email})
	}
}

func loginHandler(auth authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}

		token, cust, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, customersvc.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
			case errors.Is(err, customersvc.ErrWrongCredential):
				c.JSON(http.StatusUnauthorized, gin.H{"error": msgWrongCredential})
			case errors.Is(err, customersvc.ErrInvalidEmail):
				badRequest(c, msgInvalidEmail)
			default:
				writeError(c, err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":    token,
			"customer": customerResponse{UID: cust.UID, Email: cust.Email},
		})
	}
}

// passwordResetHandler issues a reset token. Delivery by mail is a separate
// concern; the token rides the response so a relay can pick it up.
func passwordResetHandler(auth authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req passwordResetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}

		token, err := auth.RequestPasswordReset(c.Request.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, customersvc.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": msgResetNoAccount})
			case errors.Is(err, customersvc.ErrInvalidEmail):
				badRequest(c, msgInvalidEmail)
			default:
				writeError(c, err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": msgResetSent, "resetToken": token})
	}
}

func logoutHandler(auth authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Logout(c.Request.Context(), bearerToken(c)); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
