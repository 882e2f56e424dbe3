package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/polygongallery/certification/internal/models"
)

// sessionTTL bounds how long an unlocked dashboard stays valid before the
// PIN must be entered again.
const sessionTTL = 15 * time.Minute

// Unlock verifies the six-digit PIN and issues the admin session token.
func (s *Server) Unlock(c *gin.Context) {
	var req models.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: could not parse JSON"})
		return
	}

	if err := s.pin.Verify(c.Request.Context(), req.Pin); err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"scope": "admin",
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UnlockResponse{Token: signed})
}

// ChangePin rotates the dashboard PIN. Success re-locks the dashboard: the
// client discards its token and the short session TTL bounds any stragglers.
func (s *Server) ChangePin(c *gin.Context) {
	var req models.ChangePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: could not parse JSON"})
		return
	}

	if err := s.pin.Change(c.Request.Context(), req.PreviousPin, req.NewPin); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PIN changed. Login with new PIN."})
}
