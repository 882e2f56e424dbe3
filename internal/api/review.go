package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polygongallery/certification/internal/models"
)

// ListReviewRows serves the flattened, newest-first review list.
func (s *Server) ListReviewRows(c *gin.Context) {
	rows, err := s.review.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []models.ReviewRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// SetArtworkStatus marks one artwork certified or disapproved and returns
// the re-fetched list.
func (s *Server) SetArtworkStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: could not parse JSON"})
		return
	}

	rows, err := s.review.SetStatus(c.Request.Context(), c.Param("artworkID"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
