package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polygongallery/certification/internal/models"
	"github.com/polygongallery/certification/internal/site"
	"github.com/polygongallery/certification/internal/upload"
)

// CreateSubmission accepts the multipart certification form: a "payload"
// JSON field, one "proof" image part, and one image part per artwork named
// by that artwork's filePart.
func (s *Server) CreateSubmission(c *gin.Context) {
	var payload models.SubmissionPayload
	if err := json.Unmarshal([]byte(c.PostForm("payload")), &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: could not parse payload JSON"})
		return
	}
	sanitizePayload(&payload)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: could not parse multipart form"})
		return
	}

	var proof *upload.Blob
	if fhs := form.File["proof"]; len(fhs) > 0 {
		b := blobFromFileHeader(fhs[0])
		proof = &b
	}

	images := make(map[string]upload.Blob)
	for _, draft := range payload.Artworks {
		if fhs := form.File[draft.FilePart]; len(fhs) > 0 {
			images[draft.FilePart] = blobFromFileHeader(fhs[0])
		}
	}

	sub, err := s.submissions.Submit(c.Request.Context(), payload, proof, images)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SubmissionResponse{
		SubmissionID: sub.ID,
		Note:         site.Home(s.cfg.CertificationFee).TurnaroundNote,
	})
}

// GetSiteContent serves the public marketing copy.
func (s *Server) GetSiteContent(c *gin.Context) {
	c.JSON(http.StatusOK, site.Home(s.cfg.CertificationFee))
}
