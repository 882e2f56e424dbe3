package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polygongallery/certification/internal/models"
	"github.com/polygongallery/certification/internal/upload"
)

// ListPaymentMethods serves the registry. The submission wizard reads it
// unauthenticated; the admin dashboard reads the same list.
func (s *Server) ListPaymentMethods(c *gin.Context) {
	methods, err := s.payments.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if methods == nil {
		methods = []models.PaymentMethod{}
	}
	c.JSON(http.StatusOK, methods)
}

// CreatePaymentMethod registers a destination from a multipart form (name,
// address, network, optional logo file) and returns the re-read list.
func (s *Server) CreatePaymentMethod(c *gin.Context) {
	method, logo := methodFromForm(c)
	methods, err := s.payments.Create(c.Request.Context(), method, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, methods)
}

// UpdatePaymentMethod rewrites a destination; without a new logo the prior
// logo URL is retained.
func (s *Server) UpdatePaymentMethod(c *gin.Context) {
	method, logo := methodFromForm(c)
	method.ID = c.Param("id")
	methods, err := s.payments.Update(c.Request.Context(), method, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

// DeletePaymentMethod removes a destination and returns the re-read list.
func (s *Server) DeletePaymentMethod(c *gin.Context) {
	methods, err := s.payments.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

func methodFromForm(c *gin.Context) (models.PaymentMethod, *upload.Blob) {
	method := models.PaymentMethod{
		Name:    sanitize(c.PostForm("name")),
		Address: sanitize(c.PostForm("address")),
		Network: sanitize(c.PostForm("network")),
	}

	var logo *upload.Blob
	if fh, err := c.FormFile("logo"); err == nil && fh != nil {
		b := blobFromFileHeader(fh)
		logo = &b
	}
	return method, logo
}
