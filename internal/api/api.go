package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polygongallery/certification/internal/api/middleware"
	"github.com/polygongallery/certification/internal/config"
	"github.com/polygongallery/certification/internal/services"
)

// Server wires the HTTP handlers to the services behind them.
type Server struct {
	cfg         *config.Config
	pin         *services.PinService
	payments    *services.PaymentMethodService
	submissions *services.SubmissionService
	review      *services.ReviewService
}

func NewServer(cfg *config.Config, pin *services.PinService, payments *services.PaymentMethodService, submissions *services.SubmissionService, review *services.ReviewService) *Server {
	return &Server{
		cfg:         cfg,
		pin:         pin,
		payments:    payments,
		submissions: submissions,
		review:      review,
	}
}

// RegisterRoutes mounts the public surface and the PIN-gated admin surface.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/site", s.GetSiteContent)
	r.GET("/payments", s.ListPaymentMethods)
	r.POST("/submissions", s.CreateSubmission)
	r.POST("/admin/unlock", s.Unlock)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(s.cfg.JWTSecret))
	admin.POST("/pin", s.ChangePin)
	admin.GET("/payments", s.ListPaymentMethods)
	admin.POST("/payments", s.CreatePaymentMethod)
	admin.PUT("/payments/:id", s.UpdatePaymentMethod)
	admin.DELETE("/payments/:id", s.DeletePaymentMethod)
	admin.GET("/review", s.ListReviewRows)
	admin.POST("/review/:artworkID/status", s.SetArtworkStatus)
}

// respondError maps service errors onto the client-facing taxonomy:
// validation failures return their aggregated message, auth mismatches stay
// terse, everything else collapses to one retryable message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPinLocked):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": services.ErrPinLocked.Error()})
	case errors.Is(err, services.ErrInvalidPin):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect PIN"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		slog.Error("Request failed.", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Try again or contact support."})
	}
}
