package recommendations

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"churn-backend/internal/shared/server/middleware"
	"churn-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the recommendations service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recommendations", h.recommend)
	rg.GET("/eligibility", h.eligibility)
}

func (h *Handler) recommend(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	resp, err := h.Svc.Recommend(c.Request.Context(), userID, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to compute recommendations", nil)
		return
	}
	respond.OK(c, resp)
}

func (h *Handler) eligibility(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	entries, err := h.Svc.Eligibility(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to compute eligibility", nil)
		return
	}
	respond.OK(c, gin.H{"banks": toEligibilityPayloads(entries)})
}
