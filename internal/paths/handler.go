// Package paths exposes validation of externally planned multi-card
// acquisition paths against current catalog availability.
package paths

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"churn-backend/internal/engine/pathcheck"
	"churn-backend/internal/model"
	"churn-backend/internal/shared/server/respond"
)

// Handler validates planner-supplied paths.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches path routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/paths/validate", h.validate)
}

func (h *Handler) validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	modelPaths := toModelPaths(req.Paths)

	resp := validateResponse{
		Unavailable: map[string]UnavailableCardPayload{},
		ValidPaths:  []pathRequest{},
	}

	if info := pathcheck.FindUnavailableInRecommendedPath(modelPaths); info != nil {
		payload := toUnavailablePayload(*info)
		resp.UnavailableInRecommended = &payload
	}
	for cardID, info := range pathcheck.CollectAllUnavailable(modelPaths) {
		resp.Unavailable[cardID] = toUnavailablePayload(info)
	}
	for i, path := range modelPaths {
		if pathIsValid(path) {
			resp.ValidPaths = append(resp.ValidPaths, req.Paths[i])
		}
	}

	respond.OK(c, resp)
}

// pathIsValid mirrors pathcheck.FilterValidPaths for a single path so the
// response can echo the caller's original payloads in order.
func pathIsValid(path model.MultiCardPath) bool {
	return len(pathcheck.FilterValidPaths([]model.MultiCardPath{path})) == 1
}
