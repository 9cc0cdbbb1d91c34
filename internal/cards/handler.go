package cards

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"churn-backend/internal/model"
	"churn-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the catalog service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cards", h.list)
	rg.GET("/cards/:id", h.get)
	rg.POST("/cards", h.create)
	rg.PATCH("/cards/:id/availability", h.setAvailability)
}

func (h *Handler) list(c *gin.Context) {
	cardList, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list cards", nil)
		return
	}
	respond.OK(c, gin.H{"cards": toResponses(cardList)})
}

func (h *Handler) get(c *gin.Context) {
	cardID := c.Param("id")
	c.Set("cardId", cardID)

	card, err := h.Svc.Get(c.Request.Context(), cardID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "card not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to load card", nil)
		}
		return
	}
	respond.OK(c, toResponse(card))
}

type createCardRequest struct {
	Bank                   string   `json:"bank"`
	Name                   string   `json:"name"`
	AnnualFee              *float64 `json:"annual_fee"`
	WelcomeBonusPoints     *int     `json:"welcome_bonus_points"`
	BonusSpendRequirement  *float64 `json:"bonus_spend_requirement"`
	BonusSpendWindowMonths *int     `json:"bonus_spend_window_months"`
	IsActive               *bool    `json:"is_active"`
	Notes                  string   `json:"notes"`
	ApplicationLink        string   `json:"application_link"`
}

func (h *Handler) create(c *gin.Context) {
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	card := model.CardProduct{
		Bank:                   req.Bank,
		Name:                   req.Name,
		AnnualFee:              req.AnnualFee,
		WelcomeBonusPoints:     req.WelcomeBonusPoints,
		BonusSpendRequirement:  req.BonusSpendRequirement,
		BonusSpendWindowMonths: req.BonusSpendWindowMonths,
		IsActive:               true,
		Notes:                  req.Notes,
		ApplicationLink:        req.ApplicationLink,
	}
	if req.IsActive != nil {
		card.IsActive = *req.IsActive
	}

	created, err := h.Svc.Create(c.Request.Context(), card)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "bank and name are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to create card", nil)
		}
		return
	}
	c.Set("cardId", created.ID)

	respond.Created(c, toResponse(created))
}

type availabilityRequest struct {
	IsActive *bool `json:"is_active"`
}

func (h *Handler) setAvailability(c *gin.Context) {
	cardID := c.Param("id")
	c.Set("cardId", cardID)

	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "is_active is required", nil)
		return
	}

	if err := h.Svc.SetAvailability(c.Request.Context(), cardID, *req.IsActive); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "card not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to update availability", nil)
		}
		return
	}
	respond.OK(c, gin.H{"id": cardID, "is_active": *req.IsActive})
}
