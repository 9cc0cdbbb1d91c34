package wallet

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"churn-backend/internal/model"
	"churn-backend/internal/shared/server/middleware"
	"churn-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the wallet service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches wallet routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/wallet", h.list)
	rg.POST("/wallet", h.add)
	rg.POST("/wallet/:id/cancel", h.cancel)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	records, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list wallet", nil)
		return
	}
	respond.OK(c, gin.H{"records": toResponses(records)})
}

type addRecordRequest struct {
	Bank            string `json:"bank"`
	CardID          string `json:"card_id"`
	ApplicationDate string `json:"application_date"`
	Status          string `json:"status"`
}

func (h *Handler) add(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req addRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	record, err := h.Svc.Add(c.Request.Context(), model.CardRecord{
		UserID:          userID,
		Bank:            req.Bank,
		CardID:          req.CardID,
		ApplicationDate: req.ApplicationDate,
		Status:          req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "bank and card_id are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to add record", nil)
		}
		return
	}
	c.Set("recordId", record.ID)

	respond.Created(c, toResponse(record))
}

type cancelRecordRequest struct {
	CancellationDate string `json:"cancellation_date"`
}

func (h *Handler) cancel(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	recordID := c.Param("id")
	c.Set("recordId", recordID)

	// Body is optional; an empty or absent date means "cancelled today".
	var req cancelRecordRequest
	_ = c.ShouldBindJSON(&req)

	record, err := h.Svc.Cancel(c.Request.Context(), userID, recordID, req.CancellationDate)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "record not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to cancel record", nil)
		}
		return
	}
	respond.OK(c, toResponse(record))
}
