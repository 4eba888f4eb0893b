package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tanneryrow/backend/internal/domain"
	"github.com/tanneryrow/backend/internal/infrastructure/squarespace"
	"github.com/tanneryrow/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	mappings *usecase.MappingService
	panels   *usecase.PanelService
}

// NewHandler creates a new HTTP handler
func NewHandler(mappings *usecase.MappingService, panels *usecase.PanelService) *Handler {
	return &Handler{
		mappings: mappings,
		panels:   panels,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "tanneryrow-backend",
		"version": "1.0.0",
	})
}

// resolveRequest is the payload for single-product resolution.
type resolveRequest struct {
	ProductName string `json:"productName" binding:"required"`
	Variant     string `json:"variant"`
	SKU         string `json:"sku"`
}

// ResolveProduct maps one product/variant pair to a catalog item.
func (h *Handler) ResolveProduct(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productName is required"})
		return
	}

	catalog, err := h.mappings.Catalog(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	row := h.mappings.ResolveOne(domain.SourceRecord{
		ProductName: req.ProductName,
		Variant:     req.Variant,
		SKU:         req.SKU,
	}, catalog)

	c.JSON(http.StatusOK, row)
}

// buildRequest is the payload for a full mapping build.
type buildRequest struct {
	OrderLimit int  `json:"orderLimit"`
	Persist    bool `json:"persist"`
}

// BuildMapping fetches orders, builds the full mapping report and optionally
// persists it as a run.
func (h *Handler) BuildMapping(c *gin.Context) {
	var req buildRequest
	// An empty body is fine; defaults apply
	_ = c.ShouldBindJSON(&req)
	if req.OrderLimit <= 0 {
		req.OrderLimit = 100
	}

	report, err := h.mappings.BuildFromOrders(c.Request.Context(), req.OrderLimit, squarespace.ExtractUniqueProducts)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := gin.H{"report": report}
	if req.Persist {
		runID, err := h.mappings.SaveRun(c.Request.Context(), report)
		if err != nil {
			h.writeError(c, err)
			return
		}
		resp["runId"] = runID
	}

	c.JSON(http.StatusOK, resp)
}

// ListRuns returns persisted run summaries, newest first.
func (h *Handler) ListRuns(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	runs, err := h.mappings.ListRuns(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetRun returns one persisted mapping run with all its rows.
func (h *Handler) GetRun(c *gin.Context) {
	report, err := h.mappings.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// PendingPanels returns panel cutting demand from pending orders.
func (h *Handler) PendingPanels(c *gin.Context) {
	status := c.DefaultQuery("status", "PENDING")

	demand, err := h.panels.PendingDemand(c.Request.Context(), status, 0)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, demand)
}

// writeError maps domain errors to HTTP status codes.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "upstream rate limit hit, try again later"})
	case errors.Is(err, domain.ErrSquarespaceAPIFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "storefront API unavailable"})
	case errors.Is(err, domain.ErrEmptyCatalog):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog is empty"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
