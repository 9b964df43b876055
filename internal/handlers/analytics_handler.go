package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-api/internal/httperr"
	"github.com/maisonbelle/salon-api/internal/httpresp"
	"github.com/maisonbelle/salon-api/internal/models"
	"github.com/maisonbelle/salon-api/internal/store"
)

const dashboardWindowDays = 30

type AnalyticsHandler struct {
	st *store.Store
}

func NewAnalyticsHandler(st *store.Store) *AnalyticsHandler {
	return &AnalyticsHandler{st: st}
}

// --------- Requests ---------

type TrackViewRequest struct {
	Page      string `json:"page" binding:"required"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"userAgent"`
	IPHash    string `json:"ipHash"`
	SessionID string `json:"sessionId"`
}

// --------- Handlers ---------

// TrackView is the public telemetry beacon. Recording is best-effort, so
// the beacon acknowledges even when no database is configured.
func (h *AnalyticsHandler) TrackView(c *gin.Context) {
	var req TrackViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	h.st.RecordPageView(c.Request.Context(), &models.PageView{
		Page:      req.Page,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
		IPHash:    req.IPHash,
		SessionID: req.SessionID,
	})

	httpresp.Success(c)
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.st.Dashboard(c.Request.Context(), dashboardWindowDays)
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Failed to aggregate page views")
		return
	}

	httpresp.OK(c, stats)
}
