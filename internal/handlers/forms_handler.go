package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-api/internal/audit"
	"github.com/maisonbelle/salon-api/internal/config"
	"github.com/maisonbelle/salon-api/internal/domain/submission"
	"github.com/maisonbelle/salon-api/internal/httperr"
	"github.com/maisonbelle/salon-api/internal/httpresp"
	"github.com/maisonbelle/salon-api/internal/middleware"
	"github.com/maisonbelle/salon-api/internal/models"
	"github.com/maisonbelle/salon-api/internal/store"
	"github.com/maisonbelle/salon-api/internal/validators"
)

type FormsHandler struct {
	st     *store.Store
	config *config.Config
	audit  *audit.Dispatcher
}

func NewFormsHandler(st *store.Store, cfg *config.Config, dispatcher *audit.Dispatcher) *FormsHandler {
	return &FormsHandler{st: st, config: cfg, audit: dispatcher}
}

// --------- Requests ---------

// SubmitFormRequest deliberately has no status field: every new booking
// request starts as "new".
type SubmitFormRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Notes         string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *FormsHandler) Submit(c *gin.Context) {
	var req SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.config != nil && h.config.StrictEmailCheck && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid")
		return
	}

	sub := models.FormSubmission{
		Name:          req.Name,
		Email:         email,
		Phone:         req.Phone,
		Service:       req.Service,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
	}

	if err := h.st.CreateFormSubmission(c.Request.Context(), &sub); err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			httperr.Unavailable(c, "database_unavailable", "Database not available")
			return
		}
		httperr.Internal(c, "failed_to_submit_form", "Failed to store submission")
		return
	}

	httpresp.Success(c)
}

func (h *FormsHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !submission.IsValid(submission.Status(status)) {
		httperr.BadRequest(c, "invalid_status", "Unknown submission status")
		return
	}

	subs, err := h.st.ListFormSubmissions(c.Request.Context(), status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_submissions", "Failed to list submissions")
		return
	}

	httpresp.OK(c, subs)
}

func (h *FormsHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid submission id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status := submission.Status(req.Status)
	if !submission.IsValid(status) {
		httperr.BadRequest(c, "invalid_status", "Unknown submission status")
		return
	}

	if err := h.st.UpdateFormSubmissionStatus(c.Request.Context(), uint(id), status); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httperr.NotFound(c, "submission_not_found", "Submission not found")
		case errors.Is(err, store.ErrUnavailable):
			httperr.Unavailable(c, "database_unavailable", "Database not available")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Unknown submission status")
		default:
			httperr.Internal(c, "failed_to_update_status", "Failed to update status")
		}
		return
	}

	var userID *uint
	if user := middleware.CurrentUser(c); user != nil {
		userID = &user.ID
	}
	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "submission_status_" + req.Status,
		Entity:   "form_submission",
		EntityID: &entityID,
	})

	httpresp.Success(c)
}
