package handler

import (
	"net/http"

	"content-hub/internal/calendar"
	"content-hub/internal/middleware"
	"content-hub/internal/model"
	"content-hub/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkspaceHandler struct {
	ws       *service.WorkspaceService
	uploads  *service.UploadService
	referral *service.ReferralService
}

func NewWorkspaceHandler(ws *service.WorkspaceService, uploads *service.UploadService, referral *service.ReferralService) *WorkspaceHandler {
	return &WorkspaceHandler{ws: ws, uploads: uploads, referral: referral}
}

func (h *WorkspaceHandler) update(c *gin.Context, fn func(w *service.Workspace)) {
	c.JSON(http.StatusOK, h.ws.Update(middleware.CurrentUser(c).ID, fn))
}

// GET /api/workspace
func (h *WorkspaceHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.Get(middleware.CurrentUser(c).ID))
}

// POST /api/workspace/views/:view toggles a sidebar view.
func (h *WorkspaceHandler) Toggle(c *gin.Context) {
	v, err := service.ParseView(c.Param("view"))
	if err != nil {
		fail(c, err)
		return
	}
	h.update(c, func(w *service.Workspace) { w.Toggle(v) })
}

// POST /api/workspace/close
func (h *WorkspaceHandler) Close(c *gin.Context) {
	h.update(c, func(w *service.Workspace) { w.Close() })
}

// POST /api/workspace/composer  {"date": "YYYY-MM-DD"}
func (h *WorkspaceHandler) OpenComposer(c *gin.Context) {
	var req model.ComposerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	if _, err := calendar.ParseDateKey(req.Date); err != nil {
		fail(c, service.ErrBadDate)
		return
	}
	h.update(c, func(w *service.Workspace) { w.OpenComposer(req.Date) })
}

// DELETE /api/workspace/composer
func (h *WorkspaceHandler) CloseComposer(c *gin.Context) {
	h.update(c, func(w *service.Workspace) { w.CloseComposer() })
}

// POST /api/workspace/days/:date is a click on a calendar day.
func (h *WorkspaceHandler) DayClick(c *gin.Context) {
	date := c.Param("date")
	uploads, err := h.uploads.ForDay(c.Request.Context(), date)
	if err != nil {
		fail(c, err)
		return
	}
	h.update(c, func(w *service.Workspace) { w.DayClick(date, uploads) })
}

// PUT /api/workspace/referral  {"view": "kit", "employee_code": "..."}
func (h *WorkspaceHandler) Referral(c *gin.Context) {
	var req model.ReferralViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	v := service.ReferralView(req.View)
	switch v {
	case service.RefViewDashboard:
	case service.RefViewKit, service.RefViewLanding:
		if _, err := h.referral.Employee(req.EmployeeCode); err != nil {
			fail(c, err)
			return
		}
	default:
		fail(c, service.ErrBadView)
		return
	}
	h.update(c, func(w *service.Workspace) { w.SetReferral(v, req.EmployeeCode) })
}

// GET /api/apps
func (h *WorkspaceHandler) Apps(c *gin.Context) {
	c.JSON(http.StatusOK, service.Apps())
}
