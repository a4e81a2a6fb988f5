package handler

import (
	"net/http"

	"content-hub/internal/middleware"
	"content-hub/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{ center *service.NotificationCenter }

func NewNotificationHandler(center *service.NotificationCenter) *NotificationHandler {
	return &NotificationHandler{center: center}
}

// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	toasts := h.center.Active()
	c.JSON(http.StatusOK, gin.H{"count": len(toasts), "toasts": toasts})
}

// POST /api/notifications
func (h *NotificationHandler) Trigger(c *gin.Context) {
	c.JSON(http.StatusCreated, h.center.Trigger(middleware.CurrentUser(c).Name))
}

// DELETE /api/notifications/:id
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	if err := h.center.Dismiss(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type ActivityHandler struct{ activity *service.ActivityService }

func NewActivityHandler(activity *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// GET /api/activity
func (h *ActivityHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.activity.List())
}
