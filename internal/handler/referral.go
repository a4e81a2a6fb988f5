package handler

import (
	"net/http"
	"strconv"

	"content-hub/internal/logger"
	"content-hub/internal/model"
	"content-hub/internal/service"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	referral *service.ReferralService
	kit      *service.ShareKitService
}

func NewReferralHandler(referral *service.ReferralService, kit *service.ShareKitService) *ReferralHandler {
	return &ReferralHandler{referral: referral, kit: kit}
}

// GET /api/referral/dashboard
func (h *ReferralHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.referral.Dashboard())
}

// GET /api/referral/leaderboard?top=n
func (h *ReferralHandler) Leaderboard(c *gin.Context) {
	top := c.Query("top")
	if top == "" {
		c.JSON(http.StatusOK, h.referral.Leaderboard())
		return
	}
	n, err := strconv.Atoi(top)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "top must be an integer"})
		return
	}
	c.JSON(http.StatusOK, h.referral.TopPerformers(n))
}

// GET /api/referral/kit/:code
func (h *ReferralHandler) Kit(c *gin.Context) {
	kit, err := h.kit.Kit(c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, kit)
}

// GET /api/referral/landing/:code  public
func (h *ReferralHandler) Landing(c *gin.Context) {
	page, err := h.kit.Landing(c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// POST /api/referral/landing/:code/follow  public
func (h *ReferralHandler) Follow(c *gin.Context) {
	code := c.Param("code")
	rec, err := h.kit.Follow(c.Request.Context(), code)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("referral.follow", "code", code, "record", rec.ID)
	c.JSON(http.StatusCreated, gin.H{"record": rec, "redirect": "https://instagram.com/" + trimAt(h.kit.Handle())})
}

// PATCH /api/referral/stats/:code
func (h *ReferralHandler) PatchStats(c *gin.Context) {
	var req model.StatsPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	st, err := h.referral.UpdateStats(c.Param("code"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func trimAt(handle string) string {
	if len(handle) > 0 && handle[0] == '@' {
		return handle[1:]
	}
	return handle
}
