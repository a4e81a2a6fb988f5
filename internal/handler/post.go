package handler

import (
	"net/http"

	"content-hub/internal/logger"
	"content-hub/internal/middleware"
	"content-hub/internal/model"
	"content-hub/internal/service"

	"github.com/gin-gonic/gin"
)

const maxImportSize = 10 << 20

type PostHandler struct {
	posts  *service.PostService
	sheets *service.SpreadsheetService
}

func NewPostHandler(posts *service.PostService, sheets *service.SpreadsheetService) *PostHandler {
	return &PostHandler{posts: posts, sheets: sheets}
}

// GET /api/posts/:date
func (h *PostHandler) Day(c *gin.Context) {
	posts, err := h.posts.Day(c.Request.Context(), c.Param("date"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req model.PostDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u := middleware.CurrentUser(c)
	p, err := h.posts.Schedule(c.Request.Context(), u, req)
	if err != nil {
		logger.Warn("post.rejected", "uid", u.ID, "date", req.Date, "err", err)
		fail(c, err)
		return
	}
	logger.Info("post.scheduled", "uid", u.ID, "id", p.ID, "date", p.Date, "time", p.Time, "platform", p.Platform)
	c.JSON(http.StatusCreated, p)
}

// POST /api/posts/import/preview  multipart "file" (.xlsx)
func (h *PostHandler) ImportPreview(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if file.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}
	logger.Info("import.start", "file", file.Filename, "size", file.Size)

	f, err := file.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer f.Close()

	preview, err := h.sheets.Preview(f)
	if err != nil {
		logger.Warn("import.parse_failed", "file", file.Filename, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read workbook"})
		return
	}
	c.JSON(http.StatusOK, preview)
}

// POST /api/posts/import/confirm  {"token": "..."}
func (h *PostHandler) ImportConfirm(c *gin.Context) {
	var req model.ImportConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}
	res, err := h.sheets.Confirm(c.Request.Context(), req.Token, middleware.CurrentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
