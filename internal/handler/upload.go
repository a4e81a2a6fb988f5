package handler

import (
	"fmt"
	"io"
	"net/http"

	"content-hub/internal/service"

	"github.com/gin-gonic/gin"
)

// sniffLen is how much of an upload is read for type detection.
const sniffLen = 3072

type UploadHandler struct{ uploads *service.UploadService }

func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// GET /api/uploads/:date
func (h *UploadHandler) List(c *gin.Context) {
	posts, err := h.uploads.ForDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GET /api/uploads/:date/:id/download
func (h *UploadHandler) Download(c *gin.Context) {
	d, err := h.uploads.Download(c.Request.Context(), c.Param("date"), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, d.Name))
	c.Data(http.StatusOK, d.ContentType, d.Data)
}

// POST /api/uploads/inspect  multipart "file"; returns the attachment descriptor.
func (h *UploadHandler) Inspect(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.uploads.Inspect(file.Filename, head[:n]))
}
