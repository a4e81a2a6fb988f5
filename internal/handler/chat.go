package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"content-hub/internal/logger"
	"content-hub/internal/middleware"
	"content-hub/internal/model"
	"content-hub/internal/service"

	"github.com/gin-gonic/gin"
)

const keepAlive = 25 * time.Second

type ChatHandler struct{ chat *service.ChatService }

func NewChatHandler(chat *service.ChatService) *ChatHandler { return &ChatHandler{chat: chat} }

// GET /api/chat/messages
func (h *ChatHandler) Messages(c *gin.Context) {
	c.JSON(http.StatusOK, h.chat.Messages())
}

// POST /api/chat/messages
func (h *ChatHandler) Send(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u := middleware.CurrentUser(c)
	msg, err := h.chat.Send(u, req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("chat.send", "uid", u.ID, "len", len(msg.Text))
	c.JSON(http.StatusCreated, msg)
}

type sseWriter struct {
	w http.Flusher
	f gin.ResponseWriter
}

func (s *sseWriter) event(name string, data interface{}) {
	j, _ := json.Marshal(data)
	fmt.Fprintf(s.f, "event: %s\ndata: %s\n\n", name, j)
	s.w.Flush()
}

func (s *sseWriter) ping() {
	fmt.Fprint(s.f, ": ping\n\n")
	s.w.Flush()
}

// GET /api/chat/stream  pushes each new message as a "message" event.
func (h *ChatHandler) Stream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ch, cancel := h.chat.Subscribe()
	defer cancel()

	uid := middleware.CurrentUser(c).ID
	logger.Info("chat.stream.open", "uid", uid)
	defer logger.Info("chat.stream.close", "uid", uid)

	sse := &sseWriter{w: c.Writer, f: c.Writer}
	sse.event("ready", map[string]int{"messages": len(h.chat.Messages())})

	tick := time.NewTicker(keepAlive)
	defer tick.Stop()
	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			sse.event("message", msg)
		case <-tick.C:
			sse.ping()
		}
	}
}
