package handler

import (
	"net/http"

	"content-hub/internal/middleware"
	"content-hub/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services is everything the HTTP layer talks to.
type Services struct {
	Auth          *service.AuthService
	Posts         *service.PostService
	Sheets        *service.SpreadsheetService
	Uploads       *service.UploadService
	Notifications *service.NotificationCenter
	Activity      *service.ActivityService
	Chat          *service.ChatService
	Workspace     *service.WorkspaceService
	Referral      *service.ReferralService
	ShareKit      *service.ShareKitService
}

// NewRouter registers every API route on a fresh engine.
func NewRouter(s Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-New-Token", "Content-Disposition"},
		AllowCredentials: true,
	}))

	authH := NewAuthHandler(s.Auth)
	calH := NewCalendarHandler(s.Posts, s.Sheets)
	postH := NewPostHandler(s.Posts, s.Sheets)
	upH := NewUploadHandler(s.Uploads)
	notifH := NewNotificationHandler(s.Notifications)
	actH := NewActivityHandler(s.Activity)
	chatH := NewChatHandler(s.Chat)
	wsH := NewWorkspaceHandler(s.Workspace, s.Uploads, s.Referral)
	refH := NewReferralHandler(s.Referral, s.ShareKit)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.POST("/api/login", authH.Login)
	r.GET("/api/referral/landing/:code", refH.Landing)
	r.POST("/api/referral/landing/:code/follow", refH.Follow)

	api := r.Group("/api", middleware.JWTAuth())
	api.POST("/logout", authH.Logout)
	api.GET("/me", authH.Me)

	api.GET("/calendar", calH.Month)
	api.GET("/calendar/export", calH.Export)
	api.GET("/special-days", calH.SpecialDays)

	api.GET("/posts/:date", postH.Day)
	api.POST("/posts", postH.Create)
	api.POST("/posts/import/preview", postH.ImportPreview)
	api.POST("/posts/import/confirm", postH.ImportConfirm)

	api.GET("/uploads/:date", upH.List)
	api.GET("/uploads/:date/:id/download", upH.Download)
	api.POST("/uploads/inspect", upH.Inspect)

	api.GET("/notifications", notifH.List)
	api.POST("/notifications", notifH.Trigger)
	api.DELETE("/notifications/:id", notifH.Dismiss)
	api.GET("/activity", actH.List)

	api.GET("/chat/messages", chatH.Messages)
	api.POST("/chat/messages", chatH.Send)
	api.GET("/chat/stream", chatH.Stream)

	api.GET("/workspace", wsH.Get)
	api.POST("/workspace/views/:view", wsH.Toggle)
	api.POST("/workspace/close", wsH.Close)
	api.POST("/workspace/composer", wsH.OpenComposer)
	api.DELETE("/workspace/composer", wsH.CloseComposer)
	api.POST("/workspace/days/:date", wsH.DayClick)
	api.PUT("/workspace/referral", wsH.Referral)
	api.GET("/apps", wsH.Apps)

	api.GET("/referral/dashboard", refH.Dashboard)
	api.GET("/referral/leaderboard", refH.Leaderboard)
	api.GET("/referral/kit/:code", refH.Kit)
	api.PATCH("/referral/stats/:code", refH.PatchStats)

	return r
}
