package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-hub/internal/calendar"
	"content-hub/internal/model"
	"content-hub/internal/service"
	"content-hub/internal/store"
)

type testEnv struct {
	r     *gin.Engine
	token string
	svc   Services
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	require.NoError(t, store.Populate(context.Background(), st, store.Seed()))

	act := service.NewActivityService()
	ws := service.NewWorkspaceService()
	posts := service.NewPostService(st, calendar.DefaultSpecialDays(), ws, act, nil, 3*time.Second)
	ref := service.NewReferralService(nil)
	svc := Services{
		Auth:          service.NewAuthService(nil, act),
		Posts:         posts,
		Sheets:        service.NewSpreadsheetService(posts),
		Uploads:       service.NewUploadService(posts),
		Notifications: service.NewNotificationCenter(5*time.Second, 400*time.Millisecond, act),
		Activity:      act,
		Chat:          service.NewChatService(act),
		Workspace:     ws,
		Referral:      ref,
		ShareKit:      service.NewShareKitService(ref, "https://dpsexpo.com/join/", "@dps_expo"),
	}
	env := &testEnv{r: NewRouter(svc), svc: svc}

	w := env.do(http.MethodPost, "/api/login", `{"email":"riaz@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	env.token = resp.Token
	return env
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestLoginAndMe(t *testing.T) {
	e := newEnv(t)

	u := decode[model.User](t, e.do(http.MethodGet, "/api/me", ""))
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "Riaz", u.Name)

	e.token = ""
	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/me", "").Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/login", `{"email":"","password":""}`).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/login", `not json`).Code)
}

func TestCreatePostFlow(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/posts", `{"date":"2024-07-28","content":"Early bird","client":"DPS","time":"09:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	p := decode[model.Post](t, w)
	assert.Equal(t, model.Instagram, p.Platform)
	assert.Equal(t, "Riaz", p.Uploader)

	day := decode[[]model.Post](t, e.do(http.MethodGet, "/api/posts/2024-07-28", ""))
	require.Len(t, day, 2)
	assert.Equal(t, "09:00", day[0].Time)

	w = e.do(http.MethodPost, "/api/posts", `{"date":"2024-07-28","content":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "client is required")

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/api/posts/yesterday", "").Code)

	acts := decode[[]model.ActivityLog](t, e.do(http.MethodGet, "/api/activity", ""))
	require.NotEmpty(t, acts)
	assert.Equal(t, "scheduled a post for Instagram on 2024-07-28 for client DPS", acts[0].Action)

	ws := decode[service.Workspace](t, e.do(http.MethodGet, "/api/workspace", ""))
	assert.NotNil(t, ws.Celebration)
}

func TestCalendarMonth(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodGet, "/api/calendar?month=2024-07", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Grid calendar.MonthGrid `json:"grid"`
		Prev string             `json:"prev"`
		Next string             `json:"next"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "July", resp.Grid.Title)
	assert.Len(t, resp.Grid.Weeks, 5)
	assert.Equal(t, "2024-06", resp.Prev)
	assert.Equal(t, "2024-08", resp.Next)
	assert.Equal(t, "2024-06-30", resp.Grid.Weeks[0][0].DateKey)

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/api/calendar?month=July", "").Code)

	w = e.do(http.MethodGet, "/api/calendar/export?month=2024-07", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "content-calendar-2024-07.xlsx")

	w = e.do(http.MethodGet, "/api/special-days", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "UAE National Day")
}

func TestUploadsEndpoints(t *testing.T) {
	e := newEnv(t)

	list := decode[[]model.Post](t, e.do(http.MethodGet, "/api/uploads/2024-07-25", ""))
	require.Len(t, list, 1)

	w := e.do(http.MethodGet, "/api/uploads/2024-07-25/2/download", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/api/uploads/2024-07-28/1/download", "").Code)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "hello.txt")
	require.NoError(t, err)
	fw.Write([]byte("plain text content"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/inspect", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+e.token)
	rec := httptest.NewRecorder()
	e.r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	ref := decode[model.FileRef](t, rec)
	assert.Equal(t, "hello.txt", ref.Name)
	assert.True(t, strings.HasPrefix(ref.Type, "text/plain"))
}

func TestWorkspaceEndpoints(t *testing.T) {
	e := newEnv(t)

	ws := decode[service.Workspace](t, e.do(http.MethodPost, "/api/workspace/views/chat", ""))
	assert.Equal(t, service.ViewNone, ws.ActiveView)
	ws = decode[service.Workspace](t, e.do(http.MethodPost, "/api/workspace/views/apps", ""))
	assert.Equal(t, service.ViewApps, ws.ActiveView)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/workspace/views/bogus", "").Code)

	ws = decode[service.Workspace](t, e.do(http.MethodPost, "/api/workspace/days/2024-07-25", ""))
	assert.Equal(t, service.ViewUploads, ws.ActiveView)
	ws = decode[service.Workspace](t, e.do(http.MethodPost, "/api/workspace/days/2024-07-26", ""))
	assert.Equal(t, service.ViewNone, ws.ActiveView)

	ws = decode[service.Workspace](t, e.do(http.MethodPost, "/api/workspace/composer", `{"date":"2024-07-28"}`))
	assert.True(t, ws.ComposerOpen)
	ws = decode[service.Workspace](t, e.do(http.MethodDelete, "/api/workspace/composer", ""))
	assert.False(t, ws.ComposerOpen)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/workspace/composer", `{}`).Code)

	ws = decode[service.Workspace](t, e.do(http.MethodPut, "/api/workspace/referral", `{"view":"kit","employee_code":"DPS-SARA-04"}`))
	assert.Equal(t, service.RefViewKit, ws.ReferralView)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPut, "/api/workspace/referral", `{"view":"kit","employee_code":"X"}`).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPut, "/api/workspace/referral", `{"view":"other"}`).Code)

	apps := decode[[]service.App](t, e.do(http.MethodGet, "/api/apps", ""))
	assert.Len(t, apps, 5)
}

func TestNotificationEndpoints(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/notifications", "")
	require.Equal(t, http.StatusCreated, w.Code)
	toast := decode[model.Toast](t, w)
	assert.Equal(t, "Upload Complete", toast.Title)

	var list struct {
		Count  int           `json:"count"`
		Toasts []model.Toast `json:"toasts"`
	}
	require.NoError(t, json.Unmarshal(e.do(http.MethodGet, "/api/notifications", "").Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)

	assert.Equal(t, http.StatusOK, e.do(http.MethodDelete, "/api/notifications/"+toast.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, "/api/notifications/nope", "").Code)
}

func TestChatEndpoints(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/chat/messages", `{"text":"hello team"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/chat/messages", `{"text":"  "}`).Code)

	msgs := decode[[]model.ChatMessage](t, e.do(http.MethodGet, "/api/chat/messages", ""))
	require.Len(t, msgs, 5)
	assert.Equal(t, "hello team", msgs[4].Text)
}

func TestReferralEndpoints(t *testing.T) {
	e := newEnv(t)

	dash := decode[service.ReferralDashboard](t, e.do(http.MethodGet, "/api/referral/dashboard", ""))
	assert.Equal(t, 111, dash.TotalFollowers)
	require.Len(t, dash.TopPerformers, 3)

	top := decode[[]model.ReferralStats](t, e.do(http.MethodGet, "/api/referral/leaderboard?top=2", ""))
	require.Len(t, top, 2)
	assert.Equal(t, 18, top[1].EstimatedFollowers)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/api/referral/leaderboard?top=two", "").Code)

	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/referral/kit/DPS-AHMED-01", "").Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/api/referral/kit/NOPE", "").Code)

	e.token = ""
	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/referral/landing/DPS-AHMED-01", "").Code)
	w := e.do(http.MethodPost, "/api/referral/landing/DPS-AHMED-01/follow", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "instagram.com/dps_expo")
	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/referral/dashboard", "").Code)

	st, _ := e.svc.Referral.StatsFor("DPS-AHMED-01")
	assert.Equal(t, 24, st.EstimatedFollowers)
}

func TestPatchStats(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPatch, "/api/referral/stats/DPS-RAVI-07", `{"link_clicks":100}`)
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[model.ReferralStats](t, w)
	assert.Equal(t, 100, st.LinkClicks)
	assert.Equal(t, 8, st.EstimatedFollowers)

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPatch, "/api/referral/stats/NOPE", `{}`).Code)
}

func TestHealthz(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/healthz", "").Code)
}
