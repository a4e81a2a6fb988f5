package service

import (
	"sync"
	"time"

	"content-hub/internal/model"
)

// View is the sidebar currently shown. Only one is open at a time.
type View string

const (
	ViewNone     View = ""
	ViewChat     View = "chat"
	ViewActivity View = "activity"
	ViewUploads  View = "uploads"
	ViewApps     View = "apps"
)

func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ViewChat, ViewActivity, ViewUploads, ViewApps:
		return v, nil
	}
	return ViewNone, ErrBadView
}

type ReferralView string

const (
	RefViewDashboard ReferralView = "dashboard"
	RefViewKit       ReferralView = "kit"
	RefViewLanding   ReferralView = "landing"
)

type DaySelection struct {
	Date  string       `json:"date"`
	Posts []model.Post `json:"posts"`
}

type Celebration struct {
	User  model.User `json:"user"`
	Until time.Time  `json:"until"`
}

type App struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var apps = []App{
	{Name: "YouTube", Icon: "youtube", Color: "text-red-500"},
	{Name: "Instagram", Icon: "instagram", Color: "text-pink-500"},
	{Name: "Gemini", Icon: "bot", Color: "text-blue-500"},
	{Name: "Google", Icon: "clapperboard", Color: "text-green-500"},
	{Name: "Spotify", Icon: "disc", Color: "text-green-400"},
}

func Apps() []App { return append([]App(nil), apps...) }

// Workspace is one user's dashboard view state.
type Workspace struct {
	ActiveView       View          `json:"active_view"`
	ComposerOpen     bool          `json:"composer_open"`
	SelectedDate     string        `json:"selected_date,omitempty"`
	SelectedUploads  *DaySelection `json:"selected_uploads,omitempty"`
	ReferralView     ReferralView  `json:"referral_view"`
	SelectedEmployee string        `json:"selected_employee,omitempty"`
	Celebration      *Celebration  `json:"celebration,omitempty"`
}

func NewWorkspace() Workspace {
	return Workspace{ActiveView: ViewChat, ReferralView: RefViewDashboard}
}

// Toggle opens v exclusively, or closes it when it is already open.
func (w *Workspace) Toggle(v View) {
	if w.ActiveView == v {
		w.ActiveView = ViewNone
		return
	}
	w.ActiveView = v
}

func (w *Workspace) Close() { w.ActiveView = ViewNone }

func (w *Workspace) OpenComposer(date string) {
	w.ComposerOpen = true
	w.SelectedDate = date
}

func (w *Workspace) CloseComposer() {
	w.ComposerOpen = false
	w.SelectedDate = ""
}

// DayClick shows a day's uploads, or hides the uploads panel for a day without any.
func (w *Workspace) DayClick(date string, uploads []model.Post) {
	if len(uploads) > 0 {
		w.ActiveView = ViewUploads
		w.SelectedUploads = &DaySelection{Date: date, Posts: uploads}
		return
	}
	if w.ActiveView == ViewUploads {
		w.ActiveView = ViewNone
	}
}

func (w *Workspace) SetReferral(v ReferralView, employeeCode string) {
	w.ReferralView = v
	w.SelectedEmployee = employeeCode
}

// expire drops a celebration that ended before now.
func (w *Workspace) expire(now time.Time) {
	if w.Celebration != nil && !now.Before(w.Celebration.Until) {
		w.Celebration = nil
	}
}

// WorkspaceService owns every user's workspace. All transitions run under
// one lock, so each is applied whole.
type WorkspaceService struct {
	mu     sync.Mutex
	spaces map[string]*Workspace
	now    func() time.Time
}

func NewWorkspaceService() *WorkspaceService {
	return &WorkspaceService{spaces: map[string]*Workspace{}, now: time.Now}
}

// Update applies fn to uid's workspace and returns the resulting snapshot.
func (s *WorkspaceService) Update(uid string, fn func(w *Workspace)) Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.spaces[uid]
	if !ok {
		nw := NewWorkspace()
		w = &nw
		s.spaces[uid] = w
	}
	if fn != nil {
		fn(w)
	}
	w.expire(s.now())
	return *w
}

func (s *WorkspaceService) Get(uid string) Workspace { return s.Update(uid, nil) }

func (s *WorkspaceService) Celebrate(u model.User, d time.Duration) Workspace {
	until := s.now().Add(d)
	return s.Update(u.ID, func(w *Workspace) {
		w.Celebration = &Celebration{User: u, Until: until}
	})
}
