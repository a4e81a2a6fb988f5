package model

import "time"

type Platform string

const (
	Instagram Platform = "Instagram"
	Twitter   Platform = "Twitter"
	Facebook  Platform = "Facebook"
	LinkedIn  Platform = "LinkedIn"
)

var Platforms = []Platform{Instagram, Twitter, Facebook, LinkedIn}

func (p Platform) Valid() bool {
	for _, v := range Platforms {
		if p == v {
			return true
		}
	}
	return false
}

type Client string

const (
	ClientHS   Client = "H&S"
	ClientDECA Client = "DECA"
	ClientDPS  Client = "DPS"
)

var Clients = []Client{ClientHS, ClientDECA, ClientDPS}

func (c Client) Valid() bool {
	for _, v := range Clients {
		if c == v {
			return true
		}
	}
	return false
}

// FileRef describes an attachment. Only the descriptor is kept, never the bytes.
type FileRef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Post is immutable once stored.
type Post struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"` // YYYY-MM-DD
	Content  string   `json:"content"`
	Platform Platform `json:"platform"`
	Client   Client   `json:"client"`
	Time     string   `json:"time"` // HH:mm, zero padded
	File     *FileRef `json:"file,omitempty"`
	Uploader string   `json:"uploader"`
}

func (p Post) HasFile() bool { return p.File != nil }

type SpecialDayType string

const (
	International SpecialDayType = "International"
	UAE           SpecialDayType = "UAE"
)

type SpecialDay struct {
	Date       string         `json:"date"` // MM-DD
	Name       string         `json:"name"`
	Type       SpecialDayType `json:"type"`
	Suggestion string         `json:"suggestion"`
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
}

type ToastState string

const (
	ToastVisible ToastState = "visible"
	ToastExiting ToastState = "exiting"
	ToastRemoved ToastState = "removed"
)

type Toast struct {
	Notification
	CreatedAt time.Time  `json:"created_at"`
	State     ToastState `json:"state"`
}

type ActivityLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
}

type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
	Time   string `json:"time"`
	Avatar string `json:"avatar"`
}

type ReferralEmployee struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	AvatarURL  string `json:"avatar_url"`
	JoinedDate string `json:"joined_date"`
}

type ReferralStats struct {
	EmployeeCode       string  `json:"employee_code"`
	EmployeeName       string  `json:"employee_name"`
	LinksShared        int     `json:"links_shared"`
	LinkClicks         int     `json:"link_clicks"`
	EstimatedFollowers int     `json:"estimated_followers"`
	LastWeekFollowers  int     `json:"last_week_followers"`
	ThisMonthFollowers int     `json:"this_month_followers"`
	EngagementRate     float64 `json:"engagement_rate"`
	Rank               int     `json:"rank"`
}

type ReferralSource string

const (
	SourceWhatsApp ReferralSource = "whatsapp"
	SourceEmail    ReferralSource = "email"
	SourceLinkedIn ReferralSource = "linkedin"
	SourceQR       ReferralSource = "qr"
	SourceDirect   ReferralSource = "direct"
)

type ReferralRecord struct {
	ID               string         `json:"id"`
	EmployeeCode     string         `json:"employee_code"`
	Timestamp        time.Time      `json:"timestamp"`
	Source           ReferralSource `json:"source"`
	FollowerEstimate bool           `json:"follower_estimate"`
}

type RewardTier string

const (
	Weekly    RewardTier = "weekly"
	Monthly   RewardTier = "monthly"
	Quarterly RewardTier = "quarterly"
)

type RewardPrize struct {
	Tier     RewardTier `json:"tier"`
	Position int        `json:"position"`
	Label    string     `json:"label"`
	Prize    string     `json:"prize"`
	Amount   int        `json:"amount"`
}

type ProgramRules struct {
	PointsPerFollower        int      `json:"points_per_follower"`
	PointsPerEngagedFollower int      `json:"points_per_engaged_follower"`
	Prohibited               []string `json:"prohibited"`
	Encouraged               []string `json:"encouraged"`
}

type ContentTheme struct {
	Day         string `json:"day"`
	Theme       string `json:"theme"`
	Description string `json:"description"`
}
