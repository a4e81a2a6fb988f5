package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PostDraft is what the composer submits; ID and uploader are assigned on save.
type PostDraft struct {
	Date     string   `json:"date"`
	Content  string   `json:"content"`
	Platform Platform `json:"platform"`
	Client   Client   `json:"client"`
	Time     string   `json:"time"`
	File     *FileRef `json:"file,omitempty"`
}

type ChatRequest struct {
	Text string `json:"text"`
}

type ComposerRequest struct {
	Date string `json:"date" binding:"required"`
}

type ReferralViewRequest struct {
	View         string `json:"view"`
	EmployeeCode string `json:"employee_code"`
}

type ImportConfirmRequest struct {
	Token string `json:"token" binding:"required"`
}

// StatsPatch carries the fields of ReferralStats a caller wants to overwrite.
type StatsPatch struct {
	LinksShared        *int     `json:"links_shared,omitempty"`
	LinkClicks         *int     `json:"link_clicks,omitempty"`
	EstimatedFollowers *int     `json:"estimated_followers,omitempty"`
	LastWeekFollowers  *int     `json:"last_week_followers,omitempty"`
	ThisMonthFollowers *int     `json:"this_month_followers,omitempty"`
	EngagementRate     *float64 `json:"engagement_rate,omitempty"`
}
