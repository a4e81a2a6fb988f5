package service

import (
	"context"
	"fmt"

	"content-hub/internal/model"
)

var weeklyContentThemes = []model.ContentTheme{
	{Day: "Monday", Theme: "Market Insights", Description: "Dubai property trends this week"},
	{Day: "Wednesday", Theme: "Property Spotlight", Description: "Feature a new development"},
	{Day: "Friday", Theme: "Expo Updates", Description: "Behind-the-scenes, countdown to next event"},
	{Day: "Weekend", Theme: "Lifestyle Content", Description: "Dubai living, investment tips"},
}

var landingFeatures = []string{
	"Premium property developers",
	"Exclusive pre-launch offers",
	"Industry networking events",
	"Expert market insights",
}

var instagramHighlights = []string{
	"Latest property launches",
	"Expo updates & dates",
	"Exclusive behind-the-scenes content",
	"Special investor opportunities",
}

type ShareTemplates struct {
	WhatsApp       string `json:"whatsapp"`
	EmailSignature string `json:"email_signature"`
	LinkedIn       string `json:"linkedin"`
	ReferralCard   string `json:"referral_card"`
}

type ReferralKit struct {
	Employee  model.ReferralEmployee `json:"employee"`
	Stats     model.ReferralStats    `json:"stats"`
	Link      string                 `json:"link"`
	Templates ShareTemplates         `json:"templates"`
	Themes    []model.ContentTheme   `json:"themes"`
}

type LandingPage struct {
	Employee   model.ReferralEmployee `json:"employee"`
	Link       string                 `json:"link"`
	Handle     string                 `json:"handle"`
	Features   []string               `json:"features"`
	Highlights []string               `json:"highlights"`
}

// ShareKitService renders the ambassador sharing material.
type ShareKitService struct {
	referral *ReferralService
	linkBase string
	handle   string
}

func NewShareKitService(referral *ReferralService, linkBase, handle string) *ShareKitService {
	return &ShareKitService{referral: referral, linkBase: linkBase, handle: handle}
}

func (s *ShareKitService) Link(code string) string { return s.linkBase + code }

func (s *ShareKitService) Handle() string { return s.handle }

func (s *ShareKitService) Templates(employeeName, link string) ShareTemplates {
	return ShareTemplates{
		WhatsApp: fmt.Sprintf("Hi! 👋\n\nI'm inviting you to follow %s on Instagram - Dubai's biggest property show "+
			"where you'll find the latest launches, investment opportunities, and expo updates.\n\n"+
			"Follow through my link and stay updated:\n%s\n\nSee you at the next expo! 🏢", s.handle, link),
		EmailSignature: fmt.Sprintf("---\n📸 Follow DPS Expo on Instagram\n%s\nYour gateway to Dubai's property market", link),
		LinkedIn: fmt.Sprintf("Excited to share that DPS Expo is bringing the best of Dubai's real estate market to one platform!\n\n"+
			"If you're interested in property investment, development updates, or attending our upcoming expo, "+
			"follow %s on Instagram.\n\n%s\n\n#DubaiRealEstate #PropertyInvestment #DPSExpo", s.handle, link),
		ReferralCard: fmt.Sprintf("🎉 You're Invited to Follow DPS Expo!\n\n"+
			"Your colleague %s invites you to join Dubai's premier property expo community.\n\n"+
			"Get exclusive access to:\n• New property launches\n• Investment opportunities\n"+
			"• Expo early bird tickets\n• Market insights\n\n👉 Follow now: %s\n\n"+
			"#DPSExpo #DubaiRealEstate #PropertyShow", employeeName, link),
	}
}

func (s *ShareKitService) Kit(code string) (ReferralKit, error) {
	emp, err := s.referral.Employee(code)
	if err != nil {
		return ReferralKit{}, err
	}
	st, err := s.referral.StatsFor(code)
	if err != nil {
		return ReferralKit{}, err
	}
	link := s.Link(code)
	return ReferralKit{
		Employee:  emp,
		Stats:     st,
		Link:      link,
		Templates: s.Templates(emp.Name, link),
		Themes:    append([]model.ContentTheme(nil), weeklyContentThemes...),
	}, nil
}

func (s *ShareKitService) Landing(code string) (LandingPage, error) {
	emp, err := s.referral.Employee(code)
	if err != nil {
		return LandingPage{}, err
	}
	return LandingPage{
		Employee:   emp,
		Link:       s.Link(code),
		Handle:     s.handle,
		Features:   append([]string(nil), landingFeatures...),
		Highlights: append([]string(nil), instagramHighlights...),
	}, nil
}

// Follow is the landing page's follow button: a direct visit counted as a follower.
func (s *ShareKitService) Follow(ctx context.Context, code string) (model.ReferralRecord, error) {
	return s.referral.RecordClick(ctx, code, model.SourceDirect, true)
}
