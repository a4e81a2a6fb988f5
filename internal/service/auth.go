package service

import (
	"strings"

	"content-hub/internal/config"
	"content-hub/internal/model"

	"golang.org/x/crypto/bcrypt"
)

var mockUser = model.User{
	ID:        "user-1",
	Name:      "Riaz",
	Email:     "riaz@example.com",
	AvatarURL: "https://i.pravatar.cc/150?u=riaz",
}

// AuthService is a mock login. Without configured accounts any non-empty
// credential pair signs in as the demo user; it guards nothing.
type AuthService struct {
	accounts []config.Account
	activity *ActivityService
}

func NewAuthService(accounts []config.Account, activity *ActivityService) *AuthService {
	return &AuthService{accounts: accounts, activity: activity}
}

func (s *AuthService) Login(email, password string) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.User{}, ErrEmptyCredentials
	}

	u := mockUser
	u.Email = email
	if len(s.accounts) > 0 {
		acct, idx := s.find(email)
		if idx < 0 || bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
			return model.User{}, ErrInvalidCredentials
		}
		u = accountUser(acct)
	}

	if s.activity != nil {
		s.activity.Log(u.Name, "logged in")
	}
	return u, nil
}

func (s *AuthService) Logout(u model.User) {
	if s.activity != nil && u.Name != "" {
		s.activity.Log(u.Name, "logged out")
	}
}

func (s *AuthService) find(email string) (config.Account, int) {
	for i, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			return a, i
		}
	}
	return config.Account{}, -1
}

func accountUser(a config.Account) model.User {
	seed := strings.ToLower(strings.SplitN(a.Name, " ", 2)[0])
	return model.User{
		ID:        "acct-" + strings.ToLower(a.Email),
		Name:      a.Name,
		Email:     a.Email,
		AvatarURL: "https://i.pravatar.cc/150?u=" + seed,
	}
}
