package models

import (
	"github.com/google/go-github/v57/github"
)

// Stargazer represents a GitHub user who starred the repository
type Stargazer struct {
	Login      string  `json:"login"`
	Name       *string `json:"name"`
	AvatarURL  string  `json:"avatar_url"`
	ProfileURL string  `json:"html_url"`
}

// NewStargazerFromAPI converts a user record from the stargazers listing
func NewStargazerFromAPI(user *github.User) *Stargazer {
	s := &Stargazer{
		Login:      user.GetLogin(),
		AvatarURL:  user.GetAvatarURL(),
		ProfileURL: user.GetHTMLURL(),
	}
	if user.Name != nil {
		name := *user.Name
		s.Name = &name
	}
	return s
}

// Caption is the display name, or the login when no name is set.
func (s *Stargazer) Caption() string {
	if s.Name != nil && *s.Name != "" {
		return *s.Name
	}
	return s.Login
}

// DisplayName returns the name or an empty string
func (s *Stargazer) DisplayName() string {
	if s.Name == nil {
		return ""
	}
	return *s.Name
}
