package models

import (
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
)

func TestNewStargazerFromAPI(t *testing.T) {
	user := &github.User{
		Login:     github.String("octocat"),
		Name:      github.String("The Octocat"),
		AvatarURL: github.String("https://avatars.githubusercontent.com/u/583231"),
		HTMLURL:   github.String("https://github.com/octocat"),
	}

	s := NewStargazerFromAPI(user)

	assert.Equal(t, "octocat", s.Login)
	assert.Equal(t, "The Octocat", s.DisplayName())
	assert.Equal(t, "https://avatars.githubusercontent.com/u/583231", s.AvatarURL)
	assert.Equal(t, "https://github.com/octocat", s.ProfileURL)
}

func TestStargazerCaption(t *testing.T) {
	name := "Bee"
	empty := ""

	assert.Equal(t, "a", (&Stargazer{Login: "a"}).Caption())
	assert.Equal(t, "Bee", (&Stargazer{Login: "b", Name: &name}).Caption())
	assert.Equal(t, "c", (&Stargazer{Login: "c", Name: &empty}).Caption())
	assert.Equal(t, "c", NewStargazerFromAPI(&github.User{Login: github.String("c")}).Caption())
}
