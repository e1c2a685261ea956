package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare host gets https", "api.taxihub.pl", "https://api.taxihub.pl"},
		{"trailing slash trimmed", "https://api.taxihub.pl/", "https://api.taxihub.pl"},
		{"http preserved", "http://localhost:8080", "http://localhost:8080"},
		{"whitespace trimmed", "  https://api.taxihub.pl  ", "https://api.taxihub.pl"},
		{"empty stays empty", "", ""},
		{"whitespace only stays empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBaseURL(tt.in))
		})
	}
}

func TestSessionInitialize(t *testing.T) {
	s := NewSession("")
	s.Initialize("500123456", "secret", "api.taxihub.pl")

	// base64("500123456:secret")
	header, ok := s.AuthHeader()
	assert.True(t, ok)
	assert.Equal(t, "Basic NTAwMTIzNDU2OnNlY3JldA==", header)

	assert.Equal(t, "https://api.taxihub.pl", s.BaseURL())
	assert.Equal(t, "500123456", s.Phone())

	// Initialize prepares auth material but never authenticates by itself
	assert.False(t, s.LoggedIn())
	assert.Equal(t, int64(0), s.DriverID())
}

func TestSessionInitializeKeepsBaseURLWhenOmitted(t *testing.T) {
	s := NewSession("https://api.taxihub.pl")
	s.Initialize("500123456", "secret", "")
	assert.Equal(t, "https://api.taxihub.pl", s.BaseURL())
}

func TestSessionLoginCycle(t *testing.T) {
	s := NewSession("")
	s.Initialize("500123456", "secret", "api.taxihub.pl")
	s.SetLoggedIn(15)

	assert.True(t, s.LoggedIn())
	assert.Equal(t, int64(15), s.DriverID())

	s.Reset()
	assert.False(t, s.LoggedIn())
	assert.Equal(t, int64(0), s.DriverID())
	assert.Equal(t, "", s.BaseURL())
	_, ok := s.AuthHeader()
	assert.False(t, ok)
}

func TestSessionEmptyAuthHeader(t *testing.T) {
	s := NewSession("https://api.taxihub.pl")
	_, ok := s.AuthHeader()
	assert.False(t, ok)
}
