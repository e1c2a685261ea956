package gateway

import (
	"encoding/base64"
	"strings"
	"sync"
)

// Session is the single source of truth for authentication state. It is
// mutated only by Initialize, Reset, SetLoggedIn and SetBaseURL; endpoint
// methods read it through the transport's AuthProvider view and never
// write to it.
type Session struct {
	mu         sync.RWMutex
	phone      string
	password   string
	authHeader string
	baseURL    string
	driverID   int64
	loggedIn   bool
}

// NewSession creates an empty session with an optional initial base URL
func NewSession(baseURL string) *Session {
	return &Session{baseURL: NormalizeBaseURL(baseURL)}
}

// NormalizeBaseURL trims whitespace and the trailing slash and prepends
// https:// when no scheme is present. Empty input stays empty.
func NormalizeBaseURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	url = strings.TrimSuffix(url, "/")
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

// Initialize computes the Basic auth header from phone:password and sets
// the session fields. It does not contact the network and does not mark
// the session logged in.
func (s *Session) Initialize(phone, password, baseURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phone = phone
	s.password = password
	if baseURL != "" {
		s.baseURL = NormalizeBaseURL(baseURL)
	}

	credentials := phone + ":" + password
	s.authHeader = "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

// Reset clears every field; used by logout and hard failure recovery
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phone = ""
	s.password = ""
	s.authHeader = ""
	s.baseURL = ""
	s.driverID = 0
	s.loggedIn = false
}

// SetLoggedIn marks the session authenticated with the given driver ID
func (s *Session) SetLoggedIn(driverID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.driverID = driverID
	s.loggedIn = true
}

// SetBaseURL replaces the backend base URL, normalized
func (s *Session) SetBaseURL(baseURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = NormalizeBaseURL(baseURL)
}

// BaseURL returns the normalized backend base URL
func (s *Session) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURL
}

// AuthHeader returns the Authorization header value and whether one exists
func (s *Session) AuthHeader() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authHeader, s.authHeader != ""
}

// LoggedIn reports whether the session is authenticated
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// DriverID returns the authenticated driver's identifier, 0 when logged out
func (s *Session) DriverID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.driverID
}

// Phone returns the phone number used for the current session
func (s *Session) Phone() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phone
}
