package models

import "strings"

// Session is the locally stored authentication state
type Session struct {
	AccessToken               string   `json:"access_token,omitempty"`
	RefreshToken              string   `json:"refresh_token,omitempty"`
	Role                      string   `json:"role,omitempty"`
	Permissions               []string `json:"permissions,omitempty"`
	ImpersonationAccessToken  string   `json:"impersonation_access_token,omitempty"`
	ImpersonationRefreshToken string   `json:"impersonation_refresh_token,omitempty"`
	ImpersonationRole         string   `json:"impersonation_role,omitempty"`
}

// IsAuthenticated reports whether a primary access token is present
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// IsImpersonating reports whether a non-blank impersonation token is present
func (s Session) IsImpersonating() bool {
	return strings.TrimSpace(s.ImpersonationAccessToken) != ""
}

// BearerToken is the token outbound requests authenticate with
func (s Session) BearerToken() string {
	if s.IsImpersonating() {
		return s.ImpersonationAccessToken
	}
	return s.AccessToken
}

// HasPermission reports whether the permission set contains perm
func (s Session) HasPermission(perm string) bool {
	for _, p := range s.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
