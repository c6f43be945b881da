package models

// LoginRequest is forwarded to the backend login endpoint
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Mobile   string `json:"mobile_number,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// OTPRequest asks the backend to send a login code to a mobile number
type OTPRequest struct {
	Mobile string `json:"mobile_number"`
	Role   string `json:"role,omitempty"`
}

// OTPLoginRequest completes an OTP login
type OTPLoginRequest struct {
	Mobile string `json:"mobile_number"`
	OTP    string `json:"otp"`
	Role   string `json:"role,omitempty"`
}

// AuthResponse is the token bundle the backend returns on login, OTP login and impersonation
type AuthResponse struct {
	AccessToken  string   `json:"access"`
	RefreshToken string   `json:"refresh"`
	Role         string   `json:"role,omitempty"`
	Permissions  []string `json:"permissions,omitempty"`
}

// RefreshRequest is sent to the token refresh endpoint
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries the new access token; Refresh is set when the backend rotates it
type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// SessionSummary is what the local session endpoint exposes
type SessionSummary struct {
	Authenticated     bool     `json:"authenticated"`
	Role              string   `json:"role,omitempty"`
	UserID            string   `json:"user_id,omitempty"`
	Permissions       []string `json:"permissions,omitempty"`
	Impersonating     bool     `json:"impersonating"`
	ImpersonationRole string   `json:"impersonation_role,omitempty"`
}

// LoginResult tells the login screen where to go next
type LoginResult struct {
	Role       string         `json:"role"`
	RedirectTo string         `json:"redirect_to"`
	Session    SessionSummary `json:"session"`
}
