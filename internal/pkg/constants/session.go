package constants

// Session storage keys
const (
	KeyAccessToken               = "access_token"
	KeyRefreshToken              = "refresh_token"
	KeyUserRole                  = "user_role"
	KeyPermissions               = "permissions"
	KeyImpersonationAccessToken  = "impersonation_access_token"
	KeyImpersonationRefreshToken = "impersonation_refresh_token"
	KeyImpersonationRole         = "impersonation_role"
	KeyLastVisitedURL            = "lastVisitedURL"
)
