package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
)

// Echo context keys set by the guards
const (
	ContextKeySession  = "session"
	ContextKeyUserRole = "user_role"
)

// SessionReader is the part of the session store the guards need
type SessionReader interface {
	Load(ctx context.Context) (models.Session, error)
	SaveLastVisited(ctx context.Context, url string) error
}

// GuardConfig describes one protected route tree
type GuardConfig struct {
	AllowedRoles []string
	LoginPath    string
	// AdmitImpersonatedRole admits a session impersonating this role even when
	// the primary role is not allowed
	AdmitImpersonatedRole string
}

// IsAuthenticated reports whether a primary access token is present
func IsAuthenticated(sess models.Session) bool {
	return sess.IsAuthenticated()
}

// IsAuthorized reports whether the session is authenticated with one of roles
func IsAuthorized(sess models.Session, roles ...string) bool {
	if !IsAuthenticated(sess) {
		return false
	}
	for _, role := range roles {
		if sess.Role == role {
			return true
		}
	}
	return false
}

// Guard redirects sessions that may not enter the route tree to its login screen.
// Token expiry is not checked here; the API client refreshes on 401.
func Guard(store SessionReader, cfg GuardConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			sess, err := store.Load(ctx)
			if err != nil {
				logger.Error("Failed to load session in guard",
					logger.String("path", c.Request().URL.Path),
					logger.Err(err))
				return redirectToLogin(c, store, cfg.LoginPath)
			}

			role, ok := admit(sess, cfg)
			if !ok {
				logger.Info("Route guard rejected session",
					logger.String("path", c.Request().URL.Path),
					logger.String("role", sess.Role),
					logger.Bool("authenticated", IsAuthenticated(sess)))
				return redirectToLogin(c, store, cfg.LoginPath)
			}

			c.Set(ContextKeySession, sess)
			c.Set(ContextKeyUserRole, role)
			return next(c)
		}
	}
}

// AdminGuard protects /admin
func AdminGuard(store SessionReader) echo.MiddlewareFunc {
	return Guard(store, GuardConfig{
		AllowedRoles: []string{constants.RoleAdmin},
		LoginPath:    constants.AdminLoginPath,
	})
}

// DriverGuard protects /driver; an admin impersonating a driver is let in
func DriverGuard(store SessionReader) echo.MiddlewareFunc {
	return Guard(store, GuardConfig{
		AllowedRoles:          []string{constants.RoleDriver},
		LoginPath:             constants.DriverLoginPath,
		AdmitImpersonatedRole: constants.RoleDriver,
	})
}

// CustomerGuard protects /customer
func CustomerGuard(store SessionReader) echo.MiddlewareFunc {
	return Guard(store, GuardConfig{
		AllowedRoles: []string{constants.RoleCustomer},
		LoginPath:    constants.CustomerLoginPath,
	})
}

// SessionFromContext returns the session a guard admitted
func SessionFromContext(c echo.Context) (models.Session, bool) {
	sess, ok := c.Get(ContextKeySession).(models.Session)
	return sess, ok
}

func admit(sess models.Session, cfg GuardConfig) (string, bool) {
	if cfg.AdmitImpersonatedRole != "" && sess.IsImpersonating() && sess.ImpersonationRole == cfg.AdmitImpersonatedRole {
		return sess.ImpersonationRole, true
	}
	if IsAuthorized(sess, cfg.AllowedRoles...) {
		return sess.Role, true
	}
	return "", false
}

func redirectToLogin(c echo.Context, store SessionReader, loginPath string) error {
	if err := store.SaveLastVisited(c.Request().Context(), c.Request().URL.RequestURI()); err != nil {
		logger.Warn("Failed to remember rejected route", logger.Err(err))
	}
	return c.Redirect(http.StatusFound, loginPath)
}
