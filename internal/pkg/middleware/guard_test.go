package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedEcho(store *session.Store) *echo.Echo {
	e := echo.New()
	ok := func(c echo.Context) error {
		role, _ := c.Get(ContextKeyUserRole).(string)
		return c.String(http.StatusOK, role)
	}
	e.GET("/admin/dashboard", ok, AdminGuard(store))
	e.GET("/driver/home", ok, DriverGuard(store))
	e.GET("/customer/home", ok, CustomerGuard(store))
	return e
}

func newSessionStore(t *testing.T, values map[string]string) *session.Store {
	repo := session.NewMemoryRepository()
	for k, v := range values {
		require.NoError(t, repo.Set(context.Background(), k, v))
	}
	return session.NewStore(repo)
}

func TestGuards(t *testing.T) {
	tests := []struct {
		name         string
		session      map[string]string
		path         string
		wantStatus   int
		wantLocation string
		wantRole     string
	}{
		{
			name:         "customer on driver route",
			session:      map[string]string{constants.KeyAccessToken: "t", constants.KeyUserRole: constants.RoleCustomer},
			path:         "/driver/home",
			wantStatus:   http.StatusFound,
			wantLocation: constants.DriverLoginPath,
		},
		{
			name:         "anonymous on admin route",
			session:      map[string]string{},
			path:         "/admin/dashboard",
			wantStatus:   http.StatusFound,
			wantLocation: constants.AdminLoginPath,
		},
		{
			name:         "role without token",
			session:      map[string]string{constants.KeyUserRole: constants.RoleCustomer},
			path:         "/customer/home",
			wantStatus:   http.StatusFound,
			wantLocation: constants.CustomerLoginPath,
		},
		{
			name:       "customer on customer route",
			session:    map[string]string{constants.KeyAccessToken: "t", constants.KeyUserRole: constants.RoleCustomer},
			path:       "/customer/home",
			wantStatus: http.StatusOK,
			wantRole:   constants.RoleCustomer,
		},
		{
			name:       "driver on driver route",
			session:    map[string]string{constants.KeyAccessToken: "t", constants.KeyUserRole: constants.RoleDriver},
			path:       "/driver/home",
			wantStatus: http.StatusOK,
			wantRole:   constants.RoleDriver,
		},
		{
			name: "admin impersonating driver",
			session: map[string]string{
				constants.KeyAccessToken:              "admin",
				constants.KeyUserRole:                 constants.RoleAdmin,
				constants.KeyImpersonationAccessToken: "imp",
				constants.KeyImpersonationRole:        constants.RoleDriver,
			},
			path:       "/driver/home",
			wantStatus: http.StatusOK,
			wantRole:   constants.RoleDriver,
		},
		{
			name: "blank impersonation token",
			session: map[string]string{
				constants.KeyAccessToken:              "admin",
				constants.KeyUserRole:                 constants.RoleAdmin,
				constants.KeyImpersonationAccessToken: " ",
				constants.KeyImpersonationRole:        constants.RoleDriver,
			},
			path:         "/driver/home",
			wantStatus:   http.StatusFound,
			wantLocation: constants.DriverLoginPath,
		},
		{
			name: "admin impersonating customer on customer route",
			session: map[string]string{
				constants.KeyAccessToken:              "admin",
				constants.KeyUserRole:                 constants.RoleAdmin,
				constants.KeyImpersonationAccessToken: "imp",
				constants.KeyImpersonationRole:        constants.RoleCustomer,
			},
			path:         "/customer/home",
			wantStatus:   http.StatusFound,
			wantLocation: constants.CustomerLoginPath,
		},
		{
			name:       "admin on admin route",
			session:    map[string]string{constants.KeyAccessToken: "t", constants.KeyUserRole: constants.RoleAdmin},
			path:       "/admin/dashboard",
			wantStatus: http.StatusOK,
			wantRole:   constants.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newGuardedEcho(newSessionStore(t, tt.session))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantRole != "" {
				assert.Equal(t, tt.wantRole, rec.Body.String())
			}
		})
	}
}

func TestGuard_RemembersRejectedURL(t *testing.T) {
	store := newSessionStore(t, nil)
	e := newGuardedEcho(store)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/driver/home?tab=requests", nil))
	require.Equal(t, http.StatusFound, rec.Code)

	last, err := store.PopLastVisited(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/driver/home?tab=requests", last)
}

func TestIsAuthorized(t *testing.T) {
	store := newSessionStore(t, map[string]string{constants.KeyAccessToken: "t", constants.KeyUserRole: constants.RoleDriver})
	sess, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.True(t, IsAuthenticated(sess))
	assert.True(t, IsAuthorized(sess, constants.RoleAdmin, constants.RoleDriver))
	assert.False(t, IsAuthorized(sess, constants.RoleCustomer))
	assert.False(t, IsAuthorized(sess))
}
