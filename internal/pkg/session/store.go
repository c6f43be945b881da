package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/models"
)

// Identity selects which token pair an operation applies to
type Identity int

const (
	// Primary is the logged-in user's own token pair
	Primary Identity = iota
	// Impersonated is the admin-issued override pair
	Impersonated
)

func (i Identity) String() string {
	if i == Impersonated {
		return "impersonated"
	}
	return "primary"
}

func (i Identity) keys() (access, refresh string) {
	if i == Impersonated {
		return constants.KeyImpersonationAccessToken, constants.KeyImpersonationRefreshToken
	}
	return constants.KeyAccessToken, constants.KeyRefreshToken
}

// Store is the typed view of the session keys on top of a Repository
type Store struct {
	repo Repository
}

// NewStore creates a session store backed by repo
func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Load reads the whole session; missing keys are left empty
func (s *Store) Load(ctx context.Context) (models.Session, error) {
	var sess models.Session
	fields := []struct {
		key string
		dst *string
	}{
		{constants.KeyAccessToken, &sess.AccessToken},
		{constants.KeyRefreshToken, &sess.RefreshToken},
		{constants.KeyUserRole, &sess.Role},
		{constants.KeyImpersonationAccessToken, &sess.ImpersonationAccessToken},
		{constants.KeyImpersonationRefreshToken, &sess.ImpersonationRefreshToken},
		{constants.KeyImpersonationRole, &sess.ImpersonationRole},
	}
	for _, f := range fields {
		v, _, err := s.repo.Get(ctx, f.key)
		if err != nil {
			return models.Session{}, err
		}
		*f.dst = v
	}

	raw, ok, err := s.repo.Get(ctx, constants.KeyPermissions)
	if err != nil {
		return models.Session{}, err
	}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &sess.Permissions); err != nil {
			return models.Session{}, fmt.Errorf("failed to decode permissions: %w", err)
		}
	}
	return sess, nil
}

// SaveLogin stores a fresh primary session and drops any impersonation left behind
func (s *Store) SaveLogin(ctx context.Context, auth models.AuthResponse, role string) error {
	perms, err := json.Marshal(nonNil(auth.Permissions))
	if err != nil {
		return fmt.Errorf("failed to encode permissions: %w", err)
	}

	if err := s.setAll(ctx, map[string]string{
		constants.KeyAccessToken:  auth.AccessToken,
		constants.KeyRefreshToken: auth.RefreshToken,
		constants.KeyUserRole:     role,
		constants.KeyPermissions:  string(perms),
	}); err != nil {
		return err
	}
	return s.EndImpersonation(ctx)
}

// UpdateTokens stores a refreshed access token and, when rotated, the new refresh token
func (s *Store) UpdateTokens(ctx context.Context, id Identity, access, refresh string) error {
	accessKey, refreshKey := id.keys()
	values := map[string]string{accessKey: access}
	if refresh != "" {
		values[refreshKey] = refresh
	}
	return s.setAll(ctx, values)
}

// RefreshToken returns the refresh token of the given identity
func (s *Store) RefreshToken(ctx context.Context, id Identity) (string, error) {
	_, refreshKey := id.keys()
	v, _, err := s.repo.Get(ctx, refreshKey)
	return v, err
}

// ClearTokens removes the access/refresh pair of one identity
func (s *Store) ClearTokens(ctx context.Context, id Identity) error {
	accessKey, refreshKey := id.keys()
	keys := []string{accessKey, refreshKey}
	if id == Impersonated {
		keys = append(keys, constants.KeyImpersonationRole)
	}
	return s.removeAll(ctx, keys...)
}

// StartImpersonation stores the override pair issued for another user
func (s *Store) StartImpersonation(ctx context.Context, auth models.AuthResponse) error {
	return s.setAll(ctx, map[string]string{
		constants.KeyImpersonationAccessToken:  auth.AccessToken,
		constants.KeyImpersonationRefreshToken: auth.RefreshToken,
		constants.KeyImpersonationRole:         auth.Role,
	})
}

// EndImpersonation drops the override pair
func (s *Store) EndImpersonation(ctx context.Context) error {
	return s.ClearTokens(ctx, Impersonated)
}

// Logout destroys the whole session
func (s *Store) Logout(ctx context.Context) error {
	return s.removeAll(ctx,
		constants.KeyAccessToken,
		constants.KeyRefreshToken,
		constants.KeyUserRole,
		constants.KeyPermissions,
		constants.KeyImpersonationAccessToken,
		constants.KeyImpersonationRefreshToken,
		constants.KeyImpersonationRole,
		constants.KeyLastVisitedURL,
	)
}

// BearerToken resolves the token outbound calls use: a non-blank impersonation token wins
func (s *Store) BearerToken(ctx context.Context) (string, Identity, error) {
	imp, _, err := s.repo.Get(ctx, constants.KeyImpersonationAccessToken)
	if err != nil {
		return "", Primary, err
	}
	if strings.TrimSpace(imp) != "" {
		return imp, Impersonated, nil
	}
	access, _, err := s.repo.Get(ctx, constants.KeyAccessToken)
	if err != nil {
		return "", Primary, err
	}
	return access, Primary, nil
}

// SaveLastVisited remembers the URL a guard turned away
func (s *Store) SaveLastVisited(ctx context.Context, url string) error {
	return s.repo.Set(ctx, constants.KeyLastVisitedURL, url)
}

// PopLastVisited returns and forgets the remembered URL
func (s *Store) PopLastVisited(ctx context.Context) (string, error) {
	v, ok, err := s.repo.Get(ctx, constants.KeyLastVisitedURL)
	if err != nil || !ok {
		return "", err
	}
	if err := s.repo.Remove(ctx, constants.KeyLastVisitedURL); err != nil {
		return "", err
	}
	return v, nil
}

func (s *Store) setAll(ctx context.Context, values map[string]string) error {
	for k, v := range values {
		if err := s.repo.Set(ctx, k, v); err != nil {
			return fmt.Errorf("failed to store %s: %w", k, err)
		}
	}
	return nil
}

func (s *Store) removeAll(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if err := s.repo.Remove(ctx, k); err != nil {
			return fmt.Errorf("failed to remove %s: %w", k, err)
		}
	}
	return nil
}

func nonNil(perms []string) []string {
	if perms == nil {
		return []string{}
	}
	return perms
}
