package api

import (
	"context"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/session"
)

// SettingsClient reads and updates the account profile.
type SettingsClient struct {
	session *session.Manager
}

func NewSettingsClient(s *session.Manager) *SettingsClient {
	return &SettingsClient{session: s}
}

// Profile fetches the current account profile from the API.
func (c *SettingsClient) Profile(ctx context.Context) (core.User, error) {
	var out core.User
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodGet,
		Path:         "/auth/profile",
		RequiresAuth: true,
	}, &out)
	return out, err
}

type profileUpdateResponse struct {
	User core.User `json:"user"`
}

// UpdateProfile changes the profile name and refreshes the cached user so
// the durable copy matches what the server accepted.
func (c *SettingsClient) UpdateProfile(ctx context.Context, name string) (core.User, error) {
	var out profileUpdateResponse
	err := c.session.Do(ctx, &session.Call{
		Method:       http.MethodPut,
		Path:         "/settings/profile",
		Body:         map[string]string{"name": name},
		RequiresAuth: true,
	}, &out)
	if err != nil {
		return core.User{}, err
	}
	if err := c.session.SetCachedUser(ctx, &out.User); err != nil {
		return core.User{}, err
	}
	return out.User, nil
}
