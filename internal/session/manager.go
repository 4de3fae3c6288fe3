// Package session owns the authenticated HTTP pipeline: it attaches the
// access credential to outgoing calls, detects authorization failure,
// performs a single silent refresh, and replays the failed call once.
//
// All durable session state goes through the credential store; no other
// component reads or writes those keys.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/credstore"
	"fintrack/internal/log"
)

// State is the session lifecycle state.
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
	Refreshing
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Refreshing:
		return "refreshing"
	default:
		return "unauthenticated"
	}
}

// Manager coordinates login, logout, session restore, and the
// refresh-and-replay pipeline used by every resource client.
type Manager struct {
	baseURL string
	httpc   *http.Client
	store   *credstore.Store
	logger  *log.Logger

	mu    sync.Mutex
	state State
	user  *core.User
}

func NewManager(baseURL string, store *credstore.Store, timeout time.Duration, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Manager{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		store:   store,
		logger:  logger.WithComponent(log.ComponentSession),
		state:   Unauthenticated,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         core.User `json:"user"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// Login authenticates against the API and, on success, persists both
// credentials and the user profile. A rejected login leaves the credential
// store untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*core.User, error) {
	m.setState(Authenticating)

	status, body, err := m.send(ctx, &Call{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   loginRequest{Email: email, Password: password},
	})
	if err != nil {
		m.setState(Unauthenticated)
		return nil, fmt.Errorf("login: %w: %w", core.ErrNetworkFailure, err)
	}
	if status < 200 || status >= 300 {
		m.setState(Unauthenticated)
		return nil, newAuthError(status, body)
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		m.setState(Unauthenticated)
		return nil, fmt.Errorf("login: decode response: %w", core.ErrUnexpected)
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		m.setState(Unauthenticated)
		return nil, fmt.Errorf("login: encode user profile: %w", err)
	}
	if err := m.store.Set(ctx, credstore.KeyAccessCredential, resp.AccessToken); err != nil {
		m.setState(Unauthenticated)
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := m.store.Set(ctx, credstore.KeyRefreshCredential, resp.RefreshToken); err != nil {
		m.setState(Unauthenticated)
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := m.store.Set(ctx, credstore.KeyUser, string(userJSON)); err != nil {
		m.setState(Unauthenticated)
		return nil, fmt.Errorf("login: %w", err)
	}

	m.mu.Lock()
	m.state = Authenticated
	u := resp.User
	m.user = &u
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "Login succeeded", log.FieldUserEmail, resp.User.Email)
	return &u, nil
}

// Register creates a new account. No credentials are stored; the caller is
// expected to log in afterwards.
func (m *Manager) Register(ctx context.Context, email, password, name string) error {
	status, body, err := m.send(ctx, &Call{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body: map[string]string{
			"email":    email,
			"password": password,
			"name":     name,
		},
	})
	if err != nil {
		return fmt.Errorf("register: %w: %w", core.ErrNetworkFailure, err)
	}
	if status < 200 || status >= 300 {
		return newAPIError(status, body)
	}
	return nil
}

// RestoreSession recovers an authenticated session from the credential store
// without a network call. Validity is assumed until the first API call
// proves otherwise.
func (m *Manager) RestoreSession(ctx context.Context) (*core.User, bool, error) {
	access, haveAccess, err := m.store.Get(ctx, credstore.KeyAccessCredential)
	if err != nil {
		return nil, false, fmt.Errorf("restore session: %w", err)
	}
	userJSON, haveUser, err := m.store.Get(ctx, credstore.KeyUser)
	if err != nil {
		return nil, false, fmt.Errorf("restore session: %w", err)
	}
	if !haveAccess || access == "" || !haveUser {
		return nil, false, nil
	}

	var user core.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, false, fmt.Errorf("restore session: decode cached user: %w", err)
	}

	m.mu.Lock()
	m.state = Authenticated
	m.user = &user
	m.mu.Unlock()

	m.logger.DebugContext(ctx, "Session restored", log.FieldUserEmail, user.Email)
	return &user, true, nil
}

// Logout clears all three credential store entries. The in-memory session
// state is cleared regardless of whether the store clears succeed; any
// storage error is still reported.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.state = Unauthenticated
	m.user = nil
	m.mu.Unlock()

	var errs []error
	for _, key := range []string{
		credstore.KeyAccessCredential,
		credstore.KeyRefreshCredential,
		credstore.KeyUser,
	} {
		if err := m.store.Clear(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("logout: %v", errs)
	}

	m.logger.InfoContext(ctx, "Logged out")
	return nil
}

// CurrentUser returns the in-memory user profile, or nil when no session
// is established.
func (m *Manager) CurrentUser() *core.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SetCachedUser replaces the cached user profile, in memory and in the
// store. Used after a profile update so the durable copy stays current.
func (m *Manager) SetCachedUser(ctx context.Context, user *core.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user profile: %w", err)
	}
	if err := m.store.Set(ctx, credstore.KeyUser, string(userJSON)); err != nil {
		return err
	}
	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return nil
}

// Do executes call against the API and decodes a 2xx JSON body into out
// (when out is non-nil). On an authorization failure it performs at most one
// silent refresh followed by one replay; a second authorization failure, or
// a failed refresh, is surfaced to the caller. A failed refresh never clears
// stored credentials: recovery is the caller's decision.
func (m *Manager) Do(ctx context.Context, call *Call, out any) error {
	for {
		status, body, err := m.send(ctx, call)
		if err != nil {
			return fmt.Errorf("%s %s: %w: %w", call.Method, call.Path, core.ErrNetworkFailure, err)
		}

		if status == http.StatusUnauthorized && call.RequiresAuth && !call.retried {
			if refreshErr := m.refresh(ctx); refreshErr != nil {
				m.logger.WarnContext(ctx, "Silent refresh failed",
					log.FieldPath, call.Path, log.FieldError, refreshErr.Error())
				// Surface the original authorization failure; credentials
				// stay in place and recovery is left to the caller.
				return newAPIError(status, body)
			}
			call.retried = true
			continue
		}

		if status >= 200 && status < 300 {
			if out != nil && len(body) > 0 {
				if err := json.Unmarshal(body, out); err != nil {
					return fmt.Errorf("%s %s: decode response: %w", call.Method, call.Path, core.ErrUnexpected)
				}
			}
			return nil
		}

		return newAPIError(status, body)
	}
}

// refresh exchanges the refresh credential for a new access credential and
// stores it. An absent refresh credential fails without a network attempt.
func (m *Manager) refresh(ctx context.Context) error {
	refreshToken, ok, err := m.store.Get(ctx, credstore.KeyRefreshCredential)
	if err != nil {
		return fmt.Errorf("read refresh credential: %w", err)
	}
	if !ok || refreshToken == "" {
		return fmt.Errorf("no refresh credential available")
	}

	m.setState(Refreshing)
	defer m.setState(Authenticated)

	status, body, err := m.send(ctx, &Call{
		Method: http.MethodPost,
		Path:   "/auth/refresh",
		Body:   refreshRequest{RefreshToken: refreshToken},
	})
	if err != nil {
		return fmt.Errorf("refresh request: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("refresh rejected with status %d", status)
	}

	var resp refreshResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("refresh response missing access credential")
	}

	if err := m.store.Set(ctx, credstore.KeyAccessCredential, resp.AccessToken); err != nil {
		return fmt.Errorf("store refreshed credential: %w", err)
	}

	m.logger.DebugContext(ctx, "Access credential refreshed")
	return nil
}

// send performs a single HTTP round trip. The access credential is read from
// the store on every attempt so a replay picks up the refreshed value.
func (m *Manager) send(ctx context.Context, call *Call) (int, []byte, error) {
	var reqBody io.Reader
	if call.Body != nil {
		encoded, err := json.Marshal(call.Body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, m.baseURL+call.Path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	if call.RequiresAuth {
		access, ok, err := m.store.Get(ctx, credstore.KeyAccessCredential)
		if err != nil {
			return 0, nil, fmt.Errorf("read access credential: %w", err)
		}
		if ok && access != "" {
			req.Header.Set("Authorization", "Bearer "+access)
		}
	}

	start := time.Now()
	resp, err := m.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}

	m.logger.DebugContext(ctx, "API call completed",
		log.NewFields().
			WithRequestID(requestID).
			WithCall(call.Method, call.Path, call.retried).
			WithResponse(resp.StatusCode, time.Since(start).Milliseconds()).
			ToSlice()...)

	return resp.StatusCode, body, nil
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}
