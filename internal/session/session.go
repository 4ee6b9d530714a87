// Package session holds the admin's identity for the lifetime of the
// console. One manager is the single subscription point for session state;
// nothing else re-derives it.
package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/clubpro-dev/qistadmin/internal/toast"
	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// State is the session lifecycle.
type State int

const (
	Uninitialized State = iota
	Loading
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	}
	return "unknown"
}

// ErrAlreadyAuthenticated guards the login flow the way the login page
// redirects an already logged-in user away.
var ErrAlreadyAuthenticated = errors.New("already logged in")

// ErrNotAuthenticated guards commands that require a session.
var ErrNotAuthenticated = errors.New("not logged in")

// Store persists the bearer token between runs.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Authenticator exchanges credentials for a token; satisfied by the API
// client.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (sdk.LoginResult, error)
}

type Config struct {
	Store    Store
	Notifier toast.Notifier
	Logger   *zap.SugaredLogger
	// OnChange is invoked after every state transition.
	OnChange func(State)
}

// Manager is the process-wide session holder.
type Manager struct {
	mu     sync.Mutex
	cfg    Config
	state  State
	token  string
	claims UnverifiedClaims
}

func New(cfg Config) *Manager {
	if cfg.Notifier == nil {
		cfg.Notifier = toast.Nop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	return &Manager{cfg: cfg, state: Uninitialized}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Claims returns the decoded display claims. Zero value unless
// Authenticated.
func (m *Manager) Claims() UnverifiedClaims {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.claims
}

// Token returns the current bearer token; it implements the client's
// TokenSource so every outgoing request reads it fresh.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Restore rehydrates the session from the store. A persisted token that no
// longer decodes is cleared and the session becomes Anonymous with a toast.
func (m *Manager) Restore() State {
	m.transition(Loading, "", UnverifiedClaims{})
	tok, err := m.cfg.Store.Load()
	if err != nil || tok == "" {
		m.transition(Anonymous, "", UnverifiedClaims{})
		return Anonymous
	}
	claims, err := DecodeUnverified(tok)
	if err != nil {
		m.cfg.Logger.Warnw("stored token failed to decode", "err", err)
		if cerr := m.cfg.Store.Clear(); cerr != nil {
			m.cfg.Logger.Warnw("token clear failed", "err", cerr)
		}
		m.cfg.Notifier.Errorf("session expired, please log in again")
		m.transition(Anonymous, "", UnverifiedClaims{})
		return Anonymous
	}
	m.transition(Authenticated, tok, claims)
	return Authenticated
}

// Login delegates to the backend through the given authenticator, typically
// the API client. On success the token is persisted and the session becomes
// Authenticated; on failure it stays Anonymous, the server's message is
// surfaced and nothing is persisted.
func (m *Manager) Login(ctx context.Context, auth Authenticator, email, password string) error {
	if m.State() == Authenticated {
		return ErrAlreadyAuthenticated
	}
	m.transition(Loading, "", UnverifiedClaims{})
	res, err := auth.Login(ctx, email, password)
	if err != nil {
		var apiErr *sdk.APIError
		if errors.As(err, &apiErr) {
			m.cfg.Notifier.Errorf("%s", apiErr.UserMessage())
		} else {
			m.cfg.Notifier.Errorf("login failed, please try again")
		}
		m.transition(Anonymous, "", UnverifiedClaims{})
		return err
	}
	claims, err := DecodeUnverified(res.Token)
	if err != nil {
		m.cfg.Notifier.Errorf("login failed, please try again")
		m.transition(Anonymous, "", UnverifiedClaims{})
		return err
	}
	if err := m.cfg.Store.Save(res.Token); err != nil {
		m.cfg.Logger.Warnw("token persist failed", "err", err)
	}
	m.transition(Authenticated, res.Token, claims)
	return nil
}

// Logout clears the token unconditionally. No server call is involved.
func (m *Manager) Logout() {
	if err := m.cfg.Store.Clear(); err != nil {
		m.cfg.Logger.Warnw("token clear failed", "err", err)
	}
	m.transition(Anonymous, "", UnverifiedClaims{})
}

// Require returns ErrNotAuthenticated unless the session is Authenticated.
// Resource commands call this before doing anything.
func (m *Manager) Require() error {
	if m.State() != Authenticated {
		return ErrNotAuthenticated
	}
	return nil
}

func (m *Manager) transition(s State, token string, claims UnverifiedClaims) {
	m.mu.Lock()
	m.state = s
	m.token = token
	m.claims = claims
	onChange := m.cfg.OnChange
	m.mu.Unlock()
	if onChange != nil {
		onChange(s)
	}
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu  sync.Mutex
	tok string
}

func (s *MemStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tok, nil
}

func (s *MemStore) Save(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = tok
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = ""
	return nil
}
