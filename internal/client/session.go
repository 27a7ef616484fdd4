package client

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go-certtrack/internal/domain"

	"go.uber.org/zap"
)

var ErrNotAuthenticated = errors.New("not signed in")

// State is an immutable snapshot of the client session.
type State struct {
	Loading     bool
	Profile     *Profile
	Permissions domain.PermissionSet
}

func (s State) IsLoading() bool { return s.Loading }

func (s State) IsAuthenticated() bool { return !s.Loading && s.Profile != nil }

// HasPermission is false while the session is unresolved.
func (s State) HasPermission(p domain.Permission) bool {
	return s.IsAuthenticated() && s.Permissions.Has(p)
}

// IsAdmin follows the server: manage-users makes an admin.
func (s State) IsAdmin() bool {
	return s.HasPermission(domain.PermManageUsers)
}

// SessionStore owns the signed-in identity and its persisted token.
type SessionStore struct {
	gateway Gateway
	tokens  TokenStore
	logger  *zap.Logger

	mu     sync.Mutex
	state  State
	token  string
	subs   map[int]func(State)
	nextID int
}

func NewSessionStore(gateway Gateway, tokens TokenStore, logger ...*zap.Logger) *SessionStore {
	l := zap.L().Named("client.session")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.session")
	}
	return &SessionStore{
		gateway: gateway,
		tokens:  tokens,
		logger:  l,
		state:   State{Loading: true},
		subs:    make(map[int]func(State)),
	}
}

func (s *SessionStore) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *SessionStore) IsAdmin() bool { return s.Snapshot().IsAdmin() }

func (s *SessionStore) HasPermission(p domain.Permission) bool { return s.Snapshot().HasPermission(p) }

// Subscribe registers fn for every state change. The returned func removes it.
func (s *SessionStore) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// set swaps the state and notifies subscribers outside the lock.
func (s *SessionStore) set(state State, token string) {
	s.mu.Lock()
	s.state = state
	s.token = token
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

func (s *SessionStore) resolve(ctx context.Context, token string) (State, error) {
	profile, err := s.gateway.Me(ctx, token)
	if err != nil {
		return State{}, err
	}
	perms, err := profile.PermissionSet()
	if err != nil {
		return State{}, err
	}
	return State{Profile: &profile, Permissions: perms}, nil
}

// Initialize restores a persisted session. Any failure clears the token and
// leaves the store anonymous; the error is returned for reporting only.
func (s *SessionStore) Initialize(ctx context.Context) error {
	token, err := s.tokens.Load()
	if err != nil || strings.TrimSpace(token) == "" {
		s.set(State{}, "")
		return err
	}

	state, err := s.resolve(ctx, token)
	if err != nil {
		s.logger.Debug("stored session rejected", zap.Error(err))
		if clearErr := s.tokens.Clear(); clearErr != nil {
			s.logger.Warn("failed to clear stored token", zap.Error(clearErr))
		}
		s.set(State{}, "")
		return err
	}

	s.set(state, token)
	return nil
}

// Login signs in and loads the profile. The token is persisted only after both
// succeed; on failure the current state is left as it was.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	token, err := s.gateway.SignIn(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return err
	}

	state, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}

	if err := s.tokens.Save(token); err != nil {
		return err
	}
	s.set(state, token)
	return nil
}

// Logout is safe to call repeatedly.
func (s *SessionStore) Logout() error {
	err := s.tokens.Clear()
	s.set(State{}, "")
	return err
}
