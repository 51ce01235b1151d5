// Package session holds the role a portal user is currently acting as.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/iwvelando/marui-portal/internal/access"
)

// Session is the current role of one portal user. It is safe for
// concurrent use.
type Session struct {
	mu   sync.RWMutex
	role access.Role
}

// New returns a session acting as role. An invalid role falls back to Admin.
func New(role access.Role) *Session {
	if !role.Valid() {
		role = access.Admin
	}
	return &Session{role: role}
}

// Default returns a session acting as Admin.
func Default() *Session {
	return New(access.Admin)
}

// Role returns the current role.
func (s *Session) Role() access.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// SwitchRole changes the current role.
func (s *Session) SwitchRole(role access.Role) error {
	if !role.Valid() {
		return fmt.Errorf("switching role: %w: %d", access.ErrUnknownRole, int(role))
	}
	s.mu.Lock()
	s.role = role
	s.mu.Unlock()
	return nil
}

// SwitchRoleByName parses name and switches to it.
func (s *Session) SwitchRoleByName(name string) error {
	role, err := access.ParseRole(name)
	if err != nil {
		return fmt.Errorf("switching role: %w", err)
	}
	return s.SwitchRole(role)
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, or an Admin session when
// none is present.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(ctxKey{}).(*Session); ok && s != nil {
		return s
	}
	return Default()
}
