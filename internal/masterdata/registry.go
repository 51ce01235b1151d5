// Package masterdata holds the reference data of the portal: divisions,
// users, brands and products.
package masterdata

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/store"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"go.uber.org/zap"
)

// Status marks a master record as in use or retired.
type Status string

// Record statuses.
const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Registry keeps the master data in memory.
type Registry struct {
	logger    *zap.Logger
	divisions *store.Collection[Division]
	users     *store.Collection[User]
	brands    *store.Collection[Brand]
	products  *store.Collection[Product]
	now       func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		logger:    logger,
		divisions: store.NewCollection(func(d *Division) *string { return &d.ID }),
		users:     store.NewCollection(func(u *User) *string { return &u.ID }),
		brands:    store.NewCollection(func(b *Brand) *string { return &b.ID }),
		products:  store.NewCollection(func(p *Product) *string { return &p.ID }),
		now:       time.Now,
	}
}

// Seed loads records without permission checks. It is used at start-up.
func (r *Registry) Seed(divisions []Division, users []User, brands []Brand, products []Product) {
	for _, d := range divisions {
		r.divisions.Insert(d)
	}
	for _, u := range users {
		r.users.Insert(u)
	}
	for _, b := range brands {
		r.brands.Insert(b)
	}
	for _, p := range products {
		r.products.Insert(p)
	}
}

func (r *Registry) today() string {
	return r.now().Format(constants.DateLayout)
}

func checkPage(role access.Role, page access.Page) error {
	if !access.CanAccess(role, page) {
		return fmt.Errorf("%w: %s cannot open %s", access.ErrForbidden, role, page)
	}
	return nil
}

func checkEdit(role access.Role, page access.Page) error {
	if err := checkPage(role, page); err != nil {
		return err
	}
	if !access.CanInput(role) {
		return fmt.Errorf("%w: %s is read-only", access.ErrForbidden, role)
	}
	return nil
}

// contains reports whether any value contains query, ignoring case. An
// empty query matches.
func contains(query string, values ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func duplicate(field, value string) error {
	return &validation.Error{Message: fmt.Sprintf("%s %s already exists", field, value), Fields: []string{field}}
}

func search[T any](c *store.Collection[T], match func(T) bool) []T {
	out := []T{}
	for _, item := range c.All() {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}
