package masterdata

import (
	"strings"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"go.uber.org/zap"
)

// User is a portal account. Role is the label shown on the user list and
// is not limited to the session roles.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Division string `json:"divisi"`
	Status   Status `json:"status"`
}

// Validate checks the required user fields.
func (u User) Validate() error {
	if err := validation.Required(
		validation.Field{Name: "name", Value: u.Name},
		validation.Field{Name: "email", Value: u.Email},
		validation.Field{Name: "role", Value: u.Role},
		validation.Field{Name: "divisi", Value: u.Division},
	); err != nil {
		return err
	}
	if !strings.Contains(u.Email, "@") {
		return &validation.Error{Message: "Please enter a valid email address", Fields: []string{"email"}}
	}
	return nil
}

// Users lists the users whose name, email, role or division contains query.
func (r *Registry) Users(role access.Role, query string) ([]User, error) {
	if err := checkPage(role, access.PageUserRoles); err != nil {
		return nil, err
	}
	return search(r.users, func(u User) bool {
		return contains(query, u.Name, u.Email, u.Role, u.Division)
	}), nil
}

func (r *Registry) emailTaken(email, except string) bool {
	_, taken := r.users.Find(func(u User) bool {
		return u.ID != except && strings.EqualFold(u.Email, email)
	})
	return taken
}

// AddUser stores a new active user.
func (r *Registry) AddUser(role access.Role, u User) (User, error) {
	if err := checkEdit(role, access.PageUserRoles); err != nil {
		return User{}, err
	}
	if err := u.Validate(); err != nil {
		return User{}, err
	}
	if r.emailTaken(u.Email, "") {
		return User{}, duplicate("email", u.Email)
	}
	u.ID = ""
	u.Status = StatusActive
	stored := r.users.Insert(u)
	r.logger.Info("user added",
		zap.String("op", "masterdata.AddUser"),
		zap.String("id", stored.ID),
		zap.String("role", stored.Role),
	)
	return stored, nil
}

// EditUser replaces the details of a user. The status is changed only by
// ToggleUser.
func (r *Registry) EditUser(role access.Role, id string, u User) (User, error) {
	if err := checkEdit(role, access.PageUserRoles); err != nil {
		return User{}, err
	}
	if err := u.Validate(); err != nil {
		return User{}, err
	}
	if r.emailTaken(u.Email, id) {
		return User{}, duplicate("email", u.Email)
	}
	return r.users.Update(id, func(cur *User) error {
		cur.Name, cur.Email, cur.Role, cur.Division = u.Name, u.Email, u.Role, u.Division
		return nil
	})
}

// ToggleUser flips a user between Active and Inactive.
func (r *Registry) ToggleUser(role access.Role, id string) (User, error) {
	if err := checkEdit(role, access.PageUserRoles); err != nil {
		return User{}, err
	}
	return r.users.Update(id, func(cur *User) error {
		cur.Status = cur.Status.Toggle()
		return nil
	})
}
