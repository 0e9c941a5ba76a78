// Package auth models the acting user, role capabilities and the capability policy.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"slices"
	"strings"
)

type Role string

const (
	RoleSubscriber    Role = "subscriber"
	RoleAuthor        Role = "author"
	RoleEditor        Role = "editor"
	RoleAdministrator Role = "administrator"
)

type Capability string

const (
	CapRead              Capability = "read"
	CapEditPosts         Capability = "edit_posts"
	CapEditOthersPosts   Capability = "edit_others_posts"
	CapDeletePosts       Capability = "delete_posts"
	CapDeleteOthersPosts Capability = "delete_others_posts"
	CapManageCategories  Capability = "manage_categories"
	CapManageOptions     Capability = "manage_options"
)

var roleCapabilities = map[Role][]Capability{
	RoleSubscriber: {CapRead},
	RoleAuthor:     {CapRead, CapEditPosts, CapDeletePosts},
	RoleEditor: {
		CapRead, CapEditPosts, CapEditOthersPosts,
		CapDeletePosts, CapDeleteOthersPosts, CapManageCategories,
	},
	RoleAdministrator: {
		CapRead, CapEditPosts, CapEditOthersPosts,
		CapDeletePosts, CapDeleteOthersPosts, CapManageCategories,
		CapManageOptions,
	},
}

// User is the acting principal of a request. The zero value is the anonymous visitor.
type User struct {
	Login string `json:"login"`
	Role  Role   `json:"role"`
}

var Anonymous = User{}

func (u User) IsAnonymous() bool {
	return u.Login == ""
}

func (u User) Has(capability Capability) bool {
	return slices.Contains(roleCapabilities[u.Role], capability)
}

// Capabilities lists what the user may do; empty for anonymous visitors.
func (u User) Capabilities() []Capability {
	caps := roleCapabilities[u.Role]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleCapabilities[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

type ctxKey struct{}

// WithUser returns a context carrying the acting user.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext returns the acting user, or Anonymous when none was attached.
func FromContext(ctx context.Context) User {
	if u, ok := ctx.Value(ctxKey{}).(User); ok {
		return u
	}
	return Anonymous
}

type credential struct {
	token []byte
	user  User
}

// Directory resolves bearer tokens to users.
type Directory struct {
	creds []credential
}

// ParseDirectory builds a Directory from "login:role:token" entries.
func ParseDirectory(entries []string) (*Directory, error) {
	d := &Directory{}
	seen := make(map[string]bool)

	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}

		parts := strings.Split(e, ":")
		if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid user entry %q: want login:role:token", e)
		}

		role, err := ParseRole(parts[1])
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", parts[0], err)
		}

		if seen[parts[2]] {
			return nil, fmt.Errorf("user %s: token already assigned", parts[0])
		}
		seen[parts[2]] = true

		d.creds = append(d.creds, credential{
			token: []byte(parts[2]),
			user:  User{Login: parts[0], Role: role},
		})
	}

	return d, nil
}

// Lookup finds the user owning token. Every credential is compared in constant time.
func (d *Directory) Lookup(token string) (User, bool) {
	var (
		found User
		ok    bool
	)
	for _, c := range d.creds {
		if subtle.ConstantTimeCompare(c.token, []byte(token)) == 1 {
			found, ok = c.user, true
		}
	}
	return found, ok
}

func (d *Directory) Len() int {
	return len(d.creds)
}
