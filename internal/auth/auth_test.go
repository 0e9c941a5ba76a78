package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type owned string

func (o owned) OwnerLogin() string { return string(o) }

func TestParseDirectory(t *testing.T) {
	dir, err := ParseDirectory([]string{"ana:administrator:tok-a", " bo:Editor:tok-b ", ""})
	require.NoError(t, err)
	assert.Equal(t, 2, dir.Len())

	u, ok := dir.Lookup("tok-b")
	require.True(t, ok)
	assert.Equal(t, User{Login: "bo", Role: RoleEditor}, u)

	_, ok = dir.Lookup("nope")
	assert.False(t, ok)
}

func TestParseDirectory_Errors(t *testing.T) {
	_, err := ParseDirectory([]string{"ana:wizard:tok"})
	assert.ErrorContains(t, err, "unknown role")

	_, err = ParseDirectory([]string{"ana:author"})
	assert.ErrorContains(t, err, "login:role:token")

	_, err = ParseDirectory([]string{"ana:author:same", "bo:editor:same"})
	assert.ErrorContains(t, err, "already assigned")
}

func TestContextRoundTrip(t *testing.T) {
	assert.Equal(t, Anonymous, FromContext(context.Background()))

	ctx := WithUser(context.Background(), User{Login: "ana", Role: RoleAuthor})
	assert.Equal(t, "ana", FromContext(ctx).Login)
}

func TestDefaultPolicy(t *testing.T) {
	admin := User{Login: "root", Role: RoleAdministrator}
	editor := User{Login: "ed", Role: RoleEditor}
	author := User{Login: "au", Role: RoleAuthor}
	subscriber := User{Login: "sub", Role: RoleSubscriber}

	mine := owned("au")
	theirs := owned("someone-else")

	cases := []struct {
		name   string
		action Action
		res    Resource
		user   User
		want   bool
	}{
		{"anyone reads", ActionRead, nil, Anonymous, true},
		{"anonymous cannot create", ActionCreate, nil, Anonymous, false},
		{"subscriber cannot create", ActionCreate, nil, subscriber, false},
		{"author creates", ActionCreate, nil, author, true},
		{"author edits own", ActionEdit, mine, author, true},
		{"author cannot edit others", ActionEdit, theirs, author, false},
		{"editor edits others", ActionEdit, theirs, editor, true},
		{"author deletes own", ActionDelete, mine, author, true},
		{"author cannot delete others", ActionDelete, theirs, author, false},
		{"anonymous cannot delete unowned", ActionDelete, owned(""), Anonymous, false},
		{"editor cannot seed", ActionSeed, nil, editor, false},
		{"admin seeds", ActionSeed, nil, admin, true},
		{"editor manages genres", ActionManageGenres, nil, editor, true},
		{"admin manages genres", ActionManageGenres, nil, admin, true},
		{"author cannot manage genres", ActionManageGenres, nil, author, false},
		{"anonymous cannot manage genres", ActionManageGenres, nil, Anonymous, false},
		{"unknown action", Action("publish"), nil, admin, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DefaultPolicy(tc.action, tc.res, tc.user))
		})
	}
}

func TestCapabilities_Copy(t *testing.T) {
	caps := User{Login: "au", Role: RoleAuthor}.Capabilities()
	caps[0] = CapManageOptions

	assert.False(t, User{Login: "au", Role: RoleAuthor}.Has(CapManageOptions))
	assert.Empty(t, Anonymous.Capabilities())
}
