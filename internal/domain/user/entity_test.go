//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"estate-booking/internal/domain/user"
	"estate-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("keeps the identity provider id", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.ID, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Equal(t, user.RoleClient, actual.Role())
		assert.Empty(t, actual.NotificationToken())
	})

	t.Run("nil id gets a fresh one", func(t *testing.T) {
		email, err := user.NewEmail("a@example.com")
		require.NoError(t, err)
		u := user.NewUser(uuid.Nil, email, "", user.RoleClient, time.Now())
		assert.NotEqual(t, uuid.Nil, u.ID())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "surrounding spaces trimmed", mutate: func(b *builder.UserBuilder) { b.WithEmail("  x@example.com ") }},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "no domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("x@") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "guest", mutate: func(b *builder.UserBuilder) { b.Role = "guest" }},
			{name: "superadmin", mutate: func(b *builder.UserBuilder) { b.Role = "superadmin" }},
			{name: "unknown", mutate: func(b *builder.UserBuilder) { b.Role = "owner" }, errIs: user.ErrInvalidRole},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.Role = "" }, errIs: user.ErrInvalidRole},
		})
	})
}

func TestUser_DisplayLabel(t *testing.T) {
	tests := []struct {
		name  string
		build func() *user.User
		want  string
	}{
		{
			name: "display name wins",
			build: func() *user.User {
				return user.ReconstructUser(uuid.New(), "a@example.com", "Ada", user.RoleClient, "", true, time.Time{}, time.Time{})
			},
			want: "Ada",
		},
		{
			name: "falls back to email",
			build: func() *user.User {
				return user.ReconstructUser(uuid.New(), "a@example.com", "  ", user.RoleClient, "", true, time.Time{}, time.Time{})
			},
			want: "a@example.com",
		},
		{
			name: "unknown client when both are missing",
			build: func() *user.User {
				return user.ReconstructUser(uuid.New(), "", "", user.RoleClient, "", true, time.Time{}, time.Time{})
			},
			want: user.UnknownClientName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.build().DisplayLabel()); diff != "" {
				t.Errorf("DisplayLabel mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, user.RoleSuperAdmin.AtLeast(user.RoleAdmin))
	assert.True(t, user.RoleManager.AtLeast(user.RoleManager))
	assert.True(t, user.RoleManager.AtLeast(user.RoleClient))
	assert.False(t, user.RoleClient.AtLeast(user.RoleManager))
	assert.False(t, user.RoleGuest.AtLeast(user.RoleClient))
	assert.False(t, user.Role("owner").AtLeast(user.RoleGuest))
	assert.False(t, user.RoleAdmin.AtLeast(user.Role("owner")))
}

func TestUser_IsActiveManager(t *testing.T) {
	active := user.ReconstructUser(uuid.New(), "m@example.com", "M", user.RoleManager, "", true, time.Time{}, time.Time{})
	inactive := user.ReconstructUser(uuid.New(), "m@example.com", "M", user.RoleManager, "", false, time.Time{}, time.Time{})
	admin := user.ReconstructUser(uuid.New(), "a@example.com", "A", user.RoleAdmin, "", true, time.Time{}, time.Time{})

	assert.True(t, active.IsActiveManager())
	assert.False(t, inactive.IsActiveManager())
	assert.False(t, admin.IsActiveManager())
}

func TestNewNotificationToken(t *testing.T) {
	tok, err := user.NewNotificationToken("  ExponentPushToken[abc]  ")
	require.NoError(t, err)
	assert.Equal(t, "ExponentPushToken[abc]", tok)

	for _, bad := range []string{"", "   ", "has space", strings.Repeat("x", 4097)} {
		_, err := user.NewNotificationToken(bad)
		assert.ErrorIs(t, err, user.ErrInvalidToken, bad)
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)
			u, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, u)
		})
	}
}
