package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	t.Setenv("JWT_USER_SECRET", "customer-test-secret")
	t.Setenv("JWT_ADMIN_SECRET", "admin-test-secret")

	t.Run("round trip per realm", func(t *testing.T) {
		token, err := IssueToken(RealmCustomer, "user-1")
		require.NoError(t, err)

		sub, err := ParseToken(RealmCustomer, token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", sub)
	})

	t.Run("customer token is rejected by the admin realm", func(t *testing.T) {
		token, err := IssueToken(RealmCustomer, "user-1")
		require.NoError(t, err)

		_, err = ParseToken(RealmAdmin, token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("admin token is rejected by the customer realm", func(t *testing.T) {
		token, err := IssueToken(RealmAdmin, "admin-1")
		require.NoError(t, err)

		_, err = ParseToken(RealmCustomer, token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ParseToken(RealmCustomer, "not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRealmClaimCheckedWithSharedSecret(t *testing.T) {
	// Both realms signed with the same key: the realm claim alone must still
	// keep the namespaces apart.
	t.Setenv("JWT_USER_SECRET", "")
	t.Setenv("JWT_ADMIN_SECRET", "")
	t.Setenv("JWT_SECRET", "shared-secret")

	token, err := IssueToken(RealmCustomer, "user-1")
	require.NoError(t, err)

	_, err = ParseToken(RealmAdmin, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestCookieFor(t *testing.T) {
	assert.Equal(t, CustomerCookie, CookieFor(RealmCustomer))
	assert.Equal(t, AdminCookie, CookieFor(RealmAdmin))
}
