package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)

	access, refresh, err := m.IssuePair("user-1", "company-1")
	assert.NoError(t, err)

	t.Run("access token", func(t *testing.T) {
		claims, err := m.Parse(access, TypeAccess)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "company-1", claims.CompanyID)
	})

	t.Run("refresh used as access", func(t *testing.T) {
		_, err := m.Parse(refresh, TypeAccess)
		assert.ErrorIs(t, err, ErrWrongUse)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewManager("other", time.Minute, time.Hour)
		_, err := other.Parse(access, TypeAccess)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		defer func() { m.now = time.Now }()

		_, err := m.Parse(access, TypeAccess)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token", TypeAccess)
		assert.ErrorIs(t, err, ErrInvalid)
	})
}
