package seeder

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketseed/internal/domain/entity"
)

func TestUsersRoleDistribution(t *testing.T) {
	f := NewFactory(NewRand(42))
	users := f.Users(20)
	require.Len(t, users, 20)

	counts := map[string]int{}
	for _, u := range users {
		counts[u.Role]++
	}

	assert.Equal(t, 1, counts[entity.RoleAdmin])
	assert.Equal(t, 7, counts[entity.RoleSeller])
	assert.Equal(t, 12, counts[entity.RoleBuyer])
}

func TestUsersPerRoleUIDSequence(t *testing.T) {
	f := NewFactory(NewRand(42))
	users := f.Users(20)

	seen := map[string]int{}
	for _, u := range users {
		seen[u.Role]++
		assert.Equal(t, fmt.Sprintf("%s_%d", u.Role, seen[u.Role]), u.UID)
	}
}

func TestUsersFieldRanges(t *testing.T) {
	f := NewFactory(NewRand(7))
	users := f.Users(20)

	now := time.Now()
	for _, u := range users {
		assert.NotEmpty(t, u.Username)
		assert.Contains(t, u.Email, "@")
		assert.NotEmpty(t, u.Address)
		assert.GreaterOrEqual(t, u.Rating, 3.0)
		assert.LessOrEqual(t, u.Rating, 5.0)
		assert.GreaterOrEqual(t, u.WalletBalance, 0.0)
		assert.LessOrEqual(t, u.WalletBalance, 1000.0)
		assert.False(t, u.JoinDate.After(now))
	}
}

func TestUsersCountContract(t *testing.T) {
	f := NewFactory(NewRand(42))

	assert.Empty(t, f.Users(0))
	assert.Empty(t, f.Users(-3))

	only := f.Users(1)
	require.Len(t, only, 1)
	assert.Equal(t, entity.RoleAdmin, only[0].Role)
}

func TestUsersDeterministicForSeed(t *testing.T) {
	a := NewFactory(NewRand(99)).Users(20)
	b := NewFactory(NewRand(99)).Users(20)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].UID, b[i].UID)
		assert.Equal(t, a[i].Username, b[i].Username)
		assert.Equal(t, a[i].Email, b[i].Email)
	}
}
