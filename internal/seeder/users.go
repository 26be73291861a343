package seeder

import (
	"fmt"
	"strings"

	"marketseed/internal/domain/entity"
)

// Users generates n users with exactly one admin, floor(0.4*(n-1)) sellers
// and the remainder buyers, shuffled so role assignment is not positional.
// The uid carries a per-role sequence number: admin_1, seller_1, buyer_1.
// A count below one yields no users at all, admin included.
func (f *Factory) Users(n int) []*entity.User {
	if n < 1 {
		return nil
	}
	roles := make([]string, 0, n)
	roles = append(roles, entity.RoleAdmin)
	numSellers := int(float64(n-1) * 0.4)
	for i := 0; i < numSellers; i++ {
		roles = append(roles, entity.RoleSeller)
	}
	for len(roles) < n {
		roles = append(roles, entity.RoleBuyer)
	}
	f.rng.Shuffle(len(roles), func(i, j int) { roles[i], roles[j] = roles[j], roles[i] })

	perRole := make(map[string]int, 3)
	users := make([]*entity.User, 0, n)
	for idx, role := range roles {
		perRole[role]++
		first := strings.ToLower(f.rng.Pick(firstNames))
		last := strings.ToLower(f.rng.Pick(lastNames))
		users = append(users, &entity.User{
			UID:             fmt.Sprintf("%s_%d", role, perRole[role]),
			Username:        fmt.Sprintf("%s_%s_%d", first, last, idx+1),
			Email:           fmt.Sprintf("%s.%s_%d@%s", first, last, idx+1, f.rng.Pick(emailDomains)),
			ProfileImageURL: defaultAvatarURL,
			Address:         f.rng.Pick(cities),
			Role:            role,
			Rating:          round1(f.rng.FloatBetween(3.0, 5.0)),
			WalletBalance:   round2(f.rng.FloatBetween(0, 1000)),
			JoinDate:        f.seq.WithinPastDays(730),
		})
	}
	return users
}
