package seed

import (
	"context"
	"errors"
	"fmt"

	"dondusang/internal/auth"
	"dondusang/internal/store"
	"dondusang/internal/utils"
	"dondusang/pkg/types"

	"github.com/k0kubun/pp/v3"
)

type fakeUserSeed struct {
	FamilyName string
	GivenName  string
	Email      string
	Password   string
	Role       types.UserRole
	City       string
}

// The admin account must be seeded first so it lands on the configured admin
// id in a fresh database.
var fakeUsers = []fakeUserSeed{
	{FamilyName: "Admin", GivenName: "Principal", Email: "admin@dondusang.fr", Password: "ChangeMe-Admin1!", Role: types.UserRoleAdmin, City: "Paris"},
	{FamilyName: "Dupont", GivenName: "Jean", Email: "jean.dupont+seed1@example.com", Password: "MotDePasse-Seed1!", Role: types.UserRoleNormal, City: "Lyon"},
	{FamilyName: "Martin", GivenName: "Claire", Email: "claire.martin+seed2@example.com", Password: "MotDePasse-Seed2!", Role: types.UserRoleNormal, City: "Marseille"},
	{FamilyName: "Bernard", GivenName: "Luc", Email: "luc.bernard+seed3@example.com", Password: "MotDePasse-Seed3!", Role: types.UserRoleNormal, City: "Toulouse"},
	{FamilyName: "Moreau", GivenName: "Sophie", Email: "sophie.moreau+seed4@example.com", Password: "MotDePasse-Seed4!", Role: types.UserRoleNormal, City: "Nantes"},
}

func SeedUsers(ctx context.Context, userRepo *store.UserRepository) error {
	seeded := make([]*types.User, 0, len(fakeUsers))

	for _, fakeUser := range fakeUsers {
		_, err := userRepo.UserByEmail(ctx, fakeUser.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrUserNotFound) {
			return fmt.Errorf("failed to fetch user %s: %w", fakeUser.Email, err)
		}

		hash, err := auth.HashPassword(fakeUser.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		user := &types.User{
			FamilyName:   fakeUser.FamilyName,
			GivenName:    fakeUser.GivenName,
			Email:        fakeUser.Email,
			PasswordHash: hash,
			Role:         fakeUser.Role,
			City:         utils.StringPtr(fakeUser.City),
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", fakeUser.Email, err)
		}

		seeded = append(seeded, user)
	}

	pp.Printf("seeded %d users\n", len(seeded))
	return nil
}
