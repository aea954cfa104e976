package seed

import (
	"context"
	"errors"
	"fmt"

	"dondusang/internal/store"
	"dondusang/pkg/types"
)

var bloodGroupNames = []string{"O-", "O+", "A-", "A+", "B-", "B+", "AB-", "AB+"}

// SeedBloodGroups inserts the eight ABO/Rh groups, skipping the ones already
// present.
func SeedBloodGroups(ctx context.Context, groupRepo *store.BloodGroupRepository) error {
	seeded := 0
	for _, name := range bloodGroupNames {
		group := &types.BloodGroup{Name: name}

		err := groupRepo.Create(ctx, group)
		if err != nil {
			if errors.Is(err, types.ErrBloodGroupExists) {
				continue
			}
			return fmt.Errorf("failed to seed blood group %s: %w", name, err)
		}

		seeded++
	}

	fmt.Printf("seeded %d blood groups\n", seeded)
	return nil
}
