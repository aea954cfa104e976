package store

import (
	"context"
	"fmt"

	"dondusang/internal/utils"
	"dondusang/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bloodGroupTableName = "groupes_sanguins"

var bloodGroupColumns = utils.StructTagValues(types.BloodGroup{})

type BloodGroupRepository struct {
	pool *pgxpool.Pool
}

func NewBloodGroupRepository(pool *pgxpool.Pool) *BloodGroupRepository {
	return &BloodGroupRepository{pool: pool}
}

func (r *BloodGroupRepository) Create(ctx context.Context, group *types.BloodGroup) error {
	groupMap := utils.StructToMap(group)
	delete(groupMap, "id")

	query, args, err := psql().
		Insert(bloodGroupTableName).
		SetMap(groupMap).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert blood group query: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&group.ID)
	if err != nil {
		if violatedConstraint(err) == "uq_groupes_sanguins_nom_groupe" {
			return types.ErrBloodGroupExists
		}
		return fmt.Errorf("failed to create blood group: %w", err)
	}

	return nil
}

func (r *BloodGroupRepository) BloodGroups(ctx context.Context, skip, limit int) ([]*types.BloodGroup, error) {
	offset, max := listWindow(skip, limit)

	query, args, err := psql().
		Select(bloodGroupColumns...).
		From(bloodGroupTableName).
		OrderBy("id ASC").
		Offset(offset).
		Limit(max).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate blood groups query: %w", err)
	}

	var groups = make([]*types.BloodGroup, 0)
	err = pgxscan.Select(ctx, r.pool, &groups, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blood groups: %w", err)
	}

	return groups, nil
}

func (r *BloodGroupRepository) BloodGroup(ctx context.Context, id int64) (*types.BloodGroup, error) {
	query, args, err := psql().
		Select(bloodGroupColumns...).
		From(bloodGroupTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate blood group query: %w", err)
	}

	var group types.BloodGroup
	err = pgxscan.Get(ctx, r.pool, &group, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrBloodGroupNotFound
		}
		return nil, fmt.Errorf("failed to fetch blood group: %w", err)
	}

	return &group, nil
}
