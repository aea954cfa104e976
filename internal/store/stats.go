package store

import (
	"context"
	"fmt"

	"dondusang/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) Stats(ctx context.Context) (*types.Stats, error) {
	counters := []struct {
		table string
		where sq.Sqlizer
	}{
		{table: userTableName},
		{table: userTableName, where: sq.Eq{"role": types.UserRoleNormal}},
		{table: userTableName, where: sq.Eq{"role": types.UserRoleAdmin}},
		{table: offerTableName},
		{table: offerTableName, where: sq.Eq{"statut": types.DonationStatusPending}},
		{table: offerTableName, where: sq.Eq{"statut": types.DonationStatusMatched}},
		{table: requestTableName},
		{table: requestTableName, where: sq.Eq{"statut": types.DonationStatusPending}},
		{table: requestTableName, where: sq.Eq{"statut": types.DonationStatusMatched}},
		{table: matchTableName},
	}

	stats := new(types.Stats)
	dests := []*int64{
		&stats.TotalUsers, &stats.NormalUsers, &stats.AdminUsers,
		&stats.TotalOffers, &stats.PendingOffers, &stats.MatchedOffers,
		&stats.TotalRequests, &stats.PendingRequests, &stats.MatchedRequests,
		&stats.TotalMatches,
	}

	for i, counter := range counters {
		n, err := r.count(ctx, counter.table, counter.where)
		if err != nil {
			return nil, err
		}
		*dests[i] = n
	}

	return stats, nil
}

func (r *StatsRepository) count(ctx context.Context, table string, where sq.Sqlizer) (int64, error) {
	builder := psql().Select("COUNT(*)").From(table)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate count query for %s: %w", table, err)
	}

	var n int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	return n, nil
}
