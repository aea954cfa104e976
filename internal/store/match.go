package store

import (
	"context"
	"fmt"
	"time"

	"dondusang/internal/utils"
	"dondusang/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const matchTableName = "affectations_don"

var matchColumns = utils.StructTagValues(types.Match{})

type MatchRepository struct {
	pool *pgxpool.Pool
}

func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

// Create inserts the match and flips both referenced entities to "matched"
// in one transaction. Concurrent matches against the same offer are resolved
// by the unique constraint on id_proposition_don: one insert commits, the
// other reports ErrOfferAlreadyMatched.
func (r *MatchRepository) Create(ctx context.Context, match *types.Match) error {
	match.MatchedAt = time.Now()
	if match.Status == "" {
		match.Status = types.MatchStatusInProgress
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin match transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := entityExists(ctx, tx, offerTableName, match.OfferID); err != nil {
		if pgxscan.NotFound(err) {
			return types.ErrOfferNotFound
		}
		return fmt.Errorf("failed to fetch offer %d: %w", match.OfferID, err)
	}

	if err := entityExists(ctx, tx, requestTableName, match.RequestID); err != nil {
		if pgxscan.NotFound(err) {
			return types.ErrRequestNotFound
		}
		return fmt.Errorf("failed to fetch request %d: %w", match.RequestID, err)
	}

	matchMap := utils.StructToMap(match)
	delete(matchMap, "id")

	query, args, err := psql().
		Insert(matchTableName).
		SetMap(matchMap).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert match query: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&match.ID)
	if err != nil {
		if violatedConstraint(err) == "uq_affectations_don_proposition" {
			return types.ErrOfferAlreadyMatched
		}
		return fmt.Errorf("failed to create match: %w", err)
	}

	if err := setDonationStatus(ctx, tx, offerTableName, match.OfferID, types.DonationStatusMatched); err != nil {
		return err
	}

	if err := setDonationStatus(ctx, tx, requestTableName, match.RequestID, types.DonationStatusMatched); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit match transaction: %w", err)
	}

	return nil
}

func entityExists(ctx context.Context, tx pgx.Tx, table string, id int64) error {
	query, args, err := psql().
		Select("id").
		From(table).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate existence query for %s: %w", table, err)
	}

	var found int64
	return pgxscan.Get(ctx, tx, &found, query, args...)
}

func setDonationStatus(ctx context.Context, tx pgx.Tx, table string, id int64, status types.DonationStatus) error {
	query, args, err := psql().
		Update(table).
		Set("statut", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate status update for %s: %w", table, err)
	}

	_, err = tx.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, fmt.Sprintf("failed to update %s status", table))
}

func (r *MatchRepository) Matches(ctx context.Context, skip, limit int) ([]*types.Match, error) {
	offset, max := listWindow(skip, limit)

	query, args, err := psql().
		Select(matchColumns...).
		From(matchTableName).
		OrderBy("id ASC").
		Offset(offset).
		Limit(max).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate matches query: %w", err)
	}

	var matches = make([]*types.Match, 0)
	err = pgxscan.Select(ctx, r.pool, &matches, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	return matches, nil
}

func (r *MatchRepository) Match(ctx context.Context, id int64) (*types.Match, error) {
	query, args, err := psql().
		Select(matchColumns...).
		From(matchTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate match query: %w", err)
	}

	var match types.Match
	err = pgxscan.Get(ctx, r.pool, &match, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to fetch match: %w", err)
	}

	return &match, nil
}
