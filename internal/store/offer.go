package store

import (
	"context"
	"fmt"
	"time"

	"dondusang/internal/utils"
	"dondusang/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const offerTableName = "propositions_don"

var offerColumns = utils.StructTagValues(types.DonationOffer{})

type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

func (r *OfferRepository) Create(ctx context.Context, offer *types.DonationOffer) error {
	offer.OfferedAt = time.Now()
	if offer.Status == "" {
		offer.Status = types.DonationStatusPending
	}

	offerMap := utils.StructToMap(offer)
	delete(offerMap, "id")

	query, args, err := psql().
		Insert(offerTableName).
		SetMap(offerMap).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert offer query: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&offer.ID)
	if err != nil {
		if violatedConstraint(err) == "fk_propositions_don_utilisateur" {
			return types.ErrUserNotFound
		}
		return fmt.Errorf("failed to create offer: %w", err)
	}

	return nil
}

func (r *OfferRepository) Offers(ctx context.Context, skip, limit int) ([]*types.DonationOffer, error) {
	offset, max := listWindow(skip, limit)

	query, args, err := psql().
		Select(offerColumns...).
		From(offerTableName).
		OrderBy("id ASC").
		Offset(offset).
		Limit(max).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate offers query: %w", err)
	}

	var offers = make([]*types.DonationOffer, 0)
	err = pgxscan.Select(ctx, r.pool, &offers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offers: %w", err)
	}

	return offers, nil
}

func (r *OfferRepository) Offer(ctx context.Context, id int64) (*types.DonationOffer, error) {
	query, args, err := psql().
		Select(offerColumns...).
		From(offerTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate offer query: %w", err)
	}

	var offer types.DonationOffer
	err = pgxscan.Get(ctx, r.pool, &offer, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to fetch offer: %w", err)
	}

	return &offer, nil
}
