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

const requestTableName = "demandes_don"

var requestColumns = utils.StructTagValues(types.DonationRequest{})

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Create(ctx context.Context, request *types.DonationRequest) error {
	request.RequestedAt = time.Now()
	if request.Status == "" {
		request.Status = types.DonationStatusPending
	}
	if request.Urgency == "" {
		request.Urgency = types.UrgencyMedium
	}

	requestMap := utils.StructToMap(request)
	delete(requestMap, "id")

	query, args, err := psql().
		Insert(requestTableName).
		SetMap(requestMap).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert request query: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&request.ID)
	if err != nil {
		switch violatedConstraint(err) {
		case "fk_demandes_don_utilisateur":
			return types.ErrUserNotFound
		case "fk_demandes_don_groupe_sanguin":
			return types.ErrBloodGroupNotFound
		}
		return fmt.Errorf("failed to create request: %w", err)
	}

	return nil
}

func (r *RequestRepository) Requests(ctx context.Context, skip, limit int) ([]*types.DonationRequest, error) {
	offset, max := listWindow(skip, limit)

	query, args, err := psql().
		Select(requestColumns...).
		From(requestTableName).
		OrderBy("id ASC").
		Offset(offset).
		Limit(max).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate requests query: %w", err)
	}

	var requests = make([]*types.DonationRequest, 0)
	err = pgxscan.Select(ctx, r.pool, &requests, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests: %w", err)
	}

	return requests, nil
}

func (r *RequestRepository) Request(ctx context.Context, id int64) (*types.DonationRequest, error) {
	query, args, err := psql().
		Select(requestColumns...).
		From(requestTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate request query: %w", err)
	}

	var request types.DonationRequest
	err = pgxscan.Get(ctx, r.pool, &request, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to fetch request: %w", err)
	}

	return &request, nil
}
