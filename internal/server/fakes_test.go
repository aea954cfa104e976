package server

import (
	"context"
	"errors"
	"time"

	"dondusang/pkg/types"
)

// In-memory stores mirroring the repository contracts, including
// server-assigned ids, timestamps and status defaults.

type fakeBloodGroupStore struct {
	groups []*types.BloodGroup
	nextID int64
}

func (f *fakeBloodGroupStore) Create(_ context.Context, group *types.BloodGroup) error {
	for _, existing := range f.groups {
		if existing.Name == group.Name {
			return types.ErrBloodGroupExists
		}
	}

	f.nextID++
	group.ID = f.nextID
	f.groups = append(f.groups, group)
	return nil
}

func (f *fakeBloodGroupStore) BloodGroups(_ context.Context, skip, limit int) ([]*types.BloodGroup, error) {
	return window(f.groups, skip, limit), nil
}

func (f *fakeBloodGroupStore) BloodGroup(_ context.Context, id int64) (*types.BloodGroup, error) {
	for _, group := range f.groups {
		if group.ID == id {
			return group, nil
		}
	}
	return nil, types.ErrBloodGroupNotFound
}

type fakeUserStore struct {
	users  []*types.User
	groups *fakeBloodGroupStore
	nextID int64
}

func (f *fakeUserStore) Create(_ context.Context, user *types.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return types.ErrEmailExists
		}
	}

	if user.BloodGroupID != nil && f.groups != nil {
		if _, err := f.groups.BloodGroup(context.Background(), *user.BloodGroupID); err != nil {
			return types.ErrBloodGroupNotFound
		}
	}

	if user.Role == "" {
		user.Role = types.UserRoleNormal
	}

	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) Users(_ context.Context, skip, limit int) ([]*types.User, error) {
	return window(f.users, skip, limit), nil
}

func (f *fakeUserStore) User(_ context.Context, id int64) (*types.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, types.ErrUserNotFound
}

func (f *fakeUserStore) UserByEmail(_ context.Context, email string) (*types.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, types.ErrUserNotFound
}

type fakeOfferStore struct {
	offers []*types.DonationOffer
	users  *fakeUserStore
	nextID int64
}

func (f *fakeOfferStore) Create(_ context.Context, offer *types.DonationOffer) error {
	if _, err := f.users.User(context.Background(), offer.UserID); err != nil {
		return types.ErrUserNotFound
	}

	offer.OfferedAt = time.Now()
	if offer.Status == "" {
		offer.Status = types.DonationStatusPending
	}

	f.nextID++
	offer.ID = f.nextID
	f.offers = append(f.offers, offer)
	return nil
}

func (f *fakeOfferStore) Offers(_ context.Context, skip, limit int) ([]*types.DonationOffer, error) {
	return window(f.offers, skip, limit), nil
}

func (f *fakeOfferStore) Offer(_ context.Context, id int64) (*types.DonationOffer, error) {
	for _, offer := range f.offers {
		if offer.ID == id {
			return offer, nil
		}
	}
	return nil, types.ErrOfferNotFound
}

type fakeRequestStore struct {
	requests []*types.DonationRequest
	users    *fakeUserStore
	groups   *fakeBloodGroupStore
	nextID   int64
}

func (f *fakeRequestStore) Create(_ context.Context, request *types.DonationRequest) error {
	if _, err := f.users.User(context.Background(), request.UserID); err != nil {
		return types.ErrUserNotFound
	}

	if _, err := f.groups.BloodGroup(context.Background(), request.BloodGroupID); err != nil {
		return types.ErrBloodGroupNotFound
	}

	request.RequestedAt = time.Now()
	if request.Status == "" {
		request.Status = types.DonationStatusPending
	}
	if request.Urgency == "" {
		request.Urgency = types.UrgencyMedium
	}

	f.nextID++
	request.ID = f.nextID
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeRequestStore) Requests(_ context.Context, skip, limit int) ([]*types.DonationRequest, error) {
	return window(f.requests, skip, limit), nil
}

func (f *fakeRequestStore) Request(_ context.Context, id int64) (*types.DonationRequest, error) {
	for _, request := range f.requests {
		if request.ID == id {
			return request, nil
		}
	}
	return nil, types.ErrRequestNotFound
}

type fakeMatchStore struct {
	matches  []*types.Match
	offers   *fakeOfferStore
	requests *fakeRequestStore
	nextID   int64
}

func (f *fakeMatchStore) Create(ctx context.Context, match *types.Match) error {
	offer, err := f.offers.Offer(ctx, match.OfferID)
	if err != nil {
		return types.ErrOfferNotFound
	}

	request, err := f.requests.Request(ctx, match.RequestID)
	if err != nil {
		return types.ErrRequestNotFound
	}

	for _, existing := range f.matches {
		if existing.OfferID == match.OfferID {
			return types.ErrOfferAlreadyMatched
		}
	}

	match.MatchedAt = time.Now()
	if match.Status == "" {
		match.Status = types.MatchStatusInProgress
	}

	f.nextID++
	match.ID = f.nextID
	f.matches = append(f.matches, match)

	offer.Status = types.DonationStatusMatched
	request.Status = types.DonationStatusMatched
	return nil
}

func (f *fakeMatchStore) Matches(_ context.Context, skip, limit int) ([]*types.Match, error) {
	return window(f.matches, skip, limit), nil
}

func (f *fakeMatchStore) Match(_ context.Context, id int64) (*types.Match, error) {
	for _, match := range f.matches {
		if match.ID == id {
			return match, nil
		}
	}
	return nil, types.ErrMatchNotFound
}

type fakeStatsStore struct {
	users    *fakeUserStore
	offers   *fakeOfferStore
	requests *fakeRequestStore
	matches  *fakeMatchStore
}

func (f *fakeStatsStore) Stats(_ context.Context) (*types.Stats, error) {
	stats := new(types.Stats)

	for _, user := range f.users.users {
		stats.TotalUsers++
		switch user.Role {
		case types.UserRoleNormal:
			stats.NormalUsers++
		case types.UserRoleAdmin:
			stats.AdminUsers++
		}
	}

	for _, offer := range f.offers.offers {
		stats.TotalOffers++
		switch offer.Status {
		case types.DonationStatusPending:
			stats.PendingOffers++
		case types.DonationStatusMatched:
			stats.MatchedOffers++
		}
	}

	for _, request := range f.requests.requests {
		stats.TotalRequests++
		switch request.Status {
		case types.DonationStatusPending:
			stats.PendingRequests++
		case types.DonationStatusMatched:
			stats.MatchedRequests++
		}
	}

	stats.TotalMatches = int64(len(f.matches.matches))
	return stats, nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	return f.err
}

var errPingFailed = errors.New("connection refused")

func window[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 100
	}

	if skip >= len(items) {
		return []T{}
	}

	end := skip + limit
	if end > len(items) {
		end = len(items)
	}

	return items[skip:end]
}
