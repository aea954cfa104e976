package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dondusang/internal/auth"
	"dondusang/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-chi/cors"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type BloodGroupStore interface {
	Create(ctx context.Context, group *types.BloodGroup) error
	BloodGroups(ctx context.Context, skip, limit int) ([]*types.BloodGroup, error)
	BloodGroup(ctx context.Context, id int64) (*types.BloodGroup, error)
}

type UserStore interface {
	Create(ctx context.Context, user *types.User) error
	Users(ctx context.Context, skip, limit int) ([]*types.User, error)
	User(ctx context.Context, id int64) (*types.User, error)
	UserByEmail(ctx context.Context, email string) (*types.User, error)
}

type OfferStore interface {
	Create(ctx context.Context, offer *types.DonationOffer) error
	Offers(ctx context.Context, skip, limit int) ([]*types.DonationOffer, error)
	Offer(ctx context.Context, id int64) (*types.DonationOffer, error)
}

type RequestStore interface {
	Create(ctx context.Context, request *types.DonationRequest) error
	Requests(ctx context.Context, skip, limit int) ([]*types.DonationRequest, error)
	Request(ctx context.Context, id int64) (*types.DonationRequest, error)
}

type MatchStore interface {
	Create(ctx context.Context, match *types.Match) error
	Matches(ctx context.Context, skip, limit int) ([]*types.Match, error)
	Match(ctx context.Context, id int64) (*types.Match, error)
}

type StatsStore interface {
	Stats(ctx context.Context) (*types.Stats, error)
}

// Pinger reports backing store reachability for /db-test.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	logger *logrus.Logger
	config *types.Config

	db          Pinger
	bloodGroups BloodGroupStore
	users       UserStore
	offers      OfferStore
	requests    RequestStore
	matches     MatchStore
	stats       StatsStore

	tokens *auth.TokenIssuer

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	db Pinger,
	bloodGroups BloodGroupStore,
	users UserStore,
	offers OfferStore,
	requests RequestStore,
	matches MatchStore,
	stats StatsStore,
	tokens *auth.TokenIssuer,
) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,

		db:          db,
		bloodGroups: bloodGroups,
		users:       users,
		offers:      offers,
		requests:    requests,
		matches:     matches,
		stats:       stats,

		tokens: tokens,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(s.StripTrailingSlash)
	r.Use(s.RequestIDMiddleware)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleWelcome, http.MethodGet)
	r.HandleFunc("/db-test", s.handleDBTest, http.MethodGet)

	r.HandleFunc("/groupesanguin", s.handleCreateBloodGroup, http.MethodPost)
	r.HandleFunc("/groupesanguin", s.handleListBloodGroups, http.MethodGet)
	r.HandleFunc("/groupesanguin/:id", s.handleGetBloodGroup, http.MethodGet)

	r.HandleFunc("/utilisateurs", s.handleCreateUser, http.MethodPost)
	r.HandleFunc("/utilisateurs", s.handleListUsers, http.MethodGet)
	r.HandleFunc("/utilisateurs/:id", s.handleGetUser, http.MethodGet)

	r.HandleFunc("/propositionsdon", s.handleCreateOffer, http.MethodPost)
	r.HandleFunc("/propositionsdon", s.handleListOffers, http.MethodGet)
	r.HandleFunc("/propositionsdon/:id", s.handleGetOffer, http.MethodGet)

	r.HandleFunc("/demandesdon", s.handleCreateRequest, http.MethodPost)
	r.HandleFunc("/demandesdon", s.handleListRequests, http.MethodGet)
	r.HandleFunc("/demandesdon/:id", s.handleGetRequest, http.MethodGet)

	r.HandleFunc("/token", s.handleLogin, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAdmin)

		r.HandleFunc("/affectationsdon", s.handleCreateMatch, http.MethodPost)
		r.HandleFunc("/affectationsdon", s.handleListMatches, http.MethodGet)
		r.HandleFunc("/affectationsdon/:id", s.handleGetMatch, http.MethodGet)

		r.HandleFunc("/stats", s.handleStats, http.MethodGet)
	})
}
