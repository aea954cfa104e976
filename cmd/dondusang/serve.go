package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dondusang/internal/auth"
	"dondusang/internal/db"
	"dondusang/internal/server"
	"dondusang/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		return err
	}

	bloodGroupRepo := store.NewBloodGroupRepository(pool)
	userRepo := store.NewUserRepository(pool)
	offerRepo := store.NewOfferRepository(pool)
	requestRepo := store.NewRequestRepository(pool)
	matchRepo := store.NewMatchRepository(pool)
	statsRepo := store.NewStatsRepository(pool)

	tokens, err := auth.NewTokenIssuer(config.JWTSecret, time.Duration(config.TokenTTLMin)*time.Minute)
	if err != nil {
		return err
	}

	srv, err := server.New(
		config,
		logger,
		pool,
		bloodGroupRepo,
		userRepo,
		offerRepo,
		requestRepo,
		matchRepo,
		statsRepo,
		tokens,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
