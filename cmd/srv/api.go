package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/moonticket/backend/internal/middleware"
	"github.com/moonticket/backend/pkg/prometheus"
	"github.com/moonticket/backend/pkg/router"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadEndpoint()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	s.server = &http.Server{
		Addr: fmt.Sprintf("%s:%s", cfg.ApiServer.Host, cfg.ApiServer.Port),
		Handler: cors.New(cors.Options{
			AllowedOrigins:   cfg.ApiServer.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
			AllowCredentials: true,
		}).Handler(s.router.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())
	s.router.Handle(http.MethodGet, "/metrics", prometheus.NewHandler())

	// Auth API
	{
		router.POST(s.router, "/auth/wallet/nonce", s.walletAuthDomain.Nonce)
		router.POST(s.router, "/auth/wallet/verify", s.walletAuthDomain.Verify)
	}

	// These following APIs need an access token, the wallet is taken from it.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier(s.accessTokenEngine).Middleware())
	{
		// Entry API
		router.GET(authRouter, "/getWalletSummary", s.entryDomain.GetWalletSummary)
		router.POST(authRouter, "/claimTweetEntry", s.entryDomain.ClaimTweetEntry)

		// Ticket API
		router.GET(authRouter, "/getTicketCredits", s.ticketCreditDomain.GetTicketCredits)
		router.POST(authRouter, "/claimFreeTicket", s.ticketCreditDomain.ClaimFreeTicket)
		router.POST(authRouter, "/submitTickets", s.ticketDomain.SubmitTickets)
		router.GET(authRouter, "/getMyTickets", s.ticketDomain.GetMyTickets)

		// Purchase API
		router.GET(authRouter, "/preflightPurchase", s.purchaseDomain.PreflightPurchase)
		router.POST(authRouter, "/confirmPurchase", s.purchaseDomain.ConfirmPurchase)

		// Check-in API
		router.POST(authRouter, "/checkIn", s.checkInDomain.CheckIn)
		router.GET(authRouter, "/getMyPayRewards", s.payRewardDomain.GetMyPayRewards)
	}

	// Public API.
	router.GET(s.router, "/getCurrentDraw", s.drawDomain.GetCurrentDraw)
	router.GET(s.router, "/getLastDraw", s.drawDomain.GetLastDraw)
}
