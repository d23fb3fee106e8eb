package main

import (
	"context"
	"net/http"

	"github.com/moonticket/backend/internal/domain"
	"github.com/moonticket/backend/internal/domain/drawwindow"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/api/pricing"
	"github.com/moonticket/backend/pkg/api/twitter"
	"github.com/moonticket/backend/pkg/authenticator"
	"github.com/moonticket/backend/pkg/pubsub"
	"github.com/moonticket/backend/pkg/router"
	"github.com/moonticket/backend/pkg/solutil"
	"github.com/moonticket/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
)

type srv struct {
	ctx context.Context
	app *cli.App

	server *http.Server
	router *router.Router

	redisClient     xredis.Client
	publisher       pubsub.Publisher
	solanaReader    solutil.Reader
	pricingEndpoint pricing.IEndpoint
	twitterEndpoint twitter.IEndpoint
	resolver        *drawwindow.Resolver

	accessTokenEngine authenticator.TokenEngine[model.AccessToken]

	drawRepo         repository.DrawRepository
	entryRepo        repository.EntryRepository
	ticketCreditRepo repository.TicketCreditRepository
	checkInRepo      repository.CheckInRepository
	ticketRepo       repository.TicketRepository
	purchaseRepo     repository.PurchaseRepository
	payRewardRepo    repository.PayRewardRepository

	drawDomain         domain.DrawDomain
	entryDomain        domain.EntryDomain
	ticketCreditDomain domain.TicketCreditDomain
	ticketDomain       domain.TicketDomain
	checkInDomain      domain.CheckInDomain
	purchaseDomain     domain.PurchaseDomain
	walletAuthDomain   domain.WalletAuthDomain
	payRewardDomain    domain.PayRewardDomain
}
