package main

import (
	"time"

	"github.com/moonticket/backend/internal/domain"
	"github.com/moonticket/backend/internal/domain/drawwindow"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/migration"
	"github.com/moonticket/backend/pkg/api/pricing"
	"github.com/moonticket/backend/pkg/api/twitter"
	"github.com/moonticket/backend/pkg/authenticator"
	"github.com/moonticket/backend/pkg/kafka"
	"github.com/moonticket/backend/pkg/pubsub"
	"github.com/moonticket/backend/pkg/solutil"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/moonticket/backend/pkg/xredis"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// mysqlConfig keeps microseconds on datetime columns, entries are bucketed by
// created_at and must not be rounded into the next draw window.
func mysqlConfig(dsn string) mysql.Config {
	precision := 6
	return mysql.Config{
		DSN:                      dsn,
		DefaultStringSize:        256,
		DefaultDatetimePrecision: &precision,
		DontSupportRenameIndex:   true,
	}
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.New(mysqlConfig(cfg.ConnectionString()))
	case "postgres":
		dialector = postgres.Open(cfg.ConnectionString())
	default:
		panic("unsupported database driver " + cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	xcontext.Logger(s.ctx).Infof("Connected to %s database", cfg.Driver)
	return db
}

func (s *srv) migrateDB() {
	if err := migration.Migrate(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadPublisher() {
	cfg := xcontext.Configs(s.ctx).Kafka
	if cfg.Addr == "" {
		xcontext.Logger(s.ctx).Warnf("No kafka address, events will not be published")
		s.publisher = pubsub.NewNopPublisher()
		return
	}

	publisher, err := kafka.NewPublisher(cfg.ClientID, []string{cfg.Addr})
	if err != nil {
		panic(err)
	}
	s.publisher = publisher
}

func (s *srv) loadEndpoint() {
	cfg := xcontext.Configs(s.ctx)

	solanaReader, err := solutil.NewRPCReader(cfg.Solana)
	if err != nil {
		panic(err)
	}
	s.solanaReader = solanaReader
	s.pricingEndpoint = pricing.New(cfg.Pricing)

	// Tweets are only checked by url when no lookup service is configured.
	if len(cfg.Twitter.APIEndpoints) > 0 {
		s.twitterEndpoint = twitter.New(cfg.Twitter)
	}

	s.resolver = drawwindow.NewResolver(cfg.Draw.UTCOffset)
}

func (s *srv) loadRepos() {
	s.drawRepo = repository.NewDrawRepository()
	s.entryRepo = repository.NewEntryRepository()
	s.ticketCreditRepo = repository.NewTicketCreditRepository()
	s.checkInRepo = repository.NewCheckInRepository()
	s.ticketRepo = repository.NewTicketRepository()
	s.purchaseRepo = repository.NewPurchaseRepository()
	s.payRewardRepo = repository.NewPayRewardRepository()
}

func (s *srv) loadDomains() {
	cfg := xcontext.Configs(s.ctx)

	s.drawDomain = domain.NewDrawDomain(s.drawRepo, s.resolver)
	s.entryDomain = domain.NewEntryDomain(s.entryRepo, s.resolver, s.twitterEndpoint)
	s.ticketCreditDomain = domain.NewTicketCreditDomain(s.ticketCreditRepo, s.drawRepo, s.resolver)
	s.ticketDomain = domain.NewTicketDomain(
		s.ticketRepo, s.entryRepo, s.drawRepo, s.ticketCreditDomain, s.resolver)
	s.checkInDomain = domain.NewCheckInDomain(s.checkInRepo, s.payRewardRepo, s.publisher)
	s.purchaseDomain = domain.NewPurchaseDomain(
		s.purchaseRepo,
		s.entryDomain,
		s.ticketCreditDomain,
		s.solanaReader,
		s.pricingEndpoint,
		s.redisClient,
		s.publisher,
	)
	s.accessTokenEngine = authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration)
	s.walletAuthDomain = domain.NewWalletAuthDomain(s.redisClient, s.accessTokenEngine)
	s.payRewardDomain = domain.NewPayRewardDomain(s.payRewardRepo)
}
