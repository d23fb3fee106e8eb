package domain

import (
	"context"
	"errors"
	"math"
	"math/big"

	"github.com/google/uuid"
	"github.com/moonticket/backend/internal/domain/ledger"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/api/pricing"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/pubsub"
	"github.com/moonticket/backend/pkg/solutil"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/moonticket/backend/pkg/xredis"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseDomain interface {
	PreflightPurchase(context.Context, *model.PreflightPurchaseRequest) (*model.PreflightPurchaseResponse, error)
	ConfirmPurchase(context.Context, *model.ConfirmPurchaseRequest) (*model.ConfirmPurchaseResponse, error)
}

type purchaseDomain struct {
	purchaseRepo       repository.PurchaseRepository
	entryDomain        EntryDomain
	ticketCreditDomain TicketCreditDomain
	solanaReader       solutil.Reader
	pricingEndpoint    pricing.IEndpoint
	redisClient        xredis.Client
	publisher          pubsub.Publisher
}

func NewPurchaseDomain(
	purchaseRepo repository.PurchaseRepository,
	entryDomain EntryDomain,
	ticketCreditDomain TicketCreditDomain,
	solanaReader solutil.Reader,
	pricingEndpoint pricing.IEndpoint,
	redisClient xredis.Client,
	publisher pubsub.Publisher,
) *purchaseDomain {
	return &purchaseDomain{
		purchaseRepo:       purchaseRepo,
		entryDomain:        entryDomain,
		ticketCreditDomain: ticketCreditDomain,
		solanaReader:       solanaReader,
		pricingEndpoint:    pricingEndpoint,
		redisClient:        redisClient,
		publisher:          publisher,
	}
}

type purchaseRecordedEvent struct {
	Signature string          `json:"signature"`
	Wallet    string          `json:"wallet"`
	Lamports  uint64          `json:"lamports"`
	TixAmount decimal.Decimal `json:"tix_amount"`
	USDSpent  decimal.Decimal `json:"usd_spent"`
	Credits   int64           `json:"credits"`
}

func (d *purchaseDomain) PreflightPurchase(
	ctx context.Context, req *model.PreflightPurchaseRequest,
) (*model.PreflightPurchaseResponse, error) {
	if req.Lamports == 0 {
		return nil, errorx.New(errorx.InvalidAmount, "Lamports must be positive")
	}

	reserve := xcontext.Configs(ctx).Solana.FeeReserveLamports
	if req.Lamports > math.MaxUint64-reserve {
		return nil, errorx.New(errorx.InvalidAmount, "Lamports is too large")
	}

	balance, err := d.solanaReader.GetBalance(ctx, xcontext.RequestWallet(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot read the wallet balance at this time")
	}

	price, err := d.solPrice(ctx)
	if err != nil {
		return nil, err
	}

	required := req.Lamports + reserve
	usd := lamportsToSOL(req.Lamports).Mul(price)

	return &model.PreflightPurchaseResponse{
		Balance:          balance,
		Required:         required,
		Sufficient:       balance >= required,
		SolPriceUSD:      price,
		EstimatedUSD:     usd,
		EstimatedEntries: usd,
		EstimatedCredits: ledger.PurchaseCredits(usd),
	}, nil
}

// ConfirmPurchase records a finalized purchase transaction of the request
// wallet. Amounts are read from the chain, never from the client. Confirming
// the same signature again returns the stored purchase.
func (d *purchaseDomain) ConfirmPurchase(
	ctx context.Context, req *model.ConfirmPurchaseRequest,
) (*model.ConfirmPurchaseResponse, error) {
	if !solutil.IsValidSignature(req.Signature) {
		return nil, errorx.New(errorx.BadRequest, "Invalid transaction signature")
	}

	wallet := xcontext.RequestWallet(ctx)
	if resp, err := d.recorded(ctx, wallet, req.Signature); resp != nil || err != nil {
		return resp, err
	}

	transfer, err := d.solanaReader.GetTransfer(ctx, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, solutil.ErrTransactionNotFound):
			return nil, errorx.New(errorx.NotFound, "The transaction is not finalized yet")
		case errors.Is(err, solutil.ErrTransactionFailed):
			return nil, errorx.New(errorx.BadRequest, "The transaction failed on chain")
		}

		xcontext.Logger(ctx).Errorf("Cannot get transaction %s: %v", req.Signature, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot read the transaction at this time")
	}

	if transfer.FeePayer != wallet {
		return nil, errorx.New(errorx.PermissionDenied, "The transaction was not paid by your wallet")
	}

	if transfer.Lamports == 0 {
		return nil, errorx.New(errorx.InvalidAmount, "The transaction did not pay the treasury")
	}

	price, err := d.solPrice(ctx)
	if err != nil {
		return nil, err
	}

	usdSpent := lamportsToSOL(transfer.Lamports).Mul(price)
	purchase := &entity.Purchase{
		Base:        entity.Base{ID: uuid.NewString()},
		Signature:   req.Signature,
		Wallet:      wallet,
		Lamports:    transfer.Lamports,
		TixAmount:   transfer.TixAmount,
		SolPriceUSD: price,
		USDSpent:    usdSpent,
		Credits:     ledger.PurchaseCredits(usdSpent),
		Slot:        transfer.Slot,
		BlockTime:   transfer.BlockTime.UTC(),
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.purchaseRepo.Create(ctx, purchase); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent confirmation of the same signature won.
			xcontext.WithRollbackDBTransaction(ctx)
			return d.recorded(ctx, wallet, req.Signature)
		}

		xcontext.Logger(ctx).Errorf("Cannot create purchase: %v", err)
		return nil, errorx.Unknown
	}

	_, err = d.entryDomain.RecordPurchaseEntry(ctx, wallet, req.Signature, usdSpent, transfer.TixAmount)
	if err != nil {
		return nil, err
	}

	if _, err := d.ticketCreditDomain.CreditFromPurchase(ctx, wallet, usdSpent); err != nil {
		return nil, err
	}

	if err := xcontext.CommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit transaction: %v", err)
		return nil, errorx.Unknown
	}

	pack, err := pubsub.NewPack(wallet, purchaseRecordedEvent{
		Signature: purchase.Signature,
		Wallet:    wallet,
		Lamports:  purchase.Lamports,
		TixAmount: purchase.TixAmount,
		USDSpent:  purchase.USDSpent,
		Credits:   purchase.Credits,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create pack: %v", err)
	} else if err := d.publisher.Publish(ctx, pubsub.PurchaseRecordedTopic, pack); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot publish purchase: %v", err)
	}

	return &model.ConfirmPurchaseResponse{Purchase: model.ConvertPurchase(purchase)}, nil
}

// recorded returns the stored purchase of signature, or nil if it has not
// been recorded yet.
func (d *purchaseDomain) recorded(
	ctx context.Context, wallet, signature string,
) (*model.ConfirmPurchaseResponse, error) {
	purchase, err := d.purchaseRepo.GetBySignature(ctx, signature)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get purchase: %v", err)
		return nil, errorx.Unknown
	}

	if purchase.Wallet != wallet {
		return nil, errorx.New(errorx.PermissionDenied, "The transaction was recorded for another wallet")
	}

	return &model.ConfirmPurchaseResponse{
		Purchase:        model.ConvertPurchase(purchase),
		AlreadyRecorded: true,
	}, nil
}

// solPrice returns the SOL/USD price, cached in redis for the configured TTL.
func (d *purchaseDomain) solPrice(ctx context.Context) (decimal.Decimal, error) {
	cfg := xcontext.Configs(ctx).Pricing
	key := "price:usd:" + cfg.AssetID

	cached, err := d.redisClient.Get(ctx, key)
	if err == nil {
		if price, err := decimal.NewFromString(cached); err == nil && price.IsPositive() {
			return price, nil
		}
	} else if !errors.Is(err, xredis.ErrNotFound) {
		xcontext.Logger(ctx).Warnf("Cannot get cached price: %v", err)
	}

	price, err := d.pricingEndpoint.GetUSDPrice(ctx, cfg.AssetID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get price of %s: %v", cfg.AssetID, err)
		return decimal.Zero, errorx.New(errorx.Unavailable, "Cannot get the SOL price at this time")
	}

	if !price.IsPositive() {
		xcontext.Logger(ctx).Errorf("Invalid price of %s: %s", cfg.AssetID, price)
		return decimal.Zero, errorx.New(errorx.Unavailable, "Cannot get the SOL price at this time")
	}

	if err := d.redisClient.SetEx(ctx, key, price.String(), cfg.CacheTTL); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache price: %v", err)
	}

	return price, nil
}

func lamportsToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -9)
}
