package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moonticket/backend/internal/domain/drawwindow"
	"github.com/moonticket/backend/internal/domain/ledger"
	"github.com/moonticket/backend/internal/entity"
	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/internal/repository"
	"github.com/moonticket/backend/pkg/api/twitter"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EntryDomain interface {
	RecordPurchaseEntry(ctx context.Context, wallet, signature string, usdSpent, tixAmount decimal.Decimal) (*entity.Entry, error)
	RecordTweetEntry(ctx context.Context, wallet, tweetID string, isBonus bool) (*entity.Entry, error)
	SummarizeWallet(ctx context.Context, wallet string, now time.Time) (*ledger.Summary, error)

	GetWalletSummary(context.Context, *model.GetWalletSummaryRequest) (*model.GetWalletSummaryResponse, error)
	ClaimTweetEntry(context.Context, *model.ClaimTweetEntryRequest) (*model.ClaimTweetEntryResponse, error)
}

type entryDomain struct {
	entryRepo       repository.EntryRepository
	resolver        *drawwindow.Resolver
	twitterEndpoint twitter.IEndpoint
}

// NewEntryDomain creates the entry domain. twitterEndpoint may be nil, tweet
// claims are then accepted on the URL alone.
func NewEntryDomain(
	entryRepo repository.EntryRepository,
	resolver *drawwindow.Resolver,
	twitterEndpoint twitter.IEndpoint,
) *entryDomain {
	return &entryDomain{
		entryRepo:       entryRepo,
		resolver:        resolver,
		twitterEndpoint: twitterEndpoint,
	}
}

// RecordPurchaseEntry appends one entry per dollar spent. Recording the same
// signature twice returns errorx.DuplicateClaim.
func (d *entryDomain) RecordPurchaseEntry(
	ctx context.Context, wallet, signature string, usdSpent, tixAmount decimal.Decimal,
) (*entity.Entry, error) {
	entries, err := ledger.PurchaseEntries(usdSpent)
	if err != nil {
		return nil, err
	}

	entry := &entity.Entry{
		Base:      entity.Base{ID: uuid.NewString()},
		Wallet:    wallet,
		Type:      entity.PurchaseEntry,
		Entries:   entries,
		TixAmount: tixAmount,
		Reference: signature,
		ClaimKey:  ledger.PurchaseClaimKey(signature),
	}

	if err := d.entryRepo.Append(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.DuplicateClaim, "This purchase has been recorded")
		}

		xcontext.Logger(ctx).Errorf("Cannot append purchase entry: %v", err)
		return nil, errorx.Unknown
	}

	return entry, nil
}

// RecordTweetEntry appends a single entry for a tweet. A wallet gets at most
// one regular and one bonus tweet entry per draw window.
func (d *entryDomain) RecordTweetEntry(
	ctx context.Context, wallet, tweetID string, isBonus bool,
) (*entity.Entry, error) {
	return d.recordTweetEntry(ctx, wallet, tweetID, isBonus, time.Now())
}

// recordTweetEntry stamps the entry with now, the instant its window was
// resolved from, so the claim key and created_at name the same window.
func (d *entryDomain) recordTweetEntry(
	ctx context.Context, wallet, tweetID string, isBonus bool, now time.Time,
) (*entity.Entry, error) {
	window, err := d.resolver.Active(now)
	if err != nil {
		return nil, err
	}

	entry := &entity.Entry{
		Base:      entity.Base{ID: uuid.NewString(), CreatedAt: now.UTC()},
		Wallet:    wallet,
		Type:      entity.TweetEntry,
		Entries:   decimal.NewFromInt(1),
		TixAmount: decimal.Zero,
		Reference: tweetID,
		ClaimKey:  ledger.TweetClaimKey(wallet, window, isBonus),
	}

	if err := d.entryRepo.Append(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.DuplicateClaim, "You have already claimed this tweet entry in this draw")
		}

		xcontext.Logger(ctx).Errorf("Cannot append tweet entry: %v", err)
		return nil, errorx.Unknown
	}

	return entry, nil
}

func (d *entryDomain) SummarizeWallet(ctx context.Context, wallet string, now time.Time) (*ledger.Summary, error) {
	window, err := d.resolver.Active(now)
	if err != nil {
		return nil, err
	}

	entries, err := d.entryRepo.GetByWalletBetween(ctx, wallet, window.Start, window.End)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get entries of wallet: %v", err)
		return nil, errorx.Unknown
	}

	summary := ledger.Summarize(entries, window)
	return &summary, nil
}

func (d *entryDomain) GetWalletSummary(
	ctx context.Context, req *model.GetWalletSummaryRequest,
) (*model.GetWalletSummaryResponse, error) {
	wallet := xcontext.RequestWallet(ctx)
	summary, err := d.SummarizeWallet(ctx, wallet, time.Now())
	if err != nil {
		return nil, err
	}

	return &model.GetWalletSummaryResponse{
		Summary: model.WalletSummary{
			Wallet:          wallet,
			WindowStart:     summary.Window.Start.UTC().Format(model.DefaultTimeLayout),
			WindowEnd:       summary.Window.End.UTC().Format(model.DefaultTimeLayout),
			PurchaseEntries: summary.PurchaseEntries,
			TweetEntries:    summary.TweetEntries,
			CreditEntries:   summary.CreditEntries,
			TotalEntries:    summary.TotalEntries,
			TixPurchased:    summary.TixPurchased,

			TweetClaimed:      summary.TweetClaimed,
			BonusTweetClaimed: summary.BonusTweetClaimed,
		},
	}, nil
}

func (d *entryDomain) ClaimTweetEntry(
	ctx context.Context, req *model.ClaimTweetEntryRequest,
) (*model.ClaimTweetEntryResponse, error) {
	tweetURL, err := twitter.ParseTweetURL(req.TweetURL)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot parse tweet url: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid tweet url")
	}

	if d.twitterEndpoint != nil {
		tweet, err := d.twitterEndpoint.GetTweet(ctx, tweetURL.UserScreenName, tweetURL.TweetID)
		if err != nil {
			if errors.Is(err, twitter.ErrTweetNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found tweet")
			}

			xcontext.Logger(ctx).Errorf("Cannot get tweet: %v", err)
			return nil, errorx.New(errorx.Unavailable, "Cannot verify the tweet at this time")
		}

		requiredText := xcontext.Configs(ctx).Twitter.RequiredText
		if requiredText != "" && !strings.Contains(strings.ToLower(tweet.Text), strings.ToLower(requiredText)) {
			return nil, errorx.New(errorx.BadRequest, "The tweet must contain %s", requiredText)
		}
	}

	entry, err := d.RecordTweetEntry(ctx, xcontext.RequestWallet(ctx), tweetURL.TweetID, req.IsBonus)
	if err != nil {
		return nil, err
	}

	return &model.ClaimTweetEntryResponse{Entries: entry.Entries}, nil
}
