package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/moonticket/backend/internal/model"
	"github.com/moonticket/backend/pkg/authenticator"
	"github.com/moonticket/backend/pkg/crypto"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/solutil"
	"github.com/moonticket/backend/pkg/xcontext"
	"github.com/moonticket/backend/pkg/xredis"
)

type WalletAuthDomain interface {
	Nonce(context.Context, *model.WalletNonceRequest) (*model.WalletNonceResponse, error)
	Verify(context.Context, *model.WalletVerifyRequest) (*model.WalletVerifyResponse, error)
}

type walletAuthDomain struct {
	redisClient       xredis.Client
	accessTokenEngine authenticator.TokenEngine[model.AccessToken]
}

func NewWalletAuthDomain(
	redisClient xredis.Client,
	accessTokenEngine authenticator.TokenEngine[model.AccessToken],
) *walletAuthDomain {
	return &walletAuthDomain{
		redisClient:       redisClient,
		accessTokenEngine: accessTokenEngine,
	}
}

func walletNonceKey(wallet string) string {
	return "wallet_nonce:" + wallet
}

func walletLoginMessage(wallet, nonce string) string {
	return fmt.Sprintf("Sign in to Moonticket\nWallet: %s\nNonce: %s", wallet, nonce)
}

func (d *walletAuthDomain) Nonce(
	ctx context.Context, req *model.WalletNonceRequest,
) (*model.WalletNonceResponse, error) {
	if !solutil.IsValidWallet(req.Wallet) {
		return nil, errorx.New(errorx.BadRequest, "Invalid wallet")
	}

	nonce, err := crypto.GenerateRandomString(16)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate nonce: %v", err)
		return nil, errorx.Unknown
	}

	expiration := xcontext.Configs(ctx).Auth.NonceExpiration
	message := walletLoginMessage(req.Wallet, nonce)
	if err := d.redisClient.SetEx(ctx, walletNonceKey(req.Wallet), message, expiration); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store nonce: %v", err)
		return nil, errorx.Unknown
	}

	return &model.WalletNonceResponse{
		Wallet:    req.Wallet,
		Message:   message,
		ExpiresAt: time.Now().Add(expiration).UTC().Format(model.DefaultTimeLayout),
	}, nil
}

// Verify consumes the nonce of the wallet, so a signed message can be used
// only once.
func (d *walletAuthDomain) Verify(
	ctx context.Context, req *model.WalletVerifyRequest,
) (*model.WalletVerifyResponse, error) {
	if !solutil.IsValidWallet(req.Wallet) {
		return nil, errorx.New(errorx.BadRequest, "Invalid wallet")
	}

	message, err := d.redisClient.GetDel(ctx, walletNonceKey(req.Wallet))
	if err != nil {
		if errors.Is(err, xredis.ErrNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "The nonce is expired or not requested")
		}

		xcontext.Logger(ctx).Errorf("Cannot get nonce: %v", err)
		return nil, errorx.Unknown
	}

	if err := solutil.VerifyMessage(req.Wallet, message, req.Signature); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot verify wallet signature: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Mismatched signature")
	}

	token, err := d.accessTokenEngine.Generate(req.Wallet, model.AccessToken{Wallet: req.Wallet})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.WalletVerifyResponse{AccessToken: token}, nil
}
