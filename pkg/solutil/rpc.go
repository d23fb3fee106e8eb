package solutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/moonticket/backend/config"
	"github.com/shopspring/decimal"
)

type rpcReader struct {
	client   *rpc.Client
	treasury solana.PublicKey
	tixMint  solana.PublicKey
}

func NewRPCReader(cfg config.SolanaConfigs) (*rpcReader, error) {
	treasury, err := solana.PublicKeyFromBase58(cfg.TreasuryAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid treasury address: %w", err)
	}

	tixMint, err := solana.PublicKeyFromBase58(cfg.TixMint)
	if err != nil {
		return nil, fmt.Errorf("invalid tix mint: %w", err)
	}

	return &rpcReader{
		client:   rpc.New(cfg.RPCEndpoint),
		treasury: treasury,
		tixMint:  tixMint,
	}, nil
}

func (r *rpcReader) GetBalance(ctx context.Context, wallet string) (uint64, error) {
	pubkey, err := ParseWallet(wallet)
	if err != nil {
		return 0, err
	}

	out, err := r.client.GetBalance(ctx, pubkey, rpc.CommitmentFinalized)
	if err != nil {
		return 0, err
	}

	return out.Value, nil
}

func (r *rpcReader) GetTransfer(ctx context.Context, signature string) (*Transfer, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return nil, err
	}

	maxVersion := uint64(0)
	out, err := r.client.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		Commitment:                     rpc.CommitmentFinalized,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	if out == nil || out.Meta == nil || out.Transaction == nil {
		return nil, ErrTransactionNotFound
	}

	tx, err := out.Transaction.GetTransaction()
	if err != nil {
		return nil, err
	}

	keys := append(solana.PublicKeySlice{}, tx.Message.AccountKeys...)
	keys = append(keys, out.Meta.LoadedAddresses.Writable...)
	keys = append(keys, out.Meta.LoadedAddresses.ReadOnly...)

	transfer, err := deriveTransfer(keys, out.Meta, r.treasury, r.tixMint)
	if err != nil {
		return nil, err
	}

	transfer.Signature = signature
	transfer.Slot = out.Slot
	if out.BlockTime != nil {
		transfer.BlockTime = out.BlockTime.Time().UTC()
	} else {
		transfer.BlockTime = time.Now().UTC()
	}

	return transfer, nil
}

// deriveTransfer reads the lamports credited to treasury and the TIX credited
// to the fee payer (first account key) from the pre/post balances of meta.
func deriveTransfer(
	keys []solana.PublicKey,
	meta *rpc.TransactionMeta,
	treasury, tixMint solana.PublicKey,
) (*Transfer, error) {
	if meta.Err != nil {
		return nil, ErrTransactionFailed
	}

	if len(keys) == 0 {
		return nil, errors.New("transaction has no account")
	}

	feePayer := keys[0]
	transfer := &Transfer{FeePayer: feePayer.String(), TixAmount: decimal.Zero}

	for i, key := range keys {
		if !key.Equals(treasury) {
			continue
		}

		if i >= len(meta.PreBalances) || i >= len(meta.PostBalances) {
			return nil, errors.New("balance index out of range")
		}

		if post, pre := meta.PostBalances[i], meta.PreBalances[i]; post > pre {
			transfer.Lamports = post - pre
		}
		break
	}

	pre, err := tokenBalances(meta.PreTokenBalances, feePayer, tixMint)
	if err != nil {
		return nil, err
	}

	post, err := tokenBalances(meta.PostTokenBalances, feePayer, tixMint)
	if err != nil {
		return nil, err
	}

	if delta := post.Sub(pre); delta.IsPositive() {
		transfer.TixAmount = delta
	}

	return transfer, nil
}

func tokenBalances(balances []rpc.TokenBalance, owner, mint solana.PublicKey) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, b := range balances {
		if b.Owner == nil || !b.Owner.Equals(owner) || !b.Mint.Equals(mint) || b.UiTokenAmount == nil {
			continue
		}

		amount, err := decimal.NewFromString(b.UiTokenAmount.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid token amount %q: %w", b.UiTokenAmount.Amount, err)
		}

		total = total.Add(amount.Shift(-int32(b.UiTokenAmount.Decimals)))
	}

	return total, nil
}
