package testutil

import (
	"crypto/rand"

	"github.com/gagliardetto/solana-go"
)

var (
	Wallet1 = NewWallet()
	Wallet2 = NewWallet()
	Wallet3 = NewWallet()
)

func NewWallet() string {
	return solana.NewWallet().PublicKey().String()
}

// NewSignature returns a random base58 transaction signature.
func NewSignature() string {
	var sig solana.Signature
	if _, err := rand.Read(sig[:]); err != nil {
		panic(err)
	}

	return sig.String()
}
