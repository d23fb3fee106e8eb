package solutil

import (
	"errors"

	"github.com/gagliardetto/solana-go"
)

var ErrInvalidSignature = errors.New("invalid signature")

// ParseWallet parses a base58 encoded ed25519 public key.
func ParseWallet(wallet string) (solana.PublicKey, error) {
	return solana.PublicKeyFromBase58(wallet)
}

func IsValidWallet(wallet string) bool {
	_, err := ParseWallet(wallet)
	return err == nil
}

// VerifyMessage checks that signature (base58) is the signature of message by
// wallet.
func VerifyMessage(wallet, message, signature string) error {
	pubkey, err := ParseWallet(wallet)
	if err != nil {
		return err
	}

	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return err
	}

	if !sig.Verify(pubkey, []byte(message)) {
		return ErrInvalidSignature
	}

	return nil
}

func IsValidSignature(signature string) bool {
	_, err := solana.SignatureFromBase58(signature)
	return err == nil
}
