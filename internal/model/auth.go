package model

type WalletNonceRequest struct {
	Wallet string `json:"wallet"`
}

type WalletNonceResponse struct {
	Wallet    string `json:"wallet"`
	Message   string `json:"message"`
	ExpiresAt string `json:"expires_at"`
}

type WalletVerifyRequest struct {
	Wallet string `json:"wallet"`

	// Signature is the base58 ed25519 signature of the nonce message.
	Signature string `json:"signature"`
}

type WalletVerifyResponse struct {
	AccessToken string `json:"access_token"`
}
