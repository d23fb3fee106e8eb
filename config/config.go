package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Auth      AuthConfigs     `toml:"auth"`
	Redis     RedisConfigs    `toml:"redis"`
	Kafka     KafkaConfigs    `toml:"kafka"`
	Solana    SolanaConfigs   `toml:"solana"`
	Draw      DrawConfigs     `toml:"draw"`
	Pricing   PricingConfigs  `toml:"pricing"`
	Twitter   TwitterConfigs  `toml:"twitter"`
	CheckIn   CheckInConfigs  `toml:"check_in"`
}

type DatabaseConfigs struct {
	// URL is a complete connection string, it takes precedence over the
	// other fields.
	URL string `toml:"url"`

	// Driver is one of postgres or mysql.
	Driver   string `toml:"driver"`
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	SSLMode  string `toml:"ssl_mode"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	if d.URL != "" {
		return d.URL
	}

	if d.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User,
			d.Password,
			d.Host,
			d.Port,
			d.Database,
		)
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Database,
		d.SSLMode,
	)
}

type ServerConfigs struct {
	Host           string   `toml:"host"`
	Port           string   `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
	MaxLimit       int      `toml:"max_limit"`
	DefaultLimit   int      `toml:"default_limit"`
}

type AuthConfigs struct {
	TokenSecret     string        `toml:"token_secret"`
	AccessToken     TokenConfigs  `toml:"access_token"`
	NonceExpiration time.Duration `toml:"nonce_expiration"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type KafkaConfigs struct {
	Addr     string `toml:"addr"`
	ClientID string `toml:"client_id"`
}

type SolanaConfigs struct {
	RPCEndpoint     string `toml:"rpc_endpoint"`
	TreasuryAddress string `toml:"treasury_address"`
	TixMint         string `toml:"tix_mint"`

	// FeeReserveLamports is kept aside for network fees when checking whether
	// a wallet can afford a purchase.
	FeeReserveLamports uint64 `toml:"fee_reserve_lamports"`
}

type DrawConfigs struct {
	// UTCOffset is the fixed offset of the draw boundary clock. It never
	// follows daylight saving.
	UTCOffset time.Duration `toml:"utc_offset"`
}

type PricingConfigs struct {
	APIEndpoints []string      `toml:"api_endpoints"`
	AssetID      string        `toml:"asset_id"`
	CacheTTL     time.Duration `toml:"cache_ttl"`

	// APIKey is sent as x-cg-pro-api-key when set.
	APIKey string `toml:"api_key"`
}

type TwitterConfigs struct {
	APIEndpoints []string `toml:"api_endpoints"`
	RequiredText string   `toml:"required_text"`
	BearerToken  string   `toml:"bearer_token"`
}

type CheckInConfigs struct {
	// RewardToken is the symbol of the token disbursed for check-in streaks.
	RewardToken string `toml:"reward_token"`
}

// Default returns the configs used when neither a config file nor an
// environment variable overrides a field.
func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "info",
		Database: DatabaseConfigs{
			Driver:  "postgres",
			Host:    "localhost",
			Port:    "5432",
			SSLMode: "disable",
		},
		ApiServer: ServerConfigs{
			Port:           "8080",
			AllowedOrigins: []string{"*"},
			MaxLimit:       50,
			DefaultLimit:   20,
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
			NonceExpiration: 5 * time.Minute,
		},
		Kafka: KafkaConfigs{
			ClientID: "moonticket",
		},
		Solana: SolanaConfigs{
			RPCEndpoint:        "https://api.mainnet-beta.solana.com",
			FeeReserveLamports: 10_000,
		},
		Draw: DrawConfigs{
			UTCOffset: -5 * time.Hour,
		},
		Pricing: PricingConfigs{
			APIEndpoints: []string{"https://api.coingecko.com/api/v3"},
			AssetID:      "solana",
			CacheTTL:     time.Minute,
		},
		CheckIn: CheckInConfigs{
			RewardToken: "TIX",
		},
	}
}
