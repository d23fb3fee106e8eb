package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load builds the configs from the defaults, then the TOML file at path (if
// path is not empty), then the environment. Variables of a .env file in the
// working directory are loaded into the environment first.
func Load(path string) (Configs, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Configs{}, err
	}

	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}

func (c *Configs) applyEnv() error {
	strs := map[string]*string{
		"ENV":       &c.Env,
		"LOG_LEVEL": &c.LogLevel,

		"DATABASE_URL":      &c.Database.URL,
		"DATABASE_DRIVER":   &c.Database.Driver,
		"DATABASE_HOST":     &c.Database.Host,
		"DATABASE_PORT":     &c.Database.Port,
		"DATABASE_NAME":     &c.Database.Database,
		"DATABASE_USER":     &c.Database.User,
		"DATABASE_PASSWORD": &c.Database.Password,
		"DATABASE_SSL_MODE": &c.Database.SSLMode,

		"API_HOST": &c.ApiServer.Host,
		"API_PORT": &c.ApiServer.Port,

		"TOKEN_SECRET":      &c.Auth.TokenSecret,
		"ACCESS_TOKEN_NAME": &c.Auth.AccessToken.Name,

		"REDIS_ADDRESS":   &c.Redis.Addr,
		"KAFKA_ADDRESS":   &c.Kafka.Addr,
		"KAFKA_CLIENT_ID": &c.Kafka.ClientID,

		"SOLANA_RPC_ENDPOINT":     &c.Solana.RPCEndpoint,
		"SOLANA_TREASURY_ADDRESS": &c.Solana.TreasuryAddress,
		"SOLANA_TIX_MINT":         &c.Solana.TixMint,

		"PRICING_ASSET_ID":      &c.Pricing.AssetID,
		"PRICING_API_KEY":       &c.Pricing.APIKey,
		"TWITTER_REQUIRED_TEXT": &c.Twitter.RequiredText,
		"TWITTER_BEARER_TOKEN":  &c.Twitter.BearerToken,
		"CHECKIN_REWARD_TOKEN":  &c.CheckIn.RewardToken,
	}
	for key, p := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*p = v
		}
	}

	lists := map[string]*[]string{
		"API_ALLOWED_ORIGINS":   &c.ApiServer.AllowedOrigins,
		"PRICING_API_ENDPOINTS": &c.Pricing.APIEndpoints,
		"TWITTER_API_ENDPOINTS": &c.Twitter.APIEndpoints,
	}
	for key, p := range lists {
		if v, ok := os.LookupEnv(key); ok {
			*p = splitList(v)
		}
	}

	durations := map[string]*time.Duration{
		"ACCESS_TOKEN_EXPIRATION": &c.Auth.AccessToken.Expiration,
		"NONCE_EXPIRATION":        &c.Auth.NonceExpiration,
		"DRAW_UTC_OFFSET":         &c.Draw.UTCOffset,
		"PRICING_CACHE_TTL":       &c.Pricing.CacheTTL,
	}
	for key, p := range durations {
		if v, ok := os.LookupEnv(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return errors.New("invalid duration of " + key)
			}
			*p = d
		}
	}

	ints := map[string]*int{
		"API_MAX_LIMIT":     &c.ApiServer.MaxLimit,
		"API_DEFAULT_LIMIT": &c.ApiServer.DefaultLimit,
	}
	for key, p := range ints {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.New("invalid number of " + key)
			}
			*p = n
		}
	}

	if v, ok := os.LookupEnv("SOLANA_FEE_RESERVE_LAMPORTS"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.New("invalid number of SOLANA_FEE_RESERVE_LAMPORTS")
		}
		c.Solana.FeeReserveLamports = n
	}

	return nil
}

func splitList(s string) []string {
	var result []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}
