package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/conquerblocks/nft-marketplace/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// URIConfig holds URI resolver configuration
type URIConfig struct {
	IPFSGateways    []string `mapstructure:"ipfs_gateways"`
	ArweaveGateways []string `mapstructure:"arweave_gateways"`
}

// DatabaseConfig holds database configuration
// An empty host selects the in-memory store
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// LedgerConfig holds the ledger runtime configuration
type LedgerConfig struct {
	ChainID            uint64 `mapstructure:"chain_id"`
	GasPrice           string `mapstructure:"gas_price"` // in wei
	FeePercent         uint64 `mapstructure:"fee_percent"`
	DeployerPrivateKey string `mapstructure:"deployer_private_key"` // hex, without 0x
	ContractsDataDir   string `mapstructure:"contracts_data_dir"`
	// GenesisAccounts maps addresses to their initial balance in ether
	GenesisAccounts map[string]string `mapstructure:"genesis_accounts"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	PublishRetries uint64        `mapstructure:"publish_retries"`
}

// RedisConfig holds Redis configuration
// An empty address disables Redis backed features
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// IPFSConfig holds IPFS API configuration
type IPFSConfig struct {
	APIURL string `mapstructure:"api_url"`
	Pin    bool   `mapstructure:"pin"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds wallet session configuration
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	NonceTTL   time.Duration `mapstructure:"nonce_ttl"`
	// WriteRateLimit is the number of write requests allowed per address per minute, 0 disables it
	WriteRateLimit int `mapstructure:"write_rate_limit"`
}

// MetadataConfig holds token metadata resolution configuration
type MetadataConfig struct {
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
	Concurrency     int           `mapstructure:"concurrency"`
	DetectMimeTypes bool          `mapstructure:"detect_mime_types"`
}

// WebhookConfig holds the endpoint events are forwarded to
type WebhookConfig struct {
	URL        string        `mapstructure:"url"`
	Secret     string        `mapstructure:"secret"`
	EventTypes []string      `mapstructure:"event_types"`
	Timeout    time.Duration `mapstructure:"timeout"`
	// ConsumerName is the durable consumer the forwarder resumes from
	ConsumerName string `mapstructure:"consumer_name"`
}

// EmitterConfig holds event emitter configuration
type EmitterConfig struct {
	StartBlock      uint64        `mapstructure:"start_block"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	BatchSize       int           `mapstructure:"batch_size"`
	CursorSaveFreq  uint64        `mapstructure:"cursor_save_freq"`
	CursorSaveDelay time.Duration `mapstructure:"cursor_save_delay"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Redis      RedisConfig    `mapstructure:"redis"`
	IPFS       IPFSConfig     `mapstructure:"ipfs"`
	URI        URIConfig      `mapstructure:"uri"`
	Metadata   MetadataConfig `mapstructure:"metadata"`
}

// MarketctlConfig holds configuration for the marketctl command line tool
type MarketctlConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Webhook    WebhookConfig  `mapstructure:"webhook"`
}

// EventEmitterConfig holds configuration for event-emitter
type EventEmitterConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Emitter    EmitterConfig  `mapstructure:"emitter"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	setDatabaseDefaults(v)
	setLedgerDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("auth.session_ttl", "24h")
	v.SetDefault("auth.nonce_ttl", "5m")
	v.SetDefault("auth.write_rate_limit", 0)
	v.SetDefault("ipfs.api_url", "localhost:5001")
	v.SetDefault("ipfs.pin", true)
	v.SetDefault("uri.ipfs_gateways", []string{domain.DEFAULT_IPFS_GATEWAY})
	v.SetDefault("uri.arweave_gateways", []string{domain.DEFAULT_ARWEAVE_GATEWAY})
	v.SetDefault("metadata.http_timeout", "10s")
	v.SetDefault("metadata.concurrency", 8)
	v.SetDefault("metadata.detect_mime_types", true)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadMarketctlConfig loads configuration for the marketctl command line tool
func LoadMarketctlConfig(configFile string, envPath string) (*MarketctlConfig, error) {
	v := configureViper("marketctl", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setLedgerDefaults(v)
	setNATSDefaults(v, "marketctl")
	v.SetDefault("webhook.timeout", "10s")
	v.SetDefault("webhook.event_types", []string{"*"})
	v.SetDefault("webhook.consumer_name", "webhook-forwarder")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg MarketctlConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadEventEmitterConfig loads configuration for event-emitter
func LoadEventEmitterConfig(configFile string, envPath string) (*EventEmitterConfig, error) {
	v := configureViper("event-emitter", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setLedgerDefaults(v)
	setNATSDefaults(v, "event-emitter")
	v.SetDefault("emitter.poll_interval", "1s")
	v.SetDefault("emitter.batch_size", 500)
	v.SetDefault("emitter.cursor_save_freq", 10)
	v.SetDefault("emitter.cursor_save_delay", "5s")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg EventEmitterConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setLedgerDefaults(v *viper.Viper) {
	v.SetDefault("ledger.chain_id", domain.DEFAULT_CHAIN_ID)
	v.SetDefault("ledger.gas_price", "1000000000")
	v.SetDefault("ledger.fee_percent", domain.DEFAULT_FEE_PERCENT)
	v.SetDefault("ledger.contracts_data_dir", "contractsData")
}

func setNATSDefaults(v *viper.Viper, connectionName string) {
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE_EVENTS")
	v.SetDefault("nats.connection_name", connectionName)
	v.SetDefault("nats.publish_retries", 3)
}

// readConfig reads the config file, tolerating a missing one
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("NFT_MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Ledger
		"ledger.chain_id",
		"ledger.gas_price",
		"ledger.fee_percent",
		"ledger.deployer_private_key",
		"ledger.contracts_data_dir",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.publish_retries",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// IPFS
		"ipfs.api_url",
		"ipfs.pin",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_secret",
		"auth.session_ttl",
		"auth.nonce_ttl",
		"auth.write_rate_limit",
		// URI
		"uri.ipfs_gateways",
		"uri.arweave_gateways",
		// Metadata
		"metadata.http_timeout",
		"metadata.concurrency",
		"metadata.detect_mime_types",
		// Webhook
		"webhook.url",
		"webhook.secret",
		"webhook.event_types",
		"webhook.timeout",
		"webhook.consumer_name",
		// Emitter
		"emitter.start_block",
		"emitter.poll_interval",
		"emitter.batch_size",
		"emitter.cursor_save_freq",
		"emitter.cursor_save_delay",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// InMemory reports whether the in-memory store should be used
func (c *DatabaseConfig) InMemory() bool {
	return c.Host == ""
}
