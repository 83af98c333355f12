package config

import "fmt"

type Config struct {
	Database       DatabaseConfig       `mapstructure:"database"`
	CasbinDatabase DatabaseConfig       `mapstructure:"casbin_database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Server         ServerConfig         `mapstructure:"server"`
	Authentication AuthenticationConfig `mapstructure:"authentication"`
	Authorization  AuthorizationConfig  `mapstructure:"authorization"`
	Observability  ObservabilityConfig  `mapstructure:"observability"`
	Logging        LoggingConfig        `mapstructure:"logging"`
	Nats           NatsConfig           `mapstructure:"nats"`
	Kanban         KanbanConfig         `mapstructure:"kanban"`
}

type NatsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	// SubjectPrefix is prepended to every published subject, e.g. "crm".
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

type DatabaseConfig struct {
	Host       string                  `mapstructure:"host"`
	Port       int                     `mapstructure:"port"`
	User       string                  `mapstructure:"user"`
	Password   string                  `mapstructure:"password"`
	DBName     string                  `mapstructure:"dbname"`
	SSLMode    string                  `mapstructure:"sslmode"`
	Pool       DatabasePoolConfig      `mapstructure:"pool"`
	Migrations DatabaseMigrationConfig `mapstructure:"migrations"`
	// Debug logs every statement ent sends.
	Debug bool `mapstructure:"debug"`
}

type DatabasePoolConfig struct {
	MaxOpenConns       int `mapstructure:"max_open_conns"`
	MaxIdleConns       int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int `mapstructure:"conn_max_lifetime_minutes"`
}

type DatabaseMigrationConfig struct {
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type ServerConfig struct {
	Port           int             `mapstructure:"port"`
	TimeoutSeconds int             `mapstructure:"timeout_seconds"`
	Environment    string          `mapstructure:"environment"`
	Databases      []string        `mapstructure:"databases"`
	CORS           CORSConfig      `mapstructure:"cors"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerWindow int  `mapstructure:"requests_per_window"`
	WindowSeconds     int  `mapstructure:"window_seconds"`
}

type CORSConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type AuthenticationConfig struct {
	Paseto PasetoConfig `mapstructure:"paseto"`
	// SessionCheck rejects tokens whose session id has no live key in Redis.
	SessionCheck bool `mapstructure:"session_check"`
}

type PasetoConfig struct {
	Mode             string `mapstructure:"mode"`
	LocalKeyHex      string `mapstructure:"local_key_hex"`
	SecretKeyHex     string `mapstructure:"secret_key_hex"`
	PublicKeyHex     string `mapstructure:"public_key_hex"`
	Issuer           string `mapstructure:"issuer"`
	Audience         string `mapstructure:"audience"`
	AccessTTLMinutes int    `mapstructure:"access_ttl_minutes"`
}

type AuthorizationConfig struct {
	CasbinModelPath string `mapstructure:"casbin_model_path"`
	EnableAudit     bool   `mapstructure:"enable_audit"`
	PolicySync      bool   `mapstructure:"policy_sync"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/crm.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	TenantID string `mapstructure:"tenant_id"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Store kinds accepted by KanbanConfig.Store.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type KanbanConfig struct {
	Store     string `mapstructure:"store"`
	CardLimit int    `mapstructure:"card_limit"`
	OrderStep int64  `mapstructure:"order_step"`

	// CompactScale is the number of fractional digits of a moved card's
	// order above which its column is renumbered in the background.
	CompactScale int32 `mapstructure:"compact_scale"`

	// Demo seeds the memory store with one organization, an admin member
	// and the default pipeline. Ignored for the postgres store.
	Demo DemoConfig `mapstructure:"demo"`
}

type DemoConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	OrgID   string `mapstructure:"org_id"`
	UserID  string `mapstructure:"user_id"`
}

const (
	DefaultCardLimit    = 100
	DefaultOrderStep    = 1000
	DefaultCompactScale = 12
)

// ApplyDefaults fills zero values that have a sensible default.
func (c *Config) ApplyDefaults() {
	if c.Kanban.Store == "" {
		c.Kanban.Store = StorePostgres
	}
	if c.Kanban.CardLimit == 0 {
		c.Kanban.CardLimit = DefaultCardLimit
	}
	if c.Kanban.OrderStep == 0 {
		c.Kanban.OrderStep = DefaultOrderStep
	}
	if c.Kanban.CompactScale == 0 {
		c.Kanban.CompactScale = DefaultCompactScale
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.TimeoutSeconds == 0 {
		c.Server.TimeoutSeconds = 30
	}
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = "crm_backend"
	}
	if c.Nats.SubjectPrefix == "" {
		c.Nats.SubjectPrefix = "crm"
	}
}

func (c *Config) Validate() error {
	switch c.Kanban.Store {
	case StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("kanban.store: unknown store %q", c.Kanban.Store)
	}
	if c.Kanban.CardLimit < 1 {
		return fmt.Errorf("kanban.card_limit must be positive, got %d", c.Kanban.CardLimit)
	}
	if c.Kanban.OrderStep < 1 {
		return fmt.Errorf("kanban.order_step must be positive, got %d", c.Kanban.OrderStep)
	}
	if c.Nats.Enabled && c.Nats.URL == "" {
		return fmt.Errorf("nats.url is required when nats is enabled")
	}
	return nil
}
