package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported backends
const (
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"

	StorageTypeLocal = "local"
	StorageTypeMinIO = "minio"

	AIProviderGemini     = "gemini"
	AIProviderAssemblyAI = "assemblyai"
)

// Config holds application configuration
type Config struct {
	Environment string           `envconfig:"ENVIRONMENT" default:"development" validate:"oneof=development test staging production"`
	Server      ServerConfig     `envconfig:"SERVER"`
	Database    DatabaseConfig   `envconfig:"DB"`
	Redis       RedisConfig      `envconfig:"REDIS"`
	Storage     StorageConfig    `envconfig:"STORAGE"`
	AI          AIConfig         `envconfig:"AI"`
	Gemini      GeminiConfig     `envconfig:"GEMINI"`
	Assembly    AssemblyAIConfig `envconfig:"ASSEMBLYAI"`
	Groq        GroqConfig       `envconfig:"GROQ"`
	Progress    ProgressConfig   `envconfig:"PROGRESS"`
	Stats       StatsConfig      `envconfig:"STATS"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `split_words:"true" default:"5000"`
	Host            string        `split_words:"true" default:"0.0.0.0"`
	AllowedOrigins  []string      `split_words:"true" default:"*"`
	BodyLimit       string        `split_words:"true" default:"200M"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver      string `split_words:"true" default:"sqlite" validate:"oneof=sqlite postgres"`
	Path        string `split_words:"true" default:"database.db"`
	Host        string `split_words:"true" default:"localhost"`
	Port        string `split_words:"true" default:"5432"`
	User        string `split_words:"true" default:"postgres"`
	Password    string `split_words:"true" default:"postgres"`
	Name        string `split_words:"true" default:"meeting_notes"`
	SSLMode     string `split_words:"true" default:"disable"`
	MaxConns    int    `split_words:"true" default:"25" validate:"min=1"`
	MinConns    int    `split_words:"true" default:"5" validate:"min=0"`
	AutoMigrate bool   `split_words:"true" default:"true"`
}

// RedisConfig holds Redis configuration. When disabled the stats cache is in-memory.
type RedisConfig struct {
	Enabled  bool   `split_words:"true" default:"false"`
	Host     string `split_words:"true" default:"localhost"`
	Port     string `split_words:"true" default:"6379"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Type            string `split_words:"true" default:"local" validate:"oneof=local minio"`
	Dir             string `split_words:"true" default:"."`
	Endpoint        string `split_words:"true" default:"localhost:9000"`
	AccessKeyID     string `split_words:"true" default:"minioadmin"`
	SecretAccessKey string `split_words:"true" default:"minioadmin"`
	BucketName      string `split_words:"true" default:"meeting-notes"`
	UseSSL          bool   `split_words:"true" default:"false"`
	PublicURL       string `split_words:"true"`
}

// AIConfig selects the remote model used for notes extraction
type AIConfig struct {
	Provider string `split_words:"true" default:"gemini" validate:"oneof=gemini assemblyai"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey string `split_words:"true"`
	Model  string `split_words:"true" default:"gemini-2.0-flash"`
}

// AssemblyAIConfig holds AssemblyAI configuration
type AssemblyAIConfig struct {
	APIKey string `split_words:"true"`
}

// GroqConfig holds Groq configuration
type GroqConfig struct {
	APIKey  string `split_words:"true"`
	BaseURL string `split_words:"true" default:"https://api.groq.com"`
	Model   string `split_words:"true" default:"llama-3.3-70b-versatile"`
}

// ProgressConfig holds the synthetic progress schedule
type ProgressConfig struct {
	FirstPhase string        `split_words:"true" default:"Transcription" validate:"oneof=Uploading Transcription"`
	PhaseTick  time.Duration `split_words:"true" default:"500ms"`
	NotesTick  time.Duration `split_words:"true" default:"1s"`
}

// StatsConfig holds stats cache configuration
type StatsConfig struct {
	CacheTTL time.Duration `split_words:"true" default:"5m"`
}

// Load loads configuration from environment variables and checks that the
// selected AI provider has credentials
func Load() (*Config, error) {
	config, err := LoadWithoutProvider()
	if err != nil {
		return nil, err
	}

	if err := config.ValidateProvider(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadWithoutProvider loads configuration for commands that never call a model
func LoadWithoutProvider() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Storage.Type == StorageTypeMinIO && c.Storage.Endpoint == "" {
		return fmt.Errorf("STORAGE_ENDPOINT is required for minio storage")
	}
	return nil
}

// ValidateProvider checks the API keys of the selected AI provider
func (c *Config) ValidateProvider() error {
	switch c.AI.Provider {
	case AIProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	case AIProviderAssemblyAI:
		if c.Assembly.APIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
		}
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required")
		}
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetDatabaseDSN returns the database connection string for the configured driver
func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == DatabaseDriverSQLite {
		return SQLiteDSN(c.Database.Path)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SQLiteDSN builds a SQLite DSN with WAL and a busy timeout
func SQLiteDSN(path string) string {
	return fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
