package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator"

	"github.com/OFFIS-RIT/carekg/internal/util"
)

// Storage and source backend names.
const (
	BackendFile     = "file"
	BackendS3       = "s3"
	BackendPostgres = "postgres"
	BackendBadger   = "badger"
)

type AWS struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
}

type Neo4j struct {
	URI        string
	User       string
	Password   string
	Database   string
	BatchSize  int `validate:"min=0"`
	MaxRetries int `validate:"min=0"`
	RetryDelay time.Duration
}

// Config collects every setting of the server and CLI.
type Config struct {
	Debug   bool
	LogFile string
	Port    string `validate:"required,numeric"`

	SourceBackend string `validate:"oneof=file s3"`
	DataDir       string `validate:"required"`
	ParallelFiles int    `validate:"min=1,max=64"`

	StoreBackend string `validate:"oneof=file s3 postgres badger"`
	StoreDir     string
	GraphKey     string `validate:"required"`
	DatabaseURL  string
	BadgerPath   string

	MaxSeeds    int `validate:"min=1,max=3"`
	DefaultHops int `validate:"min=1"`

	ShutdownTimeout time.Duration

	AWS   AWS
	Neo4j Neo4j
}

// Load reads the configuration from the environment. Call util.LoadEnv
// first to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Debug:   util.GetEnvBool("DEBUG", false),
		LogFile: util.GetEnv("LOG_FILE"),
		Port:    util.GetEnvString("PORT", "8080"),

		SourceBackend: util.GetEnvString("SOURCE_BACKEND", BackendFile),
		DataDir:       util.GetEnvString("DATA_DIR", "data/raw"),
		ParallelFiles: util.GetEnvInt("PARALLEL_FILES", 3),

		StoreBackend: util.GetEnvString("STORE_BACKEND", BackendFile),
		StoreDir:     util.GetEnvString("STORE_DIR", "data/processed"),
		GraphKey:     util.GetEnvString("KG_KEY", "kg"),
		DatabaseURL:  util.GetEnv("DATABASE_URL"),
		BadgerPath:   util.GetEnvString("BADGER_PATH", "data/badger"),

		MaxSeeds:    util.GetEnvInt("KG_MAX_SEEDS", 3),
		DefaultHops: util.GetEnvInt("KG_HOPS", 1),

		ShutdownTimeout: util.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		AWS: AWS{
			Region:    util.GetEnvString("AWS_REGION", "us-east-1"),
			Endpoint:  util.GetEnv("AWS_ENDPOINT"),
			AccessKey: util.GetEnv("AWS_ACCESS_KEY"),
			SecretKey: util.GetEnv("AWS_SECRET_KEY"),
			Bucket:    util.GetEnv("AWS_BUCKET"),
			Prefix:    util.GetEnv("AWS_PREFIX"),
		},
		Neo4j: Neo4j{
			URI:        util.GetEnv("NEO4J_URI"),
			User:       util.GetEnvString("NEO4J_USER", "neo4j"),
			Password:   util.GetEnv("NEO4J_PASSWORD"),
			Database:   util.GetEnv("NEO4J_DATABASE"),
			BatchSize:  util.GetEnvInt("NEO4J_BATCH_SIZE", 500),
			MaxRetries: util.GetEnvInt("NEO4J_MAX_RETRIES", 3),
			RetryDelay: util.GetEnvDuration("NEO4J_RETRY_DELAY", 2*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and the settings each backend depends on.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	usesS3 := c.SourceBackend == BackendS3 || c.StoreBackend == BackendS3
	if usesS3 && c.AWS.Bucket == "" {
		return errors.New("invalid configuration: AWS_BUCKET is required for the s3 backend")
	}
	if c.StoreBackend == BackendPostgres && c.DatabaseURL == "" {
		return errors.New("invalid configuration: DATABASE_URL is required for the postgres backend")
	}
	if c.StoreBackend == BackendFile && c.StoreDir == "" {
		return errors.New("invalid configuration: STORE_DIR is required for the file backend")
	}
	if c.StoreBackend == BackendBadger && c.BadgerPath == "" {
		return errors.New("invalid configuration: BADGER_PATH is required for the badger backend")
	}
	return nil
}
