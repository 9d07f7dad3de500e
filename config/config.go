package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents service configuration for dp-statxplore-csv-exporter
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	DefaultRequestTimeout      time.Duration `envconfig:"DEFAULT_REQUEST_TIMEOUT"`
	KafkaAddr                  []string      `envconfig:"KAFKA_ADDR"                   json:"-"`
	KafkaVersion               string        `envconfig:"KAFKA_VERSION"`
	KafkaOffsetOldest          bool          `envconfig:"KAFKA_OFFSET_OLDEST"`
	KafkaNumWorkers            int           `envconfig:"KAFKA_NUM_WORKERS"`
	StopConsumingOnUnhealthy   bool          `envconfig:"STOP_CONSUMING_ON_UNHEALTHY"`
	TableExportStartGroup      string        `envconfig:"TABLE_EXPORT_START_GROUP"`
	TableExportStartTopic      string        `envconfig:"TABLE_EXPORT_START_TOPIC"`
	CsvCreatedTopic            string        `envconfig:"CSV_CREATED_TOPIC"`
	StatXploreURL              string        `envconfig:"STAT_XPLORE_URL"`
	StatXploreAPIKey           string        `envconfig:"STAT_XPLORE_API_KEY"          json:"-"`
	StatXploreMaxRetries       int           `envconfig:"STAT_XPLORE_MAX_RETRIES"`
	StatXploreRetryInterval    time.Duration `envconfig:"STAT_XPLORE_RETRY_INTERVAL"`
	AWSRegion                  string        `envconfig:"AWS_REGION"`
	UploadBucketName           string        `envconfig:"UPLOAD_BUCKET_NAME"`
	LocalObjectStore           string        `envconfig:"LOCAL_OBJECT_STORE"`
	MinioAccessKey             string        `envconfig:"MINIO_ACCESS_KEY"             json:"-"`
	MinioSecretKey             string        `envconfig:"MINIO_SECRET_KEY"             json:"-"`
	EncryptionDisabled         bool          `envconfig:"ENCRYPTION_DISABLED"`
	VaultToken                 string        `envconfig:"VAULT_TOKEN"                  json:"-"`
	VaultAddress               string        `envconfig:"VAULT_ADDR"`
	VaultPath                  string        `envconfig:"VAULT_PATH"`
	OtelEnabled                bool          `envconfig:"OTEL_ENABLED"`
	OTBatchTimeout             time.Duration `envconfig:"OTEL_BATCH_TIMEOUT"`
	OTExporterOTLPEndpoint     string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTServiceName              string        `envconfig:"OTEL_SERVICE_NAME"`
}

var cfg *Config

// Get returns the default config with any modifications through environment
// variables
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:                   ":27600",
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
		DefaultRequestTimeout:      10 * time.Second,
		KafkaAddr:                  []string{"localhost:9092"},
		KafkaVersion:               "1.0.2",
		KafkaOffsetOldest:          true,
		KafkaNumWorkers:            1,
		StopConsumingOnUnhealthy:   true,
		TableExportStartGroup:      "dp-statxplore-csv-exporter",
		TableExportStartTopic:      "stat-xplore-table-export-start",
		CsvCreatedTopic:            "stat-xplore-csv-created",
		StatXploreURL:              "https://stat-xplore.dwp.gov.uk/webapi/rest/v1",
		StatXploreAPIKey:           "",
		StatXploreMaxRetries:       3,
		StatXploreRetryInterval:    500 * time.Millisecond,
		AWSRegion:                  "eu-west-1",
		UploadBucketName:           "dp-statxplore-csv-exporter",
		LocalObjectStore:           "",
		MinioAccessKey:             "",
		MinioSecretKey:             "",
		EncryptionDisabled:         false,
		VaultPath:                  "secret/shared/psk",
		VaultAddress:               "http://localhost:8200",
		VaultToken:                 "",
		OtelEnabled:                false,
		OTBatchTimeout:             5 * time.Second,
		OTExporterOTLPEndpoint:     "localhost:4317",
		OTServiceName:              "dp-statxplore-csv-exporter",
	}

	return cfg, envconfig.Process("", cfg)
}
