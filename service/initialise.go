package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v3"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	dps3 "github.com/ONSdigital/dp-s3/v2"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/config"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/generator"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/statxplore"
	vault "github.com/ONSdigital/dp-vault"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

const VaultRetries = 3

// GetHTTPServer creates an http server
var GetHTTPServer = func(bindAddr string, router http.Handler) HTTPServer {
	s := dphttp.NewServer(bindAddr, router)
	s.HandleOSSignals = false
	return s
}

// GetKafkaConsumer creates a Kafka consumer
var GetKafkaConsumer = func(ctx context.Context, cfg *config.Config) (kafka.IConsumerGroup, error) {
	kafkaOffset := kafka.OffsetNewest
	if cfg.KafkaOffsetOldest {
		kafkaOffset = kafka.OffsetOldest
	}

	return kafka.NewConsumerGroup(ctx, &kafka.ConsumerGroupConfig{
		BrokerAddrs:  cfg.KafkaAddr,
		Topic:        cfg.TableExportStartTopic,
		GroupName:    cfg.TableExportStartGroup,
		KafkaVersion: &cfg.KafkaVersion,
		Offset:       &kafkaOffset,
		NumWorkers:   &cfg.KafkaNumWorkers,
	})
}

// GetKafkaProducer creates a Kafka producer
var GetKafkaProducer = func(ctx context.Context, cfg *config.Config) (kafka.IProducer, error) {
	return kafka.NewProducer(ctx, &kafka.ProducerConfig{
		BrokerAddrs:  cfg.KafkaAddr,
		Topic:        cfg.CsvCreatedTopic,
		KafkaVersion: &cfg.KafkaVersion,
	})
}

// GetStatXploreClient creates the Stat-Xplore API client. Retries for
// transient failures are handled by the client itself, so the underlying
// transport is configured not to retry.
var GetStatXploreClient = func(cfg *config.Config) StatXploreClient {
	httpCli := dphttp.NewClient()
	httpCli.SetMaxRetries(0)
	httpCli.SetTimeout(cfg.DefaultRequestTimeout)

	return statxplore.NewClient(statxplore.Config{
		URL:            cfg.StatXploreURL,
		APIKey:         cfg.StatXploreAPIKey,
		MaxRetries:     cfg.StatXploreMaxRetries,
		RetryInterval:  cfg.StatXploreRetryInterval,
		RequestTimeout: cfg.DefaultRequestTimeout,
	}, httpCli)
}

// GetS3Client creates an S3 client, pointed at a local object store when one
// is configured
var GetS3Client = func(cfg *config.Config) (S3Client, error) {
	if cfg.LocalObjectStore != "" {
		s3Config := &aws.Config{
			Credentials:      credentials.NewStaticCredentials(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
			Endpoint:         aws.String(cfg.LocalObjectStore),
			Region:           aws.String(cfg.AWSRegion),
			DisableSSL:       aws.Bool(true),
			S3ForcePathStyle: aws.Bool(true),
		}

		s, err := session.NewSession(s3Config)
		if err != nil {
			return nil, fmt.Errorf("failed to create aws session: %w", err)
		}
		return dps3.NewClientWithSession(cfg.UploadBucketName, s), nil
	}

	s3Client, err := dps3.NewClient(cfg.AWSRegion, cfg.UploadBucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 Client: %w", err)
	}

	return s3Client, nil
}

// GetVault creates a VaultClient
var GetVault = func(cfg *config.Config) (VaultClient, error) {
	return vault.CreateClient(cfg.VaultToken, cfg.VaultAddress, VaultRetries)
}

// GetHealthCheck creates a healthcheck with versionInfo
var GetHealthCheck = func(cfg *config.Config, buildTime, gitCommit, version string) (HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, fmt.Errorf("failed to get version info: %w", err)
	}

	hc := healthcheck.New(
		versionInfo,
		cfg.HealthCheckCriticalTimeout,
		cfg.HealthCheckInterval,
	)
	return &hc, nil
}

// GetGenerator returns a psk and id generator
var GetGenerator = func() Generator {
	return generator.New()
}
