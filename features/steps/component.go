package steps

import (
	"context"
	"fmt"
	"time"

	componenttest "github.com/ONSdigital/dp-component-test"
	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/config"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/service"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/maxcnunes/httpfake"
)

const (
	// ComponentTestGroup is the kafka group used by the component test
	// consumer to read the events produced by the service under test
	ComponentTestGroup = "component-test"

	// WaitEventTimeout is the maximum time the test consumer waits for the
	// expected events to arrive
	WaitEventTimeout = 15 * time.Second
)

// Component holds the fakes, clients and service under test for the
// feature tests
type Component struct {
	componenttest.ErrorFeature
	StatXplore       *httpfake.HTTPFake
	S3Downloader     *s3manager.Downloader
	producer         kafka.IProducer
	consumer         kafka.IConsumerGroup
	svc              *service.Service
	cfg              *config.Config
	errorChan        chan error
	waitEventTimeout time.Duration
	ctx              context.Context
}

// NewComponent creates a fresh, uninitialised component
func NewComponent() *Component {
	return &Component{
		errorChan:        make(chan error),
		waitEventTimeout: WaitEventTimeout,
		ctx:              context.Background(),
	}
}

// Init creates the fake Stat-Xplore API, the kafka clients used by the test,
// and starts the service under test with a deterministic generator
func (c *Component) Init() error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}
	c.cfg = cfg

	c.StatXplore = httpfake.New()
	cfg.StatXploreURL = c.StatXplore.ResolveURL("")

	if c.producer, err = kafka.NewProducer(c.ctx, &kafka.ProducerConfig{
		BrokerAddrs:  cfg.KafkaAddr,
		Topic:        cfg.TableExportStartTopic,
		KafkaVersion: &cfg.KafkaVersion,
	}); err != nil {
		return fmt.Errorf("failed to create test kafka producer: %w", err)
	}

	kafkaOffset := kafka.OffsetOldest
	if c.consumer, err = kafka.NewConsumerGroup(c.ctx, &kafka.ConsumerGroupConfig{
		BrokerAddrs:  cfg.KafkaAddr,
		Topic:        cfg.CsvCreatedTopic,
		GroupName:    ComponentTestGroup,
		KafkaVersion: &cfg.KafkaVersion,
		Offset:       &kafkaOffset,
	}); err != nil {
		return fmt.Errorf("failed to create test kafka consumer: %w", err)
	}
	if err := c.consumer.Start(); err != nil {
		return fmt.Errorf("failed to start test kafka consumer: %w", err)
	}

	s3Session, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Endpoint:         aws.String(cfg.LocalObjectStore),
		Region:           aws.String(cfg.AWSRegion),
		DisableSSL:       aws.Bool(true),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create aws session: %w", err)
	}
	c.S3Downloader = s3manager.NewDownloader(s3Session)

	// constant ids, timestamps and keys so features can assert exact values
	service.GetGenerator = func() service.Generator {
		return &generator{}
	}

	c.svc = &service.Service{}
	if err := c.svc.Init(c.ctx, cfg, "", "", ""); err != nil {
		return fmt.Errorf("failed to initialise service under test: %w", err)
	}
	if err := c.svc.Start(c.ctx, c.errorChan); err != nil {
		return fmt.Errorf("failed to start service under test: %w", err)
	}

	c.consumer.StateWait(kafka.Consuming)
	return nil
}

// Reset re-arms the fake Stat-Xplore API between scenarios
func (c *Component) Reset() {
	c.StatXplore.Reset()
}

// Close kills the service under test and the test kafka clients
func (c *Component) Close() error {
	if c.consumer != nil {
		if err := c.consumer.Close(c.ctx); err != nil {
			return fmt.Errorf("failed to close test kafka consumer: %w", err)
		}
	}
	if c.producer != nil {
		if err := c.producer.Close(c.ctx); err != nil {
			return fmt.Errorf("failed to close test kafka producer: %w", err)
		}
	}
	if c.StatXplore != nil {
		c.StatXplore.Close()
	}
	if c.svc != nil {
		if err := c.svc.Close(c.ctx); err != nil {
			return fmt.Errorf("failed to close service under test: %w", err)
		}
	}
	return nil
}
