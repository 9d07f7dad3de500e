package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/config"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/handler"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Service contains all the configs, server and clients to run the event
// handler service
type Service struct {
	Cfg         *config.Config
	Server      HTTPServer
	HealthCheck HealthChecker
	Consumer    kafka.IConsumerGroup
	Producer    kafka.IProducer
	StatXplore  StatXploreClient
	S3Client    S3Client
	VaultClient VaultClient
	generator   Generator
}

// Init initialises the service and it's dependencies
func (svc *Service) Init(ctx context.Context, cfg *config.Config, buildTime, gitCommit, version string) error {
	var err error

	if cfg == nil {
		return fmt.Errorf("nil config passed to service init")
	}

	svc.Cfg = cfg

	if svc.Consumer, err = GetKafkaConsumer(ctx, cfg); err != nil {
		return fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	if svc.Producer, err = GetKafkaProducer(ctx, cfg); err != nil {
		return fmt.Errorf("failed to create kafka producer: %w", err)
	}

	if svc.S3Client, err = GetS3Client(cfg); err != nil {
		return fmt.Errorf("failed to initialise s3 client: %w", err)
	}

	if !cfg.EncryptionDisabled {
		if svc.VaultClient, err = GetVault(cfg); err != nil {
			return fmt.Errorf("failed to initialise vault client: %w", err)
		}
	}

	svc.StatXplore = GetStatXploreClient(cfg)
	svc.generator = GetGenerator()

	if svc.HealthCheck, err = GetHealthCheck(cfg, buildTime, gitCommit, version); err != nil {
		return fmt.Errorf("could not instantiate healthcheck: %w", err)
	}

	if err := svc.registerCheckers(); err != nil {
		return fmt.Errorf("error initialising checkers: %w", err)
	}

	h := handler.NewTableExport(
		*svc.Cfg,
		svc.StatXplore,
		svc.S3Client,
		svc.VaultClient,
		svc.Producer,
		svc.generator,
	)
	if err := svc.Consumer.RegisterHandler(ctx, h.Handle); err != nil {
		return fmt.Errorf("could not register kafka handler: %w", err)
	}

	r := mux.NewRouter()
	if cfg.OtelEnabled {
		r.Use(otelmux.Middleware(cfg.OTServiceName))
	}
	r.StrictSlash(true).Path("/health").HandlerFunc(svc.HealthCheck.Handler)

	var router http.Handler = r
	if cfg.OtelEnabled {
		router = otelhttp.NewHandler(r, "/")
	}
	svc.Server = GetHTTPServer(cfg.BindAddr, router)

	return nil
}

// Start the service
func (svc *Service) Start(ctx context.Context, svcErrors chan error) error {
	log.Info(ctx, "starting service")

	// Kafka error logging go-routines
	svc.Consumer.LogErrors(ctx)
	svc.Producer.LogErrors(ctx)

	// If the consumer is not subscribed to the healthcheck library, start it
	// now, otherwise it will be started and stopped according to the overall
	// health status
	if !svc.Cfg.StopConsumingOnUnhealthy {
		if err := svc.Consumer.Start(); err != nil {
			return fmt.Errorf("consumer failed to start: %w", err)
		}
	}

	svc.HealthCheck.Start(ctx)

	// Run the http server in a new go-routine
	go func() {
		if err := svc.Server.ListenAndServe(); err != nil {
			svcErrors <- fmt.Errorf("failure in http listen and serve: %w", err)
		}
	}()

	return nil
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.Cfg.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	ctx, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	go func() {
		defer cancel()

		// stop consuming before closing anything the handler depends on
		if svc.Consumer != nil {
			if err := svc.Consumer.StopAndWait(); err != nil {
				log.Error(ctx, "error stopping kafka consumer", err)
				hasShutdownError = true
			} else {
				log.Info(ctx, "stopped kafka consumer")
			}
		}

		// stop healthcheck, as it depends on everything else
		if svc.HealthCheck != nil {
			svc.HealthCheck.Stop()
			log.Info(ctx, "stopped health checker")
		}

		// stop any incoming requests before closing any outbound connections
		if svc.Server != nil {
			if err := svc.Server.Shutdown(ctx); err != nil {
				log.Error(ctx, "failed to shutdown http server", err)
				hasShutdownError = true
			} else {
				log.Info(ctx, "stopped http server")
			}
		}

		if svc.Producer != nil {
			if err := svc.Producer.Close(ctx); err != nil {
				log.Error(ctx, "error closing kafka producer", err)
				hasShutdownError = true
			} else {
				log.Info(ctx, "closed kafka producer")
			}
		}

		if svc.Consumer != nil {
			if err := svc.Consumer.Close(ctx); err != nil {
				log.Error(ctx, "error closing kafka consumer", err)
				hasShutdownError = true
			} else {
				log.Info(ctx, "closed kafka consumer")
			}
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-ctx.Done()

	// timeout expired
	if ctx.Err() == context.DeadlineExceeded {
		log.Error(ctx, "shutdown timed out", ctx.Err())
		return ctx.Err()
	}

	// other error
	if hasShutdownError {
		err := fmt.Errorf("failed to shutdown gracefully")
		log.Error(ctx, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(ctx, "graceful shutdown was successful")
	return nil
}

// registerCheckers adds the checkers for the service clients to the health
// check object, and subscribes the kafka consumer to the downstream checks so
// that it stops consuming while any of them is unhealthy
func (svc *Service) registerCheckers() error {
	if _, err := svc.HealthCheck.AddAndGetCheck("Kafka consumer", svc.Consumer.Checker); err != nil {
		return fmt.Errorf("error adding check for Kafka consumer: %w", err)
	}

	if _, err := svc.HealthCheck.AddAndGetCheck("Kafka producer", svc.Producer.Checker); err != nil {
		return fmt.Errorf("error adding check for Kafka producer: %w", err)
	}

	checkStatXplore, err := svc.HealthCheck.AddAndGetCheck("Stat-Xplore API", svc.StatXplore.Checker)
	if err != nil {
		return fmt.Errorf("error adding check for stat-xplore client: %w", err)
	}

	checkS3, err := svc.HealthCheck.AddAndGetCheck("S3 client", svc.S3Client.Checker)
	if err != nil {
		return fmt.Errorf("error adding check for s3 client: %w", err)
	}

	subscribedTo := []*healthcheck.Check{checkStatXplore, checkS3}

	if !svc.Cfg.EncryptionDisabled {
		checkVault, err := svc.HealthCheck.AddAndGetCheck("Vault", svc.VaultClient.Checker)
		if err != nil {
			return fmt.Errorf("error adding check for vault client: %w", err)
		}
		subscribedTo = append(subscribedTo, checkVault)
	}

	if svc.Cfg.StopConsumingOnUnhealthy {
		svc.HealthCheck.Subscribe(svc.Consumer, subscribedTo...)
	}

	return nil
}
