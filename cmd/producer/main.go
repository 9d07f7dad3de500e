package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/config"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/event"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/schema"
	"github.com/ONSdigital/log.go/v2/log"
)

const serviceName = "dp-statxplore-csv-exporter"

func main() {
	log.Namespace = serviceName
	ctx := context.Background()

	// Get Config
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(ctx, "error getting config", err)
		os.Exit(1)
	}

	// Create Kafka Producer
	producer, err := kafka.NewProducer(ctx, &kafka.ProducerConfig{
		BrokerAddrs:  cfg.KafkaAddr,
		Topic:        cfg.TableExportStartTopic,
		KafkaVersion: &cfg.KafkaVersion,
	})
	if err != nil {
		log.Fatal(ctx, "fatal error trying to create kafka producer", err, log.Data{"topic": cfg.TableExportStartTopic})
		os.Exit(1)
	}

	// kafka error logging go-routine
	producer.LogErrors(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		e := scanEvent(scanner)
		log.Info(ctx, "sending table-export-start event", log.Data{"tableExportStartEvent": e})

		if err := producer.Send(schema.TableExportStart, e); err != nil {
			log.Fatal(ctx, "table-export-start event error", err)
			os.Exit(1)
		}
	}
}

// scanEvent creates a TableExportStart event according to the user input
func scanEvent(scanner *bufio.Scanner) *event.TableExportStart {
	fmt.Println("--- [Send Kafka TableExportStart] ---")

	fmt.Println("Please type the export_id")
	fmt.Printf("$ ")
	scanner.Scan()
	id := scanner.Text()

	fmt.Println("Please type the stat-xplore query (single line JSON)")
	fmt.Printf("$ ")
	scanner.Scan()
	query := scanner.Text()

	fmt.Println("Please type the filename (empty for generated)")
	fmt.Printf("$ ")
	scanner.Scan()
	filename := scanner.Text()

	return &event.TableExportStart{
		ExportID: id,
		Query:    query,
		Filename: filename,
	}
}
