package handler

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	kafka "github.com/ONSdigital/dp-kafka/v3"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/config"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/event"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/schema"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/statxplore"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// TableExport is the handler for the TableExportStart event
type TableExport struct {
	cfg        config.Config
	statXplore TableFetcher
	s3         S3Client
	vault      VaultClient
	producer   kafka.IProducer
	generator  Generator
}

// NewTableExport creates a new TableExport handler
func NewTableExport(cfg config.Config, f TableFetcher, s S3Client, v VaultClient, p kafka.IProducer, g Generator) *TableExport {
	return &TableExport{
		cfg:        cfg,
		statXplore: f,
		s3:         s,
		vault:      v,
		producer:   p,
		generator:  g,
	}
}

// Handle takes a single event: it fetches the requested table from
// Stat-Xplore, streams it to the S3 bucket as CSV and produces a CsvCreated
// event on success.
func (h *TableExport) Handle(ctx context.Context, workerID int, msg kafka.Message) error {
	e := &event.TableExportStart{}
	s := schema.TableExportStart

	if err := s.Unmarshal(msg.GetData(), e); err != nil {
		return &Error{
			err: fmt.Errorf("failed to unmarshal event: %w", err),
			logData: map[string]interface{}{
				"msg_data": msg.GetData(),
			},
		}
	}

	logData := log.Data{"event": e}
	log.Info(ctx, "event received", logData)

	if e.Query == "" {
		return &Error{
			err:     errors.New("empty query not allowed"),
			logData: logData,
		}
	}

	if e.ExportID == "" {
		id, err := h.generator.UniqueID()
		if err != nil {
			return fmt.Errorf("failed to generate an export id: %w", err)
		}
		e.ExportID = id
		logData["export_id"] = id
	}

	result, err := h.statXplore.FetchTable(
		ctx,
		statxplore.QueryFromReader(strings.NewReader(e.Query)),
		statxplore.Options{IncludeCodes: e.IncludeCodes},
	)
	if err != nil {
		ld := log.Data{"export_id": e.ExportID}
		for k, v := range unwrapLogData(err) {
			ld[k] = v
		}
		return &Error{
			err:     fmt.Errorf("failed to fetch table from stat-xplore: %w", err),
			logData: ld,
		}
	}

	log.Info(ctx, "table obtained from stat-xplore", log.Data{
		"export_id":   e.ExportID,
		"rows":        len(result.Table.Rows),
		"columns":     len(result.Table.Columns),
		"status_code": result.Exchange.StatusCode,
		"attempts":    result.Exchange.Attempts,
		"elapsed":     result.Exchange.Elapsed.String(),
	})

	s3Location, rowCount, err := h.UploadCSVFile(ctx, e, result)
	if err != nil {
		return &Error{
			err:     fmt.Errorf("failed to upload .csv file to S3 bucket: %w", err),
			logData: logData,
		}
	}

	numBytes, err := h.GetS3ContentLength(e)
	if err != nil {
		return &Error{
			err:     fmt.Errorf("failed to get S3 content length: %w", err),
			logData: logData,
		}
	}

	// Generate output kafka message
	if err := h.ProduceCsvCreatedEvent(e, s3Location, rowCount, numBytes); err != nil {
		return fmt.Errorf("failed to produce csv created kafka message: %w", err)
	}
	return nil
}

// UploadCSVFile renders the fetched table to CSV and uploads it to the S3
// bucket, client-side encrypted with a vault-held PSK unless encryption is
// disabled. Returns the S3 file URL and the number of data rows.
func (h *TableExport) UploadCSVFile(ctx context.Context, e *event.TableExportStart, result *statxplore.FetchResult) (string, int32, error) {
	if e.ExportID == "" {
		return "", 0, errors.New("empty export id not allowed")
	}

	filename := h.generateS3Filename(e)
	bucketName := h.s3.BucketName()
	logData := log.Data{
		"filename":            filename,
		"bucket":              bucketName,
		"encryption_disabled": h.cfg.EncryptionDisabled,
	}

	var body bytes.Buffer
	rowCount, err := writeTableCSV(&body, result.Table)
	if err != nil {
		return "", 0, NewError(
			fmt.Errorf("failed to render table as csv: %w", err),
			logData,
		)
	}

	var uploadOutput *s3manager.UploadOutput

	if h.cfg.EncryptionDisabled {
		log.Info(ctx, "uploading un-encrypted file to S3", logData)

		uploadOutput, err = h.s3.UploadWithContext(ctx, &s3manager.UploadInput{
			Body:   &body,
			Bucket: &bucketName,
			Key:    &filename,
		})
		if err != nil {
			return "", 0, fmt.Errorf("failed to upload un-encrypted file to S3: %w", err)
		}
	} else {
		psk, err := h.generator.NewPSK()
		if err != nil {
			return "", 0, NewError(
				fmt.Errorf("failed to generate a PSK for encryption: %w", err),
				logData,
			)
		}

		vaultPath := fmt.Sprintf("%s/%s", h.cfg.VaultPath, path.Base(filename))
		log.Info(ctx, "writing key to vault", log.Data{"vault_path": vaultPath})

		if err := h.vault.WriteKey(vaultPath, "key", hex.EncodeToString(psk)); err != nil {
			return "", 0, NewError(
				fmt.Errorf("failed to write key to vault: %w", err),
				logData,
			)
		}

		log.Info(ctx, "uploading encrypted file to S3", logData)

		uploadOutput, err = h.s3.UploadWithPSK(&s3manager.UploadInput{
			Body:   &body,
			Bucket: &bucketName,
			Key:    &filename,
		}, psk)
		if err != nil {
			return "", 0, fmt.Errorf("failed to upload encrypted file to S3: %w", err)
		}
	}

	s3Location, err := url.PathUnescape(uploadOutput.Location)
	if err != nil {
		logData["location"] = uploadOutput.Location
		return "", 0, NewError(
			fmt.Errorf("failed to unescape S3 path location: %w", err),
			logData,
		)
	}

	return s3Location, rowCount, nil
}

// GetS3ContentLength obtains the uploaded file size (in number of bytes) by calling Head Object
func (h *TableExport) GetS3ContentLength(e *event.TableExportStart) (int64, error) {
	headOutput, err := h.s3.Head(h.generateS3Filename(e))
	if err != nil {
		return 0, fmt.Errorf("s3 head object error: %w", err)
	}
	return *headOutput.ContentLength, nil
}

// ProduceCsvCreatedEvent sends the final kafka message signifying the export complete
func (h *TableExport) ProduceCsvCreatedEvent(e *event.TableExportStart, s3Location string, rowCount int32, fileSize int64) error {
	if err := h.producer.Send(schema.CsvCreated, &event.CsvCreated{
		ExportID:   e.ExportID,
		S3Location: s3Location,
		RowCount:   rowCount,
		FileSize:   fileSize,
	}); err != nil {
		return fmt.Errorf("error sending csv-created event: %w", err)
	}
	return nil
}

// generateS3Filename generates the S3 key (filename including `subpaths` after the bucket) for the provided event
func (h *TableExport) generateS3Filename(e *event.TableExportStart) string {
	if e.Filename != "" {
		return fmt.Sprintf("exports/%s", e.Filename)
	}
	return fmt.Sprintf("exports/%s-%s.csv", e.ExportID, h.generator.Timestamp().Format(time.RFC3339))
}
