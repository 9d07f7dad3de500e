package handler

import (
	"context"
	"time"

	"github.com/ONSdigital/dp-statxplore-csv-exporter/statxplore"

	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

//go:generate moq -out mock/table-fetcher.go -pkg mock . TableFetcher
//go:generate moq -out mock/s3-client.go -pkg mock . S3Client
//go:generate moq -out mock/vault.go -pkg mock . VaultClient
//go:generate moq -out mock/generator.go -pkg mock . Generator

// TableFetcher contains the required method for the Stat-Xplore client
type TableFetcher interface {
	FetchTable(ctx context.Context, src statxplore.QuerySource, opts statxplore.Options) (*statxplore.FetchResult, error)
}

// S3Client contains the required methods for the S3 Client
type S3Client interface {
	Head(key string) (*s3.HeadObjectOutput, error)
	UploadWithContext(ctx context.Context, input *s3manager.UploadInput, options ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
	UploadWithPSK(input *s3manager.UploadInput, psk []byte) (*s3manager.UploadOutput, error)
	BucketName() string
}

// VaultClient contains the required methods for the Vault Client
type VaultClient interface {
	WriteKey(path, key, value string) error
}

// Generator contains methods for dynamically required strings and tokens
// e.g. UUIDs, PSKs.
type Generator interface {
	NewPSK() ([]byte, error)
	Timestamp() time.Time
	UniqueID() (string, error)
}
