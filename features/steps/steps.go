package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	assistdog "github.com/ONSdigital/dp-assistdog"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/event"
	"github.com/ONSdigital/dp-statxplore-csv-exporter/schema"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/cucumber/godog"
	"github.com/google/go-cmp/cmp"
)

// RegisterSteps maps the human-readable regular expressions to their corresponding funcs
func (c *Component) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following table response is available from Stat-Xplore:$`, c.theFollowingTableResponseIsAvailable)
	ctx.Step(`^stat-xplore rejects the query with status "([^"]*)" and body:$`, c.statXploreRejectsTheQuery)
	ctx.Step(`^this table-export-start event is consumed:$`, c.thisTableExportStartEventIsConsumed)
	ctx.Step(`^these csv-created events are produced:$`, c.theseCsvCreatedEventsAreProduced)
	ctx.Step(`^no csv-created events are produced$`, c.noCsvCreatedEventsAreProduced)
	ctx.Step(`^a file with filename "([^"]*)" can be seen in minio$`, c.theFollowingFileCanBeSeenInMinio)
}

// theFollowingTableResponseIsAvailable generates a mocked response for the
// Stat-Xplore POST /table endpoint with the provided cube body
func (c *Component) theFollowingTableResponseIsAvailable(body *godog.DocString) error {
	c.StatXplore.NewHandler().
		Post("/table").
		Reply(http.StatusOK).
		BodyString(body.Content)

	return nil
}

// statXploreRejectsTheQuery generates a mocked rejection from the Stat-Xplore
// POST /table endpoint
func (c *Component) statXploreRejectsTheQuery(status int, body *godog.DocString) error {
	c.StatXplore.NewHandler().
		Post("/table").
		Reply(status).
		BodyString(body.Content)

	return nil
}

// thisTableExportStartEventIsConsumed sends the provided event to the input
// topic so the service under test picks it up
func (c *Component) thisTableExportStartEventIsConsumed(input *godog.DocString) error {
	ctx := context.Background()

	var testEvent event.TableExportStart
	if err := json.Unmarshal([]byte(input.Content), &testEvent); err != nil {
		return fmt.Errorf("error unmarshaling input to event: %w body: %s", err, input.Content)
	}

	log.Info(ctx, "sending table-export-start event", log.Data{
		"event": testEvent,
	})

	if err := c.producer.Send(schema.TableExportStart, &testEvent); err != nil {
		return fmt.Errorf("failed to send event to kafka: %w", err)
	}

	return nil
}

// theseCsvCreatedEventsAreProduced consumes kafka messages that are expected to be produced by the service under test
// and validates that they match the expected values in the test
func (c *Component) theseCsvCreatedEventsAreProduced(events *godog.Table) error {
	expected, err := assistdog.NewDefault().CreateSlice(new(event.CsvCreated), events)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}

	var got []*event.CsvCreated
	listen := true

	for listen {
		select {
		case <-time.After(c.waitEventTimeout):
			listen = false
		case <-c.consumer.Channels().Closer:
			return errors.New("closer channel closed")
		case msg, ok := <-c.consumer.Channels().Upstream:
			if !ok {
				return errors.New("upstream channel closed")
			}

			var e event.CsvCreated
			var s = schema.CsvCreated

			if err := s.Unmarshal(msg.GetData(), &e); err != nil {
				msg.Commit()
				msg.Release()
				return fmt.Errorf("error unmarshalling message: %w", err)
			}

			msg.Commit()
			msg.Release()

			got = append(got, &e)
		}
	}

	if diff := cmp.Diff(got, expected); diff != "" {
		return fmt.Errorf("-got +expected)\n%s\n", diff)
	}

	return nil
}

// noCsvCreatedEventsAreProduced checks that the output topic stays quiet for
// the wait timeout
func (c *Component) noCsvCreatedEventsAreProduced() error {
	select {
	case <-time.After(c.waitEventTimeout):
		return nil
	case msg, ok := <-c.consumer.Channels().Upstream:
		if !ok {
			return errors.New("upstream channel closed")
		}
		msg.Commit()
		msg.Release()
		return errors.New("unexpected csv-created event produced")
	}
}

func (c *Component) theFollowingFileCanBeSeenInMinio(fileName string) error {
	ctx := context.Background()

	var b []byte
	f := aws.NewWriteAtBuffer(b)

	// probe bucket with backoff to give time for event to be processed
	retries := 10
	timeout := time.Second
	var numBytes int64
	var err error

	for {
		if numBytes, err = c.S3Downloader.Download(f, &s3.GetObjectInput{
			Bucket: aws.String(c.cfg.UploadBucketName),
			Key:    aws.String(fileName),
		}); err == nil || retries <= 0 {
			break
		}

		retries--

		log.Info(ctx, "error obtaining file from minio. Retrying.", log.Data{
			"error":        err,
			"retries_left": retries,
		})

		time.Sleep(timeout)
		timeout *= 2
	}
	if err != nil {
		return fmt.Errorf(
			"error obtaining file from minio. Last error: %w",
			err,
		)
	}

	if numBytes < 1 {
		return errors.New("file length zero")
	}

	log.Info(ctx, "got file contents", log.Data{
		"contents": string(f.Bytes()),
	})

	return nil
}
