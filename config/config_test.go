package config

import (
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("Given an environment with no environment variables set", t, func() {
		os.Clearenv()
		cfg, err := Get()

		Convey("When the config values are retrieved", func() {

			Convey("Then there should be no error returned", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the values should be set to the expected defaults", func() {
				So(cfg.BindAddr, ShouldEqual, ":27600")
				So(cfg.GracefulShutdownTimeout, ShouldEqual, 5*time.Second)
				So(cfg.HealthCheckInterval, ShouldEqual, 30*time.Second)
				So(cfg.HealthCheckCriticalTimeout, ShouldEqual, 90*time.Second)
				So(cfg.DefaultRequestTimeout, ShouldEqual, 10*time.Second)
				So(cfg.KafkaAddr, ShouldHaveLength, 1)
				So(cfg.KafkaAddr[0], ShouldEqual, "localhost:9092")
				So(cfg.KafkaVersion, ShouldEqual, "1.0.2")
				So(cfg.KafkaOffsetOldest, ShouldBeTrue)
				So(cfg.KafkaNumWorkers, ShouldEqual, 1)
					So(cfg.StopConsumingOnUnhealthy, ShouldBeTrue)
				So(cfg.TableExportStartGroup, ShouldEqual, "dp-statxplore-csv-exporter")
				So(cfg.TableExportStartTopic, ShouldEqual, "stat-xplore-table-export-start")
				So(cfg.CsvCreatedTopic, ShouldEqual, "stat-xplore-csv-created")
				So(cfg.StatXploreURL, ShouldEqual, "https://stat-xplore.dwp.gov.uk/webapi/rest/v1")
				So(cfg.StatXploreAPIKey, ShouldEqual, "")
				So(cfg.StatXploreMaxRetries, ShouldEqual, 3)
				So(cfg.StatXploreRetryInterval, ShouldEqual, 500*time.Millisecond)
				So(cfg.AWSRegion, ShouldEqual, "eu-west-1")
				So(cfg.UploadBucketName, ShouldEqual, "dp-statxplore-csv-exporter")
				So(cfg.EncryptionDisabled, ShouldBeFalse)
				So(cfg.VaultPath, ShouldEqual, "secret/shared/psk")
				So(cfg.VaultAddress, ShouldEqual, "http://localhost:8200")
				So(cfg.VaultToken, ShouldEqual, "")
				So(cfg.OtelEnabled, ShouldBeFalse)
				So(cfg.OTBatchTimeout, ShouldEqual, 5*time.Second)
				So(cfg.OTExporterOTLPEndpoint, ShouldEqual, "localhost:4317")
				So(cfg.OTServiceName, ShouldEqual, "dp-statxplore-csv-exporter")
			})

			Convey("Then a second call to config should return the same config", func() {
				newCfg, newErr := Get()
				So(newErr, ShouldBeNil)
				So(newCfg, ShouldResemble, cfg)
			})
		})
	})
}
