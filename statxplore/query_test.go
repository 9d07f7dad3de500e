package statxplore_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ONSdigital/dp-statxplore-csv-exporter/statxplore"

	. "github.com/smartystreets/goconvey/convey"
)

const testQueryJSON = `{"database": "str:database:UC_Monthly", "measures": ["str:count:UC_Monthly:V_F_UC_CASELOAD_FULL"]}`

func TestQueryFromValue(t *testing.T) {
	Convey("Given an already-structured query value", t, func() {
		query := map[string]interface{}{
			"database": "str:database:UC_Monthly",
		}

		Convey("When it is loaded it is passed through as canonical JSON", func() {
			payload, err := statxplore.QueryFromValue(query).Load()
			So(err, ShouldBeNil)

			var got map[string]interface{}
			So(json.Unmarshal(payload, &got), ShouldBeNil)
			So(got, ShouldResemble, query)
		})

		Convey("When the value cannot be marshalled a MalformedQueryError is returned", func() {
			_, err := statxplore.QueryFromValue(func() {}).Load()

			var qErr *statxplore.MalformedQueryError
			So(errors.As(err, &qErr), ShouldBeTrue)
		})
	})
}

func TestQueryFromReader(t *testing.T) {
	Convey("Given a reader containing JSON query text", t, func() {
		Convey("When it is loaded the full contents are returned", func() {
			payload, err := statxplore.QueryFromReader(strings.NewReader(testQueryJSON)).Load()
			So(err, ShouldBeNil)
			So(string(payload), ShouldEqual, testQueryJSON)
		})
	})

	Convey("Given a reader containing malformed JSON", t, func() {
		Convey("When it is loaded a MalformedQueryError is returned", func() {
			_, err := statxplore.QueryFromReader(strings.NewReader(`{"database": `)).Load()

			var qErr *statxplore.MalformedQueryError
			So(errors.As(err, &qErr), ShouldBeTrue)
		})
	})
}

func TestQueryFromFile(t *testing.T) {
	Convey("Given a file containing a JSON query", t, func() {
		path := filepath.Join(t.TempDir(), "query.json")
		So(os.WriteFile(path, []byte(testQueryJSON), 0o600), ShouldBeNil)

		Convey("When it is loaded the file contents are returned", func() {
			payload, err := statxplore.QueryFromFile(path).Load()
			So(err, ShouldBeNil)
			So(string(payload), ShouldEqual, testQueryJSON)
		})
	})

	Convey("Given a path that does not exist", t, func() {
		Convey("When it is loaded a QueryNotFoundError is returned", func() {
			_, err := statxplore.QueryFromFile("/no/such/query.json").Load()

			var nfErr *statxplore.QueryNotFoundError
			So(errors.As(err, &nfErr), ShouldBeTrue)
			So(nfErr.Path, ShouldEqual, "/no/such/query.json")
		})
	})

	Convey("Given a file containing malformed JSON", t, func() {
		path := filepath.Join(t.TempDir(), "query.json")
		So(os.WriteFile(path, []byte("not json"), 0o600), ShouldBeNil)

		Convey("When it is loaded a MalformedQueryError is returned", func() {
			_, err := statxplore.QueryFromFile(path).Load()

			var qErr *statxplore.MalformedQueryError
			So(errors.As(err, &qErr), ShouldBeTrue)
		})
	})
}
