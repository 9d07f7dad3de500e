package cube_test

import (
	"testing"

	"github.com/ONSdigital/dp-statxplore-csv-exporter/cube"

	. "github.com/smartystreets/goconvey/convey"
)

func testResponse() []byte {
	return []byte(`{
		"fields": [
			{
				"label": "National - Regional - LA - OAs",
				"items": [
					{"labels": ["England"], "uris": ["str:statefn:UC:V_F_UC:COA:E92000001"]},
					{"labels": ["Wales"], "uris": ["str:statefn:UC:V_F_UC:COA:W92000004"]},
					{"labels": ["Total"]}
				]
			},
			{
				"label": "Quarter",
				"items": [
					{"labels": ["Feb-21"]},
					{"labels": ["May-21"]}
				]
			}
		],
		"measures": [
			{"label": "Households on Universal Credit", "uri": "count:V_F_UC_HOUSEHOLDS"}
		],
		"cubes": {
			"count:V_F_UC_HOUSEHOLDS": {
				"values": [[10, 20], [30, 40], [40, 60]]
			}
		}
	}`)
}

func TestParse(t *testing.T) {
	Convey("Given a valid two-dimensional table response", t, func() {
		body := testResponse()

		Convey("When it is parsed", func() {
			c, err := cube.Parse(body)

			Convey("Then no error is returned", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the field definitions are extracted in order", func() {
				So(c.Fields, ShouldHaveLength, 2)
				So(c.Fields[0].Label, ShouldEqual, "National - Regional - LA - OAs")
				So(c.Fields[0].Items, ShouldHaveLength, 3)
				So(c.Fields[0].Items[0].Label, ShouldEqual, "England")
				So(c.Fields[1].Label, ShouldEqual, "Quarter")
				So(c.Fields[1].Items, ShouldHaveLength, 2)
			})

			Convey("Then the measure values are flattened row-major", func() {
				So(c.Measures, ShouldHaveLength, 1)
				So(c.Measures[0].Label, ShouldEqual, "Households on Universal Credit")
				So(c.Values, ShouldHaveLength, 1)
				So(c.Values[0], ShouldResemble, []float64{10, 20, 30, 40, 40, 60})
			})

			Convey("Then the dimension sizes match the field item counts", func() {
				So(c.Size(), ShouldResemble, []int{3, 2})
			})
		})
	})

	Convey("Given a one-dimensional table response", t, func() {
		body := []byte(`{
			"fields": [{"label": "Month", "items": [{"labels": ["Jan"]}, {"labels": ["Feb"]}, {"labels": ["Mar"]}]}],
			"measures": [{"label": "Claimants", "uri": "count:CLAIMANTS"}],
			"cubes": {"count:CLAIMANTS": {"values": [10, 20, 30]}}
		}`)

		Convey("When it is parsed the values come back in order", func() {
			c, err := cube.Parse(body)
			So(err, ShouldBeNil)
			So(c.Size(), ShouldResemble, []int{3})
			So(c.Values[0], ShouldResemble, []float64{10, 20, 30})
		})
	})
}

func TestParseMalformed(t *testing.T) {
	Convey("Given responses that violate the service contract", t, func() {
		Convey("A body that is not JSON fails with MalformedResponseError", func() {
			_, err := cube.Parse([]byte("not json"))
			So(err, ShouldHaveSameTypeAs, &cube.MalformedResponseError{})
		})

		Convey("A response with no fields fails with MalformedResponseError", func() {
			_, err := cube.Parse([]byte(`{"measures": [{"label": "m", "uri": "u"}], "cubes": {"u": {"values": [1]}}}`))
			So(err, ShouldHaveSameTypeAs, &cube.MalformedResponseError{})
		})

		Convey("A response with no measures fails with MalformedResponseError", func() {
			_, err := cube.Parse([]byte(`{"fields": [{"label": "f", "items": [{"labels": ["a"]}]}], "cubes": {}}`))
			So(err, ShouldHaveSameTypeAs, &cube.MalformedResponseError{})
		})

		Convey("A response missing the cube for a measure fails with MalformedResponseError", func() {
			_, err := cube.Parse([]byte(`{
				"fields": [{"label": "f", "items": [{"labels": ["a"]}]}],
				"measures": [{"label": "m", "uri": "u"}],
				"cubes": {}
			}`))
			So(err, ShouldHaveSameTypeAs, &cube.MalformedResponseError{})
		})

		Convey("A value array inconsistent with the dimension sizes fails with MalformedResponseError", func() {
			_, err := cube.Parse([]byte(`{
				"fields": [{"label": "f", "items": [{"labels": ["a"]}, {"labels": ["b"]}]}],
				"measures": [{"label": "m", "uri": "u"}],
				"cubes": {"u": {"values": [1, 2, 3]}}
			}`))
			So(err, ShouldHaveSameTypeAs, &cube.MalformedResponseError{})
		})

		Convey("Values not nested to the field depth fail with MalformedResponseError", func() {
			_, err := cube.Parse([]byte(`{
				"fields": [
					{"label": "f", "items": [{"labels": ["a"]}, {"labels": ["b"]}]},
					{"label": "g", "items": [{"labels": ["x"]}]}
				],
				"measures": [{"label": "m", "uri": "u"}],
				"cubes": {"u": {"values": [1, 2]}}
			}`))
			So(err, ShouldHaveSameTypeAs, &cube.MalformedResponseError{})
		})
	})
}

func TestItemGeographyCode(t *testing.T) {
	Convey("Given items with and without ONS coded URIs", t, func() {
		Convey("A nine character code starting with a letter is recognised", func() {
			i := cube.Item{Label: "England", URIs: []string{"str:statefn:UC:V_F_UC:COA:E92000001"}}
			So(i.GeographyCode(), ShouldEqual, "E92000001")
		})

		Convey("An item with no URIs has no code", func() {
			i := cube.Item{Label: "Total"}
			So(i.GeographyCode(), ShouldEqual, "")
		})

		Convey("A URI whose final segment is not nine characters has no code", func() {
			i := cube.Item{Label: "Unknown", URIs: []string{"str:statefn:UC:V_F_UC:COA:X1"}}
			So(i.GeographyCode(), ShouldEqual, "")
		})

		Convey("A nine character segment starting with a digit has no code", func() {
			i := cube.Item{Label: "Unknown", URIs: []string{"str:statefn:UC:V_F_UC:COA:920000001"}}
			So(i.GeographyCode(), ShouldEqual, "")
		})
	})
}
