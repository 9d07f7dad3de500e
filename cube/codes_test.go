package cube_test

import (
	"testing"

	"github.com/ONSdigital/dp-statxplore-csv-exporter/cube"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAddGeographyCodes(t *testing.T) {
	Convey("Given a pivoted table whose row field carries ONS codes", t, func() {
		fields := []cube.Field{
			{
				Label: "Country",
				Items: []cube.Item{
					{Label: "England", URIs: []string{"str:statefn:UC:COA:E92000001"}},
					{Label: "Wales", URIs: []string{"str:statefn:UC:COA:W92000004"}},
					{Label: "Total"},
				},
			},
			{Label: "Quarter", Items: items("Feb-21", "May-21")},
		}

		c := &cube.Cube{
			Fields:   fields,
			Measures: []cube.Measure{{Label: "Count", URI: "count:TEST"}},
			Values:   [][]float64{{1, 2, 3, 4, 5, 6}},
		}
		table := c.Pivot()

		Convey("When geography codes are added", func() {
			cube.AddGeographyCodes(table, fields)

			Convey("Then a code column is appended for the coded field", func() {
				So(table.CodeFields, ShouldResemble, []string{"Country code"})
			})

			Convey("Then codes align with their rows, with empty values for uncoded items", func() {
				So(table.Rows[0].Codes, ShouldResemble, []string{"E92000001"})
				So(table.Rows[1].Codes, ShouldResemble, []string{"W92000004"})
				So(table.Rows[2].Codes, ShouldResemble, []string{""})
			})
		})
	})

	Convey("Given a table whose row fields carry no codes", t, func() {
		fields := []cube.Field{
			{Label: "Age band", Items: items("16-24", "25-34")},
			{Label: "Quarter", Items: items("Feb-21", "May-21")},
		}

		c := &cube.Cube{
			Fields:   fields,
			Measures: []cube.Measure{{Label: "Count", URI: "count:TEST"}},
			Values:   [][]float64{{1, 2, 3, 4}},
		}
		table := c.Pivot()

		Convey("When geography codes are added no column appears", func() {
			cube.AddGeographyCodes(table, fields)
			So(table.CodeFields, ShouldBeEmpty)
			So(table.Rows[0].Codes, ShouldBeEmpty)
		})
	})
}
