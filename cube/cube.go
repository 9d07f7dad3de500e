// Package cube holds the internal representation of a Stat-Xplore table
// response (an n-dimensional cube of measure values annotated with field
// metadata) and the transforms from that cube to a flat two-axis table.
package cube

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Item is a single category value along a field axis.
type Item struct {
	Label string
	URIs  []string
}

// GeographyCode returns the ONS geography code embedded in the item's first
// URI, or an empty string if the item does not carry one. ONS codes are the
// final colon-separated segment of the URI, always exactly nine characters
// long and beginning with a letter.
func (i Item) GeographyCode() string {
	if len(i.URIs) == 0 {
		return ""
	}

	uri := i.URIs[0]
	code := uri[strings.LastIndex(uri, ":")+1:]
	if len(code) != 9 {
		return ""
	}
	if !unicode.IsLetter(rune(code[0])) {
		return ""
	}

	return code
}

// Field defines one dimension of the cube. Item order is significant: it is
// the axis ordering of the values array.
type Field struct {
	Label string
	Items []Item
}

// Measure identifies one measure returned by the service.
type Measure struct {
	Label string
	URI   string
}

// Cube is the parsed response: ordered field definitions plus one flat
// row-major value array per measure. The length of each value array equals
// the product of the field item counts.
type Cube struct {
	Fields   []Field
	Measures []Measure
	Values   [][]float64
}

// Size returns the dimension sizes of the cube, in field order.
func (c *Cube) Size() []int {
	size := make([]int, len(c.Fields))
	for i, f := range c.Fields {
		size[i] = len(f.Items)
	}
	return size
}

// MalformedResponseError is returned when the service response violates the
// expected contract: missing metadata, or value counts that do not agree with
// the dimension sizes. It is never worth retrying.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed stat-xplore response: %s", e.Reason)
}

// queryResponse mirrors the wire format of a /table response.
type queryResponse struct {
	Fields []struct {
		Label string `json:"label"`
		Items []struct {
			Labels []string `json:"labels"`
			URIs   []string `json:"uris"`
		} `json:"items"`
	} `json:"fields"`
	Measures []struct {
		Label string `json:"label"`
		URI   string `json:"uri"`
	} `json:"measures"`
	Cubes map[string]struct {
		Values json.RawMessage `json:"values"`
	} `json:"cubes"`
}

// Parse extracts the field definitions and measure values from a raw /table
// response body and reshapes the nested value arrays into flat row-major
// form, validating the count invariant for every measure.
func Parse(body []byte) (*Cube, error) {
	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("body is not valid JSON: %s", err)}
	}

	if len(resp.Fields) == 0 {
		return nil, &MalformedResponseError{Reason: "no fields in response"}
	}
	if len(resp.Measures) == 0 {
		return nil, &MalformedResponseError{Reason: "no measures in response"}
	}

	c := &Cube{
		Fields:   make([]Field, 0, len(resp.Fields)),
		Measures: make([]Measure, 0, len(resp.Measures)),
		Values:   make([][]float64, 0, len(resp.Measures)),
	}

	for _, f := range resp.Fields {
		field := Field{
			Label: f.Label,
			Items: make([]Item, 0, len(f.Items)),
		}
		if len(f.Items) == 0 {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("field %q has no items", f.Label)}
		}
		for _, item := range f.Items {
			if len(item.Labels) == 0 {
				return nil, &MalformedResponseError{Reason: fmt.Sprintf("item in field %q has no labels", f.Label)}
			}
			field.Items = append(field.Items, Item{
				Label: item.Labels[0],
				URIs:  item.URIs,
			})
		}
		c.Fields = append(c.Fields, field)
	}

	size := c.Size()
	want := 1
	for _, d := range size {
		want *= d
	}

	for _, m := range resp.Measures {
		measureCube, ok := resp.Cubes[m.URI]
		if !ok {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("no cube for measure %q", m.URI)}
		}

		values := make([]float64, 0, want)
		values, err := flatten(measureCube.Values, size, values)
		if err != nil {
			return nil, err
		}
		if len(values) != want {
			return nil, &MalformedResponseError{
				Reason: fmt.Sprintf("measure %q has %d values, dimension sizes require %d", m.URI, len(values), want),
			}
		}

		c.Measures = append(c.Measures, Measure{Label: m.Label, URI: m.URI})
		c.Values = append(c.Values, values)
	}

	return c, nil
}

// flatten walks the nested JSON arrays depth-first, checking each level
// against the expected dimension size, and appends the leaf values to dst.
func flatten(raw json.RawMessage, size []int, dst []float64) ([]float64, error) {
	if len(size) == 1 {
		var leaf []float64
		if err := json.Unmarshal(raw, &leaf); err != nil {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("non-numeric values in cube: %s", err)}
		}
		if len(leaf) != size[0] {
			return nil, &MalformedResponseError{
				Reason: fmt.Sprintf("inner value array has length %d, expected %d", len(leaf), size[0]),
			}
		}
		return append(dst, leaf...), nil
	}

	var nested []json.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("cube values are not nested to the field depth: %s", err)}
	}
	if len(nested) != size[0] {
		return nil, &MalformedResponseError{
			Reason: fmt.Sprintf("value array has length %d, expected %d", len(nested), size[0]),
		}
	}

	var err error
	for _, inner := range nested {
		if dst, err = flatten(inner, size[1:], dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
