package statxplore

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

type querySourceKind int

const (
	queryKindValue querySourceKind = iota + 1
	queryKindReader
	queryKindFile
)

// QuerySource is a query in one of the three accepted shapes: an in-memory
// value matching the Stat-Xplore query schema, a reader of JSON text, or the
// path of a file containing JSON text. The discriminant is explicit; no
// runtime type inspection happens at load time.
type QuerySource struct {
	kind   querySourceKind
	value  interface{}
	reader io.Reader
	path   string
}

// QueryFromValue wraps an already-structured query. The value is passed
// through as-is: no schema validation is performed here or anywhere else in
// the client, only transport.
func QueryFromValue(v interface{}) QuerySource {
	return QuerySource{kind: queryKindValue, value: v}
}

// QueryFromReader wraps a reader containing JSON query text.
func QueryFromReader(r io.Reader) QuerySource {
	return QuerySource{kind: queryKindReader, reader: r}
}

// QueryFromFile wraps the path of a file containing JSON query text.
func QueryFromFile(path string) QuerySource {
	return QuerySource{kind: queryKindFile, path: path}
}

// Load normalises the source into canonical JSON. A reader or file whose
// contents fail to parse produces a MalformedQueryError; a missing file
// produces a QueryNotFoundError.
func (q QuerySource) Load() (json.RawMessage, error) {
	switch q.kind {
	case queryKindValue:
		b, err := json.Marshal(q.value)
		if err != nil {
			return nil, &MalformedQueryError{Err: err}
		}
		return b, nil

	case queryKindReader:
		return loadJSON(q.reader)

	case queryKindFile:
		f, err := os.Open(q.path)
		if err != nil {
			return nil, &QueryNotFoundError{Path: q.path, Err: err}
		}
		defer f.Close()
		return loadJSON(f)

	default:
		return nil, &MalformedQueryError{Err: errors.New("no query source provided")}
	}
}

func loadJSON(r io.Reader) (json.RawMessage, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &MalformedQueryError{Err: err}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, &MalformedQueryError{Err: err}
	}
	return raw, nil
}
