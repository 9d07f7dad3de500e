package schema

import (
	"github.com/ONSdigital/dp-kafka/v3/avro"
)

var tableExportStart = `{
  "type": "record",
  "name": "stat-xplore-table-export-start",
  "fields": [
    {"name": "export_id", "type": "string", "default": ""},
    {"name": "query", "type": "string", "default": ""},
    {"name": "filename", "type": "string", "default": ""},
    {"name": "include_codes", "type": "boolean", "default": false}
  ]
}`

// TableExportStart is the Avro schema for Table Export Start messages.
var TableExportStart = &avro.Schema{
	Definition: tableExportStart,
}

var csvCreated = `{
  "type": "record",
  "name": "stat-xplore-csv-created",
  "fields": [
    {"name": "export_id", "type": "string", "default": ""},
    {"name": "s3_location", "type": "string", "default": ""},
    {"name": "row_count", "type": "int", "default": 0},
    {"name": "file_size", "type": "long", "default": 0}
  ]
}`

// CsvCreated is the Avro schema for CSV Created messages.
var CsvCreated = &avro.Schema{
	Definition: csvCreated,
}
