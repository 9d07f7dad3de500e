package event

// TableExportStart provides an avro structure for a Table Export Start event.
// Query holds the pre-generated Stat-Xplore JSON query to run.
type TableExportStart struct {
	ExportID     string `avro:"export_id"`
	Query        string `avro:"query"`
	Filename     string `avro:"filename"`
	IncludeCodes bool   `avro:"include_codes"`
}

// CsvCreated provides an avro structure for a CSV Created event
type CsvCreated struct {
	ExportID   string `avro:"export_id"`
	S3Location string `avro:"s3_location"`
	RowCount   int32  `avro:"row_count"`
	FileSize   int64  `avro:"file_size"`
}
