package cube

// AddGeographyCodes appends one code column per row index field that carries
// ONS geography codes on at least one of its items. Rows whose item has no
// code get an empty value; fields with no coded items at all get no column.
// The table is modified in place and returned for chaining.
func AddGeographyCodes(t *Table, fields []Field) *Table {
	byLabel := make(map[string]Field, len(fields))
	for _, f := range fields {
		byLabel[f.Label] = f
	}

	for level, fieldLabel := range t.RowFields {
		f, ok := byLabel[fieldLabel]
		if !ok {
			continue
		}

		codes := make(map[string]string)
		for _, item := range f.Items {
			if code := item.GeographyCode(); code != "" {
				codes[item.Label] = code
			}
		}
		if len(codes) == 0 {
			continue
		}

		t.CodeFields = append(t.CodeFields, fieldLabel+" code")
		for r := range t.Rows {
			t.Rows[r].Codes = append(t.Rows[r].Codes, codes[t.Rows[r].Labels[level]])
		}
	}

	return t
}
