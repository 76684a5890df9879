package schema

import (
	"encoding/json"
	"fmt"
	"html/template"
)

// Marshal serialises a record. encoding/json escapes <, > and & so the output
// can sit inside a script element without terminating it.
func Marshal(rec Record) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("schema: marshal %s: %w", rec.SchemaType(), err)
	}
	return data, nil
}

// JSONLD renders records as application/ld+json script blocks, one per record.
func JSONLD(records ...Record) (template.HTML, error) {
	var out []byte
	for _, rec := range records {
		data, err := Marshal(rec)
		if err != nil {
			return "", err
		}
		out = append(out, `<script type="application/ld+json">`...)
		out = append(out, data...)
		out = append(out, "</script>\n"...)
	}
	return template.HTML(out), nil
}
