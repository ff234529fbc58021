package repository

import "encoding/json"

// List-valued columns (product_type, product_categories, requirements,
// products_to_sell, attachments, products_sold) are stored as JSONB arrays
// of strings.  These helpers convert between []string and the raw column
// value at scan/exec time.

// jsonbList marshals items for insertion.  nil becomes an empty array so
// the column never holds SQL NULL.
func jsonbList(items []string) []byte {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return b
}

// scanList unmarshals a JSONB column value.  Malformed or NULL data yields
// an empty list rather than an error; the column is always written through
// jsonbList so this is a safety net for hand-edited rows.
func scanList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
