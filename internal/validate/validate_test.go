package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRequiredText(t *testing.T) {
	rules := []Rule{{Field: "name", Required: true, Kind: Text, MinLen: 3}}

	errs := Check(rules, map[string]any{})
	assert.Equal(t, "es obligatorio", errs["name"])

	errs = Check(rules, map[string]any{"name": "   "})
	assert.Equal(t, "es obligatorio", errs["name"])

	errs = Check(rules, map[string]any{"name": "ab"})
	assert.Equal(t, "debe tener al menos 3 caracteres", errs["name"])

	errs = Check(rules, map[string]any{"name": "abc"})
	assert.Empty(t, errs)
}

func TestCheckTextMaxAndOneOf(t *testing.T) {
	rules := []Rule{
		{Field: "status", Kind: Text, OneOf: []string{"scheduled", "active", "closed"}},
		{Field: "comments", Kind: Text, MaxLen: 5},
	}

	errs := Check(rules, map[string]any{"status": "ACTIVE", "comments": "ok"})
	assert.Empty(t, errs)

	errs = Check(rules, map[string]any{"status": "done"})
	assert.Equal(t, "valor no permitido", errs["status"])

	errs = Check(rules, map[string]any{"comments": "demasiado"})
	assert.Equal(t, "no puede superar 5 caracteres", errs["comments"])
}

func TestCheckOptionalAbsentSkipped(t *testing.T) {
	rules := []Rule{
		{Field: "phone", Kind: Text, MinLen: 7},
		{Field: "farm_size", Kind: Number, HasRange: true, Min: 0, Max: 1000},
	}
	assert.Empty(t, Check(rules, map[string]any{}))
}

func TestCheckNumber(t *testing.T) {
	rules := []Rule{{Field: "satisfaction", Required: true, Kind: Number, HasRange: true, Min: 1, Max: 10}}

	errs := Check(rules, map[string]any{"satisfaction": float64(11)})
	assert.Equal(t, "debe estar entre 1 y 10", errs["satisfaction"])

	errs = Check(rules, map[string]any{"satisfaction": "ocho"})
	assert.Equal(t, "debe ser un número", errs["satisfaction"])

	// Numeric strings from legacy clients are accepted.
	errs = Check(rules, map[string]any{"satisfaction": "8"})
	assert.Empty(t, errs)

	errs = Check(rules, map[string]any{})
	assert.Equal(t, "es obligatorio", errs["satisfaction"])
}

func TestCheckList(t *testing.T) {
	rules := []Rule{{Field: "products_to_sell", Required: true, Kind: List, MaxLen: 2}}

	errs := Check(rules, map[string]any{"products_to_sell": []string{}})
	assert.Equal(t, "es obligatorio", errs["products_to_sell"])

	errs = Check(rules, map[string]any{"products_to_sell": []string{"a", "b", "c"}})
	assert.Equal(t, "no puede incluir más de 2 elementos", errs["products_to_sell"])

	errs = Check(rules, map[string]any{"products_to_sell": []string{"papas"}})
	assert.Empty(t, errs)
}

func TestCheckCollectsAllFields(t *testing.T) {
	rules := []Rule{
		{Field: "name", Required: true, Kind: Text},
		{Field: "fair_id", Required: true, Kind: Number},
	}
	errs := Check(rules, map[string]any{})
	assert.Len(t, errs, 2)
}
