package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySnakeWinsOverCamel(t *testing.T) {
	fields := []Field{{Name: "max_capacity"}}
	out := Apply(fields, map[string]any{
		"max_capacity": float64(30),
		"maxCapacity":  float64(99),
	})
	assert.Equal(t, float64(30), out["max_capacity"])
}

func TestApplyCamelFallback(t *testing.T) {
	fields := []Field{{Name: "document_number"}}
	out := Apply(fields, map[string]any{"documentNumber": "1234567890"})
	assert.Equal(t, "1234567890", out["document_number"])
}

func TestApplyFairDefaults(t *testing.T) {
	out := Apply(FairFields, map[string]any{"name": "Feria de Otavalo"})
	assert.Equal(t, float64(50), out["max_capacity"])
	assert.Equal(t, float64(0), out["current_capacity"])
	assert.Equal(t, "scheduled", out["status"])
}

func TestApplyDropsUnknownKeys(t *testing.T) {
	fields := []Field{{Name: "name"}}
	out := Apply(fields, map[string]any{"name": "x", "evil": "y"})
	_, ok := out["evil"]
	assert.False(t, ok)
}

func TestApplyIdempotent(t *testing.T) {
	raw := map[string]any{
		"name":              "Feria",
		"maxCapacity":       "40",
		"productCategories": `["frutas","granos"]`,
	}
	once := Apply(FairFields, raw)
	twice := Apply(FairFields, once)
	assert.Equal(t, once, twice)
}

func TestCoerceList(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, []string{}},
		{"empty string", "", []string{}},
		{"json array string", `["a","b"]`, []string{"a", "b"}},
		{"json array numbers", `[1,2]`, []string{"1", "2"}},
		{"malformed json wraps", `["a",`, []string{`["a",`}},
		{"bare string wraps", "tomate", []string{"tomate"}},
		{"real array", []any{"a", float64(2)}, []string{"a", "2"}},
		{"string slice", []string{"x"}, []string{"x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CoerceList(tc.in))
		})
	}
}

func TestListFieldAbsentYieldsEmpty(t *testing.T) {
	out := Apply([]Field{{Name: "requirements", List: true}}, map[string]any{})
	require.NotNil(t, out["requirements"])
	assert.Equal(t, []string{}, out["requirements"])
}

func TestHas(t *testing.T) {
	raw := map[string]any{"unit_price": float64(0), "maxCapacity": float64(10)}
	assert.True(t, Has(raw, "unit_price"))
	assert.True(t, Has(raw, "max_capacity"))
	assert.False(t, Has(raw, "status"))
}

func TestTypedGetters(t *testing.T) {
	m := map[string]any{
		"qty":    "12.5",
		"count":  float64(3),
		"id":     "7",
		"flag":   "true",
		"truthy": float64(1),
		"name":   "  Juan  ",
	}
	assert.Equal(t, 12.5, Float(m, "qty"))
	assert.Equal(t, 3, Int(m, "count"))
	assert.Equal(t, uint64(7), Uint(m, "id"))
	assert.True(t, Bool(m, "flag"))
	assert.True(t, Bool(m, "truthy"))
	assert.Equal(t, "Juan", Str(m, "name"))
	assert.Equal(t, "", Str(m, "missing"))
	assert.Equal(t, uint64(0), Uint(m, "missing"))
}

func TestCamelOf(t *testing.T) {
	assert.Equal(t, "maxCapacity", camelOf("max_capacity"))
	assert.Equal(t, "productsToSell", camelOf("products_to_sell"))
	assert.Equal(t, "status", camelOf("status"))
}
