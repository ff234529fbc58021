package handler

import (
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, ok := parseDate("2026-08-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), d)

	d, ok = parseDate("2026-08-15T10:30:00Z")
	require.True(t, ok)
	assert.Equal(t, 10, d.Hour())

	_, ok = parseDate("")
	assert.False(t, ok)

	_, ok = parseDate("15/08/2026")
	assert.False(t, ok)
}

func TestImageExtAllowed(t *testing.T) {
	assert.True(t, imageExtAllowed("foto.png"))
	assert.True(t, imageExtAllowed("FOTO.JPG"))
	assert.True(t, imageExtAllowed("a.jpeg"))
	assert.True(t, imageExtAllowed("anim.gif"))
	assert.False(t, imageExtAllowed("doc.pdf"))
	assert.False(t, imageExtAllowed("sin_extension"))
}

func TestFormPayload(t *testing.T) {
	form := &multipart.Form{Value: map[string][]string{
		"name":     {"Feria"},
		"products": {"papas", "quinua"},
		"empty":    {},
	}}
	raw := formPayload(form)
	assert.Equal(t, "Feria", raw["name"])
	assert.Equal(t, []string{"papas", "quinua"}, raw["products"])
	_, ok := raw["empty"]
	assert.False(t, ok)
}
