package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statementFor(t *testing.T, table string) string {
	t.Helper()
	for _, s := range statements {
		if strings.Contains(s, "CREATE TABLE IF NOT EXISTS "+table+" ") {
			return s
		}
	}
	t.Fatalf("no CREATE TABLE statement for %s", table)
	return ""
}

// Every column the repositories reference must exist in the DDL, otherwise
// queries against a freshly migrated database fail with undefined-column
// errors at runtime.
func TestMigrationDeclaresRepositoryColumns(t *testing.T) {
	cases := map[string][]string{
		"refresh_tokens": {"user_id", "token_hash", "expires_at", "revoked_at"},
		"users":          {"username", "email", "password_hash", "full_name", "phone", "role", "status"},
		"producers":      {"user_id", "document_type", "document_number", "farm_name", "farm_size", "product_type"},
		"fairs":          {"location", "address", "start_date", "end_date", "max_capacity", "current_capacity", "product_categories", "requirements"},
		"products":       {"producer_id", "quantity", "unit", "unit_price", "category", "status"},
		"registrations":  {"fair_id", "producer_id", "products_to_sell", "estimated_quantity", "assigned_spot"},
		"sales":          {"registration_id", "product_id", "product_name", "total_amount", "payment_method", "sale_date"},
		"fair_surveys":   {"user_id", "fair_id", "satisfaction", "organization", "sales_volume", "would_recommend"},
	}
	for table, cols := range cases {
		t.Run(table, func(t *testing.T) {
			ddl := statementFor(t, table)
			for _, col := range cols {
				assert.Contains(t, ddl, col, "column %s missing from %s DDL", col, table)
			}
		})
	}
}

// Refresh tokens are revoked by setting a timestamp, so the column must be
// the nullable timestamp the token queries filter on, not a boolean flag.
func TestRefreshTokensRevocationColumn(t *testing.T) {
	ddl := statementFor(t, "refresh_tokens")
	require.Contains(t, ddl, "revoked_at TIMESTAMPTZ")
	assert.NotContains(t, ddl, "revoked    BOOLEAN")
	assert.NotContains(t, ddl, "revoked BOOLEAN")
}

// The conflict-translation paths depend on these unique constraints being
// present at the schema level.
func TestMigrationDeclaresUniqueConstraints(t *testing.T) {
	cases := map[string]string{
		"producers":         "UNIQUE (document_type, document_number)",
		"registrations":     "UNIQUE (fair_id, producer_id)",
		"fair_surveys":      "UNIQUE (user_id, fair_id)",
		"fair_coordinators": "UNIQUE (user_id, fair_id)",
		"translations":      "UNIQUE (language_code, key)",
	}
	for table, constraint := range cases {
		t.Run(table, func(t *testing.T) {
			assert.Contains(t, statementFor(t, table), constraint)
		})
	}
}
