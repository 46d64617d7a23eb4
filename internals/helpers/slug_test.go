package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"latin", "Summer Festival", "summer-festival"},
		{"arabic preserved", "نادي الشباب", "نادي-الشباب"},
		{"mixed punctuation stripped", "Club #1 (Cairo)!", "club-1-cairo"},
		{"whitespace runs collapse", "a   b\t c", "a-b-c"},
		{"leading and trailing trimmed", "  hello world  ", "hello-world"},
		{"existing hyphens kept", "already-slugged", "already-slugged"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input, "x"))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	a := GenerateSlug("مهرجان الصيف", "activity")
	b := GenerateSlug("مهرجان الصيف", "activity")
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestGenerateSlugFallback(t *testing.T) {
	slug := GenerateSlug("!!! ((( )))", "news")
	assert.True(t, strings.HasPrefix(slug, "news-"), "fallback slug should carry the prefix, got %q", slug)

	// The fallback carries a timestamp and random suffix, so two
	// degenerate names should still differ in practice.
	other := GenerateSlug("???", "news")
	assert.True(t, strings.HasPrefix(other, "news-"))
}

// A rename that keeps the same title must not treat the record's own
// row as a collision, so the collision query has to exclude it.
func TestEnsureUniqueSlugExceptExcludesOwnRow(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var capturedSQL string
	var capturedVars []any
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		capturedSQL = tx.Statement.SQL.String()
		capturedVars = tx.Statement.Vars
	}))

	slug, err := EnsureUniqueSlugExcept(db, "news", "news_slug", "ramadan-nights", "news_id", "4b2f")
	require.NoError(t, err)
	assert.Equal(t, "ramadan-nights", slug, "free slug should come back unchanged")
	assert.Contains(t, capturedSQL, "news_id <> ?")
	assert.Contains(t, capturedVars, "4b2f")
}

func TestEnsureUniqueSlugQueriesWithoutExclusion(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var capturedSQL string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		capturedSQL = tx.Statement.SQL.String()
	}))

	slug, err := EnsureUniqueSlug(db, "activities", "activity_slug", "summer-camp")
	require.NoError(t, err)
	assert.Equal(t, "summer-camp", slug)
	assert.Contains(t, capturedSQL, "activity_slug = ?")
	assert.NotContains(t, capturedSQL, "<>")
}
