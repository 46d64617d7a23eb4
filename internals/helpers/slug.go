// file: internals/helpers/slug.go
package helper

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	reSpaces = regexp.MustCompile(`\s+`)
	// Arabic block, Arabic supplement, word chars, hyphen. Everything else drops.
	reKeep   = regexp.MustCompile("[^؀-ۿݐ-ݿ\\w-]")
	reHyphen = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug from a display name, preserving
// Arabic script. An input that slugs to nothing (emoji-only names and the
// like) falls back to "<prefix>-<millis>-<random>".
func GenerateSlug(name, fallbackPrefix string) string {
	slug := strings.TrimSpace(name)
	slug = reSpaces.ReplaceAllString(slug, "-")
	slug = reKeep.ReplaceAllString(slug, "")
	slug = reHyphen.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	slug = strings.ToLower(slug)

	if slug == "" {
		slug = fmt.Sprintf("%s-%d-%d", fallbackPrefix, time.Now().UnixMilli(), rand.Intn(1000))
	}
	return slug
}

// EnsureUniqueSlug checks the slug column and, on collision, appends a
// nanosecond timestamp instead of retrying. Same-second duplicate creations
// colliding on the suffix is an accepted risk.
func EnsureUniqueSlug(db *gorm.DB, table, column, slug string) (string, error) {
	return EnsureUniqueSlugExcept(db, table, column, slug, "", nil)
}

// EnsureUniqueSlugExcept is EnsureUniqueSlug for renames: the record's
// own row does not count as a collision, so re-saving the same title
// keeps its stable slug.
func EnsureUniqueSlugExcept(db *gorm.DB, table, column, slug, idColumn string, id any) (string, error) {
	query := db.Table(table).Where(fmt.Sprintf("%s = ?", column), slug)
	if idColumn != "" {
		query = query.Where(fmt.Sprintf("%s <> ?", idColumn), id)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return slug, nil
	}
	return fmt.Sprintf("%s-%d", slug, time.Now().UnixNano()), nil
}
