// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging reads ?page= and ?limit= and normalizes them.
// limit is clamped to MaxPerPage so a single request cannot drain a table.
func ResolvePaging(c *fiber.Ctx, defaultLimit int) Paging {
	return NormalizePaging(
		strings.TrimSpace(c.Query("page")),
		strings.TrimSpace(c.Query("limit")),
		defaultLimit,
	)
}

// NormalizePaging is the pure core of ResolvePaging.
func NormalizePaging(pageStr, limitStr string, defaultLimit int) Paging {
	if defaultLimit <= 0 {
		defaultLimit = DefaultPerPage
	}

	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPerPage {
		limit = MaxPerPage
	}

	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Pagination is the list-response metadata.
type Pagination struct {
	Page       int
	Count      int
	Total      int64
	TotalPages int
}

func BuildPagination(total int64, p Paging, pageCount int) Pagination {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit)) // ceil
	return Pagination{
		Page:       p.Page,
		Count:      pageCount,
		Total:      total,
		TotalPages: totalPages,
	}
}
