package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaging(t *testing.T) {
	tests := []struct {
		name         string
		page, limit  string
		defaultLimit int
		want         Paging
	}{
		{"defaults", "", "", 10, Paging{Page: 1, Limit: 10, Offset: 0}},
		{"explicit", "3", "20", 10, Paging{Page: 3, Limit: 20, Offset: 40}},
		{"zero page becomes first", "0", "10", 10, Paging{Page: 1, Limit: 10, Offset: 0}},
		{"negative page becomes first", "-2", "10", 10, Paging{Page: 1, Limit: 10, Offset: 0}},
		{"limit clamped to max", "1", "9999", 10, Paging{Page: 1, Limit: MaxPerPage, Offset: 0}},
		{"garbage falls back", "abc", "xyz", 25, Paging{Page: 1, Limit: 25, Offset: 0}},
		{"zero default limit uses package default", "1", "", 0, Paging{Page: 1, Limit: DefaultPerPage, Offset: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePaging(tt.page, tt.limit, tt.defaultLimit))
		})
	}
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		limit     int
		page      int
		pageCount int
		wantPages int
	}{
		{"exact division", 100, 10, 1, 10, 10},
		{"ceiling division", 101, 10, 1, 10, 11},
		{"single partial page", 7, 10, 1, 7, 1},
		{"empty result", 0, 10, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPagination(tt.total, Paging{Page: tt.page, Limit: tt.limit}, tt.pageCount)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageCount, p.Count)
		})
	}
}
