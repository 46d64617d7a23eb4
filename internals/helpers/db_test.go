package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"translated", gorm.ErrDuplicatedKey, true},
		{"wrapped translated", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"raw pgx 23505", errors.New(`ERROR: duplicate key value violates unique constraint "uq_tech_clubs_name" (SQLSTATE 23505)`), true},
		{"lib/pq wording", errors.New("pq: duplicate key value violates unique constraint"), true},
		{"unique only", errors.New("UNIQUE constraint failed: playgrounds"), true},
		{"unrelated", errors.New("connection refused"), false},
		{"not found", gorm.ErrRecordNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateKey(tt.err))
		})
	}
}
