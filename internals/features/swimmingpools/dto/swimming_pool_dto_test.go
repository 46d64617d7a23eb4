package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCheckYear(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, CheckYear(nil, now))
	assert.NoError(t, CheckYear(intPtr(1900), now))
	assert.NoError(t, CheckYear(intPtr(2026), now))
	assert.NoError(t, CheckYear(intPtr(1985), now))

	assert.Error(t, CheckYear(intPtr(1899), now))
	assert.Error(t, CheckYear(intPtr(2027), now))
	assert.Error(t, CheckYear(intPtr(0), now))
}

func TestPairKeyCaseInsensitive(t *testing.T) {
	assert.Equal(t, PairKey("Nasr City", "El Shams"), PairKey("nasr city", "EL SHAMS"))
	assert.Equal(t, PairKey(" مدينة نصر ", "الشمس"), PairKey("مدينة نصر", "الشمس"))
	assert.NotEqual(t, PairKey("a", "b"), PairKey("a", "c"))
}

func TestCreateRequestNormalize(t *testing.T) {
	req := CreateSwimmingPoolRequest{
		Area:        "  مدينة نصر ",
		YouthCenter: " مركز الشمس ",
		LanesCount:  -4,
	}
	req.Normalize()

	assert.Equal(t, "مدينة نصر", req.Area)
	assert.Equal(t, "مركز الشمس", req.YouthCenter)
	assert.Equal(t, 0, req.LanesCount)
}
