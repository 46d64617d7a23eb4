package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputersPerClub(t *testing.T) {
	assert.Equal(t, 5.0, ComputersPerClub(10, 2))
	assert.Equal(t, 0.0, ComputersPerClub(10, 0))
	assert.Equal(t, 0.0, ComputersPerClub(0, 3))
	assert.InDelta(t, 3.33, ComputersPerClub(10, 3), 0.01)
}

func TestClampNonNegative(t *testing.T) {
	assert.Equal(t, 0, ClampNonNegative(-5))
	assert.Equal(t, 0, ClampNonNegative(0))
	assert.Equal(t, 7, ClampNonNegative(7))
}

func TestCreateRequestNormalize(t *testing.T) {
	req := CreateTechClubRequest{
		Name:       "  نادي التكنولوجيا  ",
		Phone:      " 0221234567 ",
		ClubsCount: -3,
		Computers:  -1,
	}
	req.Normalize()

	assert.Equal(t, "نادي التكنولوجيا", req.Name)
	assert.Equal(t, "0221234567", req.Phone)
	assert.Equal(t, 0, req.ClubsCount)
	assert.Equal(t, 0, req.Computers)
}
