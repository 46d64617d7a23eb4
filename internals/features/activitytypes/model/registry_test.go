package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFor(t *testing.T) {
	reg, ok := RegistryFor("sports")
	require.True(t, ok)
	assert.Equal(t, "sport_activities", reg.Table)
	assert.Equal(t, "center_sports_activities", reg.CenterColumn)

	reg, ok = RegistryFor("social")
	require.True(t, ok)
	assert.Equal(t, "social_activities", reg.Table)

	reg, ok = RegistryFor("art")
	require.True(t, ok)
	assert.Equal(t, "center_art_activities", reg.CenterColumn)

	_, ok = RegistryFor("music")
	assert.False(t, ok)
	_, ok = RegistryFor("")
	assert.False(t, ok)
}

func TestAllRegistriesIsACopy(t *testing.T) {
	all := AllRegistries()
	require.Len(t, all, 3)
	all[0].Table = "mutated"

	fresh, _ := RegistryFor("sports")
	assert.Equal(t, "sport_activities", fresh.Table)
}

func TestRegistryTags(t *testing.T) {
	assert.Equal(t, []string{"sports", "social", "art"}, RegistryTags())
}
