package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEcoTargetType(t *testing.T) {
	v, err := ParseEcoTargetType("smallfish")
	require.NoError(t, err)
	assert.Equal(t, EcoTargetSmallFish, v)

	_, err = ParseEcoTargetType("kraken")
	assert.Error(t, err)
}

func TestEnumText(t *testing.T) {
	var c CellLevel
	require.NoError(t, c.UnmarshalText([]byte(" far ")))
	assert.Equal(t, CellLevelFar, c)

	out, err := CellLevelVeryFar.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "VeryFar", string(out))

	var s SurfaceType
	assert.Error(t, s.UnmarshalText([]byte("lava")))
	assert.Equal(t, "Unknown", SurfaceType(200).String())
}

func TestItemSounds(t *testing.T) {
	assert.Equal(t, "event:/loot/pickup_fish", ItemSoundsFish.PickupSound())
	assert.Equal(t, DefaultDropSound, ItemSoundsFish.DropSound())
	assert.Equal(t, DefaultEatSound, ItemSoundsFish.EatSound())

	assert.Equal(t, "event:/loot/floater/floater_place", ItemSoundsFloater.DropSound())
	assert.Equal(t, "event:/player/drink", ItemSoundsWater.EatSound())
	assert.Equal(t, DefaultPickupSound, ItemSoundsDefault.PickupSound())
}
