package engine

import (
	"context"
	"testing"

	"creature-forge/internal/components"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterExamples(t *testing.T) {
	s, reg := newService()
	require.NoError(t, s.RegisterExamples())

	inst, err := reg.Spawn(context.Background(), ExampleClassID)
	require.NoError(t, err)

	melee := scene.Get[components.MeleeAttack](inst)
	require.NotNil(t, melee)
	assert.Equal(t, 35.0, melee.BiteDamage)
	assert.Equal(t, "Mouth", melee.Mouth.Name)
	assert.Same(t, scene.Get[components.LastTarget](inst), melee.LastTarget)

	mouth := inst.SearchChild("Mouth", scene.Equals)
	require.NotNil(t, mouth)
	assert.Same(t, mouth, melee.Mouth, "ссылки экземпляра ведут на его же узлы")
	touch := scene.Get[components.OnTouchCallback](mouth)
	require.NotNil(t, touch)
	assert.Equal(t, "MeleeAttack", touch.TypeName)

	mod := scene.Get[components.DamageModifier](inst)
	require.NotNil(t, mod)
	assert.Equal(t, enums.DamageElectrical, mod.DamageType)
	assert.Equal(t, 2.0, mod.Multiplier)

	trail := scene.FirstInChildren[components.TrailManager](inst)
	require.NotNil(t, trail)
	assert.Len(t, trail.Trails, 3)
	assert.Same(t, inst, trail.RootTransform)

	_, ok := s.Variant("Cooked" + ExampleClassID)
	assert.True(t, ok)

	asset, ok := s.Creature(ExampleClassID)
	require.True(t, ok)
	_, ok = s.Tables.Encyclopedia(ExampleClassID)
	assert.True(t, ok)
	_, ok = s.Tables.Scanner(asset.TechType())
	assert.True(t, ok)
}

func TestRegisterExamples_Twice(t *testing.T) {
	s, _ := newService()
	require.NoError(t, s.RegisterExamples())
	assert.ErrorIs(t, s.RegisterExamples(), ErrDuplicateIdentity)
}
