package engine

import (
	"context"
	"testing"

	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/domain"
	"creature-forge/internal/registry"
	"creature-forge/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCookedFish(t *testing.T) {
	s, reg := newService()
	fish := register(t, s, "GlowFish", fishDef("GlowFish"))

	info, err := s.RegisterCookedFish("GlowFish", "Жареная светорыба.", domain.NewEdibleData(23, -2, true), nil)
	require.NoError(t, err)
	assert.Equal(t, "CookedGlowFish", info.ClassID)
	assert.True(t, info.TechType.IsModded())

	recipe, ok := s.Tables.Recipe(info.TechType)
	require.True(t, ok)
	assert.Equal(t, []registry.Ingredient{{TechType: fish.TechType(), Amount: 1}}, recipe.Ingredients)
	assert.Equal(t, []string{"Survival", "CookedFood"}, recipe.Steps)
	assert.Equal(t, Fabricator, recipe.Fabricator)

	tooltip, ok := s.Tables.LanguageLine("Tooltip_CookedGlowFish")
	assert.True(t, ok)
	assert.Equal(t, "Жареная светорыба.", tooltip)

	inst, err := reg.Spawn(context.Background(), "CookedGlowFish")
	require.NoError(t, err)

	eat := scene.Get[components.Eatable](inst)
	require.NotNil(t, eat)
	assert.Equal(t, 23.0, eat.FoodValue)
	assert.Equal(t, -2.0, eat.WaterValue)
	assert.Equal(t, enums.CellLevelNear, scene.Get[components.LargeWorldEntity](inst).CellLevel)
	assert.Equal(t, info.TechType, scene.Get[components.TechTag](inst).Type)
	assert.NotNil(t, scene.FirstInChildren[components.VFXFabricating](inst))

	// Вариант, не существо: сборщик по нему не запускался.
	assert.Nil(t, scene.Get[components.Creature](inst))
	_, ok = s.Report("CookedGlowFish")
	assert.False(t, ok)
}

func TestRegisterCuredFish(t *testing.T) {
	s, _ := newService()
	fish := register(t, s, "GlowFish", fishDef("GlowFish"))

	vfx := &domain.VFXFabricatingData{MinY: -0.2, MaxY: 0.3, ScaleFactor: 1}
	info, err := s.RegisterCuredFish("GlowFish", "", domain.NewEdibleData(20, -10, false), vfx)
	require.NoError(t, err)
	assert.Equal(t, "CuredGlowFish", info.ClassID)

	recipe, ok := s.Tables.Recipe(info.TechType)
	require.True(t, ok)
	assert.Equal(t, []registry.Ingredient{
		{TechType: fish.TechType(), Amount: 1},
		{TechType: types.TechTypeSalt, Amount: 1},
	}, recipe.Ingredients)
	assert.Equal(t, []string{"Survival", "CuredFood"}, recipe.Steps)

	_, ok = s.Tables.LanguageLine("Tooltip_CuredGlowFish")
	assert.False(t, ok, "пустое описание не пишется")
}

func TestRegisterCookedFish_CreatureNotRegistered(t *testing.T) {
	s, _ := newService()
	_, err := s.RegisterCookedFish("Ghost", "", domain.NewEdibleData(1, 1, true), nil)
	assert.ErrorIs(t, err, ErrCreatureNotRegistered)
	assert.Empty(t, s.Identities.List())
}

func TestRegisterCookedFish_Twice(t *testing.T) {
	s, _ := newService()
	register(t, s, "GlowFish", fishDef("GlowFish"))

	_, err := s.RegisterCookedFish("GlowFish", "", domain.NewEdibleData(1, 1, true), nil)
	require.NoError(t, err)
	_, err = s.RegisterCookedFish("GlowFish", "", domain.NewEdibleData(1, 1, true), nil)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestRegisterCookedVariant_Validation(t *testing.T) {
	s, _ := newService()
	tt := types.PackTechType(types.OriginMod, 77)

	err := s.RegisterCookedVariant(Variant{Info: PrefabInfo{ClassID: "X", TechType: tt}, Model: scene.NewNode("x")})
	assert.ErrorIs(t, err, ErrMissingEdible)

	err = s.RegisterCookedVariant(Variant{Info: PrefabInfo{ClassID: "X", TechType: tt}, Edible: domain.NewEdibleData(1, 1, true)})
	assert.ErrorIs(t, err, ErrMissingModel)

	err = s.RegisterCookedVariant(Variant{Info: PrefabInfo{ClassID: "X"}})
	assert.ErrorIs(t, err, ErrMissingTechType)
	assert.Empty(t, s.Identities.List())
}
