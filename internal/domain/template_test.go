package domain

import (
	"testing"

	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatureTemplateDefaults(t *testing.T) {
	model := scene.NewNode("Model")
	tmpl := NewCreatureTemplate(model, enums.BehaviourShark, enums.EcoTargetShark, 300)

	assert.Same(t, model, tmpl.Model)
	require.NotNil(t, tmpl.LiveMixinData)
	assert.Equal(t, 300.0, tmpl.LiveMixinData.MaxHealth)
	assert.True(t, tmpl.LiveMixinData.Knifeable)

	require.NotNil(t, tmpl.LocomotionData)
	assert.Equal(t, 10.0, tmpl.LocomotionData.MaxAcceleration)
	require.NotNil(t, tmpl.SwimBehaviourData)
	assert.Equal(t, 1.0, tmpl.SwimBehaviourData.TurnSpeed)
	require.NotNil(t, tmpl.SwimRandomData)
	assert.Equal(t, types.Splat(20), tmpl.SwimRandomData.SwimRadius)
	assert.Equal(t, 3.0, tmpl.SwimRandomData.SwimVelocity)
	require.NotNil(t, tmpl.FleeOnDamageData)
	assert.Equal(t, 0.8, tmpl.FleeOnDamageData.EvaluatePriority)

	assert.True(t, tmpl.RespawnData.Respawn)
	assert.Equal(t, 300.0, tmpl.RespawnData.RespawnInterval)
	assert.Equal(t, 0.1, tmpl.TraitsData.HungerIncreaseRate)
	assert.Equal(t, 10.0, tmpl.Mass)
	assert.Equal(t, 200.0, tmpl.BioReactorCharge)
	assert.Equal(t, enums.SurfaceOrganic, tmpl.SurfaceType)
	assert.True(t, tmpl.CanBeInfected)
	assert.Equal(t, enums.CellLevelMedium, tmpl.CellLevel)
	assert.Equal(t, enums.ItemSoundsFish, tmpl.ItemSoundsType)
	assert.Equal(t, 1.0, tmpl.SizeDistribution.Evaluate(0.5))

	assert.Nil(t, tmpl.PickupableFishData)
	assert.Nil(t, tmpl.ScareableData)
	assert.Nil(t, tmpl.WaterParkCreatureData)
	assert.True(t, tmpl.TechTypeToClone.IsNone())
	assert.Equal(t, DefaultBehaviourLOD, tmpl.BehaviourLOD())
	assert.IsType(t, &components.Creature{}, tmpl.ControllerFactory()())
}

func TestSetupPreyEssentials(t *testing.T) {
	tmpl := NewCreatureTemplate(scene.NewNode("m"), enums.BehaviourSmallFish, enums.EcoTargetSmallFish, 10)
	pickup := NewHeldFishData(types.TechTypeBladderfish, "WorldModel", "ViewModel")
	edible := NewEdibleData(10, 3, true)

	out := tmpl.SetupPreyEssentials(7, pickup, edible)
	assert.Same(t, tmpl, out)

	require.NotNil(t, tmpl.ScareableData)
	assert.Equal(t, enums.EcoTargetShark, tmpl.ScareableData.TargetType)
	require.NotNil(t, tmpl.FleeWhenScaredData)
	assert.Equal(t, 0.8, tmpl.FleeWhenScaredData.EvaluatePriority)
	assert.Equal(t, 7.0, tmpl.FleeWhenScaredData.SwimVelocity)
	assert.Same(t, pickup, tmpl.PickupableFishData)
	assert.Same(t, edible, tmpl.EdibleData)

	world, view := tmpl.HeldModelNames()
	assert.Equal(t, "WorldModel", world)
	assert.Equal(t, "ViewModel", view)
}

func TestAddAggressiveWhenSeeTargetData(t *testing.T) {
	tmpl := NewCreatureTemplate(scene.NewNode("m"), enums.BehaviourShark, enums.EcoTargetShark, 10)
	tmpl.
		AddAggressiveWhenSeeTargetData(NewAggressiveWhenSeeTargetData(enums.EcoTargetPlayer, 1, 10, 3)).
		AddAggressiveWhenSeeTargetData(NewAggressiveWhenSeeTargetData(enums.EcoTargetSmallFish, 0.5, 5, 2))

	require.Len(t, tmpl.AggressiveWhenSeeTargetList, 2)
	assert.Equal(t, enums.EcoTargetPlayer, tmpl.AggressiveWhenSeeTargetList[0].TargetType)
	assert.True(t, tmpl.AggressiveWhenSeeTargetList[1].IgnoreSameKind)
}

func TestSetCreatureComponentType(t *testing.T) {
	type leviathan struct{ components.Creature }

	tmpl := NewCreatureTemplate(scene.NewNode("m"), enums.BehaviourLeviathan, enums.EcoTargetLeviathan, 5000)
	tmpl.SetCreatureComponentType(func() components.Controller { return &leviathan{} })

	assert.IsType(t, &leviathan{}, tmpl.ControllerFactory()())
}

func TestWaterParkGrowth(t *testing.T) {
	valid := WaterParkGrowth{InitialSize: 0.1, MaxSize: 0.6, OutsideSize: 1, DaysToGrow: 5, CanBreed: true, EggOrChildPrefab: "FooEgg"}

	tests := []struct {
		name   string
		mutate func(*WaterParkGrowth)
		want   error
	}{
		{"valid", func(*WaterParkGrowth) {}, nil},
		{"zero size", func(g *WaterParkGrowth) { g.OutsideSize = 0 }, ErrGrowthSize},
		{"shrinks", func(g *WaterParkGrowth) { g.MaxSize = 0.05 }, ErrGrowthMax},
		{"negative days", func(g *WaterParkGrowth) { g.DaysToGrow = -1 }, ErrGrowthDays},
		{"breed without egg", func(g *WaterParkGrowth) { g.EggOrChildPrefab = "" }, ErrGrowthBreed},
		{"adult without growth", func(g *WaterParkGrowth) { g.DaysToGrow = 0; g.AdultPrefab = "Foo" }, ErrGrowthAdults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			tmpl := NewCreatureTemplate(scene.NewNode("m"), enums.BehaviourSmallFish, enums.EcoTargetSmallFish, 10)

			err := tmpl.SetWaterParkCreatureData(g)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Nil(t, tmpl.WaterParkCreatureData)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tmpl.WaterParkCreatureData)
			assert.Equal(t, "FooEgg", tmpl.WaterParkCreatureData.EggOrChildPrefab)
			assert.InDelta(t, 0.35, tmpl.WaterParkCreatureData.SizeAt(2.5), 1e-9)
		})
	}
}

func TestSetWaterParkCreatureDataReusesRecord(t *testing.T) {
	tmpl := NewCreatureTemplate(scene.NewNode("m"), enums.BehaviourSmallFish, enums.EcoTargetSmallFish, 10)
	require.NoError(t, tmpl.SetWaterParkCreatureData(WaterParkGrowth{InitialSize: 0.1, MaxSize: 0.5, OutsideSize: 1, DaysToGrow: 1}))
	first := tmpl.WaterParkCreatureData

	require.NoError(t, tmpl.SetWaterParkCreatureData(WaterParkGrowth{InitialSize: 0.2, MaxSize: 0.5, OutsideSize: 1, DaysToGrow: 1}))
	assert.Same(t, first, tmpl.WaterParkCreatureData)
	assert.Equal(t, 0.2, first.InitialSize)
}
