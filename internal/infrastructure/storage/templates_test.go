package storage

import (
	"strings"
	"testing"
	"testing/fstest"

	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const glowFishYAML = `
classId: GlowFish
behaviourType: SmallFish
ecoTargetType: SmallFish
maxHealth: 120
template:
  mass: 4
  cellLevel: Near
  swimRandom:
    swimVelocity: 5
  fleeOnDamage: null
waterPark:
  initialSize: 0.1
  maxSize: 0.6
  outsideSize: 1
  daysToGrow: 2
encyclopedia:
  path: Lifeforms/Fauna/SmallHerbivores
  title: Glow fish
cooked:
  description: Жареная светорыба.
  edible:
    foodAmount: 23
    waterAmount: -2
    decomposes: true
    decomposeSpeed: 1
`

func TestDecodeTemplates_Overlay(t *testing.T) {
	docs, err := DecodeTemplates(strings.NewReader(glowFishYAML))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "GlowFish", doc.ClassID)
	require.NotNil(t, doc.Cooked)
	assert.Equal(t, 23.0, doc.Cooked.Edible.FoodAmount)
	require.NotNil(t, doc.Encyclopedia)
	assert.Equal(t, "Glow fish", doc.Encyclopedia.Title)

	tmpl, err := doc.Build(scene.NewNode("GlowFish"))
	require.NoError(t, err)

	assert.Equal(t, enums.BehaviourSmallFish, tmpl.BehaviourType)
	assert.Equal(t, 120.0, tmpl.LiveMixinData.MaxHealth)
	assert.Equal(t, 4.0, tmpl.Mass)
	assert.Equal(t, enums.CellLevelNear, tmpl.CellLevel)

	// Поля слота, не указанные в документе, остаются по умолчанию.
	require.NotNil(t, tmpl.SwimRandomData)
	assert.Equal(t, 5.0, tmpl.SwimRandomData.SwimVelocity)
	assert.Equal(t, 0.2, tmpl.SwimRandomData.EvaluatePriority)

	assert.Nil(t, tmpl.FleeOnDamageData, "null отключает слот")
	assert.NotNil(t, tmpl.LocomotionData)

	require.NotNil(t, tmpl.WaterParkCreatureData)
	assert.Equal(t, 0.6, tmpl.WaterParkCreatureData.MaxSize)
}

func TestDecodeTemplates_MultipleDocuments(t *testing.T) {
	src := "classId: A\n---\nclassId: B\ntemplate:\n  techTypeToClone: Peeper\n"
	docs, err := DecodeTemplates(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	tmpl, err := docs[1].Build(nil)
	require.NoError(t, err)
	assert.Equal(t, types.TechTypePeeper, tmpl.TechTypeToClone)
}

func TestDecodeTemplates_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown field", "classId: A\ncolour: red\n"},
		{"missing class id", "maxHealth: 10\n"},
		{"bad enum", "classId: A\nbehaviourType: Dragon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTemplates(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestBuild_InvalidWaterPark(t *testing.T) {
	src := "classId: A\nwaterPark:\n  initialSize: 1\n  maxSize: 0.5\n  outsideSize: 1\n"
	docs, err := DecodeTemplates(strings.NewReader(src))
	require.NoError(t, err)

	_, err = docs[0].Build(nil)
	assert.Error(t, err)
}

func TestReadTemplates_Glob(t *testing.T) {
	fsys := fstest.MapFS{
		"creatures/b.yaml":      {Data: []byte("classId: B\n")},
		"creatures/deep/a.yaml": {Data: []byte("classId: A\n---\nclassId: A2\n")},
		"creatures/notes.txt":   {Data: []byte("not yaml")},
		"other/ignored.yaml":    {Data: []byte("classId: X\n")},
	}

	docs, err := readTemplates(fsys, "creatures/**/*.yaml")
	require.NoError(t, err)

	var ids, paths []string
	for _, d := range docs {
		ids = append(ids, d.ClassID)
		paths = append(paths, d.Path)
	}
	assert.Equal(t, []string{"B", "A", "A2"}, ids)
	assert.Equal(t, []string{"creatures/b.yaml", "creatures/deep/a.yaml", "creatures/deep/a.yaml"}, paths)
}

func TestReadTemplates_NoMatch(t *testing.T) {
	_, err := readTemplates(fstest.MapFS{}, "*.yaml")
	assert.ErrorIs(t, err, ErrNoTemplates)
}

func TestReadTemplates_ReportsFile(t *testing.T) {
	fsys := fstest.MapFS{"bad.yaml": {Data: []byte("classId: [\n")}}
	_, err := readTemplates(fsys, "*.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}
