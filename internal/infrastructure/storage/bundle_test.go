package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"creature-forge/internal/assets"
	"creature-forge/internal/components"
	"creature-forge/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bundleYAML = `
models:
  - name: GlowFish
    collider: {shape: capsule}
    children:
      - name: GlowFish_geo
        localScale: {x: 2, y: 2, z: 2}
        animator: {controller: glow_fish}
        renderer:
          materials:
            - name: GlowFish_body
          bounds:
            extents: {x: 0.5, y: 0.5, z: 1}
      - name: Mouth
        inactive: true
        collider: {shape: sphere, isTrigger: true}
`

func TestDecodeBundle(t *testing.T) {
	b, err := DecodeBundle("fish", strings.NewReader(bundleYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"GlowFish"}, b.Names())

	m, err := b.Model("GlowFish")
	require.NoError(t, err)
	assert.True(t, m.Active)
	assert.Equal(t, "capsule", scene.Get[components.Collider](m).Shape)

	geo := m.SearchChild("GlowFish_geo", scene.Equals)
	require.NotNil(t, geo)
	assert.Equal(t, 2.0, geo.Transform.LocalScale.X)
	assert.Equal(t, "glow_fish", scene.Get[components.Animator](geo).Controller)
	r := scene.Get[components.Renderer](geo)
	require.NotNil(t, r)
	require.Len(t, r.Materials, 1)
	assert.Equal(t, 1.0, r.Bounds.Extents.Z)

	mouth := m.SearchChild("Mouth", scene.Equals)
	require.NotNil(t, mouth)
	assert.False(t, mouth.Active)
	assert.True(t, scene.Get[components.Collider](mouth).IsTrigger)

	_, err = b.Model("Peeper")
	assert.ErrorIs(t, err, assets.ErrModelNotFound)
}

func TestDecodeBundle_Errors(t *testing.T) {
	_, err := DecodeBundle("x", strings.NewReader("models:\n  - collider: {shape: box}\n"))
	assert.ErrorContains(t, err, "has no name")

	_, err = DecodeBundle("x", strings.NewReader("models:\n  - name: A\n    mesh: cube\n"))
	assert.Error(t, err)
}

func TestReadBundle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, assets.AssetsDir), 0o755))
	require.NoError(t, os.WriteFile(assets.BundlePath(dir, "fish.yaml"), []byte(bundleYAML), 0o644))

	b, err := ReadBundle(dir, "fish.yaml")
	require.NoError(t, err)
	assert.Equal(t, "fish.yaml", b.Name)

	_, err = ReadBundle(dir, "missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
