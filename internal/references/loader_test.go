package references

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"creature-forge/internal/assets"
	"creature-forge/internal/core/types"
	"creature-forge/internal/scene"
	"creature-forge/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Configure("error", "text", io.Discard)
	os.Exit(m.Run())
}

// gatedSource блокирует выдачу префаба, пока не закрыт gate.
type gatedSource struct {
	gate  chan struct{}
	calls atomic.Int32
	inner PrefabSource
}

func (s *gatedSource) Prefab(ctx context.Context, tt types.TechType) (*scene.Node, error) {
	s.calls.Add(1)
	<-s.gate
	return s.inner.Prefab(ctx, tt)
}

type failingSource struct{ calls int }

func (s *failingSource) Prefab(context.Context, types.TechType) (*scene.Node, error) {
	s.calls++
	return nil, assets.ErrPrefabNotFound
}

func TestLoader_ExtractsEffects(t *testing.T) {
	l := NewLoader(assets.Vanilla())
	assert.False(t, l.Started())
	assert.False(t, l.Done())

	set, err := l.Load(context.Background())
	require.NoError(t, err)

	require.NotNil(t, set.GenericCreatureHit)
	require.NotNil(t, set.ElectrocutedEffect)
	require.NotNil(t, set.RespawnerPrefab)
	assert.Equal(t, assets.GenericCreatureHitName, set.GenericCreatureHit.Name)
	assert.Equal(t, assets.ElectrocutedEffectName, set.ElectrocutedEffect.Name)
	assert.Equal(t, assets.CreatureRespawnerName, set.RespawnerPrefab.Name)

	assert.True(t, l.Started())
	assert.True(t, l.Done())
}

func TestLoader_CoalescesConcurrentLoads(t *testing.T) {
	src := &gatedSource{gate: make(chan struct{}), inner: assets.Vanilla()}
	l := NewLoader(src)

	const callers = 16
	var wg sync.WaitGroup
	results := make([]Set, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = l.Load(context.Background())
		}(i)
	}
	close(src.gate)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, 1, l.Loads())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0].GenericCreatureHit, results[i].GenericCreatureHit)
	}

	// После загрузки источник больше не трогается.
	_, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestLoader_FailureIsRetried(t *testing.T) {
	src := &failingSource{}
	l := NewLoader(src)

	_, err := l.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, assets.ErrPrefabNotFound))
	assert.False(t, l.Done())
	assert.True(t, l.Started())

	_, err = l.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestLoader_CallerCancel(t *testing.T) {
	src := &gatedSource{gate: make(chan struct{}), inner: assets.Vanilla()}
	l := NewLoader(src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	close(src.gate)
	set, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, set.RespawnerPrefab)
}

func TestLoader_MissingComponents(t *testing.T) {
	prefabs := assets.NewPrefabs()
	prefabs.Put(Source, scene.NewNode("EmptyPeeper"))
	l := NewLoader(prefabs)

	set, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, set.GenericCreatureHit)
	assert.Nil(t, set.RespawnerPrefab)
	assert.True(t, l.Done())
}
