package agent

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"creature-forge/internal/assets"
	"creature-forge/internal/components"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/domain"
	"creature-forge/internal/engine"
	"creature-forge/internal/scene"
	"creature-forge/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Configure("panic", "text", io.Discard)
	os.Exit(m.Run())
}

func fish(name string) engine.Funcs {
	return engine.Funcs{Template: func() *domain.CreatureTemplate {
		root := scene.NewNode(name)
		scene.Attach(root, &components.Collider{Shape: "capsule"})
		model := root.NewChild("model")
		scene.Attach(model, &components.Animator{Controller: name})
		scene.Attach(model, &components.Renderer{Materials: []*components.Material{{Name: name}}})
		return domain.NewCreatureTemplate(root, enums.BehaviourSmallFish, enums.EcoTargetSmallFish, 20)
	}}
}

func register(t *testing.T, s *engine.Service, name string) {
	t.Helper()
	info, err := s.PrefabInfo(name)
	require.NoError(t, err)
	_, err = s.Register(fish(name), info)
	require.NoError(t, err)
}

func TestPrewarmer(t *testing.T) {
	reg := engine.NewMemoryRegistrar(assets.Vanilla())
	s := engine.NewService(reg)
	register(t, s, "Early")

	ctx, cancel := context.WithCancel(context.Background())
	p := NewPrewarmer(s)
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return reg.Built("Early") }, 2*time.Second, 10*time.Millisecond)

	register(t, s, "Late")
	assert.Eventually(t, func() bool { return reg.Built("Late") }, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done
	assert.False(t, s.Hub.HasSubscriber(PrewarmerID))
}
