package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"creature-forge/internal/assets"
	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/domain"
	"creature-forge/internal/engine"
	"creature-forge/internal/scene"
	"creature-forge/pkg/api"
	"creature-forge/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Configure("panic", "text", io.Discard)
	os.Exit(m.Run())
}

func newService(t *testing.T) *engine.Service {
	t.Helper()
	s := engine.NewService(engine.NewMemoryRegistrar(assets.Vanilla()))

	def := engine.Funcs{Template: func() *domain.CreatureTemplate {
		root := scene.NewNode("GlowFish")
		scene.Attach(root, &components.Collider{Shape: "capsule"})
		model := root.NewChild("model")
		scene.Attach(model, &components.Animator{Controller: "glow"})
		scene.Attach(model, &components.Renderer{
			Materials: []*components.Material{{Name: "glow"}},
			Bounds:    components.Bounds{Extents: types.Splat(0.5)},
		})
		return domain.NewCreatureTemplate(root, enums.BehaviourSmallFish, enums.EcoTargetSmallFish, 50)
	}}

	info, err := s.PrefabInfo("GlowFish")
	require.NoError(t, err)
	_, err = s.Register(def, info)
	require.NoError(t, err)
	return s
}

func spawnCmd(t *testing.T, classID string) api.ClientCommand {
	t.Helper()
	raw, err := json.Marshal(api.SpawnPayload{ClassID: classID})
	require.NoError(t, err)
	return api.ClientCommand{Action: api.ActionSpawn, Payload: raw}
}

func TestDispatch(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	list := Dispatch(ctx, s, api.ClientCommand{Action: api.ActionList})
	assert.Equal(t, api.EventCatalog, list.Type)
	require.Len(t, list.Creatures, 1)
	assert.False(t, list.Creatures[0].Built)

	spawned := Dispatch(ctx, s, spawnCmd(t, "GlowFish"))
	assert.Equal(t, api.EventBuilt, spawned.Type)
	assert.NotEmpty(t, spawned.InstanceID)
	require.NotNil(t, spawned.Report)
	assert.Zero(t, spawned.Report.ErrorCount)

	assert.True(t, Dispatch(ctx, s, api.ClientCommand{Action: api.ActionList}).Creatures[0].Built)

	unknown := Dispatch(ctx, s, spawnCmd(t, "Nobody"))
	assert.Equal(t, api.EventError, unknown.Type)
	assert.Equal(t, "Nobody", unknown.ClassID)

	bad := Dispatch(ctx, s, api.ClientCommand{Action: "DANCE"})
	assert.Equal(t, api.EventError, bad.Type)
	assert.Contains(t, bad.Message, "DANCE")
}

func TestDebugRoutes(t *testing.T) {
	s := newService(t)
	srv := httptest.NewServer(New(s, "0").Handler())
	defer srv.Close()

	get := func(path string) (*http.Response, string) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, string(body)
	}

	resp, body := get("/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)

	resp, body = get("/debug/creatures")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"classId":"GlowFish"`)

	resp, _ = get("/debug/components?class=GlowFish")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, err := s.Spawn(context.Background(), "GlowFish")
	require.NoError(t, err)

	resp, body = get("/debug/components?class=GlowFish")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"attached"`)

	resp, _ = get("/debug/components")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = get("/debug/tables")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"worldEntities"`)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestWebSocketSession(t *testing.T) {
	s := newService(t)
	srv := httptest.NewServer(New(s, "0").Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() api.BuildEvent {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		var ev api.BuildEvent
		require.NoError(t, conn.ReadJSON(&ev))
		return ev
	}

	require.NoError(t, conn.WriteJSON(api.ClientCommand{Token: "tester"}))

	catalog := read()
	assert.Equal(t, api.EventCatalog, catalog.Type)
	assert.True(t, s.Hub.HasSubscriber("tester"))

	require.NoError(t, conn.WriteJSON(spawnCmd(t, "GlowFish")))

	// Сначала приходит широковещательный BUILT от сборки, затем ответ с экземпляром.
	var reply api.BuildEvent
	for i := 0; i < 3 && reply.InstanceID == ""; i++ {
		reply = read()
		assert.Equal(t, api.EventBuilt, reply.Type)
	}
	assert.NotEmpty(t, reply.InstanceID)
	assert.Equal(t, "GlowFish", reply.ClassID)
}
