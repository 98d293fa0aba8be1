package engine

import (
	"context"
	"errors"
	"io"
	"os"
	"sync/atomic"
	"testing"

	"creature-forge/internal/assembly"
	"creature-forge/internal/assets"
	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/domain"
	"creature-forge/internal/materials"
	"creature-forge/internal/scene"
	"creature-forge/pkg/api"
	"creature-forge/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Configure("panic", "text", io.Discard)
	os.Exit(m.Run())
}

func newModel(name string) *scene.Node {
	root := scene.NewNode(name)
	scene.Attach(root, &components.Collider{Shape: "capsule"})
	model := root.NewChild("model")
	scene.Attach(model, &components.Animator{Controller: name})
	scene.Attach(model, &components.Renderer{
		Materials: []*components.Material{{Name: name + "_mat"}},
		Bounds:    components.Bounds{Extents: types.Splat(0.5)},
	})
	return root
}

func fishDef(name string) Funcs {
	return Funcs{Template: func() *domain.CreatureTemplate {
		return domain.NewCreatureTemplate(newModel(name), enums.BehaviourSmallFish, enums.EcoTargetSmallFish, 160)
	}}
}

func newService() (*Service, *MemoryRegistrar) {
	reg := NewMemoryRegistrar(assets.Vanilla())
	return NewService(reg), reg
}

func register(t *testing.T, s *Service, classID string, def Definition) *CreatureAsset {
	t.Helper()
	info, err := s.PrefabInfo(classID)
	require.NoError(t, err)
	asset, err := s.Register(def, info)
	require.NoError(t, err)
	return asset
}

type sinkFunc func(assembly.Report) (string, error)

func (f sinkFunc) Save(r assembly.Report) (string, error) { return f(r) }

func TestRegister_BuildsOnSpawn(t *testing.T) {
	s, reg := newService()
	events := s.Hub.Register("watcher")

	var saved atomic.Int32
	s.Reports = sinkFunc(func(assembly.Report) (string, error) {
		saved.Add(1)
		return "", nil
	})

	register(t, s, "GlowFish", fishDef("GlowFish"))
	assert.False(t, reg.Built("GlowFish"), "сборка откладывается до первого запроса")

	inst, err := reg.Spawn(context.Background(), "GlowFish")
	require.NoError(t, err)

	assert.True(t, inst.Active)
	assert.Equal(t, "GlowFish", inst.Name)
	pi := scene.Get[components.PrefabIdentifier](inst)
	require.NotNil(t, pi)
	assert.Equal(t, "GlowFish", pi.ClassID)
	assert.NotNil(t, scene.Get[components.Creature](inst))

	live := scene.Get[components.LiveMixin](inst)
	require.NotNil(t, live)
	require.NotNil(t, live.Data)
	assert.Equal(t, assets.GenericCreatureHitName, live.Data.DamageEffect.Name)

	r := scene.FirstInChildren[components.Renderer](inst)
	require.NotNil(t, r)
	assert.Equal(t, materials.Shader, r.Materials[0].Shader)

	report, ok := s.Report("GlowFish")
	require.True(t, ok)
	assert.False(t, report.Cloning)
	assert.Contains(t, report.Attached, assembly.CapLocomotion)
	assert.Equal(t, int32(1), saved.Load())

	require.Len(t, events, 2)
	assert.Equal(t, api.EventRegistered, (<-events).Type)
	built := <-events
	assert.Equal(t, api.EventBuilt, built.Type)
	assert.Equal(t, "GlowFish", built.TechType)
	require.NotNil(t, built.Report)
	assert.Contains(t, built.Report.Attached, string(assembly.CapLocomotion))
}

func TestRegister_RejectsDuplicateIdentity(t *testing.T) {
	s, _ := newService()
	register(t, s, "Foo", fishDef("Foo"))

	info, err := s.PrefabInfo("Foo")
	require.NoError(t, err)
	_, err = s.Register(fishDef("Foo"), info)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
	assert.False(t, s.Identities.TryClaim("Foo"))
}

func TestRegister_RejectsDuplicateTechType(t *testing.T) {
	s, reg := newService()
	tt := types.PackTechType(types.OriginMod, 500)

	_, err := s.Register(fishDef("Foo"), PrefabInfo{ClassID: "Foo", TechType: tt})
	require.NoError(t, err)
	_, err = s.Register(fishDef("Bar"), PrefabInfo{ClassID: "Bar", TechType: tt})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	assert.Equal(t, []string{"Foo"}, s.Identities.List())
	_, ok := s.Tables.WorldEntity("Bar")
	assert.False(t, ok)
	assert.Len(t, reg.Infos(), 1)

	inst, err := reg.Clone(context.Background(), tt)
	require.NoError(t, err)
	assert.Equal(t, "Foo", scene.Get[components.PrefabIdentifier](inst).ClassID)
}

type refusingRegistrar struct{ *MemoryRegistrar }

func (refusingRegistrar) Register(PrefabInfo, BuildFunc) error {
	return errors.New("host is closed")
}

func TestRegister_HostRefusalLeavesNothingBehind(t *testing.T) {
	s := NewService(refusingRegistrar{NewMemoryRegistrar(assets.Vanilla())})
	info, err := s.PrefabInfo("Foo")
	require.NoError(t, err)

	_, err = s.Register(fishDef("Foo"), info)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateIdentity)

	assert.Empty(t, s.Identities.List())
	_, ok := s.Tables.WorldEntity("Foo")
	assert.False(t, ok)
	_, ok = s.Tables.Behaviour(info.TechType)
	assert.False(t, ok)
	_, ok = s.Creature("Foo")
	assert.False(t, ok)
}

func TestRegister_ContractViolations(t *testing.T) {
	noModel := Funcs{Template: func() *domain.CreatureTemplate {
		return domain.NewCreatureTemplate(nil, enums.BehaviourSmallFish, enums.EcoTargetSmallFish, 10)
	}}
	tt := types.PackTechType(types.OriginMod, 42)

	tests := []struct {
		name string
		def  Definition
		info PrefabInfo
		want error
	}{
		{"no tech type", fishDef("A"), PrefabInfo{ClassID: "A"}, ErrMissingTechType},
		{"no class id", fishDef("A"), PrefabInfo{TechType: tt}, ErrMissingClassID},
		{"no model", noModel, PrefabInfo{ClassID: "A", TechType: tt}, ErrMissingModel},
		{"no template", Funcs{}, PrefabInfo{ClassID: "A", TechType: tt}, ErrMissingModel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, reg := newService()
			_, err := s.Register(tc.def, tc.info)
			assert.ErrorIs(t, err, tc.want)

			// Ничего не записано.
			assert.Empty(t, s.Identities.List())
			_, ok := s.Tables.WorldEntity("A")
			assert.False(t, ok)
			assert.Empty(t, reg.Infos())
		})
	}
}

func TestRegister_SelfClone(t *testing.T) {
	s, _ := newService()
	info, err := s.PrefabInfo("Loop")
	require.NoError(t, err)

	def := Funcs{Template: func() *domain.CreatureTemplate {
		tmpl := domain.NewCreatureTemplate(nil, enums.BehaviourShark, enums.EcoTargetShark, 10)
		tmpl.TechTypeToClone = info.TechType
		return tmpl
	}}
	_, err = s.Register(def, info)
	assert.ErrorIs(t, err, ErrSelfClone)
}

func TestRegister_PatchTimeData(t *testing.T) {
	s, _ := newService()
	def := Funcs{
		Template: func() *domain.CreatureTemplate {
			tmpl := domain.NewCreatureTemplate(newModel("GlowFish"), enums.BehaviourSmallFish, enums.EcoTargetSmallFish, 20)
			tmpl.AcidImmune = true
			return tmpl
		},
		Entry: domain.EncyclopediaData{Path: "Lifeforms/Fauna/SmallHerbivores", Title: "Glow fish", Scan: domain.NewScannerEntryData(3)},
	}
	asset := register(t, s, "GlowFish", def)

	assert.True(t, s.Tables.IsAcidImmune(asset.TechType()))
	we, ok := s.Tables.WorldEntity("GlowFish")
	require.True(t, ok)
	assert.Equal(t, enums.SlotCreature, we.SlotType)

	_, ok = s.Tables.Encyclopedia("GlowFish")
	assert.True(t, ok)
	scan, ok := s.Tables.Scanner(asset.TechType())
	require.True(t, ok)
	assert.Equal(t, 3.0, scan.ScanTime)
}

func TestBuild_ModifyPrefabSeesComponents(t *testing.T) {
	s, reg := newService()

	var calls atomic.Int32
	def := fishDef("BoneShark")
	def.Modify = func(_ context.Context, prefab *scene.Node, c *assembly.Components) error {
		calls.Add(1)
		require.NotNil(t, c.Creature)
		assert.False(t, prefab.Active, "хук видит ещё неактивный префаб")
		c.Creature.Base().EyeFOV = -0.9
		return nil
	}
	register(t, s, "BoneShark", def)

	for i := 0; i < 3; i++ {
		inst, err := reg.Spawn(context.Background(), "BoneShark")
		require.NoError(t, err)
		assert.Equal(t, -0.9, scene.Get[components.Creature](inst).EyeFOV)
	}
	assert.Equal(t, int32(1), calls.Load(), "префаб собирается один раз")
}

func TestBuild_ModifyPrefabError(t *testing.T) {
	s, reg := newService()
	events := s.Hub.Register("watcher")

	boom := errors.New("boom")
	def := fishDef("Broken")
	def.Modify = func(context.Context, *scene.Node, *assembly.Components) error { return boom }
	register(t, s, "Broken", def)

	_, err := reg.Spawn(context.Background(), "Broken")
	assert.ErrorIs(t, err, boom)
	assert.False(t, reg.Built("Broken"))

	<-events // REGISTERED
	failed := <-events
	assert.Equal(t, api.EventFailed, failed.Type)
	assert.Contains(t, failed.Message, "boom")
}

func TestBuild_CustomMaterials(t *testing.T) {
	s, reg := newService()

	var applied atomic.Bool
	def := fishDef("Ghost")
	def.Materials = func(root *scene.Node) { applied.Store(true) }
	register(t, s, "Ghost", def)

	inst, err := reg.Spawn(context.Background(), "Ghost")
	require.NoError(t, err)
	assert.True(t, applied.Load())
	r := scene.FirstInChildren[components.Renderer](inst)
	assert.Empty(t, r.Materials[0].Shader, "стандартный проход не запускался")
}

func TestBuild_ClonePathReusesController(t *testing.T) {
	s, reg := newService()
	def := Funcs{Template: func() *domain.CreatureTemplate {
		tmpl := domain.NewCreatureTemplate(nil, enums.BehaviourShark, enums.EcoTargetShark, 500)
		tmpl.TechTypeToClone = types.TechTypeStalker
		return tmpl
	}}
	register(t, s, "AlbinoStalker", def)

	inst, err := reg.Spawn(context.Background(), "AlbinoStalker")
	require.NoError(t, err)

	report, ok := s.Report("AlbinoStalker")
	require.True(t, ok)
	assert.True(t, report.Cloning)
	e, ok := report.Find("creature")
	require.True(t, ok)
	assert.Equal(t, assembly.Applied, e.Outcome)

	assert.Len(t, scene.All[components.Creature](inst), 1, "контроллер не дублируется")
	assert.Equal(t, "AlbinoStalker", scene.Get[components.PrefabIdentifier](inst).ClassID)
}

func TestBuild_ClonePathKeepsSourceController(t *testing.T) {
	s, reg := newService()
	src := Funcs{Template: func() *domain.CreatureTemplate {
		tmpl := domain.NewCreatureTemplate(newModel("Src"), enums.BehaviourSmallFish, enums.EcoTargetSmallFish, 160)
		tmpl.TraitsData.AggressionDecreaseRate = 0.7
		tmpl.EyeFOV = 0.4
		return tmpl
	}}
	srcAsset := register(t, s, "Src", src)

	cp := Funcs{Template: func() *domain.CreatureTemplate {
		tmpl := domain.NewCreatureTemplate(nil, enums.BehaviourSmallFish, enums.EcoTargetSmallFish, 160)
		tmpl.TechTypeToClone = srcAsset.TechType()
		tmpl.StayAtLeashData = domain.NewStayAtLeashData(0.4, 15, 3)
		return tmpl
	}}
	register(t, s, "Copy", cp)

	inst, err := reg.Spawn(context.Background(), "Copy")
	require.NoError(t, err)

	ctrl, ok := scene.Implementing[components.Controller](inst)
	require.True(t, ok)
	assert.Equal(t, 0.7, ctrl.Base().Aggression.Falloff)
	assert.Equal(t, 0.4, ctrl.Base().EyeFOV)
	assert.Same(t, scene.Get[components.LiveMixin](inst), ctrl.Base().LiveMixin)

	assert.Len(t, scene.All[components.SwimRandom](inst), 1)
	assert.Len(t, scene.All[components.AnimateByVelocity](inst), 0)
	assert.Len(t, scene.All[components.Locomotion](inst), 1)
	assert.Len(t, scene.All[components.StayAtLeashPosition](inst), 1)
}

func TestSpawn_InstanceReferencesOwnComponents(t *testing.T) {
	s, reg := newService()
	register(t, s, "Foo", fishDef("Foo"))

	first, err := reg.Spawn(context.Background(), "Foo")
	require.NoError(t, err)
	second, err := reg.Spawn(context.Background(), "Foo")
	require.NoError(t, err)

	for _, inst := range []*scene.Node{first, second} {
		loc := scene.Get[components.Locomotion](inst)
		require.NotNil(t, loc)
		assert.Same(t, scene.Get[components.Rigidbody](inst), loc.UseRigidbody)

		sky := scene.Get[components.SkyApplier](inst)
		require.NotNil(t, sky)
		require.NotEmpty(t, sky.Renderers)
		assert.Same(t, scene.FirstInChildren[components.Renderer](inst), sky.Renderers[0])

		ctrl, ok := scene.Implementing[components.Controller](inst)
		require.True(t, ok)
		assert.Same(t, scene.Get[components.LiveMixin](inst), ctrl.Base().LiveMixin)
	}

	scene.Get[components.LiveMixin](first).Data.MaxHealth = 1
	assert.Equal(t, 160.0, scene.Get[components.LiveMixin](second).Data.MaxHealth)
}

func TestBuild_CloneSourceMissing(t *testing.T) {
	s, reg := newService()
	def := Funcs{Template: func() *domain.CreatureTemplate {
		tmpl := domain.NewCreatureTemplate(nil, enums.BehaviourShark, enums.EcoTargetShark, 500)
		tmpl.TechTypeToClone = types.PackTechType(types.OriginMod, 999)
		return tmpl
	}}
	register(t, s, "Nobody", def)

	_, err := reg.Spawn(context.Background(), "Nobody")
	assert.ErrorIs(t, err, assets.ErrPrefabNotFound)
}

func TestPostRegister(t *testing.T) {
	s, _ := newService()

	var got *CreatureAsset
	def := fishDef("GlowFish")
	def.Post = func(svc *Service, asset *CreatureAsset) error {
		got = asset
		_, err := svc.RegisterCookedFish(asset.ClassID(), "Жареная.", domain.NewEdibleData(20, 5, true), nil)
		return err
	}
	asset := register(t, s, "GlowFish", def)

	assert.Same(t, asset, got)
	_, ok := s.Variant("CookedGlowFish")
	assert.True(t, ok)
}

func TestCatalog(t *testing.T) {
	s, reg := newService()
	register(t, s, "GlowFish", fishDef("GlowFish"))
	register(t, s, "BoneShark", fishDef("BoneShark"))
	_, err := s.RegisterCuredFish("GlowFish", "", domain.NewEdibleData(10, -2, false), nil)
	require.NoError(t, err)

	_, err = reg.Spawn(context.Background(), "GlowFish")
	require.NoError(t, err)

	cat := s.Catalog()
	require.Len(t, cat, 3)
	assert.Equal(t, api.CreatureView{ClassID: "BoneShark", TechType: "BoneShark"}, cat[0])
	assert.Equal(t, api.CreatureView{ClassID: "CuredGlowFish", TechType: "CuredGlowFish", Variant: true}, cat[1])
	assert.Equal(t, api.CreatureView{ClassID: "GlowFish", TechType: "GlowFish", Built: true}, cat[2])
}

func TestSpawn_Unknown(t *testing.T) {
	s, _ := newService()
	_, err := s.Spawn(context.Background(), "Ghost")
	assert.ErrorIs(t, err, ErrUnknownPrefab)
}
