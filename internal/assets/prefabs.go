package assets

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/scene"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrPrefabNotFound - хост не знает префаба для этого TechType.
var ErrPrefabNotFound = errors.New("prefab not found")

// Имена эффектов, которые существа берут у ванильного пипера.
const (
	GenericCreatureHitName = "GenericCreatureHit"
	ElectrocutedEffectName = "ElectrocutedEffect"
	CreatureRespawnerName  = "CreatureRespawner"
)

// Prefabs - кэш префабов хоста. Выдаёт клоны.
type Prefabs struct {
	mu      sync.RWMutex
	prefabs map[types.TechType]*scene.Node
}

func NewPrefabs() *Prefabs {
	return &Prefabs{prefabs: make(map[types.TechType]*scene.Node)}
}

// Vanilla возвращает кэш, заполненный ванильными существами,
// на которые ссылаются сборщик и клонирование.
func Vanilla() *Prefabs {
	p := NewPrefabs()
	hit := effect(GenericCreatureHitName)
	shock := effect(ElectrocutedEffectName)
	respawner := effect(CreatureRespawnerName)

	p.Put(types.TechTypePeeper, vanillaFish("Peeper", hit, shock, respawner, 10))
	p.Put(types.TechTypeBladderfish, vanillaFish("Bladderfish", hit, shock, respawner, 10))
	p.Put(types.TechTypeBoomerang, vanillaFish("Boomerang", hit, shock, respawner, 10))
	p.Put(types.TechTypeStalker, vanillaFish("Stalker", hit, shock, respawner, 300))
	p.Put(types.TechTypeReaperLeviathan, vanillaFish("ReaperLeviathan", hit, shock, respawner, 5000))
	return p
}

// Put регистрирует префаб.
func (p *Prefabs) Put(tt types.TechType, prefab *scene.Node) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prefabs[tt] = prefab
}

// Prefab возвращает клон префаба. Контекст проверяется до клонирования.
func (p *Prefabs) Prefab(ctx context.Context, tt types.TechType) (*scene.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.RLock()
	prefab, ok := p.prefabs[tt]
	p.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", tt, ErrPrefabNotFound)
	}
	logger.Log.WithFields(logrus.Fields{"tech_type": tt}).Debug("Prefab cloned")
	return prefab.Clone(), nil
}

func effect(name string) *scene.Node {
	n := scene.NewNode(name)
	n.SetActive(false)
	return n
}

// vanillaFish собирает минимальное существо хоста: модель с рендерером и
// аниматором, здоровье с эффектами и обработчик смерти с респавнером.
func vanillaFish(name string, hit, shock, respawner *scene.Node, health float64) *scene.Node {
	root := scene.NewNode(name)
	scene.Attach(root, &components.PrefabIdentifier{ClassID: name})

	model := root.NewChild("model")
	scene.Attach(model, &components.Animator{Controller: name})
	scene.Attach(model, &components.Renderer{
		Materials: []*components.Material{{Name: name, Shader: "MarmosetUBER"}},
		Bounds:    components.Bounds{Extents: types.Splat(0.5)},
	})
	scene.Attach(root, &components.Collider{Shape: "capsule"})
	scene.Attach(root, &components.Rigidbody{Mass: health / 10})

	data := components.NewLiveMixinData(health)
	data.DamageEffect = hit
	data.ElectricalDamageEffect = shock
	live := &components.LiveMixin{Data: data, Health: health}
	scene.Attach(root, live)

	creature := &components.Creature{
		Aggression: components.CreatureTrait{Falloff: 0.05},
		Hunger:     components.CreatureTrait{Falloff: -0.01},
		Scared:     components.CreatureTrait{Falloff: 0.1},
		LiveMixin:  live,
	}
	scene.Attach(root, creature)
	scene.Attach(root, &components.CreatureDeath{LiveMixin: live, RespawnerPrefab: respawner, Respawn: true, RespawnInterval: 300})
	scene.Attach(root, &components.EcoTarget{Type: enums.EcoTargetSmallFish})
	return root
}
