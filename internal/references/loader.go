package references

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/scene"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Set - общие ассеты, которые сборщик подставляет по умолчанию.
// Любое поле может быть nil, если у источника его не нашлось.
type Set struct {
	GenericCreatureHit *scene.Node
	ElectrocutedEffect *scene.Node
	RespawnerPrefab    *scene.Node
}

// PrefabSource отдаёт префабы хоста по TechType.
type PrefabSource interface {
	Prefab(ctx context.Context, tt types.TechType) (*scene.Node, error)
}

// Source - префаб, из которого вытаскиваются эффекты.
const Source = types.TechTypePeeper

const loadKey = "references"

// Loader загружает Set один раз на процесс.
// Одновременные вызовы до окончания загрузки ждут одну и ту же загрузку,
// после неё Load возвращает результат сразу.
type Loader struct {
	src   PrefabSource
	group singleflight.Group

	started atomic.Bool
	loads   atomic.Int32

	mu   sync.RWMutex
	done bool
	set  Set
}

func NewLoader(src PrefabSource) *Loader {
	return &Loader{src: src}
}

// Load возвращает общие ассеты, загружая их при первом обращении.
// Ошибка загрузки не запоминается: следующий вызов попробует снова.
func (l *Loader) Load(ctx context.Context) (Set, error) {
	if set, ok := l.cached(); ok {
		return set, nil
	}

	ch := l.group.DoChan(loadKey, func() (interface{}, error) {
		if set, ok := l.cached(); ok {
			return set, nil
		}
		l.started.Store(true)
		l.loads.Add(1)

		// Загрузка общая для всех ждущих, отмена одного вызывающего её не прерывает.
		set, err := l.load(context.WithoutCancel(ctx))
		if err != nil {
			return Set{}, err
		}

		l.mu.Lock()
		l.set, l.done = set, true
		l.mu.Unlock()
		return set, nil
	})

	select {
	case <-ctx.Done():
		return Set{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Set{}, fmt.Errorf("load references: %w", res.Err)
		}
		return res.Val.(Set), nil
	}
}

// Done - загрузка завершилась успешно.
func (l *Loader) Done() bool {
	_, ok := l.cached()
	return ok
}

// Started - загрузка хотя бы раз начиналась.
func (l *Loader) Started() bool { return l.started.Load() }

// Loads - сколько раз реально обращались к источнику.
func (l *Loader) Loads() int { return int(l.loads.Load()) }

func (l *Loader) cached() (Set, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set, l.done
}

func (l *Loader) load(ctx context.Context) (Set, error) {
	log := logger.For("references")

	prefab, err := l.src.Prefab(ctx, Source)
	if err != nil {
		return Set{}, err
	}

	var set Set
	if live := scene.Get[components.LiveMixin](prefab); live != nil && live.Data != nil {
		set.GenericCreatureHit = live.Data.DamageEffect
		set.ElectrocutedEffect = live.Data.ElectricalDamageEffect
	} else {
		log.WithFields(logrus.Fields{"source": Source}).Error("Reference prefab has no LiveMixin, damage effects unavailable")
	}
	if death := scene.Get[components.CreatureDeath](prefab); death != nil {
		set.RespawnerPrefab = death.RespawnerPrefab
	} else {
		log.WithFields(logrus.Fields{"source": Source}).Error("Reference prefab has no CreatureDeath, respawner unavailable")
	}

	log.WithFields(logrus.Fields{
		"hit":       set.GenericCreatureHit != nil,
		"electric":  set.ElectrocutedEffect != nil,
		"respawner": set.RespawnerPrefab != nil,
	}).Info("References loaded")
	return set, nil
}
