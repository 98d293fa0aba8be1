package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"creature-forge/internal/assets"
	"creature-forge/internal/core/types"
	"creature-forge/internal/scene"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	ErrAlreadyRegistered = errors.New("prefab already registered")
	ErrUnknownPrefab     = errors.New("unknown prefab")
)

// BuildFunc - отложенная сборка готового префаба. Хост вызывает её сам,
// когда префаб впервые понадобится.
type BuildFunc func(ctx context.Context) (*scene.Node, error)

// PrefabRegistrar - реестр префабов хоста.
type PrefabRegistrar interface {
	Register(info PrefabInfo, build BuildFunc) error
	// Clone возвращает свежий экземпляр префаба по TechType.
	Clone(ctx context.Context, tt types.TechType) (*scene.Node, error)
}

type memoryEntry struct {
	info   PrefabInfo
	build  BuildFunc
	prefab *scene.Node
}

// MemoryRegistrar хранит префабы в памяти процесса.
// Сборка выполняется один раз при первом Spawn/Clone, дальше выдаются клоны.
// Незарегистрированные типы берутся из host.
type MemoryRegistrar struct {
	host *assets.Prefabs

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	byType  map[types.TechType]string
}

func NewMemoryRegistrar(host *assets.Prefabs) *MemoryRegistrar {
	if host == nil {
		host = assets.NewPrefabs()
	}
	return &MemoryRegistrar{
		host:    host,
		entries: make(map[string]*memoryEntry),
		byType:  make(map[types.TechType]string),
	}
}

func (r *MemoryRegistrar) Register(info PrefabInfo, build BuildFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[info.ClassID]; ok {
		return fmt.Errorf("%s: %w", info.ClassID, ErrAlreadyRegistered)
	}
	r.entries[info.ClassID] = &memoryEntry{info: info, build: build}
	r.byType[info.TechType] = info.ClassID
	return nil
}

// Spawn собирает префаб при необходимости и возвращает активный экземпляр.
func (r *MemoryRegistrar) Spawn(ctx context.Context, classID string) (*scene.Node, error) {
	prefab, err := r.prefab(ctx, classID)
	if err != nil {
		return nil, err
	}
	inst := prefab.Clone()
	inst.SetActive(true)
	return inst, nil
}

func (r *MemoryRegistrar) Clone(ctx context.Context, tt types.TechType) (*scene.Node, error) {
	r.mu.RLock()
	classID, ok := r.byType[tt]
	r.mu.RUnlock()
	if !ok {
		return r.host.Prefab(ctx, tt)
	}
	prefab, err := r.prefab(ctx, classID)
	if err != nil {
		return nil, err
	}
	return prefab.Clone(), nil
}

// Built сообщает, собран ли уже префаб.
func (r *MemoryRegistrar) Built(classID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[classID]
	return ok && e.prefab != nil
}

// Infos - все зарегистрированные префабы, отсортированные по ClassID.
func (r *MemoryRegistrar) Infos() []PrefabInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]PrefabInfo, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClassID < out[j].ClassID })
	return out
}

func (r *MemoryRegistrar) prefab(ctx context.Context, classID string) (*scene.Node, error) {
	r.mu.RLock()
	e, ok := r.entries[classID]
	var prefab *scene.Node
	if ok {
		prefab = e.prefab
	}
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", classID, ErrUnknownPrefab)
	}
	if prefab != nil {
		return prefab, nil
	}

	v, err, shared := r.group.Do(classID, func() (any, error) {
		r.mu.RLock()
		done := e.prefab
		r.mu.RUnlock()
		if done != nil {
			return done, nil
		}

		// Сборка общая, отмена одного вызывающего её не прерывает.
		built, err := e.build(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if built == nil {
			return nil, fmt.Errorf("build %s returned no prefab", classID)
		}
		r.mu.Lock()
		e.prefab = built
		r.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", classID, err)
	}
	logger.Log.WithFields(logrus.Fields{"class_id": classID, "shared": shared}).Debug("Prefab ready")
	return v.(*scene.Node), nil
}
