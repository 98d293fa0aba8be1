package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"creature-forge/internal/scene"
)

// AssetsDir - папка бандлов внутри каталога мода.
const AssetsDir = "Assets"

// ErrModelNotFound - в бандле нет модели с таким именем.
var ErrModelNotFound = errors.New("model not found in bundle")

// BundlePath возвращает путь к файлу бандла: <modDir>/Assets/<file>.
func BundlePath(modDir, file string) string {
	return filepath.Join(modDir, AssetsDir, file)
}

// Bundle - загруженный набор моделей по имени.
// Модели выдаются клонами, исходники не меняются.
type Bundle struct {
	Name string

	mu     sync.RWMutex
	models map[string]*scene.Node
}

func NewBundle(name string) *Bundle {
	return &Bundle{Name: name, models: make(map[string]*scene.Node)}
}

// Put добавляет модель в бандл под её именем.
func (b *Bundle) Put(model *scene.Node) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.models[model.Name] = model
}

// Model возвращает клон модели.
func (b *Bundle) Model(name string) (*scene.Node, error) {
	b.mu.RLock()
	m, ok := b.models[name]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", b.Name, name, ErrModelNotFound)
	}
	return m.Clone(), nil
}

// Names - имена моделей по алфавиту.
func (b *Bundle) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.models))
	for name := range b.models {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
