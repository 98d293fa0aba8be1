package registry

import (
	"fmt"
	"sync"

	"creature-forge/internal/core/types"
)

// TechTypes раздаёт новые TechType для модовых сущностей.
// Ванильные имена разрешаются в свои фиксированные значения.
type TechTypes struct {
	mu     sync.Mutex
	next   uint32
	byName map[string]types.TechType
	names  map[types.TechType]string
}

func NewTechTypes() *TechTypes {
	return &TechTypes{
		next:   1,
		byName: make(map[string]types.TechType),
		names:  make(map[types.TechType]string),
	}
}

// Ensure возвращает TechType для имени, выделяя новый при первом обращении.
func (a *TechTypes) Ensure(name string) (types.TechType, error) {
	if name == "" {
		return types.TechTypeNone, fmt.Errorf("tech type name is empty")
	}
	if tt, ok := types.VanillaTechType(name); ok {
		return tt, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if tt, ok := a.byName[name]; ok {
		return tt, nil
	}
	tt := types.PackTechType(types.OriginMod, a.next)
	a.next++
	a.byName[name] = tt
	a.names[tt] = name
	return tt, nil
}

// Lookup ищет уже выделенный или ванильный тип по имени.
func (a *TechTypes) Lookup(name string) (types.TechType, bool) {
	if tt, ok := types.VanillaTechType(name); ok {
		return tt, true
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	tt, ok := a.byName[name]
	return tt, ok
}

// Name - обратный поиск. Для ванильных типов возвращает их имя.
func (a *TechTypes) Name(tt types.TechType) string {
	a.mu.Lock()
	name, ok := a.names[tt]
	a.mu.Unlock()
	if ok {
		return name
	}
	return tt.String()
}
