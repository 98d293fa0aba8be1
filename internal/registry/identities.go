package registry

import (
	"sort"
	"sync"

	"creature-forge/internal/core/types"
)

// Identities - множество занятых ключей идентичности (ClassID) и TechType.
// Только растёт. Живёт столько же, сколько процесс, передаётся в сервис явно.
type Identities struct {
	mu      sync.Mutex
	claimed map[string]struct{}
	byType  map[types.TechType]string
}

func NewIdentities() *Identities {
	return &Identities{
		claimed: make(map[string]struct{}),
		byType:  make(map[types.TechType]string),
	}
}

// TryClaim занимает ключ. true только у первого вызова для данного ключа.
func (r *Identities) TryClaim(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.claimed[key]; ok {
		return false
	}
	r.claimed[key] = struct{}{}
	return true
}

// TryClaimIdentity занимает ключ вместе с TechType. Если занят хотя бы один
// из них, ничего не меняется и возвращается false.
func (r *Identities) TryClaimIdentity(key string, tt types.TechType) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.claimed[key]; ok {
		return false
	}
	if _, ok := r.byType[tt]; ok {
		return false
	}
	r.claimed[key] = struct{}{}
	r.byType[tt] = key
	return true
}

// Owner возвращает ключ, вместе с которым был занят tt.
func (r *Identities) Owner(tt types.TechType) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key, ok := r.byType[tt]
	return key, ok
}

// Claimed проверяет, занят ли ключ, не занимая его.
func (r *Identities) Claimed(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.claimed[key]
	return ok
}

// List возвращает занятые ключи по алфавиту.
func (r *Identities) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.claimed))
	for k := range r.claimed {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
