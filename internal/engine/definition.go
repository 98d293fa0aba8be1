package engine

import (
	"context"

	"creature-forge/internal/assembly"
	"creature-forge/internal/core/types"
	"creature-forge/internal/domain"
	"creature-forge/internal/materials"
	"creature-forge/internal/scene"
)

// PrefabInfo - ключ регистрации префаба у хоста.
type PrefabInfo struct {
	ClassID  string         `json:"classId" yaml:"classId"`
	TechType types.TechType `json:"techType" yaml:"techType"`
}

// Definition описывает одно существо: как построить шаблон и как
// донастроить префаб после сборки.
type Definition interface {
	CreateTemplate() *domain.CreatureTemplate
	ModifyPrefab(ctx context.Context, prefab *scene.Node, c *assembly.Components) error
}

// MaterialApplier заменяет стандартный проход материалов целиком.
type MaterialApplier interface {
	ApplyMaterials(prefab *scene.Node)
}

// PostRegisterer вызывается сразу после успешной регистрации.
// Обычно здесь регистрируют варианты (жареная рыба и т.п.).
type PostRegisterer interface {
	PostRegister(s *Service, asset *CreatureAsset) error
}

// Encyclopedic добавляет существу запись КПК и сканера.
type Encyclopedic interface {
	Encyclopedia() domain.EncyclopediaData
}

// Funcs собирает Definition из функций. Нулевые поля дают поведение по умолчанию.
type Funcs struct {
	Template  func() *domain.CreatureTemplate
	Modify    func(ctx context.Context, prefab *scene.Node, c *assembly.Components) error
	Materials materials.Applier
	Post      func(s *Service, asset *CreatureAsset) error
	Entry     domain.EncyclopediaData
}

func (f Funcs) CreateTemplate() *domain.CreatureTemplate {
	if f.Template == nil {
		return nil
	}
	return f.Template()
}

func (f Funcs) ModifyPrefab(ctx context.Context, prefab *scene.Node, c *assembly.Components) error {
	if f.Modify == nil {
		return nil
	}
	return f.Modify(ctx, prefab, c)
}

func (f Funcs) ApplyMaterials(prefab *scene.Node) {
	if f.Materials == nil {
		materials.Apply(prefab)
		return
	}
	f.Materials(prefab)
}

func (f Funcs) PostRegister(s *Service, asset *CreatureAsset) error {
	if f.Post == nil {
		return nil
	}
	return f.Post(s, asset)
}

func (f Funcs) Encyclopedia() domain.EncyclopediaData { return f.Entry }

// CreatureAsset - зарегистрированное существо. Шаблон хранится только
// для чтения: из него берут модель и идентичность варианты.
type CreatureAsset struct {
	Info       PrefabInfo
	Template   *domain.CreatureTemplate
	Definition Definition
}

func (a *CreatureAsset) ClassID() string { return a.Info.ClassID }

func (a *CreatureAsset) TechType() types.TechType { return a.Info.TechType }

func applyMaterials(def Definition, prefab *scene.Node) {
	if m, ok := def.(MaterialApplier); ok {
		m.ApplyMaterials(prefab)
		return
	}
	materials.Apply(prefab)
}
