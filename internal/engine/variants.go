package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"creature-forge/internal/assembly"
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/domain"
	"creature-forge/internal/registry"
	"creature-forge/internal/scene"
	"creature-forge/pkg/api"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrCreatureNotRegistered = errors.New("creature not registered")
	ErrMissingEdible         = errors.New("edible data is required")
)

const (
	CookedFoodTab = "Survival/CookedFood"
	CuredFoodTab  = "Survival/CuredFood"

	// Fabricator - фабрикатор, в котором готовятся варианты.
	Fabricator = "Fabricator"
)

// Variant - съедобный вариант существа (жареная, вяленая рыба).
type Variant struct {
	Info        PrefabInfo
	Title       string
	Description string
	Model       *scene.Node
	Edible      *domain.EdibleData
	Recipe      registry.Recipe
	// VFX nil, параметры показа в фабрикаторе берутся из габаритов модели.
	VFX *domain.VFXFabricatingData
}

// RegisterCookedFish регистрирует «Cooked<ClassID>», который готовится из самого существа.
func (s *Service) RegisterCookedFish(creatureClassID, description string, edible *domain.EdibleData, vfx *domain.VFXFabricatingData) (PrefabInfo, error) {
	return s.registerDerived("Cooked", creatureClassID, description, edible, vfx, CookedFoodTab)
}

// RegisterCuredFish регистрирует «Cured<ClassID>»: существо плюс соль.
func (s *Service) RegisterCuredFish(creatureClassID, description string, edible *domain.EdibleData, vfx *domain.VFXFabricatingData) (PrefabInfo, error) {
	return s.registerDerived("Cured", creatureClassID, description, edible, vfx, CuredFoodTab, types.TechTypeSalt)
}

func (s *Service) registerDerived(prefix, creatureClassID, description string, edible *domain.EdibleData, vfx *domain.VFXFabricatingData, tab string, extra ...types.TechType) (PrefabInfo, error) {
	creature, ok := s.Creature(creatureClassID)
	if !ok {
		logger.For("engine").WithFields(logrus.Fields{"class_id": creatureClassID}).
			Errorf("Attempting to register a %s variant of a creature that has not been registered yet", strings.ToLower(prefix))
		return PrefabInfo{}, fmt.Errorf("%s: %w", creatureClassID, ErrCreatureNotRegistered)
	}
	if creature.Template.Model == nil {
		return PrefabInfo{}, fmt.Errorf("%s: %w", creatureClassID, ErrMissingModel)
	}

	info, err := s.PrefabInfo(prefix + creatureClassID)
	if err != nil {
		return PrefabInfo{}, err
	}

	ingredients := []registry.Ingredient{{TechType: creature.TechType(), Amount: 1}}
	for _, tt := range extra {
		ingredients = append(ingredients, registry.Ingredient{TechType: tt, Amount: 1})
	}

	err = s.RegisterCookedVariant(Variant{
		Info:        info,
		Title:       prefix + " " + creatureClassID,
		Description: description,
		Model:       creature.Template.Model,
		Edible:      edible,
		Recipe: registry.Recipe{
			Ingredients: ingredients,
			Fabricator:  Fabricator,
			Steps:       strings.Split(tab, "/"),
		},
		VFX: vfx,
	})
	if err != nil {
		return PrefabInfo{}, err
	}
	return info, nil
}

// RegisterCookedVariant - полный вариант: произвольный рецепт и модель.
func (s *Service) RegisterCookedVariant(v Variant) error {
	info := v.Info
	log := logger.For("engine").WithFields(logrus.Fields{"class_id": info.ClassID})

	switch {
	case info.TechType.IsNone():
		return ErrMissingTechType
	case info.ClassID == "":
		return ErrMissingClassID
	case v.Model == nil:
		return ErrMissingModel
	case v.Edible == nil:
		return ErrMissingEdible
	}

	model := v.Model
	edible := *v.Edible
	vfx := v.VFX
	build := func(ctx context.Context) (*scene.Node, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		prefab := model.Clone()
		prefab.Name = info.ClassID
		prefab.SetActive(false)
		assembly.AddBasicComponents(prefab, info.ClassID, info.TechType, enums.CellLevelNear)
		assembly.AddEatable(prefab, &edible)
		assembly.AddVFXFabricating(prefab, vfx)

		s.Hub.Broadcast(api.BuildEvent{
			Type:      api.EventBuilt,
			ClassID:   info.ClassID,
			TechType:  s.TechTypes.Name(info.TechType),
			Timestamp: time.Now().UnixMilli(),
		})
		return prefab, nil
	}
	s.regMu.Lock()
	defer s.regMu.Unlock()
	if err := s.claim(info, build); err != nil {
		log.WithError(err).Error("Variant rejected")
		return err
	}

	s.Tables.SetRecipe(info.TechType, v.Recipe)
	s.Tables.SetWorldEntityInfo(registry.WorldEntityInfo{
		ClassID:    info.ClassID,
		TechType:   info.TechType,
		CellLevel:  enums.CellLevelNear,
		LocalScale: types.Splat(1),
	})
	if v.Title != "" {
		s.Tables.SetLanguageLine(info.ClassID, v.Title)
	}
	if v.Description != "" {
		s.Tables.SetLanguageLine("Tooltip_"+info.ClassID, v.Description)
	}

	s.mu.Lock()
	s.variants[info.ClassID] = info
	s.mu.Unlock()

	log.Info("Variant registered")
	return nil
}

// Variant возвращает зарегистрированный вариант.
func (s *Service) Variant(classID string) (PrefabInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.variants[classID]
	return info, ok
}
