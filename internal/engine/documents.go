package engine

import (
	"context"
	"errors"
	"fmt"

	"creature-forge/internal/assembly"
	"creature-forge/internal/assets"
	"creature-forge/internal/domain"
	"creature-forge/internal/infrastructure/storage"
	"creature-forge/internal/scene"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
)

// documentDefinition - существо, описанное YAML-документом.
type documentDefinition struct {
	doc  storage.Document
	tmpl *domain.CreatureTemplate
}

func (d documentDefinition) CreateTemplate() *domain.CreatureTemplate { return d.tmpl }

func (d documentDefinition) ModifyPrefab(context.Context, *scene.Node, *assembly.Components) error {
	return nil
}

func (d documentDefinition) Encyclopedia() domain.EncyclopediaData {
	if d.doc.Encyclopedia == nil {
		return domain.EncyclopediaData{}
	}
	return *d.doc.Encyclopedia
}

func (d documentDefinition) PostRegister(s *Service, asset *CreatureAsset) error {
	var errs []error
	if v := d.doc.Cooked; v != nil {
		edible := v.Edible
		if _, err := s.RegisterCookedFish(asset.ClassID(), v.Description, &edible, v.VFX); err != nil {
			errs = append(errs, err)
		}
	}
	if v := d.doc.Cured; v != nil {
		edible := v.Edible
		if _, err := s.RegisterCuredFish(asset.ClassID(), v.Description, &edible, v.VFX); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RegisterDocuments регистрирует существ из документов. Модель ищется в бандле
// по имени model (по умолчанию classId). Ошибка одного документа не мешает
// остальным: все ошибки возвращаются вместе.
func (s *Service) RegisterDocuments(docs []storage.Document, bundle *assets.Bundle) ([]*CreatureAsset, error) {
	var (
		out  []*CreatureAsset
		errs []error
	)
	for _, doc := range docs {
		asset, err := s.registerDocument(doc, bundle)
		if err != nil {
			logger.For("engine").WithFields(logrus.Fields{
				"class_id": doc.ClassID,
				"file":     doc.Path,
			}).WithError(err).Error("Template skipped")
			errs = append(errs, fmt.Errorf("%s: %w", doc.ClassID, err))
		}
		if asset != nil {
			out = append(out, asset)
		}
	}
	return out, errors.Join(errs...)
}

func (s *Service) registerDocument(doc storage.Document, bundle *assets.Bundle) (*CreatureAsset, error) {
	name := doc.Model
	if name == "" {
		name = doc.ClassID
	}

	var model *scene.Node
	if bundle != nil {
		m, err := bundle.Model(name)
		if err != nil && !errors.Is(err, assets.ErrModelNotFound) {
			return nil, err
		}
		model = m
	}

	tmpl, err := doc.Build(model)
	if err != nil {
		return nil, err
	}
	if model == nil && tmpl.TechTypeToClone.IsNone() {
		return nil, fmt.Errorf("model %q: %w", name, assets.ErrModelNotFound)
	}

	info, err := s.PrefabInfo(doc.ClassID)
	if err != nil {
		return nil, err
	}
	return s.Register(documentDefinition{doc: doc, tmpl: tmpl}, info)
}
