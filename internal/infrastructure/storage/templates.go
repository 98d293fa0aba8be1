package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/domain"
	"creature-forge/internal/scene"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Document - один шаблон существа в YAML.
//
// Блок template накладывается поверх значений по умолчанию
// domain.NewCreatureTemplate: указанные поля перезаписываются,
// явный null отключает слот.
type Document struct {
	ClassID       string              `yaml:"classId"`
	Model         string              `yaml:"model"`
	BehaviourType enums.BehaviourType `yaml:"behaviourType"`
	EcoTargetType enums.EcoTargetType `yaml:"ecoTargetType"`
	MaxHealth     float64             `yaml:"maxHealth"`

	Template     yaml.Node                `yaml:"template"`
	WaterPark    *domain.WaterParkGrowth  `yaml:"waterPark"`
	Encyclopedia *domain.EncyclopediaData `yaml:"encyclopedia"`
	Cooked       *VariantDocument         `yaml:"cooked"`
	Cured        *VariantDocument         `yaml:"cured"`

	// Path - файл, из которого прочитан документ.
	Path string `yaml:"-"`
}

// VariantDocument - жареный или вяленый вариант.
type VariantDocument struct {
	Description string                     `yaml:"description"`
	Edible      domain.EdibleData          `yaml:"edible"`
	VFX         *domain.VFXFabricatingData `yaml:"vfx"`
}

var ErrNoTemplates = errors.New("no template files matched")

// ReadTemplates читает все документы из modDir по glob-шаблону (поддерживает "**").
func ReadTemplates(modDir, pattern string) ([]Document, error) {
	return readTemplates(os.DirFS(modDir), pattern)
}

func readTemplates(fsys fs.FS, pattern string) ([]Document, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%q: %w", pattern, ErrNoTemplates)
	}
	sort.Strings(matches)

	var docs []Document
	for _, path := range matches {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, err
		}
		batch, err := DecodeTemplates(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for i := range batch {
			batch[i].Path = path
		}
		docs = append(docs, batch...)
	}
	return docs, nil
}

// DecodeTemplates читает поток документов, разделённых "---".
func DecodeTemplates(r io.Reader) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []Document
	for {
		var d Document
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode template: %w", err)
		}
		if d.ClassID == "" {
			return nil, fmt.Errorf("template #%d: classId is required", len(docs)+1)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Build собирает шаблон существа на модели model.
func (d Document) Build(model *scene.Node) (*domain.CreatureTemplate, error) {
	tmpl := domain.NewCreatureTemplate(model, d.BehaviourType, d.EcoTargetType, d.MaxHealth)

	if d.Template.Kind != 0 {
		if err := d.Template.Decode(tmpl); err != nil {
			return nil, fmt.Errorf("%s: decode template block: %w", d.ClassID, err)
		}
	}
	if d.WaterPark != nil {
		if err := tmpl.SetWaterParkCreatureData(*d.WaterPark); err != nil {
			return nil, fmt.Errorf("%s: %w", d.ClassID, err)
		}
	}
	return tmpl, nil
}
