package components

import (
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/scene"
)

// Bounds - габариты рендерера.
type Bounds struct {
	Center  types.Vec3 `json:"center" yaml:"center"`
	Extents types.Vec3 `json:"extents" yaml:"extents"`
}

// Material - набор параметров шейдера.
// Ключевые слова хранятся множеством: повторное включение ничего не меняет.
type Material struct {
	Name     string             `json:"name" yaml:"name"`
	Shader   string             `json:"shader" yaml:"shader"`
	Textures map[string]string  `json:"textures,omitempty" yaml:"textures,omitempty"`
	Floats   map[string]float64 `json:"floats,omitempty" yaml:"floats,omitempty"`
	Keywords map[string]bool    `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

func (m *Material) EnableKeyword(kw string) {
	if m.Keywords == nil {
		m.Keywords = make(map[string]bool)
	}
	m.Keywords[kw] = true
}

func (m *Material) DisableKeyword(kw string) {
	delete(m.Keywords, kw)
}

func (m *Material) IsKeywordEnabled(kw string) bool {
	return m.Keywords[kw]
}

func (m *Material) Texture(slot string) (string, bool) {
	t, ok := m.Textures[slot]
	return t, ok && t != ""
}

func (m *Material) SetTexture(slot, tex string) {
	if m.Textures == nil {
		m.Textures = make(map[string]string)
	}
	m.Textures[slot] = tex
}

func (m *Material) SetFloat(name string, v float64) {
	if m.Floats == nil {
		m.Floats = make(map[string]float64)
	}
	m.Floats[name] = v
}

// Renderer рисует меш с набором материалов.
type Renderer struct {
	Materials []*Material `json:"materials" yaml:"materials"`
	Bounds    Bounds      `json:"bounds" yaml:"bounds"`
}

// CloneComponent копирует материалы, чтобы клон префаба не делил их с исходником.
func (r *Renderer) CloneComponent() scene.Component {
	cp := &Renderer{Bounds: r.Bounds}
	for _, m := range r.Materials {
		mc := &Material{Name: m.Name, Shader: m.Shader}
		for k, v := range m.Textures {
			mc.SetTexture(k, v)
		}
		for k, v := range m.Floats {
			mc.SetFloat(k, v)
		}
		for k, on := range m.Keywords {
			if on {
				mc.EnableKeyword(k)
			}
		}
		cp.Materials = append(cp.Materials, mc)
	}
	return cp
}

// Animator - контроллер анимаций модели.
type Animator struct {
	Controller string `json:"controller" yaml:"controller"`
}

// SkyApplier применяет освещение окружения к рендерерам.
type SkyApplier struct {
	Renderers []*Renderer `json:"-"`
	Dynamic   bool        `json:"dynamic"`
}

// EcoTarget - как существо видят остальные.
type EcoTarget struct {
	Type enums.EcoTargetType `json:"type"`
}

// VFXSurface - тип поверхности для эффектов попадания.
type VFXSurface struct {
	SurfaceType enums.SurfaceType `json:"surfaceType"`
}

// InfectedMixin - поддержка заражения, рендереры собираются сразу.
type InfectedMixin struct {
	Renderers []*Renderer `json:"-"`
}

// VFXFabricating - параметры показа модели в фабрикаторе.
type VFXFabricating struct {
	LocalMinY   float64    `json:"localMinY"`
	LocalMaxY   float64    `json:"localMaxY"`
	PosOffset   types.Vec3 `json:"posOffset"`
	EulerOffset types.Vec3 `json:"eulerOffset"`
	ScaleFactor float64    `json:"scaleFactor"`
}

// TrailManager - процедурная анимация хвостовых цепочек.
type TrailManager struct {
	RootSegment          *scene.Node   `json:"-"`
	RootTransform        *scene.Node   `json:"-"`
	Trails               []*scene.Node `json:"-"`
	LevelOfDetail        *BehaviourLOD `json:"-"`
	SegmentSnapSpeed     float64       `json:"segmentSnapSpeed"`
	MaxSegmentOffset     float64       `json:"maxSegmentOffset"`
	AllowDisableOnScreen bool          `json:"allowDisableOnScreen"`
	PitchMultiplier      types.Curve   `json:"pitchMultiplier"`
	RollMultiplier       types.Curve   `json:"rollMultiplier"`
	YawMultiplier        types.Curve   `json:"yawMultiplier"`
}

// FPModel переключает мировую модель и модель от первого лица.
type FPModel struct {
	PropModel *scene.Node `json:"-"`
	ViewModel *scene.Node `json:"-"`
}

// AquariumFish - модель, показываемая в аквариуме.
type AquariumFish struct {
	Model *scene.Node `json:"-"`
}
