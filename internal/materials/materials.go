package materials

import (
	"strings"

	"creature-forge/internal/components"
	"creature-forge/internal/scene"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Shader - шейдер хоста, на который переводятся все материалы.
const Shader = "MarmosetUBER"

// Слоты текстур.
const (
	SlotMainTex      = "_MainTex"
	SlotBumpMap      = "_BumpMap"
	SlotSpecGlossMap = "_SpecGlossMap"
	SlotSpecTex      = "_SpecTex"
	SlotEmissionMap  = "_EmissionMap"
	SlotIllum        = "_Illum"
)

// Ключевые слова шейдера.
const (
	KeywordSpecMap   = "MARMO_SPECMAP"
	KeywordEmission  = "MARMO_EMISSION"
	KeywordNormalMap = "MARMO_NORMALMAP"
	KeywordAlphaClip = "MARMO_ALPHA_CLIP"
	KeywordAlpha     = "MARMO_ALPHA"
	KeywordZWrite    = "_ZWRITE_ON"
)

// Параметры по умолчанию.
const (
	FloatShininess         = "_Shininess"
	FloatSpecInt           = "_SpecInt"
	FloatEmissionLM        = "_EmissionLM"
	DefaultShininess       = 8.0
	DefaultSpecInt         = 1.0
	DefaultEmissionLMScale = 1.0
)

// Applier - проход по материалам префаба после сборки.
type Applier func(root *scene.Node)

// Apply переводит материалы всех рендереров поддерева на шейдер хоста.
// Все операции сводятся к установке значений, повторный проход ничего не меняет.
func Apply(root *scene.Node) {
	var count int
	for _, r := range scene.InChildren[components.Renderer](root, true) {
		for _, m := range r.Materials {
			Convert(m)
			count++
		}
	}
	logger.For("materials").WithFields(logrus.Fields{
		"prefab":    root.Name,
		"materials": count,
	}).Debug("Materials converted")
}

// Convert переводит один материал.
func Convert(m *components.Material) {
	if m == nil {
		return
	}
	m.Shader = Shader

	if tex, ok := m.Texture(SlotBumpMap); ok {
		m.SetTexture(SlotBumpMap, tex)
		m.EnableKeyword(KeywordNormalMap)
	}
	if tex, ok := m.Texture(SlotSpecGlossMap); ok {
		m.SetTexture(SlotSpecTex, tex)
		m.EnableKeyword(KeywordSpecMap)
	}
	if tex, ok := m.Texture(SlotEmissionMap); ok {
		m.SetTexture(SlotIllum, tex)
		m.EnableKeyword(KeywordEmission)
		m.SetFloat(FloatEmissionLM, DefaultEmissionLMScale)
	}

	m.SetFloat(FloatShininess, DefaultShininess)
	m.SetFloat(FloatSpecInt, DefaultSpecInt)

	name := scene.Fold(m.Name)
	if strings.Contains(name, "cutout") {
		m.EnableKeyword(KeywordAlphaClip)
	}
	if strings.Contains(name, "transparent") {
		m.EnableKeyword(KeywordAlpha)
		m.DisableKeyword(KeywordZWrite)
	}
}
