package components

import (
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/scene"
)

// CreatureTrait - значение с линейным затуханием.
type CreatureTrait struct {
	Value   float64 `json:"value"`
	Falloff float64 `json:"falloff"`
}

// Controller - главный компонент существа. Пользовательские контроллеры
// встраивают Creature и возвращают его через Base.
type Controller interface {
	Base() *Creature
}

// ControllerFactory создаёт контроллер нужного типа при сборке.
type ControllerFactory func() Controller

// NewCreature - фабрика по умолчанию.
func NewCreature() Controller { return &Creature{} }

// Creature - базовый контроллер существа.
type Creature struct {
	Aggression       CreatureTrait `json:"aggression"`
	Hunger           CreatureTrait `json:"hunger"`
	Scared           CreatureTrait `json:"scared"`
	LiveMixin        *LiveMixin    `json:"-"`
	TraitsAnimator   *Animator     `json:"-"`
	SizeDistribution types.Curve   `json:"sizeDistribution"`
	EyeFOV           float64       `json:"eyeFOV"`
}

func (c *Creature) Base() *Creature { return c }

// LiveMixinData - параметры здоровья. Эффекты по умолчанию подставляет сборщик.
type LiveMixinData struct {
	MaxHealth              float64     `json:"maxHealth" yaml:"maxHealth"`
	Weldable               bool        `json:"weldable" yaml:"weldable"`
	Knifeable              bool        `json:"knifeable" yaml:"knifeable"`
	DestroyOnDeath         bool        `json:"destroyOnDeath" yaml:"destroyOnDeath"`
	DamageEffect           *scene.Node `json:"-" yaml:"-"`
	DeathEffect            *scene.Node `json:"-" yaml:"-"`
	ElectricalDamageEffect *scene.Node `json:"-" yaml:"-"`
}

// NewLiveMixinData - здоровье существа: режется ножом, не чинится сваркой.
func NewLiveMixinData(maxHealth float64) *LiveMixinData {
	return &LiveMixinData{MaxHealth: maxHealth, Knifeable: true}
}

type LiveMixin struct {
	Data   *LiveMixinData `json:"data"`
	Health float64        `json:"health"`
}

// CloneComponent копирует данные здоровья, экземпляр меняет их независимо от префаба.
func (l *LiveMixin) CloneComponent() scene.Component {
	cp := *l
	if l.Data != nil {
		d := *l.Data
		cp.Data = &d
	}
	return &cp
}

type CreatureDeath struct {
	UseRigidbody                  *Rigidbody  `json:"-"`
	LiveMixin                     *LiveMixin  `json:"-"`
	Eatable                       *Eatable    `json:"-"`
	RespawnerPrefab               *scene.Node `json:"-"`
	Respawn                       bool        `json:"respawn"`
	RespawnOnlyIfKilledByCreature bool        `json:"respawnOnlyIfKilledByCreature"`
	RespawnInterval               float64     `json:"respawnInterval"`
}

type DeadAnimationOnEnable struct {
	Enabled   bool       `json:"enabled"`
	Animator  *Animator  `json:"-"`
	LiveMixin *LiveMixin `json:"-"`
}

type CreatureFlinch struct {
	Animator *Animator `json:"-"`
}

type RemoveSoundsOnKill struct{}

// FishSplatSound - звук удара о тушку.
const FishSplatSound = "event:/sub/common/fishsplat"

type SoundOnDamage struct {
	DamageType enums.DamageType `json:"damageType"`
	Sound      string           `json:"sound"`
}

// DamageModifier умножает урон указанного типа.
type DamageModifier struct {
	DamageType enums.DamageType `json:"damageType"`
	Multiplier float64          `json:"multiplier"`
}

// BaseDecayRate - скорость порчи еды при decomposeSpeed = 1.
const BaseDecayRate = 0.015

type Eatable struct {
	FoodValue  float64 `json:"foodValue"`
	WaterValue float64 `json:"waterValue"`
	KDecayRate float64 `json:"kDecayRate"`
	Decomposes bool    `json:"decomposes"`
}
