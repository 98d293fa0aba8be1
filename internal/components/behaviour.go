package components

import (
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/scene"
)

// --- Страх ---

type CreatureFear struct{}

// ExhaustedFalloff - скорость восстановления после бегства.
const ExhaustedFalloff = 0.05

type FleeWhenScared struct {
	CreatureFear        *CreatureFear `json:"-"`
	Exhausted           CreatureTrait `json:"exhausted"`
	EvaluatePriority    float64       `json:"evaluatePriority"`
	SwimVelocity        float64       `json:"swimVelocity"`
	SwimInterval        float64       `json:"swimInterval"`
	AvoidanceIterations int           `json:"avoidanceIterations"`
	SwimTiredness       float64       `json:"swimTiredness"`
	TiredVelocity       float64       `json:"tiredVelocity"`
	SwimExhaustion      float64       `json:"swimExhaustion"`
	ExhaustedVelocity   float64       `json:"exhaustedVelocity"`
}

type FleeOnDamage struct {
	EvaluatePriority float64 `json:"evaluatePriority"`
	DamageThreshold  float64 `json:"damageThreshold"`
	FleeDuration     float64 `json:"fleeDuration"`
	MinFleeDistance  float64 `json:"minFleeDistance"`
	SwimVelocity     float64 `json:"swimVelocity"`
	SwimInterval     float64 `json:"swimInterval"`
}

type Scareable struct {
	TargetType           enums.EcoTargetType `json:"targetType"`
	CreatureFear         *CreatureFear       `json:"-"`
	Creature             Controller          `json:"-"`
	FleeAction           *FleeWhenScared     `json:"-"`
	ScarePerSecond       float64             `json:"scarePerSecond"`
	MaxRangeScalar       float64             `json:"maxRangeScalar"`
	MinMass              float64             `json:"minMass"`
	UpdateTargetInterval float64             `json:"updateTargetInterval"`
	UpdateRange          float64             `json:"updateRange"`
}

// --- Агрессия ---

type LastTarget struct{}

type AttackLastTarget struct {
	LastTarget            *LastTarget `json:"-"`
	EvaluatePriority      float64     `json:"evaluatePriority"`
	SwimVelocity          float64     `json:"swimVelocity"`
	AggressionThreshold   float64     `json:"aggressionThreshold"`
	MinAttackDuration     float64     `json:"minAttackDuration"`
	MaxAttackDuration     float64     `json:"maxAttackDuration"`
	PauseInterval         float64     `json:"pauseInterval"`
	RememberTargetTime    float64     `json:"rememberTargetTime"`
	ResetAggressionOnTime bool        `json:"resetAggressionOnTime"`
}

// Общие для всех AggressiveWhenSeeTarget кривые множителей.
var (
	MaxRangeMultiplierCurve = types.NewCurve(
		types.Keyframe{Time: 0, Value: 1},
		types.Keyframe{Time: 0.5, Value: 0.5},
		types.Keyframe{Time: 1, Value: 1},
	)
	DistanceAggressionMultiplierCurve = types.NewCurve(
		types.Keyframe{Time: 0, Value: 1},
		types.Keyframe{Time: 1, Value: 0, InTangent: -3, OutTangent: -3},
	)
)

type AggressiveWhenSeeTarget struct {
	LastTarget                   *LastTarget         `json:"-"`
	Creature                     Controller          `json:"-"`
	MaxRangeMultiplier           types.Curve         `json:"maxRangeMultiplier"`
	DistanceAggressionMultiplier types.Curve         `json:"distanceAggressionMultiplier"`
	TargetType                   enums.EcoTargetType `json:"targetType"`
	AggressionPerSecond          float64             `json:"aggressionPerSecond"`
	MaxRangeScalar               float64             `json:"maxRangeScalar"`
	MaxSearchRings               int                 `json:"maxSearchRings"`
	IgnoreSameKind               bool                `json:"ignoreSameKind"`
	TargetShouldBeInfected       bool                `json:"targetShouldBeInfected"`
	MinimumVelocity              float64             `json:"minimumVelocity"`
	HungerThreshold              float64             `json:"hungerThreshold"`
}

// AttackCyclops - реакция на шум крупного транспорта.
type AttackCyclops struct {
	LastTarget                *LastTarget   `json:"-"`
	EvaluatePriority          float64       `json:"evaluatePriority"`
	AggressPerSecond          float64       `json:"aggressPerSecond"`
	AttackAggressionThreshold float64       `json:"attackAggressionThreshold"`
	AttackPause               float64       `json:"attackPause"`
	MaxDistToLeash            float64       `json:"maxDistToLeash"`
	SwimVelocity              float64       `json:"swimVelocity"`
	AggressiveToNoise         CreatureTrait `json:"aggressiveToNoise"`
}

type AggressiveToPilotingVehicle struct {
	LastTarget               *LastTarget `json:"-"`
	Creature                 Controller  `json:"-"`
	Range                    float64     `json:"range"`
	AggressionPerSecond      float64     `json:"aggressionPerSecond"`
	UpdateAggressionInterval float64     `json:"updateAggressionInterval"`
}

// MeleeAttack - укус по триггеру пасти.
type MeleeAttack struct {
	Mouth          *scene.Node `json:"-"`
	LastTarget     *LastTarget `json:"-"`
	Creature       Controller  `json:"-"`
	LiveMixin      *LiveMixin  `json:"-"`
	Animator       *Animator   `json:"-"`
	BiteDamage     float64     `json:"biteDamage"`
	BiteInterval   float64     `json:"biteInterval"`
	CanBiteVehicle bool        `json:"canBiteVehicle"`
}

type OnTouch struct{}

// OnTouchCallback откладывает привязку колбэка до появления объекта в мире.
type OnTouchCallback struct {
	OnTouch        *OnTouch    `json:"-"`
	CallbackObject *scene.Node `json:"-"`
	TypeName       string      `json:"typeName"`
	MethodName     string      `json:"methodName"`
}
