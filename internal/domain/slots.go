package domain

import (
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
)

// --- Движение ---

type LocomotionData struct {
	MaxAcceleration          float64 `json:"maxAcceleration" yaml:"maxAcceleration"`
	ForwardRotationSpeed     float64 `json:"forwardRotationSpeed" yaml:"forwardRotationSpeed"`
	UpRotationSpeed          float64 `json:"upRotationSpeed" yaml:"upRotationSpeed"`
	DriftFactor              float64 `json:"driftFactor" yaml:"driftFactor"`
	FreezeHorizontalRotation bool    `json:"freezeHorizontalRotation" yaml:"freezeHorizontalRotation"`
	CanMoveAboveWater        bool    `json:"canMoveAboveWater" yaml:"canMoveAboveWater"`
	CanWalkOnSurface         bool    `json:"canWalkOnSurface" yaml:"canWalkOnSurface"`
}

func NewLocomotionData() *LocomotionData {
	return &LocomotionData{
		MaxAcceleration:      10,
		ForwardRotationSpeed: 0.6,
		UpRotationSpeed:      3,
		DriftFactor:          0.5,
	}
}

type SwimBehaviourData struct {
	TurnSpeed float64 `json:"turnSpeed" yaml:"turnSpeed"`
}

func NewSwimBehaviourData() *SwimBehaviourData {
	return &SwimBehaviourData{TurnSpeed: 1}
}

type AnimateByVelocityData struct {
	AnimationMoveMaxSpeed float64 `json:"animationMoveMaxSpeed" yaml:"animationMoveMaxSpeed"`
	AnimationMaxPitch     float64 `json:"animationMaxPitch" yaml:"animationMaxPitch"`
	AnimationMaxTilt      float64 `json:"animationMaxTilt" yaml:"animationMaxTilt"`
	UseStrafeAnimation    bool    `json:"useStrafeAnimation" yaml:"useStrafeAnimation"`
	DampTime              float64 `json:"dampTime" yaml:"dampTime"`
}

func NewAnimateByVelocityData(maxSpeed float64) *AnimateByVelocityData {
	return &AnimateByVelocityData{
		AnimationMoveMaxSpeed: maxSpeed,
		AnimationMaxPitch:     30,
		AnimationMaxTilt:      45,
		DampTime:              0.5,
	}
}

type SwimRandomData struct {
	EvaluatePriority float64    `json:"evaluatePriority" yaml:"evaluatePriority"`
	SwimRadius       types.Vec3 `json:"swimRadius" yaml:"swimRadius"`
	SwimVelocity     float64    `json:"swimVelocity" yaml:"swimVelocity"`
	SwimInterval     float64    `json:"swimInterval" yaml:"swimInterval"`
	SwimForward      float64    `json:"swimForward" yaml:"swimForward"`
	OnSphere         bool       `json:"onSphere" yaml:"onSphere"`
}

func NewSwimRandomData(priority float64, radius types.Vec3, velocity float64) *SwimRandomData {
	return &SwimRandomData{
		EvaluatePriority: priority,
		SwimRadius:       radius,
		SwimVelocity:     velocity,
		SwimInterval:     5,
		SwimForward:      0.5,
	}
}

type StayAtLeashData struct {
	EvaluatePriority float64 `json:"evaluatePriority" yaml:"evaluatePriority"`
	LeashDistance    float64 `json:"leashDistance" yaml:"leashDistance"`
	SwimVelocity     float64 `json:"swimVelocity" yaml:"swimVelocity"`
	SwimInterval     float64 `json:"swimInterval" yaml:"swimInterval"`
	MinSwimDuration  float64 `json:"minSwimDuration" yaml:"minSwimDuration"`
}

func NewStayAtLeashData(priority, leashDistance, velocity float64) *StayAtLeashData {
	return &StayAtLeashData{
		EvaluatePriority: priority,
		LeashDistance:    leashDistance,
		SwimVelocity:     velocity,
		SwimInterval:     1,
		MinSwimDuration:  3,
	}
}

type AvoidObstaclesData struct {
	EvaluatePriority    float64 `json:"evaluatePriority" yaml:"evaluatePriority"`
	AvoidTerrainOnly    bool    `json:"avoidTerrainOnly" yaml:"avoidTerrainOnly"`
	SwimVelocity        float64 `json:"swimVelocity" yaml:"swimVelocity"`
	AvoidanceDistance   float64 `json:"avoidanceDistance" yaml:"avoidanceDistance"`
	ScanDistance        float64 `json:"scanDistance" yaml:"scanDistance"`
	AvoidanceDuration   float64 `json:"avoidanceDuration" yaml:"avoidanceDuration"`
	ScanInterval        float64 `json:"scanInterval" yaml:"scanInterval"`
	ScanRadius          float64 `json:"scanRadius" yaml:"scanRadius"`
	AvoidanceIterations int     `json:"avoidanceIterations" yaml:"avoidanceIterations"`
}

func NewAvoidObstaclesData(priority, velocity float64, terrainOnly bool, avoidanceDistance, scanDistance float64) *AvoidObstaclesData {
	return &AvoidObstaclesData{
		EvaluatePriority:    priority,
		AvoidTerrainOnly:    terrainOnly,
		SwimVelocity:        velocity,
		AvoidanceDistance:   avoidanceDistance,
		ScanDistance:        scanDistance,
		AvoidanceDuration:   2,
		ScanInterval:        1,
		AvoidanceIterations: 10,
	}
}

type AvoidTerrainData struct {
	EvaluatePriority    float64 `json:"evaluatePriority" yaml:"evaluatePriority"`
	SwimVelocity        float64 `json:"swimVelocity" yaml:"swimVelocity"`
	AvoidanceDistance   float64 `json:"avoidanceDistance" yaml:"avoidanceDistance"`
	ScanDistance        float64 `json:"scanDistance" yaml:"scanDistance"`
	AvoidanceForward    float64 `json:"avoidanceForward" yaml:"avoidanceForward"`
	AvoidanceIterations float64 `json:"avoidanceIterations" yaml:"avoidanceIterations"`
}

func NewAvoidTerrainData(priority, velocity, avoidanceDistance, scanDistance float64) *AvoidTerrainData {
	return &AvoidTerrainData{
		EvaluatePriority:    priority,
		SwimVelocity:        velocity,
		AvoidanceDistance:   avoidanceDistance,
		ScanDistance:        scanDistance,
		AvoidanceForward:    0.5,
		AvoidanceIterations: 10,
	}
}

type SwimInSchoolData struct {
	EvaluatePriority         float64 `json:"evaluatePriority" yaml:"evaluatePriority"`
	SwimVelocity             float64 `json:"swimVelocity" yaml:"swimVelocity"`
	SchoolSize               float64 `json:"schoolSize" yaml:"schoolSize"`
	SwimInterval             float64 `json:"swimInterval" yaml:"swimInterval"`
	BreakDistance            float64 `json:"breakDistance" yaml:"breakDistance"`
	PercentFindLeaderRespond float64 `json:"percentFindLeaderRespond" yaml:"percentFindLeaderRespond"`
	ChanceLoseLeader         float64 `json:"chanceLoseLeader" yaml:"chanceLoseLeader"`
}

func NewSwimInSchoolData(priority, velocity, schoolSize, interval float64) *SwimInSchoolData {
	return &SwimInSchoolData{
		EvaluatePriority:         priority,
		SwimVelocity:             velocity,
		SchoolSize:               schoolSize,
		SwimInterval:             interval,
		BreakDistance:            20,
		PercentFindLeaderRespond: 0.5,
		ChanceLoseLeader:         0.1,
	}
}

// --- Страх ---

type FleeWhenScaredData struct {
	EvaluatePriority    float64 `json:"evaluatePriority" yaml:"evaluatePriority"`
	SwimVelocity        float64 `json:"swimVelocity" yaml:"swimVelocity"`
	SwimInterval        float64 `json:"swimInterval" yaml:"swimInterval"`
	AvoidanceIterations int     `json:"avoidanceIterations" yaml:"avoidanceIterations"`
	SwimTiredness       float64 `json:"swimTiredness" yaml:"swimTiredness"`
	TiredVelocity       float64 `json:"tiredVelocity" yaml:"tiredVelocity"`
	SwimExhaustion      float64 `json:"swimExhaustion" yaml:"swimExhaustion"`
	ExhaustedVelocity   float64 `json:"exhaustedVelocity" yaml:"exhaustedVelocity"`
}

func NewFleeWhenScaredData(priority, velocity float64) *FleeWhenScaredData {
	return &FleeWhenScaredData{
		EvaluatePriority:    priority,
		SwimVelocity:        velocity,
		SwimInterval:        1,
		AvoidanceIterations: 10,
		SwimTiredness:       0.2,
		TiredVelocity:       3,
		SwimExhaustion:      0.25,
		ExhaustedVelocity:   1,
	}
}

type FleeOnDamageData struct {
	EvaluatePriority float64 `json:"evaluatePriority" yaml:"evaluatePriority"`
	DamageThreshold  float64 `json:"damageThreshold" yaml:"damageThreshold"`
	FleeDuration     float64 `json:"fleeDuration" yaml:"fleeDuration"`
	MinFleeDistance  float64 `json:"minFleeDistance" yaml:"minFleeDistance"`
	SwimVelocity     float64 `json:"swimVelocity" yaml:"swimVelocity"`
	SwimInterval     float64 `json:"swimInterval" yaml:"swimInterval"`
}

func NewFleeOnDamageData(priority float64) *FleeOnDamageData {
	return &FleeOnDamageData{
		EvaluatePriority: priority,
		DamageThreshold:  10,
		FleeDuration:     2,
		MinFleeDistance:  5,
		SwimVelocity:     10,
		SwimInterval:     1,
	}
}

type ScareableData struct {
	TargetType           enums.EcoTargetType `json:"targetType" yaml:"targetType"`
	ScarePerSecond       float64             `json:"scarePerSecond" yaml:"scarePerSecond"`
	MaxRangeScalar       float64             `json:"maxRangeScalar" yaml:"maxRangeScalar"`
	MinMass              float64             `json:"minMass" yaml:"minMass"`
	UpdateTargetInterval float64             `json:"updateTargetInterval" yaml:"updateTargetInterval"`
	UpdateRange          float64             `json:"updateRange" yaml:"updateRange"`
}

// NewScareableData - пугается акул.
func NewScareableData() *ScareableData {
	return &ScareableData{
		TargetType:           enums.EcoTargetShark,
		ScarePerSecond:       4,
		MaxRangeScalar:       10,
		MinMass:              50,
		UpdateTargetInterval: 1,
		UpdateRange:          100,
	}
}

// --- Агрессия ---

type AggressiveWhenSeeTargetData struct {
	TargetType             enums.EcoTargetType `json:"targetType" yaml:"targetType"`
	AggressionPerSecond    float64             `json:"aggressionPerSecond" yaml:"aggressionPerSecond"`
	MaxRangeScalar         float64             `json:"maxRangeScalar" yaml:"maxRangeScalar"`
	MaxSearchRings         int                 `json:"maxSearchRings" yaml:"maxSearchRings"`
	IgnoreSameKind         bool                `json:"ignoreSameKind" yaml:"ignoreSameKind"`
	TargetShouldBeInfected bool                `json:"targetShouldBeInfected" yaml:"targetShouldBeInfected"`
	MinimumVelocity        float64             `json:"minimumVelocity" yaml:"minimumVelocity"`
	HungerThreshold        float64             `json:"hungerThreshold" yaml:"hungerThreshold"`
}

func NewAggressiveWhenSeeTargetData(target enums.EcoTargetType, perSecond, maxRangeScalar float64, maxSearchRings int) AggressiveWhenSeeTargetData {
	return AggressiveWhenSeeTargetData{
		TargetType:          target,
		AggressionPerSecond: perSecond,
		MaxRangeScalar:      maxRangeScalar,
		MaxSearchRings:      maxSearchRings,
		IgnoreSameKind:      true,
	}
}

type AttackLastTargetData struct {
	EvaluatePriority      float64 `json:"evaluatePriority" yaml:"evaluatePriority"`
	SwimVelocity          float64 `json:"swimVelocity" yaml:"swimVelocity"`
	AggressionThreshold   float64 `json:"aggressionThreshold" yaml:"aggressionThreshold"`
	MaxAttackDuration     float64 `json:"maxAttackDuration" yaml:"maxAttackDuration"`
	PauseInterval         float64 `json:"pauseInterval" yaml:"pauseInterval"`
	MinAttackDuration     float64 `json:"minAttackDuration" yaml:"minAttackDuration"`
	RememberTargetTime    float64 `json:"rememberTargetTime" yaml:"rememberTargetTime"`
	ResetAggressionOnTime bool    `json:"resetAggressionOnTime" yaml:"resetAggressionOnTime"`
}

func NewAttackLastTargetData(priority, velocity, threshold, maxDuration float64) *AttackLastTargetData {
	return &AttackLastTargetData{
		EvaluatePriority:      priority,
		SwimVelocity:          velocity,
		AggressionThreshold:   threshold,
		MaxAttackDuration:     maxDuration,
		PauseInterval:         20,
		MinAttackDuration:     3,
		RememberTargetTime:    5,
		ResetAggressionOnTime: true,
	}
}

type AttackCyclopsData struct {
	EvaluatePriority          float64 `json:"evaluatePriority" yaml:"evaluatePriority"`
	SwimVelocity              float64 `json:"swimVelocity" yaml:"swimVelocity"`
	MaxDistToLeash            float64 `json:"maxDistToLeash" yaml:"maxDistToLeash"`
	AggressPerSecond          float64 `json:"aggressPerSecond" yaml:"aggressPerSecond"`
	AttackPause               float64 `json:"attackPause" yaml:"attackPause"`
	AggressionFalloff         float64 `json:"aggressionFalloff" yaml:"aggressionFalloff"`
	AttackAggressionThreshold float64 `json:"attackAggressionThreshold" yaml:"attackAggressionThreshold"`
}

func NewAttackCyclopsData(priority, velocity, maxDistToLeash, perSecond, pause, falloff float64) *AttackCyclopsData {
	return &AttackCyclopsData{
		EvaluatePriority:          priority,
		SwimVelocity:              velocity,
		MaxDistToLeash:            maxDistToLeash,
		AggressPerSecond:          perSecond,
		AttackPause:               pause,
		AggressionFalloff:         falloff,
		AttackAggressionThreshold: 0.75,
	}
}

type AggressiveToPilotingVehicleData struct {
	Range                    float64 `json:"range" yaml:"range"`
	AggressionPerSecond      float64 `json:"aggressionPerSecond" yaml:"aggressionPerSecond"`
	UpdateAggressionInterval float64 `json:"updateAggressionInterval" yaml:"updateAggressionInterval"`
}

func NewAggressiveToPilotingVehicleData(rng, perSecond float64) *AggressiveToPilotingVehicleData {
	return &AggressiveToPilotingVehicleData{Range: rng, AggressionPerSecond: perSecond, UpdateAggressionInterval: 1}
}

// --- Существо ---

type RespawnData struct {
	Respawn                       bool    `json:"respawn" yaml:"respawn"`
	RespawnOnlyIfKilledByCreature bool    `json:"respawnOnlyIfKilledByCreature" yaml:"respawnOnlyIfKilledByCreature"`
	RespawnInterval               float64 `json:"respawnInterval" yaml:"respawnInterval"`
}

func NewRespawnData(respawn bool) RespawnData {
	return RespawnData{Respawn: respawn, RespawnInterval: 300}
}

// CreatureTraitsData - скорости изменения черт характера.
type CreatureTraitsData struct {
	HungerIncreaseRate     float64 `json:"hungerIncreaseRate" yaml:"hungerIncreaseRate"`
	AggressionDecreaseRate float64 `json:"aggressionDecreaseRate" yaml:"aggressionDecreaseRate"`
	ScaredDecreaseRate     float64 `json:"scaredDecreaseRate" yaml:"scaredDecreaseRate"`
}

// DefaultTraits - значения конструктора черт (шаблон по умолчанию голоднее).
func DefaultTraits() CreatureTraitsData {
	return CreatureTraitsData{HungerIncreaseRate: 0.01, AggressionDecreaseRate: 0.05, ScaredDecreaseRate: 0.1}
}

type BehaviourLODData struct {
	VeryClose float64 `json:"veryClose" yaml:"veryClose"`
	Close     float64 `json:"close" yaml:"close"`
	Far       float64 `json:"far" yaml:"far"`
}

// DefaultBehaviourLOD используется, когда в шаблоне слот пуст.
var DefaultBehaviourLOD = BehaviourLODData{VeryClose: 10, Close: 50, Far: 500}

// --- Предметы ---

// PickupableFishData - существо можно подобрать. Имена моделей ищутся среди потомков.
type PickupableFishData struct {
	CanBeHeld                 bool           `json:"canBeHeld" yaml:"canBeHeld"`
	ReferenceHoldingAnimation types.TechType `json:"referenceHoldingAnimation" yaml:"referenceHoldingAnimation"`
	WorldModelName            string         `json:"worldModelName" yaml:"worldModelName"`
	ViewModelName             string         `json:"viewModelName" yaml:"viewModelName"`
}

// NewHeldFishData - рыба, которую можно держать в руке.
func NewHeldFishData(reference types.TechType, worldModel, viewModel string) *PickupableFishData {
	return &PickupableFishData{
		CanBeHeld:                 true,
		ReferenceHoldingAnimation: reference,
		WorldModelName:            worldModel,
		ViewModelName:             viewModel,
	}
}

type EdibleData struct {
	FoodAmount     float64 `json:"foodAmount" yaml:"foodAmount"`
	WaterAmount    float64 `json:"waterAmount" yaml:"waterAmount"`
	Decomposes     bool    `json:"decomposes" yaml:"decomposes"`
	DecomposeSpeed float64 `json:"decomposeSpeed" yaml:"decomposeSpeed"`
}

func NewEdibleData(food, water float64, decomposes bool) *EdibleData {
	return &EdibleData{FoodAmount: food, WaterAmount: water, Decomposes: decomposes, DecomposeSpeed: 1}
}

// VFXFabricatingData - ручные настройки показа в фабрикаторе.
type VFXFabricatingData struct {
	PathToModel string     `json:"pathToModel" yaml:"pathToModel"`
	MinY        float64    `json:"minY" yaml:"minY"`
	MaxY        float64    `json:"maxY" yaml:"maxY"`
	PosOffset   types.Vec3 `json:"posOffset" yaml:"posOffset"`
	EulerOffset types.Vec3 `json:"eulerOffset" yaml:"eulerOffset"`
	ScaleFactor float64    `json:"scaleFactor" yaml:"scaleFactor"`
}

// ScannerEntryData - запись сканера.
type ScannerEntryData struct {
	ScanTime          float64        `json:"scanTime" yaml:"scanTime"`
	BlueprintToUnlock types.TechType `json:"blueprintToUnlock" yaml:"blueprintToUnlock"`
	IsFragment        bool           `json:"isFragment" yaml:"isFragment"`
	TotalFragments    int            `json:"totalFragments" yaml:"totalFragments"`
	DestroyAfterScan  bool           `json:"destroyAfterScan" yaml:"destroyAfterScan"`
}

func NewScannerEntryData(scanTime float64) *ScannerEntryData {
	return &ScannerEntryData{ScanTime: scanTime, TotalFragments: 1}
}

// EncyclopediaData - статья КПК. Пустой Path означает «без статьи».
type EncyclopediaData struct {
	Path  string            `json:"path" yaml:"path"`
	Title string            `json:"title" yaml:"title"`
	Desc  string            `json:"desc" yaml:"desc"`
	Image string            `json:"image,omitempty" yaml:"image"`
	Popup string            `json:"popup,omitempty" yaml:"popup"`
	Scan  *ScannerEntryData `json:"scan,omitempty" yaml:"scan"`
}
