package components

import (
	"creature-forge/internal/core/types"
	"creature-forge/internal/scene"
)

// BehaviourLOD - пороги дистанций уровня детализации поведения.
type BehaviourLOD struct {
	VeryCloseThreshold float64 `json:"veryCloseThreshold"`
	CloseThreshold     float64 `json:"closeThreshold"`
	FarThreshold       float64 `json:"farThreshold"`
}

type Locomotion struct {
	LevelOfDetail            *BehaviourLOD `json:"-"`
	UseRigidbody             *Rigidbody    `json:"-"`
	MaxAcceleration          float64       `json:"maxAcceleration"`
	ForwardRotationSpeed     float64       `json:"forwardRotationSpeed"`
	UpRotationSpeed          float64       `json:"upRotationSpeed"`
	DriftFactor              float64       `json:"driftFactor"`
	CanMoveAboveWater        bool          `json:"canMoveAboveWater"`
	CanWalkOnSurface         bool          `json:"canWalkOnSurface"`
	FreezeHorizontalRotation bool          `json:"freezeHorizontalRotation"`
}

type SplineFollowing struct {
	UseRigidbody  *Rigidbody    `json:"-"`
	Locomotion    *Locomotion   `json:"-"`
	LevelOfDetail *BehaviourLOD `json:"-"`
}

type SwimBehaviour struct {
	TurnSpeed       float64          `json:"turnSpeed"`
	SplineFollowing *SplineFollowing `json:"-"`
}

type SwimRandom struct {
	EvaluatePriority float64    `json:"evaluatePriority"`
	SwimRadius       types.Vec3 `json:"swimRadius"`
	SwimForward      float64    `json:"swimForward"`
	SwimVelocity     float64    `json:"swimVelocity"`
	SwimInterval     float64    `json:"swimInterval"`
	OnSphere         bool       `json:"onSphere"`
}

type StayAtLeashPosition struct {
	EvaluatePriority float64 `json:"evaluatePriority"`
	LeashDistance    float64 `json:"leashDistance"`
	SwimVelocity     float64 `json:"swimVelocity"`
	SwimInterval     float64 `json:"swimInterval"`
	MinSwimDuration  float64 `json:"minSwimDuration"`
}

// AnimateByVelocity подаёт скорость тела в аниматор.
// Root - узел, чья скорость используется (для рыб в руках, мировая модель).
type AnimateByVelocity struct {
	Animator              *Animator     `json:"-"`
	Root                  *scene.Node   `json:"-"`
	LevelOfDetail         *BehaviourLOD `json:"-"`
	AnimationMoveMaxSpeed float64       `json:"animationMoveMaxSpeed"`
	AnimationMaxPitch     float64       `json:"animationMaxPitch"`
	AnimationMaxTilt      float64       `json:"animationMaxTilt"`
	UseStrafeAnimation    bool          `json:"useStrafeAnimation"`
	DampTime              float64       `json:"dampTime"`
}

type AvoidObstacles struct {
	LastTarget          *LastTarget `json:"-"`
	EvaluatePriority    float64     `json:"evaluatePriority"`
	AvoidTerrainOnly    bool        `json:"avoidTerrainOnly"`
	AvoidanceIterations int         `json:"avoidanceIterations"`
	AvoidanceDistance   float64     `json:"avoidanceDistance"`
	AvoidanceDuration   float64     `json:"avoidanceDuration"`
	ScanInterval        float64     `json:"scanInterval"`
	ScanDistance        float64     `json:"scanDistance"`
	ScanRadius          float64     `json:"scanRadius"`
	SwimVelocity        float64     `json:"swimVelocity"`
	SwimInterval        float64     `json:"swimInterval"`
}

type AvoidTerrain struct {
	EvaluatePriority    float64 `json:"evaluatePriority"`
	AvoidanceDistance   float64 `json:"avoidanceDistance"`
	AvoidanceForward    float64 `json:"avoidanceForward"`
	SwimVelocity        float64 `json:"swimVelocity"`
	ScanDistance        float64 `json:"scanDistance"`
	AvoidanceIterations float64 `json:"avoidanceIterations"`
}

type SwimInSchool struct {
	EvaluatePriority         float64 `json:"evaluatePriority"`
	BreakDistance            float64 `json:"breakDistance"`
	PercentFindLeaderRespond float64 `json:"percentFindLeaderRespond"`
	ChanceLoseLeader         float64 `json:"chanceLoseLeader"`
	SchoolSize               float64 `json:"schoolSize"`
	SwimVelocity             float64 `json:"swimVelocity"`
	SwimInterval             float64 `json:"swimInterval"`
}

// SwimInSchoolFieldSetter повторно выставляет поля стаи после загрузки,
// хост их сбрасывает при сериализации.
type SwimInSchoolFieldSetter struct {
	Behaviour                *SwimInSchool `json:"-"`
	BreakDistance            float64       `json:"breakDistance"`
	ChanceLoseLeader         float64       `json:"chanceLoseLeader"`
	PercentFindLeaderRespond float64       `json:"percentFindLeaderRespond"`
}

// Apply переносит сохранённые значения обратно в поведение.
func (s *SwimInSchoolFieldSetter) Apply() {
	if s.Behaviour == nil {
		return
	}
	s.Behaviour.BreakDistance = s.BreakDistance
	s.Behaviour.ChanceLoseLeader = s.ChanceLoseLeader
	s.Behaviour.PercentFindLeaderRespond = s.PercentFindLeaderRespond
}
