package domain

import (
	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/scene"
)

// CreatureTemplate - декларативное описание существа.
// Каждый слот-указатель опционален: nil означает «не добавлять поведение».
type CreatureTemplate struct {
	Model          *scene.Node                `json:"-" yaml:"-"`
	PhysicMaterial *components.PhysicMaterial `json:"physicMaterial,omitempty" yaml:"physicMaterial,omitempty"`

	LocomotionData        *LocomotionData        `json:"locomotion,omitempty" yaml:"locomotion"`
	SwimBehaviourData     *SwimBehaviourData     `json:"swimBehaviour,omitempty" yaml:"swimBehaviour"`
	AnimateByVelocityData *AnimateByVelocityData `json:"animateByVelocity,omitempty" yaml:"animateByVelocity"`
	SwimRandomData        *SwimRandomData        `json:"swimRandom,omitempty" yaml:"swimRandom"`
	StayAtLeashData       *StayAtLeashData       `json:"stayAtLeash,omitempty" yaml:"stayAtLeash"`
	AvoidObstaclesData    *AvoidObstaclesData    `json:"avoidObstacles,omitempty" yaml:"avoidObstacles"`
	AvoidTerrainData      *AvoidTerrainData      `json:"avoidTerrain,omitempty" yaml:"avoidTerrain"`
	SwimInSchoolData      *SwimInSchoolData      `json:"swimInSchool,omitempty" yaml:"swimInSchool"`

	FleeWhenScaredData *FleeWhenScaredData `json:"fleeWhenScared,omitempty" yaml:"fleeWhenScared"`
	FleeOnDamageData   *FleeOnDamageData   `json:"fleeOnDamage,omitempty" yaml:"fleeOnDamage"`
	ScareableData      *ScareableData      `json:"scareable,omitempty" yaml:"scareable"`

	AggressiveToPilotingVehicleData *AggressiveToPilotingVehicleData `json:"aggressiveToPilotingVehicle,omitempty" yaml:"aggressiveToPilotingVehicle"`
	AggressiveWhenSeeTargetList     []AggressiveWhenSeeTargetData    `json:"aggressiveWhenSeeTarget,omitempty" yaml:"aggressiveWhenSeeTarget"`
	AttackLastTargetData            *AttackLastTargetData            `json:"attackLastTarget,omitempty" yaml:"attackLastTarget"`
	AttackCyclopsData               *AttackCyclopsData               `json:"attackCyclops,omitempty" yaml:"attackCyclops"`

	PickupableFishData *PickupableFishData `json:"pickupable,omitempty" yaml:"pickupable"`
	EdibleData         *EdibleData         `json:"edible,omitempty" yaml:"edible"`

	RespawnData      RespawnData               `json:"respawn" yaml:"respawn"`
	TraitsData       CreatureTraitsData        `json:"traits" yaml:"traits"`
	BehaviourLODData *BehaviourLODData         `json:"behaviourLod,omitempty" yaml:"behaviourLod"`
	LiveMixinData    *components.LiveMixinData `json:"health,omitempty" yaml:"health"`

	// Задаётся только через SetWaterParkCreatureData.
	WaterParkCreatureData *components.WaterParkCreatureData `json:"waterPark,omitempty" yaml:"-"`

	Mass                 float64           `json:"mass" yaml:"mass"`
	EyeFOV               float64           `json:"eyeFOV" yaml:"eyeFOV"`
	AcidImmune           bool              `json:"acidImmune" yaml:"acidImmune"`
	BioReactorCharge     float64           `json:"bioReactorCharge" yaml:"bioReactorCharge"`
	SurfaceType          enums.SurfaceType `json:"surfaceType" yaml:"surfaceType"`
	CanBeInfected        bool              `json:"canBeInfected" yaml:"canBeInfected"`
	ScannerRoomScannable bool              `json:"scannerRoomScannable" yaml:"scannerRoomScannable"`
	SizeDistribution     types.Curve       `json:"sizeDistribution" yaml:"sizeDistribution"`
	CellLevel            enums.CellLevel   `json:"cellLevel" yaml:"cellLevel"`

	BehaviourType  enums.BehaviourType  `json:"behaviourType" yaml:"behaviourType"`
	EcoTargetType  enums.EcoTargetType  `json:"ecoTargetType" yaml:"ecoTargetType"`
	ItemSoundsType enums.ItemSoundsType `json:"itemSoundsType" yaml:"itemSoundsType"`

	// CreatureComponentType создаёт главный контроллер. nil, обычный Creature.
	CreatureComponentType components.ControllerFactory `json:"-" yaml:"-"`

	// TechTypeToClone - если задан, префаб строится клонированием этого типа.
	TechTypeToClone types.TechType `json:"techTypeToClone" yaml:"techTypeToClone"`
}

// NewCreatureTemplate создает шаблон с настройками по умолчанию.
func NewCreatureTemplate(model *scene.Node, behaviour enums.BehaviourType, eco enums.EcoTargetType, maxHealth float64) *CreatureTemplate {
	return &CreatureTemplate{
		Model:             model,
		LocomotionData:    NewLocomotionData(),
		SwimBehaviourData: NewSwimBehaviourData(),
		SwimRandomData:    NewSwimRandomData(0.2, types.Splat(20), 3),
		FleeOnDamageData:  NewFleeOnDamageData(0.8),
		RespawnData:       NewRespawnData(true),
		TraitsData:        CreatureTraitsData{HungerIncreaseRate: 0.1, AggressionDecreaseRate: 0.05, ScaredDecreaseRate: 0.1},
		LiveMixinData:     components.NewLiveMixinData(maxHealth),
		Mass:              10,
		BioReactorCharge:  200,
		SurfaceType:       enums.SurfaceOrganic,
		CanBeInfected:     true,
		SizeDistribution:  types.FlatCurve(1),
		CellLevel:         enums.CellLevelMedium,
		BehaviourType:     behaviour,
		EcoTargetType:     eco,
		ItemSoundsType:    enums.ItemSoundsFish,
	}
}

// AddAggressiveWhenSeeTargetData дописывает цель в список агрессии.
func (t *CreatureTemplate) AddAggressiveWhenSeeTargetData(data AggressiveWhenSeeTargetData) *CreatureTemplate {
	t.AggressiveWhenSeeTargetList = append(t.AggressiveWhenSeeTargetList, data)
	return t
}

// SetCreatureComponentType заменяет фабрику главного контроллера.
func (t *CreatureTemplate) SetCreatureComponentType(factory components.ControllerFactory) *CreatureTemplate {
	t.CreatureComponentType = factory
	return t
}

// ControllerFactory возвращает фабрику контроллера с учётом значения по умолчанию.
func (t *CreatureTemplate) ControllerFactory() components.ControllerFactory {
	if t.CreatureComponentType == nil {
		return components.NewCreature
	}
	return t.CreatureComponentType
}

// BehaviourLOD возвращает пороги LOD, подставляя значения по умолчанию.
func (t *CreatureTemplate) BehaviourLOD() BehaviourLODData {
	if t.BehaviourLODData == nil {
		return DefaultBehaviourLOD
	}
	return *t.BehaviourLODData
}

// SetupPreyEssentials настраивает типичную мелкую добычу одним вызовом:
// пугливость, бегство, подбор и съедобность.
func (t *CreatureTemplate) SetupPreyEssentials(fleeVelocity float64, pickup *PickupableFishData, edible *EdibleData) *CreatureTemplate {
	t.ScareableData = NewScareableData()
	t.FleeWhenScaredData = NewFleeWhenScaredData(0.8, fleeVelocity)
	t.PickupableFishData = pickup
	t.EdibleData = edible
	return t
}

// HeldModelNames возвращает имена мировой и view-модели, если существо можно держать.
func (t *CreatureTemplate) HeldModelNames() (world, view string) {
	if t.PickupableFishData == nil {
		return "", ""
	}
	return t.PickupableFishData.WorldModelName, t.PickupableFishData.ViewModelName
}
