package assembly

import (
	"creature-forge/internal/components"
	"creature-forge/internal/scene"
)

// Capability - ключ компонента в таблице сборки.
type Capability string

const (
	CapPrefabIdentifier            Capability = "PrefabIdentifier"
	CapTechTag                     Capability = "TechTag"
	CapLargeWorldEntity            Capability = "LargeWorldEntity"
	CapEntityTag                   Capability = "EntityTag"
	CapSkyApplier                  Capability = "SkyApplier"
	CapEcoTarget                   Capability = "EcoTarget"
	CapVFXSurface                  Capability = "VFXSurface"
	CapBehaviourLOD                Capability = "BehaviourLOD"
	CapAnimator                    Capability = "Animator"
	CapRigidbody                   Capability = "Rigidbody"
	CapWorldForces                 Capability = "WorldForces"
	CapAnimateByVelocity           Capability = "AnimateByVelocity"
	CapLocomotion                  Capability = "Locomotion"
	CapSplineFollowing             Capability = "SplineFollowing"
	CapSwimBehaviour               Capability = "SwimBehaviour"
	CapSwimRandom                  Capability = "SwimRandom"
	CapStayAtLeashPosition         Capability = "StayAtLeashPosition"
	CapLiveMixin                   Capability = "LiveMixin"
	CapInfectedMixin               Capability = "InfectedMixin"
	CapCreature                    Capability = "Creature"
	CapEatable                     Capability = "Eatable"
	CapCreatureDeath               Capability = "CreatureDeath"
	CapDeadAnimationOnEnable       Capability = "DeadAnimationOnEnable"
	CapCreatureFlinch              Capability = "CreatureFlinch"
	CapRemoveSoundsOnKill          Capability = "RemoveSoundsOnKill"
	CapSoundOnDamage               Capability = "SoundOnDamage"
	CapCreatureFear                Capability = "CreatureFear"
	CapFleeWhenScared              Capability = "FleeWhenScared"
	CapFleeOnDamage                Capability = "FleeOnDamage"
	CapScareable                   Capability = "Scareable"
	CapLastTarget                  Capability = "LastTarget"
	CapAttackLastTarget            Capability = "AttackLastTarget"
	CapAggressiveWhenSeeTarget     Capability = "AggressiveWhenSeeTarget"
	CapAttackCyclops               Capability = "AttackCyclops"
	CapAggressiveToPilotingVehicle Capability = "AggressiveToPilotingVehicle"
	CapPickupable                  Capability = "Pickupable"
	CapHeldFish                    Capability = "HeldFish"
	CapFPModel                     Capability = "FPModel"
	CapAquariumFish                Capability = "AquariumFish"
	CapAvoidObstacles              Capability = "AvoidObstacles"
	CapAvoidTerrain                Capability = "AvoidTerrain"
	CapSwimInSchool                Capability = "SwimInSchool"
	CapSwimInSchoolFieldSetter     Capability = "SwimInSchoolFieldSetter"
	CapWaterParkCreature           Capability = "WaterParkCreature"
	CapResourceTracker             Capability = "ResourceTracker"
	CapResourceTrackerUpdater      Capability = "ResourceTrackerUpdater"
)

// AllCapabilities - все ключи в порядке сборки.
var AllCapabilities = []Capability{
	CapPrefabIdentifier, CapTechTag, CapLargeWorldEntity, CapEntityTag,
	CapSkyApplier, CapEcoTarget, CapVFXSurface, CapBehaviourLOD,
	CapAnimator,
	CapRigidbody, CapWorldForces,
	CapAnimateByVelocity,
	CapLocomotion, CapSplineFollowing, CapSwimBehaviour,
	CapSwimRandom, CapStayAtLeashPosition,
	CapLiveMixin,
	CapInfectedMixin,
	CapCreature,
	CapEatable,
	CapCreatureDeath, CapDeadAnimationOnEnable, CapCreatureFlinch, CapRemoveSoundsOnKill, CapSoundOnDamage,
	CapCreatureFear, CapFleeWhenScared, CapFleeOnDamage, CapScareable,
	CapLastTarget, CapAttackLastTarget, CapAggressiveWhenSeeTarget, CapAttackCyclops, CapAggressiveToPilotingVehicle,
	CapPickupable, CapHeldFish, CapFPModel, CapAquariumFish,
	CapAvoidObstacles, CapAvoidTerrain,
	CapSwimInSchool, CapSwimInSchoolFieldSetter, CapWaterParkCreature, CapResourceTracker, CapResourceTrackerUpdater,
}

// Components - таблица компонентов, прикреплённых за один проход сборки.
// Живёт только на время сборки и ModifyPrefab. nil, компонента нет.
type Components struct {
	PrefabIdentifier *components.PrefabIdentifier
	TechTag          *components.TechTag
	LargeWorldEntity *components.LargeWorldEntity
	EntityTag        *components.EntityTag

	SkyApplier   *components.SkyApplier
	EcoTarget    *components.EcoTarget
	VFXSurface   *components.VFXSurface
	BehaviourLOD *components.BehaviourLOD
	Animator     *components.Animator

	Rigidbody   *components.Rigidbody
	WorldForces *components.WorldForces

	AnimateByVelocity   *components.AnimateByVelocity
	Locomotion          *components.Locomotion
	SplineFollowing     *components.SplineFollowing
	SwimBehaviour       *components.SwimBehaviour
	SwimRandom          *components.SwimRandom
	StayAtLeashPosition *components.StayAtLeashPosition

	LiveMixin     *components.LiveMixin
	InfectedMixin *components.InfectedMixin
	Creature      components.Controller
	Eatable       *components.Eatable

	CreatureDeath         *components.CreatureDeath
	DeadAnimationOnEnable *components.DeadAnimationOnEnable
	CreatureFlinch        *components.CreatureFlinch
	RemoveSoundsOnKill    *components.RemoveSoundsOnKill
	SoundOnDamage         *components.SoundOnDamage

	CreatureFear   *components.CreatureFear
	FleeWhenScared *components.FleeWhenScared
	FleeOnDamage   *components.FleeOnDamage
	Scareable      *components.Scareable

	LastTarget                  *components.LastTarget
	AttackLastTarget            *components.AttackLastTarget
	AggressiveWhenSeeTarget     []*components.AggressiveWhenSeeTarget
	AttackCyclops               *components.AttackCyclops
	AggressiveToPilotingVehicle *components.AggressiveToPilotingVehicle

	Pickupable   *components.Pickupable
	HeldFish     *components.HeldFish
	FPModel      *components.FPModel
	AquariumFish *components.AquariumFish

	AvoidObstacles *components.AvoidObstacles
	AvoidTerrain   *components.AvoidTerrain

	SwimInSchool            *components.SwimInSchool
	SwimInSchoolFieldSetter *components.SwimInSchoolFieldSetter
	WaterParkCreature       *components.WaterParkCreature
	ResourceTracker         *components.ResourceTracker
	ResourceTrackerUpdater  *components.ResourceTrackerUpdater

	// Найденные по имени подмодели рыбы в руках. Не компоненты.
	WorldModel *scene.Node
	ViewModel  *scene.Node
}

// present превращает nil-указатель в nil-интерфейс.
func present[T any](p *T) scene.Component {
	if p == nil {
		return nil
	}
	return p
}

// Get возвращает компонент по ключу или nil.
// Для AggressiveWhenSeeTarget возвращается весь список.
func (c *Components) Get(capability Capability) scene.Component {
	switch capability {
	case CapPrefabIdentifier:
		return present(c.PrefabIdentifier)
	case CapTechTag:
		return present(c.TechTag)
	case CapLargeWorldEntity:
		return present(c.LargeWorldEntity)
	case CapEntityTag:
		return present(c.EntityTag)
	case CapSkyApplier:
		return present(c.SkyApplier)
	case CapEcoTarget:
		return present(c.EcoTarget)
	case CapVFXSurface:
		return present(c.VFXSurface)
	case CapBehaviourLOD:
		return present(c.BehaviourLOD)
	case CapAnimator:
		return present(c.Animator)
	case CapRigidbody:
		return present(c.Rigidbody)
	case CapWorldForces:
		return present(c.WorldForces)
	case CapAnimateByVelocity:
		return present(c.AnimateByVelocity)
	case CapLocomotion:
		return present(c.Locomotion)
	case CapSplineFollowing:
		return present(c.SplineFollowing)
	case CapSwimBehaviour:
		return present(c.SwimBehaviour)
	case CapSwimRandom:
		return present(c.SwimRandom)
	case CapStayAtLeashPosition:
		return present(c.StayAtLeashPosition)
	case CapLiveMixin:
		return present(c.LiveMixin)
	case CapInfectedMixin:
		return present(c.InfectedMixin)
	case CapCreature:
		if c.Creature == nil {
			return nil
		}
		return c.Creature
	case CapEatable:
		return present(c.Eatable)
	case CapCreatureDeath:
		return present(c.CreatureDeath)
	case CapDeadAnimationOnEnable:
		return present(c.DeadAnimationOnEnable)
	case CapCreatureFlinch:
		return present(c.CreatureFlinch)
	case CapRemoveSoundsOnKill:
		return present(c.RemoveSoundsOnKill)
	case CapSoundOnDamage:
		return present(c.SoundOnDamage)
	case CapCreatureFear:
		return present(c.CreatureFear)
	case CapFleeWhenScared:
		return present(c.FleeWhenScared)
	case CapFleeOnDamage:
		return present(c.FleeOnDamage)
	case CapScareable:
		return present(c.Scareable)
	case CapLastTarget:
		return present(c.LastTarget)
	case CapAttackLastTarget:
		return present(c.AttackLastTarget)
	case CapAggressiveWhenSeeTarget:
		if len(c.AggressiveWhenSeeTarget) == 0 {
			return nil
		}
		return c.AggressiveWhenSeeTarget
	case CapAttackCyclops:
		return present(c.AttackCyclops)
	case CapAggressiveToPilotingVehicle:
		return present(c.AggressiveToPilotingVehicle)
	case CapPickupable:
		return present(c.Pickupable)
	case CapHeldFish:
		return present(c.HeldFish)
	case CapFPModel:
		return present(c.FPModel)
	case CapAquariumFish:
		return present(c.AquariumFish)
	case CapAvoidObstacles:
		return present(c.AvoidObstacles)
	case CapAvoidTerrain:
		return present(c.AvoidTerrain)
	case CapSwimInSchool:
		return present(c.SwimInSchool)
	case CapSwimInSchoolFieldSetter:
		return present(c.SwimInSchoolFieldSetter)
	case CapWaterParkCreature:
		return present(c.WaterParkCreature)
	case CapResourceTracker:
		return present(c.ResourceTracker)
	case CapResourceTrackerUpdater:
		return present(c.ResourceTrackerUpdater)
	}
	return nil
}

// Has - есть ли компонент в таблице.
func (c *Components) Has(capability Capability) bool {
	return c.Get(capability) != nil
}

// Present перечисляет ключи присутствующих компонентов в порядке сборки.
func (c *Components) Present() []Capability {
	var out []Capability
	for _, capability := range AllCapabilities {
		if c.Has(capability) {
			out = append(out, capability)
		}
	}
	return out
}
