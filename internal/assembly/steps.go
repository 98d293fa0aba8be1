package assembly

import (
	"errors"
	"fmt"

	"creature-forge/internal/components"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/domain"
	"creature-forge/internal/scene"
)

// pipeline - порядок шагов сборки. Шаг читает только то, что записали
// шаги раньше него; phase объединяет шаги одного этапа, от идентичности
// префаба до аквариума.
func pipeline() []step {
	return []step{
		// 1. Идентичность
		{phase: 1, name: "identity", run: stepIdentity},

		// 2. Окружение
		{phase: 2, name: "sky-applier", run: stepSkyApplier},
		{phase: 2, name: "eco-target", when: func(p *pass) bool { return p.tmpl.EcoTargetType != enums.EcoTargetNone }, run: stepEcoTarget},
		{phase: 2, name: "vfx-surface", when: func(p *pass) bool { return p.tmpl.SurfaceType != enums.SurfaceNone }, run: stepVFXSurface},
		{phase: 2, name: "behaviour-lod", run: stepBehaviourLOD},

		// 3. Аниматор
		{phase: 3, name: "animator", run: stepAnimator},

		// 4. Физика
		{phase: 4, name: "rigidbody", run: stepRigidbody},
		{phase: 4, name: "physic-material", run: stepPhysicMaterial},
		{phase: 4, name: "world-forces", requires: []Capability{CapRigidbody}, run: stepWorldForces},

		// 5. Анимация по скорости (рыба в руках включает её всегда)
		{phase: 5, name: "animate-by-velocity", when: func(p *pass) bool {
			return p.tmpl.AnimateByVelocityData != nil || p.tmpl.PickupableFishData != nil
		}, run: stepAnimateByVelocity},

		// 6. Каскад движения
		{phase: 6, name: "locomotion", requires: []Capability{CapRigidbody},
			when: func(p *pass) bool { return p.tmpl.LocomotionData != nil }, run: stepLocomotion},
		{phase: 6, name: "spline-following", requires: []Capability{CapLocomotion}, run: stepSplineFollowing},
		{phase: 6, name: "swim-behaviour", requires: []Capability{CapSplineFollowing},
			when: func(p *pass) bool { return p.tmpl.SwimBehaviourData != nil }, run: stepSwimBehaviour},

		// 7. Блуждание
		{phase: 7, name: "swim-random", when: func(p *pass) bool { return p.tmpl.SwimRandomData != nil }, run: stepSwimRandom},
		{phase: 7, name: "stay-at-leash", when: func(p *pass) bool { return p.tmpl.StayAtLeashData != nil }, run: stepStayAtLeash},

		// 8. Здоровье
		{phase: 8, name: "live-mixin", run: stepLiveMixin},

		// 9. Заражение
		{phase: 9, name: "infected-mixin", when: func(p *pass) bool { return p.tmpl.CanBeInfected }, run: stepInfectedMixin},

		// 10. Контроллер
		{phase: 10, name: "creature", run: stepCreature},

		// 11. Еда
		{phase: 11, name: "eatable", when: func(p *pass) bool { return p.tmpl.EdibleData != nil }, run: stepEatable},

		// 12. Смерть и урон
		{phase: 12, name: "creature-death", requires: []Capability{CapLiveMixin}, run: stepCreatureDeath},
		{phase: 12, name: "dead-animation-on-enable", requires: []Capability{CapCreature, CapLiveMixin}, run: stepDeadAnimation},
		{phase: 12, name: "creature-flinch", run: stepFlinch},
		{phase: 12, name: "remove-sounds-on-kill", run: stepRemoveSoundsOnKill},
		{phase: 12, name: "sound-on-damage", run: stepSoundOnDamage},

		// 13. Страх
		{phase: 13, name: "creature-fear", run: stepCreatureFear},
		{phase: 13, name: "flee-when-scared", requires: []Capability{CapCreatureFear},
			when: func(p *pass) bool { return p.tmpl.FleeWhenScaredData != nil }, run: stepFleeWhenScared},
		{phase: 13, name: "flee-on-damage", when: func(p *pass) bool { return p.tmpl.FleeOnDamageData != nil }, run: stepFleeOnDamage},
		{phase: 13, name: "scareable", requires: []Capability{CapCreatureFear, CapCreature},
			when: func(p *pass) bool { return p.tmpl.ScareableData != nil }, run: stepScareable},

		// 14. Агрессия
		{phase: 14, name: "last-target", run: stepLastTarget},
		{phase: 14, name: "attack-last-target", requires: []Capability{CapLastTarget},
			when: func(p *pass) bool { return p.tmpl.AttackLastTargetData != nil }, run: stepAttackLastTarget},
		{phase: 14, name: "aggressive-when-see-target", requires: []Capability{CapLastTarget, CapCreature},
			when: func(p *pass) bool { return len(p.tmpl.AggressiveWhenSeeTargetList) > 0 }, run: stepAggressiveWhenSeeTarget},
		{phase: 14, name: "attack-cyclops", requires: []Capability{CapLastTarget},
			when: func(p *pass) bool { return p.tmpl.AttackCyclopsData != nil }, run: stepAttackCyclops},
		{phase: 14, name: "aggressive-to-piloting-vehicle", requires: []Capability{CapLastTarget, CapCreature},
			when: func(p *pass) bool { return p.tmpl.AggressiveToPilotingVehicleData != nil }, run: stepAggressiveToPilotingVehicle},

		// 15. Подбор
		{phase: 15, name: "pickupable", when: func(p *pass) bool { return p.tmpl.PickupableFishData != nil }, run: stepPickupable},
		{phase: 15, name: "held-fish", requires: []Capability{CapPickupable}, when: canBeHeld, run: stepHeldFish},
		{phase: 15, name: "fp-model", requires: []Capability{CapHeldFish}, when: func(p *pass) bool {
			return canBeHeld(p) && p.tmpl.PickupableFishData.ViewModelName != ""
		}, run: stepFPModel},

		// 16. Обход препятствий
		{phase: 16, name: "avoid-obstacles", requires: []Capability{CapLastTarget},
			when: func(p *pass) bool { return p.tmpl.AvoidObstaclesData != nil }, run: stepAvoidObstacles},
		{phase: 16, name: "avoid-terrain", when: func(p *pass) bool { return p.tmpl.AvoidTerrainData != nil }, run: stepAvoidTerrain},

		// 17. Прочее
		{phase: 17, name: "swim-in-school", when: func(p *pass) bool { return p.tmpl.SwimInSchoolData != nil }, run: stepSwimInSchool},
		{phase: 17, name: "water-park-creature", when: func(p *pass) bool { return p.tmpl.WaterParkCreatureData != nil }, run: stepWaterParkCreature},
		{phase: 17, name: "resource-tracker", requires: []Capability{CapPrefabIdentifier, CapRigidbody},
			when: func(p *pass) bool { return p.tmpl.ScannerRoomScannable }, run: stepResourceTracker},
	}
}

func canBeHeld(p *pass) bool {
	return p.tmpl.PickupableFishData != nil && p.tmpl.PickupableFishData.CanBeHeld
}

// --- 1 ---

func stepIdentity(p *pass) error {
	basic := AddBasicComponents(p.root, p.id.ClassID, p.id.TechType, p.tmpl.CellLevel)
	p.c.PrefabIdentifier = basic.PrefabIdentifier
	p.c.TechTag = basic.TechTag
	p.c.LargeWorldEntity = basic.LargeWorldEntity

	et := scene.Ensure[components.EntityTag](p.root)
	et.SlotType = enums.SlotCreature
	p.c.EntityTag = et
	return nil
}

// --- 2 ---

func stepSkyApplier(p *pass) error {
	worldName, viewName := p.tmpl.HeldModelNames()
	if worldName == "" {
		p.c.SkyApplier = addSkyApplier(p.root)
	}
	if worldName == "" && viewName == "" {
		return nil
	}

	world, view := p.heldModels()
	var errs []error
	if worldName != "" {
		if world != nil {
			p.c.SkyApplier = addSkyApplier(world)
		} else {
			errs = append(errs, errNotFound("world model", worldName))
		}
	}
	if viewName != "" {
		if view != nil {
			addSkyApplier(view)
		} else {
			errs = append(errs, errNotFound("view model", viewName))
		}
	}
	return errors.Join(errs...)
}

func addSkyApplier(n *scene.Node) *components.SkyApplier {
	sa := scene.Add[components.SkyApplier](n)
	sa.Renderers = scene.InChildren[components.Renderer](n, true)
	sa.Dynamic = true
	return sa
}

func stepEcoTarget(p *pass) error {
	et := scene.Ensure[components.EcoTarget](p.root)
	et.Type = p.tmpl.EcoTargetType
	p.c.EcoTarget = et
	return nil
}

func stepVFXSurface(p *pass) error {
	vs := scene.Ensure[components.VFXSurface](p.root)
	vs.SurfaceType = p.tmpl.SurfaceType
	p.c.VFXSurface = vs
	return nil
}

func stepBehaviourLOD(p *pass) error {
	d := p.tmpl.BehaviourLOD()
	lod := scene.Ensure[components.BehaviourLOD](p.root)
	lod.VeryCloseThreshold = d.VeryClose
	lod.CloseThreshold = d.Close
	lod.FarThreshold = d.Far
	p.c.BehaviourLOD = lod
	return nil
}

// --- 3 ---

func stepAnimator(p *pass) error {
	p.c.Animator = scene.FirstInChildren[components.Animator](p.root)
	if p.c.Animator == nil {
		return errors.New("no animator found in prefab hierarchy")
	}
	return nil
}

// --- 4 ---

func stepRigidbody(p *pass) error {
	rb := scene.Ensure[components.Rigidbody](p.root)
	rb.UseGravity = false
	rb.Mass = p.tmpl.Mass
	p.c.Rigidbody = rb
	return nil
}

func stepPhysicMaterial(p *pass) error {
	mat := p.tmpl.PhysicMaterial
	if mat == nil {
		mat = components.Frictionless()
	}
	for _, col := range scene.InChildren[components.Collider](p.root, true) {
		col.SharedMaterial = mat
	}
	return nil
}

func stepWorldForces(p *pass) error {
	wf := scene.Ensure[components.WorldForces](p.root)
	wf.UseRigidbody = p.c.Rigidbody
	wf.HandleGravity = true
	wf.AboveWaterGravity = components.AboveWaterGravity
	wf.UnderwaterGravity = components.UnderwaterGravity
	wf.AboveWaterDrag = components.AboveWaterDrag
	wf.UnderwaterDrag = components.UnderwaterDrag
	p.c.WorldForces = wf
	return nil
}

// --- 5 ---

// defaultHeldFishMaxSpeed - скорость анимации для рыбы в руках без своего слота.
const defaultHeldFishMaxSpeed = 3

func stepAnimateByVelocity(p *pass) error {
	d := p.tmpl.AnimateByVelocityData
	if d == nil {
		d = domain.NewAnimateByVelocityData(defaultHeldFishMaxSpeed)
	}

	abv := scene.Ensure[components.AnimateByVelocity](p.root)
	abv.Animator = p.c.Animator
	abv.Root = p.root
	if p.tmpl.PickupableFishData != nil {
		if world, _ := p.heldModels(); world != nil {
			abv.Root = world
		}
	}
	abv.LevelOfDetail = p.c.BehaviourLOD
	abv.AnimationMoveMaxSpeed = d.AnimationMoveMaxSpeed
	abv.AnimationMaxPitch = d.AnimationMaxPitch
	abv.AnimationMaxTilt = d.AnimationMaxTilt
	abv.UseStrafeAnimation = d.UseStrafeAnimation
	abv.DampTime = d.DampTime
	p.c.AnimateByVelocity = abv
	return nil
}

// --- 6 ---

func stepLocomotion(p *pass) error {
	d := p.tmpl.LocomotionData
	loc := scene.Ensure[components.Locomotion](p.root)
	loc.LevelOfDetail = p.c.BehaviourLOD
	loc.UseRigidbody = p.c.Rigidbody
	loc.MaxAcceleration = d.MaxAcceleration
	loc.ForwardRotationSpeed = d.ForwardRotationSpeed
	loc.UpRotationSpeed = d.UpRotationSpeed
	loc.DriftFactor = d.DriftFactor
	loc.CanMoveAboveWater = d.CanMoveAboveWater
	loc.CanWalkOnSurface = d.CanWalkOnSurface
	loc.FreezeHorizontalRotation = d.FreezeHorizontalRotation
	p.c.Locomotion = loc
	return nil
}

func stepSplineFollowing(p *pass) error {
	sf := scene.Ensure[components.SplineFollowing](p.root)
	sf.UseRigidbody = p.c.Rigidbody
	sf.Locomotion = p.c.Locomotion
	sf.LevelOfDetail = p.c.BehaviourLOD
	p.c.SplineFollowing = sf
	return nil
}

func stepSwimBehaviour(p *pass) error {
	sb := scene.Ensure[components.SwimBehaviour](p.root)
	sb.TurnSpeed = p.tmpl.SwimBehaviourData.TurnSpeed
	sb.SplineFollowing = p.c.SplineFollowing
	p.c.SwimBehaviour = sb
	return nil
}

// --- 7 ---

func stepSwimRandom(p *pass) error {
	d := p.tmpl.SwimRandomData
	sr := scene.Ensure[components.SwimRandom](p.root)
	sr.EvaluatePriority = d.EvaluatePriority
	sr.SwimRadius = d.SwimRadius
	sr.SwimForward = d.SwimForward
	sr.SwimVelocity = d.SwimVelocity
	sr.SwimInterval = d.SwimInterval
	sr.OnSphere = d.OnSphere
	p.c.SwimRandom = sr
	return nil
}

func stepStayAtLeash(p *pass) error {
	d := p.tmpl.StayAtLeashData
	s := scene.Ensure[components.StayAtLeashPosition](p.root)
	s.EvaluatePriority = d.EvaluatePriority
	s.LeashDistance = d.LeashDistance
	s.SwimVelocity = d.SwimVelocity
	s.SwimInterval = d.SwimInterval
	s.MinSwimDuration = d.MinSwimDuration
	p.c.StayAtLeashPosition = s
	return nil
}

// --- 8 ---

func stepLiveMixin(p *pass) error {
	live := scene.Ensure[components.LiveMixin](p.root)
	p.c.LiveMixin = live

	if p.tmpl.LiveMixinData == nil {
		// Ссылка на здоровье нужна следующим шагам даже без данных.
		live.Data = &components.LiveMixinData{}
		live.Health = 0
		return errors.New("template has no health data, attached zero-valued LiveMixin")
	}

	data := *p.tmpl.LiveMixinData
	if data.DamageEffect == nil {
		data.DamageEffect = p.refs.GenericCreatureHit
	}
	if data.DeathEffect == nil {
		data.DeathEffect = p.refs.GenericCreatureHit
	}
	if data.ElectricalDamageEffect == nil {
		data.ElectricalDamageEffect = p.refs.ElectrocutedEffect
	}
	live.Data = &data
	live.Health = data.MaxHealth
	return nil
}

// --- 9 ---

func stepInfectedMixin(p *pass) error {
	im := scene.Ensure[components.InfectedMixin](p.root)
	im.Renderers = scene.InChildren[components.Renderer](p.root, true)
	p.c.InfectedMixin = im
	return nil
}

// --- 10 ---

func stepCreature(p *pass) error {
	if p.cloning {
		if existing, ok := scene.Implementing[components.Controller](p.root); ok {
			// Контроллер клонированного префаба уже настроен хостом.
			p.c.Creature = existing
			return nil
		}
		p.log.Warn("Cloned prefab has no creature controller, constructing a new one")
	}

	ctrl := p.tmpl.ControllerFactory()()
	if ctrl == nil || ctrl.Base() == nil {
		return fmt.Errorf("controller factory returned nil")
	}
	scene.Attach(p.root, ctrl)

	base := ctrl.Base()
	traits := p.tmpl.TraitsData
	base.Aggression = components.CreatureTrait{Value: 0, Falloff: traits.AggressionDecreaseRate}
	base.Hunger = components.CreatureTrait{Value: 0, Falloff: -traits.HungerIncreaseRate}
	base.Scared = components.CreatureTrait{Value: 0, Falloff: traits.ScaredDecreaseRate}
	base.LiveMixin = p.c.LiveMixin
	base.TraitsAnimator = p.c.Animator
	base.SizeDistribution = p.tmpl.SizeDistribution
	base.EyeFOV = p.tmpl.EyeFOV
	p.c.Creature = ctrl
	return nil
}

// --- 11 ---

func stepEatable(p *pass) error {
	p.c.Eatable = AddEatable(p.root, p.tmpl.EdibleData)
	return nil
}

// --- 12 ---

func stepCreatureDeath(p *pass) error {
	d := p.tmpl.RespawnData
	cd := scene.Ensure[components.CreatureDeath](p.root)
	cd.UseRigidbody = p.c.Rigidbody
	cd.LiveMixin = p.c.LiveMixin
	cd.Eatable = p.c.Eatable
	cd.RespawnerPrefab = p.refs.RespawnerPrefab
	cd.Respawn = d.Respawn
	cd.RespawnOnlyIfKilledByCreature = d.RespawnOnlyIfKilledByCreature
	cd.RespawnInterval = d.RespawnInterval
	p.c.CreatureDeath = cd

	if d.Respawn && cd.RespawnerPrefab == nil {
		p.log.Warn("Respawn is enabled but the respawner prefab is not loaded")
	}
	return nil
}

func stepDeadAnimation(p *pass) error {
	da := scene.Ensure[components.DeadAnimationOnEnable](p.root)
	da.Enabled = true
	da.Animator = p.c.Creature.Base().TraitsAnimator
	da.LiveMixin = p.c.LiveMixin
	p.c.DeadAnimationOnEnable = da
	return nil
}

func stepFlinch(p *pass) error {
	f := scene.Ensure[components.CreatureFlinch](p.root)
	f.Animator = p.c.Animator
	p.c.CreatureFlinch = f
	return nil
}

func stepRemoveSoundsOnKill(p *pass) error {
	p.c.RemoveSoundsOnKill = scene.Add[components.RemoveSoundsOnKill](p.root)
	return nil
}

func stepSoundOnDamage(p *pass) error {
	s := scene.Ensure[components.SoundOnDamage](p.root)
	s.DamageType = enums.DamageCollide
	s.Sound = components.FishSplatSound
	p.c.SoundOnDamage = s
	return nil
}

// --- 13 ---

func stepCreatureFear(p *pass) error {
	p.c.CreatureFear = scene.Ensure[components.CreatureFear](p.root)
	return nil
}

func stepFleeWhenScared(p *pass) error {
	d := p.tmpl.FleeWhenScaredData
	f := scene.Ensure[components.FleeWhenScared](p.root)
	f.CreatureFear = p.c.CreatureFear
	f.Exhausted = components.CreatureTrait{Value: 0, Falloff: components.ExhaustedFalloff}
	f.EvaluatePriority = d.EvaluatePriority
	f.SwimVelocity = d.SwimVelocity
	f.SwimInterval = d.SwimInterval
	f.AvoidanceIterations = d.AvoidanceIterations
	f.SwimTiredness = d.SwimTiredness
	f.TiredVelocity = d.TiredVelocity
	f.SwimExhaustion = d.SwimExhaustion
	f.ExhaustedVelocity = d.ExhaustedVelocity
	p.c.FleeWhenScared = f
	return nil
}

func stepFleeOnDamage(p *pass) error {
	d := p.tmpl.FleeOnDamageData
	f := scene.Ensure[components.FleeOnDamage](p.root)
	f.EvaluatePriority = d.EvaluatePriority
	f.DamageThreshold = d.DamageThreshold
	f.FleeDuration = d.FleeDuration
	f.MinFleeDistance = d.MinFleeDistance
	f.SwimVelocity = d.SwimVelocity
	f.SwimInterval = d.SwimInterval
	p.c.FleeOnDamage = f
	return nil
}

func stepScareable(p *pass) error {
	d := p.tmpl.ScareableData
	s := scene.Ensure[components.Scareable](p.root)
	s.TargetType = d.TargetType
	s.CreatureFear = p.c.CreatureFear
	s.Creature = p.c.Creature
	// Без слота бегства ссылка остаётся пустой.
	s.FleeAction = p.c.FleeWhenScared
	s.ScarePerSecond = d.ScarePerSecond
	s.MaxRangeScalar = d.MaxRangeScalar
	s.MinMass = d.MinMass
	s.UpdateTargetInterval = d.UpdateTargetInterval
	s.UpdateRange = d.UpdateRange
	p.c.Scareable = s
	return nil
}

// --- 14 ---

func stepLastTarget(p *pass) error {
	p.c.LastTarget = scene.Ensure[components.LastTarget](p.root)
	return nil
}

func stepAttackLastTarget(p *pass) error {
	d := p.tmpl.AttackLastTargetData
	a := scene.Ensure[components.AttackLastTarget](p.root)
	a.LastTarget = p.c.LastTarget
	a.EvaluatePriority = d.EvaluatePriority
	a.SwimVelocity = d.SwimVelocity
	a.AggressionThreshold = d.AggressionThreshold
	a.MinAttackDuration = d.MinAttackDuration
	a.MaxAttackDuration = d.MaxAttackDuration
	a.PauseInterval = d.PauseInterval
	a.RememberTargetTime = d.RememberTargetTime
	a.ResetAggressionOnTime = d.ResetAggressionOnTime
	p.c.AttackLastTarget = a
	return nil
}

func stepAggressiveWhenSeeTarget(p *pass) error {
	for _, d := range p.tmpl.AggressiveWhenSeeTargetList {
		a := scene.Add[components.AggressiveWhenSeeTarget](p.root)
		a.LastTarget = p.c.LastTarget
		a.Creature = p.c.Creature
		a.MaxRangeMultiplier = components.MaxRangeMultiplierCurve
		a.DistanceAggressionMultiplier = components.DistanceAggressionMultiplierCurve
		a.TargetType = d.TargetType
		a.AggressionPerSecond = d.AggressionPerSecond
		a.MaxRangeScalar = d.MaxRangeScalar
		a.MaxSearchRings = d.MaxSearchRings
		a.IgnoreSameKind = d.IgnoreSameKind
		a.TargetShouldBeInfected = d.TargetShouldBeInfected
		a.MinimumVelocity = d.MinimumVelocity
		a.HungerThreshold = d.HungerThreshold
		p.c.AggressiveWhenSeeTarget = append(p.c.AggressiveWhenSeeTarget, a)
	}
	return nil
}

func stepAttackCyclops(p *pass) error {
	d := p.tmpl.AttackCyclopsData
	a := scene.Ensure[components.AttackCyclops](p.root)
	a.LastTarget = p.c.LastTarget
	a.EvaluatePriority = d.EvaluatePriority
	a.AggressPerSecond = d.AggressPerSecond
	a.AttackAggressionThreshold = d.AttackAggressionThreshold
	a.AttackPause = d.AttackPause
	a.MaxDistToLeash = d.MaxDistToLeash
	a.SwimVelocity = d.SwimVelocity
	a.AggressiveToNoise = components.CreatureTrait{Value: 0, Falloff: d.AggressionFalloff}
	p.c.AttackCyclops = a
	return nil
}

func stepAggressiveToPilotingVehicle(p *pass) error {
	d := p.tmpl.AggressiveToPilotingVehicleData
	a := scene.Ensure[components.AggressiveToPilotingVehicle](p.root)
	a.LastTarget = p.c.LastTarget
	a.Creature = p.c.Creature
	a.Range = d.Range
	a.AggressionPerSecond = d.AggressionPerSecond
	a.UpdateAggressionInterval = d.UpdateAggressionInterval
	p.c.AggressiveToPilotingVehicle = a
	return nil
}

// --- 15 ---

func stepPickupable(p *pass) error {
	p.c.Pickupable = scene.Ensure[components.Pickupable](p.root)
	return nil
}

func stepHeldFish(p *pass) error {
	scene.Remove[components.DropTool](p.root)

	hf := scene.Ensure[components.HeldFish](p.root)
	hf.SetAnimationTechTypeReference(p.tmpl.PickupableFishData.ReferenceHoldingAnimation)
	hf.MainCollider = scene.Get[components.Collider](p.root)
	hf.Pickupable = p.c.Pickupable
	hf.DrawTime = components.HeldFishDrawTime
	hf.HolsterTime = components.HeldFishHolsterTime
	hf.DropTime = components.HeldFishDropTime
	hf.IKAimRightArm = true
	p.c.HeldFish = hf
	return nil
}

func stepFPModel(p *pass) error {
	data := p.tmpl.PickupableFishData
	world, view := p.heldModels()

	fp := scene.Ensure[components.FPModel](p.root)
	p.c.FPModel = fp

	var errs []error
	fp.PropModel = world
	if world == nil {
		errs = append(errs, errNotFound("world model", data.WorldModelName))
	} else {
		af := scene.Ensure[components.AquariumFish](p.root)
		af.Model = world
		p.c.AquariumFish = af
	}
	fp.ViewModel = view
	if view == nil {
		errs = append(errs, errNotFound("view model", data.ViewModelName))
	}
	return errors.Join(errs...)
}

// --- 16 ---

func stepAvoidObstacles(p *pass) error {
	d := p.tmpl.AvoidObstaclesData
	a := scene.Ensure[components.AvoidObstacles](p.root)
	a.LastTarget = p.c.LastTarget
	a.EvaluatePriority = d.EvaluatePriority
	a.AvoidTerrainOnly = d.AvoidTerrainOnly
	a.AvoidanceIterations = d.AvoidanceIterations
	a.AvoidanceDistance = d.AvoidanceDistance
	a.AvoidanceDuration = d.AvoidanceDuration
	a.ScanInterval = d.ScanInterval
	a.ScanDistance = d.ScanDistance
	a.ScanRadius = d.ScanRadius
	a.SwimVelocity = d.SwimVelocity
	a.SwimInterval = 1
	p.c.AvoidObstacles = a
	return nil
}

func stepAvoidTerrain(p *pass) error {
	d := p.tmpl.AvoidTerrainData
	a := scene.Ensure[components.AvoidTerrain](p.root)
	a.EvaluatePriority = d.EvaluatePriority
	a.AvoidanceDistance = d.AvoidanceDistance
	a.AvoidanceForward = d.AvoidanceForward
	a.SwimVelocity = d.SwimVelocity
	a.ScanDistance = d.ScanDistance
	a.AvoidanceIterations = d.AvoidanceIterations
	p.c.AvoidTerrain = a
	return nil
}

// --- 17 ---

func stepSwimInSchool(p *pass) error {
	d := p.tmpl.SwimInSchoolData
	s := scene.Ensure[components.SwimInSchool](p.root)
	s.EvaluatePriority = d.EvaluatePriority
	s.BreakDistance = d.BreakDistance
	s.PercentFindLeaderRespond = d.PercentFindLeaderRespond
	s.ChanceLoseLeader = d.ChanceLoseLeader
	s.SchoolSize = d.SchoolSize
	s.SwimVelocity = d.SwimVelocity
	s.SwimInterval = d.SwimInterval
	p.c.SwimInSchool = s

	fs := scene.Ensure[components.SwimInSchoolFieldSetter](p.root)
	fs.Behaviour = s
	fs.BreakDistance = d.BreakDistance
	fs.ChanceLoseLeader = d.ChanceLoseLeader
	fs.PercentFindLeaderRespond = d.PercentFindLeaderRespond
	p.c.SwimInSchoolFieldSetter = fs
	return nil
}

func stepWaterParkCreature(p *pass) error {
	data := *p.tmpl.WaterParkCreatureData
	wp := scene.Ensure[components.WaterParkCreature](p.root)
	wp.Data = &data
	p.c.WaterParkCreature = wp
	return nil
}

func stepResourceTracker(p *pass) error {
	rt := scene.Ensure[components.ResourceTracker](p.root)
	rt.PrefabIdentifier = p.c.PrefabIdentifier
	rt.Rigidbody = p.c.Rigidbody
	p.c.ResourceTracker = rt
	p.c.ResourceTrackerUpdater = scene.Ensure[components.ResourceTrackerUpdater](p.root)
	return nil
}
