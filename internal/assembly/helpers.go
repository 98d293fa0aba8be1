package assembly

import (
	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/domain"
	"creature-forge/internal/scene"
	"creature-forge/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BasicComponents - то, что нужно любому префабу для стриминга и сохранения.
type BasicComponents struct {
	PrefabIdentifier *components.PrefabIdentifier
	TechTag          *components.TechTag
	LargeWorldEntity *components.LargeWorldEntity
}

// AddBasicComponents вешает идентификатор с новым id, тег типа и уровень ячейки.
func AddBasicComponents(root *scene.Node, classID string, tt types.TechType, cellLevel enums.CellLevel) BasicComponents {
	pi := scene.Ensure[components.PrefabIdentifier](root)
	pi.ClassID = classID
	pi.ID = uuid.NewString()

	tag := scene.Ensure[components.TechTag](root)
	tag.Type = tt

	lwe := scene.Ensure[components.LargeWorldEntity](root)
	lwe.CellLevel = cellLevel

	return BasicComponents{PrefabIdentifier: pi, TechTag: tag, LargeWorldEntity: lwe}
}

// AddEatable делает объект съедобным. Скорость порчи масштабируется decomposeSpeed.
func AddEatable(root *scene.Node, data *domain.EdibleData) *components.Eatable {
	e := scene.Ensure[components.Eatable](root)
	e.FoodValue = data.FoodAmount
	e.WaterValue = data.WaterAmount
	e.Decomposes = data.Decomposes
	e.KDecayRate = components.BaseDecayRate * data.DecomposeSpeed
	return e
}

// AddDamageModifier добавляет множитель урона указанного типа.
// Модификаторов на объекте может быть несколько.
func AddDamageModifier(root *scene.Node, damageType enums.DamageType, multiplier float64) *components.DamageModifier {
	m := scene.Add[components.DamageModifier](root)
	m.DamageType = damageType
	m.Multiplier = multiplier
	return m
}

// MeleeAttackOptions - параметры укуса. BiteInterval <= 0 означает 1 секунду.
type MeleeAttackOptions struct {
	BiteDamage     float64
	BiteInterval   float64
	CanBiteVehicle bool
}

// AddMeleeAttack вешает атаку на корень и триггер касания на пасть.
// Пасть должна быть потомком root с коллайдером-триггером.
func AddMeleeAttack(root *scene.Node, c *Components, mouth *scene.Node, opts MeleeAttackOptions) *components.MeleeAttack {
	log := logger.For("assembly")
	if mouth == nil {
		log.WithFields(logrus.Fields{"prefab": root.Name}).Error("Melee attack needs a mouth object")
		return nil
	}

	interval := opts.BiteInterval
	if interval <= 0 {
		interval = 1
	}

	m := scene.Add[components.MeleeAttack](root)
	m.Mouth = mouth
	m.LastTarget = c.LastTarget
	m.Creature = c.Creature
	m.LiveMixin = c.LiveMixin
	m.Animator = c.Animator
	m.BiteDamage = opts.BiteDamage
	m.BiteInterval = interval
	m.CanBiteVehicle = opts.CanBiteVehicle

	AddOnTouchTrigger(mouth, root, "MeleeAttack", "OnTouch")
	return m
}

// AddOnTouchTrigger подписывает метод компонента callbackObject на касание триггера.
// Коллайдер должен быть на самом узле и быть триггером, иначе пишется ошибка,
// но подписка всё равно создаётся.
func AddOnTouchTrigger(trigger, callbackObject *scene.Node, typeName, method string) *components.OnTouchCallback {
	log := logger.For("assembly").WithFields(logrus.Fields{
		"trigger": trigger.Name,
		"type":    typeName,
		"method":  method,
	})

	col := scene.Get[components.Collider](trigger)
	switch {
	case col == nil:
		log.Error("OnTouch trigger has no collider")
	case !col.IsTrigger:
		log.Error("OnTouch collider is not a trigger")
	}

	surface := scene.Ensure[components.VFXSurface](trigger)
	surface.SurfaceType = enums.SurfaceOrganic

	touch := scene.Ensure[components.OnTouch](trigger)
	cb := scene.Add[components.OnTouchCallback](trigger)
	cb.OnTouch = touch
	cb.CallbackObject = callbackObject
	cb.TypeName = typeName
	cb.MethodName = method
	return cb
}

// AddVFXFabricating настраивает показ модели в фабрикаторе.
// Без данных параметры берутся из габаритов первого рендерера.
func AddVFXFabricating(root *scene.Node, data *domain.VFXFabricatingData) *components.VFXFabricating {
	log := logger.For("assembly").WithFields(logrus.Fields{"prefab": root.Name})

	if data == nil {
		var model *scene.Node
		var r *components.Renderer
		root.Walk(func(n *scene.Node) bool {
			if r != nil {
				return false
			}
			if r = scene.Get[components.Renderer](n); r != nil {
				model = n
			}
			return r == nil
		})
		if r == nil {
			log.Error("Cannot set up VFXFabricating: no renderer found")
			return nil
		}
		ext := r.Bounds.Extents
		v := scene.Ensure[components.VFXFabricating](model)
		v.ScaleFactor = model.Transform.LocalScale.X
		v.EulerOffset = model.Transform.EulerAngles
		v.PosOffset = types.Vec3{Y: ext.Y}
		v.LocalMinY = -ext.Y
		v.LocalMaxY = ext.Y
		return v
	}

	model := root
	if data.PathToModel != "" {
		model = root.Find(data.PathToModel)
	}
	if model == nil {
		log.WithFields(logrus.Fields{"path": data.PathToModel}).Error("Cannot set up VFXFabricating: model path not found")
		return nil
	}
	v := scene.Ensure[components.VFXFabricating](model)
	v.LocalMinY = data.MinY
	v.LocalMaxY = data.MaxY
	v.PosOffset = data.PosOffset
	v.EulerOffset = data.EulerOffset
	v.ScaleFactor = data.ScaleFactor
	return v
}
