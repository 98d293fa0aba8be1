package components

// Combine - способ смешивания коэффициентов двух физических материалов.
type Combine uint8

const (
	CombineAverage Combine = iota
	CombineMinimum
	CombineMultiply
	CombineMaximum
)

// PhysicMaterial описывает трение и упругость коллайдера.
type PhysicMaterial struct {
	Name            string  `json:"name" yaml:"name"`
	DynamicFriction float64 `json:"dynamicFriction" yaml:"dynamicFriction"`
	StaticFriction  float64 `json:"staticFriction" yaml:"staticFriction"`
	Bounciness      float64 `json:"bounciness" yaml:"bounciness"`
	FrictionCombine Combine `json:"frictionCombine" yaml:"frictionCombine"`
	BounceCombine   Combine `json:"bounceCombine" yaml:"bounceCombine"`
}

var frictionless = &PhysicMaterial{
	Name:            "NoFriction",
	FrictionCombine: CombineMultiply,
	BounceCombine:   CombineMultiply,
}

// Frictionless возвращает общий на весь процесс материал без трения.
func Frictionless() *PhysicMaterial { return frictionless }

// Collider - форма столкновений.
type Collider struct {
	Shape          string          `json:"shape" yaml:"shape"`
	IsTrigger      bool            `json:"isTrigger" yaml:"isTrigger"`
	SharedMaterial *PhysicMaterial `json:"-" yaml:"-"`
}

// Rigidbody - физическое тело.
type Rigidbody struct {
	UseGravity bool    `json:"useGravity"`
	Mass       float64 `json:"mass"`
}

// Параметры среды для WorldForces.
const (
	AboveWaterGravity = 9.81
	UnderwaterGravity = 0.0
	AboveWaterDrag    = 0.0
	UnderwaterDrag    = 0.1
)

// WorldForces применяет гравитацию и сопротивление воды к телу.
type WorldForces struct {
	UseRigidbody      *Rigidbody `json:"-"`
	HandleGravity     bool       `json:"handleGravity"`
	AboveWaterGravity float64    `json:"aboveWaterGravity"`
	UnderwaterGravity float64    `json:"underwaterGravity"`
	AboveWaterDrag    float64    `json:"aboveWaterDrag"`
	UnderwaterDrag    float64    `json:"underwaterDrag"`
}
