package components

import (
	"creature-forge/internal/core/types"
)

type Pickupable struct{}

// DropTool - стандартный инструмент «бросить», рыбы в руках его не используют.
type DropTool struct{}

// Тайминги рыбы в руках.
const (
	HeldFishDrawTime    = 0.0
	HeldFishHolsterTime = 0.1
	HeldFishDropTime    = 1.4
)

type HeldFish struct {
	AnimationReference types.TechType `json:"animationReference"`
	MainCollider       *Collider      `json:"-"`
	Pickupable         *Pickupable    `json:"-"`
	DrawTime           float64        `json:"drawTime"`
	HolsterTime        float64        `json:"holsterTime"`
	DropTime           float64        `json:"dropTime"`
	IKAimRightArm      bool           `json:"ikAimRightArm"`
}

// SetAnimationTechTypeReference - анимации удержания берутся у другого предмета.
func (h *HeldFish) SetAnimationTechTypeReference(tt types.TechType) {
	h.AnimationReference = tt
}

// WaterParkCreatureData - параметры роста в аквариуме.
type WaterParkCreatureData struct {
	InitialSize         float64 `json:"initialSize"`
	MaxSize             float64 `json:"maxSize"`
	OutsideSize         float64 `json:"outsideSize"`
	DaysToGrow          float64 `json:"daysToGrow"`
	IsPickupableOutside bool    `json:"isPickupableOutside"`
	CanBreed            bool    `json:"canBreed"`
	EggOrChildPrefab    string  `json:"eggOrChildPrefab,omitempty"`
	AdultPrefab         string  `json:"adultPrefab,omitempty"`
}

// SizeAt - размер после days суток в аквариуме.
// Рост линейный, после DaysToGrow размер остаётся MaxSize.
func (d *WaterParkCreatureData) SizeAt(days float64) float64 {
	if days <= 0 {
		return d.InitialSize
	}
	if d.DaysToGrow <= 0 || days >= d.DaysToGrow {
		return d.MaxSize
	}
	return d.InitialSize + (d.MaxSize-d.InitialSize)*days/d.DaysToGrow
}

// IsMature - выросла ли особь (для размножения и выхода взрослого префаба).
func (d *WaterParkCreatureData) IsMature(days float64) bool {
	return d.DaysToGrow <= 0 || days >= d.DaysToGrow
}

type WaterParkCreature struct {
	Data *WaterParkCreatureData `json:"data"`
}
