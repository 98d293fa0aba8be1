package domain

import (
	"errors"
	"fmt"

	"creature-forge/internal/components"
)

var (
	ErrGrowthSize   = errors.New("water park sizes must be positive")
	ErrGrowthMax    = errors.New("water park max size must not be below initial size")
	ErrGrowthDays   = errors.New("water park days to grow must not be negative")
	ErrGrowthBreed  = errors.New("breeding creature needs an egg or child prefab")
	ErrGrowthAdults = errors.New("adult prefab is set but the creature never grows")
)

// WaterParkGrowth - входные данные для роста существа в аквариуме.
type WaterParkGrowth struct {
	InitialSize         float64 `json:"initialSize" yaml:"initialSize"`
	MaxSize             float64 `json:"maxSize" yaml:"maxSize"`
	OutsideSize         float64 `json:"outsideSize" yaml:"outsideSize"`
	DaysToGrow          float64 `json:"daysToGrow" yaml:"daysToGrow"`
	IsPickupableOutside bool    `json:"isPickupableOutside" yaml:"isPickupableOutside"`
	CanBreed            bool    `json:"canBreed" yaml:"canBreed"`
	// ClassID префабов, пусто, нет.
	EggOrChildPrefab string `json:"eggOrChildPrefab,omitempty" yaml:"eggOrChildPrefab,omitempty"`
	AdultPrefab      string `json:"adultPrefab,omitempty" yaml:"adultPrefab,omitempty"`
}

// Validate проверяет согласованность параметров роста.
func (g WaterParkGrowth) Validate() error {
	if g.InitialSize <= 0 || g.MaxSize <= 0 || g.OutsideSize <= 0 {
		return ErrGrowthSize
	}
	if g.MaxSize < g.InitialSize {
		return ErrGrowthMax
	}
	if g.DaysToGrow < 0 {
		return ErrGrowthDays
	}
	if g.CanBreed && g.EggOrChildPrefab == "" {
		return ErrGrowthBreed
	}
	if g.AdultPrefab != "" && g.DaysToGrow == 0 {
		return ErrGrowthAdults
	}
	return nil
}

// SetWaterParkCreatureData проверяет и применяет параметры аквариума.
// Повторный вызов перезаписывает существующие данные, а не создаёт новые.
func (t *CreatureTemplate) SetWaterParkCreatureData(g WaterParkGrowth) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("water park data: %w", err)
	}
	if t.WaterParkCreatureData == nil {
		t.WaterParkCreatureData = &components.WaterParkCreatureData{}
	}
	*t.WaterParkCreatureData = components.WaterParkCreatureData{
		InitialSize:         g.InitialSize,
		MaxSize:             g.MaxSize,
		OutsideSize:         g.OutsideSize,
		DaysToGrow:          g.DaysToGrow,
		IsPickupableOutside: g.IsPickupableOutside,
		CanBreed:            g.CanBreed,
		EggOrChildPrefab:    g.EggOrChildPrefab,
		AdultPrefab:         g.AdultPrefab,
	}
	return nil
}
