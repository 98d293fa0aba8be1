package components

import (
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
)

// PrefabIdentifier связывает экземпляр с ClassID префаба.
type PrefabIdentifier struct {
	ClassID string `json:"classId"`
	ID      string `json:"id"`
}

// TechTag хранит TechType объекта.
type TechTag struct {
	Type types.TechType `json:"type"`
}

// LargeWorldEntity задаёт уровень ячейки стриминга.
type LargeWorldEntity struct {
	CellLevel enums.CellLevel `json:"cellLevel"`
}

// EntityTag задаёт тип слота спавна.
type EntityTag struct {
	SlotType enums.EntitySlotType `json:"slotType"`
}

// ResourceTracker делает объект видимым для сканер-комнаты.
type ResourceTracker struct {
	PrefabIdentifier *PrefabIdentifier `json:"-"`
	Rigidbody        *Rigidbody        `json:"-"`
}

// ResourceTrackerUpdater периодически обновляет позицию трекера.
type ResourceTrackerUpdater struct{}
