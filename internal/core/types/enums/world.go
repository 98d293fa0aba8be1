package enums

// CellLevel грубо определяет, с какой дистанции сущность подгружается в мир.
type CellLevel uint8

const (
	CellLevelNear CellLevel = iota
	CellLevelMedium
	CellLevelFar
	CellLevelVeryFar
	CellLevelBatch
	CellLevelGlobal
)

var cellLevelNames = newNameTable("cell level", map[CellLevel]string{
	CellLevelNear:    "Near",
	CellLevelMedium:  "Medium",
	CellLevelFar:     "Far",
	CellLevelVeryFar: "VeryFar",
	CellLevelBatch:   "Batch",
	CellLevelGlobal:  "Global",
})

func (c CellLevel) String() string { return cellLevelNames.name(c) }

func ParseCellLevel(s string) (CellLevel, error) { return cellLevelNames.parse(s) }

func (c CellLevel) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *CellLevel) UnmarshalText(b []byte) error {
	v, err := ParseCellLevel(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// EntitySlotType - тип слота спавна в мире.
type EntitySlotType uint8

const (
	SlotSmall EntitySlotType = iota
	SlotMedium
	SlotLarge
	SlotTall
	SlotCreature
)

var slotNames = newNameTable("entity slot type", map[EntitySlotType]string{
	SlotSmall:    "Small",
	SlotMedium:   "Medium",
	SlotLarge:    "Large",
	SlotTall:     "Tall",
	SlotCreature: "Creature",
})

func (s EntitySlotType) String() string { return slotNames.name(s) }

func (s EntitySlotType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// EquipmentType - куда предмет можно экипировать.
type EquipmentType uint8

const (
	EquipmentNone EquipmentType = iota
	EquipmentHand
	EquipmentHead
	EquipmentBody
	EquipmentGloves
	EquipmentFoots
	EquipmentTank
	EquipmentChip
)

var equipmentNames = newNameTable("equipment type", map[EquipmentType]string{
	EquipmentNone:   "None",
	EquipmentHand:   "Hand",
	EquipmentHead:   "Head",
	EquipmentBody:   "Body",
	EquipmentGloves: "Gloves",
	EquipmentFoots:  "Foots",
	EquipmentTank:   "Tank",
	EquipmentChip:   "Chip",
})

func (e EquipmentType) String() string { return equipmentNames.name(e) }

func (e EquipmentType) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// DamageType - тип урона.
type DamageType uint8

const (
	DamageNormal DamageType = iota
	DamageCollide
	DamageElectrical
	DamageFire
	DamageAcid
	DamageHeat
	DamagePoison
	DamageStarve
)

var damageNames = newNameTable("damage type", map[DamageType]string{
	DamageNormal:     "Normal",
	DamageCollide:    "Collide",
	DamageElectrical: "Electrical",
	DamageFire:       "Fire",
	DamageAcid:       "Acid",
	DamageHeat:       "Heat",
	DamagePoison:     "Poison",
	DamageStarve:     "Starve",
})

func (d DamageType) String() string { return damageNames.name(d) }

func ParseDamageType(s string) (DamageType, error) { return damageNames.parse(s) }

func (d DamageType) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *DamageType) UnmarshalText(b []byte) error {
	v, err := ParseDamageType(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
