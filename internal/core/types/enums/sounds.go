package enums

// ItemSoundsType задаёт звуки предмета в инвентаре (подбор, выброс, поедание).
type ItemSoundsType uint8

const (
	ItemSoundsDefault ItemSoundsType = iota
	ItemSoundsOrganic
	ItemSoundsEgg
	ItemSoundsFins
	ItemSoundsSuit
	ItemSoundsTank
	ItemSoundsFloater
	ItemSoundsLight
	ItemSoundsAirBladder
	ItemSoundsFirstAidKit
	ItemSoundsWater
	ItemSoundsStillSuitWater
	ItemSoundsFish
)

var itemSoundsNames = newNameTable("item sounds type", map[ItemSoundsType]string{
	ItemSoundsDefault:        "Default",
	ItemSoundsOrganic:        "Organic",
	ItemSoundsEgg:            "Egg",
	ItemSoundsFins:           "Fins",
	ItemSoundsSuit:           "Suit",
	ItemSoundsTank:           "Tank",
	ItemSoundsFloater:        "Floater",
	ItemSoundsLight:          "Light",
	ItemSoundsAirBladder:     "AirBladder",
	ItemSoundsFirstAidKit:    "FirstAidKit",
	ItemSoundsWater:          "Water",
	ItemSoundsStillSuitWater: "StillSuitWater",
	ItemSoundsFish:           "Fish",
})

func (i ItemSoundsType) String() string { return itemSoundsNames.name(i) }

func ParseItemSoundsType(s string) (ItemSoundsType, error) { return itemSoundsNames.parse(s) }

func (i ItemSoundsType) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *ItemSoundsType) UnmarshalText(b []byte) error {
	v, err := ParseItemSoundsType(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Звуковые события хоста по умолчанию.
const (
	DefaultPickupSound = "event:/loot/pickup_default"
	DefaultDropSound   = "event:/tools/pda/drop_item"
	DefaultEatSound    = "event:/player/eat"
)

// PickupSound возвращает событие звука подбора.
func (i ItemSoundsType) PickupSound() string {
	switch i {
	case ItemSoundsAirBladder:
		return "event:/tools/airbladder/airbladder_pickup"
	case ItemSoundsLight:
		return "event:/tools/lights/pick_up"
	case ItemSoundsEgg:
		return "event:/loot/pickup_egg"
	case ItemSoundsFins:
		return "event:/loot/pickup_fins"
	case ItemSoundsFloater:
		return "event:/loot/floater/floater_pickup"
	case ItemSoundsSuit:
		return "event:/loot/pickup_suit"
	case ItemSoundsTank:
		return "event:/loot/pickup_tank"
	case ItemSoundsOrganic:
		return "event:/loot/pickup_organic"
	case ItemSoundsFish:
		return "event:/loot/pickup_fish"
	default:
		return DefaultPickupSound
	}
}

// DropSound возвращает событие звука выброса.
func (i ItemSoundsType) DropSound() string {
	if i == ItemSoundsFloater {
		return "event:/loot/floater/floater_place"
	}
	return DefaultDropSound
}

// EatSound возвращает событие звука использования.
func (i ItemSoundsType) EatSound() string {
	switch i {
	case ItemSoundsWater:
		return "event:/player/drink"
	case ItemSoundsFirstAidKit:
		return "event:/player/use_first_aid"
	case ItemSoundsStillSuitWater:
		return "event:/player/drink_stillsuit"
	default:
		return DefaultEatSound
	}
}
