package enums

// EcoTargetType определяет, как существо «видят» другие существа.
type EcoTargetType uint8

const (
	EcoTargetNone EcoTargetType = iota
	EcoTargetShark
	EcoTargetWhale
	EcoTargetSmallFish
	EcoTargetMediumFish
	EcoTargetCuteFish
	EcoTargetLeviathan
	EcoTargetPeeper
	EcoTargetCoral
	EcoTargetHeatArea
	EcoTargetSubDecoy
	EcoTargetFishSchool
	EcoTargetPlayer
)

var ecoTargetNames = newNameTable("eco target type", map[EcoTargetType]string{
	EcoTargetNone:       "None",
	EcoTargetShark:      "Shark",
	EcoTargetWhale:      "Whale",
	EcoTargetSmallFish:  "SmallFish",
	EcoTargetMediumFish: "MediumFish",
	EcoTargetCuteFish:   "CuteFish",
	EcoTargetLeviathan:  "Leviathan",
	EcoTargetPeeper:     "Peeper",
	EcoTargetCoral:      "Coral",
	EcoTargetHeatArea:   "HeatArea",
	EcoTargetSubDecoy:   "SubDecoy",
	EcoTargetFishSchool: "FishSchool",
	EcoTargetPlayer:     "Player",
})

func (e EcoTargetType) String() string { return ecoTargetNames.name(e) }

// ParseEcoTargetType конвертирует строку в enum (нужно для загрузки шаблонов)
func ParseEcoTargetType(s string) (EcoTargetType, error) { return ecoTargetNames.parse(s) }

func (e EcoTargetType) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EcoTargetType) UnmarshalText(b []byte) error {
	v, err := ParseEcoTargetType(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// BehaviourType идёт в паре с EcoTargetType. Игрок, кстати,, акула.
type BehaviourType uint8

const (
	BehaviourUnknown BehaviourType = iota
	BehaviourShark
	BehaviourWhale
	BehaviourSmallFish
	BehaviourMediumFish
	BehaviourLeviathan
	BehaviourCrab
	BehaviourCrash
)

var behaviourNames = newNameTable("behaviour type", map[BehaviourType]string{
	BehaviourUnknown:    "Unknown",
	BehaviourShark:      "Shark",
	BehaviourWhale:      "Whale",
	BehaviourSmallFish:  "SmallFish",
	BehaviourMediumFish: "MediumFish",
	BehaviourLeviathan:  "Leviathan",
	BehaviourCrab:       "Crab",
	BehaviourCrash:      "Crash",
})

func (b BehaviourType) String() string { return behaviourNames.name(b) }

func ParseBehaviourType(s string) (BehaviourType, error) { return behaviourNames.parse(s) }

func (b BehaviourType) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BehaviourType) UnmarshalText(data []byte) error {
	v, err := ParseBehaviourType(string(data))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// SurfaceType - тип поверхности для эффектов попадания.
type SurfaceType uint8

const (
	SurfaceNone SurfaceType = iota
	SurfaceOrganic
	SurfaceMetal
	SurfaceGlass
	SurfaceRock
	SurfaceSand
	SurfaceCoral
	SurfaceVegetation
)

var surfaceNames = newNameTable("surface type", map[SurfaceType]string{
	SurfaceNone:       "None",
	SurfaceOrganic:    "Organic",
	SurfaceMetal:      "Metal",
	SurfaceGlass:      "Glass",
	SurfaceRock:       "Rock",
	SurfaceSand:       "Sand",
	SurfaceCoral:      "Coral",
	SurfaceVegetation: "Vegetation",
})

func (s SurfaceType) String() string { return surfaceNames.name(s) }

func ParseSurfaceType(s string) (SurfaceType, error) { return surfaceNames.parse(s) }

func (s SurfaceType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SurfaceType) UnmarshalText(b []byte) error {
	v, err := ParseSurfaceType(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
