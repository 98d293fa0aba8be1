package types

import (
	"fmt"
	"strconv"
)

// TechType - 32-битный идентификатор типа сущности в глобальной таблице хоста.
//
// Формат битов (от старших к младшим):
//
//	[ Origin (8) | Index (24) ]
//
// Где:
//   - Origin, кто выделил значение (игра или мод)
//   - Index, порядковый номер внутри источника
//
// Нулевое значение зарезервировано под TechTypeNone.
type TechType uint32

// Origin - источник, выделивший TechType.
type Origin uint8

const (
	// OriginVanilla - типы, известные хосту изначально.
	OriginVanilla Origin = 0
	// OriginMod - типы, выделенные во время загрузки модов.
	OriginMod Origin = 1
)

// Конфигурация битов TechType.
const (
	bitsIndex  = 24
	bitsOrigin = 8

	shiftOrigin = bitsIndex

	maskIndex  = (1 << bitsIndex) - 1
	maskOrigin = (1 << bitsOrigin) - 1
)

// TechTypeNone - отсутствие типа. Аналог nil.
const TechTypeNone TechType = 0

// Ванильные типы, на которые ссылается сборщик.
const (
	TechTypePeeper TechType = iota + 1
	TechTypeBladderfish
	TechTypeBoomerang
	TechTypeStalker
	TechTypeReaperLeviathan
	TechTypeSalt
)

var vanillaNames = map[TechType]string{
	TechTypePeeper:          "Peeper",
	TechTypeBladderfish:     "Bladderfish",
	TechTypeBoomerang:       "Boomerang",
	TechTypeStalker:         "Stalker",
	TechTypeReaperLeviathan: "ReaperLeviathan",
	TechTypeSalt:            "Salt",
}

// PackTechType собирает TechType из источника и индекса.
//
// Индекс обрезается до 24 бит, проверок диапазона нет.
func PackTechType(origin Origin, index uint32) TechType {
	return TechType((uint32(origin)&maskOrigin)<<shiftOrigin | (index & maskIndex))
}

// Index возвращает порядковый номер типа внутри источника.
func (t TechType) Index() uint32 {
	return uint32(t) & maskIndex
}

// Origin возвращает источник типа.
func (t TechType) Origin() Origin {
	return Origin((uint32(t) >> shiftOrigin) & maskOrigin)
}

// IsNone проверяет, что тип не задан.
func (t TechType) IsNone() bool {
	return t == TechTypeNone
}

// IsModded проверяет, что тип выделен модом, а не игрой.
func (t TechType) IsModded() bool {
	return t.Origin() == OriginMod
}

// VanillaTechType ищет ванильный тип по имени. Регистр важен.
func VanillaTechType(name string) (TechType, bool) {
	for t, n := range vanillaNames {
		if n == name {
			return t, true
		}
	}
	return TechTypeNone, false
}

// String возвращает человекочитаемое представление.
//
// Для ванильных типов, имя, для модовых, [origin:index].
func (t TechType) String() string {
	if t.IsNone() {
		return "None"
	}
	if name, ok := vanillaNames[t]; ok && t.Origin() == OriginVanilla {
		return name
	}
	return fmt.Sprintf("[%d:%d]", t.Origin(), t.Index())
}

// MarshalJSON сериализует TechType в строку с десятичным числом.
func (t TechType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(t), 10) + `"`), nil
}

// UnmarshalJSON принимает как строку, так и число.
func (t *TechType) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*t = TechTypeNone
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}

	*t = TechType(v)
	return nil
}

// MarshalText нужен для YAML-шаблонов: пишем имя, а не число.
func (t TechType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText принимает имя ванильного типа, "None", десятичное число
// или форму [origin:index].
func (t *TechType) UnmarshalText(data []byte) error {
	s := string(data)

	switch {
	case s == "" || s == "None":
		*t = TechTypeNone
		return nil
	case s[0] == '[':
		var origin, index uint32
		if _, err := fmt.Sscanf(s, "[%d:%d]", &origin, &index); err != nil {
			return fmt.Errorf("invalid tech type %q: %w", s, err)
		}
		*t = PackTechType(Origin(origin), index)
		return nil
	}

	if v, ok := VanillaTechType(s); ok {
		*t = v
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("unknown tech type %q", s)
	}
	*t = TechType(v)
	return nil
}
