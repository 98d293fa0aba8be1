package enums

import (
	"fmt"
	"strings"
)

// nameTable хранит двустороннее соответствие enum <-> строка.
// Строки сравниваются без учёта регистра (шаблоны пишут люди).
type nameTable[T ~uint8] struct {
	kind     string
	toString map[T]string
	toValue  map[string]T
}

func newNameTable[T ~uint8](kind string, names map[T]string) nameTable[T] {
	toValue := make(map[string]T, len(names))
	for v, s := range names {
		toValue[strings.ToUpper(s)] = v
	}
	return nameTable[T]{kind: kind, toString: names, toValue: toValue}
}

func (n nameTable[T]) name(v T) string {
	if s, ok := n.toString[v]; ok {
		return s
	}
	return "Unknown"
}

func (n nameTable[T]) parse(s string) (T, error) {
	if v, ok := n.toValue[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", n.kind, s)
}
