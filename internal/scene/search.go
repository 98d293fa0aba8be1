package scene

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Comparison - режим сравнения имён при поиске потомков.
type Comparison uint8

const (
	Equals Comparison = iota
	EqualsCaseSensitive
	StartsWith
	StartsWithCaseSensitive
	Contains
	ContainsCaseSensitive
)

var comparisonNames = map[Comparison]string{
	Equals:                  "Equals",
	EqualsCaseSensitive:     "EqualsCaseSensitive",
	StartsWith:              "StartsWith",
	StartsWithCaseSensitive: "StartsWithCaseSensitive",
	Contains:                "Contains",
	ContainsCaseSensitive:   "ContainsCaseSensitive",
}

func (c Comparison) String() string {
	if s, ok := comparisonNames[c]; ok {
		return s
	}
	return "Unknown"
}

// ParseComparison - обратное преобразование для CLI и debug-эндпоинтов.
func ParseComparison(s string) (Comparison, error) {
	for k, v := range comparisonNames {
		if strings.EqualFold(v, s) {
			return k, nil
		}
	}
	return Equals, fmt.Errorf("unknown comparison %q", s)
}

// Fold приводит строку к форме для регистронезависимого сравнения.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Match сравнивает имя с образцом в заданном режиме.
func Match(name, pattern string, mode Comparison) bool {
	switch mode {
	case EqualsCaseSensitive:
		return name == pattern
	case StartsWith:
		return strings.HasPrefix(Fold(name), Fold(pattern))
	case StartsWithCaseSensitive:
		return strings.HasPrefix(name, pattern)
	case Contains:
		return strings.Contains(Fold(name), Fold(pattern))
	case ContainsCaseSensitive:
		return strings.Contains(name, pattern)
	default:
		return Fold(name) == Fold(pattern)
	}
}

// SearchChild рекурсивно ищет потомка по имени (сам узел не проверяется).
// Порядок: ребёнок, затем его поддерево, затем следующий ребёнок.
func (n *Node) SearchChild(name string, mode Comparison) *Node {
	for _, c := range n.children {
		if Match(c.Name, name, mode) {
			return c
		}
		if found := c.SearchChild(name, mode); found != nil {
			return found
		}
	}
	return nil
}

// Descendants возвращает всех потомков без самого узла.
func (n *Node) Descendants() []*Node {
	var out []*Node
	n.Walk(func(cur *Node) bool {
		if cur != n {
			out = append(out, cur)
		}
		return true
	})
	return out
}

// Path - путь от корня, через "/".
func (n *Node) Path() string {
	if n.parent == nil {
		return n.Name
	}
	return n.parent.Path() + "/" + n.Name
}
