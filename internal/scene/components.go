package scene

// Get возвращает первый компонент типа *C на узле или nil.
func Get[C any](n *Node) *C {
	for _, c := range n.components {
		if v, ok := c.(*C); ok {
			return v
		}
	}
	return nil
}

// Has проверяет наличие компонента *C на узле.
func Has[C any](n *Node) bool { return Get[C](n) != nil }

// Add всегда прикрепляет новый нулевой *C.
func Add[C any](n *Node) *C {
	v := new(C)
	n.components = append(n.components, v)
	return v
}

// Ensure возвращает существующий *C или прикрепляет новый.
func Ensure[C any](n *Node) *C {
	if v := Get[C](n); v != nil {
		return v
	}
	return Add[C](n)
}

// Attach прикрепляет уже созданный компонент (например, из фабрики).
func Attach(n *Node, c Component) {
	n.components = append(n.components, c)
}

// Implementing ищет первый компонент, реализующий интерфейс I.
func Implementing[I any](n *Node) (I, bool) {
	for _, c := range n.components {
		if v, ok := c.(I); ok {
			return v, true
		}
	}
	var zero I
	return zero, false
}

// Remove открепляет первый компонент *C. Возвращает false, если его не было.
func Remove[C any](n *Node) bool {
	for i, c := range n.components {
		if _, ok := c.(*C); ok {
			n.components = append(n.components[:i], n.components[i+1:]...)
			return true
		}
	}
	return false
}

// All возвращает все компоненты *C узла.
func All[C any](n *Node) []*C {
	var out []*C
	for _, c := range n.components {
		if v, ok := c.(*C); ok {
			out = append(out, v)
		}
	}
	return out
}

// InChildren собирает *C с узла и всех потомков.
// includeInactive=false пропускает неактивные поддеревья.
func InChildren[C any](n *Node, includeInactive bool) []*C {
	var out []*C
	n.Walk(func(cur *Node) bool {
		if !includeInactive && !cur.Active {
			return false
		}
		out = append(out, All[C](cur)...)
		return true
	})
	return out
}

// FirstInChildren - первый *C в поддереве (включая неактивные узлы).
func FirstInChildren[C any](n *Node) *C {
	var found *C
	n.Walk(func(cur *Node) bool {
		if found != nil {
			return false
		}
		found = Get[C](cur)
		return found == nil
	})
	return found
}

// OwnerOf ищет узел поддерева, на котором висит компонент c.
func OwnerOf(n *Node, c Component) *Node {
	var owner *Node
	n.Walk(func(cur *Node) bool {
		if owner != nil {
			return false
		}
		for _, comp := range cur.components {
			if comp == c {
				owner = cur
				return false
			}
		}
		return true
	})
	return owner
}
