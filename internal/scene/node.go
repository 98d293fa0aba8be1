package scene

import (
	"reflect"

	"creature-forge/internal/core/types"

	"github.com/google/uuid"
)

// Component - любой прикрепляемый к узлу объект. Хранится по указателю.
type Component any

// Cloner позволяет компоненту самому решить, как копироваться при Clone.
// Компоненты без него копируются поверхностно.
type Cloner interface {
	CloneComponent() Component
}

// Transform - локальная трансформация узла.
type Transform struct {
	Position    types.Vec3 `json:"position" yaml:"position"`
	EulerAngles types.Vec3 `json:"eulerAngles" yaml:"eulerAngles"`
	LocalScale  types.Vec3 `json:"localScale" yaml:"localScale"`
}

// Node - узел иерархии сцены (аналог игрового объекта хоста).
type Node struct {
	InstanceID string
	Name       string
	Tag        string
	Active     bool
	Transform  Transform

	parent     *Node
	children   []*Node
	components []Component
}

// NewNode создает активный узел с единичным масштабом.
func NewNode(name string) *Node {
	return &Node{
		InstanceID: uuid.NewString(),
		Name:       name,
		Active:     true,
		Transform:  Transform{LocalScale: types.Splat(1)},
	}
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Children() []*Node { return n.children }

// AddChild перевешивает child под n.
func (n *Node) AddChild(child *Node) *Node {
	if child.parent != nil {
		child.parent.detach(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// NewChild создает и сразу прикрепляет дочерний узел.
func (n *Node) NewChild(name string) *Node {
	return n.AddChild(NewNode(name))
}

func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Root поднимается до корня иерархии.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// SetActive переключает флаг активности узла.
func (n *Node) SetActive(active bool) { n.Active = active }

// ActiveInHierarchy - узел активен только если активны все предки.
func (n *Node) ActiveInHierarchy() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.Active {
			return false
		}
	}
	return true
}

// Components возвращает копию списка компонентов узла.
func (n *Node) Components() []Component {
	out := make([]Component, len(n.components))
	copy(out, n.components)
	return out
}

// Walk обходит узел и всех потомков в глубину (pre-order).
// Если fn возвращает false, потомки узла пропускаются.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find ищет прямого потомка по имени. Путь через "/" спускается по уровням.
func (n *Node) Find(path string) *Node {
	cur := n
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && path[i] != '/' {
			continue
		}
		name := path[start:i]
		start = i + 1
		if name == "" {
			continue
		}
		var next *Node
		for _, c := range cur.children {
			if c.Name == name {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	if cur == n {
		return nil
	}
	return cur
}

// Clone делает глубокую копию поддерева. Клон не имеет родителя.
// Ссылки компонентов на узлы и компоненты внутри поддерева переназначаются
// на их копии, ссылки наружу остаются как есть.
func (n *Node) Clone() *Node {
	st := &cloneState{refs: make(map[any]any)}
	out := n.cloneInto(st)
	for _, c := range st.fresh {
		v := reflect.ValueOf(c)
		if v.Kind() == reflect.Pointer && !v.IsNil() {
			st.remap(v.Elem())
		}
	}
	return out
}

// cloneState - соответствие оригинал -> копия для узлов и компонентов.
type cloneState struct {
	refs  map[any]any
	fresh []Component
}

func (n *Node) cloneInto(st *cloneState) *Node {
	out := &Node{
		InstanceID: uuid.NewString(),
		Name:       n.Name,
		Tag:        n.Tag,
		Active:     n.Active,
		Transform:  n.Transform,
	}
	st.refs[n] = out
	for _, c := range n.components {
		cp := cloneComponent(c)
		st.bind(c, cp)
		out.components = append(out.components, cp)
		st.fresh = append(st.fresh, cp)
	}
	for _, child := range n.children {
		out.AddChild(child.cloneInto(st))
	}
	return out
}

// bind запоминает пару компонентов. Встроенные структуры тоже попадают
// в таблицу: контроллеры отдают указатель на встроенный Creature.
func (st *cloneState) bind(orig, cp Component) {
	ov, cv := reflect.ValueOf(orig), reflect.ValueOf(cp)
	if ov.Kind() != reflect.Pointer || ov.IsNil() || cv.Kind() != reflect.Pointer || cv.IsNil() {
		return
	}
	st.refs[orig] = cp
	if ov.Type() != cv.Type() || ov.Elem().Kind() != reflect.Struct {
		return
	}
	oe, ce := ov.Elem(), cv.Elem()
	for i := 0; i < oe.NumField(); i++ {
		f := oe.Type().Field(i)
		if f.Anonymous && f.IsExported() && f.Type.Kind() == reflect.Struct {
			st.refs[oe.Field(i).Addr().Interface()] = ce.Field(i).Addr().Interface()
		}
	}
}

func (st *cloneState) lookup(v reflect.Value) (reflect.Value, bool) {
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, false
	}
	to, ok := st.refs[v.Interface()]
	if !ok {
		return reflect.Value{}, false
	}
	return reflect.ValueOf(to), true
}

// remap переписывает экспортированные ссылки внутри значения v.
// Срезы со ссылками копируются: после поверхностного копирования
// их массив общий с оригиналом.
func (st *cloneState) remap(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if to, ok := st.lookup(v); ok && v.CanSet() && to.Type().AssignableTo(v.Type()) {
			v.Set(to)
		}
	case reflect.Interface:
		if v.IsNil() {
			return
		}
		if to, ok := st.lookup(v.Elem()); ok && v.CanSet() && to.Type().AssignableTo(v.Type()) {
			v.Set(to)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if t.Field(i).IsExported() {
				st.remap(v.Field(i))
			}
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			st.remap(v.Index(i))
		}
	case reflect.Slice:
		if v.IsNil() || !v.CanSet() || !holdsRefs(v.Type().Elem(), map[reflect.Type]bool{}) {
			return
		}
		cp := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(cp, v)
		for i := 0; i < cp.Len(); i++ {
			st.remap(cp.Index(i))
		}
		v.Set(cp)
	}
}

func holdsRefs(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return true
	case reflect.Array, reflect.Slice:
		return holdsRefs(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() && holdsRefs(t.Field(i).Type, seen) {
				return true
			}
		}
	}
	return false
}

func cloneComponent(c Component) Component {
	if cl, ok := c.(Cloner); ok {
		return cl.CloneComponent()
	}
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return c
	}
	cp := reflect.New(v.Elem().Type())
	cp.Elem().Set(v.Elem())
	return cp.Interface()
}
