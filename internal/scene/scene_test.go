package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marker struct{ Value int }

type other struct{}

type named interface{ Label() string }

type labelled struct{ L string }

func (l *labelled) Label() string { return l.L }

func buildTree() *Node {
	root := NewNode("Shark")
	body := root.NewChild("Body")
	body.NewChild("Spine_Phys_01").NewChild("Spine_phys_02")
	root.NewChild("WorldModel")
	root.NewChild("ViewModel").SetActive(false)
	return root
}

func TestEnsureIsIdempotent(t *testing.T) {
	n := NewNode("n")
	a := Ensure[marker](n)
	a.Value = 7
	b := Ensure[marker](n)

	assert.Same(t, a, b)
	assert.Len(t, All[marker](n), 1)

	Add[marker](n)
	assert.Len(t, All[marker](n), 2)
	assert.Equal(t, 7, Get[marker](n).Value)
}

func TestRemove(t *testing.T) {
	n := NewNode("n")
	assert.False(t, Remove[other](n))
	Add[other](n)
	assert.True(t, Has[other](n))
	assert.True(t, Remove[other](n))
	assert.False(t, Has[other](n))
}

func TestImplementing(t *testing.T) {
	n := NewNode("n")
	_, ok := Implementing[named](n)
	assert.False(t, ok)

	Attach(n, &labelled{L: "x"})
	v, ok := Implementing[named](n)
	require.True(t, ok)
	assert.Equal(t, "x", v.Label())
}

func TestInChildren(t *testing.T) {
	root := buildTree()
	Add[marker](root)
	Add[marker](root.Find("Body/Spine_Phys_01"))
	Add[marker](root.Find("ViewModel"))

	assert.Len(t, InChildren[marker](root, true), 3)
	assert.Len(t, InChildren[marker](root, false), 2)
	assert.NotNil(t, FirstInChildren[marker](root.Find("Body")))
}

func TestFind(t *testing.T) {
	root := buildTree()

	assert.Equal(t, "WorldModel", root.Find("WorldModel").Name)
	assert.Equal(t, "Spine_phys_02", root.Find("Body/Spine_Phys_01/Spine_phys_02").Name)
	assert.Nil(t, root.Find("Spine_Phys_01"), "Find не ищет рекурсивно")
	assert.Nil(t, root.Find(""))
}

func TestSearchChild(t *testing.T) {
	root := buildTree()

	tests := []struct {
		name    string
		pattern string
		mode    Comparison
		want    string
	}{
		{"equals ignores case", "worldmodel", Equals, "WorldModel"},
		{"case sensitive equals misses", "worldmodel", EqualsCaseSensitive, ""},
		{"starts with", "spine", StartsWith, "Spine_Phys_01"},
		{"starts with case sensitive", "spine", StartsWithCaseSensitive, ""},
		{"contains", "PHYS_02", Contains, "Spine_phys_02"},
		{"contains case sensitive", "phys", ContainsCaseSensitive, "Spine_phys_02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := root.SearchChild(tt.pattern, tt.mode)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}

	assert.Nil(t, root.SearchChild("Shark", Equals), "сам узел не участвует в поиске")
}

func TestClone(t *testing.T) {
	root := buildTree()
	Add[marker](root).Value = 3

	cp := root.Clone()
	require.NotSame(t, root, cp)
	assert.NotEqual(t, root.InstanceID, cp.InstanceID)
	assert.Nil(t, cp.Parent())
	assert.Len(t, cp.Descendants(), len(root.Descendants()))

	Get[marker](cp).Value = 9
	assert.Equal(t, 3, Get[marker](root).Value)
	assert.Equal(t, "Shark/Body/Spine_Phys_01", cp.Find("Body/Spine_Phys_01").Path())
}

type mass struct{ Kg float64 }

type mover struct {
	Body    *mass
	Root    *Node
	Targets []*Node
	Peer    named
	Outside *Node
}

type Core struct{ Hits int }

type brain struct{ Core }

func (b *brain) Label() string { return "brain" }

type eyes struct{ Owner *Core }

func TestCloneRemapsReferences(t *testing.T) {
	root := buildTree()
	spine := root.Find("Body/Spine_Phys_01")
	outside := NewNode("Effect")

	b := Add[mass](root)
	br := Add[brain](root)
	m := Add[mover](spine)
	m.Body = b
	m.Root = root
	m.Targets = []*Node{spine, outside}
	m.Peer = br
	m.Outside = outside
	Add[eyes](root).Owner = &br.Core

	cp := root.Clone()
	cb := Get[mass](cp)
	cbr := Get[brain](cp)
	cspine := cp.Find("Body/Spine_Phys_01")
	cm := Get[mover](cspine)
	require.NotNil(t, cm)

	assert.Same(t, cb, cm.Body)
	assert.Same(t, cp, cm.Root)
	assert.Same(t, cspine, cm.Targets[0])
	assert.Same(t, outside, cm.Targets[1], "ссылки наружу не трогаются")
	assert.Same(t, outside, cm.Outside)
	assert.Same(t, cbr, cm.Peer)
	assert.Same(t, &cbr.Core, Get[eyes](cp).Owner)

	// Оригинал не изменился, срез не общий.
	assert.Same(t, spine, m.Targets[0])
	assert.Same(t, b, m.Body)
	assert.Same(t, br, m.Peer)
}

func TestParseComparison(t *testing.T) {
	c, err := ParseComparison("containscasesensitive")
	require.NoError(t, err)
	assert.Equal(t, ContainsCaseSensitive, c)

	_, err = ParseComparison("regex")
	assert.Error(t, err)
}
