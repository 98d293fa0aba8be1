package storage

import (
	"errors"
	"fmt"
	"io"
	"os"

	"creature-forge/internal/assets"
	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/scene"

	"gopkg.in/yaml.v3"
)

// NodeDocument - узел модели в файле бандла.
type NodeDocument struct {
	Name     string      `yaml:"name"`
	Inactive bool        `yaml:"inactive"`
	Position types.Vec3  `yaml:"position"`
	Euler    types.Vec3  `yaml:"eulerAngles"`
	Scale    *types.Vec3 `yaml:"localScale"`

	Collider *components.Collider `yaml:"collider"`
	Animator *components.Animator `yaml:"animator"`
	Renderer *components.Renderer `yaml:"renderer"`

	Children []NodeDocument `yaml:"children"`
}

type bundleDocument struct {
	Models []NodeDocument `yaml:"models"`
}

// ReadBundle читает бандл моделей по пути <modDir>/Assets/<file>.
func ReadBundle(modDir, file string) (*assets.Bundle, error) {
	f, err := os.Open(assets.BundlePath(modDir, file))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeBundle(file, f)
}

// DecodeBundle строит бандл из YAML-описания моделей.
func DecodeBundle(name string, r io.Reader) (*assets.Bundle, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc bundleDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode bundle %s: %w", name, err)
	}

	b := assets.NewBundle(name)
	for i, m := range doc.Models {
		if m.Name == "" {
			return nil, fmt.Errorf("bundle %s: model #%d has no name", name, i+1)
		}
		b.Put(m.node())
	}
	return b, nil
}

func (d NodeDocument) node() *scene.Node {
	n := scene.NewNode(d.Name)
	n.SetActive(!d.Inactive)
	n.Transform.Position = d.Position
	n.Transform.EulerAngles = d.Euler
	if d.Scale != nil {
		n.Transform.LocalScale = *d.Scale
	}

	if d.Collider != nil {
		c := *d.Collider
		scene.Attach(n, &c)
	}
	if d.Animator != nil {
		a := *d.Animator
		scene.Attach(n, &a)
	}
	if d.Renderer != nil {
		r := *d.Renderer
		scene.Attach(n, &r)
	}

	for _, child := range d.Children {
		n.AddChild(child.node())
	}
	return n
}
