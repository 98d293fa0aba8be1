package types

import "sort"

// Vec3 - вектор в пространстве сцены.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Splat возвращает вектор с одинаковыми компонентами.
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Keyframe - точка кривой.
type Keyframe struct {
	Time       float64 `json:"time" yaml:"time"`
	Value      float64 `json:"value" yaml:"value"`
	InTangent  float64 `json:"inTangent,omitempty" yaml:"inTangent,omitempty"`
	OutTangent float64 `json:"outTangent,omitempty" yaml:"outTangent,omitempty"`
}

// Curve - кусочно-линейная кривая по ключевым точкам.
// Тангенсы хранятся для хоста, Evaluate их не учитывает.
type Curve struct {
	Keys []Keyframe `json:"keys" yaml:"keys"`
}

// NewCurve собирает кривую и сортирует ключи по времени.
func NewCurve(keys ...Keyframe) Curve {
	c := Curve{Keys: append([]Keyframe(nil), keys...)}
	sort.Slice(c.Keys, func(i, j int) bool { return c.Keys[i].Time < c.Keys[j].Time })
	return c
}

// FlatCurve - кривая, постоянная на отрезке [0, 1].
func FlatCurve(value float64) Curve {
	return NewCurve(Keyframe{Time: 0, Value: value}, Keyframe{Time: 1, Value: value})
}

// Evaluate возвращает значение кривой в момент t.
// За пределами ключей значение зажимается по крайним точкам.
func (c Curve) Evaluate(t float64) float64 {
	if len(c.Keys) == 0 {
		return 0
	}
	if t <= c.Keys[0].Time {
		return c.Keys[0].Value
	}
	last := c.Keys[len(c.Keys)-1]
	if t >= last.Time {
		return last.Value
	}
	for i := 1; i < len(c.Keys); i++ {
		a, b := c.Keys[i-1], c.Keys[i]
		if t > b.Time {
			continue
		}
		span := b.Time - a.Time
		if span == 0 {
			return b.Value
		}
		k := (t - a.Time) / span
		return a.Value + (b.Value-a.Value)*k
	}
	return last.Value
}
