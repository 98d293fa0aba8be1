package assembly

import (
	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/scene"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PhysBoneKeyword - так в моделях называются кости хвоста с физикой.
const PhysBoneKeyword = "phys"

// TrailManagerBuilder собирает TrailManager для хвоста или щупалец.
type TrailManagerBuilder struct {
	c           *Components
	root        *scene.Node
	rootSegment *scene.Node

	Trails               []*scene.Node
	SegmentSnapSpeed     float64
	MaxSegmentOffset     float64
	AllowDisableOnScreen bool
	PitchMultiplier      types.Curve
	RollMultiplier       types.Curve
	YawMultiplier        types.Curve
}

// NewTrailManagerBuilder - значения по умолчанию: snap 5, без ограничения смещения.
func NewTrailManagerBuilder(root *scene.Node, c *Components, rootSegment *scene.Node) *TrailManagerBuilder {
	return &TrailManagerBuilder{
		c:                    c,
		root:                 root,
		rootSegment:          rootSegment,
		SegmentSnapSpeed:     5,
		MaxSegmentOffset:     -1,
		AllowDisableOnScreen: true,
		PitchMultiplier:      types.FlatCurve(1),
		RollMultiplier:       types.FlatCurve(1),
		YawMultiplier:        types.FlatCurve(1),
	}
}

// SetTrailsToAllChildren - сегментами становятся все потомки корневого сегмента.
func (b *TrailManagerBuilder) SetTrailsToAllChildren() *TrailManagerBuilder {
	b.Trails = b.rootSegment.Descendants()
	return b
}

// SetTrailsToChildrenWithKeyword - потомки, в имени которых есть keyword (без учёта регистра).
func (b *TrailManagerBuilder) SetTrailsToChildrenWithKeyword(keyword string) *TrailManagerBuilder {
	var trails []*scene.Node
	for _, n := range b.rootSegment.Descendants() {
		if scene.Match(n.Name, keyword, scene.Contains) {
			trails = append(trails, n)
		}
	}
	b.Trails = trails
	return b
}

// SetTrailsToPhysBones - кости с "phys" в имени.
func (b *TrailManagerBuilder) SetTrailsToPhysBones() *TrailManagerBuilder {
	return b.SetTrailsToChildrenWithKeyword(PhysBoneKeyword)
}

// SetAllMultiplierCurves задаёт одну кривую на все три оси.
func (b *TrailManagerBuilder) SetAllMultiplierCurves(curve types.Curve) *TrailManagerBuilder {
	b.PitchMultiplier = curve
	b.RollMultiplier = curve
	b.YawMultiplier = curve
	return b
}

// Apply прикрепляет TrailManager к корневому сегменту.
func (b *TrailManagerBuilder) Apply() *components.TrailManager {
	if len(b.Trails) == 0 {
		logger.For("assembly").WithFields(logrus.Fields{
			"segment": b.rootSegment.Name,
		}).Warn("TrailManager has no trail segments")
	}

	tm := scene.Add[components.TrailManager](b.rootSegment)
	tm.RootSegment = b.rootSegment
	tm.RootTransform = b.root
	tm.Trails = append([]*scene.Node(nil), b.Trails...)
	tm.LevelOfDetail = b.c.BehaviourLOD
	tm.SegmentSnapSpeed = b.SegmentSnapSpeed
	tm.MaxSegmentOffset = b.MaxSegmentOffset
	tm.AllowDisableOnScreen = b.AllowDisableOnScreen
	tm.PitchMultiplier = b.PitchMultiplier
	tm.RollMultiplier = b.RollMultiplier
	tm.YawMultiplier = b.YawMultiplier
	return tm
}
