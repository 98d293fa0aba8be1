package engine

import (
	"context"

	"creature-forge/internal/assembly"
	"creature-forge/internal/components"
	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/domain"
	"creature-forge/internal/scene"
)

// ExampleClassID - демонстрационное существо, включается FORGE_EXAMPLE_CONTENT.
const ExampleClassID = "ExampleRazorEel"

// exampleEel - хищный угорь: кусает пастью, хвост на физических костях,
// уязвим к электричеству.
type exampleEel struct{}

func exampleModel() *scene.Node {
	root := scene.NewNode(ExampleClassID)
	scene.Attach(root, &components.Collider{Shape: "capsule"})

	model := root.NewChild("RazorEel_geo")
	scene.Attach(model, &components.Animator{Controller: "razor_eel"})
	scene.Attach(model, &components.Renderer{
		Materials: []*components.Material{{Name: "RazorEel_body"}, {Name: "RazorEel_fins_cutout"}},
		Bounds:    components.Bounds{Extents: types.Vec3{X: 0.3, Y: 0.4, Z: 2}},
	})

	mouth := root.NewChild("Mouth")
	scene.Attach(mouth, &components.Collider{Shape: "sphere", IsTrigger: true})

	spine := root.NewChild("Spine")
	seg := spine
	for _, name := range []string{"Tail_phys_1", "Tail_phys_2", "Tail_phys_3", "TailFin"} {
		seg = seg.NewChild(name)
	}
	return root
}

func (exampleEel) CreateTemplate() *domain.CreatureTemplate {
	tmpl := domain.NewCreatureTemplate(exampleModel(), enums.BehaviourShark, enums.EcoTargetShark, 400)
	tmpl.Mass = 80
	tmpl.EyeFOV = -0.3
	tmpl.CellLevel = enums.CellLevelFar
	tmpl.StayAtLeashData = domain.NewStayAtLeashData(0.4, 25, 6)
	tmpl.AvoidObstaclesData = domain.NewAvoidObstaclesData(0.6, 8, false, 6, 10)
	tmpl.AttackLastTargetData = domain.NewAttackLastTargetData(0.7, 14, 0.5, 6)
	tmpl.AddAggressiveWhenSeeTargetData(domain.NewAggressiveWhenSeeTargetData(enums.EcoTargetPlayer, 0.6, 25, 2))
	tmpl.AddAggressiveWhenSeeTargetData(domain.NewAggressiveWhenSeeTargetData(enums.EcoTargetSmallFish, 0.3, 15, 1))
	tmpl.TraitsData.AggressionDecreaseRate = 0.1
	return tmpl
}

func (exampleEel) ModifyPrefab(_ context.Context, prefab *scene.Node, c *assembly.Components) error {
	assembly.AddMeleeAttack(prefab, c, prefab.SearchChild("Mouth", scene.Equals), assembly.MeleeAttackOptions{
		BiteDamage:   35,
		BiteInterval: 1.5,
	})
	assembly.AddDamageModifier(prefab, enums.DamageElectrical, 2)

	spine := prefab.SearchChild("Spine", scene.Equals)
	if spine != nil {
		assembly.NewTrailManagerBuilder(prefab, c, spine).
			SetTrailsToPhysBones().
			SetAllMultiplierCurves(types.NewCurve(types.Keyframe{Time: 0, Value: 0.2}, types.Keyframe{Time: 1, Value: 1})).
			Apply()
	}
	return nil
}

func (exampleEel) Encyclopedia() domain.EncyclopediaData {
	return domain.EncyclopediaData{
		Path:  "Lifeforms/Fauna/Carnivores",
		Title: "Razor eel",
		Desc:  "Длинный хищник с электрочувствительной кожей.",
		Scan:  domain.NewScannerEntryData(4),
	}
}

func (exampleEel) PostRegister(s *Service, asset *CreatureAsset) error {
	_, err := s.RegisterCookedFish(asset.ClassID(), "Жёсткое, но сытное мясо угря.", domain.NewEdibleData(40, -5, true), nil)
	return err
}

// RegisterExamples регистрирует демонстрационный контент.
func (s *Service) RegisterExamples() error {
	info, err := s.PrefabInfo(ExampleClassID)
	if err != nil {
		return err
	}
	_, err = s.Register(exampleEel{}, info)
	return err
}
