package assembly

import (
	"fmt"
	"strings"
	"time"

	"creature-forge/internal/core/types"
	"creature-forge/internal/domain"
	"creature-forge/internal/references"
	"creature-forge/internal/scene"
	"creature-forge/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Identity - ключ регистрации существа.
type Identity struct {
	ClassID  string         `json:"classId" yaml:"classId"`
	TechType types.TechType `json:"techType" yaml:"techType"`
}

// Input - всё, что нужно одному проходу сборки.
type Input struct {
	Root       *scene.Node
	Template   *domain.CreatureTemplate
	Identity   Identity
	References references.Set
	// Cloning - префаб получен клонированием существующего существа,
	// его контроллер переиспользуется.
	Cloning bool
}

// step - один шаг конвейера.
// when == nil, шаг безусловный. requires проверяется только если шаг нужен.
type step struct {
	phase    int
	name     string
	requires []Capability
	when     func(*pass) bool
	run      func(*pass) error
}

// pass - состояние одного прохода.
type pass struct {
	root    *scene.Node
	tmpl    *domain.CreatureTemplate
	id      Identity
	refs    references.Set
	cloning bool
	c       *Components
	log     *logrus.Entry

	modelsResolved bool
}

// Assembler проходит по шагам строго по порядку и прикрепляет компоненты к узлу.
// Сборка не возвращает ошибок: пропуски и сбои попадают в лог и Report.
type Assembler struct {
	steps []step
}

func NewAssembler() *Assembler {
	return &Assembler{steps: pipeline()}
}

// StepNames - имена шагов в порядке выполнения.
func (a *Assembler) StepNames() []string {
	out := make([]string, len(a.steps))
	for i, s := range a.steps {
		out[i] = s.name
	}
	return out
}

// Assemble прикрепляет компоненты по шаблону и возвращает таблицу и отчёт.
func (a *Assembler) Assemble(in Input) (*Components, Report) {
	started := time.Now()
	p := &pass{
		root:    in.Root,
		tmpl:    in.Template,
		id:      in.Identity,
		refs:    in.References,
		cloning: in.Cloning,
		c:       &Components{},
		log: logger.For("assembly").WithFields(logrus.Fields{
			"class_id":  in.Identity.ClassID,
			"tech_type": in.Identity.TechType,
		}),
	}
	report := Report{
		BuildID:   uuid.NewString(),
		ClassID:   in.Identity.ClassID,
		TechType:  in.Identity.TechType,
		Cloning:   in.Cloning,
		StartedAt: started,
	}

	if p.root == nil || p.tmpl == nil {
		p.log.Error("Nothing to assemble: node or template is nil")
		report.add(Entry{Step: "input", Outcome: Failed, Detail: "node or template is nil"})
		return p.c, report
	}

	for _, s := range a.steps {
		report.add(a.runStep(p, s))
	}

	report.Duration = time.Since(started)
	report.Attached = p.c.Present()

	p.log.WithFields(logrus.Fields{
		"build_id": report.BuildID,
		"applied":  report.Count(Applied),
		"skipped":  report.Count(MissingDependency),
		"errors":   report.ErrorCount,
	}).Info("Creature assembled")

	return p.c, report
}

func (a *Assembler) runStep(p *pass, s step) Entry {
	e := Entry{Phase: s.phase, Step: s.name}

	if s.when != nil && !s.when(p) {
		e.Outcome = NotConfigured
		return e
	}

	var missing []string
	for _, req := range s.requires {
		if !p.c.Has(req) {
			missing = append(missing, string(req))
		}
	}
	if len(missing) > 0 {
		e.Outcome = MissingDependency
		e.Detail = "requires " + strings.Join(missing, ", ")
		p.log.WithFields(logrus.Fields{"step": s.name, "missing": missing}).Debug("Step skipped")
		return e
	}

	if err := s.run(p); err != nil {
		e.Outcome = Failed
		e.Detail = err.Error()
		p.log.WithFields(logrus.Fields{"step": s.name}).WithError(err).Error("Step failed")
		return e
	}
	e.Outcome = Applied
	return e
}

// heldModels находит мировую и view-модель рыбы в руках (один раз за проход).
func (p *pass) heldModels() (world, view *scene.Node) {
	if !p.modelsResolved {
		p.modelsResolved = true
		worldName, viewName := p.tmpl.HeldModelNames()
		if worldName != "" {
			p.c.WorldModel = p.root.SearchChild(worldName, scene.Equals)
		}
		if viewName != "" {
			p.c.ViewModel = p.root.SearchChild(viewName, scene.Equals)
		}
	}
	return p.c.WorldModel, p.c.ViewModel
}

func errNotFound(what, name string) error {
	return fmt.Errorf("%s %q not found in prefab", what, name)
}
