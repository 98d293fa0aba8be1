package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"creature-forge/internal/assembly"
	"creature-forge/internal/core/types"
	"creature-forge/internal/domain"
	"creature-forge/internal/network"
	"creature-forge/internal/references"
	"creature-forge/internal/registry"
	"creature-forge/internal/scene"
	"creature-forge/pkg/api"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Ошибки регистрации. Все они возвращаются до записи в любые таблицы.
var (
	ErrMissingTechType   = errors.New("tech type is not set")
	ErrMissingClassID    = errors.New("class id is empty")
	ErrMissingModel      = errors.New("template has no model")
	ErrDuplicateIdentity = errors.New("identity already registered")
	ErrSelfClone         = errors.New("template clones its own tech type")
)

// ReportSink сохраняет отчёты сборки.
type ReportSink interface {
	Save(report assembly.Report) (string, error)
}

// Spawner умеет выдавать готовые экземпляры по ClassID.
type Spawner interface {
	Spawn(ctx context.Context, classID string) (*scene.Node, error)
}

// Service владеет всем состоянием процесса: реестром идентичностей,
// глобальными таблицами, кэшем общих ассетов и реестром префабов.
type Service struct {
	Identities *registry.Identities
	Tables     *registry.Tables
	TechTypes  *registry.TechTypes
	References *references.Loader
	Registrar  PrefabRegistrar
	Hub        *network.Broadcaster

	// Reports - куда сохранять отчёты. nil, не сохранять.
	Reports ReportSink

	assembler *assembly.Assembler

	// regMu держит регистрацию целиком: проверка, хост, таблицы.
	regMu sync.Mutex

	mu        sync.RWMutex
	creatures map[string]*CreatureAsset
	variants  map[string]PrefabInfo
	reports   map[string]assembly.Report
}

// cloneSource отдаёт загрузчику ссылок префабы через реестр.
type cloneSource struct{ PrefabRegistrar }

func (c cloneSource) Prefab(ctx context.Context, tt types.TechType) (*scene.Node, error) {
	return c.Clone(ctx, tt)
}

func NewService(reg PrefabRegistrar) *Service {
	return &Service{
		Identities: registry.NewIdentities(),
		Tables:     registry.NewTables(),
		TechTypes:  registry.NewTechTypes(),
		References: references.NewLoader(cloneSource{reg}),
		Registrar:  reg,
		Hub:        network.NewBroadcaster(),
		assembler:  assembly.NewAssembler(),
		creatures:  make(map[string]*CreatureAsset),
		variants:   make(map[string]PrefabInfo),
		reports:    make(map[string]assembly.Report),
	}
}

// PrefabInfo выделяет TechType под classID и возвращает ключ регистрации.
func (s *Service) PrefabInfo(classID string) (PrefabInfo, error) {
	if classID == "" {
		return PrefabInfo{}, ErrMissingClassID
	}
	tt, err := s.TechTypes.Ensure(classID)
	if err != nil {
		return PrefabInfo{}, err
	}
	return PrefabInfo{ClassID: classID, TechType: tt}, nil
}

// Register проверяет определение, отдаёт хосту отложенную сборку и
// записывает данные в глобальные таблицы. ClassID и TechType должны быть
// свободны, иначе ErrDuplicateIdentity. Если хост отказал, ничего не занято.
func (s *Service) Register(def Definition, info PrefabInfo) (*CreatureAsset, error) {
	log := logger.For("engine").WithFields(logrus.Fields{
		"class_id":  info.ClassID,
		"tech_type": info.TechType,
	})

	tmpl, err := s.validate(def, info)
	if err != nil {
		log.WithError(err).Error("Registration rejected")
		return nil, err
	}

	asset := &CreatureAsset{Info: info, Template: tmpl, Definition: def}

	s.regMu.Lock()
	if err := s.claim(info, s.build(asset)); err != nil {
		s.regMu.Unlock()
		log.WithError(err).Error("Registration rejected")
		return nil, err
	}

	s.Tables.AssignPatchTimeData(tmpl, info.ClassID, info.TechType)

	if e, ok := def.(Encyclopedic); ok {
		entry := e.Encyclopedia()
		err := s.Tables.AddPDAEncyclopediaEntry(registry.EncyclopediaRequest{
			ClassID:  info.ClassID,
			TechType: info.TechType,
			Path:     entry.Path,
			Title:    entry.Title,
			Desc:     entry.Desc,
			Image:    entry.Image,
			Popup:    entry.Popup,
			Scan:     entry.Scan,
		})
		if err != nil {
			log.WithError(err).Warn("Encyclopedia entry skipped")
		}
	}

	s.mu.Lock()
	s.creatures[info.ClassID] = asset
	s.mu.Unlock()
	s.regMu.Unlock()

	log.Info("Creature registered")
	s.Hub.Broadcast(api.BuildEvent{
		Type:      api.EventRegistered,
		ClassID:   info.ClassID,
		TechType:  s.TechTypes.Name(info.TechType),
		Timestamp: time.Now().UnixMilli(),
	})

	if p, ok := def.(PostRegisterer); ok {
		if err := p.PostRegister(s, asset); err != nil {
			log.WithError(err).Error("Post-registration failed")
			return asset, fmt.Errorf("post register %s: %w", info.ClassID, err)
		}
	}
	return asset, nil
}

// claim проверяет, что ClassID и TechType свободны, регистрирует сборку
// у хоста и только затем занимает идентичность. Вызывается под regMu.
// Хост получает сборку раньше, чем заполнены таблицы: сборка их не читает.
func (s *Service) claim(info PrefabInfo, build BuildFunc) error {
	if s.Identities.Claimed(info.ClassID) {
		return fmt.Errorf("%s: %w", info.ClassID, ErrDuplicateIdentity)
	}
	if owner, ok := s.Identities.Owner(info.TechType); ok {
		return fmt.Errorf("%s: tech type %s belongs to %s: %w", info.ClassID, info.TechType, owner, ErrDuplicateIdentity)
	}
	if err := s.Registrar.Register(info, build); err != nil {
		return fmt.Errorf("register prefab %s: %w", info.ClassID, err)
	}
	if !s.Identities.TryClaimIdentity(info.ClassID, info.TechType) {
		return fmt.Errorf("%s: %w", info.ClassID, ErrDuplicateIdentity)
	}
	return nil
}

func (s *Service) validate(def Definition, info PrefabInfo) (*domain.CreatureTemplate, error) {
	if info.TechType.IsNone() {
		return nil, ErrMissingTechType
	}
	if info.ClassID == "" {
		return nil, ErrMissingClassID
	}
	if def == nil {
		return nil, ErrMissingModel
	}
	tmpl := def.CreateTemplate()
	if tmpl == nil {
		return nil, ErrMissingModel
	}
	if tmpl.TechTypeToClone.IsNone() && tmpl.Model == nil {
		return nil, ErrMissingModel
	}
	if tmpl.TechTypeToClone == info.TechType {
		return nil, ErrSelfClone
	}
	return tmpl, nil
}

// build возвращает отложенную сборку префаба.
func (s *Service) build(asset *CreatureAsset) BuildFunc {
	return func(ctx context.Context) (*scene.Node, error) {
		info := asset.Info
		tmpl := asset.Template
		log := logger.For("engine").WithFields(logrus.Fields{"class_id": info.ClassID})

		refs, err := s.References.Load(ctx)
		if err != nil {
			return nil, s.fail(info, err)
		}

		cloning := !tmpl.TechTypeToClone.IsNone()
		var prefab *scene.Node
		if cloning {
			prefab, err = s.Registrar.Clone(ctx, tmpl.TechTypeToClone)
			if err != nil {
				return nil, s.fail(info, fmt.Errorf("clone %s: %w", tmpl.TechTypeToClone, err))
			}
		} else {
			prefab = tmpl.Model.Clone()
		}
		prefab.Name = info.ClassID
		prefab.SetActive(false)

		c, report := s.assembler.Assemble(assembly.Input{
			Root:       prefab,
			Template:   tmpl,
			Identity:   assembly.Identity{ClassID: info.ClassID, TechType: info.TechType},
			References: refs,
			Cloning:    cloning,
		})

		if err := asset.Definition.ModifyPrefab(ctx, prefab, c); err != nil {
			return nil, s.fail(info, fmt.Errorf("modify prefab: %w", err))
		}
		applyMaterials(asset.Definition, prefab)

		s.record(report)
		log.WithFields(logrus.Fields{"build_id": report.BuildID}).Info("Prefab built")
		return prefab, nil
	}
}

func (s *Service) fail(info PrefabInfo, err error) error {
	logger.For("engine").WithFields(logrus.Fields{"class_id": info.ClassID}).WithError(err).Error("Prefab build failed")
	s.Hub.Broadcast(api.BuildEvent{
		Type:      api.EventFailed,
		ClassID:   info.ClassID,
		TechType:  s.TechTypes.Name(info.TechType),
		Message:   err.Error(),
		Timestamp: time.Now().UnixMilli(),
	})
	return err
}

func (s *Service) record(report assembly.Report) {
	s.mu.Lock()
	s.reports[report.ClassID] = report
	s.mu.Unlock()

	if s.Reports != nil {
		if _, err := s.Reports.Save(report); err != nil {
			logger.For("engine").WithError(err).Warn("Failed to save assembly report")
		}
	}

	s.Hub.Broadcast(api.BuildEvent{
		Type:      api.EventBuilt,
		ClassID:   report.ClassID,
		TechType:  s.TechTypes.Name(report.TechType),
		BuildID:   report.BuildID,
		Report:    ReportView(report),
		Timestamp: time.Now().UnixMilli(),
	})
}

// ReportView переводит отчёт в DTO.
func ReportView(r assembly.Report) *api.ReportView {
	attached := make([]string, len(r.Attached))
	for i, c := range r.Attached {
		attached[i] = string(c)
	}
	return &api.ReportView{
		Cloning:    r.Cloning,
		DurationMs: r.Duration.Milliseconds(),
		Attached:   attached,
		Skipped:    r.Steps(assembly.MissingDependency),
		Failed:     r.Steps(assembly.Failed),
		ErrorCount: r.ErrorCount,
	}
}

// Creature возвращает зарегистрированное существо.
func (s *Service) Creature(classID string) (*CreatureAsset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.creatures[classID]
	return a, ok
}

// Report - отчёт последней сборки существа.
func (s *Service) Report(classID string) (assembly.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[classID]
	return r, ok
}

// Spawn собирает префаб (если ещё не собран) и выдаёт экземпляр.
func (s *Service) Spawn(ctx context.Context, classID string) (*scene.Node, error) {
	sp, ok := s.Registrar.(Spawner)
	if !ok {
		return nil, errors.New("registrar cannot spawn instances")
	}
	return sp.Spawn(ctx, classID)
}

// Catalog - все существа и варианты, отсортированные по ClassID.
func (s *Service) Catalog() []api.CreatureView {
	built, _ := s.Registrar.(interface{ Built(string) bool })

	s.mu.RLock()
	out := make([]api.CreatureView, 0, len(s.creatures)+len(s.variants))
	for id, a := range s.creatures {
		out = append(out, api.CreatureView{ClassID: id, TechType: s.TechTypes.Name(a.Info.TechType)})
	}
	for id, info := range s.variants {
		out = append(out, api.CreatureView{ClassID: id, TechType: s.TechTypes.Name(info.TechType), Variant: true})
	}
	s.mu.RUnlock()

	for i := range out {
		if built != nil {
			out[i].Built = built.Built(out[i].ClassID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClassID < out[j].ClassID })
	return out
}
