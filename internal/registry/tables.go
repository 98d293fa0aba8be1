package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"creature-forge/internal/core/types"
	"creature-forge/internal/core/types/enums"
	"creature-forge/internal/domain"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ItemSounds - звуковые события предмета.
type ItemSounds struct {
	Pickup string `json:"pickup" yaml:"pickup"`
	Drop   string `json:"drop" yaml:"drop"`
	Eat    string `json:"eat" yaml:"eat"`
}

// WorldEntityInfo - как хост стримит сущность в мире.
type WorldEntityInfo struct {
	ClassID    string               `json:"classId" yaml:"classId"`
	TechType   types.TechType       `json:"techType" yaml:"techType"`
	CellLevel  enums.CellLevel      `json:"cellLevel" yaml:"cellLevel"`
	SlotType   enums.EntitySlotType `json:"slotType" yaml:"slotType"`
	LocalScale types.Vec3           `json:"localScale" yaml:"localScale"`
	PrefabZUp  bool                 `json:"prefabZUp" yaml:"prefabZUp"`
}

// EncyclopediaEntry - статья КПК.
type EncyclopediaEntry struct {
	Key   string   `json:"key" yaml:"key"`
	Path  string   `json:"path" yaml:"path"`
	Nodes []string `json:"nodes" yaml:"nodes"`
	Image string   `json:"image,omitempty" yaml:"image,omitempty"`
	Popup string   `json:"popup,omitempty" yaml:"popup,omitempty"`
	Sound string   `json:"sound" yaml:"sound"`
}

// ScannerEntry - запись сканера, открывающая статью.
type ScannerEntry struct {
	Key              types.TechType `json:"key" yaml:"key"`
	Encyclopedia     string         `json:"encyclopedia" yaml:"encyclopedia"`
	ScanTime         float64        `json:"scanTime" yaml:"scanTime"`
	IsFragment       bool           `json:"isFragment" yaml:"isFragment"`
	Blueprint        types.TechType `json:"blueprint" yaml:"blueprint"`
	DestroyAfterScan bool           `json:"destroyAfterScan" yaml:"destroyAfterScan"`
	TotalFragments   int            `json:"totalFragments" yaml:"totalFragments"`
}

// Ingredient - компонент рецепта.
type Ingredient struct {
	TechType types.TechType `json:"techType" yaml:"techType"`
	Amount   int            `json:"amount" yaml:"amount"`
}

// Recipe - рецепт фабрикатора и путь к вкладке.
type Recipe struct {
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
	Fabricator  string       `json:"fabricator" yaml:"fabricator"`
	Steps       []string     `json:"steps" yaml:"steps"`
}

// UnlockEncyclopediaSound - звук открытия новой статьи.
const UnlockEncyclopediaSound = "event:/tools/scanner/new_encyclopediea"

// Tables - глобальные таблицы хоста, заполняемые при регистрации.
// Все операции, идемпотентные upsert'ы.
type Tables struct {
	mu sync.RWMutex

	acidImmune       []types.TechType
	bioReactorCharge map[types.TechType]float64
	equipment        map[types.TechType]enums.EquipmentType
	behaviour        map[types.TechType]enums.BehaviourType
	sounds           map[types.TechType]ItemSounds
	worldEntities    map[string]WorldEntityInfo
	encyclopedia     map[string]EncyclopediaEntry
	scanner          map[types.TechType]ScannerEntry
	language         map[string]string
	recipes          map[types.TechType]Recipe
}

func NewTables() *Tables {
	return &Tables{
		bioReactorCharge: make(map[types.TechType]float64),
		equipment:        make(map[types.TechType]enums.EquipmentType),
		behaviour:        make(map[types.TechType]enums.BehaviourType),
		sounds:           make(map[types.TechType]ItemSounds),
		worldEntities:    make(map[string]WorldEntityInfo),
		encyclopedia:     make(map[string]EncyclopediaEntry),
		scanner:          make(map[types.TechType]ScannerEntry),
		language:         make(map[string]string),
		recipes:          make(map[types.TechType]Recipe),
	}
}

// AssignPatchTimeData записывает данные шаблона в глобальные таблицы
// и возвращает WorldEntityInfo, под которым сущность зарегистрирована.
func (t *Tables) AssignPatchTimeData(tmpl *domain.CreatureTemplate, classID string, tt types.TechType) WorldEntityInfo {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tmpl.AcidImmune {
		t.setAcidImmuneLocked(tt)
	}
	if tmpl.BioReactorCharge > 0 {
		t.bioReactorCharge[tt] = tmpl.BioReactorCharge
	}
	if tmpl.PickupableFishData != nil && tmpl.PickupableFishData.CanBeHeld {
		t.equipment[tt] = enums.EquipmentHand
	}
	t.behaviour[tt] = tmpl.BehaviourType
	t.sounds[tt] = ItemSounds{
		Pickup: tmpl.ItemSoundsType.PickupSound(),
		Drop:   tmpl.ItemSoundsType.DropSound(),
		Eat:    tmpl.ItemSoundsType.EatSound(),
	}

	info := WorldEntityInfo{
		ClassID:    classID,
		TechType:   tt,
		CellLevel:  tmpl.CellLevel,
		SlotType:   enums.SlotCreature,
		LocalScale: types.Splat(1),
	}
	t.worldEntities[classID] = info

	logger.Log.WithFields(logrus.Fields{
		"class_id":  classID,
		"tech_type": tt,
		"behaviour": tmpl.BehaviourType,
	}).Debug("Patch-time data assigned")

	return info
}

// SetAcidImmune добавляет тип в список неуязвимых к кислоте.
func (t *Tables) SetAcidImmune(tt types.TechType) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setAcidImmuneLocked(tt)
}

func (t *Tables) setAcidImmuneLocked(tt types.TechType) {
	for _, v := range t.acidImmune {
		if v == tt {
			return
		}
	}
	t.acidImmune = append(t.acidImmune, tt)
}

// SetWorldEntityInfo - прямая запись, используется вариантами еды.
func (t *Tables) SetWorldEntityInfo(info WorldEntityInfo) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.worldEntities[info.ClassID] = info
}

// SetRecipe регистрирует рецепт для типа.
func (t *Tables) SetRecipe(tt types.TechType, r Recipe) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recipes[tt] = r
}

// SetLanguageLine задаёт строку локализации.
func (t *Tables) SetLanguageLine(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.language[key] = value
}

// EncyclopediaRequest - параметры AddPDAEncyclopediaEntry.
type EncyclopediaRequest struct {
	ClassID  string
	TechType types.TechType
	Path     string
	Title    string
	Desc     string
	Image    string
	Popup    string
	Scan     *domain.ScannerEntryData
}

// AddPDAEncyclopediaEntry добавляет статью КПК, запись сканера и строки локализации.
// Пустой путь, статьи нет, вызов ничего не делает.
func (t *Tables) AddPDAEncyclopediaEntry(req EncyclopediaRequest) error {
	if req.Path == "" {
		return nil
	}
	if req.ClassID == "" {
		return fmt.Errorf("encyclopedia entry for %q: class id is empty", req.Path)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.encyclopedia[req.ClassID] = EncyclopediaEntry{
		Key:   req.ClassID,
		Path:  req.Path,
		Nodes: strings.Split(req.Path, "/"),
		Image: req.Image,
		Popup: req.Popup,
		Sound: UnlockEncyclopediaSound,
	}

	if req.Scan != nil {
		t.scanner[req.TechType] = ScannerEntry{
			Key:              req.TechType,
			Encyclopedia:     req.ClassID,
			ScanTime:         req.Scan.ScanTime,
			IsFragment:       req.Scan.IsFragment,
			Blueprint:        req.Scan.BlueprintToUnlock,
			DestroyAfterScan: req.Scan.DestroyAfterScan,
			TotalFragments:   req.Scan.TotalFragments,
		}
	}

	if req.Title != "" {
		t.language["Ency_"+req.ClassID] = req.Title
	}
	if req.Desc != "" {
		t.language["EncyDesc_"+req.ClassID] = req.Desc
	}
	return nil
}

// --- Чтение ---

func (t *Tables) IsAcidImmune(tt types.TechType) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, v := range t.acidImmune {
		if v == tt {
			return true
		}
	}
	return false
}

func (t *Tables) BioReactorCharge(tt types.TechType) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.bioReactorCharge[tt]
	return v, ok
}

func (t *Tables) Equipment(tt types.TechType) (enums.EquipmentType, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.equipment[tt]
	return v, ok
}

func (t *Tables) Behaviour(tt types.TechType) (enums.BehaviourType, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.behaviour[tt]
	return v, ok
}

func (t *Tables) Sounds(tt types.TechType) (ItemSounds, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.sounds[tt]
	return v, ok
}

func (t *Tables) WorldEntity(classID string) (WorldEntityInfo, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.worldEntities[classID]
	return v, ok
}

func (t *Tables) Encyclopedia(classID string) (EncyclopediaEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.encyclopedia[classID]
	return v, ok
}

func (t *Tables) Scanner(tt types.TechType) (ScannerEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.scanner[tt]
	return v, ok
}

func (t *Tables) LanguageLine(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.language[key]
	return v, ok
}

func (t *Tables) Recipe(tt types.TechType) (Recipe, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.recipes[tt]
	return v, ok
}

// Snapshot - копия таблиц для debug-эндпоинтов и отчётов.
// Ключи TechType переводятся в строки, чтобы JSON/YAML были читаемы.
type Snapshot struct {
	AcidImmune       []string                     `json:"acidImmune" yaml:"acidImmune"`
	BioReactorCharge map[string]float64           `json:"bioReactorCharge" yaml:"bioReactorCharge"`
	Equipment        map[string]string            `json:"equipment" yaml:"equipment"`
	Behaviour        map[string]string            `json:"behaviour" yaml:"behaviour"`
	Sounds           map[string]ItemSounds        `json:"sounds" yaml:"sounds"`
	WorldEntities    map[string]WorldEntityInfo   `json:"worldEntities" yaml:"worldEntities"`
	Encyclopedia     map[string]EncyclopediaEntry `json:"encyclopedia" yaml:"encyclopedia"`
	Scanner          map[string]ScannerEntry      `json:"scanner" yaml:"scanner"`
	Language         map[string]string            `json:"language" yaml:"language"`
	Recipes          map[string]Recipe            `json:"recipes" yaml:"recipes"`
}

// Snapshot снимает копию. name переводит TechType в имя (nil, String()).
func (t *Tables) Snapshot(name func(types.TechType) string) Snapshot {
	if name == nil {
		name = types.TechType.String
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Snapshot{
		BioReactorCharge: make(map[string]float64, len(t.bioReactorCharge)),
		Equipment:        make(map[string]string, len(t.equipment)),
		Behaviour:        make(map[string]string, len(t.behaviour)),
		Sounds:           make(map[string]ItemSounds, len(t.sounds)),
		WorldEntities:    make(map[string]WorldEntityInfo, len(t.worldEntities)),
		Encyclopedia:     make(map[string]EncyclopediaEntry, len(t.encyclopedia)),
		Scanner:          make(map[string]ScannerEntry, len(t.scanner)),
		Language:         make(map[string]string, len(t.language)),
		Recipes:          make(map[string]Recipe, len(t.recipes)),
	}
	for _, tt := range t.acidImmune {
		s.AcidImmune = append(s.AcidImmune, name(tt))
	}
	sort.Strings(s.AcidImmune)
	for k, v := range t.bioReactorCharge {
		s.BioReactorCharge[name(k)] = v
	}
	for k, v := range t.equipment {
		s.Equipment[name(k)] = v.String()
	}
	for k, v := range t.behaviour {
		s.Behaviour[name(k)] = v.String()
	}
	for k, v := range t.sounds {
		s.Sounds[name(k)] = v
	}
	for k, v := range t.worldEntities {
		s.WorldEntities[k] = v
	}
	for k, v := range t.encyclopedia {
		s.Encyclopedia[k] = v
	}
	for k, v := range t.scanner {
		s.Scanner[name(k)] = v
	}
	for k, v := range t.language {
		s.Language[k] = v
	}
	for k, v := range t.recipes {
		s.Recipes[name(k)] = v
	}
	return s
}
