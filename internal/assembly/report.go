package assembly

import (
	"time"

	"creature-forge/internal/core/types"
)

// Outcome - чем закончился шаг сборки.
type Outcome string

const (
	// Applied - шаг отработал.
	Applied Outcome = "applied"
	// NotConfigured - слот шаблона пуст, шаг не нужен.
	NotConfigured Outcome = "not-configured"
	// MissingDependency - в таблице нет нужного компонента, шаг пропущен.
	MissingDependency Outcome = "missing-dependency"
	// Failed - шаг отработал частично, ошибка записана в лог.
	Failed Outcome = "failed"
)

// Entry - запись об одном шаге.
type Entry struct {
	Phase   int     `json:"phase" yaml:"phase"`
	Step    string  `json:"step" yaml:"step"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`
	Detail  string  `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report - итог прохода сборки.
type Report struct {
	BuildID    string         `json:"buildId" yaml:"buildId"`
	ClassID    string         `json:"classId" yaml:"classId"`
	TechType   types.TechType `json:"techType" yaml:"techType"`
	Cloning    bool           `json:"cloning" yaml:"cloning"`
	StartedAt  time.Time      `json:"startedAt" yaml:"startedAt"`
	Duration   time.Duration  `json:"duration" yaml:"duration"`
	Entries    []Entry        `json:"entries" yaml:"entries"`
	Attached   []Capability   `json:"attached" yaml:"attached"`
	ErrorCount int            `json:"errorCount" yaml:"errorCount"`
}

func (r *Report) add(e Entry) {
	r.Entries = append(r.Entries, e)
	if e.Outcome == Failed {
		r.ErrorCount++
	}
}

// Find возвращает запись шага по имени.
func (r Report) Find(step string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Step == step {
			return e, true
		}
	}
	return Entry{}, false
}

// Count - сколько шагов закончилось с данным исходом.
func (r Report) Count(o Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == o {
			n++
		}
	}
	return n
}

// Steps возвращает имена шагов с данным исходом в порядке выполнения.
func (r Report) Steps(o Outcome) []string {
	var out []string
	for _, e := range r.Entries {
		if e.Outcome == o {
			out = append(out, e.Step)
		}
	}
	return out
}
