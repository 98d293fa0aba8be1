package version

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X creature-forge/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Name - имя продукта в баннерах, /version и `forge version`.
const Name = "creature-forge"

// buildEpoch - день первого коммита, от него считается BuildID.
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

var errNoBuildDate = errors.New("build date is not set")

// VersionInfo - метаданные сборки для /version и баннера сервера.
type VersionInfo struct {
	Name       string `json:"name"`
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate"`
	Commit     string `json:"commit"`
	Modified   bool   `json:"modified,omitempty"`
	Branch     string `json:"branch"`
	CI         string `json:"ci"`
	Go         string `json:"go"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// BuildIDFor - номер сборки: сколько полных дней прошло от buildEpoch до date.
func BuildIDFor(date string) (int, error) {
	if date == "" {
		return 0, errNoBuildDate
	}

	t, err := time.ParseInLocation(time.DateOnly, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before %s", date, buildEpoch.Format(time.DateOnly))
	}

	// Обе даты в UTC, переходов на летнее время нет.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// CalculateBuildID считает номер по BuildDate.
func CalculateBuildID() (int, error) {
	return BuildIDFor(BuildDate)
}

// Info собирает метаданные. Если коммит не передан через ldflags,
// берётся vcs.revision из информации о сборке Go.
func Info() VersionInfo {
	info := VersionInfo{
		Name:      Name,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
		Go:        runtime.Version(),
	}
	if info.Commit == "" {
		info.Commit, info.Modified = vcsRevision()
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

func vcsRevision() (rev string, modified bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return rev, modified
}

// String - строка для баннера.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("%s build unknown (%s)", info.Name, info.Error)
	}

	commit := coalesce(info.Commit, "unknown")
	if info.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("%s build %d (%s) commit[%s] branch[%s] ci[%s]",
		info.Name, info.BuildID, info.BuildDate, commit,
		coalesce(info.Branch, "unknown"), coalesce(info.CI, "local"))
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
