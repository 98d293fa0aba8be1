package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"creature-forge/internal/assembly"

	"gopkg.in/yaml.v3"
)

const (
	// ReportHeader - первая строка файла отчёта.
	ReportHeader = "# creature-forge assembly report"
	Version1     = 1
)

// reportFile - то, что лежит на диске: версия формата и сам отчёт.
type reportFile struct {
	Version int             `yaml:"version"`
	Report  assembly.Report `yaml:"report"`
}

// ReportService сохраняет отчёты сборки в SaveDir.
type ReportService struct {
	SaveDir string
}

func NewReportService(dir string) (*ReportService, error) {
	// Создаем папку если нет
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &ReportService{SaveDir: dir}, nil
}

// Save пишет отчёт в отдельный файл и возвращает путь к нему.
func (s *ReportService) Save(report assembly.Report) (string, error) {
	filename := fmt.Sprintf("report_%s_%s.yaml", report.ClassID, report.BuildID)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeReport(f, report); err != nil {
		return "", err
	}
	return path, nil
}

func writeReport(w io.Writer, r assembly.Report) error {
	if _, err := fmt.Fprintln(w, ReportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return WriteYAML(w, reportFile{Version: Version1, Report: r})
}

// WriteYAML кодирует v с отступом в два пробела.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
