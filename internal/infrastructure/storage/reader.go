package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"creature-forge/internal/assembly"

	"gopkg.in/yaml.v3"
)

func (s *ReportService) Load(path string) (assembly.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return assembly.Report{}, err
	}
	defer f.Close()

	return readReport(f)
}

func readReport(r io.Reader) (assembly.Report, error) {
	br := bufio.NewReader(r)

	// 1. Заголовок
	header, err := br.ReadString('\n')
	if err != nil {
		return assembly.Report{}, fmt.Errorf("failed to read header: %w", err)
	}
	if strings.TrimSpace(header) != ReportHeader {
		return assembly.Report{}, fmt.Errorf("invalid header")
	}

	// 2. Тело
	var file reportFile
	if err := yaml.NewDecoder(br).Decode(&file); err != nil {
		return assembly.Report{}, fmt.Errorf("decode report: %w", err)
	}
	if file.Version != Version1 {
		return assembly.Report{}, fmt.Errorf("unsupported version: %d (expected %d)", file.Version, Version1)
	}
	return file.Report, nil
}
