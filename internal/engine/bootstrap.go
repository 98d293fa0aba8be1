package engine

import (
	"errors"
	"io/fs"

	"creature-forge/internal/config"
	"creature-forge/internal/infrastructure/storage"
	"creature-forge/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bootstrap создаёт сервис и регистрирует весь контент мода из cfg:
// бандл моделей, YAML-шаблоны и, если включено, демонстрационное существо.
//
// Сервис возвращается всегда. Ошибка собирает всё, что не удалось
// зарегистрировать; отсутствие бандла или шаблонов ошибкой не считается.
func Bootstrap(cfg config.Config, reg PrefabRegistrar) (*Service, error) {
	log := logger.For("engine").WithFields(logrus.Fields{
		"mod_dir":   cfg.ModDir,
		"templates": cfg.Templates,
	})

	svc := NewService(reg)
	var errs []error

	if cfg.ReportDir != "" {
		rs, err := storage.NewReportService(cfg.ReportDir)
		if err != nil {
			errs = append(errs, err)
		} else {
			svc.Reports = rs
		}
	}

	bundle, err := storage.ReadBundle(cfg.ModDir, cfg.Bundle)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("bundle", cfg.Bundle).Warn("Model bundle not found, only clone templates will load")
		bundle = nil
	case err != nil:
		errs = append(errs, err)
		bundle = nil
	}

	docs, err := storage.ReadTemplates(cfg.ModDir, cfg.Templates)
	switch {
	case errors.Is(err, storage.ErrNoTemplates):
		log.Info("No creature templates found")
	case err != nil:
		errs = append(errs, err)
	default:
		created, err := svc.RegisterDocuments(docs, bundle)
		if err != nil {
			errs = append(errs, err)
		}
		log.WithFields(logrus.Fields{
			"documents":  len(docs),
			"registered": len(created),
		}).Info("Templates loaded")
	}

	if cfg.ExampleContent {
		if err := svc.RegisterExamples(); err != nil {
			errs = append(errs, err)
		}
	}
	return svc, errors.Join(errs...)
}
