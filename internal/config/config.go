package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config хранит параметры запуска сервера и CLI.
type Config struct {
	Port string `env:"FORGE_PORT" envDefault:"8080"`

	// ModDir - корень мода. Бандлы моделей лежат в <ModDir>/Assets.
	ModDir string `env:"FORGE_MOD_DIR" envDefault:"."`

	// Templates - glob шаблонов существ относительно ModDir, поддерживает "**".
	Templates string `env:"FORGE_TEMPLATES" envDefault:"templates/**/*.yaml"`

	// Bundle - имя файла бандла моделей в <ModDir>/Assets.
	Bundle string `env:"FORGE_BUNDLE" envDefault:"creatures.yaml"`

	// ExampleContent - единственная сохраняемая настройка: регистрировать ли
	// демонстрационное существо. Требует перезапуска.
	ExampleContent bool `env:"FORGE_EXAMPLE_CONTENT" envDefault:"false"`

	// Prewarm - собрать все префабы сразу после старта сервера.
	Prewarm bool `env:"FORGE_PREWARM" envDefault:"false"`

	// ReportDir - куда писать отчёты сборки. Пусто, не писать.
	ReportDir string `env:"FORGE_REPORT_DIR"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load читает конфиг из окружения.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
