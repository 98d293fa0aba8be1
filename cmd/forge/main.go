// Command forge собирает существ мода без сервера: загружает шаблоны,
// прогоняет сборщик по каждому и печатает отчёты и таблицы хоста.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"creature-forge/internal/assembly"
	"creature-forge/internal/assets"
	"creature-forge/internal/config"
	"creature-forge/internal/engine"
	"creature-forge/internal/infrastructure/storage"
	"creature-forge/internal/version"
	"creature-forge/pkg/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options перекрывают значения из окружения, если флаг задан.
type options struct {
	modDir    string
	templates string
	bundle    string
	reportDir string
	examples  bool
	logLevel  string
}

func (o *options) bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.modDir, "mod-dir", "", "Mod root directory (FORGE_MOD_DIR)")
	f.StringVar(&o.templates, "templates", "", "Template glob relative to mod dir (FORGE_TEMPLATES)")
	f.StringVar(&o.bundle, "bundle", "", "Model bundle file in <mod-dir>/Assets (FORGE_BUNDLE)")
	f.StringVar(&o.reportDir, "report-dir", "", "Write assembly reports here (FORGE_REPORT_DIR)")
	f.BoolVar(&o.examples, "examples", false, "Register example content (FORGE_EXAMPLE_CONTENT)")
	f.StringVar(&o.logLevel, "log-level", "", "Log level (LOG_LEVEL)")
}

func (o *options) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	if f.Changed("mod-dir") {
		cfg.ModDir = o.modDir
	}
	if f.Changed("templates") {
		cfg.Templates = o.templates
	}
	if f.Changed("bundle") {
		cfg.Bundle = o.bundle
	}
	if f.Changed("report-dir") {
		cfg.ReportDir = o.reportDir
	}
	if f.Changed("examples") {
		cfg.ExampleContent = o.examples
	}
	if f.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	return cfg, nil
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "forge",
		Short:         "Assemble creature prefabs from mod templates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.bind(cmd)

	cmd.AddCommand(assembleCmd(opts), validateCmd(opts), versionCmd())
	return cmd
}

func assembleCmd(opts *options) *cobra.Command {
	var tables bool

	cmd := &cobra.Command{
		Use:   "assemble [classId...]",
		Short: "Build prefabs and print assembly reports",
		Long: `Registers every template of the mod, builds the requested creatures
(all of them by default) and prints one YAML report per build.
With --tables the host tables snapshot is printed as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			svc, err := engine.Bootstrap(cfg, engine.NewMemoryRegistrar(assets.Vanilla()))
			if err != nil {
				logger.For("forge").WithError(err).Warn("Some content failed to register")
			}
			return assemble(cmd.Context(), cmd.OutOrStdout(), svc, args, tables)
		},
	}
	cmd.Flags().BoolVar(&tables, "tables", false, "Also print the host tables snapshot")
	return cmd
}

func assemble(ctx context.Context, out io.Writer, svc *engine.Service, classIDs []string, tables bool) error {
	if len(classIDs) == 0 {
		for _, c := range svc.Catalog() {
			if !c.Variant {
				classIDs = append(classIDs, c.ClassID)
			}
		}
	}
	sort.Strings(classIDs)

	var failed int
	reports := make([]assembly.Report, 0, len(classIDs))
	for _, id := range classIDs {
		if _, err := svc.Spawn(ctx, id); err != nil {
			fmt.Fprintf(out, "# %s: %v\n", id, err)
			failed++
			continue
		}
		if r, ok := svc.Report(id); ok {
			reports = append(reports, r)
		}
	}

	for _, r := range reports {
		if err := storage.WriteYAML(out, r); err != nil {
			return err
		}
		fmt.Fprintln(out, "---")
	}
	if tables {
		if err := storage.WriteYAML(out, svc.Tables.Snapshot(svc.TechTypes.Name)); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d creatures failed to build", failed, len(classIDs))
	}
	return nil
}

func validateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every template registers and builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			svc, err := engine.Bootstrap(cfg, engine.NewMemoryRegistrar(assets.Vanilla()))
			if err != nil {
				return err
			}

			var broken int
			for _, c := range svc.Catalog() {
				if _, err := svc.Spawn(cmd.Context(), c.ClassID); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", c.ClassID, err)
					broken++
					continue
				}
				if r, ok := svc.Report(c.ClassID); ok && r.ErrorCount > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "WARN %s: %d step(s) failed\n", c.ClassID, r.ErrorCount)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK   %s\n", c.ClassID)
			}
			if broken > 0 {
				return fmt.Errorf("%d prefab(s) failed to build", broken)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
