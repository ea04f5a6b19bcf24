package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
	"github.com/promptcmd/promptcmd/config/resolver"
	"github.com/promptcmd/promptcmd/core"
	"github.com/promptcmd/promptcmd/installer"
	"github.com/promptcmd/promptcmd/o11y"
	"github.com/promptcmd/promptcmd/stats"
	"github.com/promptcmd/promptcmd/storage"
)

var (
	configPath string
	promptsDir string
	statsDBPath string
	binDir      string

	logger *o11y.Logger

	tracerShutdown func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "promptcmd",
	Short: "Resolve, inspect, and run prompt-backed LLM configurations",
	Long: `promptcmd resolves a logical provider/variant/group name to a fully
sourced LLM configuration, load-balances across group members by recent
token usage, and builds a ready-to-call provider client.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = o11y.NewLogger(o11y.WithLogLevel(os.Getenv("PROMPTCMD_LOG_LEVEL")))

		shutdown, err := o11y.InitTracer("promptcmd")
		if err != nil {
			logger.Debug(cmd.Context(), "tracer init failed, spans will be dropped", "error", err)
			return
		}
		tracerShutdown = shutdown
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if tracerShutdown == nil {
			return
		}
		if err := tracerShutdown(cmd.Context()); err != nil {
			logger.Debug(cmd.Context(), "tracer shutdown failed", "error", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "promptcmd.toml", "path to the TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&promptsDir, "prompts-dir", "./prompts", "directory of .prompt files")
	rootCmd.PersistentFlags().StringVar(&statsDBPath, "stats-db", "promptcmd_stats.db", "path to the statistics SQLite database")
	rootCmd.PersistentFlags().StringVar(&binDir, "bin-dir", defaultBinDir(), "directory whose symlink/ subdirectory receives prompt shortcuts")
}

func defaultBinDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".local/bin"
	}
	return filepath.Join(home, ".local", "bin")
}

func loadAppConfig() (*config.AppConfig, error) {
	return config.Load(configPath)
}

func newStorage() storage.Store {
	return storage.NewFS(promptsDir)
}

func newStatsStore(ctx context.Context) (stats.Store, error) {
	return stats.NewSQLite(ctx, stats.SQLiteConfig{Path: statsDBPath})
}

func newInstaller() (installer.Installer, error) {
	target, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return installer.NewSymlinkInstaller(target, binDir), nil
}

// resolveFor runs the Configuration Resolver with the given input name and
// optional frontmatter-derived properties/extras, tracing the step under
// o11y.
func resolveFor(ctx context.Context, appcfg *config.AppConfig, name string, fm *config.GlobalProperties, fmExtras providers.SourcedExtras) (resolver.ResolvedConfig, error) {
	ctx, end := o11y.StartSpan(ctx, "resolver.resolve")

	r := &resolver.Resolver{
		InputName:    &name,
		FMProperties: fm,
	}
	if fmExtras != nil {
		r.FMExtras = fmExtras
	}
	resolved, err := r.Resolve(appcfg)
	if err != nil {
		end(err)
		logger.Debug(ctx, "resolve failed", "name", name, "error", err)
		return nil, err
	}
	end(nil)
	logger.Debug(ctx, "resolved", "name", name, "kind", resolved.DisplayName())
	return resolved, nil
}

// exitCodeFor maps a promptcmd error to a process exit status (§4.6/§7).
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	switch core.CodeOf(err) {
	case core.ErrNotFound, core.ErrGroupMemberNotFound:
		return 2
	case core.ErrNoName:
		return 3
	case core.ErrRequiredConfiguration, core.ErrInvalidInput:
		return 4
	case core.ErrGroupMemberError, core.ErrProviderDown:
		return 5
	default:
		var perr *os.PathError
		if errors.As(err, &perr) {
			return 2
		}
		return 1
	}
}
