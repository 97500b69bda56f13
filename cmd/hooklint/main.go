package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hooklint/hooklint/internal/config"
	"github.com/hooklint/hooklint/internal/manifest"
	"github.com/hooklint/hooklint/internal/utils"
	"github.com/hooklint/hooklint/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hooklint",
	Short: "Lint and rewrite pre-commit hook manifests",
	Long: `Hooklint loads a pre-commit configuration (.pre-commit-config.yaml),
checks the invariants that can be verified offline (pinned revisions,
compilable path patterns, duplicate repository entries), and can rewrite
the file in canonical form.

It never clones hook repositories or runs hooks; that is the pre-commit
runner's job.`,
	Version: version.Short(),
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Load a manifest and report invariant violations",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [path]",
	Short: "Rewrite a manifest in canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFmt,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter manifest in the current directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.hooklint/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	validateCmd.Flags().Bool("strict", false, "Treat warnings as failures")
	_ = viper.BindPFlag("validation.strict", validateCmd.Flags().Lookup("strict"))

	fmtCmd.Flags().Bool("check", false, "Exit non-zero if the file is not canonical, without rewriting it")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func newLogger(cfg *config.Config) *utils.Logger {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return utils.NewLogger(utils.LoggerOptions{
		Level:   level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})
}

// resolvePath picks the manifest path: an explicit argument wins over the
// configured default.
func resolvePath(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Manifest.Path
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log = newLogger(cfg).WithComponent("validate")

	path := resolvePath(cfg, args)

	m, err := manifest.NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().
		Int("repos", len(m.Repos)).
		Int("hooks", m.HookCount()).
		Msg("manifest loaded")

	res := manifest.Validate(m)
	for _, v := range res.Violations {
		vlog := log.WithRepo(v.Repo)
		evt := vlog.Warn()
		if v.Severity == manifest.SeverityError {
			evt = vlog.Error()
		}
		evt.Str("field", v.Field).Msg(v.Message)
	}

	failures := len(res.Errors())
	if cfg.Validation.Strict {
		failures += len(res.Warnings())
	}
	if failures > 0 {
		return fmt.Errorf("%s: %d problem(s) found", path, failures)
	}

	log.Info().
		Int("repos", len(m.Repos)).
		Int("hooks", m.HookCount()).
		Msg("manifest is valid")
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log = newLogger(cfg).WithComponent("fmt")

	path := resolvePath(cfg, args)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", manifest.ErrFileNotFound, path)
		}
		return err
	}

	ext := filepath.Ext(path)
	m, err := manifest.NewLoader().LoadFromBytes(data, ext)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	canonical, err := manifest.MarshalExt(m, ext)
	if err != nil {
		return err
	}

	if bytes.Equal(data, canonical) {
		log.Debug().Str("path", path).Msg("already canonical")
		return nil
	}

	if check, _ := cmd.Flags().GetBool("check"); check {
		return fmt.Errorf("%s is not in canonical form", path)
	}

	if err := os.WriteFile(path, canonical, 0644); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}
	log.Info().Str("path", path).Msg("manifest rewritten")
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log = newLogger(cfg).WithComponent("init")

	path := manifest.ConfigFileName
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(starterManifest), 0644); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}
	log.Info().Str("path", path).Msg("starter manifest written")
	return nil
}
