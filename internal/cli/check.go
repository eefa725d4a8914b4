package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/renesugar/gircheck/internal/config"
	"github.com/renesugar/gircheck/internal/files/filesystem"
	"github.com/renesugar/gircheck/internal/logging"
	"github.com/renesugar/gircheck/internal/report"
	"github.com/renesugar/gircheck/internal/services"
	"github.com/renesugar/gircheck/internal/tui"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

type checkFlagValues struct {
	output, fileList                 string
	passthrough, typeInfo            bool
	propertyInfo, signalInfo         bool
	mergeInfo                        []string
	excludeRegistered, excludeGTypes string
	excludeHeaders                   string
	configPath, reportPath           string
	workers                          int
	logJSON, verbose                 bool
}

// runOptions are the resolved settings that live outside RunConfig.
type runOptions struct {
	reportPath string
	logJSON    bool
}

func registerCheckFlags(cmd *cobra.Command, f *checkFlagValues) {
	fl := cmd.Flags()

	fl.StringVar(&f.output, "output", "",
		"Directory that receives every artifact (created if absent)\n"+
			"Precedence: --output > gircheck.yaml > $GIRCHECK_OUTPUT")
	fl.StringVar(&f.fileList, "filelist", "",
		"Newline-delimited list of GIR documents; $CWD expands to the working directory\n"+
			"Required in every mode except --mergeinfo")

	fl.BoolVar(&f.passthrough, "passthrough", false, "Write each filtered GIR document")
	fl.BoolVar(&f.typeInfo, "typeinfo", false, "Write one row per registered type")
	fl.BoolVar(&f.propertyInfo, "propertyinfo", false, "Write one row per property of a registered type")
	fl.BoolVar(&f.signalInfo, "signalinfo", false, "Write one row per signal of a registered type")
	fl.StringSliceVar(&f.mergeInfo, "mergeinfo", nil,
		"Merge two or more info tables on GType name\n"+
			"Example: --mergeinfo=typeinfo.csv,propertyinfo.csv")

	fl.StringVar(&f.excludeRegistered, "excluderegistered", "",
		"File of registered type names (Namespace.Name) to exclude")
	fl.StringVar(&f.excludeGTypes, "excludegtypes", "",
		"File of GType names to exclude")
	fl.StringVar(&f.excludeHeaders, "excludeheaders", "",
		"File of header paths whose types are excluded")

	fl.StringVar(&f.configPath, "config", "",
		"YAML file with run defaults (default: ./gircheck.yaml if present)")
	fl.IntVar(&f.workers, "workers", 0,
		"Documents processed concurrently (default: one per CPU)")
	fl.StringVar(&f.reportPath, "report", "",
		"Write a YAML run report with checksums and counts to this path")
	fl.BoolVar(&f.logJSON, "log-json", false, "Emit structured JSON logs on stderr")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose output")
}

// selectMode enforces that exactly one mode flag is present.
func selectMode(cmd *cobra.Command, f *checkFlagValues) (gircheck.Mode, error) {
	var selected []string
	mode := gircheck.ModeNone

	pick := func(set bool, name string, m gircheck.Mode) {
		if set {
			selected = append(selected, "--"+name)
			mode = m
		}
	}
	pick(f.passthrough, "passthrough", gircheck.ModePassthrough)
	pick(f.typeInfo, "typeinfo", gircheck.ModeTypeInfo)
	pick(f.propertyInfo, "propertyinfo", gircheck.ModePropertyInfo)
	pick(f.signalInfo, "signalinfo", gircheck.ModeSignalInfo)
	pick(cmd.Flags().Changed("mergeinfo"), "mergeinfo", gircheck.ModeMerge)

	switch len(selected) {
	case 0:
		return gircheck.ModeNone, fmt.Errorf("%w: no mode selected, use one of --passthrough, --typeinfo, --propertyinfo, --signalinfo, --mergeinfo", gircheck.ErrUsage)
	case 1:
		return mode, nil
	default:
		return gircheck.ModeNone, fmt.Errorf("%w: only one mode may be selected, got %s", gircheck.ErrUsage, strings.Join(selected, ", "))
	}
}

// loadLayeredConfig combines .env, GIRCHECK_* variables and the config file.
// A missing default config file is not an error; a missing --config is.
func loadLayeredConfig(configPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	envCfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	explicit := configPath != ""
	if !explicit {
		configPath = config.ConfigFileName
	}

	fileCfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
		}
		if explicit {
			return nil, fmt.Errorf("%w: config file %s does not exist", gircheck.ErrInvalidConfig, configPath)
		}
		fileCfg = nil
	}

	return config.Overlay(fileCfg, envCfg), nil
}

// buildRunConfig resolves flags over the layered config.
func buildRunConfig(cmd *cobra.Command, f *checkFlagValues) (gircheck.RunConfig, runOptions, error) {
	mode, err := selectMode(cmd, f)
	if err != nil {
		return gircheck.RunConfig{}, runOptions{}, err
	}

	base, err := loadLayeredConfig(f.configPath)
	if err != nil {
		return gircheck.RunConfig{}, runOptions{}, err
	}

	flags := cmd.Flags()
	str := func(name, flagVal, cfgVal string) string {
		if flags.Changed(name) {
			return flagVal
		}
		return cfgVal
	}
	boolean := func(name string, flagVal, cfgVal bool) bool {
		if flags.Changed(name) {
			return flagVal
		}
		return cfgVal
	}

	workers := base.WorkerCount()
	if flags.Changed("workers") {
		workers = f.workers
	}

	workDir, err := os.Getwd()
	if err != nil {
		return gircheck.RunConfig{}, runOptions{}, fmt.Errorf("failed to determine working directory: %w", err)
	}

	cfg := gircheck.RunConfig{
		Mode:              mode,
		OutputDir:         str("output", f.output, base.Output),
		FileList:          str("filelist", f.fileList, base.FileList),
		MergeInputs:       f.mergeInfo,
		ExcludeRegistered: str("excluderegistered", f.excludeRegistered, base.Exclude.Registered),
		ExcludeGTypes:     str("excludegtypes", f.excludeGTypes, base.Exclude.GTypes),
		ExcludeHeaders:    str("excludeheaders", f.excludeHeaders, base.Exclude.Headers),
		Workers:           workers,
		WorkDir:           workDir,
		Verbose:           boolean("verbose", f.verbose, base.VerboseEnabled()),
	}

	opts := runOptions{
		reportPath: str("report", f.reportPath, base.Report),
		logJSON:    boolean("log-json", f.logJSON, base.LogJSONEnabled()),
	}

	if err := cfg.Validate(); err != nil {
		return gircheck.RunConfig{}, runOptions{}, err
	}
	return cfg, opts, nil
}

func newLogger(cmd *cobra.Command, opts runOptions, verbose bool) (gircheck.Logger, func(), error) {
	if opts.logJSON {
		return logging.NewJSONLogger(verbose)
	}
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose), func() {}, nil
}

func runCheck(cmd *cobra.Command, f *checkFlagValues) error {
	cfg, opts, err := buildRunConfig(cmd, f)
	if err != nil {
		return err
	}

	logger, flush, err := newLogger(cmd, opts, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer flush()

	fs := filesystem.NewOSFileSystem()
	checker := services.NewCheckService(fs, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM): stop scheduling documents
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			logger.Warn("Received interrupt signal, cancelling run...")
			cancel()
		case <-ctx.Done():
		}
	}()

	runID := uuid.New()
	logger.Verbose("Run %s: mode=%s output=%s workers=%d", runID, cfg.Mode, cfg.OutputDir, cfg.Workers)

	summary, runErr := checker.Run(ctx, cfg)

	if summary != nil {
		printSummary(cmd.OutOrStdout(), summary, runErr, tui.IsStyled())
	}

	if opts.reportPath != "" {
		r := report.New(runID, cfg.Mode, summary, runErr)
		if err := report.Write(fs, opts.reportPath, r); err != nil {
			if runErr == nil {
				return err
			}
			logger.Error("%v", err)
		} else {
			logger.Verbose("Wrote run report %s", opts.reportPath)
		}
	}

	return runErr
}
