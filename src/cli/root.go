// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/scaffold/generator"
	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/scaffold/names"
	"github.com/H0llyW00dzZ/express-crud-scaffold/src/logger"
	"github.com/spf13/cobra"
)

// usageFormat is printed when fewer than two positional arguments are given.
const usageFormat = "Usage:\n\t%s <model_name> <model_name_plural>\n"

// ErrUnsupportedLogFormat is returned for a log format other than text or json.
var ErrUnsupportedLogFormat = errors.New("unsupported log format")

// options holds the flag values of a single root command instance.
type options struct {
	log        logger.Logger
	configFile string
	dir        string
	logFormat  string
	verbose    bool
	quiet      bool
	dryRun     bool
}

// Execute runs the root command with ctx, using the process arguments.
// Errors are returned to the caller, which decides how to report them and
// which exit code to use.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand builds the scaffolder's root command.
//
// The command takes the singular and plural model name as positional
// arguments. With fewer than two it prints a short usage line to its output
// and succeeds. Arguments after the second are ignored.
//
// Parameters:
//   - version: Version string reported by --version
//   - log: Logger for progress lines; nil selects a [logger.CLILogger]
//
// Returns:
//   - *cobra.Command: Configured root command ready for execution
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger()
	}

	exeName := posix.GetExecutableName()
	opts := &options{log: log}

	cmd := &cobra.Command{
		Use:   exeName + " <model_name> <model_name_plural>",
		Short: "Scaffold the CRUD layers of an Express resource",
		Long: `Generates the model, repository, service, controller and route files
for one resource of an Express + TypeScript + Sequelize project.

Every target is checked before anything is written: the five top-level
directories must exist and none of the files may exist yet. Nothing is
overwritten, and a failed run leaves no partial output behind.`,
		Example: fmt.Sprintf(`  %[1]s task tasks
  %[1]s category categories --dir ./backend
  %[1]s person people --dry-run`, exeName),
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args, exeName)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.dir, "dir", "C", ".", "project root containing models/, repositories/, services/, controllers/ and routes/")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "print the files that would be generated without writing them")
	flags.StringVar(&opts.configFile, "config", "", "path to a JSON or YAML config file (env "+configEnvVar+")")
	flags.StringVar(&opts.logFormat, "log-format", logFormatText, "log output format: text or json")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress output; errors are still reported")

	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string, exeName string) error {
	if len(args) < 2 {
		fmt.Fprintf(cmd.OutOrStdout(), usageFormat, exeName)
		return nil
	}

	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return err
	}
	log := o.loggerFor(cmd, cfg)

	if len(args) > 2 {
		log.Debugf("ignoring extra arguments: %s", strings.Join(args[2:], " "))
	}

	forms, err := names.Derive(args[0], args[1])
	if err != nil {
		return err
	}
	if hint := names.SuggestPlural(forms.Lower); !strings.EqualFold(hint, forms.LowerPlural) {
		log.Debugf("%q is usually pluralized as %q, using %q as given", forms.Lower, hint, forms.LowerPlural)
	}

	gen := generator.New(cfg.Dir)
	log.Debugf("project root: %s", gen.Root())

	if o.dryRun {
		return printPlan(cmd, gen, forms)
	}

	created, err := gen.Run(cmd.Context(), forms)
	if err != nil {
		return err
	}
	for _, path := range created {
		log.Printf("Created %s", path)
	}
	return nil
}

// resolveConfig layers explicitly set flags over the config file and defaults.
func (o *options) resolveConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := loadConfig(o.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = o.dir
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("quiet") {
		cfg.Quiet = o.quiet
	}

	switch cfg.LogFormat {
	case logFormatText, logFormatJSON:
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnsupportedLogFormat, cfg.LogFormat, logFormatText, logFormatJSON)
	}
	return cfg, nil
}

// loggerFor picks the logger for a run. Quiet mode drops every log line in
// either format, including debug output.
func (o *options) loggerFor(cmd *cobra.Command, cfg *Config) logger.Logger {
	if cfg.Quiet {
		return logger.NewJSONLogger(nil, true)
	}

	log := o.log
	if cfg.LogFormat == logFormatJSON {
		log = logger.NewJSONLogger(cmd.OutOrStdout(), false)
	}
	log.SetVerbose(cfg.Verbose)
	return log
}

// printPlan writes the plan table and reports the same errors a real run
// would, without creating anything.
func printPlan(cmd *cobra.Command, gen *generator.Generator, forms names.Forms) error {
	targets, err := gen.Plan(forms)
	if err != nil {
		return err
	}

	table, err := generator.RenderPlanTable(targets)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), table)

	return generator.PlanError(targets)
}
