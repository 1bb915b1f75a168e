package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fjglira/opml2org/internal/config"
	"github.com/fjglira/opml2org/internal/converter"
	"github.com/fjglira/opml2org/internal/domain"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for opml2org.
var rootCmd = NewRootCommand()

// app holds flag values and the logger shared by all subcommands.
type app struct {
	cfgFile string
	verbose bool
	dryRun  bool
	input   string
	output  string
	log     *logrus.Logger
}

// NewRootCommand builds the opml2org command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "opml2org",
		Short: "Convert an OPML outline to Org mode",
		Long: `opml2org reads one OPML document from standard input and writes the
equivalent Org mode outline to standard output.

Outlines with extra attributes become headlines with a property drawer,
outlines with children become lists and leaf outlines become paragraphs.
An explicit structure="headline|list|paragraph" attribute always wins.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(cmd.ErrOrStderr(), "info", a.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			return a.runConvert(cmd, cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path (defaults are used when empty)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().StringVarP(&a.input, "input", "i", "-", `OPML file to read ("-" for stdin)`)
	cmd.Flags().StringVarP(&a.output, "output", "o", "-", `Org file to write ("-" for stdout)`)

	cmd.AddCommand(newBatchCommand(a))
	cmd.AddCommand(newValidateCommand(a))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig returns the defaults, or the --config file when one was given,
// and applies the configured log level.
func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if !a.verbose {
		a.log.SetLevel(parseLevel(cfg.Logging.Level))
	}
	if a.dryRun {
		cfg.DryRun = true
	}

	a.log.Debugf("Loaded config: %+v", cfg)
	return cfg, nil
}

// runConvert converts a single document. The output is only written once
// the whole conversion has succeeded.
func (a *app) runConvert(cmd *cobra.Command, cfg *config.Config) error {
	conv, err := converter.NewConverter(cfg, a.log)
	if err != nil {
		return err
	}

	content, err := a.readInput(cmd.InOrStdin())
	if err != nil {
		return err
	}

	out, err := conv.Convert(a.input, content)
	if err != nil {
		return err
	}

	if a.output == "-" {
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return domain.NewError("write", "<stdout>", 0, "failed to write output", err)
		}
		return nil
	}

	if err := os.WriteFile(a.output, out, 0644); err != nil {
		return domain.NewErrorWithSuggestion("write", a.output, 0,
			"failed to write output file",
			"check that the parent directory exists and has write permissions",
			err)
	}
	a.log.Infof("Wrote %s", a.output)
	return nil
}

func (a *app) readInput(stdin io.Reader) ([]byte, error) {
	if a.input == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, domain.NewError("parse", "<stdin>", 0, "failed to read standard input", err)
		}
		return content, nil
	}

	content, err := os.ReadFile(a.input)
	if err != nil {
		return nil, domain.NewErrorWithSuggestion("parse", a.input, 0,
			"failed to read file",
			"check that the file exists and has read permissions",
			err)
	}
	return content, nil
}
