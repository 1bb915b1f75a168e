package cli

import (
	"github.com/spf13/cobra"

	"github.com/fjglira/opml2org/internal/batch"
	"github.com/fjglira/opml2org/internal/config"
	"github.com/fjglira/opml2org/internal/converter"
	"github.com/fjglira/opml2org/internal/scanner"
)

func newBatchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert every OPML file under the configured directories",
		Long: `Scans input.directories for files matching input.include, converts each
one and writes the result to output.directory, keeping the relative layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			a.log.Info("Configuration loaded successfully")
			a.log.WithField("directories", cfg.Input.Directories).Info("Scanning directories")
			a.log.WithField("path", cfg.Output.Directory).Info("Output directory")

			return a.runBatch(cfg)
		},
	}
	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "convert but don't write files")
	return cmd
}

// runBatch wires all components and runs the generator.
func (a *app) runBatch(cfg *config.Config) error {
	recursive := true
	if cfg.Input.Recursive != nil {
		recursive = *cfg.Input.Recursive
	}
	s := scanner.NewScanner(recursive)

	conv, err := converter.NewConverter(cfg, a.log)
	if err != nil {
		return err
	}

	gen := batch.NewGenerator(s, conv, a.log)
	return gen.Generate(cfg)
}
