package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fjglira/opml2org/internal/config"
	"github.com/fjglira/opml2org/internal/converter"
	"github.com/fjglira/opml2org/internal/domain"
	"github.com/fjglira/opml2org/internal/scanner"
)

// Generator converts every OPML file found by a scan into an Org file.
type Generator interface {
	Generate(cfg *config.Config) error
}

// DefaultGenerator implements Generator by wiring a scanner and a converter.
type DefaultGenerator struct {
	scanner   scanner.Scanner
	converter converter.Converter
	log       *logrus.Logger
}

// result is a converted file waiting to be written.
type result struct {
	source     string
	outputPath string
	content    []byte
}

// NewGenerator creates a new DefaultGenerator with all dependencies.
func NewGenerator(s scanner.Scanner, c converter.Converter, log *logrus.Logger) *DefaultGenerator {
	return &DefaultGenerator{
		scanner:   s,
		converter: c,
		log:       log,
	}
}

// Generate runs the pipeline: scan → convert all → clean → write.
// Every file is converted before anything is written, so one bad input
// leaves the output directory untouched.
func (g *DefaultGenerator) Generate(cfg *config.Config) error {
	// Step 1: Scan for OPML files
	var sources []scanner.Source
	for _, dir := range cfg.Input.Directories {
		g.log.Debugf("Scanning directory: %s", dir)
		found, err := g.scanner.Scan(dir, cfg.Input.Include, cfg.Input.Exclude)
		if err != nil {
			return err
		}
		sources = append(sources, found...)
	}

	if len(sources) == 0 {
		g.log.Warn("No OPML files found")
		return nil
	}

	g.log.Infof("Found %d OPML file(s)", len(sources))

	// Step 2: Convert each file in memory
	seen := make(map[string]string)
	results := make([]result, 0, len(sources))
	for _, src := range sources {
		g.log.Debugf("Converting: %s", src.Path)

		content, err := os.ReadFile(src.Path)
		if err != nil {
			return domain.NewErrorWithSuggestion("parse", src.Path, 0,
				"failed to read file",
				"check that the file exists and has read permissions",
				err)
		}

		out, err := g.converter.Convert(src.Path, content)
		if err != nil {
			return err
		}

		outputPath := filepath.Join(cfg.Output.Directory, outputName(src.Rel, cfg.Output.Extension))
		if prev, dup := seen[outputPath]; dup {
			return domain.NewErrorWithSuggestion("write", outputPath, 0,
				fmt.Sprintf("both %s and %s map to the same output file", prev, src.Path),
				"rename one of the inputs or scan the directories separately",
				nil)
		}
		seen[outputPath] = src.Path

		results = append(results, result{source: src.Path, outputPath: outputPath, content: out})
	}

	// Step 3: Clean output directory if configured
	if cfg.Output.CleanBeforeGenerate && !cfg.DryRun {
		g.log.Debugf("Cleaning output directory: %s", cfg.Output.Directory)
		if err := cleanOutputDir(cfg.Output.Directory, cfg.Output.Extension); err != nil {
			return domain.NewErrorWithSuggestion("write", cfg.Output.Directory, 0,
				"failed to clean output directory",
				"check file permissions or set output.clean_before_generate to false",
				err)
		}
	}

	// Step 4: Write output
	for _, r := range results {
		if cfg.DryRun {
			g.log.Infof("[DRY-RUN] Would write: %s", r.outputPath)
			g.log.Debugf("[DRY-RUN] Content:\n%s", r.content)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(r.outputPath), 0755); err != nil {
			return domain.NewErrorWithSuggestion("write", r.outputPath, 0,
				"failed to create output directory",
				"check that the parent directory exists and has write permissions",
				err)
		}

		g.log.Infof("Writing: %s", r.outputPath)
		if err := os.WriteFile(r.outputPath, r.content, 0644); err != nil {
			return domain.NewErrorWithSuggestion("write", r.outputPath, 0,
				"failed to write output file",
				"check disk space and write permissions for the output directory",
				err)
		}
	}

	g.log.Infof("Converted %d file(s)", len(results))
	return nil
}

// outputName swaps the extension of a slash-separated relative path.
// e.g. "notes/todo.opml" → "notes/todo.org"
func outputName(rel, extension string) string {
	rel = filepath.FromSlash(rel)
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + extension
}

// cleanOutputDir removes previously generated files from the output directory tree.
func cleanOutputDir(dir, extension string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil // Nothing to clean
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			return os.Remove(path)
		}
		return nil
	})
}
