package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/cv-bank/internal/config"
	"github.com/jonathan/cv-bank/internal/logger"
	"github.com/jonathan/cv-bank/internal/observability"
	"github.com/jonathan/cv-bank/internal/validation"
	"github.com/spf13/cobra"
)

// errValidationFailed is returned once the report has been printed, so main
// only adds the exit status.
var errValidationFailed = errors.New("validation failed")

type validateOptions struct {
	quick      bool
	detailed   bool
	full       bool
	mode       string
	debug      bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate_cv <yaml_file>",
		Short: "Validate a YAML CV against the RenderCV schema",
		Long: `Validates a YAML CV file against the RenderCV input schema.

Quick mode prints a one-line verdict. Detailed mode adds the CV name and a
breakdown of every section. Full mode runs labeled stages and warns about
entries with empty fields.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.quick, "quick", "q", false, "Quick validation (default)")
	flags.BoolVarP(&opts.detailed, "detailed", "d", false, "Detailed validation with section breakdown")
	flags.BoolVarP(&opts.full, "full", "f", false, "Full validation with content analysis")
	flags.StringVar(&opts.mode, "mode", "", "Validation mode: quick, detailed or full (overrides the other flags)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: ./cv-bank.yaml if present)")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *validateOptions, path string) error {
	mode, err := validation.ResolveMode(opts.mode, opts.full, opts.detailed)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Debug: opts.debug}, cmd.ErrOrStderr())
	log = log.With("file", path, "mode", string(mode))
	log.Debug("validating CV")

	p := observability.NewPrinter(cmd.OutOrStdout())
	start := time.Now()

	switch mode {
	case validation.ModeDetailed:
		err = validateDetailed(p, path)
	case validation.ModeFull:
		err = validateFull(p, path)
	default:
		err = validateQuick(p, path)
	}

	if err != nil {
		log.Debug("validation failed", "error", err, "duration", time.Since(start))
		return fmt.Errorf("%s: %w", path, errValidationFailed)
	}
	log.Debug("validation passed", "duration", time.Since(start))
	return nil
}

func validateQuick(p *observability.Printer, path string) error {
	_, err := validation.ValidateFile(path)
	p.PrintQuickResult(err)
	return err
}

func validateDetailed(p *observability.Printer, path string) error {
	doc, err := validation.ParseFile(path)
	if err != nil {
		p.PrintDetailedFailure(err)
		return err
	}

	p.PrintDetailedHeader(path)
	input, err := validation.Validate(doc)
	if err != nil {
		p.PrintDetailedFailure(err)
		return err
	}

	p.PrintDetailedReport(validation.Analyze(input))
	return nil
}

// validateFull reports a YAML failure on its own, before any stage output
func validateFull(p *observability.Printer, path string) error {
	doc, err := validation.ParseFile(path)
	if err != nil {
		p.PrintFullFailure(err)
		return err
	}

	p.PrintFullHeader(path)
	p.PrintStage(1, "YAML syntax check", true)
	p.PrintStage(2, "Schema validation", false)

	input, err := validation.Validate(doc)
	if err != nil {
		p.PrintFullFailure(err)
		return err
	}

	p.PrintFullReport(validation.Analyze(input))
	return nil
}
