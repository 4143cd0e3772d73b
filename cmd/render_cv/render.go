package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/cv-bank/internal/config"
	"github.com/jonathan/cv-bank/internal/logger"
	"github.com/jonathan/cv-bank/internal/observability"
	"github.com/jonathan/cv-bank/internal/rendering"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	dir        string
	renderer   string
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render_cv [name]",
		Short: "Render YAML CVs with rendercv",
		Long: `Renders CV files from the CV directory with the rendercv executable.

With a name, renders that one file (the .yaml extension is optional).
Without one, renders every YAML file in the directory and reports how many
succeeded. A project-local venv/bin/rendercv is preferred over the one on PATH.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.dir, "dir", "", "Directory holding the CV files (default: cv-bank)")
	flags.StringVar(&opts.renderer, "renderer", "", "Renderer command or path (skips the local installation lookup)")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: ./cv-bank.yaml if present)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions, args []string) error {
	loaded, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg := loaded.ApplyOverrides(config.Overrides{CVDir: opts.dir, Renderer: opts.renderer})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Debug: opts.debug}, cmd.ErrOrStderr())

	// Resolved before any directory change so relative paths stay valid
	locator := rendering.Locator{
		LocalPaths: cfg.LocalRenderers,
		SearchDirs: rendering.DefaultSearchDirs(),
		Fallback:   cfg.Renderer,
	}
	command := locator.Resolve()
	log.Debug("resolved renderer", "command", command, "dir", cfg.CVDir)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := rendering.New(rendering.Options{
		Dir:      cfg.CVDir,
		Command:  command,
		Reporter: observability.NewPrinter(cmd.OutOrStdout()),
		Logger:   log,
	})

	if len(args) == 1 {
		if err := r.RenderFile(ctx, args[0]); err != nil {
			var notFound *rendering.FileNotFoundError
			if errors.As(err, &notFound) {
				return err
			}
			return fmt.Errorf("failed to render %s: %w", rendering.NormalizeName(args[0]), err)
		}
		return nil
	}

	result, err := r.RenderAll(ctx)
	if err != nil {
		return err
	}
	return result.Err()
}
