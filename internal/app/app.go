// Package app provides the main application logic for Authsmith.
package app

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/authsmith/authsmith/assets"
	"github.com/authsmith/authsmith/internal/config"
	"github.com/authsmith/authsmith/internal/console"
	"github.com/authsmith/authsmith/internal/execx"
	"github.com/authsmith/authsmith/internal/interaction"
	"github.com/authsmith/authsmith/internal/scaffold"
	"github.com/authsmith/authsmith/pkg/types"
)

// App represents the main Authsmith application.
type App struct {
	Config    *types.Config
	Console   *console.Console
	Prompter  interaction.Prompter
	Runner    execx.Runner
	Templates fs.FS
}

// InitOptions carries the init command's flags into the pipeline.
type InitOptions struct {
	// AssumeYes answers every confirmation affirmatively.
	AssumeYes bool
	// SkipGit and SkipKeys bypass the subprocess-dependent steps.
	SkipGit  bool
	SkipKeys bool
}

// New creates a new Authsmith application instance.
func New() (*App, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Mount the bundled project skeleton
	templates, err := fs.Sub(assets.ProjectFS, assets.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load bundled templates: %w", err)
	}

	return &App{
		Config:    cfg,
		Console:   console.Default(),
		Prompter:  interaction.HuhPrompter{},
		Runner:    execx.NewRunner(),
		Templates: templates,
	}, nil
}

// Init bootstraps a new deployment project in target.
func (a *App) Init(ctx context.Context, target string, opts InitOptions) error {
	sc, err := scaffold.NewContext(target, a.Config)
	if err != nil {
		return fmt.Errorf("failed to resolve target directory: %w", err)
	}

	sc.Console = a.Console
	sc.Runner = a.Runner
	sc.Templates = a.Templates
	sc.SkipGit = opts.SkipGit
	sc.SkipKeys = opts.SkipKeys

	sc.Prompter = a.Prompter
	if opts.AssumeYes {
		sc.Prompter = interaction.AssumeYes{}
	}

	return scaffold.NewPipeline().Run(ctx, sc)
}
