// Package scaffold implements the project initialization pipeline.
//
// The pipeline is an ordered sequence of idempotent steps. Every step
// checks for pre-existing state and no-ops with a log message when the
// work is already done, so a whole run is always safe to repeat.
package scaffold

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/authsmith/authsmith/internal/console"
	"github.com/authsmith/authsmith/internal/execx"
	"github.com/authsmith/authsmith/internal/interaction"
	"github.com/authsmith/authsmith/pkg/types"
)

// ErrAborted is returned when the user declines to initialize a
// non-empty directory. It terminates the run without touching anything.
var ErrAborted = errors.New("initialization aborted")

// State identifies the pipeline's position in the step sequence.
type State int

const (
	StateNotStarted State = iota
	StateDirectory
	StateVCS
	StateManifest
	StateDevConfig
	StateProdConfig
	StateTemplates
	StateKeys
	StateDone
	StateAborted
)

var stateNames = map[State]string{
	StateNotStarted: "not started",
	StateDirectory:  "directory",
	StateVCS:        "vcs",
	StateManifest:   "manifest",
	StateDevConfig:  "development config",
	StateProdConfig: "production config",
	StateTemplates:  "templates",
	StateKeys:       "keys",
	StateDone:       "done",
	StateAborted:    "aborted",
}

func (s State) String() string {
	return stateNames[s]
}

// Context is the run-scoped record threaded through every step.
type Context struct {
	// Dir is the absolute project root. Steps never change the
	// process working directory; every path resolves against Dir.
	Dir string

	Config    *types.Config
	Console   *console.Console
	Prompter  interaction.Prompter
	Runner    execx.Runner
	Templates fs.FS

	SkipGit  bool
	SkipKeys bool
}

// NewContext resolves target to an absolute project root.
func NewContext(target string, cfg *types.Config) (*Context, error) {
	dir, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}

	return &Context{
		Dir:      dir,
		Config:   cfg,
		Console:  console.Default(),
		Prompter: interaction.HuhPrompter{},
		Runner:   execx.NewRunner(),
	}, nil
}

// Path joins elem onto the project root.
func (c *Context) Path(elem ...string) string {
	return filepath.Join(append([]string{c.Dir}, elem...)...)
}

// Name is the project name, derived from the target directory.
func (c *Context) Name() string {
	return filepath.Base(c.Dir)
}

// Step is one unit of the pipeline.
type Step struct {
	State State
	Run   func(ctx context.Context, sc *Context) error
}

// Pipeline executes the init steps strictly in order, halting on the
// first error. Completed steps are never rolled back; the idempotency
// checks make a partial run re-runnable.
type Pipeline struct {
	steps []Step
	state State
}

// NewPipeline returns the full init sequence.
func NewPipeline() *Pipeline {
	return &Pipeline{
		state: StateNotStarted,
		steps: []Step{
			{StateDirectory, stepDirectory},
			{StateVCS, stepGit},
			{StateManifest, stepManifest},
			{StateDevConfig, stepDevSettings},
			{StateProdConfig, stepProdSettings},
			{StateTemplates, stepTemplates},
			{StateKeys, stepKeys},
		},
	}
}

// State reports the pipeline's current state.
func (p *Pipeline) State() State {
	return p.state
}

// Run drives the pipeline to completion and prints the final banner.
func (p *Pipeline) Run(ctx context.Context, sc *Context) error {
	sc.Console.Header("Initializing %s", sc.Name())
	sc.Console.Blank()

	for _, step := range p.steps {
		p.state = step.State
		if err := step.Run(ctx, sc); err != nil {
			if errors.Is(err, ErrAborted) {
				p.state = StateAborted
			}
			return err
		}
	}

	p.state = StateDone
	sc.Console.Blank()
	sc.Console.Header("%s is ready", sc.Name())
	sc.Console.Info("  cd %s", sc.Dir)
	sc.Console.Info("  npm install")
	sc.Console.Info("  npm start")
	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
