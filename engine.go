// Package skinny ties the skinning packages together: an Engine runs the
// setup phase for the standard controls, builds the default skin, applies an
// optional theme and drives state transitions.
package skinny

import (
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/agiangrant/skinny/animation"
	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/controls"
	"github.com/agiangrant/skinny/internal/logger"
	"github.com/agiangrant/skinny/skin"
	"github.com/agiangrant/skinny/skins/squiek"
	"github.com/agiangrant/skinny/theme"
	"github.com/agiangrant/skinny/tw"
)

// Version of the engine.
const Version = "0.1.0"

// Engine owns the registry, the standard controls, the current skin and the
// animation registry driving transitions.
type Engine struct {
	config Config
	fs     afero.Fs
	log    *logger.Logger

	registry   *aspect.Registry
	controls   *controls.Controls
	skin       *skin.Skin
	animations *animation.Registry
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithFs sets the filesystem themes are read from. The default is the OS
// filesystem.
func WithFs(fs afero.Fs) EngineOption {
	return func(e *Engine) {
		e.fs = fs
	}
}

// WithLogger overrides the logger built from the config.
func WithLogger(l *logger.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// NewEngine creates a new engine with the given configuration
func NewEngine(config Config, opts ...EngineOption) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		config: config,
		fs:     afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		l, err := logger.New(logger.Options{Level: config.LogLevel, HumanReadable: config.HumanLogs})
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		e.log = l
	}

	e.registry = aspect.NewRegistry(aspect.WithLogger(e.log.With("registry").Zerolog()))

	c, err := controls.Setup(e.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}
	e.controls = c

	e.skin = squiek.New(c, skin.WithLogger(e.log.With("skin").Zerolog()))

	if config.Animations {
		e.animations = animation.NewRegistry()
	}

	if config.Theme != "" {
		if err := e.LoadThemeFile(config.Theme); err != nil {
			return nil, err
		}
	}

	e.log.WithFields(map[string]any{
		"skin":       e.skin.Name(),
		"hints":      e.skin.HintTable().Len(),
		"animations": config.Animations,
	}).Info("engine ready")

	return e, nil
}

func (e *Engine) Config() Config                  { return e.config }
func (e *Engine) Registry() *aspect.Registry      { return e.registry }
func (e *Engine) Controls() *controls.Controls    { return e.controls }
func (e *Engine) Skin() *skin.Skin                { return e.skin }
func (e *Engine) Logger() *logger.Logger          { return e.log }
func (e *Engine) Animations() *animation.Registry { return e.animations }

// LoadThemeFile applies the theme file at path (TOML or YAML) to the skin.
func (e *Engine) LoadThemeFile(path string) error {
	if err := theme.LoadAndApply(e.fs, path, e.skin); err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	return nil
}

// LoadTheme applies a theme from a TOML string.
func (e *Engine) LoadTheme(data string) error {
	f, err := theme.Decode([]byte(data), "toml")
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	if err := theme.Apply(f, e.skin); err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	return nil
}

// Style applies a class string to subcontrol sub of class in the skin.
func (e *Engine) Style(class aspect.Class, sub aspect.Subcontrol, classes string) error {
	var opts []tw.Option
	if e.config.SpacingUnit > 0 {
		opts = append(opts, tw.WithSpacingUnit(e.config.SpacingUnit))
	}
	entries, err := tw.NewParser(e.registry, class, opts...).Parse(sub, classes)
	e.skin.SetHints(entries)
	return err
}

// NewSkinnable creates the skinning state of a control of class. Transitions
// run when animations are enabled.
func (e *Engine) NewSkinnable(class aspect.Class, opts ...skin.SkinnableOption) *skin.Skinnable {
	if e.animations != nil {
		opts = append([]skin.SkinnableOption{skin.WithAnimations(e.animations)}, opts...)
	}
	return skin.NewSkinnable(class, e.skin, opts...)
}

// Tick advances running transitions to now and reports whether any remain.
func (e *Engine) Tick(now time.Time) bool {
	if e.animations == nil {
		return false
	}
	return e.animations.Tick(now)
}
