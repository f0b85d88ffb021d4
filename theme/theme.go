// Package theme loads skin descriptions from TOML or YAML files.
//
//	name = "ocean"
//
//	[fonts.default]
//	family = "Inter"
//	size = 12
//
//	[colors]
//	primary = "#0ea5e9"
//
//	[utilities]
//	btn = ["bg-primary", "text-white", "px-4", "py-2", "rounded-md"]
//
//	[controls]
//	"PushButton::Panel" = "btn hover:bg-sky-600 transition"
//
//	[[graphic_filters]]
//	role = 1
//	substitutions = [{ from = "#000000", to = "#ffffff" }]
package theme

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/agiangrant/skinny/skin"
	"github.com/agiangrant/skinny/style"
)

// ErrInvalidTheme wraps every decoding and validation failure.
var ErrInvalidTheme = errors.New("invalid theme")

// File is the on-disk representation of a theme.
type File struct {
	Name string `toml:"name" yaml:"name" validate:"required"`

	// SpacingUnit is the pixel size of one spacing step; 0 keeps the default.
	SpacingUnit float64 `toml:"spacing_unit" yaml:"spacing_unit" validate:"gte=0"`

	// Fonts maps role names (default, tiny, small, medium, large, huge) to
	// fonts.
	Fonts map[string]skin.Font `toml:"fonts" yaml:"fonts" validate:"dive,keys,font_role,endkeys"`

	// Colors adds named colors to the class string palette.
	Colors map[string]string `toml:"colors" yaml:"colors" validate:"dive,keys,required,endkeys,color"`

	// Utilities are custom classes expanding into other classes.
	Utilities map[string][]string `toml:"utilities" yaml:"utilities" validate:"dive,keys,required,endkeys,min=1"`

	// Controls maps qualified subcontrol names ("PushButton::Panel") to
	// class strings.
	Controls map[string]string `toml:"controls" yaml:"controls" validate:"dive,keys,subcontrol,endkeys"`

	GraphicFilters []GraphicFilter `toml:"graphic_filters" yaml:"graphic_filters" validate:"dive"`
}

// GraphicFilter substitutes colors in graphics of one role.
type GraphicFilter struct {
	Role          int            `toml:"role" yaml:"role" validate:"gte=0"`
	Substitutions []Substitution `toml:"substitutions" yaml:"substitutions" validate:"min=1,dive"`
}

type Substitution struct {
	From string `toml:"from" yaml:"from" validate:"color"`
	To   string `toml:"to" yaml:"to" validate:"color"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("font_role", func(fl validator.FieldLevel) bool {
			_, ok := skin.ParseFontRole(fl.Field().String())
			return ok
		})

		// Accepts exactly what Apply can parse.
		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := style.ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("subcontrol", func(fl validator.FieldLevel) bool {
			class, sub, ok := strings.Cut(fl.Field().String(), "::")
			return ok && class != "" && sub != ""
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks f against its field constraints.
func (f *File) Validate() error {
	err := validatorInstance().Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%w: %s failed %q", ErrInvalidTheme, fe.Namespace(), fe.Tag()))
	}
	return errors.Join(errs...)
}

// Decode parses data as TOML or YAML, selected by format ("toml", "yaml" or
// "yml"), and validates the result.
func Decode(data []byte, format string) (*File, error) {
	var f File
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidTheme, format)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and decodes the theme at path. The extension selects the format.
func Load(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}

	f, err := Decode(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Encode renders f in the given format.
func Encode(f *File, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml":
		return toml.Marshal(f)
	case "yaml", "yml":
		return yaml.Marshal(f)
	}
	return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidTheme, format)
}
