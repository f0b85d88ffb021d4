package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agiangrant/skinny"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create skinny.toml and a starter theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(a.fs, cmd, dir, force)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Project directory")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}

func runInit(fs afero.Fs, cmd *cobra.Command, dir string, force bool) error {
	out := cmd.OutOrStdout()
	configPath := filepath.Join(dir, skinny.ConfigFile)
	themePath := filepath.Join(dir, "theme.toml")

	if exists, _ := afero.Exists(fs, configPath); exists && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	config := skinny.DefaultConfig()
	config.Theme = "theme.toml"
	if err := skinny.SaveConfig(fs, configPath, config); err != nil {
		return err
	}
	fmt.Fprintln(out, okStyle.Render("  ✓ Created "+configPath))

	if exists, _ := afero.Exists(fs, themePath); !exists || force {
		if err := afero.WriteFile(fs, themePath, []byte(defaultThemeToml), 0o644); err != nil {
			return fmt.Errorf("failed to create %s: %w", themePath, err)
		}
		fmt.Fprintln(out, okStyle.Render("  ✓ Created "+themePath))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  skinctl classes            # list controls, states and subcontrols")
	fmt.Fprintln(out, "  skinctl dump --class PushButton")
	fmt.Fprintln(out, "  skinctl resolve PushButton::Panel --states Hovered")
	return nil
}

const defaultThemeToml = `# Theme applied over the built-in squiek skin.
name = "custom"

# Pixel size of one spacing step (p-1, m-1, w-1).
spacing_unit = 4

# Fonts per role: default, tiny, small, medium, large, huge
[fonts.default]
family = "DejaVu Sans"
size = 12

# Named colors usable in class strings (bg-primary)
[colors]
primary = "#3b82f6"
# secondary = "#10b981"

# Custom utility classes
[utilities]
btn = ["bg-primary", "text-white", "px-4", "py-2", "rounded-md"]

# Class strings per subcontrol, keyed "Class::Subcontrol"
[controls]
"PushButton::Panel" = "btn hover:bg-blue-600 pressed:bg-blue-700 transition"
# "Slider::Handle" = "bg-white border border-gray-400 rounded-full"

# Color substitutions per graphic role
# [[graphic_filters]]
# role = 1
# substitutions = [{ from = "#000000", to = "#ffffff" }]
`
