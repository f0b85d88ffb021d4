package skinny

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := LoadConfig(fs, ConfigFile)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	want := DefaultConfig()
	want.Theme = "/themes/ocean.toml"
	want.LogLevel = "debug"
	want.HumanLogs = true
	want.Animations = false

	require.NoError(t, SaveConfig(fs, "app/skinny.toml", want))

	got, err := LoadConfig(fs, "app/skinny.toml")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		check   func(*testing.T, Config)
	}{
		{
			name: "partial file keeps defaults",
			data: `log_level = "warn"`,
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "warn", c.LogLevel)
				assert.True(t, c.Animations)
				assert.Equal(t, 4.0, c.SpacingUnit)
			},
		},
		{
			name: "relative theme path",
			data: `theme = "themes/ocean.yaml"`,
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "conf/themes/ocean.yaml", c.Theme)
			},
		},
		{
			name:    "invalid level",
			data:    `log_level = "loud"`,
			wantErr: true,
		},
		{
			name:    "negative spacing",
			data:    `spacing_unit = -1.0`,
			wantErr: true,
		},
		{
			name:    "syntax error",
			data:    `theme = `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "conf/skinny.toml", []byte(tt.data), 0o644))

			cfg, err := LoadConfig(fs, "conf/skinny.toml")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
