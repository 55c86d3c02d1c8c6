package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// clearEnv isolates a test from the caller's PARROT_* and EDITOR settings.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PARROT_STORAGE_PATH", "PARROT_EDITOR", "PARROT_SELECTOR", "PARROT_COLOR", "PARROT_TRACE", "PARROT_CONFIG", "EDITOR"} {
		t.Setenv(k, "")
		os.Unsetenv(k) //nolint:errcheck // restored by t.Setenv
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultStoragePath(), cfg.StoragePath)
	assert.Equal(t, "vim", cfg.Editor)
	assert.Equal(t, "fzf", cfg.Selector)
	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.Trace)
}

func TestLoad_EditorFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("EDITOR", "nano")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "nano", cfg.Editor)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `storage_path: /tmp/parrot-test.json
editor: code --wait
selector: sk
color: never
trace: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		StoragePath: "/tmp/parrot-test.json",
		Editor:      "code --wait",
		Selector:    "sk",
		Color:       "never",
		Trace:       true,
	}, cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: emacs\nselector: sk\n"), 0600))

	t.Setenv("PARROT_EDITOR", "hx")
	t.Setenv("EDITOR", "nano")
	t.Setenv("PARROT_TRACE", "1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hx", cfg.Editor)
	assert.Equal(t, "sk", cfg.Selector)
	assert.True(t, cfg.Trace)
}

func TestLoad_TraceValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "1", want: true},
		{value: "true", want: true},
		{value: "yes", want: true},
		{value: "on", want: true},
		{value: "ON", want: true},
		{value: "0", want: false},
		{value: "off", want: false},
		{value: "no", want: false},
		{value: "maybe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PARROT_TRACE", tt.value)

			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Trace)
		})
	}
}

func TestLoad_TraceFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trace: yes\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [unclosed\n"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{StoragePath: "p", Editor: "vi", Selector: "fzf", Color: "auto"}},
		{name: "blank storage path", cfg: Config{StoragePath: "  "}, wantErr: "storage_path"},
		{name: "bad color", cfg: Config{StoragePath: "p", Color: "purple"}, wantErr: "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_FillsBlankCommands(t *testing.T) {
	cfg := Config{StoragePath: "p"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "vim", cfg.Editor)
	assert.Equal(t, "fzf", cfg.Selector)
}

func TestSave_ThenLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := &Config{StoragePath: "/data/parrot.json", Editor: "vi", Selector: "fzf --height 40%", Color: "always"}
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncode(t *testing.T) {
	cfg := &Config{StoragePath: "/x.json", Editor: "vim", Selector: "fzf", Color: "auto"}

	data, err := cfg.Encode()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "/x.json", decoded["storage_path"])
	assert.Equal(t, false, decoded["trace"])
}

func TestDefaultStoragePath(t *testing.T) {
	assert.Equal(t, "parrot.json", filepath.Base(DefaultStoragePath()))
}

func TestResolvePath(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, DefaultPath(), ResolvePath(""))

	t.Setenv("PARROT_CONFIG", "/etc/parrot.yaml")
	assert.Equal(t, "/etc/parrot.yaml", ResolvePath(""))
	assert.Equal(t, "/explicit.yaml", ResolvePath("/explicit.yaml"))
}
