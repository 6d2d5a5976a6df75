package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/decode-app/supafix/pkg/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeTempConfig(t, "tasks.yaml", `root: webapp
tasks:
  - path: app/api/health/route.ts
    mode: service
  - path: app/api/payouts/request/route.ts
    mode: user
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "webapp", cfg.Root)
	require.Len(t, cfg.Tasks, 2)
	assert.Equal(t, "app/api/health/route.ts", cfg.Tasks[0].Path)
	assert.Equal(t, rewrite.ModeService, cfg.Tasks[0].Mode)
	assert.Equal(t, rewrite.ModeUser, cfg.Tasks[1].Mode)
}

func TestLoad_HCL(t *testing.T) {
	path := writeTempConfig(t, "tasks.hcl", `root = "webapp"

task "app/api/health/route.ts" {
  mode = "service"
}

task "app/api/payouts/request/route.ts" {
  mode = "user"
}
`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "webapp", cfg.Root)
	require.Len(t, cfg.Tasks, 2)
	assert.Equal(t, "app/api/health/route.ts", cfg.Tasks[0].Path)
	assert.Equal(t, rewrite.ModeService, cfg.Tasks[0].Mode)
	assert.Equal(t, "app/api/payouts/request/route.ts", cfg.Tasks[1].Path)
	assert.Equal(t, rewrite.ModeUser, cfg.Tasks[1].Mode)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantError string
	}{
		{
			name:      "unsupported_extension",
			file:      "tasks.toml",
			content:   "whatever",
			wantError: "unsupported file extension",
		},
		{
			name:      "unknown_yaml_field",
			file:      "tasks.yaml",
			content:   "destination: elsewhere\n",
			wantError: "parsing YAML",
		},
		{
			name: "invalid_mode",
			file: "tasks.yaml",
			content: `tasks:
  - path: app/api/health/route.ts
    mode: admin
`,
			wantError: "unknown auth mode",
		},
		{
			name:      "empty_task_list",
			file:      "tasks.yaml",
			content:   "tasks: []\n",
			wantError: "no tasks defined",
		},
		{
			name:      "malformed_hcl",
			file:      "tasks.hcl",
			content:   "task {",
			wantError: "parsing HCL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.file, tt.content)
			_, err := Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
