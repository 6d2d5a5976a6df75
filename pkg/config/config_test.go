package config

import (
	"testing"

	"github.com/decode-app/supafix/pkg/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Tasks, 20)

	var service, user int
	for _, task := range cfg.Tasks {
		switch task.Mode {
		case rewrite.ModeService:
			service++
		case rewrite.ModeUser:
			user++
		}
		assert.NotEmpty(t, task.Path)
	}
	assert.Equal(t, 7, service)
	assert.Equal(t, 13, user)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name: "valid",
			cfg: Config{Tasks: []Task{
				{Path: "app/api/health/route.ts", Mode: rewrite.ModeService},
			}},
		},
		{
			name:      "no_tasks",
			cfg:       Config{},
			wantError: "no tasks defined",
		},
		{
			name: "missing_path",
			cfg: Config{Tasks: []Task{
				{Mode: rewrite.ModeUser},
			}},
			wantError: "path is required",
		},
		{
			name: "bad_mode",
			cfg: Config{Tasks: []Task{
				{Path: "app/api/health/route.ts", Mode: rewrite.AuthMode("admin")},
			}},
			wantError: "unknown auth mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_TrackedPaths(t *testing.T) {
	cfg := Config{Tasks: []Task{
		{Path: "app/api/health/route.ts", Mode: rewrite.ModeService},
		{Path: "app/api/payouts/status/route.ts", Mode: rewrite.ModeUser},
	}}

	tracked := cfg.TrackedPaths()
	assert.True(t, tracked["app/api/health/route.ts"])
	assert.True(t, tracked["app/api/payouts/status/route.ts"])
	assert.False(t, tracked["app/api/metrics/route.ts"])
}
