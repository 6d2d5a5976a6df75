package opts

import (
	"github.com/decode-app/supafix/pkg/config"
	"github.com/decode-app/supafix/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config   *config.Config
	Root     string
	Reporter *status.Reporter
}
