package rewrite

import (
	"context"
	"io"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// LegacyImport is the shared-client import statement being migrated away from.
const LegacyImport = "import { supabase } from '@/lib/supabase'"

// 🔑 AuthMode classifies a file by the kind of Supabase client it needs
type AuthMode string

const (
	// ModeService marks files running with backend privileges (webhooks,
	// cron jobs, health checks). The client is constructed synchronously.
	ModeService AuthMode = "service"
	// ModeUser marks files that need the caller's authenticated session.
	// The client is constructed asynchronously from the request context.
	ModeUser AuthMode = "user"
)

// Validate checks that the mode is one of the known values.
func (m AuthMode) Validate() error {
	switch m {
	case ModeService, ModeUser:
		return nil
	default:
		return errors.Errorf("unknown auth mode %q (want %q or %q)", string(m), ModeService, ModeUser)
	}
}

// ParseAuthMode converts a string into a validated AuthMode.
func ParseAuthMode(s string) (AuthMode, error) {
	m := AuthMode(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// 🔄 Rule holds the mode-specific replacement text
type Rule struct {
	Import    string // replacement import statement
	Construct string // client construction statement to inject
}

var rules = map[AuthMode]Rule{
	ModeUser: {
		Import:    "import { createClient } from '@/utils/supabase/server'",
		Construct: "const supabase = await createClient()",
	},
	ModeService: {
		Import:    "import { createServiceRoleClient } from '@/utils/supabase/service-role'",
		Construct: "const supabase = createServiceRoleClient()",
	},
}

// RuleFor returns the replacement rule for the given mode.
func RuleFor(mode AuthMode) (Rule, error) {
	rule, ok := rules[mode]
	if !ok {
		return Rule{}, errors.Errorf("no rule for auth mode %q", string(mode))
	}
	return rule, nil
}

var (
	// First call on the legacy client, optionally awaited.
	usagePattern = regexp.MustCompile(`\n\s+.*?(await )?supabase\.`)
	// First try-block opening line.
	tryPattern = regexp.MustCompile(`\n\s+try \{\n`)
	// Opening line of an exported async handler.
	funcPattern = regexp.MustCompile(`export async function \w+\([^)]*\) \{\n`)
)

// 📄 Result describes what a rewrite did to one file's content
type Result struct {
	OriginalContent []byte // content as read
	ModifiedContent []byte // content after substitutions
	WasModified     bool   // ModifiedContent differs from OriginalContent
	ImportReplaced  bool   // legacy import was present and swapped
	Injected        bool   // construction statement was inserted
}

// ClientRewriter migrates a file from the shared Supabase client to a
// mode-specific one: the legacy import is swapped for the mode's import,
// and a client-construction statement is injected near the first usage.
type ClientRewriter struct{}

// NewClientRewriter creates a new ClientRewriter
func NewClientRewriter() *ClientRewriter {
	return &ClientRewriter{}
}

// Rewrite applies the migration for the given mode to content.
//
// Files without the legacy import come back untouched with
// ImportReplaced=false; callers treat that as already migrated. The
// construction statement is only injected when the first client usage sits
// inside an exported function, after the first try-block opening if the file
// has one, otherwise directly after the function's opening line.
func (r *ClientRewriter) Rewrite(ctx context.Context, content io.Reader, mode AuthMode) (*Result, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	rule, err := RuleFor(mode)
	if err != nil {
		return nil, err
	}

	original, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &Result{
		OriginalContent: original,
		ModifiedContent: original,
	}

	text := string(original)
	if !strings.Contains(text, LegacyImport) {
		return result, nil
	}

	text = strings.ReplaceAll(text, LegacyImport, rule.Import)
	result.ImportReplaced = true

	if idx := firstUsageInExportedFunc(text); idx >= 0 {
		text, result.Injected = injectConstruction(text, rule.Construct)
	}

	if text != string(original) {
		result.WasModified = true
		result.ModifiedContent = []byte(text)
	}
	return result, nil
}

// firstUsageInExportedFunc locates the first client usage and scans the
// preceding lines backward for the nearest exported function declaration.
// Returns the line index of that declaration, or -1 when either the usage
// or an enclosing exported function is missing. Injection is gated on the
// enclosing function: a usage at top level is left for manual review.
func firstUsageInExportedFunc(text string) int {
	loc := usagePattern.FindStringIndex(text)
	if loc == nil {
		return -1
	}
	lines := strings.Split(text[:loc[0]], "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.Contains(lines[i], "export async function") || strings.Contains(lines[i], "export function") {
			return i
		}
	}
	return -1
}

// injectConstruction inserts the construction statement after the first
// try-block opening, falling back to the first exported async function's
// opening line for files without a try block.
func injectConstruction(text, construct string) (string, bool) {
	if strings.Contains(text, "  try {") {
		if loc := tryPattern.FindStringIndex(text); loc != nil {
			return text[:loc[1]] + "    " + construct + "\n" + text[loc[1]:], true
		}
		return text, false
	}
	if loc := funcPattern.FindStringIndex(text); loc != nil {
		return text[:loc[1]] + "  " + construct + "\n" + text[loc[1]:], true
	}
	return text, false
}
