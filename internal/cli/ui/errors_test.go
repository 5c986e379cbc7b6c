package ui

import (
	"strings"
	"testing"
)

func TestFormatError_WithContext(t *testing.T) {
	out := FormatError(ErrorOptions{
		Context:      "directive not found: login-frm",
		Problem:      "Cannot find directive 'login-frm' in the manifest.",
		Suggestions:  []string{"login-form"},
		HelpCommands: []string{"See all directives: lattice introspect directives"},
		NoColor:      true,
	})

	if !strings.Contains(out, "DIRECTIVE NOT FOUND: LOGIN-FRM") {
		t.Errorf("context should be uppercased: %q", out)
	}
	if !strings.Contains(out, "Cannot find directive 'login-frm'") {
		t.Errorf("problem missing: %q", out)
	}
	if !strings.Contains(out, "Did you mean: login-form?") {
		t.Errorf("suggestions missing: %q", out)
	}
	if !strings.Contains(out, "→ See all directives") {
		t.Errorf("help commands missing: %q", out)
	}
}

func TestFormatError_ProblemOnly(t *testing.T) {
	out := FormatError(ErrorOptions{
		Problem: "manifest is empty",
		NoColor: true,
	})

	if !strings.Contains(out, "manifest is empty") {
		t.Errorf("problem missing: %q", out)
	}
	if strings.Contains(out, "Did you mean") {
		t.Errorf("unexpected suggestions block: %q", out)
	}
}

func TestDirectiveNotFoundError(t *testing.T) {
	out := DirectiveNotFoundError("login-frm", []string{"login-form", "panel"}, true)

	if !strings.Contains(out, "login-form") {
		t.Errorf("expected fuzzy suggestion in output: %q", out)
	}
	if !strings.Contains(out, "lattice introspect directives") {
		t.Errorf("expected help command in output: %q", out)
	}
}
