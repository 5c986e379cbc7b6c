package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-ui/lattice/runtime/metadata"
)

func TestIntrospectCommand(t *testing.T) {
	t.Run("has correct usage", func(t *testing.T) {
		cmd := NewIntrospectCommand()
		assert.Equal(t, "introspect", cmd.Use)
		assert.NotEmpty(t, cmd.Short)
		assert.NotEmpty(t, cmd.Long)
		assert.NotEmpty(t, cmd.Example)
	})

	t.Run("has global flags", func(t *testing.T) {
		cmd := NewIntrospectCommand()

		formatFlag := cmd.PersistentFlags().Lookup("format")
		require.NotNil(t, formatFlag)
		assert.Equal(t, "", formatFlag.DefValue)

		manifestFlag := cmd.PersistentFlags().Lookup("manifest")
		require.NotNil(t, manifestFlag)

		noColorFlag := cmd.PersistentFlags().Lookup("no-color")
		require.NotNil(t, noColorFlag)
		assert.Equal(t, "false", noColorFlag.DefValue)

		debugFlag := cmd.PersistentFlags().Lookup("debug")
		require.NotNil(t, debugFlag)
		assert.Equal(t, "false", debugFlag.DefValue)
	})

	t.Run("has all subcommands", func(t *testing.T) {
		cmd := NewIntrospectCommand()

		expectedCommands := []string{
			"directives",
			"directive",
			"deps",
		}

		for _, name := range expectedCommands {
			subCmd, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, subCmd.Name())
		}
	})
}

func writeFixtureManifest(t *testing.T) string {
	t.Helper()

	manifest := &metadata.Manifest{
		Version: metadata.SchemaVersion,
		Directives: []metadata.Entry{
			{
				Class:    "LoginForm",
				Kind:     "component",
				Selector: "login-form",
				Inputs:   []string{"user", "theme: appTheme"},
				Outputs:  []string{"submitted"},
				Host:     map[string]string{"(submit)": "onSubmit()"},
				Template: "<form></form>",
				Requires: map[string]string{"panel": "^panel", "tooltip": "?^tooltip"},
			},
			{
				Class:    "Panel",
				Kind:     "directive",
				Selector: "panel",
			},
		},
	}

	data, err := manifest.Encode()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lattice.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func runIntrospect(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewIntrospectCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIntrospectDirectives(t *testing.T) {
	path := writeFixtureManifest(t)

	t.Run("table output", func(t *testing.T) {
		out, err := runIntrospect(t, "directives", "--manifest", path, "--no-color")
		require.NoError(t, err)

		assert.Contains(t, out, "SELECTOR")
		assert.Contains(t, out, "login-form")
		assert.Contains(t, out, "panel")
		assert.Contains(t, out, "2 directive(s)")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := runIntrospect(t, "directives", "--manifest", path, "--format", "json")
		require.NoError(t, err)

		var entries []metadata.Entry
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "login-form", entries[0].Selector)
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, err := runIntrospect(t, "directives", "--manifest", filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read manifest")
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := runIntrospect(t, "directives", "--manifest", path, "--format", "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}

func TestIntrospectDirective(t *testing.T) {
	path := writeFixtureManifest(t)

	t.Run("table output", func(t *testing.T) {
		out, err := runIntrospect(t, "directive", "login-form", "--manifest", path, "--no-color")
		require.NoError(t, err)

		assert.Contains(t, out, "login-form (component)")
		assert.Contains(t, out, "Class: LoginForm")
		assert.Contains(t, out, "theme: appTheme")
		assert.Contains(t, out, "(submit): onSubmit()")
		assert.Contains(t, out, "<form></form>")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := runIntrospect(t, "directive", "panel", "--manifest", path, "--format", "json")
		require.NoError(t, err)

		var entry metadata.Entry
		require.NoError(t, json.Unmarshal([]byte(out), &entry))
		assert.Equal(t, "Panel", entry.Class)
	})

	t.Run("unknown selector suggests similar", func(t *testing.T) {
		_, err := runIntrospect(t, "directive", "login-frm", "--manifest", path, "--no-color")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DIRECTIVE NOT FOUND")
		assert.Contains(t, err.Error(), "login-form")
	})

	t.Run("requires a selector argument", func(t *testing.T) {
		_, err := runIntrospect(t, "directive", "--manifest", path)
		require.Error(t, err)
	})
}

func TestIntrospectDeps(t *testing.T) {
	path := writeFixtureManifest(t)

	t.Run("table output sorted by parameter", func(t *testing.T) {
		out, err := runIntrospect(t, "deps", "login-form", "--manifest", path, "--no-color")
		require.NoError(t, err)

		assert.Contains(t, out, "PARAMETER")
		assert.Contains(t, out, "^panel")
		assert.Contains(t, out, "?^tooltip")
		assert.Less(t, strings.Index(out, "panel"), strings.Index(out, "tooltip"))
	})

	t.Run("no requirements", func(t *testing.T) {
		out, err := runIntrospect(t, "deps", "panel", "--manifest", path, "--no-color")
		require.NoError(t, err)
		assert.Contains(t, out, "requires no directives")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := runIntrospect(t, "deps", "login-form", "--manifest", path, "--format", "json")
		require.NoError(t, err)

		var requires map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &requires))
		assert.Equal(t, "^panel", requires["panel"])
	})
}
