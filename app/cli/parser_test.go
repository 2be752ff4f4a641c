package cli

import (
	"reflect"
	"testing"
)

// MockRegistryChecker provides a mock implementation for testing.
type MockRegistryChecker struct {
	KnownCommands map[string]bool
	BoolFlags     map[string][]string // command -> boolean flag names
}

// CommandExists checks if a command name exists in the mock registry.
func (m MockRegistryChecker) CommandExists(name string) bool {
	_, exists := m.KnownCommands[name]
	return exists
}

func (m MockRegistryChecker) IsBoolFlag(command, flag string) bool {
	for _, f := range m.BoolFlags[command] {
		if f == flag {
			return true
		}
	}
	return false
}

// TestParseCommandLineArgs tests the argument parser.
func TestParseCommandLineArgs(t *testing.T) {
	mockRegistry := MockRegistryChecker{
		KnownCommands: map[string]bool{
			"create":        true,
			"preset add":    true,
			"preset list":   true,
			"preset edit":   true,
			"preset delete": true,
			"config set":    true,
			"config get":    true,
			"config list":   true,
		},
		BoolFlags: map[string][]string{
			"create": {"copy", "c"},
		},
	}

	testCases := []struct {
		name     string
		args     []string
		expected CommandArgs
	}{
		{
			name: "No Args",
			args: []string{},
			expected: CommandArgs{
				Variables: []string{},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
				Errors:    []error{},
			},
		},
		{
			name: "Version Flag",
			args: []string{"--version"},
			expected: CommandArgs{
				VersionRequested: true,
				Variables:        []string{},
				Flags:            map[string]string{},
				BoolFlags:        map[string]bool{},
				Errors:           []error{},
			},
		},
		{
			name: "General Help Flag",
			args: []string{"--help"},
			expected: CommandArgs{
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
				Errors:        []error{},
			},
		},
		{
			name: "Command Specific Help",
			args: []string{"create", "--help"},
			expected: CommandArgs{
				CommandName:   "create",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
				Errors:        []error{},
			},
		},
		{
			name: "Multi-word Command Specific Help",
			args: []string{"config", "set", "-h"},
			expected: CommandArgs{
				CommandName:   "config set",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"h": true},
				Errors:        []error{},
			},
		},
		{
			name: "Simple Command",
			args: []string{"config", "list"},
			expected: CommandArgs{
				CommandName: "config list",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Preset Add With Value Flags",
			args: []string{"preset", "add", "web", "--path", "~/Projects", "--editor=com.example.editor", "--command", "git init"},
			expected: CommandArgs{
				CommandName: "preset add",
				Variables:   []string{"web"},
				Flags: map[string]string{
					"path":    "~/Projects",
					"editor":  "com.example.editor",
					"command": "git init",
				},
				BoolFlags: map[string]bool{},
				Errors:    []error{},
			},
		},
		{
			name: "Boolean Flag Does Not Swallow Variables",
			args: []string{"create", "--copy", "web", "my-app"},
			expected: CommandArgs{
				CommandName: "create",
				Variables:   []string{"web", "my-app"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"copy": true},
				Errors:      []error{},
			},
		},
		{
			name: "Debug Before Command",
			args: []string{"--debug", "create", "web", "my-app"},
			expected: CommandArgs{
				CommandName: "create",
				Variables:   []string{"web", "my-app"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"debug": true},
				Errors:      []error{},
			},
		},
		{
			name: "Flag Value Is Not A Command Word",
			args: []string{"--name", "preset", "preset", "edit", "web"},
			expected: CommandArgs{
				CommandName: "preset edit",
				Variables:   []string{"web"},
				Flags:       map[string]string{"name": "preset"},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Empty Flag Value",
			args: []string{"preset", "edit", "web", "--command", ""},
			expected: CommandArgs{
				CommandName: "preset edit",
				Variables:   []string{"web"},
				Flags:       map[string]string{"command": ""},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Double Dash Ends Flags",
			args: []string{"config", "set", "command_mappings", "--", "--weird"},
			expected: CommandArgs{
				CommandName: "config set",
				Variables:   []string{"command_mappings", "--weird"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
		{
			name: "Combined Short Flags",
			args: []string{"cmd", "-abc", "valueForC"},
			expected: CommandArgs{
				CommandName: "", // cmd is treated as variable
				Variables:   []string{"cmd"},
				Flags:       map[string]string{"c": "valueForC"},
				BoolFlags:   map[string]bool{"a": true, "b": true},
				Errors:      []error{},
			},
		},
		{
			name: "Duplicate Flag",
			args: []string{"preset", "add", "x", "--path", "a", "--path=b"},
			expected: CommandArgs{
				CommandName: "preset add",
				Variables:   []string{"x"},
				Flags:       map[string]string{"path": "b"},
				BoolFlags:   map[string]bool{},
				Errors:      []error{nil},
			},
		},
		{
			name: "Unknown Command",
			args: []string{"unknowncmd", "arg1"},
			expected: CommandArgs{
				CommandName: "",                             // Not found in registry
				Variables:   []string{"unknowncmd", "arg1"}, // Treated as variables
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
				Errors:      []error{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ParseCommandLineArgs(tc.args, mockRegistry)

			// Compare fields individually for better error messages
			if actual.CommandName != tc.expected.CommandName {
				t.Errorf("CommandName mismatch: expected %q, got %q", tc.expected.CommandName, actual.CommandName)
			}
			if !reflect.DeepEqual(actual.Variables, tc.expected.Variables) {
				t.Errorf("Variables mismatch: expected %v, got %v", tc.expected.Variables, actual.Variables)
			}
			if !reflect.DeepEqual(actual.Flags, tc.expected.Flags) {
				t.Errorf("Flags mismatch: expected %v, got %v", tc.expected.Flags, actual.Flags)
			}
			if !reflect.DeepEqual(actual.BoolFlags, tc.expected.BoolFlags) {
				t.Errorf("BoolFlags mismatch: expected %v, got %v", tc.expected.BoolFlags, actual.BoolFlags)
			}
			if actual.HelpRequested != tc.expected.HelpRequested {
				t.Errorf("HelpRequested mismatch: expected %t, got %t", tc.expected.HelpRequested, actual.HelpRequested)
			}
			if actual.VersionRequested != tc.expected.VersionRequested {
				t.Errorf("VersionRequested mismatch: expected %t, got %t", tc.expected.VersionRequested, actual.VersionRequested)
			}
			if len(actual.Errors) != len(tc.expected.Errors) {
				t.Errorf("Errors length mismatch: expected %d, got %d (Errors: %v)", len(tc.expected.Errors), len(actual.Errors), actual.Errors)
			}
		})
	}
}

func TestCommandArgsAccessors(t *testing.T) {
	a := CommandArgs{
		Variables: []string{"web"},
		Flags:     map[string]string{"p": "~/x"},
		BoolFlags: map[string]bool{"copy": true},
	}
	if v, ok := a.Flag("path", "p"); !ok || v != "~/x" {
		t.Errorf("Flag(path, p) = %q, %t", v, ok)
	}
	if _, ok := a.Flag("editor", ""); ok {
		t.Error("Flag(editor) should be absent")
	}
	if !a.Bool("copy", "c") || a.Bool("force", "f") {
		t.Error("Bool mismatch")
	}
	if a.Arg(0) != "web" || a.Arg(3) != "" {
		t.Error("Arg mismatch")
	}
}
