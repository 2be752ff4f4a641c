// Package cli parses ngi's command line into a command name, positional
// variables and flags.
package cli

import (
	"fmt"
	"strings"
)

// CommandRegistryChecker reports whether a (possibly two-word) command exists.
// It keeps this package free of the command registry.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
}

// BoolFlagChecker is optionally implemented by a CommandRegistryChecker to
// say which flags of a command never take a value. Without it, a flag
// followed by a non-flag word consumes that word as its value.
type BoolFlagChecker interface {
	IsBoolFlag(command, flag string) bool
}

// ArgDef defines the structure for an expected positional argument.
type ArgDef struct {
	Name        string // e.g., "preset", "project-name"
	Description string // Help text for the argument
	Required    bool   // Whether the argument is mandatory
}

// FlagDef defines the structure for an expected flag.
type FlagDef struct {
	Name        string // Long name (e.g., "path")
	ShortName   string // Short name (e.g., "p"), empty if none
	Description string // Help text for the flag
	HasValue    bool   // Whether the flag expects a value (true for --flag=v, false for --flag)
	Required    bool   // Whether the flag is mandatory
}

// CommandArgs holds structured information parsed from command-line arguments.
type CommandArgs struct {
	RawArgs          []string          // Keep the original args for error messages
	CommandName      string            // The command specified (e.g., "create", "preset add")
	Variables        []string          // Positional arguments provided after the command name
	Flags            map[string]string // Flags provided (e.g., --path=./dir -> map["path"]="./dir")
	BoolFlags        map[string]bool   // Boolean flags (e.g., --copy -> map["copy"]=true)
	HelpRequested    bool              // If a help flag (--help, -h) was detected
	VersionRequested bool              // If a version flag (--version) was detected
	Errors           []error           // Any parsing errors encountered
}

// Flag returns the value of the long or short flag, and whether either was given.
func (a CommandArgs) Flag(name, short string) (string, bool) {
	if v, ok := a.Flags[name]; ok {
		return v, true
	}
	if short != "" {
		if v, ok := a.Flags[short]; ok {
			return v, true
		}
	}
	return "", false
}

// Bool reports whether the long or short boolean flag was given.
func (a CommandArgs) Bool(name, short string) bool {
	return a.BoolFlags[name] || (short != "" && a.BoolFlags[short])
}

// Arg returns the i'th positional variable or "".
func (a CommandArgs) Arg(i int) string {
	if i < len(a.Variables) {
		return a.Variables[i]
	}
	return ""
}

// Debug toggle controlled by --debug. Other packages can query this.
var debugEnabled bool

// SetDebugEnabled enables or disables debug logging globally for this process.
func SetDebugEnabled(on bool) { debugEnabled = on }

// IsDebugEnabled reports whether debug logging is currently enabled.
func IsDebugEnabled() bool { return debugEnabled }

// globalBoolFlags never take a value regardless of the command.
var globalBoolFlags = map[string]bool{"help": true, "h": true, "version": true, "debug": true}

// ParseCommandLineArgs processes the raw command-line arguments using a command registry checker.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	// Stage 0: global flags count wherever they appear.
	for _, arg := range rawArgs {
		switch arg {
		case "--help", "-h":
			parsed.HelpRequested = true
		case "--version":
			parsed.VersionRequested = true
		}
	}

	// Stage 1: the command is the first one or two non-flag words. A word
	// that directly follows a value flag is that flag's value, not a command.
	var words []int
	for i := 0; i < len(rawArgs) && len(words) < 2; i++ {
		arg := rawArgs[i]
		if strings.HasPrefix(arg, "-") {
			if takesNextValue(arg, "", registry) && i+1 < len(rawArgs) && !strings.HasPrefix(rawArgs[i+1], "-") {
				i++
			}
			continue
		}
		words = append(words, i)
	}

	skip := map[int]bool{}
	if len(words) == 2 && registry.CommandExists(rawArgs[words[0]]+" "+rawArgs[words[1]]) {
		parsed.CommandName = rawArgs[words[0]] + " " + rawArgs[words[1]]
		skip[words[0]], skip[words[1]] = true, true
	} else if len(words) > 0 && registry.CommandExists(rawArgs[words[0]]) {
		parsed.CommandName = rawArgs[words[0]]
		skip[words[0]] = true
	}

	rest := make([]string, 0, len(rawArgs))
	for i, arg := range rawArgs {
		if !skip[i] {
			rest = append(rest, arg)
		}
	}

	// Stage 2: flags and variables.
	for i := 0; i < len(rest); i++ {
		arg := rest[i]

		if arg == "--version" {
			continue
		}

		switch {
		case arg == "--":
			parsed.Variables = append(parsed.Variables, rest[i+1:]...)
			return parsed

		case strings.HasPrefix(arg, "--"):
			flagName, flagValue, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
			if flagName == "" {
				parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))
				continue
			}
			if !hasValue && takesNextValue(arg, parsed.CommandName, registry) && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
				flagValue = rest[i+1]
				hasValue = true
				i++
			}
			parsed.setFlag("--", flagName, flagValue, hasValue)

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagChars := []rune(strings.TrimPrefix(arg, "-"))
			last := string(flagChars[len(flagChars)-1])
			consume := !isBool(last, parsed.CommandName, registry) && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-")
			for j, c := range flagChars {
				if j == len(flagChars)-1 && consume {
					parsed.setFlag("-", string(c), rest[i+1], true)
				} else {
					parsed.setFlag("-", string(c), "", false)
				}
			}
			if consume {
				i++
			}

		case arg == "-":
			parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))

		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}

	return parsed
}

func (p *CommandArgs) setFlag(prefix, name, value string, hasValue bool) {
	if hasValue {
		if _, exists := p.Flags[name]; exists {
			p.Errors = append(p.Errors, fmt.Errorf("flag provided more than once: %s%s", prefix, name))
		}
		p.Flags[name] = value
		return
	}
	if _, exists := p.BoolFlags[name]; exists {
		p.Errors = append(p.Errors, fmt.Errorf("boolean flag provided more than once: %s%s", prefix, name))
	}
	p.BoolFlags[name] = true
}

// takesNextValue reports whether a --flag without "=" may consume the next word.
func takesNextValue(arg, command string, registry CommandRegistryChecker) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	return !isBool(strings.TrimLeft(arg, "-"), command, registry)
}

func isBool(name, command string, registry CommandRegistryChecker) bool {
	if globalBoolFlags[name] {
		return true
	}
	if command == "" {
		return false
	}
	if bc, ok := registry.(BoolFlagChecker); ok {
		return bc.IsBoolFlag(command, name)
	}
	return false
}
