package command

import (
	"regexp"
	"strings"
)

// ForceNewFlag forces a new review even when the branch already has one.
const ForceNewFlag = "--new"

const parentFlag = "--parent"

// parentValuePattern is the set of branch names accepted as a parent override.
var parentValuePattern = regexp.MustCompile(`^[-_a-zA-Z0-9,./]+$`)

// CLIArgs is the command line split into the parts grib understands and
// the parts it forwards.
type CLIArgs struct {
	ForceNew bool
	Parent   string
	Forward  []string
}

// ParseCLI extracts the force-new switch and the parent override from args.
// Both --parent=value and --parent value are recognised, optionally quoted;
// the last well-formed override wins. Every parent token is consumed, so a
// malformed override is dropped rather than forwarded. Everything else is
// kept in Forward in the order given.
func ParseCLI(args []string) CLIArgs {
	c := CLIArgs{Forward: make([]string, 0, len(args))}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == ForceNewFlag:
			c.ForceNew = true
		case arg == parentFlag:
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				c.setParent(args[i])
			}
		case strings.HasPrefix(arg, parentFlag+"="):
			c.setParent(strings.TrimPrefix(arg, parentFlag+"="))
		default:
			c.Forward = append(c.Forward, arg)
		}
	}
	return c
}

func (c *CLIArgs) setParent(raw string) {
	if v := unquote(raw); parentValuePattern.MatchString(v) {
		c.Parent = v
	}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
