package intent

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCommand turns a command-line style input into an intent:
//
//	p <points>   set max points
//	e <path>     export the scale
//	l <path>     load a roster
//	w [path]     save the roster
//
// A leading ':' is accepted.
func ParseCommand(raw string) (Intent, error) {
	in := strings.TrimPrefix(strings.TrimSpace(raw), ":")
	if in == "" {
		return nil, fmt.Errorf("empty command")
	}
	cmd, args := in[:1], strings.TrimSpace(in[1:])
	switch cmd {
	case "p":
		n, err := strconv.ParseUint(args, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("could not parse points from %q", args)
		}
		return SetMaxPoints{Points: uint32(n)}, nil
	case "e":
		if args == "" {
			return nil, fmt.Errorf("export needs a path")
		}
		return ExportScale{Path: args}, nil
	case "l":
		if args == "" {
			return nil, fmt.Errorf("load needs a path")
		}
		return LoadRoster{Path: args}, nil
	case "w":
		return SaveRoster{Path: args}, nil
	}
	return nil, fmt.Errorf("%q is an unknown command", cmd)
}
