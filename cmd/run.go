package cmd

import (
	"context"
	"path/filepath"

	"grimm.is/linkprobe/internal/brand"
	"grimm.is/linkprobe/internal/i18n"
)

// Run dispatches on argv and returns the process exit status.
func Run(ctx context.Context, env *Env, args []string) int {
	prog := brand.BinaryName
	if len(args) > 0 && args[0] != "" {
		prog = filepath.Base(args[0])
	}

	if len(args) < 2 {
		printUsage(env, prog)
		return 1
	}

	switch args[1] {
	case "--discover":
		// Extra arguments are ignored; some agents append their own.
		return RunDiscover(env)

	case "--check":
		if len(args) != 3 {
			env.printer().Fprintf(env.Stderr, i18n.MsgUsageCheck, prog)
			return 1
		}
		return RunCheck(ctx, env, args[2])

	default:
		env.printer().Fprintf(env.Stderr, i18n.MsgUnknownMode, args[1])
		printUsage(env, prog)
		return 1
	}
}

func printUsage(env *Env, prog string) {
	env.printer().Fprintf(env.Stderr, i18n.MsgUsage, prog)
}
