package app

import (
	"fmt"
	"os"
)

var (
	version   = "0.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func Main(args []string) int {
	if len(args) < 2 {
		printHelp()
		return 2
	}

	switch args[1] {
	case "validate":
		return validateCmd(args[2:])
	case "fmt":
		return fmtCmd(args[2:])
	case "show":
		return showCmd(args[2:])
	case "diff":
		return diffCmd(args[2:])
	case "watch":
		return watchCmd(args[2:])
	case "version":
		return versionCmd(args[2:])
	case "help", "-h", "--help":
		printHelp()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[1])
		printHelp()
		return 2
	}
}

func printHelp() {
	fmt.Fprintln(os.Stdout, "piptcfg")
	fmt.Fprintln(os.Stdout, "")
	fmt.Fprintln(os.Stdout, "Usage:")
	fmt.Fprintln(os.Stdout, "  piptcfg validate --config ./case.pipt [--format json|text]")
	fmt.Fprintln(os.Stdout, "  piptcfg fmt --config ./case.pipt [--write]")
	fmt.Fprintln(os.Stdout, "  piptcfg show --config ./case.pipt [--format json|yaml]")
	fmt.Fprintln(os.Stdout, "  piptcfg diff <old.pipt> <new.pipt>")
	fmt.Fprintln(os.Stdout, "  piptcfg watch --config ./case.pipt [--log-level info]")
	fmt.Fprintln(os.Stdout, "  piptcfg version [--long] [--json]")
}
