package app

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pipt-tools/piptcfg/internal/config"
)

func validateCmd(args []string) int {
	return runValidateCmd(args, os.Stdout, os.Stderr)
}

func runValidateCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "./case.pipt", "path to .pipt file")
	format := fs.String("format", "text", "output format: json|text")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !strings.HasSuffix(*configPath, config.FileSuffix) {
		return validateError(*format, fmt.Sprintf("%s is not a %s file", *configPath, config.FileSuffix), stderr)
	}
	f, err := loadForCmd(*configPath)
	if err != nil {
		return validateError(*format, err.Error(), stderr)
	}

	res := config.ValidateWithResult(f)
	if *format == "json" {
		out, err := config.FormatValidationJSON(res)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		if res.OK {
			fmt.Fprintln(stdout, out)
			return 0
		}
		fmt.Fprintln(stderr, out)
		return 1
	}

	msg := config.FormatValidationText(res)
	if res.OK {
		fmt.Fprintln(stdout, msg)
		return 0
	}
	fmt.Fprintln(stderr, msg)
	return 1
}

// validateError emits a failure that happened before the mandatory-keyword
// stage (bad suffix, unreadable file, missing section) in the requested
// format.
func validateError(format, msg string, stderr io.Writer) int {
	res := config.ValidationResult{OK: false, Errors: []string{msg}}
	if format == "json" {
		out, err := config.FormatValidationJSON(res)
		if err != nil {
			fmt.Fprintln(stderr, msg)
			return 1
		}
		fmt.Fprintln(stderr, out)
		return 1
	}
	fmt.Fprintln(stderr, config.FormatValidationText(res))
	return 1
}

func fmtCmd(args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "./case.pipt", "path to .pipt file")
	write := fs.Bool("write", false, "rewrite the file in place instead of printing")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	f, err := loadForCmd(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	out, err := config.Format(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	if *write {
		if err := os.WriteFile(*configPath, out, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		return 0
	}
	_, _ = os.Stdout.Write(out)
	return 0
}

func showCmd(args []string) int {
	return runShowCmd(args, os.Stdout, os.Stderr)
}

func runShowCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "./case.pipt", "path to .pipt file")
	format := fs.String("format", "json", "output format: json|yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	f, err := loadForCmd(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	var out []byte
	switch *format {
	case "json":
		out, err = config.EncodeJSON(f)
	case "yaml":
		out, err = config.EncodeYAML(f)
	default:
		fmt.Fprintf(stderr, "invalid --format %q (use: json|yaml)\n", *format)
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	_, _ = stdout.Write(out)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Fprintln(stdout)
	}
	return 0
}

func diffCmd(args []string) int {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	posArgs := fs.Args()
	if len(posArgs) != 2 {
		fmt.Fprintln(os.Stderr, "usage: piptcfg diff <old.pipt> <new.pipt>")
		return 2
	}

	oldFile, err := loadForCmd(posArgs[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 2
	}
	newFile, err := loadForCmd(posArgs[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 2
	}

	out := config.FormatDiffText(config.Diff(oldFile, newFile))
	if out == "" {
		return 0
	}
	fmt.Fprint(os.Stdout, out)
	return 1
}

// loadForCmd parses without requiring mandatory keywords, so fmt/show/diff
// also work on partial files. validate adds the mandatory check itself.
func loadForCmd(path string) (*config.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return config.Parse(data)
}
