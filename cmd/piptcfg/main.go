// Command piptcfg parses, validates and formats .pipt inversion
// configuration files.
//
// A .pipt file drives an ensemble-based data-assimilation or optimization
// run: one section configures the inversion algorithm (DATAASSIM or OPTIM),
// the other the forward simulator (FWDSIM).
//
// Usage:
//
//	piptcfg validate --config ./case.pipt
//	piptcfg show --config ./case.pipt --format yaml
package main

import (
	"os"

	"github.com/pipt-tools/piptcfg/internal/app"
)

func main() {
	os.Exit(app.Main(os.Args))
}
