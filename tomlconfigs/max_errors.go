package tomlconfigs

import (
	"math"

	"github.com/reusee/toml/cmds"
	"github.com/reusee/toml/configs"
	"github.com/reusee/toml/vars"
)

// MaxErrors caps how many failing documents a batch run reports before
// aborting.
type MaxErrors int

var _ configs.Configurable = MaxErrors(0)

func (m MaxErrors) ConfigExpr() string {
	return "MaxErrors"
}

var maxErrorsFlag = cmds.Var[int]("-max-errors")

func (Module) MaxErrors(
	loader configs.Loader,
) MaxErrors {
	maxErrors := math.MaxInt

	// flag
	if *maxErrorsFlag != 0 {
		maxErrors = min(maxErrors, *maxErrorsFlag)
	}

	// config
	if n := vars.FirstNonZero(
		configs.First[int](loader, "max_errors"),
	); n != 0 {
		maxErrors = min(maxErrors, n)
	}

	return MaxErrors(maxErrors)
}
