package tomlconfigs

import (
	"github.com/reusee/toml/cmds"
	"github.com/reusee/toml/configs"
	"github.com/reusee/toml/vars"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

var _ configs.Configurable = OutputFormat("")

func (f OutputFormat) ConfigExpr() string {
	return "OutputFormat"
}

var formatFlag = cmds.Var[string]("-format")

func (Module) OutputFormat(
	loader configs.Loader,
) OutputFormat {
	return OutputFormat(vars.FirstNonZero(
		*formatFlag,
		configs.First[string](loader, "output_format"),
		string(FormatText),
	))
}
