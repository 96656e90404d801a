package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/toml/configs"
	"github.com/reusee/toml/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
