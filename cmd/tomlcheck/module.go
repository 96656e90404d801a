package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/toml/debugs"
	"github.com/reusee/toml/nets"
	"github.com/reusee/toml/tomlconfigs"
)

type Module struct {
	dscope.Module
	Configs tomlconfigs.Module
	Nets    nets.Module
	Debugs  debugs.Module
}
