package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/toml/tomlconfigs"
)

type Module struct {
	dscope.Module
	Configs tomlconfigs.Module
}
