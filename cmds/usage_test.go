package cmds

import "testing"

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("dump", Sub(map[string]*Command{
		"symbols": Func(func() {
		}).Desc("print the symbol stream"),
		"tree": Sub(map[string]*Command{
			"json": Func(func() {}).Desc("print the tree as JSON"),
		}).Desc("print the decoded tree"),
	}).Desc("dump a scanned document"))
	executor.PrintUsage()
}
