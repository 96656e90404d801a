package cmds

import "os"

// GlobalExecutor backs the package-level Define and Execute that flag
// helpers and package init functions use.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
}
