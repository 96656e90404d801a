package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.printCommands(os.Stdout, p.commands, 0)
}

func (p *Executor) printCommands(w *os.File, commands map[string]*Command, depth int) {
	printed := make(map[*Command]bool)
	indent := strings.Repeat("  ", depth)

	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		printed[command] = true

		names := append([]string{name}, command.Aliases...)
		fmt.Fprintf(w, "%s%s", indent, strings.Join(names, " | "))
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintf(w, "\n")

		if len(command.Subs) > 0 {
			p.printCommands(w, command.Subs, depth+1)
		}
	}
}
