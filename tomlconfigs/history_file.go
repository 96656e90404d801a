package tomlconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/toml/configs"
)

// HistoryFile is where the REPL persists its line history.
type HistoryFile string

var _ configs.Configurable = HistoryFile("")

func (h HistoryFile) ConfigExpr() string {
	return "HistoryFile"
}

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if path := configs.First[string](loader, "history_file"); path != "" {
		return HistoryFile(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return HistoryFile(filepath.Join(home, ".tomlrepl_history"))
}
