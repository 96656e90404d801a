package configs

// Configurable marks a provided type as overridable from config files. The
// expression names the type in config sources.
type Configurable interface {
	ConfigExpr() string
}
