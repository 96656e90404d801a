package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one unit of work across log records. It travels in the
// context and every record logged under that context carries it.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
