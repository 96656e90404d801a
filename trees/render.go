package trees

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

func renderInto(sb *strings.Builder, tree map[string]any, prefix string) {
	for _, key := range slices.Sorted(maps.Keys(tree)) {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if sub, ok := tree[key].(map[string]any); ok {
			renderInto(sb, sub, full)
			continue
		}
		fmt.Fprintf(sb, "%s = %s\n", full, renderValue(tree[key]))
	}
}

func renderValue(value any) string {
	switch value := value.(type) {

	case string:
		return strconv.Quote(value)

	case time.Time:
		return value.Format(time.RFC3339Nano)

	case []any:
		parts := make([]string, 0, len(value))
		for _, elem := range value {
			parts = append(parts, renderValue(elem))
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case map[string]any:
		parts := make([]string, 0, len(value))
		for _, key := range slices.Sorted(maps.Keys(value)) {
			parts = append(parts, key+" = "+renderValue(value[key]))
		}
		return "{" + strings.Join(parts, ", ") + "}"

	default:
		return fmt.Sprint(value)
	}
}
