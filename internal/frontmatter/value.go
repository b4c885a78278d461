package frontmatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatValue renders a frontmatter value as display text. Scalars
// render as their literal text, arrays recurse element-wise, and nested
// mappings fall back to a generic placeholder.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339)
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = FormatValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		return "{ object }"
	default:
		return fmt.Sprintf("%v", x)
	}
}

// ParseValue infers a typed value from CLI string input: booleans,
// integers, floats, and a simple [a, b, c] list form; everything else
// stays a string.
func ParseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := s[1 : len(s)-1]
		var items []any
		for _, item := range strings.Split(inner, ",") {
			items = append(items, strings.TrimSpace(item))
		}
		return items
	}
	return s
}
