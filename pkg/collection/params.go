package collection

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Params are extra query parameters such as filter, sort, expand or fields.
type Params map[string]any

// Encode renders the params as a query string without the leading "?".
// Keys are sorted; keys and values are escaped like URI components.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(p))
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, escapeComponent(k)+"="+escapeComponent(stringify(p[k])))
	}
	return strings.Join(pairs, "&")
}

// mergeParams layers params left to right; later keys win.
func mergeParams(layers ...Params) Params {
	out := Params{}
	for _, l := range layers {
		maps.Copy(out, l)
	}
	return out
}

func stringify(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

func escapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// componentEscaper restores the characters URI component encoding leaves intact.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
