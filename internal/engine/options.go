// internal/engine/options.go
package engine

import "strings"

// Options is a configuration tree in the shape the client-side charting
// library consumes. Nested objects may be Options or plain map[string]any.
type Options map[string]any

// Clone returns a deep copy of o. Scriptable values are copied by value.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = cloneValue(v)
	}
	return out
}

// Get walks a dotted path such as "plugins.legend.labels.padding".
func (o Options) Get(path string) (any, bool) {
	var cur any = o
	for _, key := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set assigns a value at a dotted path, creating intermediate objects.
func (o Options) Set(path string, value any) {
	keys := strings.Split(path, ".")
	cur := map[string]any(o)
	for _, key := range keys[:len(keys)-1] {
		next, ok := asMap(cur[key])
		if !ok {
			next = Options{}
			cur[key] = next
		}
		cur = next
	}
	cur[keys[len(keys)-1]] = value
}

// Merge layers option trees from lowest to highest precedence into a new tree.
// Nested objects merge key by key; every other value, slices included, is
// replaced by the higher layer. None of the layers is modified.
func Merge(layers ...Options) Options {
	out := Options{}
	for _, layer := range layers {
		overlay(out, layer)
	}
	return out
}

func overlay(dst map[string]any, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := asMap(v)
		if srcIsMap {
			if dstMap, ok := asMap(dst[k]); ok {
				overlay(dstMap, srcMap)
				continue
			}
			fresh := Options{}
			overlay(fresh, srcMap)
			dst[k] = fresh
			continue
		}
		dst[k] = cloneValue(v)
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Options:
		return m, m != nil
	case map[string]any:
		return m, m != nil
	default:
		return nil, false
	}
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case Options:
		return x.Clone()
	case map[string]any:
		return Options(x).Clone()
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = cloneValue(item)
		}
		return out
	case []Options:
		out := make([]Options, len(x))
		for i, item := range x {
			out[i] = item.Clone()
		}
		return out
	case []string:
		return append([]string(nil), x...)
	case []float64:
		return append([]float64(nil), x...)
	case []int:
		return append([]int(nil), x...)
	case Scriptable:
		return x.clone()
	default:
		return v
	}
}
