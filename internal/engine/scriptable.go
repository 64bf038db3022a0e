package engine

import "encoding/json"

// Scope says how the engine evaluates a scriptable value.
type Scope int

const (
	// ScopeElement values are evaluated once per data element.
	ScopeElement Scope = iota
	// ScopeTick values format axis ticks and are left to the client.
	ScopeTick
)

// ScriptContext is handed to scriptable evaluators.
type ScriptContext struct {
	Chart        *Chart
	DatasetIndex int
	DataIndex    int
	Value        float64
}

// Scriptable is a named callback. Name and Args describe it to client-side
// resolvers; Eval computes the same value in Go. Eval must be a pure function
// of the context and Args since the engine re-runs it on every repaint.
type Scriptable struct {
	Name  string
	Args  map[string]any
	Scope Scope
	Eval  func(ScriptContext) any
}

// MarshalJSON describes the callback as {"$script": name, "args": {...}}.
func (s Scriptable) MarshalJSON() ([]byte, error) {
	args := s.Args
	if args == nil {
		args = map[string]any{}
	}
	return json.Marshal(map[string]any{"$script": s.Name, "args": args})
}

// Call evaluates the callback; a nil Eval yields nil.
func (s Scriptable) Call(ctx ScriptContext) any {
	if s.Eval == nil {
		return nil
	}
	return s.Eval(ctx)
}

func (s Scriptable) clone() Scriptable {
	if s.Args != nil {
		s.Args = Options(s.Args).Clone()
	}
	return s
}
