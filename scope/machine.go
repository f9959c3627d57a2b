// Package scope tracks where parsing or generation currently is. It keeps a
// stack of states, where bottom entry is always the document state, and a
// separate stack of key/value frames for nested bindings.
//
// Every Enter returns a Guard which owns the obligation to pop the state it
// was issued for. Callers are expected to defer Release right after Enter so
// the stack is restored on every exit path.
package scope

// Where parsing or generation currently is.
// ENUM(document, element, style, script, text, template, attribute)
type State int

// Machine is owned by a single parser or generator and must not be shared
// between goroutines.
type Machine struct {
	states []State
	frames []map[string]string
}

// Guard restores the state machine when released.
type Guard struct {
	m        *Machine
	state    State
	released bool
}

// New returns machine positioned at the document state with a single base
// frame.
func New() *Machine {
	return &Machine{
		states: []State{StateDocument},
		frames: []map[string]string{{}},
	}
}

// Current returns state on top of the stack.
func (m *Machine) Current() State {
	return m.states[len(m.states)-1]
}

// Depth returns number of states entered above the base state.
func (m *Machine) Depth() int {
	return len(m.states) - 1
}

// Enter pushes state and returns guard which pops it on release. Push never
// fails.
func (m *Machine) Enter(s State) *Guard {
	m.states = append(m.states, s)
	return &Guard{m: m, state: s}
}

// Within reports whether state is anywhere on the stack.
func (m *Machine) Within(s State) bool {
	for i := len(m.states) - 1; i >= 0; i-- {
		if m.states[i] == s {
			return true
		}
	}
	return false
}

// Release pops the state guard was issued for. When nesting became
// unbalanced it pops downward until the nearest matching state is removed or
// only base state is left. Releasing twice is a no-op.
func (g *Guard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	g.m.pop(g.state)
}

func (m *Machine) pop(s State) {
	for len(m.states) > 1 {
		top := m.states[len(m.states)-1]
		m.states = m.states[:len(m.states)-1]
		if top == s {
			return
		}
	}
}

// PushFrame opens new innermost binding frame.
func (m *Machine) PushFrame() {
	m.frames = append(m.frames, map[string]string{})
}

// PopFrame closes innermost binding frame. Base frame is never removed.
func (m *Machine) PopFrame() {
	if len(m.frames) > 1 {
		m.frames = m.frames[:len(m.frames)-1]
	}
}

// Set binds key in the innermost frame.
func (m *Machine) Set(key, value string) {
	m.frames[len(m.frames)-1][key] = value
}

// Get looks key up starting from innermost frame.
func (m *Machine) Get(key string) (string, bool) {
	for i := len(m.frames) - 1; i >= 0; i-- {
		if v, ok := m.frames[i][key]; ok {
			return v, true
		}
	}
	return "", false
}
