package avatar

// LifecycleState is the widget's initialization state.
type LifecycleState int

const (
	// Uninitialized widgets defer setup until MarkReady.
	Uninitialized LifecycleState = iota
	// Ready widgets run setup immediately. Ready is terminal.
	Ready
)

// String returns the state name.
func (s LifecycleState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Lifecycle runs actions immediately once ready and holds at most one deferred
// action before that. A later deferred action replaces an earlier one.
type Lifecycle struct {
	state   LifecycleState
	pending func()
}

// State returns the current state.
func (l *Lifecycle) State() LifecycleState {
	return l.state
}

// Pending reports whether an action is waiting for MarkReady.
func (l *Lifecycle) Pending() bool {
	return l.pending != nil
}

// Run executes action now if ready, otherwise defers it.
// It reports whether the action ran.
func (l *Lifecycle) Run(action func()) bool {
	if l.state != Ready {
		l.pending = action
		return false
	}
	action()
	return true
}

// MarkReady transitions to Ready and runs the deferred action, if any.
// Calling it again has no effect.
func (l *Lifecycle) MarkReady() {
	if l.state == Ready {
		return
	}
	l.state = Ready
	if action := l.pending; action != nil {
		action()
		l.pending = nil
	}
}
