package components

import "time"

// Loading specifies the desired loading behavior for a button: off,
// immediately on, or on after a delay with an optional custom indicator.
// The zero value means off.
type Loading struct {
	enabled bool
	delay   time.Duration
	icon    Icon
}

// LoadingOff returns the specification for a non-loading button.
func LoadingOff() Loading {
	return Loading{}
}

// LoadingOn returns the specification for an immediately loading button.
func LoadingOn() Loading {
	return Loading{enabled: true}
}

// LoadingAfter returns a specification that activates after the given delay.
// A zero or negative delay activates immediately. The icon, when non-nil,
// replaces the default spinner while loading.
func LoadingAfter(delay time.Duration, icon Icon) Loading {
	if delay < 0 {
		delay = 0
	}
	return Loading{enabled: true, delay: delay, icon: icon}
}

// Enabled reports whether the specification requests loading at all.
func (l Loading) Enabled() bool { return l.enabled }

// Icon returns the custom loading indicator, or nil for the default spinner.
func (l Loading) Icon() Icon { return l.icon }

// Delay returns the normalized activation delay.
func (l Loading) Delay() time.Duration { return l.delay }

// LoadingPhase is the automaton state derived from a Loading specification.
type LoadingPhase int

const (
	// LoadingIdle means no loading indicator is shown.
	LoadingIdle LoadingPhase = iota
	// LoadingPending means activation is scheduled but not yet due.
	LoadingPending
	// LoadingActive means the loading indicator is shown.
	LoadingActive
)

// DelayedActivation describes a scheduled transition to LoadingActive.
// The host schedules it (tea.Tick in a bubbletea program) and calls Fire
// with the sequence number when it elapses. A transition whose sequence is
// no longer current is stale and will not fire.
type DelayedActivation struct {
	Seq   uint64
	After time.Duration
}

// loadingAutomaton debounces a loading specification into an active flag.
//
// Every input change bumps the sequence number, which invalidates any
// pending transition from the previous specification: at most one pending
// transition exists per instance and rapid toggling cannot leak a stale
// activation. All methods are synchronous; scheduling is the host's job.
type loadingAutomaton struct {
	phase LoadingPhase
	seq   uint64
	torn  bool
}

// Apply re-evaluates the automaton from Idle under the new specification.
// It returns a non-nil DelayedActivation when the host must schedule a
// delayed transition.
func (a *loadingAutomaton) Apply(spec Loading) *DelayedActivation {
	a.seq++
	if a.torn {
		return nil
	}

	switch {
	case !spec.enabled:
		a.phase = LoadingIdle
		return nil
	case spec.delay <= 0:
		// Immediate activation happens in the same update cycle; the
		// displayed state never lags a non-delayed input change.
		a.phase = LoadingActive
		return nil
	default:
		a.phase = LoadingPending
		return &DelayedActivation{Seq: a.seq, After: spec.delay}
	}
}

// Fire completes a delayed activation. It reports whether the transition was
// applied; stale sequences, repeated fires and fires after teardown are
// no-ops.
func (a *loadingAutomaton) Fire(seq uint64) bool {
	if a.torn || seq != a.seq || a.phase != LoadingPending {
		return false
	}
	a.phase = LoadingActive
	return true
}

// Cancel aborts any pending transition. Cancelling twice, or cancelling
// after the transition already fired, is a no-op.
func (a *loadingAutomaton) Cancel() {
	a.seq++
	if a.phase == LoadingPending {
		a.phase = LoadingIdle
	}
}

// Teardown permanently disables the automaton. No pending transition may
// mutate state afterwards.
func (a *loadingAutomaton) Teardown() {
	a.seq++
	a.torn = true
	if a.phase == LoadingPending {
		a.phase = LoadingIdle
	}
}

// Active reports whether the loading indicator should currently be shown.
func (a *loadingAutomaton) Active() bool {
	return a.phase == LoadingActive
}

// Phase returns the current automaton phase.
func (a *loadingAutomaton) Phase() LoadingPhase {
	return a.phase
}
