package reconciler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hydro-command/internal/domain/command"
	"hydro-command/internal/pkg/clock"
	"hydro-command/internal/pkg/errs"
)

type Option func(*Reconciler)

func WithPickupDelay(d time.Duration) Option {
	return func(r *Reconciler) {
		if d > 0 {
			r.pickupDelay = d
		}
	}
}

func WithTick(d time.Duration) Option {
	return func(r *Reconciler) {
		if d > 0 {
			r.tick = d
		}
	}
}

// WithObserver registers a callback for every state change. It runs without
// the reconciler lock held.
func WithObserver(fn func(State)) Option {
	return func(r *Reconciler) {
		r.observer = fn
	}
}

type pumpState struct {
	pump      Pump
	phase     Phase
	duration  time.Duration
	remaining time.Duration
	issuedAt  time.Time
	inFlight  bool
	// gen invalidates timer callbacks scheduled before the last transition.
	gen   uint64
	timer clock.Timer
}

// remainingAt derives the countdown from the issue time, not from the
// number of ticks seen.
func (p *pumpState) remainingAt(now time.Time, pickupDelay time.Duration) time.Duration {
	elapsed := now.Sub(p.issuedAt) - pickupDelay
	if elapsed < 0 {
		elapsed = 0
	}
	if left := p.duration - elapsed; left > 0 {
		return left
	}
	return 0
}

func (p *pumpState) snapshot() State {
	return State{
		PumpID:    p.pump.ID,
		Phase:     p.phase,
		Duration:  p.duration,
		Remaining: p.remaining,
		IssuedAt:  p.issuedAt,
	}
}

// cancel stops any scheduled timer and invalidates callbacks already queued.
func (p *pumpState) cancel() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// Reconciler tracks what each pump is probably doing after a command was
// queued. Devices never acknowledge execution, so every phase is inferred
// from the clock.
type Reconciler struct {
	mu          sync.Mutex
	clock       clock.TimerClock
	dispatcher  Dispatcher
	pickupDelay time.Duration
	tick        time.Duration
	observer    func(State)
	pumps       map[string]*pumpState
	order       []string
	closed      bool
}

func New(dispatcher Dispatcher, clk clock.TimerClock, pumps []Pump, opts ...Option) *Reconciler {
	r := &Reconciler{
		clock:       clk,
		dispatcher:  dispatcher,
		pickupDelay: DefaultPickupDelay,
		tick:        DefaultTick,
		pumps:       make(map[string]*pumpState, len(pumps)),
	}
	for _, p := range pumps {
		r.pumps[p.ID] = &pumpState{pump: p, phase: PhaseIdle}
		r.order = append(r.order, p.ID)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run queues the pump's on-command and, once stored, walks the pump through
// awaiting_pickup and a running countdown of duration. Devices take whole
// seconds, so duration is truncated to the second.
func (r *Reconciler) Run(ctx context.Context, pumpID string, duration time.Duration) error {
	if duration < time.Second {
		return ErrInvalidDuration
	}
	duration = duration.Truncate(time.Second)

	r.mu.Lock()
	st, err := r.lookupLocked(pumpID)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if st.inFlight || st.phase != PhaseIdle {
		r.mu.Unlock()
		return ErrBusy
	}
	st.inFlight = true
	gen := st.gen
	r.mu.Unlock()

	params := map[string]any{"duration": int(duration / time.Second)}
	dispatchErr := r.dispatcher.Dispatch(ctx, st.pump.OnAction, params, command.PriorityNormal)

	r.mu.Lock()
	st.inFlight = false
	if dispatchErr != nil {
		r.mu.Unlock()
		return &DispatchError{PumpID: pumpID, Action: st.pump.OnAction, Reason: classify(dispatchErr), Err: dispatchErr}
	}
	// An emergency stop or Close while the request was in flight wins.
	if r.closed || st.gen != gen {
		r.mu.Unlock()
		return nil
	}

	st.cancel()
	st.phase = PhaseAwaitingPickup
	st.duration = duration
	st.remaining = duration
	st.issuedAt = r.clock.Now()
	next := st.gen
	st.timer = r.clock.AfterFunc(r.pickupDelay, func() { r.startCountdown(pumpID, next) })
	snap := st.snapshot()
	r.mu.Unlock()

	slog.Debug("pump command queued", "pump", pumpID, "duration", duration)
	r.notify(snap)
	return nil
}

// Stop turns the pump off. While a countdown is non-zero the caller must
// pass confirmed, otherwise a *ConfirmationRequiredError names the remaining
// time and nothing is sent.
func (r *Reconciler) Stop(ctx context.Context, pumpID string, confirmed bool) error {
	r.mu.Lock()
	st, err := r.lookupLocked(pumpID)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if st.phase == PhaseRunning {
		st.remaining = st.remainingAt(r.clock.Now(), r.pickupDelay)
	}
	if st.remaining > 0 && !confirmed {
		remaining := st.remaining
		r.mu.Unlock()
		return &ConfirmationRequiredError{PumpID: pumpID, Remaining: remaining}
	}

	st.cancel()
	st.phase = PhaseStopped
	st.remaining = 0
	gen := st.gen
	stopped := st.snapshot()
	r.mu.Unlock()
	r.notify(stopped)

	dispatchErr := r.dispatcher.Dispatch(ctx, st.pump.OffAction, map[string]any{}, command.PriorityNormal)

	r.mu.Lock()
	var idle *State
	if st.gen == gen && st.phase == PhaseStopped {
		st.phase = PhaseIdle
		s := st.snapshot()
		idle = &s
	}
	r.mu.Unlock()
	if idle != nil {
		r.notify(*idle)
	}

	if dispatchErr != nil {
		return &DispatchError{PumpID: pumpID, Action: st.pump.OffAction, Reason: classify(dispatchErr), Err: dispatchErr}
	}
	return nil
}

// EmergencyStop resets every pump to idle immediately and queues a
// high-priority emergency_stop. No confirmation is asked for.
func (r *Reconciler) EmergencyStop(ctx context.Context) error {
	r.mu.Lock()
	snaps := make([]State, 0, len(r.order))
	for _, id := range r.order {
		st := r.pumps[id]
		st.cancel()
		st.phase = PhaseIdle
		st.remaining = 0
		snaps = append(snaps, st.snapshot())
	}
	r.mu.Unlock()

	for _, s := range snaps {
		r.notify(s)
	}

	if err := r.dispatcher.Dispatch(ctx, command.ActionEmergencyStop, map[string]any{}, command.PriorityHigh); err != nil {
		return &DispatchError{PumpID: "*", Action: command.ActionEmergencyStop, Reason: classify(err), Err: err}
	}
	slog.Warn("emergency stop queued")
	return nil
}

// State returns the current view of one pump.
func (r *Reconciler) State(pumpID string) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.pumps[pumpID]
	if !ok {
		return State{}, errs.Wrap(ErrUnknownPump, pumpID)
	}
	return st.snapshot(), nil
}

func (r *Reconciler) States() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]State, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.pumps[id].snapshot())
	}
	return out
}

// Close cancels every timer. Callbacks already scheduled become no-ops.
func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for _, st := range r.pumps {
		st.cancel()
	}
}

func (r *Reconciler) lookupLocked(pumpID string) (*pumpState, error) {
	if r.closed {
		return nil, ErrClosed
	}
	st, ok := r.pumps[pumpID]
	if !ok {
		return nil, errs.Wrap(ErrUnknownPump, pumpID)
	}
	return st, nil
}

func (r *Reconciler) startCountdown(pumpID string, gen uint64) {
	r.mu.Lock()
	st := r.pumps[pumpID]
	if r.closed || st.gen != gen || st.phase != PhaseAwaitingPickup {
		r.mu.Unlock()
		return
	}
	st.phase = PhaseRunning
	st.remaining = st.remainingAt(r.clock.Now(), r.pickupDelay)
	st.timer = r.clock.AfterFunc(r.nextTick(st.remaining), func() { r.countdown(pumpID, gen) })
	snap := st.snapshot()
	r.mu.Unlock()

	r.notify(snap)
}

func (r *Reconciler) countdown(pumpID string, gen uint64) {
	r.mu.Lock()
	st := r.pumps[pumpID]
	if r.closed || st.gen != gen || st.phase != PhaseRunning {
		r.mu.Unlock()
		return
	}
	st.remaining = st.remainingAt(r.clock.Now(), r.pickupDelay)
	if st.remaining == 0 {
		st.phase = PhaseIdle
		st.timer = nil
	} else {
		st.timer = r.clock.AfterFunc(r.nextTick(st.remaining), func() { r.countdown(pumpID, gen) })
	}
	snap := st.snapshot()
	r.mu.Unlock()

	r.notify(snap)
}

func (r *Reconciler) nextTick(remaining time.Duration) time.Duration {
	if remaining > 0 && remaining < r.tick {
		return remaining
	}
	return r.tick
}

func (r *Reconciler) notify(s State) {
	if r.observer != nil {
		r.observer(s)
	}
}
