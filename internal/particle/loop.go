package particle

// FrameFunc draws one frame onto the surface it is handed.
type FrameFunc func(Surface)

// Scheduler runs a callback on the next frame. ebiten drives it from
// Draw; ManualScheduler drives it from tests.
type Scheduler interface {
	RequestFrame(FrameFunc)
}

// Loop ticks a field once per frame, forever.
type Loop struct {
	Field     *Field
	Scheduler Scheduler

	frames uint64
}

func NewLoop(field *Field, sched Scheduler) *Loop {
	return &Loop{Field: field, Scheduler: sched}
}

// Start requests the first frame. Every frame requests the next one.
func (l *Loop) Start() {
	l.Scheduler.RequestFrame(l.frame)
}

// Frames reports how many frames have run.
func (l *Loop) Frames() uint64 { return l.frames }

func (l *Loop) frame(s Surface) {
	l.Field.Tick(s)
	l.frames++
	l.Scheduler.RequestFrame(l.frame)
}

// ManualScheduler holds at most one pending frame and runs it on Step.
type ManualScheduler struct {
	pending FrameFunc
}

func (m *ManualScheduler) RequestFrame(fn FrameFunc) {
	m.pending = fn
}

// Pending reports whether a frame is waiting.
func (m *ManualScheduler) Pending() bool { return m.pending != nil }

// Step runs the pending frame, if any, and reports whether one ran.
func (m *ManualScheduler) Step(s Surface) bool {
	fn := m.pending
	if fn == nil {
		return false
	}
	m.pending = nil
	fn(s)
	return true
}
