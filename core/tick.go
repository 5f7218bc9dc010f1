package core

// Control tick scheduling
//
// A minimal sorted timer queue: timers are a singly
// linked list ordered by wake time, handlers return SF_DONE or
// SF_RESCHEDULE, and insert/dispatch run with interrupts masked on real
// hardware (no-op masks on regular Go, where the queue is driven from
// tests). The control loop is a single self-rescheduling timer, so a new
// tick can never begin before the previous one has returned.

// Timer represents a scheduled event on the system clock.
type Timer struct {
	WakeTime uint32 // wake time in clock ticks (µs on RP2040)
	Handler  func(*Timer) uint8
	Next     *Timer
}

// Handler results.
const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

var (
	timerList   *Timer
	currentTime uint32
)

// GetTime returns the current system time in clock ticks.
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime sets the current system time. Platform code feeds the hardware
// counter in here; tests advance it manually.
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// ScheduleTimer inserts a timer into the queue in wake-time order.
func ScheduleTimer(t *Timer) {
	state := irqSave()
	defer irqRestore(state)

	insertTimer(t)
}

func insertTimer(t *Timer) {
	if timerList == nil || timeBefore(t.WakeTime, timerList.WakeTime) {
		t.Next = timerList
		timerList = t
		return
	}

	cur := timerList
	for cur.Next != nil && timeBefore(cur.Next.WakeTime, t.WakeTime) {
		cur = cur.Next
	}
	t.Next = cur.Next
	cur.Next = t
}

// timeBefore reports whether a is earlier than b on the wrapping 32-bit
// clock. The signed difference handles counter rollover as long as the two
// times are within 2^31 ticks of each other.
func timeBefore(a, b uint32) bool {
	return int32(a-b) < 0
}

// ProcessTimers samples the clock and dispatches every timer that has come
// due, rescheduling the ones whose handlers ask for it.
func ProcessTimers() {
	currentTime = GetTime()

	state := irqSave()
	defer irqRestore(state)

	for timerList != nil && !timeBefore(currentTime, timerList.WakeTime) {
		t := timerList
		timerList = t.Next
		t.Next = nil

		if t.Handler(t) == SF_RESCHEDULE {
			insertTimer(t)
		}
	}
}

// ControlLoop binds the open-loop angle generator to the modulator and runs
// both once per control period. It is the body of the fixed-period tick
// handler: advance the angle, run the pipeline, push three compares.
type ControlLoop struct {
	Angle *OpenLoop
	Mod   *Modulator

	periodTicks uint32 // control period in clock ticks
	tickCount   uint32
	running     bool
	timer       Timer
}

// NewControlLoop creates a loop ticking at controlHz for a carrier with the
// given period. The modulator starts in the idle all-zero-vector state.
func NewControlLoop(controlHz float32, carrierPeriod uint16) *ControlLoop {
	l := &ControlLoop{
		Angle:       NewOpenLoop(controlHz),
		Mod:         NewModulator(),
		periodTicks: uint32(1e6 / controlHz),
	}
	l.Mod.Init(carrierPeriod)
	return l
}

// Start enables the inverter outputs and arms the periodic tick. Calling
// Start on a running loop is a no-op.
func (l *ControlLoop) Start() {
	if l.running {
		return
	}
	l.running = true

	if d := Inverter(); d != nil {
		d.StartOutputs()
	}

	l.timer.Next = nil
	l.timer.WakeTime = GetTime() + l.periodTicks
	l.timer.Handler = l.tick
	ScheduleTimer(&l.timer)
}

// Stop forces zero compares, disables the outputs and lets the queued tick
// drain on its next expiry. Fire-and-forget: the numeric state keeps its
// last-run values.
func (l *ControlLoop) Stop() {
	l.running = false
	l.Mod.Stop()
	if d := Inverter(); d != nil {
		d.StopOutputs()
	}
}

func (l *ControlLoop) tick(t *Timer) uint8 {
	if !l.running {
		return SF_DONE
	}

	valpha, vbeta := l.Angle.Tick()
	l.Mod.Run(valpha, vbeta)
	l.tickCount++

	t.WakeTime += l.periodTicks
	return SF_RESCHEDULE
}

// Ticks returns the number of control periods executed since Start.
func (l *ControlLoop) Ticks() uint32 {
	return l.tickCount
}
