package core

// Modulator facade
// Orchestrates the four-stage SVPWM pipeline (classify -> solve -> map ->
// convert) once per control tick and forwards the resulting compare
// thresholds to the inverter driver.

// Modulation is the last-computed switching state of one inverter. It is
// overwritten in place each tick and only ever handed out by value.
type Modulation struct {
	Sector Sector

	// Dwell ratios for one carrier period. T1+T2+T0 == 1 when no clamping
	// occurred; T1+T2 <= 1 always after overmodulation clamping.
	T1 float32
	T2 float32
	T0 float32

	// Compare thresholds in counter ticks, in [0, periodTicks].
	CompareA uint16
	CompareB uint16
	CompareC uint16
}

// Modulator runs the SVPWM pipeline for one inverter. One instance per
// inverter; all methods are called from the single control tick context.
type Modulator struct {
	period uint16
	state  Modulation
}

// NewModulator returns a modulator with no carrier configured. Init must be
// called before Run produces meaningful thresholds.
func NewModulator() *Modulator {
	return &Modulator{}
}

// Init fixes the carrier period and resets the state to the all-zero-vector
// idle pattern (sector 1, T0 = 1, thresholds 0). It does not start hardware
// output; that is the driver's StartOutputs.
func (m *Modulator) Init(periodTicks uint16) {
	m.period = periodTicks
	m.state = Modulation{Sector: Sector1, T0: 1}
}

// Run executes the pipeline for the commanded vector and issues exactly
// three SetCompare calls to the registered driver. Aside from the state
// overwrite and those calls it is pure. With no driver registered the
// numeric state is still updated and the compare writes are skipped.
func (m *Modulator) Run(valpha, vbeta float32) {
	sector := ClassifySector(valpha, vbeta)
	t1, t2, t0 := SolveTimes(valpha, vbeta, sector)
	da, db, dc := MapDuties(sector, t1, t2, t0)

	m.state.Sector = sector
	m.state.T1, m.state.T2, m.state.T0 = t1, t2, t0
	m.state.CompareA = ToCompare(da, m.period)
	m.state.CompareB = ToCompare(db, m.period)
	m.state.CompareC = ToCompare(dc, m.period)

	d := Inverter()
	if d == nil {
		return
	}
	d.SetCompare(PhaseA, m.state.CompareA)
	d.SetCompare(PhaseB, m.state.CompareB)
	d.SetCompare(PhaseC, m.state.CompareC)
}

// Stop forces all three compare thresholds to zero at the driver. The
// numeric bookkeeping from the last Run is left intact for post-mortem
// inspection.
func (m *Modulator) Stop() {
	d := Inverter()
	if d == nil {
		return
	}
	d.SetCompare(PhaseA, 0)
	d.SetCompare(PhaseB, 0)
	d.SetCompare(PhaseC, 0)
}

// State returns a snapshot of the last-computed modulation state. Readers
// outside the tick context get stale-but-per-field-consistent data; no lock
// is taken so the control tick never blocks.
func (m *Modulator) State() Modulation {
	return m.state
}
