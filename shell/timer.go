package shell

import "time"

// Timer records how long the preparation and main phases of a tool run
// took. Unset phases count as zero.
type Timer struct {
	prep     *time.Duration
	main     *time.Duration
	mainRuns int
}

func NewTimer() *Timer {
	return &Timer{}
}

func (t *Timer) RecordPrep(fn func()) {
	d := measure(fn)
	t.prep = &d
}

// RecordMain overwrites any previous main sample so an escalated rerun is
// what gets reported.
func (t *Timer) RecordMain(fn func()) {
	d := measure(fn)
	t.main = &d
	t.mainRuns++
}

func (t *Timer) Prep() (time.Duration, bool) {
	if t.prep == nil {
		return 0, false
	}
	return *t.prep, true
}

func (t *Timer) Main() (time.Duration, bool) {
	if t.main == nil {
		return 0, false
	}
	return *t.main, true
}

// MainRuns counts how many times the main phase was recorded.
func (t *Timer) MainRuns() int {
	return t.mainRuns
}

func (t *Timer) Prepped() bool {
	return t.prep != nil && t.main != nil
}

func (t *Timer) Total() time.Duration {
	prep, _ := t.Prep()
	main, _ := t.Main()
	return prep + main
}

// PrepPercent is the share of the total spent preparing, rounded to a whole
// percent. It is only defined when both phases ran.
func (t *Timer) PrepPercent() (int, bool) {
	if !t.Prepped() || t.Total() == 0 {
		return 0, false
	}
	return int(float64(*t.prep)/float64(t.Total())*100 + 0.5), true
}

func measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
