package core

import "time"

// fpsWindow is the number of recent frames averaged for the FPS readout.
const fpsWindow = 60

// FPSMeter measures the display rate as a rolling average over the last
// fpsWindow frames. It is display-only: nothing in the simulation reads it,
// and it never scales physics.
type FPSMeter struct {
	stamps []time.Time
	next   int
	filled bool
}

// NewFPSMeter creates an empty FPS meter.
func NewFPSMeter() *FPSMeter {
	return &FPSMeter{
		stamps: make([]time.Time, fpsWindow),
	}
}

// Tick records a frame at time t.
func (m *FPSMeter) Tick(t time.Time) {
	m.stamps[m.next] = t
	m.next++
	if m.next == len(m.stamps) {
		m.next = 0
		m.filled = true
	}
}

// FPS returns the average frames per second over the recorded window.
// Returns 0 until at least two frames have been recorded.
func (m *FPSMeter) FPS() float64 {
	var oldest, newest time.Time
	var count int

	if m.filled {
		oldest = m.stamps[m.next] // Next slot holds the oldest sample
		newestIdx := m.next - 1
		if newestIdx < 0 {
			newestIdx = len(m.stamps) - 1
		}
		newest = m.stamps[newestIdx]
		count = len(m.stamps)
	} else {
		if m.next < 2 {
			return 0
		}
		oldest = m.stamps[0]
		newest = m.stamps[m.next-1]
		count = m.next
	}

	elapsed := newest.Sub(oldest).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(count-1) / elapsed
}
