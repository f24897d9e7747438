package bitseq

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting vector metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGrow is called after the word buffer is reallocated.
	RecordGrow(fromWords, toWords int)

	// RecordInsert is called after bits are inserted. n is the number of
	// bits inserted and duration the time taken, including any shift.
	RecordInsert(n int, duration time.Duration)

	// RecordErase is called after bits are erased.
	RecordErase(n int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)             {}
func (NoopMetricsCollector) RecordInsert(int, time.Duration) {}
func (NoopMetricsCollector) RecordErase(int, time.Duration)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount        atomic.Int64
	GrowWords        atomic.Int64
	InsertCount      atomic.Int64
	InsertBits       atomic.Int64
	InsertTotalNanos atomic.Int64
	EraseCount       atomic.Int64
	EraseBits        atomic.Int64
	EraseTotalNanos  atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(fromWords, toWords int) {
	b.GrowCount.Add(1)
	b.GrowWords.Add(int64(toWords - fromWords))
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(n int, duration time.Duration) {
	b.InsertCount.Add(1)
	b.InsertBits.Add(int64(n))
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordErase implements MetricsCollector.
func (b *BasicMetricsCollector) RecordErase(n int, duration time.Duration) {
	b.EraseCount.Add(1)
	b.EraseBits.Add(int64(n))
	b.EraseTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:      b.GrowCount.Load(),
		GrowWords:      b.GrowWords.Load(),
		InsertCount:    b.InsertCount.Load(),
		InsertBits:     b.InsertBits.Load(),
		InsertAvgNanos: avgNanos(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		EraseCount:     b.EraseCount.Load(),
		EraseBits:      b.EraseBits.Load(),
		EraseAvgNanos:  avgNanos(b.EraseTotalNanos.Load(), b.EraseCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount      int64
	GrowWords      int64
	InsertCount    int64
	InsertBits     int64
	InsertAvgNanos int64
	EraseCount     int64
	EraseBits      int64
	EraseAvgNanos  int64
}
