package project

import (
	"estate-booking/internal/domain/plot"
	"estate-booking/internal/pkg/errs"
)

var (
	ErrCounterUnderflow = errs.New("project counter would become negative")
	ErrCounterInvariant = errs.New("project counters do not add up to total plots")
	ErrEmptyPlotEvent   = errs.New("plot event has neither old nor new status")
)

// Counters are the per-project plot tallies. Every plot is counted in
// exactly one of Available, Sold or Reserved.
type Counters struct {
	Total     int
	Available int
	Sold      int
	Reserved  int
}

// PlotEvent describes a plot mutation. A nil Old is a creation and a nil New is a deletion.
type PlotEvent struct {
	Old *plot.Status
	New *plot.Status
}

func Created(s plot.Status) PlotEvent {
	return PlotEvent{New: &s}
}

func Changed(from, to plot.Status) PlotEvent {
	return PlotEvent{Old: &from, New: &to}
}

func Deleted(s plot.Status) PlotEvent {
	return PlotEvent{Old: &s}
}

func (c Counters) Valid() error {
	if c.Total < 0 || c.Available < 0 || c.Sold < 0 || c.Reserved < 0 {
		return ErrCounterUnderflow
	}
	if c.Available+c.Sold+c.Reserved != c.Total {
		return ErrCounterInvariant
	}
	return nil
}

// Apply returns the counters after ev. The receiver is never modified.
func (c Counters) Apply(ev PlotEvent) (Counters, error) {
	if ev.Old == nil && ev.New == nil {
		return c, ErrEmptyPlotEvent
	}
	next := c
	if ev.Old != nil {
		if !ev.Old.IsValid() {
			return c, plot.ErrInvalidStatus
		}
		next.add(ev.Old.Bucket(), -1)
		if ev.New == nil {
			next.Total--
		}
	}
	if ev.New != nil {
		if !ev.New.IsValid() {
			return c, plot.ErrInvalidStatus
		}
		next.add(ev.New.Bucket(), 1)
		if ev.Old == nil {
			next.Total++
		}
	}
	if err := next.Valid(); err != nil {
		return c, err
	}
	return next, nil
}

func (c *Counters) add(b plot.Bucket, delta int) {
	switch b {
	case plot.BucketAvailable:
		c.Available += delta
	case plot.BucketSold:
		c.Sold += delta
	case plot.BucketReserved:
		c.Reserved += delta
	}
}
