package bench

import (
	"fmt"
	"time"
)

type DriverResult struct {
	Driver string `json:"driver"`
	Ops    int    `json:"ops"`
	// Duration is zero in check mode, where drivers run in lockstep.
	Duration time.Duration `json:"duration_ns"`
	Size     int           `json:"size"`
	Height   int           `json:"height,omitempty"`
}

type TrialResult struct {
	Trial   int            `json:"trial"`
	Drivers []DriverResult `json:"drivers"`
}

type opResult struct {
	key   uint32
	found bool
}

// RunTrial applies the workload of one trial to a fresh instance of every
// configured driver.
func RunTrial(opts Options, trial int, metrics *Metrics) (TrialResult, error) {
	ops := Workload(opts, trial)

	drivers := make([]Driver, len(opts.Drivers))
	for i, name := range opts.Drivers {
		d, err := NewDriver(name)
		if err != nil {
			return TrialResult{}, err
		}
		drivers[i] = d
	}

	result := TrialResult{Trial: trial}
	if opts.Check {
		if err := applyLockstep(drivers, ops, metrics); err != nil {
			return result, fmt.Errorf("trial %d: %w", trial, err)
		}
		if err := compareContents(drivers); err != nil {
			metrics.Mismatches.Inc()
			return result, fmt.Errorf("trial %d: %w", trial, err)
		}
	}

	for _, d := range drivers {
		res := DriverResult{Driver: d.Name(), Ops: len(ops)}
		if !opts.Check {
			res.Duration = applyTimed(d, ops)
			metrics.TrialSeconds.WithLabelValues(d.Name()).Observe(res.Duration.Seconds())
		}
		countOps(metrics, d.Name(), ops)

		if opts.Verify {
			if v, ok := d.(verifier); ok {
				if err := v.Verify(); err != nil {
					return result, fmt.Errorf("trial %d: %s failed verification: %w", trial, d.Name(), err)
				}
			}
		}

		res.Size = d.Len()
		metrics.FinalSize.WithLabelValues(d.Name()).Set(float64(res.Size))
		if h, ok := d.(heighter); ok {
			res.Height = h.Height()
			metrics.TreeHeight.WithLabelValues(d.Name()).Set(float64(res.Height))
		}
		result.Drivers = append(result.Drivers, res)
	}

	return result, nil
}

func applyOp(d Driver, op Op) opResult {
	switch op.Type {
	case opInsert:
		d.Insert(op.Key)
	case opErase:
		d.Erase(op.Key)
	case opFind:
		return opResult{key: op.Key, found: d.Contains(op.Key)}
	case opLowerBound:
		key, found := d.LowerBound(op.Key)
		return opResult{key: key, found: found}
	}
	return opResult{}
}

func applyTimed(d Driver, ops []Op) time.Duration {
	start := time.Now()
	for _, op := range ops {
		applyOp(d, op)
	}
	return time.Since(start)
}

// applyLockstep applies every op to all drivers before moving on and
// compares results and sizes against the first driver.
func applyLockstep(drivers []Driver, ops []Op, metrics *Metrics) error {
	ref := drivers[0]
	for i, op := range ops {
		want := applyOp(ref, op)
		wantLen := ref.Len()
		for _, d := range drivers[1:] {
			got := applyOp(d, op)
			if got != want || d.Len() != wantLen {
				metrics.Mismatches.Inc()
				return fmt.Errorf("op %d %s: %s returned %+v with %d keys, %s returned %+v with %d keys",
					i, op, ref.Name(), want, wantLen, d.Name(), got, d.Len())
			}
		}
	}
	return nil
}

func collectKeys(d Driver) []uint32 {
	keys := make([]uint32, 0, d.Len())
	d.Ascend(func(key uint32) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func compareContents(drivers []Driver) error {
	want := collectKeys(drivers[0])
	for _, d := range drivers[1:] {
		got := collectKeys(d)
		if len(got) != len(want) {
			return fmt.Errorf("%s holds %d keys, %s holds %d", drivers[0].Name(), len(want), d.Name(), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				return fmt.Errorf("key %d differs: %s has %d, %s has %d", i, drivers[0].Name(), want[i], d.Name(), got[i])
			}
		}
	}
	return nil
}

func countOps(metrics *Metrics, driver string, ops []Op) {
	var counts [opLowerBound + 1]int
	for _, op := range ops {
		counts[op.Type]++
	}
	for typ, n := range counts {
		if n > 0 {
			metrics.Ops.WithLabelValues(driver, opType(typ).String()).Add(float64(n))
		}
	}
}
