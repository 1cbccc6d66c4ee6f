package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNoDrivers    = errors.New("at least one driver is required")
	ErrNoOperations = errors.New("all operation weights are zero")
)

// Options describes a benchmark run. It can be passed to the run command as a
// JSON string through the --options flag.
type Options struct {
	// Seed makes workloads reproducible; trial i uses the stream (Seed, i).
	Seed uint64 `json:"seed"`
	// Ops is the number of operations per trial.
	Ops int `json:"ops"`
	// KeySpace bounds keys to [0, KeySpace).
	KeySpace uint32 `json:"key_space"`

	InsertWeight     int `json:"insert_weight"`
	EraseWeight      int `json:"erase_weight"`
	FindWeight       int `json:"find_weight"`
	LowerBoundWeight int `json:"lower_bound_weight"`

	Trials   int `json:"trials"`
	Parallel int `json:"parallel"`
	// Drivers selects the implementations to run, see DriverNames.
	Drivers []string `json:"drivers"`

	// Check applies every operation to all drivers in lockstep and fails on
	// the first disagreement.
	Check bool `json:"check"`
	// Verify runs the aaset invariant checker at the end of every trial.
	Verify bool `json:"verify"`
}

func DefaultOptions() Options {
	return Options{
		Seed:             1,
		Ops:              1_000_000,
		KeySpace:         1 << 20,
		InsertWeight:     4,
		EraseWeight:      2,
		FindWeight:       3,
		LowerBoundWeight: 1,
		Trials:           1,
		Parallel:         1,
		Drivers:          DriverNames(),
	}
}

// ParseOptions decodes a JSON object on top of base.
func ParseOptions(base Options, raw string) (Options, error) {
	if raw == "" {
		return base, nil
	}
	opts := base
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return Options{}, fmt.Errorf("error unmarshaling options: %w", err)
	}
	return opts, nil
}

func (o Options) Validate() error {
	if o.Ops <= 0 {
		return fmt.Errorf("ops must be positive, got %d", o.Ops)
	}
	if o.KeySpace == 0 {
		return fmt.Errorf("key space must be positive")
	}
	if o.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", o.Trials)
	}
	if o.Parallel <= 0 {
		return fmt.Errorf("parallel must be positive, got %d", o.Parallel)
	}
	weights := []int{o.InsertWeight, o.EraseWeight, o.FindWeight, o.LowerBoundWeight}
	for _, w := range weights {
		if w < 0 {
			return fmt.Errorf("operation weights must not be negative, got %v", weights)
		}
	}
	if o.totalWeight() == 0 {
		return ErrNoOperations
	}
	if len(o.Drivers) == 0 {
		return ErrNoDrivers
	}
	known := DriverNames()
	for _, name := range o.Drivers {
		if !slices.Contains(known, name) {
			return fmt.Errorf("unknown driver %q, expected one of %v", name, known)
		}
	}
	return nil
}

func (o Options) totalWeight() int {
	return o.InsertWeight + o.EraseWeight + o.FindWeight + o.LowerBoundWeight
}
