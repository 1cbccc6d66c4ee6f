package bench

import (
	"fmt"
	"math/rand/v2"
)

type opType int

const (
	opInsert opType = iota
	opErase
	opFind
	opLowerBound
)

func (o opType) String() string {
	switch o {
	case opInsert:
		return "insert"
	case opErase:
		return "erase"
	case opFind:
		return "find"
	case opLowerBound:
		return "lower_bound"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

type Op struct {
	Type opType
	Key  uint32
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%d)", o.Type, o.Key)
}

// Workload generates the operation stream of one trial. The same options and
// trial number always produce the same stream.
func Workload(opts Options, trial int) []Op {
	rng := rand.New(rand.NewPCG(opts.Seed, uint64(trial)))
	total := opts.totalWeight()
	ops := make([]Op, opts.Ops)
	for i := range ops {
		ops[i] = Op{
			Type: pickOp(opts, rng.IntN(total)),
			Key:  rng.Uint32N(opts.KeySpace),
		}
	}
	return ops
}

func pickOp(opts Options, n int) opType {
	if n < opts.InsertWeight {
		return opInsert
	}
	n -= opts.InsertWeight
	if n < opts.EraseWeight {
		return opErase
	}
	n -= opts.EraseWeight
	if n < opts.FindWeight {
		return opFind
	}
	return opLowerBound
}
