package bench

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	gbtree "github.com/google/btree"
	"github.com/tidwall/btree"

	"github.com/cosmos/iavl-bench/aaset"
)

// Driver is an ordered set of uint32 keys under benchmark.
type Driver interface {
	Name() string
	Insert(key uint32)
	Erase(key uint32)
	Contains(key uint32) bool
	// LowerBound returns the smallest key not less than key.
	LowerBound(key uint32) (uint32, bool)
	Len() int
	// Ascend calls fn for every key in ascending order until it returns false.
	Ascend(fn func(key uint32) bool)
}

// verifier is implemented by drivers that can check their own invariants.
type verifier interface {
	Verify() error
}

// heighter is implemented by drivers backed by a binary tree.
type heighter interface {
	Height() int
}

const googleBTreeDegree = 32

var driverFactories = map[string]func() Driver{
	"aaset":   func() Driver { return &aasetDriver{set: aaset.New[uint32]()} },
	"tidwall": func() Driver { return &tidwallDriver{tree: btree.NewBTreeG(lessUint32)} },
	"google":  func() Driver { return &googleDriver{tree: gbtree.NewOrderedG[uint32](googleBTreeDegree)} },
	"roaring": func() Driver { return &roaringDriver{bitmap: roaring.New()} },
}

// DriverNames lists the available drivers, aaset first.
func DriverNames() []string {
	return []string{"aaset", "tidwall", "google", "roaring"}
}

func NewDriver(name string) (Driver, error) {
	factory, ok := driverFactories[name]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q", name)
	}
	return factory(), nil
}

func lessUint32(a, b uint32) bool {
	return a < b
}

type aasetDriver struct {
	set *aaset.Set[uint32]
}

func (d *aasetDriver) Name() string             { return "aaset" }
func (d *aasetDriver) Insert(key uint32)        { d.set.Insert(key) }
func (d *aasetDriver) Erase(key uint32)         { d.set.Erase(key) }
func (d *aasetDriver) Contains(key uint32) bool { return d.set.Contains(key) }
func (d *aasetDriver) Len() int                 { return d.set.Size() }
func (d *aasetDriver) Verify() error            { return d.set.Verify() }
func (d *aasetDriver) Height() int              { return d.set.Height() }

func (d *aasetDriver) LowerBound(key uint32) (uint32, bool) {
	it := d.set.LowerBound(key)
	if !it.Valid() {
		return 0, false
	}
	return it.Value(), true
}

func (d *aasetDriver) Ascend(fn func(key uint32) bool) {
	for key := range d.set.All() {
		if !fn(key) {
			return
		}
	}
}

type tidwallDriver struct {
	tree *btree.BTreeG[uint32]
}

func (d *tidwallDriver) Name() string      { return "tidwall" }
func (d *tidwallDriver) Insert(key uint32) { d.tree.Set(key) }
func (d *tidwallDriver) Erase(key uint32)  { d.tree.Delete(key) }
func (d *tidwallDriver) Len() int          { return d.tree.Len() }

func (d *tidwallDriver) Contains(key uint32) bool {
	_, ok := d.tree.Get(key)
	return ok
}

func (d *tidwallDriver) LowerBound(key uint32) (out uint32, found bool) {
	d.tree.Ascend(key, func(item uint32) bool {
		out, found = item, true
		return false
	})
	return out, found
}

func (d *tidwallDriver) Ascend(fn func(key uint32) bool) {
	d.tree.Scan(fn)
}

type googleDriver struct {
	tree *gbtree.BTreeG[uint32]
}

func (d *googleDriver) Name() string             { return "google" }
func (d *googleDriver) Insert(key uint32)        { d.tree.ReplaceOrInsert(key) }
func (d *googleDriver) Erase(key uint32)         { d.tree.Delete(key) }
func (d *googleDriver) Contains(key uint32) bool { return d.tree.Has(key) }
func (d *googleDriver) Len() int                 { return d.tree.Len() }

func (d *googleDriver) LowerBound(key uint32) (out uint32, found bool) {
	d.tree.AscendGreaterOrEqual(key, func(item uint32) bool {
		out, found = item, true
		return false
	})
	return out, found
}

func (d *googleDriver) Ascend(fn func(key uint32) bool) {
	d.tree.Ascend(fn)
}

type roaringDriver struct {
	bitmap *roaring.Bitmap
}

func (d *roaringDriver) Name() string             { return "roaring" }
func (d *roaringDriver) Insert(key uint32)        { d.bitmap.Add(key) }
func (d *roaringDriver) Erase(key uint32)         { d.bitmap.Remove(key) }
func (d *roaringDriver) Contains(key uint32) bool { return d.bitmap.Contains(key) }
func (d *roaringDriver) Len() int                 { return int(d.bitmap.GetCardinality()) }

func (d *roaringDriver) LowerBound(key uint32) (uint32, bool) {
	it := d.bitmap.Iterator()
	it.AdvanceIfNeeded(key)
	if !it.HasNext() {
		return 0, false
	}
	return it.Next(), true
}

func (d *roaringDriver) Ascend(fn func(key uint32) bool) {
	it := d.bitmap.Iterator()
	for it.HasNext() {
		if !fn(it.Next()) {
			return
		}
	}
}
