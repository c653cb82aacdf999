package populate

import (
	"github.com/brentp/intintmap"

	"github.com/mossdale/tabletop/editor/world"
)

// occupancy is the exclusive-occupant index of one placement pass, keyed
// by flattened cell index. intintmap stores int64 pairs without boxing,
// and cannot hold a zero key, so indices are offset by one.
type occupancy struct {
	m    *intintmap.Map
	cols int
}

func newOccupancy(cols int) *occupancy {
	return &occupancy{m: intintmap.New(64, 0.6), cols: cols}
}

func (o *occupancy) key(c world.Cell) int64 { return int64(c.Y*o.cols+c.X) + 1 }

// claim marks the cell occupied, reporting false if it already was.
func (o *occupancy) claim(c world.Cell) bool {
	k := o.key(c)
	if _, ok := o.m.Get(k); ok {
		return false
	}
	o.m.Put(k, 1)
	return true
}

// release frees a claimed cell again, used when a sink rejects the
// placement that claimed it.
func (o *occupancy) release(c world.Cell) {
	o.m.Del(o.key(c))
}
