package game

// Lane is a configured input column.
type Lane struct {
	ID    string
	Index int // The column, left to right
}

// Lanes maps a lane id to its configuration. It is built once at load.
type Lanes map[string]Lane

func NewLanes(ids []string) Lanes {
	lanes := make(Lanes, len(ids))
	for i, id := range ids {
		lanes[id] = Lane{ID: id, Index: i}
	}
	return lanes
}

func (l Lanes) Lookup(id string) (Lane, bool) {
	lane, ok := l[id]
	return lane, ok
}
