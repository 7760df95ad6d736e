package cipher

type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Shift applies a position dependent modular shift to alphabet indices in place.
// The key is cycled over the positions of work, so work[i] is shifted by key[i%len(key)].
// Every value of work must already be within [0, size).
func Shift(work []int, key []int, size int, dir Direction) {
	if len(key) == 0 || size <= 0 {
		return
	}
	for i := range work {
		k := key[i%len(key)] % size
		switch dir {
		case Forward:
			work[i] = (work[i] + k) % size
		case Backward:
			work[i] = (work[i] - k + size) % size
		}
	}
}
