package testutils

import (
	"errors"
	"sync"
)

// MaxRoller always rolls the highest face. Shuffle swaps every card with
// itself under it, so decks keep their built order.
type MaxRoller struct{}

// Roll returns size
func (MaxRoller) Roll(size int) (int, error) {
	return size, nil
}

// RollN returns count rolls of size
func (r MaxRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

// ScriptedRoller replays Values in order and falls back to the highest face
// once they run out.
type ScriptedRoller struct {
	mu     sync.Mutex
	Values []int
	Calls  int
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls++
	if len(r.Values) == 0 {
		return size, nil
	}
	v := r.Values[0]
	r.Values = r.Values[1:]
	return v, nil
}

// RollN returns count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ErrRollerBroken is returned by BrokenRoller
var ErrRollerBroken = errors.New("roller is broken")

// BrokenRoller fails every roll
type BrokenRoller struct{}

// Roll always fails
func (BrokenRoller) Roll(int) (int, error) {
	return 0, ErrRollerBroken
}

// RollN always fails
func (BrokenRoller) RollN(int, int) ([]int, error) {
	return nil, ErrRollerBroken
}
