package scan

import "sort"

type Predicate func(Cell) bool

// Select returns the cells for which keep returns true. A nil keep keeps
// everything.
func Select(cells []Cell, keep func(Cell) bool) []Cell {
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if keep == nil || keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func HasSSID(c Cell) bool {
	return c.SSID != ""
}

func Encrypted(c Cell) bool {
	return c.Encrypted
}

func SSIDEquals(ssid string) Predicate {
	return func(c Cell) bool {
		return c.SSID == ssid
	}
}

// MinSignal keeps cells whose signal is known and at least dbm.
func MinSignal(dbm int) Predicate {
	return func(c Cell) bool {
		return c.Signal != nil && *c.Signal >= dbm
	}
}

// All is true when every predicate is.
func All(preds ...Predicate) Predicate {
	return func(c Cell) bool {
		for _, p := range preds {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// SortBySignal orders cells strongest first. Cells without a signal go last;
// ties keep their scan order.
func SortBySignal(cells []Cell) {
	sort.SliceStable(cells, func(i, j int) bool {
		a, b := cells[i].Signal, cells[j].Signal
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
}
