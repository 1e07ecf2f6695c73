package core

// revealedSet tracks open cells by board index. Iteration order is ascending X,
// then ascending Y, which is the order reveal snapshots are reported in.
type revealedSet struct {
	width, height int
	present       []bool
	count         int
}

func newRevealedSet(width, height int) revealedSet {
	return revealedSet{
		width:   width,
		height:  height,
		present: make([]bool, width*height),
	}
}

// add inserts idx and reports whether it was new
func (s *revealedSet) add(idx int) bool {
	if s.present[idx] {
		return false
	}
	s.present[idx] = true
	s.count++
	return true
}

func (s *revealedSet) contains(idx int) bool { return s.present[idx] }

func (s *revealedSet) len() int { return s.count }

// ordered returns the tracked indices, column by column
func (s *revealedSet) ordered() []int {
	out := make([]int, 0, s.count)
	for x := 0; x < s.width; x++ {
		for y := 0; y < s.height; y++ {
			idx := y*s.width + x
			if s.present[idx] {
				out = append(out, idx)
			}
		}
	}
	return out
}
