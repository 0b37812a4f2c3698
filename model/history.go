package model

// DefaultHistorySize keeps enough hashes to spot period 1-3 cycles
const DefaultHistorySize = 5

// History stores recent grid hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

func NewHistory(size int) *History {
	if size < 3 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Record adds a hash, dropping the oldest once full
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash matches one of the last three recorded states,
// i.e. the board is static or cycling with period at most 3
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets all recorded hashes
func (h *History) Reset() {
	h.hashes = nil
}
