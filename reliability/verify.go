package reliability

import (
	"fmt"

	"github.com/katalvlaran/netrel/sdp"
)

// VerifyDisjoint checks that no two terms share a satisfying link state.
// It returns ErrOverlappingTerms naming the first offending pair.
//
// Complexity: O(T² · m).
func VerifyDisjoint(terms []sdp.Cube) error {
	for i := range terms {
		for j := i + 1; j < len(terms); j++ {
			if !sdp.AreDisjoint(terms[i], terms[j]) {
				return fmt.Errorf("reliability: terms %d [%s] and %d [%s]: %w",
					i, terms[i], j, terms[j], ErrOverlappingTerms)
			}
		}
	}

	return nil
}
