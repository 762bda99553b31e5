package analysis

import (
	"github.com/SeamusWaldron/stickercube"
)

// Algorithm is a named move sequence to look for in a history.
type Algorithm struct {
	Name     string
	Sequence []stickercube.Move
}

func algorithm(name, moves string) Algorithm {
	return Algorithm{Name: name, Sequence: stickercube.ParseMoves(moves)}
}

// Known algorithms, longest first so a T-perm is not reported as a sexy move.
var (
	TPerm       = algorithm("T-Perm", "R U R' U' R' F R2 U' R' U' R U R' F'")
	RHSForward  = algorithm("RHS Forward", "R U R' U R U2 R'")
	RHSReverse  = algorithm("RHS Reverse", "R U2 R' U' R U' R'")
	LHSForward  = algorithm("LHS Forward", "L' U' L U' L' U2 L")
	LHSReverse  = algorithm("LHS Reverse", "L' U2 L U L' U L")
	Sexy        = algorithm("Sexy Move", "R U R' U'")
	ReverseSexy = algorithm("Reverse Sexy", "U R U' R'")
)

// KnownAlgorithms is every algorithm FindAlgorithms looks for.
var KnownAlgorithms = []Algorithm{TPerm, RHSForward, RHSReverse, LHSForward, LHSReverse, Sexy, ReverseSexy}

// AlgorithmMatch represents a detected algorithm usage.
type AlgorithmMatch struct {
	Name       string `json:"name"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// AlgorithmReport summarizes the algorithms found in a history.
type AlgorithmReport struct {
	Matches            []AlgorithmMatch `json:"matches"`
	Counts             map[string]int   `json:"counts"`
	ConsecutiveRepeats int              `json:"consecutive_repeats"`
	UnmatchedMoves     int              `json:"unmatched_moves"`
}

// FindAlgorithms scans moves left to right and reports non-overlapping
// matches of the known algorithms, trying them in list order at each index.
func FindAlgorithms(moves []stickercube.Move) *AlgorithmReport {
	return FindAlgorithmsIn(moves, KnownAlgorithms)
}

// FindAlgorithmsIn is FindAlgorithms with a custom algorithm list.
func FindAlgorithmsIn(moves []stickercube.Move, algorithms []Algorithm) *AlgorithmReport {
	report := &AlgorithmReport{
		Matches: []AlgorithmMatch{},
		Counts:  make(map[string]int),
	}

	lastEnd := -2
	lastName := ""
	i := 0
	for i < len(moves) {
		alg, ok := matchAt(moves, i, algorithms)
		if !ok {
			report.UnmatchedMoves++
			i++
			continue
		}

		end := i + len(alg.Sequence) - 1
		report.Matches = append(report.Matches, AlgorithmMatch{
			Name:       alg.Name,
			StartIndex: i,
			EndIndex:   end,
		})
		report.Counts[alg.Name]++
		if lastEnd == i-1 && lastName == alg.Name {
			report.ConsecutiveRepeats++
		}
		lastEnd, lastName = end, alg.Name
		i = end + 1
	}

	return report
}

func matchAt(moves []stickercube.Move, start int, algorithms []Algorithm) (Algorithm, bool) {
	for _, alg := range algorithms {
		if matchesSequence(moves, start, alg.Sequence) {
			return alg, true
		}
	}
	return Algorithm{}, false
}

// matchesSequence checks if the moves starting at start match seq.
func matchesSequence(moves []stickercube.Move, start int, seq []stickercube.Move) bool {
	if len(seq) == 0 || start+len(seq) > len(moves) {
		return false
	}
	for i, m := range seq {
		if moves[start+i] != m {
			return false
		}
	}
	return true
}

// SuggestImprovements turns an algorithm report into practice hints.
func SuggestImprovements(report *AlgorithmReport, totalMoves int) []string {
	var suggestions []string

	if totalMoves > 0 && report.UnmatchedMoves > totalMoves*3/4 && len(report.Matches) > 0 {
		suggestions = append(suggestions, "Most moves are outside known algorithms - consider learning more of them")
	}
	if report.ConsecutiveRepeats > 2 {
		suggestions = append(suggestions, "The same algorithm is repeated back to back - a different one may finish the case sooner")
	}
	if report.Counts[RHSForward.Name] > 0 && report.Counts[RHSReverse.Name] == 0 {
		suggestions = append(suggestions, "Only using RHS Forward - learn RHS Reverse")
	}
	rhs := report.Counts[RHSForward.Name] + report.Counts[RHSReverse.Name]
	lhs := report.Counts[LHSForward.Name] + report.Counts[LHSReverse.Name]
	if rhs > 0 && lhs == 0 {
		suggestions = append(suggestions, "Not using LHS variants - they can save a cube rotation")
	}

	return suggestions
}
