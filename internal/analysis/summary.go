package analysis

import (
	"github.com/SeamusWaldron/stickercube"
	"github.com/SeamusWaldron/stickercube/internal/notation"
)

// Summary contains the statistics for one move history.
type Summary struct {
	TotalMoves      int            `json:"total_moves"`
	SimplifiedMoves int            `json:"simplified_moves"`
	Efficiency      float64        `json:"efficiency"`
	Solved          bool           `json:"solved"`
	Phase           string         `json:"phase"`
	KindCounts      map[string]int `json:"kind_counts"`
	AxisCounts      map[string]int `json:"axis_counts"`
	TurnCounts      map[string]int `json:"turn_counts"`
	MostUsedAxis    string         `json:"most_used_axis,omitempty"`
	AxisPairs       map[string]int `json:"axis_pairs"` // e.g., "R U" -> count
	PhaseTimeline   []PhaseMark    `json:"phase_timeline"`
}

// PhaseMark records the move count at which the cube entered a phase.
type PhaseMark struct {
	Phase       string `json:"phase"`
	DisplayName string `json:"display_name"`
	AfterMoves  int    `json:"after_moves"`
}

// StartOf recovers the cube a history was applied to by undoing it from the
// final cube.
func StartOf(final stickercube.Cube, moves []stickercube.Move) stickercube.Cube {
	return final.ApplyMoves(stickercube.InverseSequence(moves)...)
}

// Summarize computes statistics for moves applied to start.
func Summarize(start stickercube.Cube, moves []stickercube.Move) *Summary {
	simplified := notation.Simplify(moves)
	final := start.ApplyMoves(moves...)

	s := &Summary{
		TotalMoves:      len(moves),
		SimplifiedMoves: len(simplified),
		Efficiency:      CalculateEfficiency(moves, simplified),
		Solved:          final.IsSolved(),
		Phase:           final.Phase().String(),
		KindCounts:      make(map[string]int),
		AxisCounts:      make(map[string]int),
		TurnCounts:      make(map[string]int),
		AxisPairs:       make(map[string]int),
		PhaseTimeline:   PhaseTimeline(start, moves),
	}

	for i, m := range moves {
		s.KindCounts[m.Axis.Kind().String()]++
		s.AxisCounts[string(m.Axis)]++
		s.TurnCounts[m.Rotation().String()]++
		if i > 0 {
			s.AxisPairs[string(moves[i-1].Axis)+" "+string(m.Axis)]++
		}
	}

	best := 0
	for _, axis := range stickercube.MoveAxes() {
		if n := s.AxisCounts[string(axis)]; n > best {
			best = n
			s.MostUsedAxis = string(axis)
		}
	}

	return s
}

// PhaseTimeline replays moves from start and records every phase change.
// The first mark is the starting phase.
func PhaseTimeline(start stickercube.Cube, moves []stickercube.Move) []PhaseMark {
	c := start
	phase := c.Phase()
	marks := []PhaseMark{newPhaseMark(phase, 0)}

	for i, m := range moves {
		c = c.Apply(m)
		if p := c.Phase(); p != phase {
			phase = p
			marks = append(marks, newPhaseMark(p, i+1))
		}
	}
	return marks
}

func newPhaseMark(p stickercube.Phase, after int) PhaseMark {
	return PhaseMark{
		Phase:       p.String(),
		DisplayName: p.DisplayName(),
		AfterMoves:  after,
	}
}

// Report bundles every analysis of one history.
type Report struct {
	Summary     *Summary          `json:"summary"`
	Repetitions *RepetitionReport `json:"repetitions"`
	NGrams      *NGramReport      `json:"ngrams"`
	Algorithms  *AlgorithmReport  `json:"algorithms"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

// Analyze runs every analysis over moves applied to start. N-grams of
// length minN..maxN are mined, keeping topK per length.
func Analyze(start stickercube.Cube, moves []stickercube.Move, minN, maxN, topK int) *Report {
	algorithms := FindAlgorithms(moves)
	return &Report{
		Summary:     Summarize(start, moves),
		Repetitions: AnalyzeRepetitions(moves),
		NGrams:      MineNGrams(moves, minN, maxN, topK),
		Algorithms:  algorithms,
		Suggestions: SuggestImprovements(algorithms, len(moves)),
	}
}
