package game

// Judgement is the outcome of resolving a cue.
type Judgement int

const (
	Miss Judgement = iota
	OK
	Good
	Perfect
)

var judgementNames = [...]string{"Miss", "OK", "Good", "Perfect"}

func (j Judgement) String() string {
	if j < 0 || int(j) >= len(judgementNames) {
		return "Unknown"
	}
	return judgementNames[j]
}

// Points awarded for the judgement. Misses are scoreless, never negative.
func (j Judgement) Points() int {
	switch j {
	case OK:
		return 1
	case Good:
		return 2
	case Perfect:
		return 3
	}
	return 0
}

// NumJudgements is the number of distinct outcomes.
const NumJudgements = int(Perfect) + 1

// Judgements lists every outcome, worst first.
var Judgements = []Judgement{Miss, OK, Good, Perfect}
