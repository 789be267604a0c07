package recommend

// Type classifies what a recommendation asks the user to do.
type Type string

const (
	TypeProject  Type = "project"
	TypeProblem  Type = "problem"
	TypeSkill    Type = "skill"
	TypeLearning Type = "learning"
)

// Difficulty grades a recommendation.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Recommendation is one ranked learning/practice suggestion.
type Recommendation struct {
	Type         Type       `json:"type"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Difficulty   Difficulty `json:"difficulty"`
	TimeEstimate string     `json:"time_estimate,omitempty"`
	Resources    []string   `json:"resources"`
}

// ValidType reports whether t is one of the closed recommendation types.
func ValidType(t Type) bool {
	switch t {
	case TypeProject, TypeProblem, TypeSkill, TypeLearning:
		return true
	}
	return false
}

// ValidDifficulty reports whether d is one of the closed difficulty grades.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// difficultyOrder is the ranking tie-break: easier entries sort first.
func difficultyOrder(d Difficulty) int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	}
	return 3
}
