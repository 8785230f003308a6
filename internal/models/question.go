package models

type Difficulty string

const (
	DifficultyBasic    Difficulty = "basic"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyDeepDive Difficulty = "deep_dive"
)

// QuestionSetSize is the number of questions in every generated set.
const QuestionSetSize = 5

type InterviewQuestion struct {
	Question   string     `json:"question" validate:"required"`
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=basic medium hard deep_dive"`
	SkillFocus string     `json:"skill_focus" validate:"required"`
	// DeepDive marks a question meant to probe one topic in depth, independent of Difficulty.
	DeepDive bool `json:"deep_dive"`
}

type QuestionSet struct {
	Questions []InterviewQuestion `json:"questions" validate:"len=5,dive"`
}

// DifficultyCounts tallies questions per difficulty label.
func (qs *QuestionSet) DifficultyCounts() map[Difficulty]int {
	counts := make(map[Difficulty]int, 4)
	for _, q := range qs.Questions {
		counts[q.Difficulty]++
	}
	return counts
}

// HasDeepDive reports whether any question is flagged or labelled as a deep dive.
func (qs *QuestionSet) HasDeepDive() bool {
	for _, q := range qs.Questions {
		if q.DeepDive || q.Difficulty == DifficultyDeepDive {
			return true
		}
	}
	return false
}
