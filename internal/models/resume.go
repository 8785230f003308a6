package models

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// UnknownCandidate is used when the resume carries no recognisable name.
const UnknownCandidate = "Unknown"

// ResumeProfile is the structured view of a resume.
type ResumeProfile struct {
	Name            string          `json:"name"`
	Skills          []string        `json:"skills"`
	Projects        []string        `json:"projects"`
	ExperienceLevel ExperienceLevel `json:"experience_level" validate:"required,oneof=beginner intermediate advanced"`
}
