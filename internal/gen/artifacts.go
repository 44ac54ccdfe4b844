package gen

// PhasePlan is a 30/60/90-day preparation plan.
type PhasePlan struct {
	First30Days []string `json:"first30Days" validate:"min=2,max=8,dive,required"`
	Days31To60  []string `json:"days31To60" validate:"min=2,max=8,dive,required"`
	Days61To90  []string `json:"days61To90" validate:"min=2,max=8,dive,required"`
}

type JobInsights struct {
	RoleSummary                string    `json:"roleSummary" validate:"required"`
	RequiredSkills             []string  `json:"requiredSkills" validate:"min=3,max=12,dive,required"`
	InterviewTopics            []string  `json:"interviewTopics" validate:"min=3,max=12,dive,required"`
	CodingFocusAreas           []string  `json:"codingFocusAreas" validate:"min=3,max=12,dive,required"`
	SuggestedPracticeQuestions []string  `json:"suggestedPracticeQuestions" validate:"min=3,max=10,dive,required"`
	Plan                       PhasePlan `json:"days30_60_90"`
}

type ResumeFeedback struct {
	OverallAssessment  string   `json:"overallAssessment" validate:"required"`
	Strengths          []string `json:"strengths" validate:"min=2,max=10,dive,required"`
	Gaps               []string `json:"gaps" validate:"min=2,max=10,dive,required"`
	RewriteSuggestions []string `json:"rewriteSuggestions" validate:"min=2,max=12,dive,required"`
	ATSTips            []string `json:"atsTips" validate:"min=2,max=8,dive,required"`
}
