package dto

type ExportRequest struct {
	PositionTitle   string `json:"positionTitle"`
	Requirements    string `json:"requirements"`
	Interpretation  string `json:"interpretation"`
	InterviewGuide  string `json:"interviewGuide"`
	OnboardingGuide string `json:"onboardingGuide"`
}
