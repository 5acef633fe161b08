package dto

type AddCandidateRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateCandidateRequest struct {
	Name       *string        `json:"name"`
	Dimensions map[string]int `json:"dimensions"`
}
