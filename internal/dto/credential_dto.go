package dto

type SetCredentialRequest struct {
	ApiKey string `json:"apiKey" validate:"required,min=20"`
}

type CredentialStatusResponse struct {
	HasApiKey bool `json:"hasApiKey"`
}
