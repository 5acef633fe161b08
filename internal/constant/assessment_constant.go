package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
)

// Pipeline modules in standard-process order. Onboarding is an optional
// stage that can be inserted between interview and export.
const (
	ModuleRequirementsAnalysis = "requirements-analysis"
	ModuleInterpretation       = "interpretation"
	ModuleInterview            = "interview"
	ModuleOnboarding           = "onboarding"
	ModuleExport               = "export"
)

// StandardModuleOrder is the fixed sequence a standard-process session
// advances through via NextModule.
var StandardModuleOrder = []string{
	ModuleRequirementsAnalysis,
	ModuleInterpretation,
	ModuleInterview,
	ModuleExport,
}

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Persistence slot names. Each slot is an independently stored JSON payload.
const (
	SlotAnalyses        = "analyses"
	SlotInterpretations = "interpretations"
	SlotInterviews      = "interviews"
	SlotOnboardings     = "onboardings"
	SlotSession         = "session"
	SlotModelPref       = "model_pref"
)

const (
	CredentialCookieName   = "assistant_api_key"
	CredentialCookieMaxAge = 7 * 24 * 60 * 60 // seconds
)

const (
	RecordEventTopic = "RECORD_LIFECYCLE"

	RecordEventSaved   = "RECORD_SAVED"
	RecordEventUpdated = "RECORD_UPDATED"
	RecordEventDeleted = "RECORD_DELETED"

	RecordKindAnalysis       = "analysis"
	RecordKindInterpretation = "interpretation"
	RecordKindInterview      = "interview"
	RecordKindOnboarding     = "onboarding"
)
