package assessment

import (
	"testing"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestNextModuleRequiresStandardProcess(t *testing.T) {
	s := newTestStore()
	s.StartModule(constant.ModuleRequirementsAnalysis, StartOptions{})

	next, ok := s.NextModule()

	assert.False(t, ok)
	assert.Empty(t, next)
	assert.Equal(t, constant.ModuleRequirementsAnalysis, s.Session().CurrentModule)
}

func TestNextModuleWalksStandardOrder(t *testing.T) {
	s := newTestStore()
	s.StartModule(constant.ModuleRequirementsAnalysis, StartOptions{IsStandardProcess: true})

	expected := []string{
		constant.ModuleInterpretation,
		constant.ModuleInterview,
		constant.ModuleExport,
	}
	for _, want := range expected {
		next, ok := s.NextModule()
		assert.True(t, ok)
		assert.Equal(t, want, next)
	}

	// At the last stage the null signal comes back and nothing moves.
	next, ok := s.NextModule()
	assert.False(t, ok)
	assert.Empty(t, next)
	assert.Equal(t, constant.ModuleExport, s.Session().CurrentModule)
}

func TestNextModuleFromOnboardingGoesToExport(t *testing.T) {
	s := newTestStore()
	s.StartModule(constant.ModuleOnboarding, StartOptions{IsStandardProcess: true})

	next, ok := s.NextModule()

	assert.True(t, ok)
	assert.Equal(t, constant.ModuleExport, next)
}

func TestCanAccessModuleGates(t *testing.T) {
	s := newTestStore()

	assert.True(t, s.CanAccessModule(constant.ModuleRequirementsAnalysis))
	assert.False(t, s.CanAccessModule(constant.ModuleInterpretation))
	assert.False(t, s.CanAccessModule(constant.ModuleInterview))
	assert.False(t, s.CanAccessModule(constant.ModuleExport))
	assert.False(t, s.CanAccessModule("unbekannt"))

	// Chat length alone opens nothing.
	s.AppendChatMessage(constant.ModuleRequirementsAnalysis, entity.ChatMessage{
		Role: constant.ChatMessageRoleUser, Content: "Hallo",
	})
	assert.False(t, s.CanAccessModule(constant.ModuleInterpretation))

	// Finalized requirements open interpretation and interview.
	s.UpdateSession(entity.SessionPatch{Requirements: strPtr("Profil")})
	assert.True(t, s.CanAccessModule(constant.ModuleInterpretation))
	assert.True(t, s.CanAccessModule(constant.ModuleInterview))
	assert.True(t, s.CanAccessModule(constant.ModuleExport))
}

func TestCanAccessModuleViaSelectedAnalysis(t *testing.T) {
	s := newTestStore()
	s.SaveAnalysis("Vertriebsleiter")
	s.UpdateSession(entity.SessionPatch{Requirements: strPtr("")})

	assert.True(t, s.CanAccessModule(constant.ModuleInterpretation))
}

func TestCanAccessOnboardingNeedsInterpretation(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.CanAccessModule(constant.ModuleOnboarding))

	s.UpdateSession(entity.SessionPatch{Interpretation: strPtr("Deutung")})
	assert.True(t, s.CanAccessModule(constant.ModuleOnboarding))
}

func TestStandardProcessFlagViaPatch(t *testing.T) {
	s := newTestStore()
	s.UpdateSession(entity.SessionPatch{
		CurrentModule:     strPtr(constant.ModuleRequirementsAnalysis),
		IsStandardProcess: boolPtr(true),
	})

	next, ok := s.NextModule()
	assert.True(t, ok)
	assert.Equal(t, constant.ModuleInterpretation, next)
}
