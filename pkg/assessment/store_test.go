package assessment

import (
	"testing"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(uuid.New(), nil, nil)
}

func strPtr(s string) *string { return &s }

func TestUpdateSessionShallowMerge(t *testing.T) {
	s := newTestStore()

	sess := s.UpdateSession(entity.SessionPatch{
		Requirements: strPtr("Profil Vertriebsleiter"),
		AnalysisName: strPtr("Vertriebsleiter"),
	})

	assert.Equal(t, "Profil Vertriebsleiter", sess.Requirements)
	assert.Equal(t, "Vertriebsleiter", sess.AnalysisName)

	// Untouched fields survive the next partial update.
	sess = s.UpdateSession(entity.SessionPatch{
		Interpretation: strPtr("Deutung"),
	})
	assert.Equal(t, "Profil Vertriebsleiter", sess.Requirements)
	assert.Equal(t, "Deutung", sess.Interpretation)
}

func TestUpdateSessionClearsSelectionViaNull(t *testing.T) {
	s := newTestStore()
	rec := s.SaveAnalysis("Vertriebsleiter")
	require.NotNil(t, s.Session().SelectedAnalysisId)
	assert.Equal(t, rec.Id, *s.Session().SelectedAnalysisId)

	sess := s.UpdateSession(entity.SessionPatch{
		SelectedAnalysisId: entity.OptionalUUID{Set: true, Value: nil},
	})
	assert.Nil(t, sess.SelectedAnalysisId)
}

func TestResetSessionPreservesPreferences(t *testing.T) {
	s := newTestStore()
	s.SetHasApiKey(true)
	s.SetSelectedModel("gpt-4o")
	s.UpdateSession(entity.SessionPatch{Requirements: strPtr("etwas")})

	sess := s.ResetSession()

	assert.Empty(t, sess.Requirements)
	assert.True(t, sess.HasApiKey)
	assert.Equal(t, "gpt-4o", sess.SelectedModel)
	assert.Empty(t, sess.RequirementsChat)
	assert.Empty(t, sess.Candidates)
}

func TestStartModuleFreshClearsPreviousData(t *testing.T) {
	s := newTestStore()
	s.UpdateSession(entity.SessionPatch{Requirements: strPtr("alt")})

	sess := s.StartModule(constant.ModuleRequirementsAnalysis, StartOptions{})

	assert.Equal(t, constant.ModuleRequirementsAnalysis, sess.CurrentModule)
	assert.False(t, sess.IsStandardProcess)
	assert.Empty(t, sess.Requirements)
}

func TestStartModuleKeepDataOnlyMovesPointer(t *testing.T) {
	s := newTestStore()
	s.UpdateSession(entity.SessionPatch{Requirements: strPtr("bleibt")})

	sess := s.StartModule(constant.ModuleInterpretation, StartOptions{KeepData: true})

	assert.Equal(t, constant.ModuleInterpretation, sess.CurrentModule)
	assert.Equal(t, "bleibt", sess.Requirements)
}

func TestStartModuleInterpretationSnapshotWinsOverAnalysis(t *testing.T) {
	s := newTestStore()

	s.UpdateSession(entity.SessionPatch{Requirements: strPtr("Anforderungen A")})
	a := s.SaveAnalysis("Analyse A")

	// Build an interpretation pointing at a different analysis snapshot.
	s.UpdateSession(entity.SessionPatch{
		Requirements: strPtr("Anforderungen B"),
		AnalysisName: strPtr("Analyse B"),
	})
	otherId := uuid.New()
	s.UpdateSession(entity.SessionPatch{
		SelectedAnalysisId: entity.OptionalUUID{Set: true, Value: &otherId},
	})
	in := s.SaveInterpretation("Deutung B")

	sess := s.StartModule(constant.ModuleInterpretation, StartOptions{
		AnalysisId:       &a.Id,
		InterpretationId: &in.Id,
	})

	// The interpretation's denormalized copies override the analysis load.
	require.NotNil(t, sess.SelectedAnalysisId)
	assert.Equal(t, otherId, *sess.SelectedAnalysisId)
	assert.Equal(t, "Analyse B", sess.AnalysisName)
	assert.Equal(t, "Anforderungen B", sess.Requirements)
	require.NotNil(t, sess.SelectedInterpretationId)
	assert.Equal(t, in.Id, *sess.SelectedInterpretationId)
}

func TestStartModuleInterviewFallsBackWhereFieldAbsent(t *testing.T) {
	s := newTestStore()

	// Interview saved without any analysis or interpretation context.
	iv := s.SaveInterview("Interview solo", "Leitfaden")

	s.ResetSession()
	s.UpdateSession(entity.SessionPatch{
		Requirements: strPtr("vorhandene Anforderungen"),
		AnalysisName: strPtr("vorhandene Analyse"),
	})

	sess := s.StartModule(constant.ModuleInterview, StartOptions{
		KeepData:    true,
		InterviewId: &iv.Id,
	})

	// Interview carries no snapshots, so existing session values survive.
	assert.Equal(t, "vorhandene Anforderungen", sess.Requirements)
	assert.Equal(t, "vorhandene Analyse", sess.AnalysisName)
	assert.Equal(t, "Leitfaden", sess.InterviewGuide)
	require.NotNil(t, sess.SelectedInterviewId)
	assert.Equal(t, iv.Id, *sess.SelectedInterviewId)
}

func TestSetArtifactRoutesToOwningModule(t *testing.T) {
	s := newTestStore()

	s.SetArtifact(constant.ModuleRequirementsAnalysis, "req")
	s.SetArtifact(constant.ModuleInterpretation, "interp")
	s.SetArtifact(constant.ModuleInterview, "guide")
	s.SetArtifact(constant.ModuleOnboarding, "onb")
	s.SetArtifact("unknown", "nope")

	sess := s.Session()
	assert.Equal(t, "req", sess.Requirements)
	assert.Equal(t, "interp", sess.Interpretation)
	assert.Equal(t, "guide", sess.InterviewGuide)
	assert.Equal(t, "onb", sess.OnboardingGuide)
}

func TestAppendChatMessageIsModuleScoped(t *testing.T) {
	s := newTestStore()

	s.AppendChatMessage(constant.ModuleRequirementsAnalysis, entity.ChatMessage{
		Role: constant.ChatMessageRoleUser, Content: "Hallo",
	})
	s.AppendChatMessage("unknown-module", entity.ChatMessage{
		Role: constant.ChatMessageRoleUser, Content: "verloren",
	})

	assert.Len(t, s.ModuleChat(constant.ModuleRequirementsAnalysis), 1)
	assert.Empty(t, s.ModuleChat(constant.ModuleInterpretation))
}

func TestSessionReturnsDefensiveCopy(t *testing.T) {
	s := newTestStore()
	s.AddCandidate("Anna Muster")

	sess := s.Session()
	sess.Candidates[0].Dimensions[constant.DimensionIchStaerke] = 99

	fresh := s.Session()
	assert.Equal(t, constant.DimensionDefault, fresh.Candidates[0].Dimensions[constant.DimensionIchStaerke])
}
