package assessment

import (
	"testing"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadAnalysisRoundTrip(t *testing.T) {
	s := newTestStore()

	s.UpdateSession(entity.SessionPatch{Requirements: strPtr("Anforderungsprofil Vertrieb")})
	s.AppendChatMessage(constant.ModuleRequirementsAnalysis, entity.ChatMessage{
		Role: constant.ChatMessageRoleUser, Content: "Welche Rolle?",
	})
	s.AppendChatMessage(constant.ModuleRequirementsAnalysis, entity.ChatMessage{
		Role: constant.ChatMessageRoleAssistant, Content: "Vertriebsleitung.",
	})

	rec := s.SaveAnalysis("Vertriebsleiter")
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)

	s.ResetSession()
	loaded := s.LoadAnalysis(rec.Id)
	require.NotNil(t, loaded)

	sess := s.Session()
	assert.Equal(t, "Vertriebsleiter", sess.AnalysisName)
	assert.Equal(t, "Anforderungsprofil Vertrieb", sess.Requirements)
	require.Len(t, sess.RequirementsChat, 2)
	assert.Equal(t, "Welche Rolle?", sess.RequirementsChat[0].Content)
	require.NotNil(t, sess.SelectedAnalysisId)
	assert.Equal(t, rec.Id, *sess.SelectedAnalysisId)
}

func TestSaveAnalysisPrependsNewestFirst(t *testing.T) {
	s := newTestStore()
	first := s.SaveAnalysis("Erste")
	second := s.SaveAnalysis("Zweite")

	list := s.Analyses()
	require.Len(t, list, 2)
	assert.Equal(t, second.Id, list[0].Id)
	assert.Equal(t, first.Id, list[1].Id)
}

func TestLoadUnknownAnalysisLeavesSessionUntouched(t *testing.T) {
	s := newTestStore()
	s.UpdateSession(entity.SessionPatch{Requirements: strPtr("bleibt")})

	assert.Nil(t, s.LoadAnalysis(uuid.New()))
	assert.Equal(t, "bleibt", s.Session().Requirements)
}

func TestUpdateAnalysisUnknownIdIsSilentNoop(t *testing.T) {
	s := newTestStore()
	s.SaveAnalysis("Eine")

	s.UpdateAnalysis(uuid.New())

	assert.Len(t, s.Analyses(), 1)
}

func TestUpdateAnalysisPullsFromSession(t *testing.T) {
	s := newTestStore()
	rec := s.SaveAnalysis("Eine")

	s.UpdateSession(entity.SessionPatch{Requirements: strPtr("neu")})
	s.UpdateAnalysis(rec.Id)

	list := s.Analyses()
	assert.Equal(t, "neu", list[0].Requirements)
	assert.True(t, list[0].UpdatedAt.After(rec.UpdatedAt) || list[0].UpdatedAt.Equal(rec.UpdatedAt))
}

func TestUpdateDirectAnalysisMirrorsIntoSelectedSession(t *testing.T) {
	s := newTestStore()
	rec := s.SaveAnalysis("Alter Name")

	s.UpdateDirectAnalysis(rec.Id, AnalysisUpdate{Name: strPtr("Neuer Name")})

	assert.Equal(t, "Neuer Name", s.Analyses()[0].Name)
	assert.Equal(t, "Neuer Name", s.Session().AnalysisName)
}

func TestUpdateDirectAnalysisDoesNotMirrorWhenNotSelected(t *testing.T) {
	s := newTestStore()
	rec := s.SaveAnalysis("Alter Name")
	s.ResetSession()

	s.UpdateDirectAnalysis(rec.Id, AnalysisUpdate{Name: strPtr("Neuer Name")})

	assert.Equal(t, "Neuer Name", s.Analyses()[0].Name)
	assert.Empty(t, s.Session().AnalysisName)
}

func TestDeleteAnalysisCascades(t *testing.T) {
	s := newTestStore()
	a := s.SaveAnalysis("Vertriebsleiter")

	// Two interpretations and one interview depend on the analysis.
	s.SaveInterpretation("Deutung 1")
	s.SaveInterpretation("Deutung 2")
	s.SaveInterview("Interview 1", "Leitfaden")

	// An unrelated interview must survive.
	s.ResetSession()
	solo := s.SaveInterview("Solo", "ohne Analyse")

	s.DeleteAnalysis(a.Id)

	assert.Empty(t, s.Analyses())
	assert.Empty(t, s.Interpretations())
	require.Len(t, s.Interviews(), 1)
	assert.Equal(t, solo.Id, s.Interviews()[0].Id)
}

func TestDeleteSelectedAnalysisClearsSessionFields(t *testing.T) {
	s := newTestStore()
	s.UpdateSession(entity.SessionPatch{Requirements: strPtr("Anforderungen")})
	s.AppendChatMessage(constant.ModuleRequirementsAnalysis, entity.ChatMessage{
		Role: constant.ChatMessageRoleUser, Content: "Frage",
	})
	a := s.SaveAnalysis("Vertriebsleiter")

	s.DeleteAnalysis(a.Id)

	sess := s.Session()
	assert.Nil(t, sess.SelectedAnalysisId)
	assert.Empty(t, sess.AnalysisName)
	assert.Empty(t, sess.Requirements)
	assert.Empty(t, sess.RequirementsChat)
}

func TestDeleteInterpretationCascadesToInterviewsOnly(t *testing.T) {
	s := newTestStore()
	a := s.SaveAnalysis("Analyse")
	in := s.SaveInterpretation("Deutung")
	s.SaveInterview("Abhaengig", "Leitfaden")
	s.SaveOnboarding("Onboarding bleibt", "Plan")

	s.DeleteInterpretation(in.Id)

	// Parent analysis untouched, dependent interview gone, onboarding kept.
	require.Len(t, s.Analyses(), 1)
	assert.Equal(t, a.Id, s.Analyses()[0].Id)
	assert.Empty(t, s.Interviews())
	assert.Len(t, s.Onboardings(), 1)
}

func TestSaveInterviewWithoutInterpretationLink(t *testing.T) {
	s := newTestStore()

	rec := s.SaveInterview("Interview A", "guide text")

	assert.Nil(t, rec.InterpretationId)
	assert.Empty(t, rec.Interpretation)
	assert.Equal(t, "guide text", rec.Guide)
	assert.Equal(t, "guide text", s.Session().InterviewGuide)
	require.NotNil(t, s.Session().SelectedInterviewId)
	assert.Equal(t, rec.Id, *s.Session().SelectedInterviewId)
}

func TestSaveInterpretationSnapshotsSessionContext(t *testing.T) {
	s := newTestStore()
	s.UpdateSession(entity.SessionPatch{
		Requirements: strPtr("Profil"),
		AnalysisName: strPtr("Analyse X"),
	})
	s.AddCandidate("Anna Muster")
	s.SetArtifact(constant.ModuleInterpretation, "Deutungstext")

	rec := s.SaveInterpretation("Deutung")

	assert.Equal(t, "Profil", rec.Requirements)
	assert.Equal(t, "Analyse X", rec.AnalysisName)
	assert.Equal(t, "Deutungstext", rec.Interpretation)
	require.Len(t, rec.Candidates, 1)

	// Snapshot, not a live reference: later session edits stay out.
	s.AddCandidate("Bernd Beispiel")
	assert.Len(t, s.Interpretations()[0].Candidates, 1)
}

func TestSaveOnboardingCarriesAllSourceSnapshots(t *testing.T) {
	s := newTestStore()
	s.SaveAnalysis("Analyse")
	in := s.SaveInterpretation("Deutung")
	iv := s.SaveInterview("Interview", "Leitfaden")

	rec := s.SaveOnboarding("Onboarding", "100-Tage-Plan")

	require.NotNil(t, rec.InterpretationId)
	assert.Equal(t, in.Id, *rec.InterpretationId)
	require.NotNil(t, rec.InterviewId)
	assert.Equal(t, iv.Id, *rec.InterviewId)
	assert.Equal(t, "Leitfaden", rec.InterviewGuide)
	assert.Equal(t, "100-Tage-Plan", rec.Guide)
}

func TestUpdateDirectInterviewMirrorsGuide(t *testing.T) {
	s := newTestStore()
	rec := s.SaveInterview("Interview", "alt")

	s.UpdateDirectInterview(rec.Id, GuideUpdate{Guide: strPtr("neu")})

	assert.Equal(t, "neu", s.Interviews()[0].Guide)
	assert.Equal(t, "neu", s.Session().InterviewGuide)
}

func TestDeleteSelectedInterviewClearsSessionFields(t *testing.T) {
	s := newTestStore()
	rec := s.SaveInterview("Interview", "Leitfaden")
	s.AppendChatMessage(constant.ModuleInterview, entity.ChatMessage{
		Role: constant.ChatMessageRoleUser, Content: "Frage",
	})

	s.DeleteInterview(rec.Id)

	sess := s.Session()
	assert.Nil(t, sess.SelectedInterviewId)
	assert.Empty(t, sess.InterviewGuide)
	assert.Empty(t, sess.InterviewChat)
	assert.Empty(t, s.Interviews())
}
