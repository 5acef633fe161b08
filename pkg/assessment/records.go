package assessment

import (
	"time"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/entity"

	"github.com/google/uuid"
)

// Record CRUD. One pattern, four kinds:
//   SaveX         fresh record from the live session, prepended (newest first)
//   UpdateX       session -> record; silent skip when the id is unknown
//   UpdateDirectX caller-supplied partial update, mirrored into the live
//                 session only when that record is currently selected
//   DeleteX       removal with cascades; clears dependent session fields
//                 when the selected record dies
//   LoadX         record -> session; nil result leaves the session untouched

// AnalysisUpdate is a partial direct update of a saved analysis.
type AnalysisUpdate struct {
	Name         *string `json:"name,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
}

// InterpretationUpdate is a partial direct update of a saved interpretation.
type InterpretationUpdate struct {
	Name           *string `json:"name,omitempty"`
	Interpretation *string `json:"interpretation,omitempty"`
}

// GuideUpdate is a partial direct update of a saved interview or onboarding.
type GuideUpdate struct {
	Name  *string `json:"name,omitempty"`
	Guide *string `json:"guide,omitempty"`
}

// --- Analysis ---

func (s *Store) Analyses() []entity.Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Analysis, len(s.analyses))
	for i, a := range s.analyses {
		out[i] = *a
		out[i].Chat = cloneMessages(a.Chat)
	}
	return out
}

func (s *Store) SaveAnalysis(name string) entity.Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec := &entity.Analysis{
		Id:           uuid.New(),
		Name:         name,
		Requirements: s.session.Requirements,
		Chat:         cloneMessages(s.session.RequirementsChat),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.analyses = append([]*entity.Analysis{rec}, s.analyses...)

	id := rec.Id
	s.session.SelectedAnalysisId = &id
	s.session.AnalysisName = name

	s.persistSlot(constant.SlotAnalyses, s.analyses)
	s.persistSession()
	return *rec
}

func (s *Store) UpdateAnalysis(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findAnalysis(id)
	if rec == nil {
		s.debug("update analysis skipped, id not found", id)
		return
	}
	rec.Requirements = s.session.Requirements
	rec.Chat = cloneMessages(s.session.RequirementsChat)
	rec.UpdatedAt = time.Now()
	s.persistSlot(constant.SlotAnalyses, s.analyses)
}

func (s *Store) UpdateDirectAnalysis(id uuid.UUID, updates AnalysisUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findAnalysis(id)
	if rec == nil {
		s.debug("direct update analysis skipped, id not found", id)
		return
	}
	if updates.Name != nil {
		rec.Name = *updates.Name
	}
	if updates.Requirements != nil {
		rec.Requirements = *updates.Requirements
	}
	rec.UpdatedAt = time.Now()

	if s.session.SelectedAnalysisId != nil && *s.session.SelectedAnalysisId == id {
		if updates.Name != nil {
			s.session.AnalysisName = *updates.Name
		}
		if updates.Requirements != nil {
			s.session.Requirements = *updates.Requirements
		}
		s.persistSession()
	}
	s.persistSlot(constant.SlotAnalyses, s.analyses)
}

func (s *Store) DeleteAnalysis(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.analyses[:0]
	found := false
	for _, a := range s.analyses {
		if a.Id == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		s.debug("delete analysis skipped, id not found", id)
		return
	}
	s.analyses = kept

	// Cascade to dependents referencing this analysis.
	keptIn := s.interpretations[:0]
	for _, in := range s.interpretations {
		if in.AnalysisId != nil && *in.AnalysisId == id {
			s.clearInterpretationSelection(in.Id)
			continue
		}
		keptIn = append(keptIn, in)
	}
	s.interpretations = keptIn

	keptIv := s.interviews[:0]
	for _, iv := range s.interviews {
		if iv.AnalysisId != nil && *iv.AnalysisId == id {
			s.clearInterviewSelection(iv.Id)
			continue
		}
		keptIv = append(keptIv, iv)
	}
	s.interviews = keptIv

	if s.session.SelectedAnalysisId != nil && *s.session.SelectedAnalysisId == id {
		s.session.SelectedAnalysisId = nil
		s.session.AnalysisName = ""
		s.session.Requirements = ""
		s.session.RequirementsChat = []entity.ChatMessage{}
	}

	s.persistSlot(constant.SlotAnalyses, s.analyses)
	s.persistSlot(constant.SlotInterpretations, s.interpretations)
	s.persistSlot(constant.SlotInterviews, s.interviews)
	s.persistSession()
}

func (s *Store) LoadAnalysis(id uuid.UUID) *entity.Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findAnalysis(id)
	if rec == nil {
		return nil
	}
	s.applyAnalysis(rec)
	s.persistSession()
	out := *rec
	out.Chat = cloneMessages(rec.Chat)
	return &out
}

// --- Interpretation ---

func (s *Store) Interpretations() []entity.Interpretation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Interpretation, len(s.interpretations))
	for i, in := range s.interpretations {
		out[i] = *in
		out[i].Chat = cloneMessages(in.Chat)
		out[i].Candidates = cloneCandidates(in.Candidates)
	}
	return out
}

func (s *Store) SaveInterpretation(name string) entity.Interpretation {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec := &entity.Interpretation{
		Id:             uuid.New(),
		Name:           name,
		AnalysisId:     copyId(s.session.SelectedAnalysisId),
		AnalysisName:   s.session.AnalysisName,
		Requirements:   s.session.Requirements,
		Candidates:     cloneCandidates(s.session.Candidates),
		Interpretation: s.session.Interpretation,
		Chat:           cloneMessages(s.session.InterpretationChat),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.interpretations = append([]*entity.Interpretation{rec}, s.interpretations...)

	id := rec.Id
	s.session.SelectedInterpretationId = &id

	s.persistSlot(constant.SlotInterpretations, s.interpretations)
	s.persistSession()
	return *rec
}

func (s *Store) UpdateInterpretation(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findInterpretation(id)
	if rec == nil {
		s.debug("update interpretation skipped, id not found", id)
		return
	}
	rec.Interpretation = s.session.Interpretation
	rec.Candidates = cloneCandidates(s.session.Candidates)
	rec.Chat = cloneMessages(s.session.InterpretationChat)
	rec.UpdatedAt = time.Now()
	s.persistSlot(constant.SlotInterpretations, s.interpretations)
}

func (s *Store) UpdateDirectInterpretation(id uuid.UUID, updates InterpretationUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findInterpretation(id)
	if rec == nil {
		s.debug("direct update interpretation skipped, id not found", id)
		return
	}
	if updates.Name != nil {
		rec.Name = *updates.Name
	}
	if updates.Interpretation != nil {
		rec.Interpretation = *updates.Interpretation
	}
	rec.UpdatedAt = time.Now()

	if s.session.SelectedInterpretationId != nil && *s.session.SelectedInterpretationId == id {
		if updates.Interpretation != nil {
			s.session.Interpretation = *updates.Interpretation
		}
		s.persistSession()
	}
	s.persistSlot(constant.SlotInterpretations, s.interpretations)
}

func (s *Store) DeleteInterpretation(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.interpretations[:0]
	found := false
	for _, in := range s.interpretations {
		if in.Id == id {
			found = true
			continue
		}
		kept = append(kept, in)
	}
	if !found {
		s.debug("delete interpretation skipped, id not found", id)
		return
	}
	s.interpretations = kept

	// Cascade to interviews referencing this interpretation. Onboardings
	// deliberately survive the loss of their sources.
	keptIv := s.interviews[:0]
	for _, iv := range s.interviews {
		if iv.InterpretationId != nil && *iv.InterpretationId == id {
			s.clearInterviewSelection(iv.Id)
			continue
		}
		keptIv = append(keptIv, iv)
	}
	s.interviews = keptIv

	s.clearInterpretationSelection(id)

	s.persistSlot(constant.SlotInterpretations, s.interpretations)
	s.persistSlot(constant.SlotInterviews, s.interviews)
	s.persistSession()
}

func (s *Store) LoadInterpretation(id uuid.UUID) *entity.Interpretation {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findInterpretation(id)
	if rec == nil {
		return nil
	}
	s.applyInterpretation(rec)
	s.persistSession()
	out := *rec
	out.Chat = cloneMessages(rec.Chat)
	out.Candidates = cloneCandidates(rec.Candidates)
	return &out
}

// --- Interview ---

func (s *Store) Interviews() []entity.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Interview, len(s.interviews))
	for i, iv := range s.interviews {
		out[i] = *iv
		out[i].Chat = cloneMessages(iv.Chat)
		out[i].Candidates = cloneCandidates(iv.Candidates)
	}
	return out
}

// SaveInterview snapshots the session into a new interview record. A
// non-empty guide replaces the session's working guide first, so record
// and screen stay consistent. The interpretation link is optional.
func (s *Store) SaveInterview(name, guide string) entity.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()

	if guide != "" {
		s.session.InterviewGuide = guide
	}

	now := time.Now()
	rec := &entity.Interview{
		Id:               uuid.New(),
		Name:             name,
		AnalysisId:       copyId(s.session.SelectedAnalysisId),
		AnalysisName:     s.session.AnalysisName,
		Requirements:     s.session.Requirements,
		InterpretationId: copyId(s.session.SelectedInterpretationId),
		Interpretation:   s.session.Interpretation,
		Candidates:       cloneCandidates(s.session.Candidates),
		Guide:            s.session.InterviewGuide,
		Chat:             cloneMessages(s.session.InterviewChat),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.interviews = append([]*entity.Interview{rec}, s.interviews...)

	id := rec.Id
	s.session.SelectedInterviewId = &id

	s.persistSlot(constant.SlotInterviews, s.interviews)
	s.persistSession()
	return *rec
}

func (s *Store) UpdateInterview(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findInterview(id)
	if rec == nil {
		s.debug("update interview skipped, id not found", id)
		return
	}
	rec.Guide = s.session.InterviewGuide
	rec.Candidates = cloneCandidates(s.session.Candidates)
	rec.Chat = cloneMessages(s.session.InterviewChat)
	rec.UpdatedAt = time.Now()
	s.persistSlot(constant.SlotInterviews, s.interviews)
}

func (s *Store) UpdateDirectInterview(id uuid.UUID, updates GuideUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findInterview(id)
	if rec == nil {
		s.debug("direct update interview skipped, id not found", id)
		return
	}
	if updates.Name != nil {
		rec.Name = *updates.Name
	}
	if updates.Guide != nil {
		rec.Guide = *updates.Guide
	}
	rec.UpdatedAt = time.Now()

	if s.session.SelectedInterviewId != nil && *s.session.SelectedInterviewId == id {
		if updates.Guide != nil {
			s.session.InterviewGuide = *updates.Guide
		}
		s.persistSession()
	}
	s.persistSlot(constant.SlotInterviews, s.interviews)
}

func (s *Store) DeleteInterview(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.interviews[:0]
	found := false
	for _, iv := range s.interviews {
		if iv.Id == id {
			found = true
			continue
		}
		kept = append(kept, iv)
	}
	if !found {
		s.debug("delete interview skipped, id not found", id)
		return
	}
	s.interviews = kept

	s.clearInterviewSelection(id)

	s.persistSlot(constant.SlotInterviews, s.interviews)
	s.persistSession()
}

func (s *Store) LoadInterview(id uuid.UUID) *entity.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findInterview(id)
	if rec == nil {
		return nil
	}
	s.applyInterview(rec)
	s.persistSession()
	out := *rec
	out.Chat = cloneMessages(rec.Chat)
	out.Candidates = cloneCandidates(rec.Candidates)
	return &out
}

// --- Onboarding ---

func (s *Store) Onboardings() []entity.Onboarding {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Onboarding, len(s.onboardings))
	for i, ob := range s.onboardings {
		out[i] = *ob
		out[i].Chat = cloneMessages(ob.Chat)
		out[i].Candidates = cloneCandidates(ob.Candidates)
	}
	return out
}

func (s *Store) SaveOnboarding(name, guide string) entity.Onboarding {
	s.mu.Lock()
	defer s.mu.Unlock()

	if guide != "" {
		s.session.OnboardingGuide = guide
	}

	now := time.Now()
	rec := &entity.Onboarding{
		Id:               uuid.New(),
		Name:             name,
		AnalysisId:       copyId(s.session.SelectedAnalysisId),
		AnalysisName:     s.session.AnalysisName,
		Requirements:     s.session.Requirements,
		InterpretationId: copyId(s.session.SelectedInterpretationId),
		Interpretation:   s.session.Interpretation,
		InterviewId:      copyId(s.session.SelectedInterviewId),
		InterviewGuide:   s.session.InterviewGuide,
		Candidates:       cloneCandidates(s.session.Candidates),
		Guide:            s.session.OnboardingGuide,
		Chat:             cloneMessages(s.session.OnboardingChat),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.onboardings = append([]*entity.Onboarding{rec}, s.onboardings...)

	id := rec.Id
	s.session.SelectedOnboardingId = &id

	s.persistSlot(constant.SlotOnboardings, s.onboardings)
	s.persistSession()
	return *rec
}

func (s *Store) UpdateOnboarding(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findOnboarding(id)
	if rec == nil {
		s.debug("update onboarding skipped, id not found", id)
		return
	}
	rec.Guide = s.session.OnboardingGuide
	rec.Candidates = cloneCandidates(s.session.Candidates)
	rec.Chat = cloneMessages(s.session.OnboardingChat)
	rec.UpdatedAt = time.Now()
	s.persistSlot(constant.SlotOnboardings, s.onboardings)
}

func (s *Store) UpdateDirectOnboarding(id uuid.UUID, updates GuideUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findOnboarding(id)
	if rec == nil {
		s.debug("direct update onboarding skipped, id not found", id)
		return
	}
	if updates.Name != nil {
		rec.Name = *updates.Name
	}
	if updates.Guide != nil {
		rec.Guide = *updates.Guide
	}
	rec.UpdatedAt = time.Now()

	if s.session.SelectedOnboardingId != nil && *s.session.SelectedOnboardingId == id {
		if updates.Guide != nil {
			s.session.OnboardingGuide = *updates.Guide
		}
		s.persistSession()
	}
	s.persistSlot(constant.SlotOnboardings, s.onboardings)
}

func (s *Store) DeleteOnboarding(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.onboardings[:0]
	found := false
	for _, ob := range s.onboardings {
		if ob.Id == id {
			found = true
			continue
		}
		kept = append(kept, ob)
	}
	if !found {
		s.debug("delete onboarding skipped, id not found", id)
		return
	}
	s.onboardings = kept

	if s.session.SelectedOnboardingId != nil && *s.session.SelectedOnboardingId == id {
		s.session.SelectedOnboardingId = nil
		s.session.OnboardingGuide = ""
		s.session.OnboardingChat = []entity.ChatMessage{}
	}

	s.persistSlot(constant.SlotOnboardings, s.onboardings)
	s.persistSession()
}

func (s *Store) LoadOnboarding(id uuid.UUID) *entity.Onboarding {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findOnboarding(id)
	if rec == nil {
		return nil
	}
	s.applyOnboarding(rec)
	s.persistSession()
	out := *rec
	out.Chat = cloneMessages(rec.Chat)
	out.Candidates = cloneCandidates(rec.Candidates)
	return &out
}

// --- selection cleanup ---

func (s *Store) clearInterpretationSelection(id uuid.UUID) {
	if s.session.SelectedInterpretationId != nil && *s.session.SelectedInterpretationId == id {
		s.session.SelectedInterpretationId = nil
		s.session.Interpretation = ""
		s.session.InterpretationChat = []entity.ChatMessage{}
	}
}

func (s *Store) clearInterviewSelection(id uuid.UUID) {
	if s.session.SelectedInterviewId != nil && *s.session.SelectedInterviewId == id {
		s.session.SelectedInterviewId = nil
		s.session.InterviewGuide = ""
		s.session.InterviewChat = []entity.ChatMessage{}
	}
}

func (s *Store) debug(msg string, id uuid.UUID) {
	if s.logger == nil {
		return
	}
	s.logger.Debug("SessionStore", msg, map[string]interface{}{"id": id.String()})
}
