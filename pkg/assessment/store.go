package assessment

import (
	"sync"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/entity"
	"assessment-assistant-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// Store is the single source of truth for one workspace's assessment run:
// the live session plus the four saved-record collections. All operations
// are synchronous and non-failing; persistence is a fire-and-forget side
// effect that is logged and swallowed, never surfaced to the caller.
//
// The browser original ran single-threaded; here concurrent handlers can
// reach the same workspace store, so a mutex serializes operations.
type Store struct {
	mu sync.Mutex

	workspaceId uuid.UUID

	session         entity.Session
	analyses        []*entity.Analysis
	interpretations []*entity.Interpretation
	interviews      []*entity.Interview
	onboardings     []*entity.Onboarding

	persister Persister
	persistCh chan persistOp
	logger    logger.ILogger
}

// StartOptions controls how a module is entered. When KeepData is true only
// the module pointer moves; otherwise the session is restarted from the
// empty template before any preload ids are applied.
type StartOptions struct {
	IsStandardProcess bool
	KeepData          bool
	AnalysisId        *uuid.UUID
	InterpretationId  *uuid.UUID
	InterviewId       *uuid.UUID
	OnboardingId      *uuid.UUID
}

func NewStore(workspaceId uuid.UUID, persister Persister, log logger.ILogger) *Store {
	s := &Store{
		workspaceId: workspaceId,
		session:     emptySession(),
		persister:   persister,
		logger:      log,
	}
	if persister != nil {
		s.persistCh = make(chan persistOp, persistQueueSize)
		go s.persistLoop(s.persistCh)
	}
	return s
}

// Close stops the persist worker. Writes issued after Close fall back to
// synchronous best-effort persistence.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.persistCh != nil {
		close(s.persistCh)
		s.persistCh = nil
	}
}

func emptySession() entity.Session {
	return entity.Session{
		RequirementsChat:   []entity.ChatMessage{},
		InterpretationChat: []entity.ChatMessage{},
		InterviewChat:      []entity.ChatMessage{},
		OnboardingChat:     []entity.ChatMessage{},
		Candidates:         []entity.Candidate{},
	}
}

// Session returns a copy of the live session.
func (s *Store) Session() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneSession()
}

// UpdateSession shallow-merges the patch into the live session. No
// semantic validation happens here; the caller owns correctness.
func (s *Store) UpdateSession(patch entity.SessionPatch) entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.CurrentModule != nil {
		s.session.CurrentModule = *patch.CurrentModule
	}
	if patch.IsStandardProcess != nil {
		s.session.IsStandardProcess = *patch.IsStandardProcess
	}
	if patch.SelectedAnalysisId.Set {
		s.session.SelectedAnalysisId = copyId(patch.SelectedAnalysisId.Value)
	}
	if patch.SelectedInterpretationId.Set {
		s.session.SelectedInterpretationId = copyId(patch.SelectedInterpretationId.Value)
	}
	if patch.SelectedInterviewId.Set {
		s.session.SelectedInterviewId = copyId(patch.SelectedInterviewId.Value)
	}
	if patch.SelectedOnboardingId.Set {
		s.session.SelectedOnboardingId = copyId(patch.SelectedOnboardingId.Value)
	}
	if patch.AnalysisName != nil {
		s.session.AnalysisName = *patch.AnalysisName
	}
	if patch.Requirements != nil {
		s.session.Requirements = *patch.Requirements
	}
	if patch.RequirementsChat != nil {
		s.session.RequirementsChat = cloneMessages(*patch.RequirementsChat)
	}
	if patch.InterpretationChat != nil {
		s.session.InterpretationChat = cloneMessages(*patch.InterpretationChat)
	}
	if patch.InterviewChat != nil {
		s.session.InterviewChat = cloneMessages(*patch.InterviewChat)
	}
	if patch.OnboardingChat != nil {
		s.session.OnboardingChat = cloneMessages(*patch.OnboardingChat)
	}
	if patch.Candidates != nil {
		s.session.Candidates = cloneCandidates(*patch.Candidates)
	}
	if patch.Interpretation != nil {
		s.session.Interpretation = *patch.Interpretation
	}
	if patch.InterviewGuide != nil {
		s.session.InterviewGuide = *patch.InterviewGuide
	}
	if patch.OnboardingGuide != nil {
		s.session.OnboardingGuide = *patch.OnboardingGuide
	}

	s.persistSession()
	return s.cloneSession()
}

// ResetSession replaces the session with the empty template. The derived
// credential status and the model selection are cross-session preferences
// and survive the reset; the persisted snapshot is cleared.
func (s *Store) ResetSession() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.deleteSlot(constant.SlotSession)
	return s.cloneSession()
}

func (s *Store) resetLocked() {
	hasKey := s.session.HasApiKey
	model := s.session.SelectedModel
	s.session = emptySession()
	s.session.HasApiKey = hasKey
	s.session.SelectedModel = model
}

// StartModule enters a module, optionally preloading saved records. When
// both an analysis and an interpretation are given, the interpretation's
// denormalized snapshots win; interview and onboarding snapshots override
// only where their own field is present, falling back to whatever the
// session already holds.
func (s *Store) StartModule(module string, opts StartOptions) entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !opts.KeepData {
		s.resetLocked()
	}
	s.session.CurrentModule = module
	s.session.IsStandardProcess = opts.IsStandardProcess

	if opts.AnalysisId != nil {
		s.applyAnalysis(s.findAnalysis(*opts.AnalysisId))
	}
	if opts.InterpretationId != nil {
		s.applyInterpretation(s.findInterpretation(*opts.InterpretationId))
	}
	if opts.InterviewId != nil {
		s.applyInterview(s.findInterview(*opts.InterviewId))
	}
	if opts.OnboardingId != nil {
		s.applyOnboarding(s.findOnboarding(*opts.OnboardingId))
	}

	s.persistSession()
	return s.cloneSession()
}

// SetHasApiKey updates the derived credential status. The flag is never
// part of the persisted snapshot, so nothing is written here.
func (s *Store) SetHasApiKey(has bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.HasApiKey = has
}

// SetSelectedModel stores the model preference in its own slot.
func (s *Store) SetSelectedModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SelectedModel = model
	s.persistSlot(constant.SlotModelPref, modelPref{Model: model})
}

// AppendChatMessage appends one turn to the transcript of the given
// module. Unknown module names are a silent no-op; a late result from an
// abandoned request therefore lands harmlessly in its module's transcript.
func (s *Store) AppendChatMessage(module string, msg entity.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch module {
	case constant.ModuleRequirementsAnalysis:
		s.session.RequirementsChat = append(s.session.RequirementsChat, msg)
	case constant.ModuleInterpretation:
		s.session.InterpretationChat = append(s.session.InterpretationChat, msg)
	case constant.ModuleInterview:
		s.session.InterviewChat = append(s.session.InterviewChat, msg)
	case constant.ModuleOnboarding:
		s.session.OnboardingChat = append(s.session.OnboardingChat, msg)
	default:
		return
	}
	s.persistSession()
}

// ModuleChat returns a copy of the given module's transcript.
func (s *Store) ModuleChat(module string) []entity.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch module {
	case constant.ModuleRequirementsAnalysis:
		return cloneMessages(s.session.RequirementsChat)
	case constant.ModuleInterpretation:
		return cloneMessages(s.session.InterpretationChat)
	case constant.ModuleInterview:
		return cloneMessages(s.session.InterviewChat)
	case constant.ModuleOnboarding:
		return cloneMessages(s.session.OnboardingChat)
	}
	return nil
}

// SetArtifact writes a module's finalized text output into the session
// field the module owns.
func (s *Store) SetArtifact(module, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch module {
	case constant.ModuleRequirementsAnalysis:
		s.session.Requirements = text
	case constant.ModuleInterpretation:
		s.session.Interpretation = text
	case constant.ModuleInterview:
		s.session.InterviewGuide = text
	case constant.ModuleOnboarding:
		s.session.OnboardingGuide = text
	default:
		return
	}
	s.persistSession()
}

// --- record application (shared by StartModule and LoadX) ---

func (s *Store) applyAnalysis(a *entity.Analysis) {
	if a == nil {
		return
	}
	id := a.Id
	s.session.SelectedAnalysisId = &id
	s.session.AnalysisName = a.Name
	s.session.Requirements = a.Requirements
	s.session.RequirementsChat = cloneMessages(a.Chat)
}

func (s *Store) applyInterpretation(in *entity.Interpretation) {
	if in == nil {
		return
	}
	id := in.Id
	s.session.SelectedInterpretationId = &id
	s.session.Interpretation = in.Interpretation
	s.session.InterpretationChat = cloneMessages(in.Chat)
	s.session.Candidates = cloneCandidates(in.Candidates)

	// The interpretation's snapshot of its analysis wins over anything
	// resolved so far, including a separately specified analysis id.
	s.session.SelectedAnalysisId = copyId(in.AnalysisId)
	s.session.AnalysisName = in.AnalysisName
	s.session.Requirements = in.Requirements
}

func (s *Store) applyInterview(iv *entity.Interview) {
	if iv == nil {
		return
	}
	id := iv.Id
	s.session.SelectedInterviewId = &id
	s.session.InterviewGuide = iv.Guide
	s.session.InterviewChat = cloneMessages(iv.Chat)

	// Interview snapshots win where present, otherwise the session keeps
	// what it already resolved.
	if iv.AnalysisId != nil {
		s.session.SelectedAnalysisId = copyId(iv.AnalysisId)
	}
	if iv.AnalysisName != "" {
		s.session.AnalysisName = iv.AnalysisName
	}
	if iv.Requirements != "" {
		s.session.Requirements = iv.Requirements
	}
	if iv.InterpretationId != nil {
		s.session.SelectedInterpretationId = copyId(iv.InterpretationId)
	}
	if iv.Interpretation != "" {
		s.session.Interpretation = iv.Interpretation
	}
	if len(iv.Candidates) > 0 {
		s.session.Candidates = cloneCandidates(iv.Candidates)
	}
}

func (s *Store) applyOnboarding(ob *entity.Onboarding) {
	if ob == nil {
		return
	}
	id := ob.Id
	s.session.SelectedOnboardingId = &id
	s.session.OnboardingGuide = ob.Guide
	s.session.OnboardingChat = cloneMessages(ob.Chat)

	if ob.AnalysisId != nil {
		s.session.SelectedAnalysisId = copyId(ob.AnalysisId)
	}
	if ob.AnalysisName != "" {
		s.session.AnalysisName = ob.AnalysisName
	}
	if ob.Requirements != "" {
		s.session.Requirements = ob.Requirements
	}
	if ob.InterpretationId != nil {
		s.session.SelectedInterpretationId = copyId(ob.InterpretationId)
	}
	if ob.Interpretation != "" {
		s.session.Interpretation = ob.Interpretation
	}
	if ob.InterviewId != nil {
		s.session.SelectedInterviewId = copyId(ob.InterviewId)
	}
	if ob.InterviewGuide != "" {
		s.session.InterviewGuide = ob.InterviewGuide
	}
	if len(ob.Candidates) > 0 {
		s.session.Candidates = cloneCandidates(ob.Candidates)
	}
}

// --- lookups ---

func (s *Store) findAnalysis(id uuid.UUID) *entity.Analysis {
	for _, a := range s.analyses {
		if a.Id == id {
			return a
		}
	}
	return nil
}

func (s *Store) findInterpretation(id uuid.UUID) *entity.Interpretation {
	for _, in := range s.interpretations {
		if in.Id == id {
			return in
		}
	}
	return nil
}

func (s *Store) findInterview(id uuid.UUID) *entity.Interview {
	for _, iv := range s.interviews {
		if iv.Id == id {
			return iv
		}
	}
	return nil
}

func (s *Store) findOnboarding(id uuid.UUID) *entity.Onboarding {
	for _, ob := range s.onboardings {
		if ob.Id == id {
			return ob
		}
	}
	return nil
}

// --- cloning helpers ---

func (s *Store) cloneSession() entity.Session {
	c := s.session
	c.SelectedAnalysisId = copyId(c.SelectedAnalysisId)
	c.SelectedInterpretationId = copyId(c.SelectedInterpretationId)
	c.SelectedInterviewId = copyId(c.SelectedInterviewId)
	c.SelectedOnboardingId = copyId(c.SelectedOnboardingId)
	c.RequirementsChat = cloneMessages(c.RequirementsChat)
	c.InterpretationChat = cloneMessages(c.InterpretationChat)
	c.InterviewChat = cloneMessages(c.InterviewChat)
	c.OnboardingChat = cloneMessages(c.OnboardingChat)
	c.Candidates = cloneCandidates(c.Candidates)
	return c
}

func copyId(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func cloneMessages(msgs []entity.ChatMessage) []entity.ChatMessage {
	out := make([]entity.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

func cloneCandidates(cands []entity.Candidate) []entity.Candidate {
	out := make([]entity.Candidate, len(cands))
	for i, c := range cands {
		dims := make(map[string]int, len(c.Dimensions))
		for k, v := range c.Dimensions {
			dims[k] = v
		}
		c.Dimensions = dims
		out[i] = c
	}
	return out
}
