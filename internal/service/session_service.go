package service

import (
	"context"
	"encoding/json"
	"time"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/entity"
	"assessment-assistant-be/internal/pkg/logger"
	"assessment-assistant-be/internal/repository/memory"
	"assessment-assistant-be/internal/repository/unitofwork"
	"assessment-assistant-be/pkg/assessment"

	"github.com/google/uuid"
)

type ISessionService interface {
	// Store returns the live assessment store of a workspace, loading
	// its persisted slots on a cache miss.
	Store(ctx context.Context, workspaceId uuid.UUID) (*assessment.Store, error)

	Get(ctx context.Context, workspaceId uuid.UUID) (*dto.SessionResponse, error)
	Update(ctx context.Context, workspaceId uuid.UUID, patch entity.SessionPatch) (*dto.SessionResponse, error)
	Reset(ctx context.Context, workspaceId uuid.UUID) (*dto.SessionResponse, error)
	StartModule(ctx context.Context, workspaceId uuid.UUID, req *dto.StartModuleRequest) (*dto.SessionResponse, error)
	NextModule(ctx context.Context, workspaceId uuid.UUID) (*dto.NextModuleResponse, error)
	CanAccess(ctx context.Context, workspaceId uuid.UUID, module string) (*dto.CanAccessResponse, error)
	SelectModel(ctx context.Context, workspaceId uuid.UUID, model string) error

	AddCandidate(ctx context.Context, workspaceId uuid.UUID, name string) (*entity.Candidate, error)
	UpdateCandidate(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID, patch entity.CandidatePatch) error
	RemoveCandidate(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error

	ListAnalyses(ctx context.Context, workspaceId uuid.UUID) ([]entity.Analysis, error)
	SaveAnalysis(ctx context.Context, workspaceId uuid.UUID, name string) (*dto.RecordIdResponse, error)
	UpdateAnalysis(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error
	UpdateAnalysisDirect(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID, req *dto.UpdateAnalysisDirectRequest) error
	DeleteAnalysis(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error
	LoadAnalysis(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error)

	ListInterpretations(ctx context.Context, workspaceId uuid.UUID) ([]entity.Interpretation, error)
	SaveInterpretation(ctx context.Context, workspaceId uuid.UUID, name string) (*dto.RecordIdResponse, error)
	UpdateInterpretation(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error
	UpdateInterpretationDirect(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID, req *dto.UpdateInterpretationDirectRequest) error
	DeleteInterpretation(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error
	LoadInterpretation(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error)

	ListInterviews(ctx context.Context, workspaceId uuid.UUID) ([]entity.Interview, error)
	SaveInterview(ctx context.Context, workspaceId uuid.UUID, name, guide string) (*dto.RecordIdResponse, error)
	UpdateInterview(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error
	UpdateInterviewDirect(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID, req *dto.UpdateGuideDirectRequest) error
	DeleteInterview(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error
	LoadInterview(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error)

	ListOnboardings(ctx context.Context, workspaceId uuid.UUID) ([]entity.Onboarding, error)
	SaveOnboarding(ctx context.Context, workspaceId uuid.UUID, name, guide string) (*dto.RecordIdResponse, error)
	UpdateOnboarding(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error
	UpdateOnboardingDirect(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID, req *dto.UpdateGuideDirectRequest) error
	DeleteOnboarding(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error
	LoadOnboarding(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error)
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	storeRepo        *memory.StoreRepository
	persister        assessment.Persister
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	storeRepo *memory.StoreRepository,
	persister assessment.Persister,
	publisherService IPublisherService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		storeRepo:        storeRepo,
		persister:        persister,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *sessionService) Store(ctx context.Context, workspaceId uuid.UUID) (*assessment.Store, error) {
	if store, found := s.storeRepo.Get(workspaceId); found {
		return store, nil
	}

	store := assessment.NewStore(workspaceId, s.persister, s.logger)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	slots, err := uow.SlotRepository().FindAll(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	for slot, payload := range slots {
		store.RestoreSlot(slot, payload)
	}

	s.storeRepo.Save(workspaceId, store)
	return store, nil
}

func (s *sessionService) toResponse(session entity.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		Session:       session,
		HasApiKey:     session.HasApiKey,
		SelectedModel: session.SelectedModel,
	}
}

func (s *sessionService) publishRecordEvent(ctx context.Context, event, kind string, workspaceId, recordId uuid.UUID, name string) {
	msg := dto.RecordEventMessage{
		Event:       event,
		Kind:        kind,
		WorkspaceId: workspaceId,
		RecordId:    recordId,
		Name:        name,
		OccurredAt:  time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("SessionService", "Failed to publish record event", map[string]interface{}{"error": err.Error()})
	}
}

// --- Session ---

func (s *sessionService) Get(ctx context.Context, workspaceId uuid.UUID) (*dto.SessionResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	return s.toResponse(store.Session()), nil
}

func (s *sessionService) Update(ctx context.Context, workspaceId uuid.UUID, patch entity.SessionPatch) (*dto.SessionResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	return s.toResponse(store.UpdateSession(patch)), nil
}

func (s *sessionService) Reset(ctx context.Context, workspaceId uuid.UUID) (*dto.SessionResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	return s.toResponse(store.ResetSession()), nil
}

func (s *sessionService) StartModule(ctx context.Context, workspaceId uuid.UUID, req *dto.StartModuleRequest) (*dto.SessionResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	session := store.StartModule(req.Module, assessment.StartOptions{
		IsStandardProcess: req.IsStandardProcess,
		KeepData:          req.KeepData,
		AnalysisId:        req.AnalysisId,
		InterpretationId:  req.InterpretationId,
		InterviewId:       req.InterviewId,
		OnboardingId:      req.OnboardingId,
	})
	return s.toResponse(session), nil
}

func (s *sessionService) NextModule(ctx context.Context, workspaceId uuid.UUID) (*dto.NextModuleResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	module, ok := store.NextModule()
	return &dto.NextModuleResponse{Module: module, Ok: ok}, nil
}

func (s *sessionService) CanAccess(ctx context.Context, workspaceId uuid.UUID, module string) (*dto.CanAccessResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	return &dto.CanAccessResponse{Module: module, Allowed: store.CanAccessModule(module)}, nil
}

func (s *sessionService) SelectModel(ctx context.Context, workspaceId uuid.UUID, model string) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.SetSelectedModel(model)
	return nil
}

// --- Candidates ---

func (s *sessionService) AddCandidate(ctx context.Context, workspaceId uuid.UUID, name string) (*entity.Candidate, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	candidate := store.AddCandidate(name)
	return &candidate, nil
}

func (s *sessionService) UpdateCandidate(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID, patch entity.CandidatePatch) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.UpdateCandidate(id, patch)
	return nil
}

func (s *sessionService) RemoveCandidate(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.RemoveCandidate(id)
	return nil
}

// --- Analyses ---

func (s *sessionService) ListAnalyses(ctx context.Context, workspaceId uuid.UUID) ([]entity.Analysis, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	return store.Analyses(), nil
}

func (s *sessionService) SaveAnalysis(ctx context.Context, workspaceId uuid.UUID, name string) (*dto.RecordIdResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	record := store.SaveAnalysis(name)
	s.publishRecordEvent(ctx, constant.RecordEventSaved, constant.RecordKindAnalysis, workspaceId, record.Id, record.Name)
	return &dto.RecordIdResponse{Id: record.Id}, nil
}

func (s *sessionService) UpdateAnalysis(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.UpdateAnalysis(id)
	s.publishRecordEvent(ctx, constant.RecordEventUpdated, constant.RecordKindAnalysis, workspaceId, id, "")
	return nil
}

func (s *sessionService) UpdateAnalysisDirect(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID, req *dto.UpdateAnalysisDirectRequest) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.UpdateDirectAnalysis(id, assessment.AnalysisUpdate{
		Name:         req.Name,
		Requirements: req.Requirements,
	})
	s.publishRecordEvent(ctx, constant.RecordEventUpdated, constant.RecordKindAnalysis, workspaceId, id, "")
	return nil
}

func (s *sessionService) DeleteAnalysis(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.DeleteAnalysis(id)
	s.publishRecordEvent(ctx, constant.RecordEventDeleted, constant.RecordKindAnalysis, workspaceId, id, "")
	return nil
}

func (s *sessionService) LoadAnalysis(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	if record := store.LoadAnalysis(id); record == nil {
		return nil, nil
	}
	return s.toResponse(store.Session()), nil
}

// --- Interpretations ---

func (s *sessionService) ListInterpretations(ctx context.Context, workspaceId uuid.UUID) ([]entity.Interpretation, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	return store.Interpretations(), nil
}

func (s *sessionService) SaveInterpretation(ctx context.Context, workspaceId uuid.UUID, name string) (*dto.RecordIdResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	record := store.SaveInterpretation(name)
	s.publishRecordEvent(ctx, constant.RecordEventSaved, constant.RecordKindInterpretation, workspaceId, record.Id, record.Name)
	return &dto.RecordIdResponse{Id: record.Id}, nil
}

func (s *sessionService) UpdateInterpretation(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.UpdateInterpretation(id)
	s.publishRecordEvent(ctx, constant.RecordEventUpdated, constant.RecordKindInterpretation, workspaceId, id, "")
	return nil
}

func (s *sessionService) UpdateInterpretationDirect(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID, req *dto.UpdateInterpretationDirectRequest) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.UpdateDirectInterpretation(id, assessment.InterpretationUpdate{
		Name:           req.Name,
		Interpretation: req.Interpretation,
	})
	s.publishRecordEvent(ctx, constant.RecordEventUpdated, constant.RecordKindInterpretation, workspaceId, id, "")
	return nil
}

func (s *sessionService) DeleteInterpretation(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.DeleteInterpretation(id)
	s.publishRecordEvent(ctx, constant.RecordEventDeleted, constant.RecordKindInterpretation, workspaceId, id, "")
	return nil
}

func (s *sessionService) LoadInterpretation(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	if record := store.LoadInterpretation(id); record == nil {
		return nil, nil
	}
	return s.toResponse(store.Session()), nil
}

// --- Interviews ---

func (s *sessionService) ListInterviews(ctx context.Context, workspaceId uuid.UUID) ([]entity.Interview, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	return store.Interviews(), nil
}

func (s *sessionService) SaveInterview(ctx context.Context, workspaceId uuid.UUID, name, guide string) (*dto.RecordIdResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	record := store.SaveInterview(name, guide)
	s.publishRecordEvent(ctx, constant.RecordEventSaved, constant.RecordKindInterview, workspaceId, record.Id, record.Name)
	return &dto.RecordIdResponse{Id: record.Id}, nil
}

func (s *sessionService) UpdateInterview(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.UpdateInterview(id)
	s.publishRecordEvent(ctx, constant.RecordEventUpdated, constant.RecordKindInterview, workspaceId, id, "")
	return nil
}

func (s *sessionService) UpdateInterviewDirect(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID, req *dto.UpdateGuideDirectRequest) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.UpdateDirectInterview(id, assessment.GuideUpdate{
		Name:  req.Name,
		Guide: req.Guide,
	})
	s.publishRecordEvent(ctx, constant.RecordEventUpdated, constant.RecordKindInterview, workspaceId, id, "")
	return nil
}

func (s *sessionService) DeleteInterview(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.DeleteInterview(id)
	s.publishRecordEvent(ctx, constant.RecordEventDeleted, constant.RecordKindInterview, workspaceId, id, "")
	return nil
}

func (s *sessionService) LoadInterview(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	if record := store.LoadInterview(id); record == nil {
		return nil, nil
	}
	return s.toResponse(store.Session()), nil
}

// --- Onboardings ---

func (s *sessionService) ListOnboardings(ctx context.Context, workspaceId uuid.UUID) ([]entity.Onboarding, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	return store.Onboardings(), nil
}

func (s *sessionService) SaveOnboarding(ctx context.Context, workspaceId uuid.UUID, name, guide string) (*dto.RecordIdResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	record := store.SaveOnboarding(name, guide)
	s.publishRecordEvent(ctx, constant.RecordEventSaved, constant.RecordKindOnboarding, workspaceId, record.Id, record.Name)
	return &dto.RecordIdResponse{Id: record.Id}, nil
}

func (s *sessionService) UpdateOnboarding(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.UpdateOnboarding(id)
	s.publishRecordEvent(ctx, constant.RecordEventUpdated, constant.RecordKindOnboarding, workspaceId, id, "")
	return nil
}

func (s *sessionService) UpdateOnboardingDirect(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID, req *dto.UpdateGuideDirectRequest) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.UpdateDirectOnboarding(id, assessment.GuideUpdate{
		Name:  req.Name,
		Guide: req.Guide,
	})
	s.publishRecordEvent(ctx, constant.RecordEventUpdated, constant.RecordKindOnboarding, workspaceId, id, "")
	return nil
}

func (s *sessionService) DeleteOnboarding(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) error {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.DeleteOnboarding(id)
	s.publishRecordEvent(ctx, constant.RecordEventDeleted, constant.RecordKindOnboarding, workspaceId, id, "")
	return nil
}

func (s *sessionService) LoadOnboarding(ctx context.Context, workspaceId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error) {
	store, err := s.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	if record := store.LoadOnboarding(id); record == nil {
		return nil, nil
	}
	return s.toResponse(store.Session()), nil
}
