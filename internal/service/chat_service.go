package service

import (
	"context"
	"sync"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/entity"
	"assessment-assistant-be/internal/pkg/logger"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/internal/websocket"
	"assessment-assistant-be/pkg/llm"

	"github.com/google/uuid"
)

// gatewayErrorReply is appended as a regular assistant turn when the
// model call fails, so the conversation stays consistent client-side.
const gatewayErrorReply = "Entschuldigung, bei der Verarbeitung Ihrer Anfrage ist ein Fehler aufgetreten. Bitte versuchen Sie es erneut."

type IChatService interface {
	Send(ctx context.Context, workspaceId uuid.UUID, module string, req *dto.SendChatRequest, apiKey string) (*dto.SendChatResponse, error)
	SendStream(ctx context.Context, workspaceId uuid.UUID, module string, req *dto.SendChatRequest, apiKey string) (*dto.SendChatResponse, error)
	Finalize(ctx context.Context, workspaceId uuid.UUID, module, text string) (*dto.SessionResponse, error)
	History(ctx context.Context, workspaceId uuid.UUID, module string) ([]entity.ChatMessage, error)
}

type chatService struct {
	sessionService ISessionService
	provider       llm.LLMProvider
	hub            *websocket.Hub
	logger         logger.ILogger

	// one in-flight model call per workspace and module
	busyMu sync.Mutex
	busy   map[string]bool
}

func NewChatService(
	sessionService ISessionService,
	provider llm.LLMProvider,
	hub *websocket.Hub,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionService: sessionService,
		provider:       provider,
		hub:            hub,
		logger:         log,
		busy:           make(map[string]bool),
	}
}

func moduleSystemPrompt(module string) (string, bool) {
	switch module {
	case constant.ModuleRequirementsAnalysis:
		return constant.RequirementsSystemPromptV1, true
	case constant.ModuleInterpretation:
		return constant.InterpretationSystemPromptV1, true
	case constant.ModuleInterview:
		return constant.InterviewSystemPromptV1, true
	case constant.ModuleOnboarding:
		return constant.OnboardingSystemPromptV1, true
	default:
		return "", false
	}
}

func (s *chatService) acquire(workspaceId uuid.UUID, module string) bool {
	key := workspaceId.String() + ":" + module
	s.busyMu.Lock()
	defer s.busyMu.Unlock()
	if s.busy[key] {
		return false
	}
	s.busy[key] = true
	return true
}

func (s *chatService) release(workspaceId uuid.UUID, module string) {
	key := workspaceId.String() + ":" + module
	s.busyMu.Lock()
	delete(s.busy, key)
	s.busyMu.Unlock()
}

func (s *chatService) Send(ctx context.Context, workspaceId uuid.UUID, module string, req *dto.SendChatRequest, apiKey string) (*dto.SendChatResponse, error) {
	return s.send(ctx, workspaceId, module, req, apiKey, nil)
}

// SendStream works like Send but pushes each content delta to the
// workspace's websocket connections as it arrives.
func (s *chatService) SendStream(ctx context.Context, workspaceId uuid.UUID, module string, req *dto.SendChatRequest, apiKey string) (*dto.SendChatResponse, error) {
	onDelta := func(delta string) {
		if s.hub != nil {
			s.hub.Send(workspaceId, "chat_delta", map[string]interface{}{
				"module": module,
				"delta":  delta,
			})
		}
	}
	return s.send(ctx, workspaceId, module, req, apiKey, onDelta)
}

func (s *chatService) send(ctx context.Context, workspaceId uuid.UUID, module string, req *dto.SendChatRequest, apiKey string, onDelta func(string)) (*dto.SendChatResponse, error) {
	systemPrompt, known := moduleSystemPrompt(module)
	if !known {
		return nil, serverutils.NewValidationError("unknown module: " + module)
	}

	if !s.acquire(workspaceId, module) {
		return nil, serverutils.NewConflictError("a request for this module is already in progress")
	}
	defer s.release(workspaceId, module)

	store, err := s.sessionService.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}

	store.AppendChatMessage(module, entity.ChatMessage{
		Role:    constant.ChatMessageRoleUser,
		Content: req.Message,
	})

	history := []llm.Message{{Role: constant.ChatMessageRoleSystem, Content: systemPrompt}}
	for _, msg := range store.ModuleChat(module) {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	opts := []llm.Option{llm.WithAPIKey(apiKey)}
	if model := store.Session().SelectedModel; model != "" {
		opts = append(opts, llm.WithModel(model))
	}

	var answer string
	if onDelta != nil {
		answer, err = s.provider.ChatStream(ctx, history, onDelta, opts...)
	} else {
		answer, err = s.provider.Chat(ctx, history, opts...)
	}
	if err != nil {
		// The failure becomes a visible assistant turn; the request
		// itself still succeeds.
		s.logger.Error("ChatService", "Model call failed", map[string]interface{}{
			"module": module,
			"error":  err.Error(),
		})
		answer = gatewayErrorReply
	}

	reply := entity.ChatMessage{
		Role:    constant.ChatMessageRoleAssistant,
		Content: answer,
	}
	store.AppendChatMessage(module, reply)

	return &dto.SendChatResponse{
		Reply:   reply,
		History: store.ModuleChat(module),
	}, nil
}

// Finalize writes a module's result text into the session.
func (s *chatService) Finalize(ctx context.Context, workspaceId uuid.UUID, module, text string) (*dto.SessionResponse, error) {
	store, err := s.sessionService.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	store.SetArtifact(module, text)
	session := store.Session()
	return &dto.SessionResponse{
		Session:       session,
		HasApiKey:     session.HasApiKey,
		SelectedModel: session.SelectedModel,
	}, nil
}

func (s *chatService) History(ctx context.Context, workspaceId uuid.UUID, module string) ([]entity.ChatMessage, error) {
	store, err := s.sessionService.Store(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	return store.ModuleChat(module), nil
}
