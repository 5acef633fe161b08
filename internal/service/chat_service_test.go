package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/internal/repository/memory"
	"assessment-assistant-be/pkg/assessment"
	"assessment-assistant-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, msg string, details map[string]interface{}) {}
func (nopLogger) Info(module, msg string, details map[string]interface{})  {}
func (nopLogger) Warn(module, msg string, details map[string]interface{})  {}
func (nopLogger) Error(module, msg string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                              { return nil }

// fakeProvider records what it was asked and returns a scripted answer.
type fakeProvider struct {
	mu        sync.Mutex
	answer    string
	err       error
	block     chan struct{}
	entered   chan struct{} // closed on first Chat entry, for synchronization
	enterOnce sync.Once
	history   []llm.Message
	lastOpts  llm.Options
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if f.entered != nil {
		f.enterOnce.Do(func() { close(f.entered) })
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.history = history
	opts := llm.Options{}
	for _, o := range options {
		o(&opts)
	}
	f.lastOpts = opts
	f.mu.Unlock()
	return f.answer, f.err
}

func (f *fakeProvider) ChatStream(ctx context.Context, history []llm.Message, onDelta func(string), options ...llm.Option) (string, error) {
	answer, err := f.Chat(ctx, history, options...)
	if err == nil && onDelta != nil {
		onDelta(answer)
	}
	return answer, err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func newChatFixture(t *testing.T, provider llm.LLMProvider) (IChatService, uuid.UUID) {
	t.Helper()
	workspaceId := uuid.New()
	storeRepo := memory.NewStoreRepository()
	storeRepo.Save(workspaceId, assessment.NewStore(workspaceId, nil, nil))

	sessionSvc := NewSessionService(nil, storeRepo, nil, nil, nopLogger{})
	chatSvc := NewChatService(sessionSvc, provider, nil, nopLogger{})
	return chatSvc, workspaceId
}

func TestSendAppendsUserAndAssistantTurns(t *testing.T) {
	provider := &fakeProvider{answer: "Welche Rolle soll besetzt werden?"}
	svc, wid := newChatFixture(t, provider)

	resp, err := svc.Send(context.Background(), wid, constant.ModuleRequirementsAnalysis,
		&dto.SendChatRequest{Message: "Wir suchen einen Vertriebsleiter."}, "sk-test")
	require.NoError(t, err)

	require.Len(t, resp.History, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, resp.History[0].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, resp.History[1].Role)
	assert.Equal(t, "Welche Rolle soll besetzt werden?", resp.Reply.Content)
}

func TestSendPrependsSystemPromptAndPassesKey(t *testing.T) {
	provider := &fakeProvider{answer: "ok"}
	svc, wid := newChatFixture(t, provider)

	_, err := svc.Send(context.Background(), wid, constant.ModuleInterview,
		&dto.SendChatRequest{Message: "Leitfaden bitte."}, "sk-secret")
	require.NoError(t, err)

	require.NotEmpty(t, provider.history)
	assert.Equal(t, constant.ChatMessageRoleSystem, provider.history[0].Role)
	assert.Equal(t, constant.InterviewSystemPromptV1, provider.history[0].Content)
	assert.Equal(t, "sk-secret", provider.lastOpts.APIKey)
}

func TestSendGatewayFailureBecomesAssistantTurn(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream down")}
	svc, wid := newChatFixture(t, provider)

	resp, err := svc.Send(context.Background(), wid, constant.ModuleRequirementsAnalysis,
		&dto.SendChatRequest{Message: "Hallo"}, "")
	require.NoError(t, err, "gateway failures do not fail the request")

	require.Len(t, resp.History, 2)
	assert.Equal(t, constant.ChatMessageRoleAssistant, resp.Reply.Role)
	assert.Equal(t, gatewayErrorReply, resp.Reply.Content)
}

func TestSendUnknownModuleRejected(t *testing.T) {
	svc, wid := newChatFixture(t, &fakeProvider{answer: "x"})

	_, err := svc.Send(context.Background(), wid, "daydreaming", &dto.SendChatRequest{Message: "?"}, "")
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestSendRejectsOverlappingRequestsPerModule(t *testing.T) {
	provider := &fakeProvider{answer: "slow", block: make(chan struct{}), entered: make(chan struct{})}
	svc, wid := newChatFixture(t, provider)

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Send(context.Background(), wid, constant.ModuleInterpretation,
			&dto.SendChatRequest{Message: "erste"}, "")
	}()

	// wait until the first call holds the busy flag
	<-provider.entered
	require.Eventually(t, func() bool {
		_, err := svc.Send(context.Background(), wid, constant.ModuleInterpretation,
			&dto.SendChatRequest{Message: "zweite"}, "")
		var appErr *serverutils.AppError
		return errors.As(err, &appErr) && appErr.Status == 409
	}, time.Second, 5*time.Millisecond)

	close(provider.block)
	<-done

	// the flag is released once the call finishes
	_, err := svc.Send(context.Background(), wid, constant.ModuleInterpretation,
		&dto.SendChatRequest{Message: "dritte"}, "")
	require.NoError(t, err)
}

func TestFinalizeWritesArtifact(t *testing.T) {
	svc, wid := newChatFixture(t, &fakeProvider{answer: "x"})

	resp, err := svc.Finalize(context.Background(), wid, constant.ModuleRequirementsAnalysis, "Profil: Vertriebsleiter")
	require.NoError(t, err)
	assert.Equal(t, "Profil: Vertriebsleiter", resp.Session.Requirements)
}

// chunkedProvider streams its answer in fixed chunks.
type chunkedProvider struct {
	fakeProvider
	chunks []string
}

func (f *chunkedProvider) ChatStream(ctx context.Context, history []llm.Message, onDelta func(string), options ...llm.Option) (string, error) {
	var full strings.Builder
	for _, c := range f.chunks {
		if onDelta != nil {
			onDelta(c)
		}
		full.WriteString(c)
	}
	f.answer = full.String()
	return f.Chat(ctx, history, options...)
}

func TestSendStreamMatchesOneShotResult(t *testing.T) {
	provider := &chunkedProvider{chunks: []string{"Das ", "Profil ", "passt."}}
	svc, wid := newChatFixture(t, provider)

	res, err := svc.SendStream(context.Background(), wid, constant.ModuleRequirementsAnalysis,
		&dto.SendChatRequest{Message: "Bitte zusammenfassen."}, "key")
	require.NoError(t, err)
	assert.Equal(t, "Das Profil passt.", res.Reply.Content)

	last := res.History[len(res.History)-1]
	assert.Equal(t, constant.ChatMessageRoleAssistant, last.Role)
	assert.Equal(t, "Das Profil passt.", last.Content)
}
