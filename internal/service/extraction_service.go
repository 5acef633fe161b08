package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/entity"
	"assessment-assistant-be/internal/pkg/logger"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/pkg/assessment"
	"assessment-assistant-be/pkg/llm"

	"github.com/google/uuid"
)

// PageIsolator separates the profile page carrying candidate results
// from the rest of an uploaded document. Implementations sit outside
// this service; the default keeps the upload as a single page.
type PageIsolator interface {
	IsolateProfilePage(ctx context.Context, fileData, fileName string) (string, error)
}

// passthroughIsolator treats the whole upload as the profile page.
type passthroughIsolator struct{}

func NewPassthroughIsolator() PageIsolator {
	return passthroughIsolator{}
}

func (passthroughIsolator) IsolateProfilePage(ctx context.Context, fileData, fileName string) (string, error) {
	return fileData, nil
}

type IExtractionService interface {
	Extract(ctx context.Context, workspaceId uuid.UUID, req *dto.ExtractionRequest, apiKey string) (*dto.ExtractionResponse, error)
}

type extractionService struct {
	provider    llm.LLMProvider
	isolator    PageIsolator
	visionModel string
	logger      logger.ILogger
}

func NewExtractionService(provider llm.LLMProvider, isolator PageIsolator, visionModel string, log logger.ILogger) IExtractionService {
	return &extractionService{
		provider:    provider,
		isolator:    isolator,
		visionModel: visionModel,
		logger:      log,
	}
}

// model output shape requested by the extraction prompt
type extractedPayload struct {
	Candidates []struct {
		Name       string                 `json:"name"`
		Dimensions map[string]interface{} `json:"dimensions"`
		Confidence string                 `json:"confidence"`
	} `json:"candidates"`
	Warnings []string `json:"warnings"`
}

func (s *extractionService) Extract(ctx context.Context, workspaceId uuid.UUID, req *dto.ExtractionRequest, apiKey string) (*dto.ExtractionResponse, error) {
	page, err := s.isolator.IsolateProfilePage(ctx, req.FileData, req.FileName)
	if err != nil {
		return nil, serverutils.NewValidationError("could not isolate profile page: " + err.Error())
	}

	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.ExtractionSystemPromptV1},
		{Role: constant.ChatMessageRoleUser, Content: "Extrahiere die Kandidaten aus dem Bild.", Images: []string{page}},
	}

	opts := []llm.Option{llm.WithAPIKey(apiKey)}
	if s.visionModel != "" {
		opts = append(opts, llm.WithModel(s.visionModel))
	}

	raw, err := s.provider.Chat(ctx, history, opts...)
	if err != nil {
		s.logger.Error("ExtractionService", "Vision model call failed", map[string]interface{}{
			"workspace_id": workspaceId,
			"error":        err.Error(),
		})
		return nil, serverutils.NewGatewayError("extraction model call failed")
	}

	payload, err := parseExtractionOutput(raw)
	if err != nil {
		s.logger.Warn("ExtractionService", "Unparseable extraction output", map[string]interface{}{
			"workspace_id": workspaceId,
			"error":        err.Error(),
		})
		return nil, serverutils.NewValidationError("no candidates could be read from the document")
	}

	resp := &dto.ExtractionResponse{
		Warnings: payload.Warnings,
	}
	for _, c := range payload.Candidates {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		confidence := c.Confidence
		switch confidence {
		case constant.ConfidenceHigh, constant.ConfidenceMedium, constant.ConfidenceLow:
		default:
			confidence = constant.ConfidenceLow
		}
		resp.Candidates = append(resp.Candidates, dto.ExtractedCandidate{
			Candidate: entity.Candidate{
				Id:         uuid.New(),
				Name:       c.Name,
				Dimensions: assessment.NormalizeDimensions(coerceDimensions(c.Dimensions)),
			},
			Confidence: confidence,
		})
	}

	if len(resp.Candidates) == 0 {
		return nil, serverutils.NewValidationError("no candidates could be read from the document")
	}

	return resp, nil
}

// parseExtractionOutput tolerates models that wrap the JSON in prose or
// markdown fences.
func parseExtractionOutput(raw string) (*extractedPayload, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object in model output")
	}

	var payload extractedPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// coerceDimensions keeps integral values and drops anything the model
// returned as text; the normalizer fills the gaps with the default.
func coerceDimensions(in map[string]interface{}) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		if f, ok := v.(float64); ok {
			out[k] = int(f)
		}
	}
	return out
}
