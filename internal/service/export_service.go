package service

import (
	"context"

	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/pkg/docgen"

	"github.com/google/uuid"
)

type ExportResult struct {
	Blob        []byte
	ContentType string
	FileName    string
}

type IExportService interface {
	Export(ctx context.Context, workspaceId uuid.UUID, req *dto.ExportRequest) (*ExportResult, error)
}

type exportService struct {
	generator docgen.Generator
}

func NewExportService(generator docgen.Generator) IExportService {
	return &exportService{
		generator: generator,
	}
}

func (s *exportService) Export(ctx context.Context, workspaceId uuid.UUID, req *dto.ExportRequest) (*ExportResult, error) {
	if req.Requirements == "" && req.Interpretation == "" && req.InterviewGuide == "" && req.OnboardingGuide == "" {
		return nil, serverutils.NewValidationError("nothing to export")
	}

	title := "Assessment-Report"
	if req.PositionTitle != "" {
		title = "Assessment-Report: " + req.PositionTitle
	}

	doc := docgen.Document{
		Title: title,
		Sections: []docgen.Section{
			{Heading: "Anforderungsprofil", Body: req.Requirements},
			{Heading: "Profilinterpretation", Body: req.Interpretation},
			{Heading: "Interviewleitfaden", Body: req.InterviewGuide},
			{Heading: "Onboarding-Plan", Body: req.OnboardingGuide},
		},
	}

	blob, err := s.generator.Generate(doc)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Blob:        blob,
		ContentType: s.generator.ContentType(),
		FileName:    "assessment-report" + s.generator.FileExtension(),
	}, nil
}
