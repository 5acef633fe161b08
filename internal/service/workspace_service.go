package service

import (
	"context"

	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/entity"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/internal/repository/specification"
	"assessment-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWorkspaceService interface {
	Create(ctx context.Context) (*dto.CreateWorkspaceResponse, error)
	Status(ctx context.Context, workspaceId uuid.UUID) (*dto.WorkspaceStatusResponse, error)
	Touch(ctx context.Context, workspaceId uuid.UUID) error
}

type workspaceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWorkspaceService(uowFactory unitofwork.RepositoryFactory) IWorkspaceService {
	return &workspaceService{
		uowFactory: uowFactory,
	}
}

// Create registers an anonymous workspace and hands back the bearer
// token every other endpoint requires.
func (s *workspaceService) Create(ctx context.Context) (*dto.CreateWorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace := &entity.Workspace{
		Id: uuid.New(),
	}
	if err := uow.WorkspaceRepository().Create(ctx, workspace); err != nil {
		return nil, err
	}

	token, err := serverutils.IssueWorkspaceToken(workspace.Id.String())
	if err != nil {
		return nil, err
	}

	return &dto.CreateWorkspaceResponse{
		Id:    workspace.Id,
		Token: token,
	}, nil
}

func (s *workspaceService) Status(ctx context.Context, workspaceId uuid.UUID) (*dto.WorkspaceStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := uow.WorkspaceRepository().FindOne(ctx, specification.ByID{ID: workspaceId})
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, serverutils.NewNotFoundError("workspace not found")
	}

	return &dto.WorkspaceStatusResponse{
		Id:         workspace.Id,
		CreatedAt:  workspace.CreatedAt,
		LastSeenAt: workspace.LastSeenAt,
	}, nil
}

func (s *workspaceService) Touch(ctx context.Context, workspaceId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.WorkspaceRepository().Touch(ctx, workspaceId)
}
