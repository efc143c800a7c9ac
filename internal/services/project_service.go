package services

import (
	"context"
	"errors"

	"vinixport_backend/internal/models"
	"vinixport_backend/internal/repositories"
	"vinixport_backend/internal/services/dto"
	"vinixport_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	ListMine(ctx context.Context, db *gorm.DB, userID string) ([]dto.ProjectResponse, error)
	Update(ctx context.Context, db *gorm.DB, userID, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, db *gorm.DB, userID, projectID string) error
}

type projectService struct {
	projectRepo repositories.ProjectRepository
	media       MediaService
}

func NewProjectService(projectRepo repositories.ProjectRepository, media MediaService) ProjectService {
	return &projectService{projectRepo: projectRepo, media: media}
}

func (s *projectService) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	imageURL, err := s.media.ResolveImage(ctx, userID, MediaProject, req.ImageURL)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    imageURL,
		Link:        req.Link,
	}
	project.SetTags(req.Tags)

	if err := s.projectRepo.Create(db.WithContext(ctx), project); err != nil {
		return nil, apperrors.StoreError(err)
	}

	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *projectService) ListMine(ctx context.Context, db *gorm.DB, userID string) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindByUser(db.WithContext(ctx), userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	out := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, dto.NewProjectResponse(&projects[i]))
	}
	return out, nil
}

func (s *projectService) Update(ctx context.Context, db *gorm.DB, userID, projectID string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	db = db.WithContext(ctx)

	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		return nil, handleProjectError(err)
	}
	if project.UserID != userID {
		return nil, apperrors.ErrProjectNotFound
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Link != nil {
		project.Link = *req.Link
	}
	if req.Tags != nil {
		project.SetTags(*req.Tags)
	}
	if req.ImageURL != nil {
		imageURL, err := s.media.ResolveImage(ctx, userID, MediaProject, *req.ImageURL)
		if err != nil {
			return nil, err
		}
		project.ImageURL = imageURL
	}

	if err := s.projectRepo.Update(db, project); err != nil {
		return nil, handleProjectError(err)
	}

	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *projectService) Delete(ctx context.Context, db *gorm.DB, userID, projectID string) error {
	if err := s.projectRepo.Delete(db.WithContext(ctx), userID, projectID); err != nil {
		return handleProjectError(err)
	}
	return nil
}

func handleProjectError(err error) error {
	if errors.Is(err, repositories.ErrProjectNotFound) {
		return apperrors.ErrProjectNotFound
	}
	return apperrors.StoreError(err)
}
