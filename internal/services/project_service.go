package services

import (
	"encoding/json"
	"errors"
	"strings"

	"castingfy/internal/models"
	"castingfy/internal/repositories"
	"castingfy/internal/services/dto"
	"castingfy/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultCastingLimit = 50

type ProjectService interface {
	CreateProject(db *gorm.DB, producerID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(db *gorm.DB, requesterID, projectID string) (*dto.ProjectResponse, error)
	ListMyProjects(db *gorm.DB, producerID string) ([]models.Project, error)
	ListCastings(db *gorm.DB, limit int) ([]models.Project, error)

	SaveDetails(db *gorm.DB, producerID, projectID string, req *dto.ProjectDetailsRequest) (*dto.ProjectResponse, error)
	SaveRoles(db *gorm.DB, producerID, projectID string, req *dto.ProjectRolesRequest) (*dto.ProjectResponse, error)
	SaveCompensation(db *gorm.DB, producerID, projectID string, req *dto.ProjectCompensationRequest) (*dto.ProjectResponse, error)
	SavePrescreens(db *gorm.DB, producerID, projectID string, req *dto.ProjectPrescreensRequest) (*dto.ProjectResponse, error)
	Publish(db *gorm.DB, producerID, projectID string) (*dto.ProjectResponse, error)
	DeleteProject(db *gorm.DB, producerID, projectID string) error
}

type projectService struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

// CreateProject opens a draft at the details step. Every later wizard
// step saves against this id.
func (s *projectService) CreateProject(db *gorm.DB, producerID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.ErrInvalidOperation("project", "Project title is required")
	}

	project := &models.Project{
		ProducerID:  producerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Status:      models.ProjectStatusDraft,
		Step:        models.ProjectStepDetails,
	}
	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.reload(db, project.ID, nil)
}

func (s *projectService) GetProject(db *gorm.DB, requesterID, projectID string) (*dto.ProjectResponse, error) {
	project, err := s.findProject(db, projectID)
	if err != nil {
		return nil, err
	}

	// Drafts are visible to their owner only.
	if project.Status != models.ProjectStatusPublished && project.ProducerID != requesterID {
		return nil, apperrors.NewForbiddenError("You do not have access to this project")
	}
	return &dto.ProjectResponse{Project: project}, nil
}

func (s *projectService) ListMyProjects(db *gorm.DB, producerID string) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByProducer(db, producerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (s *projectService) ListCastings(db *gorm.DB, limit int) ([]models.Project, error) {
	if limit <= 0 || limit > defaultCastingLimit {
		limit = defaultCastingLimit
	}
	projects, err := s.projectRepo.FindPublished(db, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// SaveDetails is step 1. Saves are last-write-wins per step.
func (s *projectService) SaveDetails(db *gorm.DB, producerID, projectID string, req *dto.ProjectDetailsRequest) (*dto.ProjectResponse, error) {
	project, err := s.loadOwnedDraft(db, producerID, projectID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.ErrInvalidOperation("project", "Project title is required")
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Category = req.Category
	project.Location = req.Location

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepo.UpdateDetails(tx, project); err != nil {
			return err
		}
		return s.advanceStep(tx, project, models.ProjectStepDetails)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.reload(db, projectID, nil)
}

// SaveRoles is step 2: the full role list is replaced. Client temp
// ids are dropped and server uuids assigned; the response carries the
// id mapping so the client can rewrite its local references.
func (s *projectService) SaveRoles(db *gorm.DB, producerID, projectID string, req *dto.ProjectRolesRequest) (*dto.ProjectResponse, error) {
	project, err := s.loadOwnedDraft(db, producerID, projectID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(project.Title) == "" {
		return nil, apperrors.ErrInvalidOperation("project", "Complete the details step before adding roles")
	}

	roles := make([]models.ProjectRole, 0, len(req.Roles))
	clientRefs := make([]string, 0, len(req.Roles))
	for _, input := range req.Roles {
		if strings.TrimSpace(input.Name) == "" {
			return nil, apperrors.ErrInvalidOperation("project", "Each role needs a non-empty name")
		}
		if input.AgeMin != nil && input.AgeMax != nil && *input.AgeMin > *input.AgeMax {
			return nil, apperrors.ErrInvalidOperation("project", "Role age range is inverted")
		}

		quantity := input.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		roles = append(roles, models.ProjectRole{
			ProjectID:   projectID,
			Name:        input.Name,
			Description: input.Description,
			Gender:      input.Gender,
			AgeMin:      input.AgeMin,
			AgeMax:      input.AgeMax,
			Quantity:    quantity,
		})

		ref := input.ClientID
		if ref == "" {
			ref = input.ID
		}
		clientRefs = append(clientRefs, ref)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepo.ReplaceRoles(tx, projectID, roles); err != nil {
			return err
		}
		return s.advanceStep(tx, project, models.ProjectStepRoles)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// ReplaceRoles fills in the generated ids in insertion order.
	mapping := make([]dto.RoleIDMapping, 0, len(roles))
	for i := range roles {
		if clientRefs[i] == "" {
			continue
		}
		mapping = append(mapping, dto.RoleIDMapping{
			ClientID: clientRefs[i],
			ServerID: roles[i].ID,
		})
	}

	return s.reload(db, projectID, mapping)
}

// SaveCompensation is step 3 and requires at least one saved role.
// One record per role; repeated saves for the same role update in
// place.
func (s *projectService) SaveCompensation(db *gorm.DB, producerID, projectID string, req *dto.ProjectCompensationRequest) (*dto.ProjectResponse, error) {
	project, err := s.loadOwnedDraft(db, producerID, projectID)
	if err != nil {
		return nil, err
	}
	if len(project.Roles) == 0 {
		return nil, apperrors.ErrInvalidOperation("project", "Add at least one role before compensation")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, input := range req.Compensation {
			comp := &models.RoleCompensation{
				ProjectID: projectID,
				RoleID:    input.RoleID,
				Kind:      models.CompensationKind(input.Kind),
				Amount:    input.Amount,
				Currency:  input.Currency,
				Notes:     input.Notes,
			}
			if err := s.projectRepo.UpsertCompensation(tx, comp); err != nil {
				return err
			}
		}
		return s.advanceStep(tx, project, models.ProjectStepCompensation)
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProjectRoleNotFound):
			return nil, apperrors.ErrNotFound(err)
		case errors.Is(err, repositories.ErrRoleOutsideProject):
			return nil, apperrors.ErrInvalidOperation("project", "Role does not belong to this project")
		case errors.Is(err, repositories.ErrCompensationDuplicate):
			return nil, apperrors.ErrConflict(err, "project", "Compensation already saved for this role")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.reload(db, projectID, nil)
}

// SavePrescreens is step 4. Questions may target a single role or the
// whole project; an empty list clears the step.
func (s *projectService) SavePrescreens(db *gorm.DB, producerID, projectID string, req *dto.ProjectPrescreensRequest) (*dto.ProjectResponse, error) {
	project, err := s.loadOwnedDraft(db, producerID, projectID)
	if err != nil {
		return nil, err
	}
	if len(project.Roles) == 0 {
		return nil, apperrors.ErrInvalidOperation("project", "Add at least one role before prescreen questions")
	}

	roleIDs := make(map[string]bool, len(project.Roles))
	for _, role := range project.Roles {
		roleIDs[role.ID] = true
	}

	questions := make([]models.PrescreenQuestion, 0, len(req.Prescreens))
	for _, input := range req.Prescreens {
		if input.RoleID != nil && !roleIDs[*input.RoleID] {
			return nil, apperrors.ErrInvalidOperation("project", "Prescreen question targets an unknown role")
		}

		kind := models.PrescreenKind(input.Kind)
		if kind == "" {
			kind = models.PrescreenKindText
		}
		if kind == models.PrescreenKindChoice && len(input.Options) == 0 {
			return nil, apperrors.ErrInvalidOperation("project", "Choice questions need at least one option")
		}

		var options datatypes.JSON
		if len(input.Options) > 0 {
			b, _ := json.Marshal(input.Options)
			options = datatypes.JSON(b)
		}

		questions = append(questions, models.PrescreenQuestion{
			ProjectID: projectID,
			RoleID:    input.RoleID,
			Prompt:    input.Prompt,
			Kind:      kind,
			Options:   options,
			Required:  input.Required,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepo.ReplacePrescreens(tx, projectID, questions); err != nil {
			return err
		}
		return s.advanceStep(tx, project, models.ProjectStepPrescreens)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.reload(db, projectID, nil)
}

// Publish flips a complete draft to published. The status change and
// final step save happen in one transaction so a failed flip leaves
// the draft intact.
func (s *projectService) Publish(db *gorm.DB, producerID, projectID string) (*dto.ProjectResponse, error) {
	project, err := s.loadOwned(db, producerID, projectID)
	if err != nil {
		return nil, err
	}
	if project.Status == models.ProjectStatusPublished {
		return nil, apperrors.ErrConflict(repositories.ErrProjectAlreadyPublished, "project", "Project is already published")
	}
	if strings.TrimSpace(project.Title) == "" {
		return nil, apperrors.ErrInvalidOperation("project", "Project title is required before publishing")
	}
	if len(project.Roles) == 0 {
		return nil, apperrors.ErrInvalidOperation("project", "Add at least one role before publishing")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.projectRepo.UpdateStatusAndStep(tx, projectID, models.ProjectStatusPublished, models.ProjectStepPrescreens)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.reload(db, projectID, nil)
}

func (s *projectService) DeleteProject(db *gorm.DB, producerID, projectID string) error {
	if _, err := s.loadOwned(db, producerID, projectID); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(db, projectID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *projectService) findProject(db *gorm.DB, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *projectService) loadOwned(db *gorm.DB, producerID, projectID string) (*models.Project, error) {
	project, err := s.findProject(db, projectID)
	if err != nil {
		return nil, err
	}
	if project.ProducerID != producerID {
		return nil, apperrors.NewForbiddenError("You do not own this project")
	}
	return project, nil
}

func (s *projectService) loadOwnedDraft(db *gorm.DB, producerID, projectID string) (*models.Project, error) {
	project, err := s.loadOwned(db, producerID, projectID)
	if err != nil {
		return nil, err
	}
	if project.Status == models.ProjectStatusPublished {
		return nil, apperrors.ErrConflict(repositories.ErrProjectAlreadyPublished, "project", "Published projects cannot be edited")
	}
	return project, nil
}

var stepRank = map[models.ProjectStep]int{
	models.ProjectStepDetails:      0,
	models.ProjectStepRoles:        1,
	models.ProjectStepCompensation: 2,
	models.ProjectStepPrescreens:   3,
}

// advanceStep records the furthest wizard step reached. Re-saving an
// earlier step never moves the marker backwards.
func (s *projectService) advanceStep(db *gorm.DB, project *models.Project, step models.ProjectStep) error {
	if stepRank[step] <= stepRank[project.Step] {
		return nil
	}
	return s.projectRepo.UpdateStatusAndStep(db, project.ID, project.Status, step)
}

func (s *projectService) reload(db *gorm.DB, projectID string, mapping []dto.RoleIDMapping) (*dto.ProjectResponse, error) {
	project, err := s.findProject(db, projectID)
	if err != nil {
		return nil, err
	}
	return &dto.ProjectResponse{Project: project, RoleMapping: mapping}, nil
}
