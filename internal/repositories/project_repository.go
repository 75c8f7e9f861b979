package repositories

import (
	"errors"

	"castingfy/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrProjectRoleNotFound     = errors.New("project role not found")
	ErrCompensationDuplicate   = errors.New("compensation already exists for this role")
	ErrRoleOutsideProject      = errors.New("role does not belong to this project")
	ErrProjectAlreadyPublished = errors.New("project is already published")
)

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindByProducer(db *gorm.DB, producerID string) ([]models.Project, error)
	FindPublished(db *gorm.DB, limit int) ([]models.Project, error)
	UpdateDetails(db *gorm.DB, project *models.Project) error
	ReplaceRoles(db *gorm.DB, projectID string, roles []models.ProjectRole) error
	UpsertCompensation(db *gorm.DB, comp *models.RoleCompensation) error
	ReplacePrescreens(db *gorm.DB, projectID string, questions []models.PrescreenQuestion) error
	UpdateStatusAndStep(db *gorm.DB, projectID string, status models.ProjectStatus, step models.ProjectStep) error
	Delete(db *gorm.DB, id string) error
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.Preload("Roles").Preload("Roles.Compensation").Preload("Prescreens").
		First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if project.Roles == nil {
		project.Roles = []models.ProjectRole{}
	}
	if project.Prescreens == nil {
		project.Prescreens = []models.PrescreenQuestion{}
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindByProducer(db *gorm.DB, producerID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.Preload("Roles").Preload("Roles.Compensation").
		Where("producer_id = ?", producerID).
		Order("updated_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) FindPublished(db *gorm.DB, limit int) ([]models.Project, error) {
	var projects []models.Project
	err := db.Preload("Roles").Preload("Roles.Compensation").
		Where("status = ?", models.ProjectStatusPublished).
		Order("updated_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) UpdateDetails(db *gorm.DB, project *models.Project) error {
	result := db.Model(&models.Project{}).Where("id = ?", project.ID).Updates(map[string]interface{}{
		"title":       project.Title,
		"description": project.Description,
		"category":    project.Category,
		"location":    project.Location,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// ReplaceRoles swaps the whole roles slice of a project. The wizard
// sends the full aggregate on every step save, so replace semantics
// match the source. Roles arriving with client temp ids get server
// uuids via the BeforeCreate hook (temp ids are stripped by the
// service layer before this call).
func (r *ProjectRepositoryImpl) ReplaceRoles(db *gorm.DB, projectID string, roles []models.ProjectRole) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.RoleCompensation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectRole{}).Error; err != nil {
			return err
		}
		for i := range roles {
			roles[i].ProjectID = projectID
			if err := tx.Create(&roles[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpsertCompensation keeps at most one record per role: updates in
// place when a row exists, inserts otherwise. The unique index on
// role_id is the backstop for concurrent saves.
func (r *ProjectRepositoryImpl) UpsertCompensation(db *gorm.DB, comp *models.RoleCompensation) error {
	var role models.ProjectRole
	if err := db.First(&role, "id = ?", comp.RoleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectRoleNotFound
		}
		return err
	}
	if role.ProjectID != comp.ProjectID {
		return ErrRoleOutsideProject
	}

	var existing models.RoleCompensation
	err := db.Where("role_id = ?", comp.RoleID).First(&existing).Error
	if err == nil {
		return db.Model(&existing).Updates(map[string]interface{}{
			"kind":     comp.Kind,
			"amount":   comp.Amount,
			"currency": comp.Currency,
			"notes":    comp.Notes,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := db.Create(comp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCompensationDuplicate
		}
		return err
	}
	return nil
}

func (r *ProjectRepositoryImpl) ReplacePrescreens(db *gorm.DB, projectID string, questions []models.PrescreenQuestion) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.PrescreenQuestion{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ProjectID = projectID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProjectRepositoryImpl) UpdateStatusAndStep(db *gorm.DB, projectID string, status models.ProjectStatus, step models.ProjectStep) error {
	result := db.Model(&models.Project{}).Where("id = ?", projectID).Updates(map[string]interface{}{
		"status": status,
		"step":   step,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.RoleCompensation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.PrescreenQuestion{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Project{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
}
