// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"agrisense/internal/domain/entity"
	domainerrors "agrisense/internal/domain/errors"
	"agrisense/internal/domain/repository"
	"agrisense/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const defaultAdvisoryListLimit = 50

// advisoryRepository implements the repository.AdvisoryRepository interface.
type advisoryRepository struct {
	db *gorm.DB
}

// NewAdvisoryRepository is the constructor for advisoryRepository.
func NewAdvisoryRepository(db *gorm.DB) repository.AdvisoryRepository {
	return &advisoryRepository{
		db: db,
	}
}

// CreateAdvisories persists a batch of advisories as a single atomic insert.
func (repo *advisoryRepository) CreateAdvisories(ctx context.Context, advisories []*entity.Advisory) error {
	if len(advisories) == 0 {
		return nil
	}

	advisoryModels := make([]*model.AdvisoryModel, 0, len(advisories))
	for _, advisory := range advisories {
		advisoryM, err := fromAdvisoryDomain(advisory)
		if err != nil {
			return err
		}
		advisoryModels = append(advisoryModels, advisoryM)
	}

	if err := repo.db.WithContext(ctx).Create(&advisoryModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store recommendations")
	}

	// Update the entities with generated values
	for i, advisoryM := range advisoryModels {
		advisories[i].ID = advisoryM.ID
		advisories[i].CreatedAt = advisoryM.CreatedAt
	}

	return nil
}

// FindAdvisoryByID retrieves an advisory by its unique ID.
func (repo *advisoryRepository) FindAdvisoryByID(ctx context.Context, id uuid.UUID) (*entity.Advisory, error) {
	var advisoryM model.AdvisoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&advisoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdvisoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find advisory by ID")
	}

	return toAdvisoryDomain(&advisoryM)
}

// FindAdvisoriesByUser retrieves advisories for an owner, newest first.
func (repo *advisoryRepository) FindAdvisoriesByUser(ctx context.Context, userID uuid.UUID, filter repository.AdvisoryListFilter) ([]*entity.Advisory, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAdvisoryListLimit
	}

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID)
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if !filter.IncludeDismissed {
		query = query.Where("is_dismissed = ?", false)
	}

	var advisoryModels []*model.AdvisoryModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&advisoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find advisories by user")
	}

	advisories := make([]*entity.Advisory, 0, len(advisoryModels))
	for _, advisoryM := range advisoryModels {
		advisory, err := toAdvisoryDomain(advisoryM)
		if err != nil {
			return nil, err
		}
		advisories = append(advisories, advisory)
	}

	return advisories, nil
}

// HasRecentAdvisories reports whether any advisory for the device was created
// at or after since. The query is pinned to the primary so the idempotency
// gate observes the latest committed state rather than a lagging replica.
func (repo *advisoryRepository) HasRecentAdvisories(ctx context.Context, deviceID string, since time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.AdvisoryModel{}).
		Where("device_id = ? AND created_at >= ?", deviceID, since).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count recent advisories")
	}

	return count > 0, nil
}

// MarkRead sets is_read = true for an advisory. The flag is never reverted.
func (repo *advisoryRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return repo.setFlag(ctx, id, "is_read")
}

// MarkDismissed sets is_dismissed = true for an advisory. The flag is never reverted.
func (repo *advisoryRepository) MarkDismissed(ctx context.Context, id uuid.UUID) error {
	return repo.setFlag(ctx, id, "is_dismissed")
}

func (repo *advisoryRepository) setFlag(ctx context.Context, id uuid.UUID, column string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdvisoryModel{}).
		Where("id = ?", id).
		Update(column, true)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to set %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvisoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAdvisoryDomain converts a GORM AdvisoryModel to a domain Advisory entity.
func toAdvisoryDomain(data *model.AdvisoryModel) (*entity.Advisory, error) {
	if data == nil {
		return nil, nil
	}

	var snapshot entity.SensorSummary
	if len(data.SensorData) > 0 {
		if err := json.Unmarshal(data.SensorData, &snapshot); err != nil {
			return nil, errors.Wrap(err, "failed to decode sensor data snapshot")
		}
	}

	return &entity.Advisory{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Title:        data.Title,
		Message:      data.Message,
		Priority:     data.Priority,
		Category:     data.Category,
		SensorData:   snapshot,
		AIConfidence: data.AIConfidence,
		IsRead:       data.IsRead,
		IsDismissed:  data.IsDismissed,
		CreatedAt:    data.CreatedAt,
		ExpiresAt:    data.ExpiresAt,
	}, nil
}

// fromAdvisoryDomain converts a domain Advisory entity to a GORM AdvisoryModel.
func fromAdvisoryDomain(data *entity.Advisory) (*model.AdvisoryModel, error) {
	if data == nil {
		return nil, nil
	}

	snapshot, err := json.Marshal(data.SensorData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode sensor data snapshot")
	}

	return &model.AdvisoryModel{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Title:        data.Title,
		Message:      data.Message,
		Priority:     data.Priority,
		Category:     data.Category,
		SensorData:   snapshot,
		AIConfidence: data.AIConfidence,
		IsRead:       data.IsRead,
		IsDismissed:  data.IsDismissed,
		CreatedAt:    data.CreatedAt,
		ExpiresAt:    data.ExpiresAt,
	}, nil
}
