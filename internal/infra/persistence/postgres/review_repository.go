package postgres

import (
	"context"

	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	"rental/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements repository.ReviewRepository using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindByProperty returns a property's reviews, newest first.
func (repo *reviewRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Review, error) {
	var rows []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by property")
	}

	out := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReviewDomain(row))
	}

	return out, nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	row := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPropertyNotFound.WrapMessage("review references a missing property or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.CreatedAt = row.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		PropertyID: data.PropertyID,
		UserID:     data.UserID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		PropertyID: data.PropertyID,
		UserID:     data.UserID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}
