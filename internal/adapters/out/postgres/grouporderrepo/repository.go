package grouporderrepo

import (
	"context"
	"errors"

	"grouporders/internal/core/domain/model/grouporder"
	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormGroupOrderRepository implements GroupOrderRepository using GORM.
type GormGroupOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormGroupOrderRepository creates a new GORM group order repository.
func NewGormGroupOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormGroupOrderRepository {
	return &GormGroupOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new group order and assigns the database-generated identity to the aggregate.
func (r *GormGroupOrderRepository) Add(ctx context.Context, aggregate *grouporder.GroupOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing group order to the database.
func (r *GormGroupOrderRepository) Update(ctx context.Context, aggregate *grouporder.GroupOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&GroupOrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a group order by ID.
func (r *GormGroupOrderRepository) Get(ctx context.Context, id kernel.ID) (*grouporder.GroupOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GroupOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("groupOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
