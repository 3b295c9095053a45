package rosterrepo

import (
	"context"
	"errors"
	"time"

	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/core/domain/model/roster"
	"railmeals/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryPersonRepository implements DeliveryPersonRepository using GORM.
type GormDeliveryPersonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryPersonRepository creates a new GORM roster repository.
func NewGormDeliveryPersonRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryPersonRepository {
	return &GormDeliveryPersonRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add registers a new delivery person on the roster.
func (r *GormDeliveryPersonRepository) Add(ctx context.Context, aggregate *roster.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists changes to an existing roster entry.
func (r *GormDeliveryPersonRepository) Update(ctx context.Context, aggregate *roster.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryPersonDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "phone", "document_expiry", "total_deliveries", "profile_image_url").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a roster entry by ID.
func (r *GormDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*roster.DeliveryPerson, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery person", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOutlet retrieves the complete roster for an outlet, sorted by name.
func (r *GormDeliveryPersonRepository) GetAllByOutlet(
	ctx context.Context,
	outletID kernel.UUID,
) ([]*roster.DeliveryPerson, error) {
	if err := outletID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryPersonDTO
	err := r.db.WithContext(ctx).
		Where("outlet_id = ?", outletID.Bytes()).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllWithDocumentsExpiringBefore retrieves roster entries whose identity
// documents expire before the deadline.
func (r *GormDeliveryPersonRepository) GetAllWithDocumentsExpiringBefore(
	ctx context.Context,
	deadline time.Time,
) ([]*roster.DeliveryPerson, error) {
	var dtos []DeliveryPersonDTO
	err := r.db.WithContext(ctx).
		Where("document_expiry < ?", deadline).
		Order("document_expiry").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DeliveryPersonDTO) ([]*roster.DeliveryPerson, error) {
	people := make([]*roster.DeliveryPerson, 0, len(dtos))
	for _, dto := range dtos {
		dp, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		people = append(people, dp)
	}
	return people, nil
}
