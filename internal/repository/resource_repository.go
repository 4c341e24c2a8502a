package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vladimirfomene/raggnet/internal/model"
)

// ResourceFilter narrows resource listings. Zero values mean no filter.
type ResourceFilter struct {
	Type   model.ResourceType
	Status model.ResourceStatus
}

// ResourceRepository defines resource persistence operations.
type ResourceRepository interface {
	Create(ctx context.Context, resource *model.Resource) error
	Update(ctx context.Context, resource *model.Resource) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Resource, error)
	List(ctx context.Context, filter ResourceFilter) ([]model.Resource, error)
	FindRelated(ctx context.Context, resource *model.Resource) ([]model.Resource, error)
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository builds a GORM-backed repository.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *model.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) Update(ctx context.Context, resource *model.Resource) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Resource{}, "id = ?", id).Error
}

func (r *resourceRepository) FindByID(ctx context.Context, id string) (*model.Resource, error) {
	var resource model.Resource
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) List(ctx context.Context, filter ResourceFilter) ([]model.Resource, error) {
	q := r.db.WithContext(ctx)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var resources []model.Resource
	if err := q.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// FindRelated lists other resources sharing the given resource's type or
// submitter, excluding the resource itself.
func (r *resourceRepository) FindRelated(ctx context.Context, resource *model.Resource) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.db.WithContext(ctx).
		Where("id <> ?", resource.ID).
		Where("type = ? OR submitter_id = ?", resource.Type, resource.SubmitterID).
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}
