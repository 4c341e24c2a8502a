package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/vladimirfomene/raggnet/internal/cache"
	apperrors "github.com/vladimirfomene/raggnet/internal/errors"
	"github.com/vladimirfomene/raggnet/internal/model"
	"github.com/vladimirfomene/raggnet/internal/repository"
	"github.com/vladimirfomene/raggnet/internal/validate"
)

const resourceCacheTTL = 5 * time.Minute

// ResourceCache is the slice of the cache client the service uses.
type ResourceCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

var _ ResourceCache = (*cache.Client)(nil)

// ResourceInput carries the fields of a resource submission.
type ResourceInput struct {
	Title       string
	Type        model.ResourceType
	URL         string
	Description string
	Status      model.ResourceStatus
}

// ResourceUpdate carries the fields of a field-level merge update. Nil
// fields are left untouched. Approval status is not updatable here; only
// Approve moves it, and only forward.
type ResourceUpdate struct {
	Title       *string
	Type        *model.ResourceType
	URL         *string
	Description *string
}

// ResourceService exposes resource operations.
type ResourceService interface {
	Create(ctx context.Context, submitter *model.User, in ResourceInput) (*model.Resource, error)
	Get(ctx context.Context, id string) (*model.Resource, error)
	List(ctx context.Context, filter repository.ResourceFilter) ([]model.Resource, error)
	Related(ctx context.Context, id string) ([]model.Resource, error)
	Update(ctx context.Context, id string, upd ResourceUpdate) (*model.Resource, error)
	Approve(ctx context.Context, id string) (*model.Resource, error)
	Delete(ctx context.Context, id string) error
}

type resourceService struct {
	resources repository.ResourceRepository
	cache     ResourceCache
}

// NewResourceService builds a ResourceService with repository and cache.
func NewResourceService(resources repository.ResourceRepository, cache ResourceCache) ResourceService {
	return &resourceService{resources: resources, cache: cache}
}

func (s *resourceService) cacheKey(id string) string {
	return "resource:" + id
}

// invalidate drops the cached copy after a write. The write already
// happened, so a failed invalidation is logged rather than failing the
// request; the entry ages out with its TTL.
func (s *resourceService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, s.cacheKey(id)); err != nil {
		log.Printf("invalidate resource %s: %v", id, err)
	}
}

// Create stores a new resource. Submissions start pending; only an admin
// submitter may create a resource as approved, and only by asking for it
// explicitly. The URL field is repaired, never rejected.
func (s *resourceService) Create(ctx context.Context, submitter *model.User, in ResourceInput) (*model.Resource, error) {
	if !in.Type.Valid() {
		return nil, apperrors.ErrInvalidResourceType
	}

	status := model.StatusPending
	if in.Status == model.StatusApproved && submitter.Role.Meets(model.RoleAdmin) {
		status = model.StatusApproved
	}

	resource := &model.Resource{
		Title:       in.Title,
		Type:        in.Type,
		SubmitterID: submitter.ID,
		Status:      status,
		URL:         validate.NormalizeURL(in.URL),
		Description: in.Description,
	}
	if err := s.resources.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return resource, nil
}

func (s *resourceService) Get(ctx context.Context, id string) (*model.Resource, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Resource
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	resource, err := s.resources.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(resource); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, resourceCacheTTL)
	}
	return resource, nil
}

func (s *resourceService) List(ctx context.Context, filter repository.ResourceFilter) ([]model.Resource, error) {
	return s.resources.List(ctx, filter)
}

// Related lists other resources sharing the target's type or submitter.
func (s *resourceService) Related(ctx context.Context, id string) ([]model.Resource, error) {
	resource, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resources.FindRelated(ctx, resource)
}

// Update merges the provided fields into the stored resource.
func (s *resourceService) Update(ctx context.Context, id string, upd ResourceUpdate) (*model.Resource, error) {
	resource, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		resource.Title = *upd.Title
	}
	if upd.Type != nil {
		if !upd.Type.Valid() {
			return nil, apperrors.ErrInvalidResourceType
		}
		resource.Type = *upd.Type
	}
	if upd.URL != nil {
		resource.URL = validate.NormalizeURL(*upd.URL)
	}
	if upd.Description != nil {
		resource.Description = *upd.Description
	}

	if err := s.resources.Update(ctx, resource); err != nil {
		return nil, fmt.Errorf("update resource: %w", err)
	}
	s.invalidate(ctx, id)
	return resource, nil
}

// Approve moves a pending resource to approved. Approving an already
// approved resource is a no-op; there is no way back to pending.
func (s *resourceService) Approve(ctx context.Context, id string) (*model.Resource, error) {
	resource, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if resource.Status == model.StatusApproved {
		return resource, nil
	}

	resource.Status = model.StatusApproved
	if err := s.resources.Update(ctx, resource); err != nil {
		return nil, fmt.Errorf("approve resource: %w", err)
	}
	s.invalidate(ctx, id)
	return resource, nil
}

// Delete hard-deletes the resource. Deletion is terminal.
func (s *resourceService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.resources.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}
