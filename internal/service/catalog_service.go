package service

import (
	"context"
	"encoding/json"
	"time"

	"tech-innovations-be/internal/browse"
	"tech-innovations-be/internal/dto"
	"tech-innovations-be/internal/entity"
	"tech-innovations-be/internal/pkg/logger"
	"tech-innovations-be/internal/repository/contract"
)

type ICatalogService interface {
	List(ctx context.Context) ([]*dto.InnovationResponse, error)
	Show(ctx context.Context, id int) (*dto.InnovationResponse, error)
	ListByCategory(ctx context.Context, category string) ([]*dto.InnovationResponse, error)
	Browse(ctx context.Context, req *dto.BrowseRequest) ([]*dto.InnovationResponse, error)
}

type catalogService struct {
	repo             contract.InnovationRepository
	publisherService IPublisherService
	log              logger.ILogger
}

func NewCatalogService(
	repo contract.InnovationRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) ICatalogService {
	return &catalogService{
		repo:             repo,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *catalogService) List(ctx context.Context) ([]*dto.InnovationResponse, error) {
	innovations, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("catalog", "Failed to list innovations", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	return toResponses(innovations), nil
}

// Show returns (nil, nil) when the id has no record; that outcome is
// expected and not logged. A successful lookup emits a view event, which is
// auxiliary and never fails the request.
func (s *catalogService) Show(ctx context.Context, id int) (*dto.InnovationResponse, error) {
	innovation, err := s.repo.FindById(ctx, id)
	if err != nil {
		s.log.Error("catalog", "Failed to fetch innovation", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}
	if innovation == nil {
		return nil, nil
	}

	s.publishViewed(ctx, innovation.Id)

	return toResponse(innovation), nil
}

func (s *catalogService) ListByCategory(ctx context.Context, category string) ([]*dto.InnovationResponse, error) {
	innovations, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		s.log.Error("catalog", "Failed to list innovations by category", map[string]interface{}{
			"category": category,
			"error":    err.Error(),
		})
		return nil, err
	}
	return toResponses(innovations), nil
}

// Browse runs the filter/sort pipeline server-side over the full record set.
// featured=true bypasses the pipeline and returns the featured subset as-is.
func (s *catalogService) Browse(ctx context.Context, req *dto.BrowseRequest) ([]*dto.InnovationResponse, error) {
	if req.Featured {
		featured, err := s.repo.FindFeatured(ctx)
		if err != nil {
			s.log.Error("catalog", "Failed to list featured innovations", map[string]interface{}{"error": err.Error()})
			return nil, err
		}
		return toResponses(featured), nil
	}

	innovations, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("catalog", "Failed to browse innovations", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	view := browse.Filter(innovations, req.Query, req.Category)
	view = browse.Sort(view, browse.ParseSortKey(req.Sort))
	return toResponses(view), nil
}

func (s *catalogService) publishViewed(ctx context.Context, id int) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.InnovationViewedMessage{
		InnovationId: id,
		ViewedAt:     time.Now(),
	})
	if err != nil {
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("catalog", "Failed to publish view event", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
	}
}

func toResponse(i *entity.Innovation) *dto.InnovationResponse {
	tags := i.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.InnovationResponse{
		Id:          i.Id,
		Title:       i.Title,
		Category:    i.Category,
		Description: i.Description,
		Impact:      i.Impact,
		Year:        i.Year,
		Company:     i.Company,
		Rating:      i.Rating,
		Tags:        tags,
		Image:       i.Image,
		Featured:    i.Featured,
	}
}

func toResponses(innovations []*entity.Innovation) []*dto.InnovationResponse {
	responses := make([]*dto.InnovationResponse, len(innovations))
	for i, n := range innovations {
		responses[i] = toResponse(n)
	}
	return responses
}
