package catalog

import (
	"context"
	"errors"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
)

// SectionRepository contract interface
type SectionRepository interface {
	Create(ctx context.Context, section *domain.Section) error
	FindByID(ctx context.Context, id uint) (domain.Section, error)
	FindAll(ctx context.Context) ([]domain.Section, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type sectionService struct {
	sectionRepo SectionRepository
	productRepo ProductRepository
	imageStore  ImageStore
}

func NewSectionService(sectionRepo SectionRepository, productRepo ProductRepository, imageStore ImageStore) *sectionService {
	return &sectionService{
		sectionRepo: sectionRepo,
		productRepo: productRepo,
		imageStore:  imageStore,
	}
}

func (s *sectionService) CreateSection(ctx context.Context, section *domain.Section) (domain.Section, error) {
	if section.Name == "" {
		logger.Error("Invalid section data: name is required")
		return domain.Section{}, errors.New("section name is required")
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		logger.Error("Failed to create section", err)
		return domain.Section{}, err
	}

	return *section, nil
}

func (s *sectionService) GetAllSections(ctx context.Context) ([]domain.Section, error) {
	sections, err := s.sectionRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get all sections", err)
		return nil, err
	}

	return sections, nil
}

// DeleteSection removes a section with all its products. Product image
// files go first so the rows never outlive a dangling file reference.
func (s *sectionService) DeleteSection(ctx context.Context, id uint) error {
	if _, err := s.sectionRepo.FindByID(ctx, id); err != nil {
		logger.Error("Section not found for deletion", err)
		return err
	}

	products, err := s.productRepo.FindBySection(ctx, id)
	if err != nil {
		logger.Error("Failed to list section products", err)
		return err
	}

	for _, product := range products {
		if product.ImageFilename == "" {
			continue
		}
		if err := s.imageStore.Delete(product.ImageFilename); err != nil {
			logger.Warn("Failed to delete product image", err)
		}
	}

	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete section", err)
		return err
	}

	return nil
}
