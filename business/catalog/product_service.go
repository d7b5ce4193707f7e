package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindBySection(ctx context.Context, sectionID uint) ([]domain.Product, error)
	FindFeatured(ctx context.Context) ([]domain.Product, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// ImageStore contract interface
type ImageStore interface {
	Save(originalFilename string, r io.Reader) (string, error)
	Delete(filename string) error
}

type productService struct {
	productRepo ProductRepository
	sectionRepo SectionRepository
	imageStore  ImageStore
}

func NewProductService(productRepo ProductRepository, sectionRepo SectionRepository, imageStore ImageStore) *productService {
	return &productService{
		productRepo: productRepo,
		sectionRepo: sectionRepo,
		imageStore:  imageStore,
	}
}

// CreateProduct validates and persists a product. image may be nil; when
// given it is stored under a fresh unique name before the row is written.
func (s *productService) CreateProduct(ctx context.Context, product *domain.Product, imageFilename string, image io.Reader) (*domain.Product, error) {
	if product.Name == "" {
		logger.Error("Invalid product data: name is required")
		return nil, errors.New("product name is required")
	}

	if product.Description == "" {
		logger.Error("Invalid product data: description is required")
		return nil, errors.New("product description is required")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if product.Quantity < 0 {
		logger.Error("Invalid product data: quantity cannot be negative")
		return nil, errors.New("quantity cannot be negative")
	}

	if _, err := s.sectionRepo.FindByID(ctx, product.SectionID); err != nil {
		logger.Error("Section not found for product", err)
		return nil, errors.New("section not found")
	}

	if image != nil {
		stored, err := s.imageStore.Save(imageFilename, image)
		if err != nil {
			logger.Error("Failed to save product image", err)
			return nil, errors.New("invalid image file")
		}
		product.ImageFilename = stored
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("Failed to create new product", err)
		if product.ImageFilename != "" {
			if derr := s.imageStore.Delete(product.ImageFilename); derr != nil {
				logger.Warn("Failed to clean up product image", derr)
			}
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created successfully", "product_id", product.ID)

	return product, nil
}

func (s *productService) GetAllProducts(ctx context.Context, sectionID uint) ([]domain.Product, error) {
	if sectionID > 0 {
		products, err := s.productRepo.FindBySection(ctx, sectionID)
		if err != nil {
			logger.Error("Failed to find products by section", err)
			return nil, err
		}
		return products, nil
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindFeatured(ctx)
	if err != nil {
		logger.Error("Failed to find featured products", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint) (domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return domain.Product{}, errors.New("invalid product id")
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err)
		return domain.Product{}, err
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("product not found", err)
		return errors.New("product not found")
	}

	if product.ImageFilename != "" {
		if err := s.imageStore.Delete(product.ImageFilename); err != nil {
			logger.Warn("Failed to delete product image", err)
		}
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
