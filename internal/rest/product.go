package rest

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	ProductService interface {
		CreateProduct(ctx context.Context, product *domain.Product, imageFilename string, image io.Reader) (*domain.Product, error)
		GetAllProducts(ctx context.Context, sectionID uint) ([]domain.Product, error)
		GetFeaturedProducts(ctx context.Context) ([]domain.Product, error)
		GetProductByID(ctx context.Context, id uint) (domain.Product, error)
		DeleteProduct(ctx context.Context, id uint) error
	}

	ProductHandler struct {
		productService ProductService
	}
)

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	var sectionID uint
	if raw := c.QueryParam("section_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid section ID"})
		}
		sectionID = uint(parsed)
	}

	products, err := h.productService.GetAllProducts(c.Request().Context(), sectionID)
	if err != nil {
		logger.Error("Failed to get products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) GetFeaturedProducts(c echo.Context) error {
	products, err := h.productService.GetFeaturedProducts(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get featured products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	product, err := h.productService.GetProductByID(c.Request().Context(), uint(id))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

// CreateProduct reads a multipart form so the product image can ride along
// with the fields.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid price"})
	}

	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid quantity"})
	}

	sectionID, err := strconv.ParseUint(c.FormValue("section_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid section ID"})
	}

	product := domain.Product{
		Name:                   c.FormValue("name"),
		Description:            c.FormValue("description"),
		Price:                  price,
		Quantity:               quantity,
		SectionID:              uint(sectionID),
		IsFeatured:             c.FormValue("is_featured") == "true",
		CustomInputLabel:       strings.TrimSpace(c.FormValue("custom_input_label")),
		CustomInputPlaceholder: strings.TrimSpace(c.FormValue("custom_input_placeholder")),
		CustomInputRequired:    c.FormValue("custom_input_required") == "true",
		AdminDescription:       strings.TrimSpace(c.FormValue("admin_description")),
	}

	var imageFilename string
	var image io.Reader

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader.Filename != "" {
		src, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded image", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid image file"})
		}
		defer src.Close()

		imageFilename = fileHeader.Filename
		image = src
	}

	created, err := h.productService.CreateProduct(c.Request().Context(), &product, imageFilename, image)
	if err != nil {
		logger.Error("Failed to create product", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	if err := h.productService.DeleteProduct(c.Request().Context(), uint(id)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}
