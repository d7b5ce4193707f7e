package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SectionService interface {
		CreateSection(ctx context.Context, section *domain.Section) (domain.Section, error)
		GetAllSections(ctx context.Context) ([]domain.Section, error)
		DeleteSection(ctx context.Context, id uint) error
	}

	SectionHandler struct {
		validate       *validator.Validate
		sectionService SectionService
	}

	SectionInput struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}
)

func NewSectionHandler(sectionService SectionService) *SectionHandler {
	return &SectionHandler{
		validate:       validator.New(),
		sectionService: sectionService,
	}
}

func (h *SectionHandler) GetAllSections(c echo.Context) error {
	sections, err := h.sectionService.GetAllSections(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get all sections", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(sections))
}

func (h *SectionHandler) CreateSection(c echo.Context) error {
	var request SectionInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate section input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	section, err := h.sectionService.CreateSection(c.Request().Context(), &domain.Section{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		logger.Error("Failed to create section", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(section))
}

func (h *SectionHandler) DeleteSection(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid section ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid section ID"})
	}

	if err := h.sectionService.DeleteSection(c.Request().Context(), uint(id)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Section and all its products deleted successfully",
	})
}
