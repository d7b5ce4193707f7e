package rest

import (
	"net/http"

	"github.com/CatcoinSupport/Game-Mart/pkg/uploads"

	"github.com/labstack/echo/v4"
)

type UploadsHandler struct {
	productStore *uploads.Store
	paymentStore *uploads.Store
}

func NewUploadsHandler(productStore, paymentStore *uploads.Store) *UploadsHandler {
	return &UploadsHandler{
		productStore: productStore,
		paymentStore: paymentStore,
	}
}

// GetProductFile serves product images; these are public.
func (h *UploadsHandler) GetProductFile(c echo.Context) error {
	path, err := h.productStore.Path(c.Param("filename"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid filename"})
	}

	return c.File(path)
}

// GetPaymentFile serves payment proofs; the route is admin-only.
func (h *UploadsHandler) GetPaymentFile(c echo.Context) error {
	path, err := h.paymentStore.Path(c.Param("filename"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid filename"})
	}

	return c.File(path)
}
