package api

import (
	"net/http"

	"beer-service/internal/dto"
	"beer-service/internal/handler/httperr"
	"beer-service/internal/handler/validation"
	"beer-service/internal/pkg/errs"
	"beer-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

const CustomerPath = "/api/v1/customer"

type CustomerHandler struct {
	svc usecase.CustomerService
}

func NewCustomerHandler(svc usecase.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} dto.CustomerDTO
// @Router /api/v1/customer [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerDTO
// @Failure 404 "Not Found"
// @Router /api/v1/customer/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cust, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Param request body dto.CustomerDTO true "Customer"
// @Success 201 "Created"
// @Failure 400 {object} httperr.Response
// @Router /api/v1/customer [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromError(c, validation.Translate(err))
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", CustomerPath+"/"+created.ID.String())
	c.Status(http.StatusCreated)
}

// @Summary Replace customer
// @Tags customers
// @Accept json
// @Param id path string true "Customer ID"
// @Param request body dto.CustomerDTO true "Customer"
// @Success 204 "No Content"
// @Failure 404 "Not Found"
// @Failure 409 {object} httperr.Response
// @Router /api/v1/customer/{id} [put]
func (h *CustomerHandler) Replace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CustomerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromError(c, validation.Translate(err))
		return
	}
	if _, err := h.svc.Replace(c.Request.Context(), id, req); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Patch customer
// @Tags customers
// @Accept json
// @Param id path string true "Customer ID"
// @Param request body dto.CustomerPatch true "Fields to change"
// @Success 204 "No Content"
// @Failure 404 "Not Found"
// @Failure 409 {object} httperr.Response
// @Router /api/v1/customer/{id} [patch]
func (h *CustomerHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CustomerPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromError(c, validation.Translate(err))
		return
	}
	if _, err := h.svc.Patch(c.Request.Context(), id, req); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete customer
// @Tags customers
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 "Not Found"
// @Router /api/v1/customer/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if !deleted {
		httperr.FromError(c, errs.Wrapf(errs.ErrNotFound, "customer %s", id))
		return
	}
	c.Status(http.StatusNoContent)
}
