package api

import (
	"net/http"

	"beer-service/internal/dto"
	"beer-service/internal/handler/httperr"
	"beer-service/internal/handler/validation"
	"beer-service/internal/pkg/errs"
	"beer-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const BeerPath = "/api/v1/beer"

type BeerHandler struct {
	svc usecase.BeerService
}

func NewBeerHandler(svc usecase.BeerService) *BeerHandler {
	return &BeerHandler{svc: svc}
}

// @Summary List beers
// @Tags beers
// @Produce json
// @Success 200 {array} dto.BeerDTO
// @Router /api/v1/beer [get]
func (h *BeerHandler) List(c *gin.Context) {
	beers, err := h.svc.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, beers)
}

// @Summary Get beer
// @Tags beers
// @Produce json
// @Param id path string true "Beer ID"
// @Success 200 {object} dto.BeerDTO
// @Failure 400 {object} httperr.Response
// @Failure 404 "Not Found"
// @Router /api/v1/beer/{id} [get]
func (h *BeerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary Create beer
// @Description Responds with the new resource in the Location header and no body
// @Tags beers
// @Accept json
// @Param request body dto.BeerDTO true "Beer"
// @Success 201 "Created"
// @Failure 400 {object} httperr.Response
// @Router /api/v1/beer [post]
func (h *BeerHandler) Create(c *gin.Context) {
	var req dto.BeerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromError(c, validation.Translate(err))
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", BeerPath+"/"+created.ID.String())
	c.Status(http.StatusCreated)
}

// @Summary Replace beer
// @Tags beers
// @Accept json
// @Param id path string true "Beer ID"
// @Param request body dto.BeerDTO true "Beer"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 "Not Found"
// @Failure 409 {object} httperr.Response
// @Router /api/v1/beer/{id} [put]
func (h *BeerHandler) Replace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.BeerDTO
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

// @Summary Patch beer
// @Description Only present, non-blank fields are applied
// @Tags beers
// @Accept json
// @Param id path string true "Beer ID"
// @Param request body dto.BeerPatch true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 "Not Found"
// @Failure 409 {object} httperr.Response
// @Router /api/v1/beer/{id} [patch]
func (h *BeerHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.BeerPatch
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

// @Summary Delete beer
// @Tags beers
// @Param id path string true "Beer ID"
// @Success 204 "No Content"
// @Failure 404 "Not Found"
// @Router /api/v1/beer/{id} [delete]
func (h *BeerHandler) Delete(c *gin.Context) {
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
		httperr.FromError(c, errs.Wrapf(errs.ErrNotFound, "beer %s", id))
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID aborts with 400 when the :id segment is not a UUID.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.FromError(c, errs.NewValidationError("id", "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}
