package handlers

import (
	"log"
	"net/http"
	"strconv"

	request "apolices_xpto/internal/adapter/http/dto/request"
	response "apolices_xpto/internal/adapter/http/dto/response"
	"apolices_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EndorsementHandler handles HTTP requests for endorsements (endossos) of a policy.
//
// Endorsements are append-only: POST either amends the policy terms or, when
// the body carries no term change, cancels the latest valid endorsement.

type EndorsementHandler struct {
	usecase usecase.IEndorsementUseCase
}

func NewEndorsementHandler(uc usecase.IEndorsementUseCase) *EndorsementHandler {
	return &EndorsementHandler{usecase: uc}
}

// CreateEndorsement godoc
// @Summary      Append an endorsement
// @Description  The tipo is inferred from the delta. A body with no term change cancels the latest valid endorsement.
// @Tags         endorsements
// @Accept       json
// @Produce      json
// @Param        numero       path      string                             true  "Policy numero"
// @Param        endorsement  body      request.CreateEndorsementRequest  true  "Requested change"
// @Success      201          {object}  response.CreateEndorsementResponse
// @Header       201          {string}  X-Inserted-Id  "id of the new endorsement"
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Failure      422          {object}  pkg.HTTPError
// @Router       /policies/{numero}/endorsements [post]
func (h *EndorsementHandler) CreateEndorsement(c *gin.Context) {
	numero := c.Param("numero")

	var payload request.CreateEndorsementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[endorsement][handler] invalid payload numero=%s err=%v", numero, err)
		appErr := mapBindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	delta, err := payload.ToDelta()
	if err != nil {
		log.Printf("[endorsement][handler] invalid delta numero=%s err=%v", numero, err)
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	id, err := h.usecase.Create(c.Request.Context(), numero, delta)
	if err != nil {
		log.Printf("[endorsement][handler] create failed numero=%s err=%v", numero, err)
		appErr := mapUseCaseError(err, numero, "")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header(HeaderInsertedID, id)
	c.JSON(http.StatusCreated, response.CreateEndorsementResponse{ID: id})
}

// GetEndorsement godoc
// @Summary      Get an endorsement
// @Tags         endorsements
// @Produce      json
// @Param        numero  path      string  true  "Policy numero"
// @Param        id      path      string  true  "Endorsement id"
// @Success      200     {object}  response.EndorsementResponse
// @Failure      404     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Router       /policies/{numero}/endorsements/{id} [get]
func (h *EndorsementHandler) GetEndorsement(c *gin.Context) {
	numero, id := c.Param("numero"), c.Param("id")

	e, err := h.usecase.GetByID(c.Request.Context(), numero, id)
	if err != nil {
		appErr := mapUseCaseError(err, numero, id)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEndorsement(numero, e))
}

// ListEndorsements godoc
// @Summary      List the endorsements of a policy
// @Tags         endorsements
// @Produce      json
// @Param        numero            path      string  true   "Policy numero"
// @Param        page              query     int     false  "Page (default 1)"
// @Param        size              query     int     false  "Page size 1..100 (default 10)"
// @Param        sort_by           query     string  false  "created_at | data_emissao | tipo | importancia_segurada"
// @Param        sort_order        query     string  false  "asc | desc (default desc)"
// @Param        tipo              query     string  false  "Endorsement tipo"
// @Param        data_emissao_gte  query     string  false  "YYYY-MM-DD"
// @Param        data_emissao_lte  query     string  false  "YYYY-MM-DD"
// @Success      200               {array}   response.EndorsementResponse
// @Header       200               {integer} X-Total-Count  "total matching endorsements"
// @Failure      404               {object}  pkg.HTTPError
// @Failure      422               {object}  pkg.HTTPError
// @Router       /policies/{numero}/endorsements [get]
func (h *EndorsementHandler) ListEndorsements(c *gin.Context) {
	numero := c.Param("numero")

	var q request.ListEndorsementsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		appErr := mapBindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	endorsements, total, err := h.usecase.List(c.Request.Context(), numero, filter)
	if err != nil {
		log.Printf("[endorsement][handler] list failed numero=%s err=%v", numero, err)
		appErr := mapUseCaseError(err, numero, "")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header(HeaderTotalCount, strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromEndorsements(numero, endorsements))
}
