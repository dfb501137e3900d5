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

const (
	HeaderInsertedNumber = "X-Inserted-Number"
	HeaderInsertedID     = "X-Inserted-Id"
	HeaderTotalCount     = "X-Total-Count"
)

// PolicyHandler handles HTTP requests for policies (apólices).

type PolicyHandler struct {
	usecase usecase.IPolicyUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc}
}

// CreatePolicy godoc
// @Summary      Issue a policy
// @Description  Creates an ativa policy and returns its generated numero.
// @Tags         policies
// @Accept       json
// @Produce      json
// @Param        policy  body      request.CreatePolicyRequest  true  "Initial terms"
// @Success      201     {object}  response.CreatePolicyResponse
// @Header       201     {string}  X-Inserted-Number  "numero of the new policy"
// @Failure      400     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Router       /policies [post]
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var payload request.CreatePolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[policy][handler] invalid payload err=%v", err)
		appErr := mapBindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		log.Printf("[policy][handler] invalid terms err=%v", err)
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	numero, err := h.usecase.Create(c.Request.Context(), input)
	if err != nil {
		log.Printf("[policy][handler] create failed err=%v", err)
		appErr := mapUseCaseError(err, "", "")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header(HeaderInsertedNumber, numero)
	c.JSON(http.StatusCreated, response.CreatePolicyResponse{Numero: numero})
}

// GetPolicy godoc
// @Summary      Get a policy
// @Tags         policies
// @Produce      json
// @Param        numero  path      string  true  "Policy numero"
// @Success      200     {object}  response.PolicyResponse
// @Failure      404     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Router       /policies/{numero} [get]
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	numero := c.Param("numero")

	p, err := h.usecase.GetByNumero(c.Request.Context(), numero)
	if err != nil {
		appErr := mapUseCaseError(err, numero, "")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicy(p))
}

// ListPolicies godoc
// @Summary      List policies
// @Tags         policies
// @Produce      json
// @Param        page                 query     int     false  "Page (default 1)"
// @Param        size                 query     int     false  "Page size 1..100 (default 10)"
// @Param        sort_by              query     string  false  "created_at | data_emissao | inicio_vigencia | fim_vigencia | importancia_segurada | numero"
// @Param        sort_order           query     string  false  "asc | desc (default desc)"
// @Param        status               query     string  false  "ativa | baixada"
// @Param        inicio_vigencia_gte  query     string  false  "YYYY-MM-DD"
// @Param        inicio_vigencia_lte  query     string  false  "YYYY-MM-DD"
// @Param        fim_vigencia_gte     query     string  false  "YYYY-MM-DD"
// @Param        fim_vigencia_lte     query     string  false  "YYYY-MM-DD"
// @Success      200                  {array}   response.PolicyResponse
// @Header       200                  {integer} X-Total-Count  "total matching policies"
// @Failure      422                  {object}  pkg.HTTPError
// @Router       /policies [get]
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	var q request.ListPoliciesQuery
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

	policies, total, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[policy][handler] list failed err=%v", err)
		appErr := mapUseCaseError(err, "", "")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header(HeaderTotalCount, strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromPolicies(policies))
}
