package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/vendas-api/internal/adapter/api/dto"
	"github.com/hugohenrick/vendas-api/internal/application/sales"
	"github.com/hugohenrick/vendas-api/pkg/apperror"
	"github.com/hugohenrick/vendas-api/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	service *sales.Service
	logger  logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(service *sales.Service, logger logger.Logger) *SaleController {
	return &SaleController{
		service: service,
		logger:  logger,
	}
}

// Create cria uma nova venda
// @Summary Criar venda
// @Description Cria uma nova venda com os itens informados
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.CreateSaleRequest true "Dados da venda"
// @Success 201 {object} dto.CreateSaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	result, err := c.service.Create(ctx, req.ToCreateSaleCommand())
	if err != nil {
		c.respondError(ctx, "erro ao criar venda", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateSaleResponse(result))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda pelo ID
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	result, err := c.service.Get(ctx, sales.GetSaleQuery{ID: ctx.Param("id")})
	if err != nil {
		c.respondError(ctx, "erro ao buscar venda", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(result))
}

// List retorna todas as vendas
// @Summary Listar vendas
// @Description Retorna todas as vendas, sem filtro ou paginação
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SaleListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	results, err := c.service.List(ctx)
	if err != nil {
		c.respondError(ctx, "erro ao listar vendas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(results))
}

// Update atualiza os itens de uma venda
// @Summary Atualizar venda
// @Description Atualiza os itens de uma venda (adiciona, altera ou cancela)
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param sale body dto.UpdateSaleRequest true "Itens da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	var req dto.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	// O ID do corpo deve corresponder ao da rota
	if req.ID != ctx.Param("id") {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "o ID da rota não corresponde ao ID da venda"))
		return
	}

	result, err := c.service.Update(ctx, req.ToUpdateSaleCommand())
	if err != nil {
		c.respondError(ctx, "erro ao atualizar venda", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(result))
}

// Cancel cancela uma venda
// @Summary Cancelar venda
// @Description Cancela uma venda (exclusão lógica)
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.CancelSaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [patch]
func (c *SaleController) Cancel(ctx *gin.Context) {
	result, err := c.service.Cancel(ctx, sales.CancelSaleCommand{ID: ctx.Param("id")})
	if err != nil {
		c.respondError(ctx, "erro ao cancelar venda", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCancelSaleResponse(result))
}

// respondError traduz a taxonomia de erros da aplicação para HTTP
func (c *SaleController) respondError(ctx *gin.Context, message string, err error) {
	var validationErr *apperror.ValidationError
	var notFoundErr *apperror.NotFoundError
	var businessErr *apperror.BusinessRuleError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, validationErr.Messages...))
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, message, notFoundErr.Error()))
	case errors.As(err, &businessErr):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, businessErr.Message))
	default:
		c.logger.Error(message, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
	}
}
