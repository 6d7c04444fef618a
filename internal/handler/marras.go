package handler

import (
	"net/http"

	"suinotrack/internal/apierror"
	"suinotrack/internal/dto"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
)

type MarrasHandler struct{ svc service.MarraService }

func NewMarrasHandler(svc service.MarraService) *MarrasHandler { return &MarrasHandler{svc: svc} }

// Criar godoc
// @Summary      Cadastrar marrã candidata
// @Tags         marras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarMarraRequest true "Dados da marrã"
// @Success      201  {object} dto.MarraResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/marras [post]
func (h *MarrasHandler) Criar(c *gin.Context) {
	var req dto.CriarMarraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar marrãs
// @Tags         marras
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Em Avaliação | Selecionada | Descartada"
// @Success      200  {array} dto.MarraResponse
// @Router       /v1/marras [get]
func (h *MarrasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar marrãs"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Avaliar godoc
// @Summary      Avaliar marrã para seleção
// @Description  Grava a avaliação e atualiza o status da marrã conforme a recomendação.
// @Tags         marras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AvaliarMarraRequest true "Avaliação"
// @Success      201  {object} model.SelecaoMarra
// @Failure      400  {object} apierror.APIError
// @Router       /v1/marras/avaliacoes [post]
func (h *MarrasHandler) Avaliar(c *gin.Context) {
	var req dto.AvaliarMarraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Avaliar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Descartar godoc
// @Summary      Descartar marrã
// @Tags         marras
// @Accept       json
// @Security     BearerAuth
// @Param        body body dto.DescartarMarraRequest true "Descarte"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Router       /v1/marras/descartes [post]
func (h *MarrasHandler) Descartar(c *gin.Context) {
	var req dto.DescartarMarraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Descartar(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// TaxaSelecao godoc
// @Summary      Taxa de seleção de marrãs
// @Tags         marras
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.TaxaSelecaoResponse
// @Router       /v1/marras/taxa-selecao [get]
func (h *MarrasHandler) TaxaSelecao(c *gin.Context) {
	resp, err := h.svc.TaxaSelecao(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao calcular taxa de seleção"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
