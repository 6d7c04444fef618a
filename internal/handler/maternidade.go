package handler

import (
	"net/http"

	"suinotrack/internal/apierror"
	"suinotrack/internal/dto"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
)

type MaternidadeHandler struct{ svc service.MaternidadeService }

func NewMaternidadeHandler(svc service.MaternidadeService) *MaternidadeHandler {
	return &MaternidadeHandler{svc: svc}
}

// Abrir godoc
// @Summary      Abrir maternidade
// @Description  Interna a matriz na baia de maternidade e abre a estadia. Uma matriz só pode ter uma maternidade ativa.
// @Tags         maternidade
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AbrirMaternidadeRequest true "Matriz e baia"
// @Success      201  {object} dto.MaternidadeResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/maternidade [post]
func (h *MaternidadeHandler) Abrir(c *gin.Context) {
	var req dto.AbrirMaternidadeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Abrir(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarLeitegada godoc
// @Summary      Registrar leitegada
// @Description  Exige total_nascidos = nascidos_vivos + natimortos + mumificados. Uma leitegada por maternidade.
// @Tags         maternidade
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarLeitegadaRequest true "Dados do parto"
// @Success      201  {object} dto.LeitegadaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/maternidade/leitegadas [post]
func (h *MaternidadeHandler) RegistrarLeitegada(c *gin.Context) {
	var req dto.RegistrarLeitegadaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarLeitegada(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarLeitoes godoc
// @Summary      Registrar leitões da leitegada
// @Tags         maternidade
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarLeitoesRequest true "Lote de leitões"
// @Success      201  {array} dto.LeitaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/maternidade/leitoes [post]
func (h *MaternidadeHandler) RegistrarLeitoes(c *gin.Context) {
	var req dto.RegistrarLeitoesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarLeitoes(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AtualizarLeitao godoc
// @Summary      Atualizar leitão
// @Description  Atualiza peso atual e status (Vivo | Morto | Desmamado) de um leitão.
// @Tags         maternidade
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do leitão"
// @Param        body body dto.AtualizarLeitaoRequest true "Campos a alterar"
// @Success      200  {object} dto.LeitaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/maternidade/leitoes/{id} [put]
func (h *MaternidadeHandler) AtualizarLeitao(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarLeitaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarLeitao(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarLeitoes godoc
// @Summary      Listar leitões da leitegada
// @Tags         maternidade
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da leitegada"
// @Success      200  {array} dto.LeitaoResponse
// @Router       /v1/maternidade/leitegadas/{id}/leitoes [get]
func (h *MaternidadeHandler) ListarLeitoes(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarLeitoes(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CalcularMetricas godoc
// @Summary      Métricas de desmame da leitegada
// @Description  Calcula idade média, peso médio e GMD dos leitões vivos. Retorna zeros quando algum vivo está sem pesagem.
// @Tags         maternidade
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da leitegada"
// @Success      200  {object} dto.MetricasDesmameResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/maternidade/leitegadas/{id}/metricas [get]
func (h *MaternidadeHandler) CalcularMetricas(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.CalcularMetricas(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarDesmame godoc
// @Summary      Registrar desmame
// @Description  Executa a cascata em uma transação: grava o desmame, marca os leitões, finaliza a maternidade, devolve a matriz ao plantel e aloca o lote quando o destino é Creche.
// @Tags         maternidade
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarDesmameRequest true "Dados do desmame"
// @Success      201  {object} dto.DesmameResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/maternidade/desmames [post]
func (h *MaternidadeHandler) RegistrarDesmame(c *gin.Context) {
	var req dto.RegistrarDesmameRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarDesmame(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
