package handler

import (
	"net/http"

	"suinotrack/internal/apierror"
	"suinotrack/internal/dto"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
)

type BaiasHandler struct{ svc service.BaiaService }

func NewBaiasHandler(svc service.BaiaService) *BaiasHandler { return &BaiasHandler{svc: svc} }

// Criar godoc
// @Summary      Cadastrar baia
// @Tags         baias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarBaiaRequest true "Dados da baia"
// @Success      201  {object} dto.BaiaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/baias [post]
func (h *BaiasHandler) Criar(c *gin.Context) {
	var req dto.CriarBaiaRequest
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
// @Summary      Listar baias
// @Tags         baias
// @Produce      json
// @Security     BearerAuth
// @Param        setor query string false "Gestação | Maternidade | Creche | Recria | Terminação"
// @Success      200  {array} dto.BaiaResponse
// @Router       /v1/baias [get]
func (h *BaiasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("setor"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar baias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Disponibilidade godoc
// @Summary      Baias com vaga para a categoria
// @Description  Restringe ao setor recomendado para a categoria e retorna apenas baias com capacidade livre.
// @Tags         baias
// @Produce      json
// @Security     BearerAuth
// @Param        categoria query string true "Categoria do animal"
// @Success      200  {array} dto.DisponibilidadeItem
// @Router       /v1/baias/disponibilidade [get]
func (h *BaiasHandler) Disponibilidade(c *gin.Context) {
	resp, err := h.svc.Disponibilidade(c.Request.Context(), c.Query("categoria"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Alocar godoc
// @Summary      Alocar animal ou lote em baia
// @Description  Recusa alocações acima da capacidade. Exige exatamente um entre animal_id e lote_descricao.
// @Tags         baias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AlocarRequest true "Alocação"
// @Success      201  {object} dto.AlocacaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/baias/alocacoes [post]
func (h *BaiasHandler) Alocar(c *gin.Context) {
	var req dto.AlocarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Alocar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Liberar godoc
// @Summary      Encerrar alocação
// @Tags         baias
// @Accept       json
// @Security     BearerAuth
// @Param        id   path string true "UUID da alocação"
// @Param        body body dto.LiberarAlocacaoRequest true "Motivo da saída"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Router       /v1/baias/alocacoes/{id} [delete]
func (h *BaiasHandler) Liberar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.LiberarAlocacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Liberar(c.Request.Context(), id, req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarAlocacoes godoc
// @Summary      Listar alocações de uma baia
// @Tags         baias
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string true  "UUID da baia"
// @Param        ativas query bool   false "Somente alocações ativas (default true)"
// @Success      200  {array} dto.AlocacaoResponse
// @Router       /v1/baias/{id}/alocacoes [get]
func (h *BaiasHandler) ListarAlocacoes(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	somenteAtivas := c.DefaultQuery("ativas", "true") == "true"
	resp, err := h.svc.ListarAlocacoes(c.Request.Context(), id, somenteAtivas)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
