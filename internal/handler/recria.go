package handler

import (
	"net/http"

	"suinotrack/internal/apierror"
	"suinotrack/internal/dto"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
)

type RecriaHandler struct{ svc service.RecriaService }

func NewRecriaHandler(svc service.RecriaService) *RecriaHandler { return &RecriaHandler{svc: svc} }

// CriarLote godoc
// @Summary      Criar lote de recria
// @Tags         recria
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarLoteRecriaRequest true "Dados do lote"
// @Success      201  {object} dto.LoteRecriaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/recria/lotes [post]
func (h *RecriaHandler) CriarLote(c *gin.Context) {
	var req dto.CriarLoteRecriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarLote(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarLotes godoc
// @Summary      Listar lotes de recria
// @Tags         recria
// @Produce      json
// @Security     BearerAuth
// @Param        ativos query bool false "Somente lotes ativos (default true)"
// @Success      200  {array} dto.LoteRecriaResponse
// @Router       /v1/recria/lotes [get]
func (h *RecriaHandler) ListarLotes(c *gin.Context) {
	somenteAtivos := c.DefaultQuery("ativos", "true") == "true"
	resp, err := h.svc.ListarLotes(c.Request.Context(), somenteAtivos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar lotes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdicionarAnimal godoc
// @Summary      Adicionar animal a um lote de recria
// @Description  Recusa identificação já ativa em outro lote: um animal pertence a no máximo um lote ativo.
// @Tags         recria
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AdicionarAnimalRecriaRequest true "Animal e lote"
// @Success      201  {object} dto.AnimalRecriaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/recria/animais [post]
func (h *RecriaHandler) AdicionarAnimal(c *gin.Context) {
	var req dto.AdicionarAnimalRecriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdicionarAnimal(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarAnimais godoc
// @Summary      Listar animais do lote
// @Tags         recria
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string true  "UUID do lote"
// @Param        ativos query bool   false "Somente animais ativos (default true)"
// @Success      200  {array} dto.AnimalRecriaResponse
// @Router       /v1/recria/lotes/{id}/animais [get]
func (h *RecriaHandler) ListarAnimais(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	somenteAtivos := c.DefaultQuery("ativos", "true") == "true"
	resp, err := h.svc.ListarAnimais(c.Request.Context(), id, somenteAtivos)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarPesagem godoc
// @Summary      Registrar pesagem na recria
// @Description  Calcula ganho e GPD desde a pesagem anterior (ou a entrada do animal).
// @Tags         recria
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.PesagemRecriaRequest true "Pesagem"
// @Success      201  {object} dto.PesagemRecriaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/recria/pesagens [post]
func (h *RecriaHandler) RegistrarPesagem(c *gin.Context) {
	var req dto.PesagemRecriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPesagem(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// TransferirAnimal godoc
// @Summary      Transferir animal entre lotes
// @Description  Registra a pesagem de transferência e move o animal para o lote de destino em uma transação.
// @Tags         recria
// @Accept       json
// @Security     BearerAuth
// @Param        body body dto.TransferirAnimalRecriaRequest true "Transferência"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Router       /v1/recria/transferencias [post]
func (h *RecriaHandler) TransferirAnimal(c *gin.Context) {
	var req dto.TransferirAnimalRecriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.TransferirAnimal(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// RegistrarArracoamento godoc
// @Summary      Registrar arraçoamento do lote
// @Tags         recria
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ArracoamentoRequest true "Arraçoamento"
// @Success      201  {object} dto.ArracoamentoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/recria/arracoamentos [post]
func (h *RecriaHandler) RegistrarArracoamento(c *gin.Context) {
	var req dto.ArracoamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarArracoamento(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarMedicacao godoc
// @Summary      Registrar medicação individual ou coletiva
// @Tags         recria
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.MedicacaoRecriaRequest true "Medicação"
// @Success      201  {object} dto.MedicacaoRecriaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/recria/medicacoes [post]
func (h *RecriaHandler) RegistrarMedicacao(c *gin.Context) {
	var req dto.MedicacaoRecriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMedicacao(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// FinalizarAnimal godoc
// @Summary      Finalizar animal da recria
// @Description  Registra a pesagem terminal e fecha a passagem do animal (venda, abate ou morte).
// @Tags         recria
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do animal na recria"
// @Param        body body dto.FinalizarAnimalRecriaRequest true "Saída"
// @Success      200  {object} dto.AnimalRecriaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/recria/animais/{id}/finalizar [put]
func (h *RecriaHandler) FinalizarAnimal(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.FinalizarAnimalRecriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.FinalizarAnimal(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FinalizarLote godoc
// @Summary      Finalizar lote de recria
// @Description  Consolida os indicadores finais do lote: peso médio, GPD médio, mortalidade e conversão alimentar.
// @Tags         recria
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do lote"
// @Param        body body dto.FinalizarLoteRecriaRequest true "Fechamento"
// @Success      200  {object} dto.LoteRecriaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/recria/lotes/{id}/finalizar [put]
func (h *RecriaHandler) FinalizarLote(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.FinalizarLoteRecriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.FinalizarLote(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
