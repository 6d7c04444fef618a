package handler

import (
	"net/http"

	"suinotrack/internal/apierror"
	"suinotrack/internal/dto"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
)

type CrecheHandler struct{ svc service.CrecheService }

func NewCrecheHandler(svc service.CrecheService) *CrecheHandler { return &CrecheHandler{svc: svc} }

// FormarLote godoc
// @Summary      Formar lote de creche
// @Description  Cria o lote com o movimento de entrada e a alocação na baia em uma transação. Um desmame só pode originar um lote.
// @Tags         creche
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.FormarLoteCrecheRequest true "Dados do lote"
// @Success      201  {object} dto.LoteCrecheResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/creche/lotes [post]
func (h *CrecheHandler) FormarLote(c *gin.Context) {
	var req dto.FormarLoteCrecheRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.FormarLote(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarLotes godoc
// @Summary      Listar lotes de creche
// @Tags         creche
// @Produce      json
// @Security     BearerAuth
// @Param        ativos query bool false "Somente lotes ativos (default true)"
// @Success      200  {array} dto.LoteCrecheResponse
// @Router       /v1/creche/lotes [get]
func (h *CrecheHandler) ListarLotes(c *gin.Context) {
	somenteAtivos := c.DefaultQuery("ativos", "true") == "true"
	resp, err := h.svc.ListarLotes(c.Request.Context(), somenteAtivos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar lotes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DetalharLote godoc
// @Summary      Detalhar lote com o livro de movimentos
// @Tags         creche
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do lote"
// @Success      200  {object} dto.LoteCrecheDetalheResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/creche/lotes/{id} [get]
func (h *CrecheHandler) DetalharLote(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.DetalharLote(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Lote não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarPesagem godoc
// @Summary      Registrar pesagem do lote
// @Description  Calcula o GPD contra a pesagem anterior (ou a entrada) e atualiza o peso médio corrente.
// @Tags         creche
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do lote"
// @Param        body body dto.PesagemCrecheRequest true "Pesagem"
// @Success      201  {object} dto.MovimentoCrecheResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/creche/lotes/{id}/pesagens [post]
func (h *CrecheHandler) RegistrarPesagem(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.PesagemCrecheRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPesagem(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarMortalidade godoc
// @Summary      Registrar mortalidade no lote
// @Tags         creche
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do lote"
// @Param        body body dto.MortalidadeCrecheRequest true "Mortes"
// @Success      200  {object} dto.LoteCrecheResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/creche/lotes/{id}/mortalidade [post]
func (h *CrecheHandler) RegistrarMortalidade(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.MortalidadeCrecheRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMortalidade(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarMedicacao godoc
// @Summary      Registrar medicação do lote
// @Tags         creche
// @Accept       json
// @Security     BearerAuth
// @Param        id   path string true "UUID do lote"
// @Param        body body dto.MedicacaoCrecheRequest true "Medicação"
// @Success      201
// @Failure      400  {object} apierror.APIError
// @Router       /v1/creche/lotes/{id}/medicacoes [post]
func (h *CrecheHandler) RegistrarMedicacao(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.MedicacaoCrecheRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RegistrarMedicacao(c.Request.Context(), id, req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusCreated)
}

// RegistrarSaida godoc
// @Summary      Registrar saída ou transferência do lote
// @Description  A saída da quantidade total finaliza o lote, encerra a alocação da baia e fecha o período.
// @Tags         creche
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do lote"
// @Param        body body dto.SaidaCrecheRequest true "Saída"
// @Success      200  {object} dto.LoteCrecheResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/creche/lotes/{id}/saida [post]
func (h *CrecheHandler) RegistrarSaida(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.SaidaCrecheRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarSaida(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
