package handler

import (
	"net/http"

	"suinotrack/internal/apierror"
	"suinotrack/internal/dto"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
)

type SanidadeHandler struct{ svc service.SanidadeService }

func NewSanidadeHandler(svc service.SanidadeService) *SanidadeHandler {
	return &SanidadeHandler{svc: svc}
}

// CriarVacina godoc
// @Summary      Cadastrar vacina
// @Tags         sanidade
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarVacinaRequest true "Dados da vacina"
// @Success      201  {object} dto.VacinaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sanidade/vacinas [post]
func (h *SanidadeHandler) CriarVacina(c *gin.Context) {
	var req dto.CriarVacinaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarVacina(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarVacinas godoc
// @Summary      Listar vacinas
// @Tags         sanidade
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.VacinaResponse
// @Router       /v1/sanidade/vacinas [get]
func (h *SanidadeHandler) ListarVacinas(c *gin.Context) {
	resp, err := h.svc.ListarVacinas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar vacinas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CriarProtocolo godoc
// @Summary      Cadastrar protocolo de vacinação
// @Description  Vincula uma vacina a uma categoria com idade de aplicação e intervalo de reforço.
// @Tags         sanidade
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarProtocoloRequest true "Protocolo"
// @Success      201  {object} model.ProtocoloVacinacao
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sanidade/protocolos [post]
func (h *SanidadeHandler) CriarProtocolo(c *gin.Context) {
	var req dto.CriarProtocoloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarProtocolo(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarVacinacao godoc
// @Summary      Registrar aplicação de vacina
// @Tags         sanidade
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVacinacaoRequest true "Aplicação"
// @Success      201  {object} model.RegistroVacinacao
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sanidade/vacinacoes [post]
func (h *SanidadeHandler) RegistrarVacinacao(c *gin.Context) {
	var req dto.RegistrarVacinacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarVacinacao(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ProximasVacinacoes godoc
// @Summary      Vacinações pendentes do animal
// @Description  Cruza os protocolos da categoria com o histórico de aplicações, respeitando idade mínima e intervalo de reforço.
// @Tags         sanidade
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do animal"
// @Success      200  {array} dto.ProximaVacinacaoItem
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sanidade/animais/{id}/proximas-vacinacoes [get]
func (h *SanidadeHandler) ProximasVacinacoes(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ProximasVacinacoes(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarMortalidade godoc
// @Summary      Registrar morte de animal
// @Description  Grava o óbito com causa e local e remove o animal do plantel ativo.
// @Tags         sanidade
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarMortalidadeRequest true "Óbito"
// @Success      201  {object} model.RegistroMortalidade
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sanidade/mortalidade [post]
func (h *SanidadeHandler) RegistrarMortalidade(c *gin.Context) {
	var req dto.RegistrarMortalidadeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMortalidade(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// EstatisticasMortalidade godoc
// @Summary      Estatísticas de mortalidade do período
// @Tags         sanidade
// @Produce      json
// @Security     BearerAuth
// @Param        inicio    query string false "Data inicial YYYY-MM-DD (default: 30 dias atrás)"
// @Param        fim       query string false "Data final YYYY-MM-DD (default: hoje)"
// @Param        categoria query string false "Filtrar por categoria"
// @Success      200  {object} dto.EstatisticasMortalidadeResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sanidade/mortalidade/estatisticas [get]
func (h *SanidadeHandler) EstatisticasMortalidade(c *gin.Context) {
	var filter dto.MortalidadeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.EstatisticasMortalidade(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
