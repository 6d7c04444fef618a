package handler

import (
	"net/http"
	"time"

	"suinotrack/internal/apierror"
	"suinotrack/internal/dto"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
)

type ReproducaoHandler struct{ svc service.ReproducaoService }

func NewReproducaoHandler(svc service.ReproducaoService) *ReproducaoHandler {
	return &ReproducaoHandler{svc: svc}
}

// RegistrarCio godoc
// @Summary      Registrar ciclo de cio
// @Description  Abre um novo ciclo para a fêmea com número sequencial por animal.
// @Tags         reproducao
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarCioRequest true "Dados do cio"
// @Success      201  {object} dto.CicloResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reproducao/cios [post]
func (h *ReproducaoHandler) RegistrarCio(c *gin.Context) {
	var req dto.RegistrarCioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarCio(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarCiclos godoc
// @Summary      Listar ciclos da fêmea
// @Tags         reproducao
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da fêmea"
// @Success      200  {array} dto.CicloResponse
// @Router       /v1/reproducao/animais/{id}/ciclos [get]
func (h *ReproducaoHandler) ListarCiclos(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarCiclos(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarInseminacao godoc
// @Summary      Registrar inseminação
// @Description  Vincula a dose ao ciclo aberto mais recente dentro da janela de ±5 dias e o marca como Inseminado.
// @Tags         reproducao
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarInseminacaoRequest true "Dados da inseminação"
// @Success      201  {object} dto.InseminacaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reproducao/inseminacoes [post]
func (h *ReproducaoHandler) RegistrarInseminacao(c *gin.Context) {
	var req dto.RegistrarInseminacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarInseminacao(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AbrirGestacao godoc
// @Summary      Abrir gestação
// @Description  Abre a gestação com previsão de parto fixada em cobertura + 114 dias.
// @Tags         reproducao
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AbrirGestacaoRequest true "Data de cobertura"
// @Success      201  {object} dto.GestacaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reproducao/gestacoes [post]
func (h *ReproducaoHandler) AbrirGestacao(c *gin.Context) {
	var req dto.AbrirGestacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AbrirGestacao(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarParto godoc
// @Summary      Registrar parto
// @Description  Fecha a gestação com a data real; a previsão original é preservada para análise de desvio.
// @Tags         reproducao
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID da gestação"
// @Param        body body dto.RegistrarPartoRequest true "Data do parto"
// @Success      200  {object} dto.GestacaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reproducao/gestacoes/{id}/parto [put]
func (h *ReproducaoHandler) RegistrarParto(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.RegistrarPartoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarParto(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarCioRufiao godoc
// @Summary      Registrar detecção de cio por rufião
// @Tags         reproducao
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarCioRufiaoRequest true "Detecção"
// @Success      201  {object} model.RegistroCio
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reproducao/deteccoes [post]
func (h *ReproducaoHandler) RegistrarCioRufiao(c *gin.Context) {
	var req dto.RegistrarCioRufiaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarCioRufiao(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AnalisarIntervalos godoc
// @Summary      Análise de intervalos entre cios confirmados
// @Tags         reproducao
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da fêmea"
// @Success      200  {object} dto.AnaliseIntervaloResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reproducao/animais/{id}/intervalos [get]
func (h *ReproducaoHandler) AnalisarIntervalos(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.AnalisarIntervalos(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PreverProximoCio godoc
// @Summary      Previsão do próximo cio
// @Description  Projeta o próximo cio pelo intervalo médio observado; confiança Alta quando a média fica entre 20 e 22 dias.
// @Tags         reproducao
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da fêmea"
// @Success      200  {object} dto.PrevisaoCioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reproducao/animais/{id}/previsao-cio [get]
func (h *ReproducaoHandler) PreverProximoCio(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.PreverProximoCio(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RelatorioCios godoc
// @Summary      Relatório de cios do período
// @Tags         reproducao
// @Produce      json
// @Security     BearerAuth
// @Param        inicio query string true "Data inicial YYYY-MM-DD"
// @Param        fim    query string true "Data final YYYY-MM-DD"
// @Success      200  {array} dto.RegistroCioItem
// @Failure      400  {object} apierror.APIError
// @Router       /v1/reproducao/cios/relatorio [get]
func (h *ReproducaoHandler) RelatorioCios(c *gin.Context) {
	inicio, fim, ok := periodoQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.RelatorioCios(c.Request.Context(), inicio, fim)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProximosCios godoc
// @Summary      Cios previstos até a data limite
// @Tags         reproducao
// @Produce      json
// @Security     BearerAuth
// @Param        ate query string false "Data limite YYYY-MM-DD (default: hoje + 7 dias)"
// @Success      200  {array} dto.ProximoCioItem
// @Router       /v1/reproducao/proximos-cios [get]
func (h *ReproducaoHandler) ProximosCios(c *gin.Context) {
	ate := time.Now().AddDate(0, 0, 7)
	if raw := c.Query("ate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("ate inválido, use YYYY-MM-DD"))
			return
		}
		ate = parsed
	}
	resp, err := h.svc.ProximosCios(c.Request.Context(), ate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao calcular próximos cios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PartosPrevistos godoc
// @Summary      Partos previstos das gestações abertas
// @Tags         reproducao
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.PartoPrevistoItem
// @Router       /v1/reproducao/partos-previstos [get]
func (h *ReproducaoHandler) PartosPrevistos(c *gin.Context) {
	resp, err := h.svc.PartosPrevistos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar partos previstos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// periodoQuery parses inicio/fim query params, defaulting to the last 30 days.
func periodoQuery(c *gin.Context) (time.Time, time.Time, bool) {
	fim := time.Now()
	inicio := fim.AddDate(0, 0, -30)

	if raw := c.Query("inicio"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("inicio inválido, use YYYY-MM-DD"))
			return time.Time{}, time.Time{}, false
		}
		inicio = parsed
	}
	if raw := c.Query("fim"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("fim inválido, use YYYY-MM-DD"))
			return time.Time{}, time.Time{}, false
		}
		fim = parsed
	}
	if fim.Before(inicio) {
		c.JSON(http.StatusBadRequest, apierror.New("fim não pode ser anterior a inicio"))
		return time.Time{}, time.Time{}, false
	}
	return inicio, fim, true
}
