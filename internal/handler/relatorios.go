package handler

import (
	"net/http"
	"strconv"
	"time"

	"suinotrack/internal/apierror"
	"suinotrack/internal/calendario"
	"suinotrack/internal/dto"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// Painel godoc
// @Summary      Painel geral da granja
// @Description  Contadores do plantel, gestações abertas, maternidades ativas, lotes de creche, próximos cios e partos previstos.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.PainelResponse
// @Router       /v1/relatorios/painel [get]
func (h *RelatoriosHandler) Painel(c *gin.Context) {
	resp, err := h.svc.Painel(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao montar o painel"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CalendarioSuino godoc
// @Summary      Conversão do calendário suíno
// @Description  Converte uma data civil para o dia suíno cíclico (1..1000) ou, informando dia e ano, o caminho inverso. Sem parâmetros retorna o dia de hoje.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Param        data query string false "Data civil YYYY-MM-DD"
// @Param        dia  query int    false "Dia suíno 1..1000"
// @Param        ano  query int    false "Ano de referência para o caminho inverso (default: ano corrente)"
// @Success      200  {object} dto.CalendarioSuinoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/calendario [get]
func (h *RelatoriosHandler) CalendarioSuino(c *gin.Context) {
	if diaStr := c.Query("dia"); diaStr != "" {
		dia, err := strconv.Atoi(diaStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Parâmetro dia inválido"))
			return
		}
		ano := time.Now().Year()
		if anoStr := c.Query("ano"); anoStr != "" {
			if ano, err = strconv.Atoi(anoStr); err != nil {
				c.JSON(http.StatusBadRequest, apierror.New("Parâmetro ano inválido"))
				return
			}
		}
		data, err := calendario.SuinoParaCivil(dia, ano)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusOK, dto.CalendarioSuinoResponse{
			Data:     data.Format("2006-01-02"),
			DiaSuino: dia,
		})
		return
	}

	data := time.Now()
	if dataStr := c.Query("data"); dataStr != "" {
		var err error
		if data, err = time.Parse("2006-01-02", dataStr); err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Data inválida, use YYYY-MM-DD"))
			return
		}
	}
	c.JSON(http.StatusOK, dto.CalendarioSuinoResponse{
		Data:     data.Format("2006-01-02"),
		DiaSuino: calendario.CivilParaSuino(data),
	})
}

// RelatorioDesmames godoc
// @Summary      Relatório de desmames do período
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Param        inicio query string false "Data inicial YYYY-MM-DD (default: 30 dias atrás)"
// @Param        fim    query string false "Data final YYYY-MM-DD (default: hoje)"
// @Success      200  {object} dto.RelatorioDesmameResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/relatorios/desmames [get]
func (h *RelatoriosHandler) RelatorioDesmames(c *gin.Context) {
	inicio, fim, ok := periodoQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.RelatorioDesmames(c.Request.Context(), inicio, fim)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EnviarRelatorioDesmames godoc
// @Summary      Enviar relatório de desmames por e-mail
// @Description  Gera o PDF do período e o envia como anexo para o destinatário informado.
// @Tags         relatorios
// @Accept       json
// @Security     BearerAuth
// @Param        body body dto.EnviarRelatorioRequest true "Destinatário e período"
// @Success      202
// @Failure      400  {object} apierror.APIError
// @Router       /v1/relatorios/desmames/enviar [post]
func (h *RelatoriosHandler) EnviarRelatorioDesmames(c *gin.Context) {
	var req dto.EnviarRelatorioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarRelatorioDesmames(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusAccepted)
}
