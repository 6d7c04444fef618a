package handler

import (
	"net/http"

	"suinotrack/internal/apierror"
	"suinotrack/internal/dto"
	"suinotrack/internal/middleware"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SincronizacaoHandler struct{ svc service.SincronizacaoService }

func NewSincronizacaoHandler(svc service.SincronizacaoService) *SincronizacaoHandler {
	return &SincronizacaoHandler{svc: svc}
}

// Importar godoc
// @Summary      Importar coleções do cliente offline
// @Description  Upsert por (coleção, id). Reenviar o mesmo lote é idempotente: linhas existentes são sobrescritas, não duplicadas.
// @Tags         sincronizacao
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ImportarRequest true "Coleções e timestamp do cliente"
// @Success      200  {object} dto.ImportarResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sincronizacao/importar [post]
func (h *SincronizacaoHandler) Importar(c *gin.Context) {
	var req dto.ImportarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.FuncionarioID)

	resp, err := h.svc.Importar(c.Request.Context(), usuarioID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Exportar godoc
// @Summary      Exportar coleções para o cliente offline
// @Description  Coleções inexistentes retornam tabelas vazias, nunca erro.
// @Tags         sincronizacao
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ExportarRequest true "Coleções solicitadas"
// @Success      200  {object} dto.ExportarResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sincronizacao/exportar [post]
func (h *SincronizacaoHandler) Exportar(c *gin.Context) {
	var req dto.ExportarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.FuncionarioID)

	resp, err := h.svc.Exportar(c.Request.Context(), usuarioID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarColecoes godoc
// @Summary      Listar coleções sincronizadas do usuário
// @Tags         sincronizacao
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} string
// @Router       /v1/sincronizacao/colecoes [get]
func (h *SincronizacaoHandler) ListarColecoes(c *gin.Context) {
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.FuncionarioID)

	resp, err := h.svc.ListarColecoes(c.Request.Context(), usuarioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar coleções"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
