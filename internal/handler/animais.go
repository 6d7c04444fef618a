package handler

import (
	"net/http"

	"suinotrack/internal/apierror"
	"suinotrack/internal/dto"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
)

type AnimaisHandler struct{ svc service.AnimalService }

func NewAnimaisHandler(svc service.AnimalService) *AnimaisHandler {
	return &AnimaisHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar animal
// @Description  Cadastra um animal no plantel. Identificação (brinco/tatuagem) é única entre ativos.
// @Tags         animais
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarAnimalRequest true "Dados do animal"
// @Success      201  {object} dto.AnimalResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/animais [post]
func (h *AnimaisHandler) Criar(c *gin.Context) {
	var req dto.CriarAnimalRequest
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

// Buscar godoc
// @Summary      Buscar animal por ID
// @Tags         animais
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do animal"
// @Success      200  {object} dto.AnimalResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/animais/{id} [get]
func (h *AnimaisHandler) Buscar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Animal não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar animais
// @Tags         animais
// @Produce      json
// @Security     BearerAuth
// @Param        categoria     query string false "Matriz | Reprodutor | Leitão | Marrã | Rufião | Engorda"
// @Param        sexo          query string false "Fêmea | Macho"
// @Param        identificacao query string false "Busca parcial pela identificação"
// @Param        status        query string false "Ativo (default) | Removido | all"
// @Param        page          query int    false "Página (default 1)"
// @Param        limit         query int    false "Registros por página (default 50)"
// @Success      200  {object} dto.AnimalListResponse
// @Router       /v1/animais [get]
func (h *AnimaisHandler) Listar(c *gin.Context) {
	var filter dto.AnimalFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar animais"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar animal
// @Description  Atualização parcial: apenas os campos enviados são alterados.
// @Tags         animais
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do animal"
// @Param        body body dto.AtualizarAnimalRequest true "Campos a alterar"
// @Success      200  {object} dto.AnimalResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/animais/{id} [put]
func (h *AnimaisHandler) Atualizar(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarAnimalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remover godoc
// @Summary      Remover animal do plantel
// @Description  Remoção lógica: o animal sai das listagens ativas mas o histórico permanece.
// @Tags         animais
// @Security     BearerAuth
// @Param        id path string true "UUID do animal"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Router       /v1/animais/{id} [delete]
func (h *AnimaisHandler) Remover(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// RegistrarPeso godoc
// @Summary      Registrar pesagem avulsa
// @Tags         animais
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarPesoRequest true "Pesagem"
// @Success      201
// @Failure      400  {object} apierror.APIError
// @Router       /v1/animais/pesos [post]
func (h *AnimaisHandler) RegistrarPeso(c *gin.Context) {
	var req dto.RegistrarPesoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RegistrarPeso(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusCreated)
}

// ListarPesos godoc
// @Summary      Histórico de pesagens do animal
// @Tags         animais
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do animal"
// @Success      200  {array} model.RegistroPeso
// @Router       /v1/animais/{id}/pesos [get]
func (h *AnimaisHandler) ListarPesos(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	pesos, err := h.svc.ListarPesos(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, pesos)
}
