package handler

import (
	"net/http"

	"suinotrack/internal/apierror"
	"suinotrack/internal/dto"
	"suinotrack/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Login por matrícula
// @Description  Autentica o funcionário pela matrícula e retorna o token JWT com o papel embutido.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Matrícula do funcionário"
// @Success      200  {object} dto.LoginResponse
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarFuncionario godoc
// @Summary      Cadastrar funcionário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarFuncionarioRequest true "Dados do funcionário"
// @Success      201  {object} dto.FuncionarioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/funcionarios [post]
func (h *AuthHandler) RegistrarFuncionario(c *gin.Context) {
	var req dto.RegistrarFuncionarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarFuncionario(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarFuncionarios godoc
// @Summary      Listar funcionários
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.FuncionarioResponse
// @Router       /v1/funcionarios [get]
func (h *AuthHandler) ListarFuncionarios(c *gin.Context) {
	resp, err := h.svc.ListarFuncionarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar funcionários"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AlterarStatus godoc
// @Summary      Ativar ou inativar funcionário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do funcionário"
// @Param        body body dto.AlterarStatusFuncionarioRequest true "Novo status"
// @Success      200  {object} dto.FuncionarioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/funcionarios/{id}/status [put]
func (h *AuthHandler) AlterarStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.AlterarStatusFuncionarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AlterarStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DefinirPermissoes godoc
// @Summary      Definir permissões de um papel
// @Description  Sobrescreve o conjunto de permissões do papel. Papéis sem registro usam os padrões embutidos.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.PermissaoPapelRequest true "Papel e permissões"
// @Success      200  {object} dto.PermissaoPapelResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/permissoes [put]
func (h *AuthHandler) DefinirPermissoes(c *gin.Context) {
	var req dto.PermissaoPapelRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.DefinirPermissoes(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPermissoes godoc
// @Summary      Listar permissões por papel
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.PermissaoPapelResponse
// @Router       /v1/permissoes [get]
func (h *AuthHandler) ListarPermissoes(c *gin.Context) {
	resp, err := h.svc.ListarPermissoes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar permissões"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
