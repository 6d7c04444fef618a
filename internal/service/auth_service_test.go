package service

import (
	"context"
	"testing"
	"time"

	"suinotrack/internal/config"
	"suinotrack/internal/dto"
	"suinotrack/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoAuthTeste() (*stubFuncionarioRepo, AuthService) {
	repo := newStubFuncionarioRepo()
	cfg := &config.Config{JWTSecret: "segredo-de-teste", JWTExpirationHours: 8}
	return repo, NewAuthService(repo, cfg)
}

func criarFuncionario(repo *stubFuncionarioRepo, matricula, papel, status string) *model.Funcionario {
	f := &model.Funcionario{
		ID:           uuid.New(),
		NomeCompleto: "Funcionário " + matricula,
		Matricula:    matricula,
		Papel:        papel,
		Setor:        "Produção",
		DataAdmissao: time.Now().AddDate(-1, 0, 0),
		Status:       status,
	}
	repo.funcionarios[f.ID] = f
	return f
}

func TestLoginGeraTokenEStampaAcesso(t *testing.T) {
	repo, svc := novoAuthTeste()
	f := criarFuncionario(repo, "0042", "Técnico", model.FuncionarioAtivo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Matricula: "0042"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	require.NotNil(t, f.UltimoAcesso)

	token, err := jwt.Parse(resp.AccessToken, func(tk *jwt.Token) (interface{}, error) {
		return []byte("segredo-de-teste"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "0042", claims["matricula"])
	assert.Equal(t, "Técnico", claims["papel"])
	assert.Equal(t, f.ID.String(), claims["funcionario_id"])
}

func TestLoginRejeitaInativoEDesconhecido(t *testing.T) {
	repo, svc := novoAuthTeste()
	criarFuncionario(repo, "0050", "Operador", model.FuncionarioFerias)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Matricula: "0050"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inativo")

	_, err = svc.Login(context.Background(), dto.LoginRequest{Matricula: "9999"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matrícula")
}

func TestTemPermissaoComPadroes(t *testing.T) {
	_, svc := novoAuthTeste()
	ctx := context.Background()

	// No tags means any authenticated employee
	assert.True(t, svc.TemPermissao(ctx, "Visitante"))

	assert.True(t, svc.TemPermissao(ctx, "Técnico", "manage_reproduction"))
	assert.True(t, svc.TemPermissao(ctx, "Visitante", "view_reports"))
	assert.False(t, svc.TemPermissao(ctx, "Visitante", "edit"))
	assert.False(t, svc.TemPermissao(ctx, "Operador", "manage_users"))
	assert.True(t, svc.TemPermissao(ctx, "Administrador", "admin"))

	// Any-match: one held tag out of several requested grants access
	assert.True(t, svc.TemPermissao(ctx, "Operador", "manage_users", "view_reports"))

	// Unknown role holds nothing
	assert.False(t, svc.TemPermissao(ctx, "Estagiário", "edit"))
}

func TestPermissoesArmazenadasPrevalecemSobrePadrao(t *testing.T) {
	_, svc := novoAuthTeste()
	ctx := context.Background()

	_, err := svc.DefinirPermissoes(ctx, dto.PermissaoPapelRequest{
		Papel:      "Técnico",
		Permissoes: []string{"view_reports"},
	})
	require.NoError(t, err)

	assert.False(t, svc.TemPermissao(ctx, "Técnico", "manage_reproduction"),
		"o mapeamento gravado substitui o padrão embutido")
	assert.True(t, svc.TemPermissao(ctx, "Técnico", "view_reports"))
}

func TestListarPermissoesCobrePapeisSemLinha(t *testing.T) {
	_, svc := novoAuthTeste()
	ctx := context.Background()

	_, err := svc.DefinirPermissoes(ctx, dto.PermissaoPapelRequest{
		Papel:      "Operador",
		Permissoes: []string{"edit"},
	})
	require.NoError(t, err)

	lista, err := svc.ListarPermissoes(ctx)
	require.NoError(t, err)

	porPapel := make(map[string][]string, len(lista))
	for _, p := range lista {
		porPapel[p.Papel] = p.Permissoes
	}
	assert.Equal(t, []string{"edit"}, porPapel["Operador"], "linha gravada vence")
	assert.Equal(t, model.PermissoesPadrao["Técnico"], porPapel["Técnico"], "padrão cobre papel sem linha")
}

func TestAlterarStatusValidaConjunto(t *testing.T) {
	repo, svc := novoAuthTeste()
	f := criarFuncionario(repo, "0060", "Operador", model.FuncionarioAtivo)

	resp, err := svc.AlterarStatus(context.Background(), f.ID, model.FuncionarioAfastado)
	require.NoError(t, err)
	assert.Equal(t, model.FuncionarioAfastado, resp.Status)

	_, err = svc.AlterarStatus(context.Background(), f.ID, "Sumido")
	require.Error(t, err)
}

func TestRegistrarFuncionarioRejeitaMatriculaDuplicada(t *testing.T) {
	repo, svc := novoAuthTeste()
	criarFuncionario(repo, "0070", "Técnico", model.FuncionarioAtivo)

	_, err := svc.RegistrarFuncionario(context.Background(), dto.RegistrarFuncionarioRequest{
		NomeCompleto: "Outra Pessoa",
		Matricula:    "0070",
		Papel:        "Operador",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matrícula")
}
