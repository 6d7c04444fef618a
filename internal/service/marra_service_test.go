package service

import (
	"context"
	"testing"

	"suinotrack/internal/dto"
	"suinotrack/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoMarraTeste() (*stubMarraRepo, MarraService) {
	repo := newStubMarraRepo()
	return repo, NewMarraService(repo)
}

func criarMarra(repo *stubMarraRepo, identificacao string) *model.Marra {
	m := &model.Marra{
		ID:             uuid.New(),
		Identificacao:  identificacao,
		Linhagem:       "Landrace",
		DataNascimento: dia(2024, 10, 1),
		Status:         "Em Avaliação",
	}
	repo.marras[m.ID] = m
	return m
}

func TestAvaliarAlinhaStatusComRecomendacao(t *testing.T) {
	repo, svc := novoMarraTeste()
	m := criarMarra(repo, "MAR-001")

	sel, err := svc.Avaliar(context.Background(), dto.AvaliarMarraRequest{
		MarraID:         m.ID.String(),
		Data:            "2025-03-22",
		NumeroTetos:     14,
		NotaAprumos:     4,
		NotaConformacao: 4,
		NotaFinal:       5,
		Recomendacao:    model.RecomendacaoSelecionada,
		Avaliador:       "Técnico 0042",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RecomendacaoSelecionada, sel.Recomendacao)
	assert.Equal(t, model.RecomendacaoSelecionada, m.Status)
	assert.Len(t, repo.selecoes, 1)
}

func TestAvaliarRejeitaRecomendacaoDesconhecida(t *testing.T) {
	repo, svc := novoMarraTeste()
	m := criarMarra(repo, "MAR-002")

	_, err := svc.Avaliar(context.Background(), dto.AvaliarMarraRequest{
		MarraID:      m.ID.String(),
		Data:         "2025-03-22",
		NotaFinal:    3,
		Recomendacao: "Talvez",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recomendação inválida")
	assert.Empty(t, repo.selecoes)
}

func TestDescartarRegistraDestino(t *testing.T) {
	repo, svc := novoMarraTeste()
	m := criarMarra(repo, "MAR-003")

	err := svc.Descartar(context.Background(), dto.DescartarMarraRequest{
		MarraID: m.ID.String(),
		Data:    "2025-03-25",
		Motivo:  "Aprumos deficientes",
		Destino: "Abate",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RecomendacaoDescartada, m.Status)
	require.Len(t, repo.descartes, 1)
	assert.Equal(t, "Abate", repo.descartes[0].Destino)
}

func TestTaxaSelecao(t *testing.T) {
	repo, svc := novoMarraTeste()

	for i := 0; i < 6; i++ {
		repo.selecoes = append(repo.selecoes, &model.SelecaoMarra{
			ID: uuid.New(), MarraID: uuid.New(), Data: dia(2025, 3, 1),
			NotaFinal: 4, Recomendacao: model.RecomendacaoSelecionada,
		})
	}
	for i := 0; i < 2; i++ {
		repo.selecoes = append(repo.selecoes, &model.SelecaoMarra{
			ID: uuid.New(), MarraID: uuid.New(), Data: dia(2025, 3, 1),
			NotaFinal: 2, Recomendacao: model.RecomendacaoDescartada,
		})
	}

	resp, err := svc.TaxaSelecao(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Avaliadas)
	assert.Equal(t, 6, resp.Selecionadas)
	assert.Equal(t, 2, resp.Descartadas)
	assert.Equal(t, "75", resp.TaxaPct.String())
}

func TestTaxaSelecaoSemAvaliacoes(t *testing.T) {
	_, svc := novoMarraTeste()
	resp, err := svc.TaxaSelecao(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Avaliadas)
	assert.True(t, resp.TaxaPct.IsZero())
}
