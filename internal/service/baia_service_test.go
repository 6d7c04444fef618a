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

func novoBaiaTeste() (*stubBaiaRepo, BaiaService) {
	repo := newStubBaiaRepo()
	return repo, NewBaiaService(repo)
}

func criarBaia(repo *stubBaiaRepo, identificacao, setor string, capacidade int) *model.Baia {
	b := &model.Baia{ID: uuid.New(), Identificacao: identificacao, Setor: setor, Capacidade: capacidade}
	repo.baias[b.ID] = b
	return b
}

func strPtr(s string) *string { return &s }

func TestAlocarExigeAnimalOuLote(t *testing.T) {
	repo, svc := novoBaiaTeste()
	baia := criarBaia(repo, "GES-01", "Gestação", 4)

	_, err := svc.Alocar(context.Background(), dto.AlocarRequest{
		BaiaID:      baia.ID.String(),
		DataEntrada: "2025-03-01",
	})
	require.Error(t, err, "nem animal nem lote")

	animalID := uuid.New().String()
	_, err = svc.Alocar(context.Background(), dto.AlocarRequest{
		BaiaID:        baia.ID.String(),
		AnimalID:      &animalID,
		LoteDescricao: strPtr("Lote 7"),
		DataEntrada:   "2025-03-01",
	})
	require.Error(t, err, "animal e lote ao mesmo tempo")
}

func TestAlocarRespeitaCapacidade(t *testing.T) {
	repo, svc := novoBaiaTeste()
	baia := criarBaia(repo, "GES-02", "Gestação", 2)

	for i := 0; i < 2; i++ {
		animalID := uuid.New().String()
		_, err := svc.Alocar(context.Background(), dto.AlocarRequest{
			BaiaID:      baia.ID.String(),
			AnimalID:    &animalID,
			DataEntrada: "2025-03-01",
		})
		require.NoError(t, err)
	}

	animalID := uuid.New().String()
	_, err := svc.Alocar(context.Background(), dto.AlocarRequest{
		BaiaID:      baia.ID.String(),
		AnimalID:    &animalID,
		DataEntrada: "2025-03-02",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem capacidade livre")
}

func TestAlocarLoteComQtdMinima(t *testing.T) {
	repo, svc := novoBaiaTeste()
	baia := criarBaia(repo, "CRE-02", "Creche", 30)

	resp, err := svc.Alocar(context.Background(), dto.AlocarRequest{
		BaiaID:        baia.ID.String(),
		LoteDescricao: strPtr("Leitegada 42"),
		QtdAnimais:    0,
		DataEntrada:   "2025-03-22",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.QtdAnimais)
	assert.Equal(t, model.AlocacaoAtiva, resp.Status)
}

func TestLiberarFechaAlocacao(t *testing.T) {
	repo, svc := novoBaiaTeste()
	baia := criarBaia(repo, "GES-03", "Gestação", 2)

	animalID := uuid.New().String()
	resp, err := svc.Alocar(context.Background(), dto.AlocarRequest{
		BaiaID:      baia.ID.String(),
		AnimalID:    &animalID,
		DataEntrada: "2025-03-01",
	})
	require.NoError(t, err)

	err = svc.Liberar(context.Background(), uuid.MustParse(resp.ID), dto.LiberarAlocacaoRequest{
		DataSaida:   "2025-04-10",
		MotivoSaida: "Transferência",
	})
	require.NoError(t, err)

	ocupacao, err := svc.Ocupacao(context.Background(), baia.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, ocupacao)
}

func TestDisponibilidadeOmiteBaiasCheias(t *testing.T) {
	repo, svc := novoBaiaTeste()
	cheia := criarBaia(repo, "CRE-03", "Creche", 1)
	livre := criarBaia(repo, "CRE-04", "Creche", 10)

	lote := "Leitegada 9"
	repo.alocacoes = append(repo.alocacoes, &model.AlocacaoBaia{
		ID: uuid.New(), BaiaID: cheia.ID, LoteDescricao: &lote, QtdAnimais: 8,
		DataEntrada: dia(2025, 3, 1), Status: model.AlocacaoAtiva,
	})

	items, err := svc.Disponibilidade(context.Background(), model.CategoriaLeitao)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, livre.Identificacao, items[0].Identificacao)
	assert.Equal(t, 10, items[0].CapacidadeLivre)
}
