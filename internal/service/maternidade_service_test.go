package service

import (
	"context"
	"fmt"
	"testing"

	"suinotrack/internal/dto"
	"suinotrack/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func novoMaternidadeTeste() (*stubMaternidadeRepo, *stubAnimalRepo, *stubBaiaRepo, MaternidadeService) {
	repo := newStubMaternidadeRepo()
	animalRepo := newStubAnimalRepo()
	baiaRepo := newStubBaiaRepo()
	return repo, animalRepo, baiaRepo, NewMaternidadeService(repo, animalRepo, baiaRepo)
}

func TestCalcularMetricas(t *testing.T) {
	leitegadaID := uuid.New()
	nascimento := dia(2025, 3, 1)
	desmame := dia(2025, 3, 22) // 21 days of age

	leitoes := []model.Leitao{
		{Status: model.LeitaoVivo, DataNascimento: nascimento, PesoNascimento: decPtr("1.4"), PesoAtual: decPtr("5.5")},
		{Status: model.LeitaoVivo, DataNascimento: nascimento, PesoNascimento: decPtr("1.4"), PesoAtual: decPtr("5.5")},
		{Status: model.LeitaoVivo, DataNascimento: nascimento, PesoNascimento: decPtr("1.4"), PesoAtual: decPtr("5.5")},
		{Status: model.LeitaoMorto, DataNascimento: nascimento, PesoNascimento: decPtr("1.1")},
	}

	m := calcularMetricas(leitegadaID, leitoes, desmame)
	assert.Equal(t, 3, m.TotalDesmamados, "mortos ficam de fora")
	assert.Equal(t, 21, m.IdadeMediaDias)
	assert.Equal(t, "16.5", m.PesoTotal.String())
	assert.Equal(t, "5.5", m.PesoMedio.String())
	// (5.5 − 1.4) kg × 1000 / 21 d = 195.24 g/day
	assert.Equal(t, "195.24", m.GanhoMedioDiario.String())
}

func TestCalcularMetricasColapsaSemPesoAtual(t *testing.T) {
	leitegadaID := uuid.New()
	nascimento := dia(2025, 3, 1)
	desmame := dia(2025, 3, 22)

	leitoes := []model.Leitao{
		{Status: model.LeitaoVivo, DataNascimento: nascimento, PesoNascimento: decPtr("1.4"), PesoAtual: decPtr("5.5")},
		{Status: model.LeitaoVivo, DataNascimento: nascimento, PesoNascimento: decPtr("1.3")}, // never weighed
	}

	m := calcularMetricas(leitegadaID, leitoes, desmame)
	assert.Equal(t, 2, m.TotalDesmamados)
	assert.Equal(t, 21, m.IdadeMediaDias)
	// Partial weights never produce misleading averages
	assert.True(t, m.PesoTotal.IsZero())
	assert.True(t, m.PesoMedio.IsZero())
	assert.True(t, m.GanhoMedioDiario.IsZero())
}

func TestCalcularMetricasSemVivos(t *testing.T) {
	leitegadaID := uuid.New()
	m := calcularMetricas(leitegadaID, []model.Leitao{
		{Status: model.LeitaoMorto, DataNascimento: dia(2025, 3, 1)},
	}, dia(2025, 3, 22))
	assert.Equal(t, 0, m.TotalDesmamados)
	assert.Equal(t, 0, m.IdadeMediaDias)
}

func abrirMaternidadeComLeitegada(t *testing.T, repo *stubMaternidadeRepo, matriz *model.Animal, baiaID uuid.UUID) *model.Leitegada {
	t.Helper()
	m := &model.Maternidade{
		ID:          uuid.New(),
		AnimalID:    matriz.ID,
		BaiaID:      baiaID,
		DataEntrada: dia(2025, 2, 25),
		DataParto:   dia(2025, 3, 1),
		Status:      model.MaternidadeAtiva,
	}
	repo.maternidades[m.ID] = m

	l := &model.Leitegada{
		ID:            uuid.New(),
		MaternidadeID: m.ID,
		AnimalID:      matriz.ID,
		DataParto:     dia(2025, 3, 1),
		TotalNascidos: 13,
		NascidosVivos: 12,
		Natimortos:    1,
	}
	repo.leitegadas[l.ID] = l
	return l
}

func TestRegistrarLeitegadaValidaSoma(t *testing.T) {
	repo, animalRepo, _, svc := novoMaternidadeTeste()
	matriz := animalRepo.novaFemea("MTZ-100", model.CategoriaMatriz, dia(2023, 1, 1))

	m := &model.Maternidade{
		ID:        uuid.New(),
		AnimalID:  matriz.ID,
		BaiaID:    uuid.New(),
		DataParto: dia(2025, 3, 1),
		Status:    model.MaternidadeAtiva,
	}
	repo.maternidades[m.ID] = m

	_, err := svc.RegistrarLeitegada(context.Background(), dto.RegistrarLeitegadaRequest{
		MaternidadeID: m.ID.String(),
		DataParto:     "2025-03-01",
		TotalNascidos: 14,
		NascidosVivos: 12,
		Natimortos:    1,
		Mumificados:   0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soma")

	resp, err := svc.RegistrarLeitegada(context.Background(), dto.RegistrarLeitegadaRequest{
		MaternidadeID: m.ID.String(),
		DataParto:     "2025-03-01",
		TotalNascidos: 13,
		NascidosVivos: 12,
		Natimortos:    1,
		Mumificados:   0,
		PesoTotal:     decimal.RequireFromString("18"),
	})
	require.NoError(t, err)
	assert.Equal(t, "1.5", resp.PesoMedio.String())
	assert.Equal(t, 12, resp.TamanhoAjustado)
}

func TestRegistrarDesmameCascata(t *testing.T) {
	repo, animalRepo, baiaRepo, svc := novoMaternidadeTeste()
	matriz := animalRepo.novaFemea("MTZ-101", "Matriz Lactante", dia(2023, 1, 1))

	baiaMaternidade := &model.Baia{ID: uuid.New(), Identificacao: "MAT-01", Setor: "Maternidade", Capacidade: 1}
	baiaCreche := &model.Baia{ID: uuid.New(), Identificacao: "CRE-01", Setor: "Creche", Capacidade: 30}
	baiaRepo.baias[baiaMaternidade.ID] = baiaMaternidade
	baiaRepo.baias[baiaCreche.ID] = baiaCreche

	leitegada := abrirMaternidadeComLeitegada(t, repo, matriz, baiaMaternidade.ID)

	require.NoError(t, repo.CreateLeitoes(context.Background(), []model.Leitao{
		{LeitegadaID: leitegada.ID, MaeBiologicaID: matriz.ID, Identificacao: "L-1", Sexo: model.SexoFemea,
			DataNascimento: leitegada.DataParto, PesoNascimento: decPtr("1.4"), PesoAtual: decPtr("5.5"), Status: model.LeitaoVivo},
		{LeitegadaID: leitegada.ID, MaeBiologicaID: matriz.ID, Identificacao: "L-2", Sexo: model.SexoMacho,
			DataNascimento: leitegada.DataParto, PesoNascimento: decPtr("1.5"), PesoAtual: decPtr("5.8"), Status: model.LeitaoVivo},
		{LeitegadaID: leitegada.ID, MaeBiologicaID: matriz.ID, Identificacao: "L-3", Sexo: model.SexoMacho,
			DataNascimento: leitegada.DataParto, Status: model.LeitaoMorto},
	}))

	alocacaoMatriz := &model.AlocacaoBaia{
		ID:          uuid.New(),
		BaiaID:      baiaMaternidade.ID,
		AnimalID:    &matriz.ID,
		QtdAnimais:  1,
		DataEntrada: dia(2025, 2, 25),
		Status:      model.AlocacaoAtiva,
	}
	baiaRepo.alocacoes = append(baiaRepo.alocacoes, alocacaoMatriz)

	resp, err := svc.RegistrarDesmame(context.Background(), dto.RegistrarDesmameRequest{
		LeitegadaID:    leitegada.ID.String(),
		Data:           "2025-03-22",
		DestinoLeitoes: "Creche",
		DestinoMatriz:  "Gestação",
		BaiaDestinoID:  baiaCreche.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalDesmamados)
	assert.Equal(t, 21, resp.IdadeMediaDias)

	// Live piglets transitioned, the dead one kept its status
	for _, l := range repo.leitoes {
		switch l.Identificacao {
		case "L-1", "L-2":
			assert.Equal(t, model.LeitaoDesmamado, l.Status)
		case "L-3":
			assert.Equal(t, model.LeitaoMorto, l.Status)
		}
	}

	// Maternity stay closed with exit date
	maternidade := repo.leitegadas[leitegada.ID].MaternidadeID
	assert.Equal(t, model.MaternidadeFinalizada, repo.maternidades[maternidade].Status)
	require.NotNil(t, repo.maternidades[maternidade].DataSaida)

	// Sow back to Matriz and released from the maternity pen
	assert.Equal(t, model.CategoriaMatriz, animalRepo.categoriaAtualizada[matriz.ID])
	assert.Equal(t, model.AlocacaoInativa, alocacaoMatriz.Status)
	assert.Equal(t, "Desmame", alocacaoMatriz.MotivoSaida)

	// Cohort allocated to the nursery pen
	alocacoesCreche, err := baiaRepo.ListAlocacoes(context.Background(), baiaCreche.ID, true)
	require.NoError(t, err)
	require.Len(t, alocacoesCreche, 1)
	assert.Equal(t, 2, alocacoesCreche[0].QtdAnimais)
	require.NotNil(t, alocacoesCreche[0].LoteDescricao)
	assert.Equal(t, fmt.Sprintf("Leitegada %s desmamada", leitegada.ID), *alocacoesCreche[0].LoteDescricao)
}

func TestRegistrarDesmameDuplicadoRejeitado(t *testing.T) {
	repo, animalRepo, _, svc := novoMaternidadeTeste()
	matriz := animalRepo.novaFemea("MTZ-102", "Matriz Lactante", dia(2023, 1, 1))
	leitegada := abrirMaternidadeComLeitegada(t, repo, matriz, uuid.New())

	repo.desmames[leitegada.ID] = &model.Desmame{
		ID:          uuid.New(),
		LeitegadaID: leitegada.ID,
		AnimalID:    matriz.ID,
		Data:        dia(2025, 3, 20),
	}

	_, err := svc.RegistrarDesmame(context.Background(), dto.RegistrarDesmameRequest{
		LeitegadaID:    leitegada.ID.String(),
		Data:           "2025-03-22",
		DestinoLeitoes: "Venda",
		DestinoMatriz:  "Gestação",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "já desmamada")
}

func TestRegistrarDesmameCrecheExigeBaiaDestino(t *testing.T) {
	repo, animalRepo, _, svc := novoMaternidadeTeste()
	matriz := animalRepo.novaFemea("MTZ-103", "Matriz Lactante", dia(2023, 1, 1))
	leitegada := abrirMaternidadeComLeitegada(t, repo, matriz, uuid.New())

	_, err := svc.RegistrarDesmame(context.Background(), dto.RegistrarDesmameRequest{
		LeitegadaID:    leitegada.ID.String(),
		Data:           "2025-03-22",
		DestinoLeitoes: "Creche",
		DestinoMatriz:  "Gestação",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baia_destino_id")
}

func TestAbrirMaternidadeAlocaMatriz(t *testing.T) {
	repo, animalRepo, baiaRepo, svc := novoMaternidadeTeste()
	matriz := animalRepo.novaFemea("MTZ-104", model.CategoriaMatriz, dia(2023, 1, 1))
	baia := &model.Baia{ID: uuid.New(), Identificacao: "MAT-02", Setor: "Maternidade", Capacidade: 1}
	baiaRepo.baias[baia.ID] = baia

	resp, err := svc.Abrir(context.Background(), dto.AbrirMaternidadeRequest{
		AnimalID:    matriz.ID.String(),
		BaiaID:      baia.ID.String(),
		DataEntrada: "2025-02-25",
		DataParto:   "2025-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, model.MaternidadeAtiva, resp.Status)

	aloc, err := baiaRepo.FindAlocacaoAtivaByAnimal(context.Background(), matriz.ID)
	require.NoError(t, err)
	assert.Equal(t, baia.ID, aloc.BaiaID)

	// A sow cannot hold two active stays
	_, err = svc.Abrir(context.Background(), dto.AbrirMaternidadeRequest{
		AnimalID:    matriz.ID.String(),
		BaiaID:      baia.ID.String(),
		DataEntrada: "2025-02-26",
		DataParto:   "2025-03-02",
	})
	require.Error(t, err)
	assert.Len(t, repo.maternidades, 1)
}

func TestAbrirMaternidadeRejeitaBaiaCheia(t *testing.T) {
	repo, animalRepo, baiaRepo, svc := novoMaternidadeTeste()
	matriz := animalRepo.novaFemea("MTZ-105", model.CategoriaMatriz, dia(2023, 1, 1))
	ocupante := animalRepo.novaFemea("MTZ-106", model.CategoriaMatriz, dia(2023, 1, 1))

	baia := criarBaia(baiaRepo, "MAT-09", "Maternidade", 1)
	baiaRepo.alocacoes = append(baiaRepo.alocacoes, &model.AlocacaoBaia{
		ID:          uuid.New(),
		BaiaID:      baia.ID,
		AnimalID:    &ocupante.ID,
		QtdAnimais:  1,
		DataEntrada: dia(2025, 2, 20),
		Status:      model.AlocacaoAtiva,
	})

	_, err := svc.Abrir(context.Background(), dto.AbrirMaternidadeRequest{
		AnimalID:    matriz.ID.String(),
		BaiaID:      baia.ID.String(),
		DataEntrada: "2025-02-25",
		DataParto:   "2025-03-01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem capacidade livre")

	// Nothing committed: no stay, occupancy untouched
	assert.Empty(t, repo.maternidades)
	ativas, err := baiaRepo.CountAtivas(context.Background(), baia.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, ativas)
}

func TestRegistrarDesmameRespeitaCapacidadeDaCreche(t *testing.T) {
	repo, animalRepo, baiaRepo, svc := novoMaternidadeTeste()
	matriz := animalRepo.novaFemea("MTZ-107", "Matriz Lactante", dia(2023, 1, 1))

	baiaCreche := criarBaia(baiaRepo, "CRE-02", "Creche", 1)
	baiaRepo.alocacoes = append(baiaRepo.alocacoes, &model.AlocacaoBaia{
		ID:            uuid.New(),
		BaiaID:        baiaCreche.ID,
		LoteDescricao: strPtr("Lote anterior"),
		QtdAnimais:    25,
		DataEntrada:   dia(2025, 3, 1),
		Status:        model.AlocacaoAtiva,
	})

	leitegada := abrirMaternidadeComLeitegada(t, repo, matriz, uuid.New())
	require.NoError(t, repo.CreateLeitoes(context.Background(), []model.Leitao{
		{LeitegadaID: leitegada.ID, MaeBiologicaID: matriz.ID, Identificacao: "L-9", Sexo: model.SexoFemea,
			DataNascimento: leitegada.DataParto, PesoNascimento: decPtr("1.4"), PesoAtual: decPtr("5.5"), Status: model.LeitaoVivo},
	}))

	// An unknown destination pen is caught before the cascade starts
	_, err := svc.RegistrarDesmame(context.Background(), dto.RegistrarDesmameRequest{
		LeitegadaID:    leitegada.ID.String(),
		Data:           "2025-03-22",
		DestinoLeitoes: "Creche",
		DestinoMatriz:  "Gestação",
		BaiaDestinoID:  uuid.NewString(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baia de destino")

	_, err = svc.RegistrarDesmame(context.Background(), dto.RegistrarDesmameRequest{
		LeitegadaID:    leitegada.ID.String(),
		Data:           "2025-03-22",
		DestinoLeitoes: "Creche",
		DestinoMatriz:  "Gestação",
		BaiaDestinoID:  baiaCreche.ID.String(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem capacidade livre")

	alocs, err := baiaRepo.ListAlocacoes(context.Background(), baiaCreche.ID, true)
	require.NoError(t, err)
	assert.Len(t, alocs, 1)
}
