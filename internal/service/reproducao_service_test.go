package service

import (
	"context"
	"testing"
	"time"

	"suinotrack/internal/dto"
	"suinotrack/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(ano, mes, d int) time.Time {
	return time.Date(ano, time.Month(mes), d, 0, 0, 0, 0, time.UTC)
}

func novoReproducaoTeste() (*stubReproducaoRepo, *stubAnimalRepo, ReproducaoService) {
	repo := newStubReproducaoRepo()
	animalRepo := newStubAnimalRepo()
	return repo, animalRepo, NewReproducaoService(repo, animalRepo)
}

func TestRegistrarCioIncrementaNumeroCiclo(t *testing.T) {
	_, animalRepo, svc := novoReproducaoTeste()
	matriz := animalRepo.novaFemea("MTZ-001", model.CategoriaMatriz, dia(2023, 5, 1))

	c1, err := svc.RegistrarCio(context.Background(), dto.RegistrarCioRequest{
		AnimalID:       matriz.ID.String(),
		DataCio:        "2025-02-10",
		IntensidadeCio: "Forte",
		Irmas:          []string{"MTZ-002", "MTZ-003"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c1.NumeroCiclo)
	assert.Equal(t, model.CicloDetectado, c1.Status)
	assert.Equal(t, 2, c1.QtdIrmas)
	// Next estrus is derived: detection + 21 days
	assert.Equal(t, "2025-03-03", c1.ProximoCio)

	c2, err := svc.RegistrarCio(context.Background(), dto.RegistrarCioRequest{
		AnimalID:       matriz.ID.String(),
		DataCio:        "2025-03-03",
		IntensidadeCio: "Moderado",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, c2.NumeroCiclo)
}

func TestRegistrarCioExigeFemeaAtiva(t *testing.T) {
	_, animalRepo, svc := novoReproducaoTeste()

	macho := animalRepo.novaFemea("RPD-001", model.CategoriaReprodutor, dia(2022, 1, 1))
	macho.Sexo = model.SexoMacho

	_, err := svc.RegistrarCio(context.Background(), dto.RegistrarCioRequest{
		AnimalID:       macho.ID.String(),
		DataCio:        "2025-02-10",
		IntensidadeCio: "Forte",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Fêmea")

	removida := animalRepo.novaFemea("MTZ-009", model.CategoriaMatriz, dia(2022, 1, 1))
	removida.Status = model.StatusAnimalRemovido
	_, err = svc.RegistrarCio(context.Background(), dto.RegistrarCioRequest{
		AnimalID:       removida.ID.String(),
		DataCio:        "2025-02-10",
		IntensidadeCio: "Forte",
	})
	require.Error(t, err)
}

func registrarCicloDireto(repo *stubReproducaoRepo, animalID uuid.UUID, numero int, data time.Time) *model.CicloReprodutivo {
	c := &model.CicloReprodutivo{
		ID:             uuid.New(),
		AnimalID:       animalID,
		NumeroCiclo:    numero,
		DataCio:        data,
		IntensidadeCio: "Forte",
		Status:         model.CicloDetectado,
	}
	repo.ciclos = append(repo.ciclos, c)
	return c
}

func TestRegistrarInseminacaoDentroDaJanela(t *testing.T) {
	repo, animalRepo, svc := novoReproducaoTeste()
	matriz := animalRepo.novaFemea("MTZ-010", model.CategoriaMatriz, dia(2023, 5, 1))

	// 5 days before the insemination — exactly on the window edge
	ciclo := registrarCicloDireto(repo, matriz.ID, 1, dia(2025, 3, 5))

	resp, err := svc.RegistrarInseminacao(context.Background(), dto.RegistrarInseminacaoRequest{
		AnimalID:  matriz.ID.String(),
		Data:      "2025-03-10",
		LoteSemen: "L-77",
		OrdemDose: "Primeira",
		Metodo:    "Pós-Cervical",
	})
	require.NoError(t, err)
	assert.True(t, resp.CicloAtualizado)
	assert.Equal(t, model.CicloInseminado, ciclo.Status)
	assert.Contains(t, ciclo.Observacao, "Inseminada em 2025-03-10 (lote L-77)")
}

func TestRegistrarInseminacaoForaDaJanelaPersisteSemVinculo(t *testing.T) {
	repo, animalRepo, svc := novoReproducaoTeste()
	matriz := animalRepo.novaFemea("MTZ-011", model.CategoriaMatriz, dia(2023, 5, 1))

	// 6 days before the insemination — one past the window
	ciclo := registrarCicloDireto(repo, matriz.ID, 1, dia(2025, 3, 4))

	resp, err := svc.RegistrarInseminacao(context.Background(), dto.RegistrarInseminacaoRequest{
		AnimalID:  matriz.ID.String(),
		Data:      "2025-03-10",
		LoteSemen: "L-78",
		OrdemDose: "Primeira",
		Metodo:    "Tradicional",
	})
	require.NoError(t, err)
	assert.False(t, resp.CicloAtualizado)
	assert.Equal(t, model.CicloDetectado, ciclo.Status)
	assert.Empty(t, ciclo.Observacao)
	assert.Len(t, repo.inseminacoes, 1, "a inseminação é registrada mesmo sem ciclo na janela")
}

func TestRegistrarInseminacaoEscolheCicloMaisRecente(t *testing.T) {
	repo, animalRepo, svc := novoReproducaoTeste()
	matriz := animalRepo.novaFemea("MTZ-012", model.CategoriaMatriz, dia(2023, 5, 1))

	antigo := registrarCicloDireto(repo, matriz.ID, 1, dia(2025, 3, 7))
	recente := registrarCicloDireto(repo, matriz.ID, 2, dia(2025, 3, 9))

	resp, err := svc.RegistrarInseminacao(context.Background(), dto.RegistrarInseminacaoRequest{
		AnimalID:  matriz.ID.String(),
		Data:      "2025-03-10",
		LoteSemen: "L-79",
		OrdemDose: "Segunda",
		Metodo:    "Tradicional",
	})
	require.NoError(t, err)
	assert.True(t, resp.CicloAtualizado)
	assert.Equal(t, model.CicloInseminado, recente.Status)
	assert.Equal(t, model.CicloDetectado, antigo.Status)
}

func TestSemanaSuina(t *testing.T) {
	// 2021-01-01 falls on ISO week 53; the swine calendar caps at 52
	assert.Equal(t, 52, semanaSuina(dia(2021, 1, 1)))
	// 2025-01-06 is a Monday opening ISO week 2
	assert.Equal(t, 2, semanaSuina(dia(2025, 1, 6)))
}

func TestAbrirGestacaoFixaPrevisaoEm114Dias(t *testing.T) {
	_, animalRepo, svc := novoReproducaoTeste()
	matriz := animalRepo.novaFemea("MTZ-020", model.CategoriaMatriz, dia(2023, 5, 1))

	g, err := svc.AbrirGestacao(context.Background(), dto.AbrirGestacaoRequest{
		AnimalID:      matriz.ID.String(),
		DataCobertura: "2025-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-04-25", g.PrevisaoParto)
	assert.Equal(t, model.GestacaoConfirmada, g.Status)
}

func TestAbrirGestacaoRejeitaDuplicada(t *testing.T) {
	_, animalRepo, svc := novoReproducaoTeste()
	matriz := animalRepo.novaFemea("MTZ-021", model.CategoriaMatriz, dia(2023, 5, 1))

	_, err := svc.AbrirGestacao(context.Background(), dto.AbrirGestacaoRequest{
		AnimalID:      matriz.ID.String(),
		DataCobertura: "2025-01-01",
	})
	require.NoError(t, err)

	_, err = svc.AbrirGestacao(context.Background(), dto.AbrirGestacaoRequest{
		AnimalID:      matriz.ID.String(),
		DataCobertura: "2025-02-01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gestação em aberto")
}

func TestRegistrarPartoPreservaPrevisao(t *testing.T) {
	_, animalRepo, svc := novoReproducaoTeste()
	matriz := animalRepo.novaFemea("MTZ-022", model.CategoriaMatriz, dia(2023, 5, 1))

	aberta, err := svc.AbrirGestacao(context.Background(), dto.AbrirGestacaoRequest{
		AnimalID:      matriz.ID.String(),
		DataCobertura: "2025-01-01",
	})
	require.NoError(t, err)
	gestacaoID := uuid.MustParse(aberta.ID)

	// Farrowing three days early: the stored prediction does not move
	fechada, err := svc.RegistrarParto(context.Background(), gestacaoID, dto.RegistrarPartoRequest{
		DataParto:  "2025-04-22",
		QtdLeitoes: 13,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-04-25", fechada.PrevisaoParto)
	require.NotNil(t, fechada.DataParto)
	assert.Equal(t, "2025-04-22", *fechada.DataParto)

	_, err = svc.RegistrarParto(context.Background(), gestacaoID, dto.RegistrarPartoRequest{
		DataParto:  "2025-04-23",
		QtdLeitoes: 13,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "já encerrada")
}

func registrarDeteccao(repo *stubReproducaoRepo, animalID uuid.UUID, data time.Time, confirmado bool) {
	repo.registrosCio = append(repo.registrosCio, &model.RegistroCio{
		ID:          uuid.New(),
		RufiaoID:    uuid.New(),
		AnimalID:    animalID,
		DataHora:    data,
		Intensidade: "Forte",
		Confirmado:  confirmado,
	})
}

func TestAnalisarIntervalosExigeDoisConfirmados(t *testing.T) {
	repo, animalRepo, svc := novoReproducaoTeste()
	matriz := animalRepo.novaFemea("MTZ-030", model.CategoriaMatriz, dia(2023, 5, 1))

	registrarDeteccao(repo, matriz.ID, dia(2025, 1, 10), true)
	registrarDeteccao(repo, matriz.ID, dia(2025, 1, 31), false) // unconfirmed does not count

	_, err := svc.AnalisarIntervalos(context.Background(), matriz.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dois registros confirmados")
}

func TestAnalisarIntervalos(t *testing.T) {
	repo, animalRepo, svc := novoReproducaoTeste()
	matriz := animalRepo.novaFemea("MTZ-031", model.CategoriaMatriz, dia(2023, 5, 1))

	registrarDeteccao(repo, matriz.ID, dia(2025, 1, 1), true)
	registrarDeteccao(repo, matriz.ID, dia(2025, 1, 22), true)
	registrarDeteccao(repo, matriz.ID, dia(2025, 2, 13), true)

	analise, err := svc.AnalisarIntervalos(context.Background(), matriz.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, analise.QtdRegistros)
	assert.Equal(t, 21, analise.MinIntervalo)
	assert.Equal(t, 22, analise.MaxIntervalo)
	assert.Equal(t, 22, analise.UltimoIntervalo)
	assert.Equal(t, "21.5", analise.MediaIntervalo.String())
}

func TestPreverProximoCioConfianca(t *testing.T) {
	repo, animalRepo, svc := novoReproducaoTeste()

	regular := animalRepo.novaFemea("MTZ-032", model.CategoriaMatriz, dia(2023, 5, 1))
	registrarDeteccao(repo, regular.ID, dia(2025, 1, 1), true)
	registrarDeteccao(repo, regular.ID, dia(2025, 1, 22), true)
	registrarDeteccao(repo, regular.ID, dia(2025, 2, 12), true)

	prev, err := svc.PreverProximoCio(context.Background(), regular.ID)
	require.NoError(t, err)
	// Mean of 21 days sits inside the 20..22 biological window
	assert.Equal(t, "Alta", prev.Confianca)
	assert.Equal(t, "2025-03-05", prev.ProximoPrevisto)

	irregular := animalRepo.novaFemea("MTZ-033", model.CategoriaMatriz, dia(2023, 5, 1))
	registrarDeteccao(repo, irregular.ID, dia(2025, 1, 1), true)
	registrarDeteccao(repo, irregular.ID, dia(2025, 1, 19), true)

	prev, err = svc.PreverProximoCio(context.Background(), irregular.ID)
	require.NoError(t, err)
	assert.Equal(t, "Média", prev.Confianca)
}

func TestProximosCiosIgnoraInseminados(t *testing.T) {
	repo, animalRepo, svc := novoReproducaoTeste()
	matriz := animalRepo.novaFemea("MTZ-040", model.CategoriaMatriz, dia(2023, 5, 1))

	aberto := registrarCicloDireto(repo, matriz.ID, 1, dia(2025, 3, 1))
	fechado := registrarCicloDireto(repo, matriz.ID, 2, dia(2025, 3, 3))
	fechado.Status = model.CicloInseminado

	items, err := svc.ProximosCios(context.Background(), dia(2025, 3, 10))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, aberto.NumeroCiclo, items[0].NumeroCiclo)
	assert.Equal(t, "2025-03-22", items[0].ProximoCio)
}
