package service

import (
	"context"
	"testing"

	"suinotrack/internal/dto"
	"suinotrack/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoAnimalTeste() (*stubAnimalRepo, AnimalService) {
	repo := newStubAnimalRepo()
	return repo, NewAnimalService(repo)
}

func TestCriarRejeitaIdentificacaoDuplicada(t *testing.T) {
	_, svc := novoAnimalTeste()

	req := dto.CriarAnimalRequest{
		Identificacao:  "MTZ-100",
		Categoria:      model.CategoriaMatriz,
		Sexo:           model.SexoFemea,
		Raca:           "Landrace",
		DataNascimento: "2023-06-01",
	}
	_, err := svc.Criar(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Criar(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "já cadastrada")
}

func TestCriarValidaCategoriaESexo(t *testing.T) {
	_, svc := novoAnimalTeste()

	// Matriz é categoria exclusivamente feminina
	_, err := svc.Criar(context.Background(), dto.CriarAnimalRequest{
		Identificacao:  "RPR-001",
		Categoria:      model.CategoriaMatriz,
		Sexo:           model.SexoMacho,
		DataNascimento: "2023-06-01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exige sexo Fêmea")

	_, err = svc.Criar(context.Background(), dto.CriarAnimalRequest{
		Identificacao:  "RPR-001",
		Categoria:      "Cavalo",
		Sexo:           model.SexoMacho,
		DataNascimento: "2023-06-01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categoria inválida")

	resp, err := svc.Criar(context.Background(), dto.CriarAnimalRequest{
		Identificacao:  "RPR-001",
		Categoria:      model.CategoriaReprodutor,
		Sexo:           model.SexoMacho,
		DataNascimento: "2023-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusAnimalAtivo, resp.Status)
}

func TestCriarRejeitaNascimentoFuturo(t *testing.T) {
	_, svc := novoAnimalTeste()

	_, err := svc.Criar(context.Background(), dto.CriarAnimalRequest{
		Identificacao:  "MTZ-101",
		Categoria:      model.CategoriaMatriz,
		Sexo:           model.SexoFemea,
		DataNascimento: "2099-01-01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "futura")
}

func TestAtualizarValidaMudancaDeCategoria(t *testing.T) {
	repo, svc := novoAnimalTeste()
	macho := &model.Animal{
		Identificacao:  "RPR-010",
		Categoria:      model.CategoriaReprodutor,
		Sexo:           model.SexoMacho,
		DataNascimento: dia(2023, 1, 10),
		Status:         model.StatusAnimalAtivo,
	}
	require.NoError(t, repo.Create(context.Background(), macho))

	// Um macho não migra para categoria reprodutiva feminina
	_, err := svc.Atualizar(context.Background(), macho.ID, dto.AtualizarAnimalRequest{
		Categoria: model.CategoriaMatriz,
	})
	require.Error(t, err)
	assert.Equal(t, model.CategoriaReprodutor, repo.animais[macho.ID].Categoria)

	resp, err := svc.Atualizar(context.Background(), macho.ID, dto.AtualizarAnimalRequest{
		Categoria: model.CategoriaEngorda,
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategoriaEngorda, resp.Categoria)
}

func TestRemoverEhSoftDelete(t *testing.T) {
	repo, svc := novoAnimalTeste()
	a := repo.novaFemea("MTZ-102", model.CategoriaMatriz, dia(2023, 6, 1))

	require.NoError(t, svc.Remover(context.Background(), a.ID))
	assert.Equal(t, model.StatusAnimalRemovido, repo.animais[a.ID].Status)

	// Removido não aceita novos registros de peso
	err := svc.RegistrarPeso(context.Background(), dto.RegistrarPesoRequest{
		AnimalID: a.ID.String(),
		Data:     "2025-03-22",
		PesoKg:   decimal.RequireFromString("210"),
	})
	require.Error(t, err)
	assert.Empty(t, repo.pesos)
}

func TestRegistrarEListarPesos(t *testing.T) {
	repo, svc := novoAnimalTeste()
	a := repo.novaFemea("MTZ-103", model.CategoriaMatriz, dia(2023, 6, 1))
	outra := repo.novaFemea("MTZ-104", model.CategoriaMatriz, dia(2023, 6, 1))

	require.NoError(t, svc.RegistrarPeso(context.Background(), dto.RegistrarPesoRequest{
		AnimalID: a.ID.String(),
		Data:     "2025-03-22",
		PesoKg:   decimal.RequireFromString("212.5"),
	}))
	require.NoError(t, svc.RegistrarPeso(context.Background(), dto.RegistrarPesoRequest{
		AnimalID: outra.ID.String(),
		Data:     "2025-03-22",
		PesoKg:   decimal.RequireFromString("198"),
	}))

	pesos, err := svc.ListarPesos(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, pesos, 1)
	assert.Equal(t, "212.5", pesos[0].PesoKg.String())
}
