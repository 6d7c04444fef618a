package service

import (
	"context"
	"testing"

	"suinotrack/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoSincronizacaoTeste() (*stubSincronizacaoRepo, SincronizacaoService) {
	repo := newStubSincronizacaoRepo()
	return repo, NewSincronizacaoService(repo)
}

func TestImportarEReimportarIdempotente(t *testing.T) {
	repo, svc := novoSincronizacaoTeste()
	usuarioID := uuid.New()

	doc := dto.ImportarRequest{
		Timestamp: "2025-03-22T08:30:00Z",
		Colecoes: map[string][]map[string]interface{}{
			"pesagens": {
				{"id": "p-1", "animal": "MTZ-001", "peso_kg": 212.5},
				{"id": "p-2", "animal": "MTZ-002", "peso_kg": 198.0},
			},
		},
	}

	resp, err := svc.Importar(context.Background(), usuarioID, doc)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Inseridos)
	assert.Equal(t, 0, resp.Atualizados)

	// Re-sending the same batch overwrites instead of duplicating
	resp, err = svc.Importar(context.Background(), usuarioID, doc)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Inseridos)
	assert.Equal(t, 2, resp.Atualizados)
	assert.Len(t, repo.registros, 2)
}

func TestImportarClassificaDuplicataNoMesmoLote(t *testing.T) {
	repo, svc := novoSincronizacaoTeste()
	usuarioID := uuid.New()

	// The same id twice in one document: first occurrence inserts, the
	// second overwrites
	resp, err := svc.Importar(context.Background(), usuarioID, dto.ImportarRequest{
		Timestamp: "2025-03-22T08:30:00Z",
		Colecoes: map[string][]map[string]interface{}{
			"pesagens": {
				{"id": "p-1", "peso_kg": 210.0},
				{"id": "p-1", "peso_kg": 211.0},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Inseridos)
	assert.Equal(t, 1, resp.Atualizados)
	require.Len(t, repo.registros, 1)
	assert.Equal(t, 211.0, repo.registros[0].Dados["peso_kg"])
}

func TestImportarIgnoraLinhasSemID(t *testing.T) {
	_, svc := novoSincronizacaoTeste()
	usuarioID := uuid.New()

	resp, err := svc.Importar(context.Background(), usuarioID, dto.ImportarRequest{
		Timestamp: "2025-03-22T08:30:00Z",
		Colecoes: map[string][]map[string]interface{}{
			"cios": {
				{"animal": "MTZ-003"},             // no id
				{"id": "", "animal": "MTZ-004"},   // empty id
				{"id": "c-1", "animal": "MTZ-005"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Inseridos)
	assert.Equal(t, 2, resp.Ignorados)
}

func TestImportarValidaTimestampEColecao(t *testing.T) {
	_, svc := novoSincronizacaoTeste()
	usuarioID := uuid.New()

	_, err := svc.Importar(context.Background(), usuarioID, dto.ImportarRequest{
		Timestamp: "ontem",
		Colecoes:  map[string][]map[string]interface{}{"cios": {}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RFC3339")

	_, err = svc.Importar(context.Background(), usuarioID, dto.ImportarRequest{
		Timestamp: "2025-03-22T08:30:00Z",
		Colecoes:  map[string][]map[string]interface{}{"": {{"id": "x"}}},
	})
	require.Error(t, err)
}

func TestExportarColecaoAusenteRetornaVazia(t *testing.T) {
	repo, svc := novoSincronizacaoTeste()
	usuarioID := uuid.New()

	_, err := svc.Importar(context.Background(), usuarioID, dto.ImportarRequest{
		Timestamp: "2025-03-22T08:30:00Z",
		Colecoes: map[string][]map[string]interface{}{
			"pesagens": {{"id": "p-1", "peso_kg": 212.5}},
		},
	})
	require.NoError(t, err)

	resp, err := svc.Exportar(context.Background(), usuarioID, dto.ExportarRequest{
		Colecoes: []string{"pesagens", "vacinas"},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Colecoes["pesagens"], 1)
	assert.NotNil(t, resp.Colecoes["vacinas"])
	assert.Empty(t, resp.Colecoes["vacinas"], "coleção ausente exporta vazia, nunca erro")
	assert.Equal(t, usuarioID.String(), resp.UsuarioID)

	// Collections are isolated per user
	outro, err := svc.Exportar(context.Background(), uuid.New(), dto.ExportarRequest{
		Colecoes: []string{"pesagens"},
	})
	require.NoError(t, err)
	assert.Empty(t, outro.Colecoes["pesagens"])
	assert.Len(t, repo.registros, 1)
}

func TestListarColecoes(t *testing.T) {
	_, svc := novoSincronizacaoTeste()
	usuarioID := uuid.New()

	_, err := svc.Importar(context.Background(), usuarioID, dto.ImportarRequest{
		Timestamp: "2025-03-22T08:30:00Z",
		Colecoes: map[string][]map[string]interface{}{
			"pesagens": {{"id": "p-1"}},
			"cios":     {{"id": "c-1"}},
		},
	})
	require.NoError(t, err)

	nomes, err := svc.ListarColecoes(context.Background(), usuarioID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"pesagens", "cios"}, nomes)
}
