package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"suinotrack/internal/dto"
	"suinotrack/internal/model"
	"suinotrack/internal/repository"

	"github.com/google/uuid"
)

type SincronizacaoService interface {
	// Importar upserts each row by its "id" field under the authenticated
	// user's collection prefix. Re-importing the same document is a no-op in
	// effect: rows are overwritten with identical payloads.
	Importar(ctx context.Context, usuarioID uuid.UUID, req dto.ImportarRequest) (*dto.ImportarResponse, error)
	Exportar(ctx context.Context, usuarioID uuid.UUID, req dto.ExportarRequest) (*dto.ExportarResponse, error)
	ListarColecoes(ctx context.Context, usuarioID uuid.UUID) ([]string, error)
}

type sincronizacaoService struct {
	repo repository.SincronizacaoRepository
}

func NewSincronizacaoService(repo repository.SincronizacaoRepository) SincronizacaoService {
	return &sincronizacaoService{repo: repo}
}

func (s *sincronizacaoService) Importar(ctx context.Context, usuarioID uuid.UUID, req dto.ImportarRequest) (*dto.ImportarResponse, error) {
	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return nil, errors.New("timestamp inválido, use RFC3339")
	}

	resp := &dto.ImportarResponse{}
	for colecao, linhas := range req.Colecoes {
		if colecao == "" {
			return nil, errors.New("nome de coleção vazio")
		}
		existentes, err := s.repo.ListPorColecao(ctx, usuarioID, colecao)
		if err != nil {
			return nil, err
		}
		conhecidos := make(map[string]bool, len(existentes))
		for _, e := range existentes {
			conhecidos[e.RegistroID] = true
		}
		for _, linha := range linhas {
			registroID, ok := linha["id"].(string)
			if !ok || registroID == "" {
				resp.Ignorados++
				continue
			}
			reg := &model.RegistroSincronizacao{
				UsuarioID:    usuarioID,
				Colecao:      colecao,
				RegistroID:   registroID,
				Dados:        model.JSONMap(linha),
				AtualizadoEm: ts,
			}
			if err := s.repo.Upsert(ctx, reg); err != nil {
				return nil, fmt.Errorf("falha ao gravar %s/%s: %w", colecao, registroID, err)
			}
			if conhecidos[registroID] {
				resp.Atualizados++
			} else {
				resp.Inseridos++
				conhecidos[registroID] = true
			}
		}
	}
	return resp, nil
}

func (s *sincronizacaoService) Exportar(ctx context.Context, usuarioID uuid.UUID, req dto.ExportarRequest) (*dto.ExportarResponse, error) {
	colecoes := make(map[string][]map[string]interface{}, len(req.Colecoes))
	for _, nome := range req.Colecoes {
		regs, err := s.repo.ListPorColecao(ctx, usuarioID, nome)
		if err != nil {
			return nil, err
		}
		// Absent collections export as empty tables, never as errors
		linhas := make([]map[string]interface{}, len(regs))
		for i, r := range regs {
			linhas[i] = r.Dados
		}
		colecoes[nome] = linhas
	}
	return &dto.ExportarResponse{
		Colecoes:  colecoes,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		UsuarioID: usuarioID.String(),
	}, nil
}

func (s *sincronizacaoService) ListarColecoes(ctx context.Context, usuarioID uuid.UUID) ([]string, error) {
	return s.repo.ListColecoes(ctx, usuarioID)
}
