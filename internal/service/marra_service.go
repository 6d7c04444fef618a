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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MarraService interface {
	Criar(ctx context.Context, req dto.CriarMarraRequest) (*dto.MarraResponse, error)
	Listar(ctx context.Context, status string) ([]dto.MarraResponse, error)
	Avaliar(ctx context.Context, req dto.AvaliarMarraRequest) (*model.SelecaoMarra, error)
	Descartar(ctx context.Context, req dto.DescartarMarraRequest) error
	TaxaSelecao(ctx context.Context) (*dto.TaxaSelecaoResponse, error)
}

type marraService struct {
	repo repository.MarraRepository
}

func NewMarraService(repo repository.MarraRepository) MarraService {
	return &marraService{repo: repo}
}

func (s *marraService) Criar(ctx context.Context, req dto.CriarMarraRequest) (*dto.MarraResponse, error) {
	nascimento, err := time.Parse(layoutData, req.DataNascimento)
	if err != nil {
		return nil, errors.New("data_nascimento inválida, use YYYY-MM-DD")
	}
	m := &model.Marra{
		Identificacao:  req.Identificacao,
		Linhagem:       req.Linhagem,
		DataNascimento: nascimento,
		PesoKg:         req.PesoKg,
		Status:         "Em Avaliação",
	}
	if req.AnimalID != "" {
		animalID, err := uuid.Parse(req.AnimalID)
		if err != nil {
			return nil, errors.New("animal_id inválido")
		}
		m.AnimalID = &animalID
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return marraToResponse(m), nil
}

func (s *marraService) Listar(ctx context.Context, status string) ([]dto.MarraResponse, error) {
	ms, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MarraResponse, len(ms))
	for i := range ms {
		resp[i] = *marraToResponse(&ms[i])
	}
	return resp, nil
}

// Avaliar stores one evaluation and aligns the candidate's status with the
// recommendation.
func (s *marraService) Avaliar(ctx context.Context, req dto.AvaliarMarraRequest) (*model.SelecaoMarra, error) {
	marraID, err := uuid.Parse(req.MarraID)
	if err != nil {
		return nil, errors.New("marra_id inválido")
	}
	m, err := s.repo.FindByID(ctx, marraID)
	if err != nil {
		return nil, errors.New("marrã não encontrada")
	}
	if req.Recomendacao != model.RecomendacaoSelecionada && req.Recomendacao != model.RecomendacaoDescartada {
		return nil, fmt.Errorf("recomendação inválida: %s", req.Recomendacao)
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return nil, errors.New("data inválida, use YYYY-MM-DD")
	}

	sel := &model.SelecaoMarra{
		MarraID:         marraID,
		Data:            data,
		NumeroTetos:     req.NumeroTetos,
		NotaAprumos:     req.NotaAprumos,
		NotaConformacao: req.NotaConformacao,
		NotaFinal:       req.NotaFinal,
		Recomendacao:    req.Recomendacao,
		Avaliador:       req.Avaliador,
		Observacoes:     req.Observacoes,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateSelecaoTx(tx, sel); err != nil {
			return err
		}
		m.Status = req.Recomendacao
		return s.repo.UpdateTx(tx, m)
	})
	if txErr != nil {
		return nil, txErr
	}
	return sel, nil
}

func (s *marraService) Descartar(ctx context.Context, req dto.DescartarMarraRequest) error {
	marraID, err := uuid.Parse(req.MarraID)
	if err != nil {
		return errors.New("marra_id inválido")
	}
	m, err := s.repo.FindByID(ctx, marraID)
	if err != nil {
		return errors.New("marrã não encontrada")
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return errors.New("data inválida, use YYYY-MM-DD")
	}

	d := &model.DescarteMarra{
		MarraID: marraID,
		Data:    data,
		Motivo:  req.Motivo,
		Destino: req.Destino,
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateDescarteTx(tx, d); err != nil {
			return err
		}
		m.Status = model.RecomendacaoDescartada
		return s.repo.UpdateTx(tx, m)
	})
}

func (s *marraService) TaxaSelecao(ctx context.Context) (*dto.TaxaSelecaoResponse, error) {
	selecionadas, err := s.repo.CountSelecoesPorRecomendacao(ctx, model.RecomendacaoSelecionada)
	if err != nil {
		return nil, err
	}
	descartadas, err := s.repo.CountSelecoesPorRecomendacao(ctx, model.RecomendacaoDescartada)
	if err != nil {
		return nil, err
	}
	avaliadas := selecionadas + descartadas

	taxa := decimal.Zero
	if avaliadas > 0 {
		taxa = decimal.NewFromInt(selecionadas).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(avaliadas)).Round(2)
	}
	return &dto.TaxaSelecaoResponse{
		Avaliadas:    int(avaliadas),
		Selecionadas: int(selecionadas),
		Descartadas:  int(descartadas),
		TaxaPct:      taxa,
	}, nil
}

func marraToResponse(m *model.Marra) *dto.MarraResponse {
	return &dto.MarraResponse{
		ID:             m.ID.String(),
		Identificacao:  m.Identificacao,
		Linhagem:       m.Linhagem,
		DataNascimento: m.DataNascimento.Format(layoutData),
		PesoKg:         m.PesoKg,
		Status:         m.Status,
	}
}
