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
	"gorm.io/gorm"
)

type BaiaService interface {
	Criar(ctx context.Context, req dto.CriarBaiaRequest) (*dto.BaiaResponse, error)
	Listar(ctx context.Context, setor string) ([]dto.BaiaResponse, error)
	Ocupacao(ctx context.Context, baiaID uuid.UUID) (int, error)
	// Disponibilidade lists pens with free capacity, restricted to the sector
	// recommended for the category when one is mapped.
	Disponibilidade(ctx context.Context, categoria string) ([]dto.DisponibilidadeItem, error)
	Alocar(ctx context.Context, req dto.AlocarRequest) (*dto.AlocacaoResponse, error)
	Liberar(ctx context.Context, alocacaoID uuid.UUID, req dto.LiberarAlocacaoRequest) error
	ListarAlocacoes(ctx context.Context, baiaID uuid.UUID, somenteAtivas bool) ([]dto.AlocacaoResponse, error)
}

type baiaService struct {
	repo repository.BaiaRepository
}

func NewBaiaService(repo repository.BaiaRepository) BaiaService {
	return &baiaService{repo: repo}
}

func (s *baiaService) Criar(ctx context.Context, req dto.CriarBaiaRequest) (*dto.BaiaResponse, error) {
	b := &model.Baia{
		Identificacao: req.Identificacao,
		Setor:         req.Setor,
		Capacidade:    req.Capacidade,
		Dimensoes:     req.Dimensoes,
		TipoPiso:      req.TipoPiso,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return baiaToResponse(b), nil
}

func (s *baiaService) Listar(ctx context.Context, setor string) ([]dto.BaiaResponse, error) {
	baias, err := s.repo.List(ctx, setor)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BaiaResponse, len(baias))
	for i := range baias {
		resp[i] = *baiaToResponse(&baias[i])
	}
	return resp, nil
}

func (s *baiaService) Ocupacao(ctx context.Context, baiaID uuid.UUID) (int, error) {
	total, err := s.repo.CountAtivas(ctx, baiaID)
	return int(total), err
}

func (s *baiaService) Disponibilidade(ctx context.Context, categoria string) ([]dto.DisponibilidadeItem, error) {
	setor := model.SetorPorCategoria[categoria]
	baias, err := s.repo.List(ctx, setor)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DisponibilidadeItem, 0, len(baias))
	for i := range baias {
		ocupacao, err := s.repo.CountAtivas(ctx, baias[i].ID)
		if err != nil {
			return nil, err
		}
		livre := baias[i].Capacidade - int(ocupacao)
		if livre <= 0 {
			continue
		}
		items = append(items, dto.DisponibilidadeItem{
			BaiaResponse:    *baiaToResponse(&baias[i]),
			Ocupacao:        int(ocupacao),
			CapacidadeLivre: livre,
		})
	}
	return items, nil
}

func (s *baiaService) Alocar(ctx context.Context, req dto.AlocarRequest) (*dto.AlocacaoResponse, error) {
	baiaID, err := uuid.Parse(req.BaiaID)
	if err != nil {
		return nil, errors.New("baia_id inválido")
	}
	if (req.AnimalID == nil) == (req.LoteDescricao == nil) {
		return nil, errors.New("informe animal_id ou lote_descricao, nunca ambos")
	}
	baia, err := s.repo.FindByID(ctx, baiaID)
	if err != nil {
		return nil, errors.New("baia não encontrada")
	}
	entrada, err := time.Parse(layoutData, req.DataEntrada)
	if err != nil {
		return nil, errors.New("data_entrada inválida, use YYYY-MM-DD")
	}

	aloc := &model.AlocacaoBaia{
		BaiaID:      baiaID,
		QtdAnimais:  req.QtdAnimais,
		DataEntrada: entrada,
		Status:      model.AlocacaoAtiva,
	}
	if aloc.QtdAnimais < 1 {
		aloc.QtdAnimais = 1
	}
	if req.AnimalID != nil {
		animalID, err := uuid.Parse(*req.AnimalID)
		if err != nil {
			return nil, errors.New("animal_id inválido")
		}
		aloc.AnimalID = &animalID
	} else {
		aloc.LoteDescricao = req.LoteDescricao
	}

	// Capacity is re-checked inside the transaction that creates the row
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return alocarComCapacidade(s.repo, tx, baia, aloc)
	})
	if txErr != nil {
		return nil, txErr
	}
	return alocacaoToResponse(aloc), nil
}

func (s *baiaService) Liberar(ctx context.Context, alocacaoID uuid.UUID, req dto.LiberarAlocacaoRequest) error {
	saida, err := time.Parse(layoutData, req.DataSaida)
	if err != nil {
		return errors.New("data_saida inválida, use YYYY-MM-DD")
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.FecharAlocacaoTx(tx, alocacaoID, saida, req.MotivoSaida)
	})
}

func (s *baiaService) ListarAlocacoes(ctx context.Context, baiaID uuid.UUID, somenteAtivas bool) ([]dto.AlocacaoResponse, error) {
	alocs, err := s.repo.ListAlocacoes(ctx, baiaID, somenteAtivas)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AlocacaoResponse, len(alocs))
	for i := range alocs {
		resp[i] = *alocacaoToResponse(&alocs[i])
	}
	return resp, nil
}

// txOr lets capacity checks run against the bare repository DB in unit-test
// mode, where runTx passes a nil tx.
func txOr(tx, db *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

// alocarComCapacidade re-checks the pen's occupancy inside the caller's
// transaction and creates the allocation only when there is a free slot.
// Every cascade that opens an allocation goes through here.
func alocarComCapacidade(repo repository.BaiaRepository, tx *gorm.DB, baia *model.Baia, aloc *model.AlocacaoBaia) error {
	ativas, err := repo.CountAtivasTx(txOr(tx, repo.DB()), baia.ID)
	if err != nil {
		return err
	}
	if int(ativas)+1 > baia.Capacidade {
		return fmt.Errorf("baia %s sem capacidade livre", baia.Identificacao)
	}
	return repo.CreateAlocacaoTx(tx, aloc)
}

func baiaToResponse(b *model.Baia) *dto.BaiaResponse {
	return &dto.BaiaResponse{
		ID:            b.ID.String(),
		Identificacao: b.Identificacao,
		Setor:         b.Setor,
		Capacidade:    b.Capacidade,
		Dimensoes:     b.Dimensoes,
		TipoPiso:      b.TipoPiso,
	}
}

func alocacaoToResponse(a *model.AlocacaoBaia) *dto.AlocacaoResponse {
	resp := &dto.AlocacaoResponse{
		ID:            a.ID.String(),
		BaiaID:        a.BaiaID.String(),
		LoteDescricao: a.LoteDescricao,
		QtdAnimais:    a.QtdAnimais,
		DataEntrada:   a.DataEntrada.Format(layoutData),
		MotivoSaida:   a.MotivoSaida,
		Status:        a.Status,
	}
	if a.AnimalID != nil {
		v := a.AnimalID.String()
		resp.AnimalID = &v
	}
	if a.DataSaida != nil {
		v := a.DataSaida.Format(layoutData)
		resp.DataSaida = &v
	}
	return resp
}
