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

type CrecheService interface {
	FormarLote(ctx context.Context, req dto.FormarLoteCrecheRequest) (*dto.LoteCrecheResponse, error)
	ListarLotes(ctx context.Context, somenteAtivos bool) ([]dto.LoteCrecheResponse, error)
	DetalharLote(ctx context.Context, loteID uuid.UUID) (*dto.LoteCrecheDetalheResponse, error)
	RegistrarPesagem(ctx context.Context, loteID uuid.UUID, req dto.PesagemCrecheRequest) (*dto.MovimentoCrecheResponse, error)
	RegistrarMortalidade(ctx context.Context, loteID uuid.UUID, req dto.MortalidadeCrecheRequest) (*dto.LoteCrecheResponse, error)
	RegistrarMedicacao(ctx context.Context, loteID uuid.UUID, req dto.MedicacaoCrecheRequest) error
	RegistrarSaida(ctx context.Context, loteID uuid.UUID, req dto.SaidaCrecheRequest) (*dto.LoteCrecheResponse, error)
}

type crecheService struct {
	repo            repository.CrecheRepository
	maternidadeRepo repository.MaternidadeRepository
	baiaRepo        repository.BaiaRepository
}

func NewCrecheService(
	repo repository.CrecheRepository,
	maternidadeRepo repository.MaternidadeRepository,
	baiaRepo repository.BaiaRepository,
) CrecheService {
	return &crecheService{repo: repo, maternidadeRepo: maternidadeRepo, baiaRepo: baiaRepo}
}

// FormarLote creates the period (when none is given), the batch, its Entrada
// movement and the cohort pen allocation in one transaction.
func (s *crecheService) FormarLote(ctx context.Context, req dto.FormarLoteCrecheRequest) (*dto.LoteCrecheResponse, error) {
	if !model.OrigensLote[req.Origem] {
		return nil, fmt.Errorf("origem inválida: %s", req.Origem)
	}
	baiaID, err := uuid.Parse(req.BaiaID)
	if err != nil {
		return nil, errors.New("baia_id inválido")
	}
	baia, err := s.baiaRepo.FindByID(ctx, baiaID)
	if err != nil {
		return nil, errors.New("baia não encontrada")
	}
	entrada, err := time.Parse(layoutData, req.DataEntrada)
	if err != nil {
		return nil, errors.New("data_entrada inválida, use YYYY-MM-DD")
	}

	var desmameID *uuid.UUID
	if req.Origem == "Desmame" {
		if req.DesmameID == "" {
			return nil, errors.New("origem Desmame exige desmame_id")
		}
		id, err := uuid.Parse(req.DesmameID)
		if err != nil {
			return nil, errors.New("desmame_id inválido")
		}
		if _, err := s.maternidadeRepo.FindDesmameByID(ctx, id); err != nil {
			return nil, errors.New("desmame não encontrado")
		}
		if _, err := s.repo.FindLoteByDesmame(ctx, id); err == nil {
			return nil, errors.New("desmame já originou um lote de creche")
		}
		desmameID = &id
	}

	var periodoID uuid.UUID
	criarPeriodo := req.PeriodoID == ""
	if !criarPeriodo {
		periodoID, err = uuid.Parse(req.PeriodoID)
		if err != nil {
			return nil, errors.New("periodo_id inválido")
		}
		if _, err := s.repo.FindPeriodoByID(ctx, periodoID); err != nil {
			return nil, errors.New("período não encontrado")
		}
	}

	lote := &model.LoteCreche{
		DesmameID:         desmameID,
		Identificacao:     req.Identificacao,
		QtdInicial:        req.QtdInicial,
		QtdAtual:          req.QtdInicial,
		PesoMedioEntrada:  req.PesoMedioEntrada,
		IdadeMediaEntrada: req.IdadeMediaEntrada,
		PesoMedioAtual:    req.PesoMedioEntrada,
		MortalidadePct:    decimal.Zero,
		Origem:            req.Origem,
		DataEntrada:       entrada,
		Status:            model.LoteAtivo,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		descricao := fmt.Sprintf("Lote creche %s", req.Identificacao)
		if err := alocarComCapacidade(s.baiaRepo, tx, baia, &model.AlocacaoBaia{
			BaiaID:        baiaID,
			LoteDescricao: &descricao,
			QtdAnimais:    req.QtdInicial,
			DataEntrada:   entrada,
			Status:        model.AlocacaoAtiva,
		}); err != nil {
			return err
		}
		if criarPeriodo {
			periodo := &model.PeriodoCreche{
				Identificacao: "Período " + req.Identificacao,
				DataInicio:    entrada,
				Status:        model.LoteAtivo,
			}
			if err := s.repo.CreatePeriodoTx(tx, periodo); err != nil {
				return err
			}
			periodoID = periodo.ID
		}
		lote.PeriodoCrecheID = periodoID
		if err := s.repo.CreateLoteTx(tx, lote); err != nil {
			return err
		}

		pesoTotal := req.PesoMedioEntrada.Mul(decimal.NewFromInt(int64(req.QtdInicial)))
		mov := &model.MovimentoCreche{
			LoteCrecheID: lote.ID,
			Tipo:         model.MovEntrada,
			Data:         entrada,
			Quantidade:   req.QtdInicial,
			PesoTotal:    pesoTotal,
			PesoMedio:    req.PesoMedioEntrada,
		}
		return s.repo.CreateMovimentoTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}
	return loteCrecheToResponse(lote), nil
}

func (s *crecheService) ListarLotes(ctx context.Context, somenteAtivos bool) ([]dto.LoteCrecheResponse, error) {
	lotes, err := s.repo.ListLotes(ctx, somenteAtivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LoteCrecheResponse, len(lotes))
	for i := range lotes {
		resp[i] = *loteCrecheToResponse(&lotes[i])
	}
	return resp, nil
}

func (s *crecheService) DetalharLote(ctx context.Context, loteID uuid.UUID) (*dto.LoteCrecheDetalheResponse, error) {
	lote, err := s.repo.FindLoteByID(ctx, loteID)
	if err != nil {
		return nil, errors.New("lote não encontrado")
	}
	movimentos, err := s.repo.ListMovimentos(ctx, loteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimentoCrecheResponse, len(movimentos))
	for i := range movimentos {
		items[i] = *movimentoCrecheToResponse(&movimentos[i])
	}
	return &dto.LoteCrecheDetalheResponse{
		Lote:       *loteCrecheToResponse(lote),
		Movimentos: items,
	}, nil
}

// RegistrarPesagem appends a Pesagem movement. Daily gain is derived from the
// previous Pesagem-or-Entrada of the batch and the mean becomes the batch's
// current mean weight.
func (s *crecheService) RegistrarPesagem(ctx context.Context, loteID uuid.UUID, req dto.PesagemCrecheRequest) (*dto.MovimentoCrecheResponse, error) {
	lote, err := s.loteAtivo(ctx, loteID)
	if err != nil {
		return nil, err
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return nil, errors.New("data inválida, use YYYY-MM-DD")
	}
	if !req.PesoTotal.IsPositive() {
		return nil, errors.New("peso_total deve ser positivo")
	}

	pesoMedio := req.PesoTotal.Div(decimal.NewFromInt(int64(req.Quantidade))).Round(3)

	gpd := decimal.Zero
	if anterior, err := s.repo.FindUltimaPesagemOuEntrada(ctx, loteID); err == nil {
		dias := int(data.Sub(anterior.Data).Hours() / 24)
		if dias > 0 {
			gpd = pesoMedio.Sub(anterior.PesoMedio).
				Mul(decimal.NewFromInt(1000)).
				Div(decimal.NewFromInt(int64(dias))).Round(2)
		}
	}

	mov := &model.MovimentoCreche{
		LoteCrecheID: loteID,
		Tipo:         model.MovPesagem,
		Data:         data,
		Quantidade:   req.Quantidade,
		PesoTotal:    req.PesoTotal,
		PesoMedio:    pesoMedio,
		GPD:          gpd,
		Observacao:   req.Observacao,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateMovimentoTx(tx, mov); err != nil {
			return err
		}
		lote.PesoMedioAtual = pesoMedio
		return s.repo.UpdateLoteTx(tx, lote)
	})
	if txErr != nil {
		return nil, txErr
	}
	return movimentoCrecheToResponse(mov), nil
}

func (s *crecheService) RegistrarMortalidade(ctx context.Context, loteID uuid.UUID, req dto.MortalidadeCrecheRequest) (*dto.LoteCrecheResponse, error) {
	lote, err := s.loteAtivo(ctx, loteID)
	if err != nil {
		return nil, err
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return nil, errors.New("data inválida, use YYYY-MM-DD")
	}
	if req.Quantidade > lote.QtdAtual {
		return nil, fmt.Errorf("mortalidade de %d excede a quantidade atual %d", req.Quantidade, lote.QtdAtual)
	}

	mov := &model.MovimentoCreche{
		LoteCrecheID: loteID,
		Tipo:         model.MovMortalidade,
		Data:         data,
		Quantidade:   req.Quantidade,
		Causa:        req.Causa,
		Observacao:   req.Observacao,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateMovimentoTx(tx, mov); err != nil {
			return err
		}
		lote.QtdAtual -= req.Quantidade
		lote.MortalidadePct = mortalidadePct(lote.QtdInicial, lote.QtdAtual)
		return s.repo.UpdateLoteTx(tx, lote)
	})
	if txErr != nil {
		return nil, txErr
	}
	return loteCrecheToResponse(lote), nil
}

func (s *crecheService) RegistrarMedicacao(ctx context.Context, loteID uuid.UUID, req dto.MedicacaoCrecheRequest) error {
	if _, err := s.loteAtivo(ctx, loteID); err != nil {
		return err
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return errors.New("data inválida, use YYYY-MM-DD")
	}
	mov := &model.MovimentoCreche{
		LoteCrecheID: loteID,
		Tipo:         model.MovMedicacao,
		Data:         data,
		Quantidade:   req.Quantidade,
		Medicamento:  req.Medicamento,
		Dose:         req.Dose,
		Via:          req.Via,
		Observacao:   req.Observacao,
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateMovimentoTx(tx, mov)
	})
}

// RegistrarSaida appends a Transferência or Saída movement. Moving the full
// remaining quantity finalizes the batch, closes its cohort allocation and
// finalizes the period.
func (s *crecheService) RegistrarSaida(ctx context.Context, loteID uuid.UUID, req dto.SaidaCrecheRequest) (*dto.LoteCrecheResponse, error) {
	if req.Tipo != model.MovTransferencia && req.Tipo != model.MovSaida {
		return nil, fmt.Errorf("tipo inválido: %s", req.Tipo)
	}
	lote, err := s.loteAtivo(ctx, loteID)
	if err != nil {
		return nil, err
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return nil, errors.New("data inválida, use YYYY-MM-DD")
	}
	if req.Quantidade > lote.QtdAtual {
		return nil, fmt.Errorf("saída de %d excede a quantidade atual %d", req.Quantidade, lote.QtdAtual)
	}
	encerra := req.Quantidade == lote.QtdAtual

	mov := &model.MovimentoCreche{
		LoteCrecheID: loteID,
		Tipo:         req.Tipo,
		Data:         data,
		Quantidade:   req.Quantidade,
		PesoTotal:    req.PesoTotal,
		Destino:      req.Destino,
		Observacao:   req.Observacao,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateMovimentoTx(tx, mov); err != nil {
			return err
		}
		lote.QtdAtual -= req.Quantidade
		if encerra {
			lote.Status = model.LoteFinalizado
			lote.DataSaida = &data
			lote.Destino = req.Destino
		}
		if err := s.repo.UpdateLoteTx(tx, lote); err != nil {
			return err
		}
		if encerra {
			descricao := fmt.Sprintf("Lote creche %s", lote.Identificacao)
			if aloc, err := s.alocacaoDoLote(ctx, descricao); err == nil {
				if err := s.baiaRepo.FecharAlocacaoTx(tx, aloc.ID, data, req.Tipo); err != nil {
					return err
				}
			}
			return s.repo.FinalizarPeriodoTx(tx, lote.PeriodoCrecheID, data)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return loteCrecheToResponse(lote), nil
}

func (s *crecheService) loteAtivo(ctx context.Context, loteID uuid.UUID) (*model.LoteCreche, error) {
	lote, err := s.repo.FindLoteByID(ctx, loteID)
	if err != nil {
		return nil, errors.New("lote não encontrado")
	}
	if lote.Status != model.LoteAtivo {
		return nil, errors.New("lote já finalizado")
	}
	return lote, nil
}

// alocacaoDoLote resolves the cohort allocation created at batch formation by
// its descriptive label.
func (s *crecheService) alocacaoDoLote(ctx context.Context, descricao string) (*model.AlocacaoBaia, error) {
	db := s.baiaRepo.DB()
	if db == nil {
		return nil, gorm.ErrRecordNotFound
	}
	var aloc model.AlocacaoBaia
	err := db.WithContext(ctx).
		Where("lote_descricao = ? AND data_saida IS NULL", descricao).First(&aloc).Error
	return &aloc, err
}

func mortalidadePct(inicial, atual int) decimal.Decimal {
	if inicial == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(inicial - atual)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(inicial))).Round(2)
}

func loteCrecheToResponse(l *model.LoteCreche) *dto.LoteCrecheResponse {
	resp := &dto.LoteCrecheResponse{
		ID:               l.ID.String(),
		Identificacao:    l.Identificacao,
		PeriodoID:        l.PeriodoCrecheID.String(),
		QtdInicial:       l.QtdInicial,
		QtdAtual:         l.QtdAtual,
		PesoMedioEntrada: l.PesoMedioEntrada,
		PesoMedioAtual:   l.PesoMedioAtual,
		MortalidadePct:   l.MortalidadePct,
		Origem:           l.Origem,
		DataEntrada:      l.DataEntrada.Format(layoutData),
		Destino:          l.Destino,
		Status:           l.Status,
	}
	if l.DataSaida != nil {
		v := l.DataSaida.Format(layoutData)
		resp.DataSaida = &v
	}
	return resp
}

func movimentoCrecheToResponse(m *model.MovimentoCreche) *dto.MovimentoCrecheResponse {
	return &dto.MovimentoCrecheResponse{
		ID:          m.ID.String(),
		Tipo:        m.Tipo,
		Data:        m.Data.Format(layoutData),
		Quantidade:  m.Quantidade,
		PesoTotal:   m.PesoTotal,
		PesoMedio:   m.PesoMedio,
		GPD:         m.GPD,
		Causa:       m.Causa,
		Destino:     m.Destino,
		Medicamento: m.Medicamento,
		Observacao:  m.Observacao,
	}
}
