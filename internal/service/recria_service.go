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

type RecriaService interface {
	CriarLote(ctx context.Context, req dto.CriarLoteRecriaRequest) (*dto.LoteRecriaResponse, error)
	ListarLotes(ctx context.Context, somenteAtivos bool) ([]dto.LoteRecriaResponse, error)
	AdicionarAnimal(ctx context.Context, req dto.AdicionarAnimalRecriaRequest) (*dto.AnimalRecriaResponse, error)
	ListarAnimais(ctx context.Context, loteID uuid.UUID, somenteAtivos bool) ([]dto.AnimalRecriaResponse, error)
	RegistrarPesagem(ctx context.Context, req dto.PesagemRecriaRequest) (*dto.PesagemRecriaResponse, error)
	TransferirAnimal(ctx context.Context, req dto.TransferirAnimalRecriaRequest) error
	RegistrarArracoamento(ctx context.Context, req dto.ArracoamentoRequest) (*dto.ArracoamentoResponse, error)
	RegistrarMedicacao(ctx context.Context, req dto.MedicacaoRecriaRequest) (*dto.MedicacaoRecriaResponse, error)
	FinalizarAnimal(ctx context.Context, animalRecriaID uuid.UUID, req dto.FinalizarAnimalRecriaRequest) (*dto.AnimalRecriaResponse, error)
	FinalizarLote(ctx context.Context, loteID uuid.UUID, req dto.FinalizarLoteRecriaRequest) (*dto.LoteRecriaResponse, error)
}

type recriaService struct {
	repo repository.RecriaRepository
}

func NewRecriaService(repo repository.RecriaRepository) RecriaService {
	return &recriaService{repo: repo}
}

func (s *recriaService) CriarLote(ctx context.Context, req dto.CriarLoteRecriaRequest) (*dto.LoteRecriaResponse, error) {
	inicio, err := time.Parse(layoutData, req.DataInicio)
	if err != nil {
		return nil, errors.New("data_inicio inválida, use YYYY-MM-DD")
	}
	lote := &model.LoteRecria{
		Identificacao:  req.Identificacao,
		Fase:           req.Fase,
		DataInicio:     inicio,
		MortalidadePct: decimal.Zero,
		Status:         model.LoteAtivo,
	}
	if req.BaiaID != "" {
		baiaID, err := uuid.Parse(req.BaiaID)
		if err != nil {
			return nil, errors.New("baia_id inválido")
		}
		lote.BaiaID = &baiaID
	}
	if err := s.repo.CreateLote(ctx, lote); err != nil {
		return nil, err
	}
	return loteRecriaToResponse(lote), nil
}

func (s *recriaService) ListarLotes(ctx context.Context, somenteAtivos bool) ([]dto.LoteRecriaResponse, error) {
	lotes, err := s.repo.ListLotes(ctx, somenteAtivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LoteRecriaResponse, len(lotes))
	for i := range lotes {
		resp[i] = *loteRecriaToResponse(&lotes[i])
	}
	return resp, nil
}

// AdicionarAnimal enrolls an animal, rejecting identifications still active in
// any batch.
func (s *recriaService) AdicionarAnimal(ctx context.Context, req dto.AdicionarAnimalRecriaRequest) (*dto.AnimalRecriaResponse, error) {
	loteID, err := uuid.Parse(req.LoteID)
	if err != nil {
		return nil, errors.New("lote_id inválido")
	}
	lote, err := s.repo.FindLoteByID(ctx, loteID)
	if err != nil {
		return nil, errors.New("lote não encontrado")
	}
	if lote.Status != model.LoteAtivo {
		return nil, errors.New("lote já finalizado")
	}
	if _, err := s.repo.FindAnimalAtivo(ctx, req.Identificacao); err == nil {
		return nil, fmt.Errorf("animal %s já está ativo em um lote de recria", req.Identificacao)
	}
	entrada, err := time.Parse(layoutData, req.DataEntrada)
	if err != nil {
		return nil, errors.New("data_entrada inválida, use YYYY-MM-DD")
	}

	a := &model.AnimalRecria{
		LoteRecriaID:  loteID,
		Identificacao: req.Identificacao,
		DataEntrada:   entrada,
		PesoEntrada:   req.PesoEntrada,
		Status:        model.LoteAtivo,
	}
	if req.AnimalID != "" {
		animalID, err := uuid.Parse(req.AnimalID)
		if err != nil {
			return nil, errors.New("animal_id inválido")
		}
		a.AnimalID = &animalID
	}
	lote.QtdInicial++
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateAnimalTx(tx, a); err != nil {
			return err
		}
		return s.repo.UpdateLoteTx(tx, lote)
	})
	if txErr != nil {
		return nil, txErr
	}
	return animalRecriaToResponse(a), nil
}

func (s *recriaService) ListarAnimais(ctx context.Context, loteID uuid.UUID, somenteAtivos bool) ([]dto.AnimalRecriaResponse, error) {
	animais, err := s.repo.ListAnimais(ctx, loteID, somenteAtivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AnimalRecriaResponse, len(animais))
	for i := range animais {
		resp[i] = *animalRecriaToResponse(&animais[i])
	}
	return resp, nil
}

// pesar derives gain and period ADG against the animal's previous weighing,
// falling back to its entry record, and persists the weighing.
func (s *recriaService) pesar(ctx context.Context, tx *gorm.DB, a *model.AnimalRecria, tipo string, data time.Time, peso decimal.Decimal) (*model.PesagemRecria, error) {
	baseData := a.DataEntrada
	basePeso := a.PesoEntrada
	if anterior, err := s.repo.FindUltimaPesagem(ctx, a.ID); err == nil {
		baseData = anterior.Data
		basePeso = anterior.PesoKg
	}

	ganho := peso.Sub(basePeso)
	gpd := decimal.Zero
	dias := int(data.Sub(baseData).Hours() / 24)
	if dias > 0 {
		gpd = ganho.Mul(decimal.NewFromInt(1000)).Div(decimal.NewFromInt(int64(dias))).Round(2)
	}

	p := &model.PesagemRecria{
		AnimalRecriaID:   a.ID,
		Tipo:             tipo,
		Data:             data,
		PesoKg:           peso,
		GanhoDesdeUltima: ganho,
		GPDPeriodo:       gpd,
	}
	if err := s.repo.CreatePesagemTx(tx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *recriaService) RegistrarPesagem(ctx context.Context, req dto.PesagemRecriaRequest) (*dto.PesagemRecriaResponse, error) {
	if req.Tipo != model.PesagemIndividual && req.Tipo != model.PesagemGrupo {
		return nil, fmt.Errorf("tipo inválido: %s", req.Tipo)
	}
	animalRecriaID, err := uuid.Parse(req.AnimalRecriaID)
	if err != nil {
		return nil, errors.New("animal_recria_id inválido")
	}
	a, err := s.animalAtivo(ctx, animalRecriaID)
	if err != nil {
		return nil, err
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return nil, errors.New("data inválida, use YYYY-MM-DD")
	}

	var p *model.PesagemRecria
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		p, err = s.pesar(ctx, tx, a, req.Tipo, data, req.PesoKg)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return pesagemRecriaToResponse(p), nil
}

// TransferirAnimal moves a membership between batches; the transfer weighing
// is recorded automatically inside the same transaction.
func (s *recriaService) TransferirAnimal(ctx context.Context, req dto.TransferirAnimalRecriaRequest) error {
	animalRecriaID, err := uuid.Parse(req.AnimalRecriaID)
	if err != nil {
		return errors.New("animal_recria_id inválido")
	}
	loteDestinoID, err := uuid.Parse(req.LoteDestinoID)
	if err != nil {
		return errors.New("lote_destino_id inválido")
	}
	a, err := s.animalAtivo(ctx, animalRecriaID)
	if err != nil {
		return err
	}
	destino, err := s.repo.FindLoteByID(ctx, loteDestinoID)
	if err != nil {
		return errors.New("lote de destino não encontrado")
	}
	if destino.Status != model.LoteAtivo {
		return errors.New("lote de destino já finalizado")
	}
	if destino.ID == a.LoteRecriaID {
		return errors.New("animal já pertence ao lote de destino")
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return errors.New("data inválida, use YYYY-MM-DD")
	}

	t := &model.TransferenciaRecria{
		AnimalRecriaID: animalRecriaID,
		Data:           data,
		LoteOrigemID:   a.LoteRecriaID,
		LoteDestinoID:  loteDestinoID,
		Fase:           req.Fase,
		PesoKg:         req.PesoKg,
	}
	if req.BaiaDestinoID != "" {
		baiaID, err := uuid.Parse(req.BaiaDestinoID)
		if err != nil {
			return errors.New("baia_destino_id inválido")
		}
		t.BaiaDestinoID = &baiaID
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.pesar(ctx, tx, a, model.PesagemIndividual, data, req.PesoKg); err != nil {
			return err
		}
		if err := s.repo.CreateTransferenciaTx(tx, t); err != nil {
			return err
		}
		a.LoteRecriaID = loteDestinoID
		return s.repo.UpdateAnimalTx(tx, a)
	})
}

func (s *recriaService) RegistrarArracoamento(ctx context.Context, req dto.ArracoamentoRequest) (*dto.ArracoamentoResponse, error) {
	loteID, err := uuid.Parse(req.LoteID)
	if err != nil {
		return nil, errors.New("lote_id inválido")
	}
	if _, err := s.repo.FindLoteByID(ctx, loteID); err != nil {
		return nil, errors.New("lote não encontrado")
	}
	inicio, err := time.Parse(layoutData, req.DataInicio)
	if err != nil {
		return nil, errors.New("data_inicio inválida, use YYYY-MM-DD")
	}
	fim, err := time.Parse(layoutData, req.DataFim)
	if err != nil {
		return nil, errors.New("data_fim inválida, use YYYY-MM-DD")
	}
	if fim.Before(inicio) {
		return nil, errors.New("data_fim anterior à data_inicio")
	}

	animais, err := s.repo.ListAnimais(ctx, loteID, true)
	if err != nil {
		return nil, err
	}

	custoTotal := req.QtdKg.Mul(req.CustoKg).Round(2)
	consumo := decimal.Zero
	dias := int(fim.Sub(inicio).Hours() / 24)
	if dias > 0 && len(animais) > 0 {
		consumo = req.QtdKg.
			Div(decimal.NewFromInt(int64(len(animais)))).
			Div(decimal.NewFromInt(int64(dias))).Round(3)
	}

	a := &model.ArracoamentoRecria{
		LoteRecriaID:     loteID,
		DataInicio:       inicio,
		DataFim:          fim,
		Racao:            req.Racao,
		QtdKg:            req.QtdKg,
		CustoKg:          req.CustoKg,
		CustoTotal:       custoTotal,
		ConsumoAnimalDia: consumo,
	}
	if err := s.repo.CreateArracoamento(ctx, a); err != nil {
		return nil, err
	}
	return &dto.ArracoamentoResponse{
		ID:               a.ID.String(),
		LoteID:           loteID.String(),
		Racao:            a.Racao,
		QtdKg:            a.QtdKg,
		CustoTotal:       a.CustoTotal,
		ConsumoAnimalDia: a.ConsumoAnimalDia,
	}, nil
}

func (s *recriaService) RegistrarMedicacao(ctx context.Context, req dto.MedicacaoRecriaRequest) (*dto.MedicacaoRecriaResponse, error) {
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return nil, errors.New("data inválida, use YYYY-MM-DD")
	}

	m := &model.MedicacaoRecria{
		Tipo:         req.Tipo,
		Data:         data,
		Medicamento:  req.Medicamento,
		Dose:         req.Dose,
		Via:          req.Via,
		CarenciaDias: req.CarenciaDias,
		FimCarencia:  data.AddDate(0, 0, req.CarenciaDias),
		Responsavel:  req.Responsavel,
	}
	switch req.Tipo {
	case model.MedicacaoIndividual:
		if req.AnimalRecriaID == "" {
			return nil, errors.New("medicação Individual exige animal_recria_id")
		}
		id, err := uuid.Parse(req.AnimalRecriaID)
		if err != nil {
			return nil, errors.New("animal_recria_id inválido")
		}
		if _, err := s.repo.FindAnimalByID(ctx, id); err != nil {
			return nil, errors.New("animal de recria não encontrado")
		}
		m.AnimalRecriaID = &id
	case model.MedicacaoColetiva:
		if req.LoteID == "" {
			return nil, errors.New("medicação Coletiva exige lote_id")
		}
		id, err := uuid.Parse(req.LoteID)
		if err != nil {
			return nil, errors.New("lote_id inválido")
		}
		if _, err := s.repo.FindLoteByID(ctx, id); err != nil {
			return nil, errors.New("lote não encontrado")
		}
		m.LoteRecriaID = &id
	default:
		return nil, fmt.Errorf("tipo inválido: %s", req.Tipo)
	}

	if err := s.repo.CreateMedicacao(ctx, m); err != nil {
		return nil, err
	}
	return &dto.MedicacaoRecriaResponse{
		ID:          m.ID.String(),
		Tipo:        m.Tipo,
		Data:        data.Format(layoutData),
		Medicamento: m.Medicamento,
		FimCarencia: m.FimCarencia.Format(layoutData),
	}, nil
}

func (s *recriaService) FinalizarAnimal(ctx context.Context, animalRecriaID uuid.UUID, req dto.FinalizarAnimalRecriaRequest) (*dto.AnimalRecriaResponse, error) {
	a, err := s.animalAtivo(ctx, animalRecriaID)
	if err != nil {
		return nil, err
	}
	saida, err := time.Parse(layoutData, req.DataSaida)
	if err != nil {
		return nil, errors.New("data_saida inválida, use YYYY-MM-DD")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.pesar(ctx, tx, a, model.PesagemIndividual, saida, req.PesoSaida); err != nil {
			return err
		}
		a.DataSaida = &saida
		a.PesoSaida = &req.PesoSaida
		a.Destino = req.Destino
		a.Status = model.LoteFinalizado
		return s.repo.UpdateAnimalTx(tx, a)
	})
	if txErr != nil {
		return nil, txErr
	}
	return animalRecriaToResponse(a), nil
}

// FinalizarLote closes the batch, counting remaining active animals as the
// final quantity and deriving mortality, final mean weight and mean ADG.
func (s *recriaService) FinalizarLote(ctx context.Context, loteID uuid.UUID, req dto.FinalizarLoteRecriaRequest) (*dto.LoteRecriaResponse, error) {
	lote, err := s.repo.FindLoteByID(ctx, loteID)
	if err != nil {
		return nil, errors.New("lote não encontrado")
	}
	if lote.Status != model.LoteAtivo {
		return nil, errors.New("lote já finalizado")
	}
	fim, err := time.Parse(layoutData, req.DataFim)
	if err != nil {
		return nil, errors.New("data_fim inválida, use YYYY-MM-DD")
	}

	ativos, err := s.repo.ListAnimais(ctx, loteID, true)
	if err != nil {
		return nil, err
	}
	qtdFinal := len(ativos)

	pesoTotal, gpdTotal := decimal.Zero, decimal.Zero
	comPesagem := 0
	for i := range ativos {
		if p, err := s.repo.FindUltimaPesagem(ctx, ativos[i].ID); err == nil {
			pesoTotal = pesoTotal.Add(p.PesoKg)
			gpdTotal = gpdTotal.Add(p.GPDPeriodo)
			comPesagem++
		}
	}
	if comPesagem > 0 {
		n := decimal.NewFromInt(int64(comPesagem))
		lote.PesoMedioFinal = pesoTotal.Div(n).Round(3)
		lote.GPDMedio = gpdTotal.Div(n).Round(2)
	}

	lote.DataFim = &fim
	lote.QtdFinal = &qtdFinal
	lote.MortalidadePct = mortalidadePct(lote.QtdInicial, qtdFinal)
	lote.ConversaoAlimentar = req.ConversaoAlimentar
	lote.Status = model.LoteFinalizado

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.UpdateLoteTx(tx, lote)
	})
	if txErr != nil {
		return nil, txErr
	}
	return loteRecriaToResponse(lote), nil
}

func (s *recriaService) animalAtivo(ctx context.Context, id uuid.UUID) (*model.AnimalRecria, error) {
	a, err := s.repo.FindAnimalByID(ctx, id)
	if err != nil {
		return nil, errors.New("animal de recria não encontrado")
	}
	if a.Status != model.LoteAtivo {
		return nil, errors.New("animal já finalizado")
	}
	return a, nil
}

func loteRecriaToResponse(l *model.LoteRecria) *dto.LoteRecriaResponse {
	resp := &dto.LoteRecriaResponse{
		ID:                 l.ID.String(),
		Identificacao:      l.Identificacao,
		Fase:               l.Fase,
		DataInicio:         l.DataInicio.Format(layoutData),
		QtdInicial:         l.QtdInicial,
		QtdFinal:           l.QtdFinal,
		MortalidadePct:     l.MortalidadePct,
		PesoMedioFinal:     l.PesoMedioFinal,
		GPDMedio:           l.GPDMedio,
		ConversaoAlimentar: l.ConversaoAlimentar,
		Status:             l.Status,
	}
	if l.DataFim != nil {
		v := l.DataFim.Format(layoutData)
		resp.DataFim = &v
	}
	return resp
}

func animalRecriaToResponse(a *model.AnimalRecria) *dto.AnimalRecriaResponse {
	resp := &dto.AnimalRecriaResponse{
		ID:            a.ID.String(),
		LoteID:        a.LoteRecriaID.String(),
		Identificacao: a.Identificacao,
		DataEntrada:   a.DataEntrada.Format(layoutData),
		PesoEntrada:   a.PesoEntrada,
		PesoSaida:     a.PesoSaida,
		Destino:       a.Destino,
		Status:        a.Status,
	}
	if a.DataSaida != nil {
		v := a.DataSaida.Format(layoutData)
		resp.DataSaida = &v
	}
	return resp
}

func pesagemRecriaToResponse(p *model.PesagemRecria) *dto.PesagemRecriaResponse {
	return &dto.PesagemRecriaResponse{
		ID:               p.ID.String(),
		AnimalRecriaID:   p.AnimalRecriaID.String(),
		Tipo:             p.Tipo,
		Data:             p.Data.Format(layoutData),
		PesoKg:           p.PesoKg,
		GanhoDesdeUltima: p.GanhoDesdeUltima,
		GPDPeriodo:       p.GPDPeriodo,
	}
}
