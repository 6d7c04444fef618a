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

type MaternidadeService interface {
	Abrir(ctx context.Context, req dto.AbrirMaternidadeRequest) (*dto.MaternidadeResponse, error)
	RegistrarLeitegada(ctx context.Context, req dto.RegistrarLeitegadaRequest) (*dto.LeitegadaResponse, error)
	RegistrarLeitoes(ctx context.Context, req dto.RegistrarLeitoesRequest) ([]dto.LeitaoResponse, error)
	AtualizarLeitao(ctx context.Context, id uuid.UUID, req dto.AtualizarLeitaoRequest) (*dto.LeitaoResponse, error)
	ListarLeitoes(ctx context.Context, leitegadaID uuid.UUID) ([]dto.LeitaoResponse, error)
	CalcularMetricas(ctx context.Context, leitegadaID uuid.UUID) (*dto.MetricasDesmameResponse, error)
	RegistrarDesmame(ctx context.Context, req dto.RegistrarDesmameRequest) (*dto.DesmameResponse, error)
}

type maternidadeService struct {
	repo       repository.MaternidadeRepository
	animalRepo repository.AnimalRepository
	baiaRepo   repository.BaiaRepository
}

func NewMaternidadeService(
	repo repository.MaternidadeRepository,
	animalRepo repository.AnimalRepository,
	baiaRepo repository.BaiaRepository,
) MaternidadeService {
	return &maternidadeService{repo: repo, animalRepo: animalRepo, baiaRepo: baiaRepo}
}

// Abrir allocates the sow to the maternity pen and opens the stay.
func (s *maternidadeService) Abrir(ctx context.Context, req dto.AbrirMaternidadeRequest) (*dto.MaternidadeResponse, error) {
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, errors.New("animal_id inválido")
	}
	baiaID, err := uuid.Parse(req.BaiaID)
	if err != nil {
		return nil, errors.New("baia_id inválido")
	}
	animal, err := s.animalRepo.FindByID(ctx, animalID)
	if err != nil {
		return nil, errors.New("animal não encontrado")
	}
	if animal.Sexo != model.SexoFemea {
		return nil, errors.New("maternidade exige animal Fêmea")
	}
	if _, err := s.repo.FindMaternidadeAtiva(ctx, animalID); err == nil {
		return nil, errors.New("matriz já possui maternidade ativa")
	}
	baia, err := s.baiaRepo.FindByID(ctx, baiaID)
	if err != nil {
		return nil, errors.New("baia não encontrada")
	}
	entrada, err := time.Parse(layoutData, req.DataEntrada)
	if err != nil {
		return nil, errors.New("data_entrada inválida, use YYYY-MM-DD")
	}
	parto, err := time.Parse(layoutData, req.DataParto)
	if err != nil {
		return nil, errors.New("data_parto inválida, use YYYY-MM-DD")
	}

	m := &model.Maternidade{
		AnimalID:    animalID,
		BaiaID:      baiaID,
		DataEntrada: entrada,
		DataParto:   parto,
		Status:      model.MaternidadeAtiva,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := alocarComCapacidade(s.baiaRepo, tx, baia, &model.AlocacaoBaia{
			BaiaID:      baiaID,
			AnimalID:    &animalID,
			QtdAnimais:  1,
			DataEntrada: entrada,
			Status:      model.AlocacaoAtiva,
		}); err != nil {
			return err
		}
		return s.repo.CreateMaternidadeTx(tx, m)
	})
	if txErr != nil {
		return nil, txErr
	}
	return maternidadeToResponse(m), nil
}

func (s *maternidadeService) RegistrarLeitegada(ctx context.Context, req dto.RegistrarLeitegadaRequest) (*dto.LeitegadaResponse, error) {
	maternidadeID, err := uuid.Parse(req.MaternidadeID)
	if err != nil {
		return nil, errors.New("maternidade_id inválido")
	}
	m, err := s.repo.FindMaternidadeByID(ctx, maternidadeID)
	if err != nil {
		return nil, errors.New("maternidade não encontrada")
	}
	if m.Status != model.MaternidadeAtiva {
		return nil, errors.New("maternidade não está ativa")
	}
	if _, err := s.repo.FindLeitegadaByMaternidade(ctx, maternidadeID); err == nil {
		return nil, errors.New("maternidade já possui leitegada registrada")
	}
	if req.TotalNascidos != req.NascidosVivos+req.Natimortos+req.Mumificados {
		return nil, errors.New("total_nascidos deve ser a soma de vivos, natimortos e mumificados")
	}
	dataParto, err := time.Parse(layoutData, req.DataParto)
	if err != nil {
		return nil, errors.New("data_parto inválida, use YYYY-MM-DD")
	}

	pesoMedio := decimal.Zero
	if req.NascidosVivos > 0 && req.PesoTotal.IsPositive() {
		pesoMedio = req.PesoTotal.Div(decimal.NewFromInt(int64(req.NascidosVivos))).Round(3)
	}

	l := &model.Leitegada{
		MaternidadeID:   maternidadeID,
		AnimalID:        m.AnimalID,
		DataParto:       dataParto,
		TotalNascidos:   req.TotalNascidos,
		NascidosVivos:   req.NascidosVivos,
		Natimortos:      req.Natimortos,
		Mumificados:     req.Mumificados,
		PesoTotal:       req.PesoTotal,
		PesoMedio:       pesoMedio,
		TamanhoAjustado: req.NascidosVivos,
	}
	if err := s.repo.CreateLeitegada(ctx, l); err != nil {
		return nil, err
	}
	return leitegadaToResponse(l), nil
}

func (s *maternidadeService) RegistrarLeitoes(ctx context.Context, req dto.RegistrarLeitoesRequest) ([]dto.LeitaoResponse, error) {
	leitegadaID, err := uuid.Parse(req.LeitegadaID)
	if err != nil {
		return nil, errors.New("leitegada_id inválido")
	}
	l, err := s.repo.FindLeitegadaByID(ctx, leitegadaID)
	if err != nil {
		return nil, errors.New("leitegada não encontrada")
	}

	leitoes := make([]model.Leitao, len(req.Leitoes))
	for i, lr := range req.Leitoes {
		if lr.Sexo != model.SexoFemea && lr.Sexo != model.SexoMacho {
			return nil, fmt.Errorf("sexo inválido: %s", lr.Sexo)
		}
		leitoes[i] = model.Leitao{
			LeitegadaID:    leitegadaID,
			MaeBiologicaID: l.AnimalID,
			Identificacao:  lr.Identificacao,
			Sexo:           lr.Sexo,
			DataNascimento: l.DataParto,
			PesoNascimento: lr.PesoNascimento,
			PesoAtual:      lr.PesoNascimento,
			Status:         model.LeitaoVivo,
			DataStatus:     l.DataParto,
		}
	}
	if err := s.repo.CreateLeitoes(ctx, leitoes); err != nil {
		return nil, err
	}
	resp := make([]dto.LeitaoResponse, len(leitoes))
	for i := range leitoes {
		resp[i] = *leitaoToResponse(&leitoes[i])
	}
	return resp, nil
}

func (s *maternidadeService) AtualizarLeitao(ctx context.Context, id uuid.UUID, req dto.AtualizarLeitaoRequest) (*dto.LeitaoResponse, error) {
	leitao, err := s.repo.FindLeitaoByID(ctx, id)
	if err != nil {
		return nil, errors.New("leitão não encontrado")
	}
	if req.PesoAtual != nil {
		if req.PesoAtual.IsNegative() {
			return nil, errors.New("peso_atual não pode ser negativo")
		}
		leitao.PesoAtual = req.PesoAtual
	}
	if req.Status != "" && req.Status != leitao.Status {
		leitao.Status = req.Status
		leitao.DataStatus = time.Now()
	}
	if req.CausaMorte != nil {
		leitao.CausaMorte = req.CausaMorte
	}
	if req.MaeAdotivaID != nil {
		adotiva, err := uuid.Parse(*req.MaeAdotivaID)
		if err != nil {
			return nil, errors.New("mae_adotiva_id inválido")
		}
		leitao.MaeAdotivaID = &adotiva
	}
	if err := s.repo.UpdateLeitao(ctx, leitao); err != nil {
		return nil, err
	}
	return leitaoToResponse(leitao), nil
}

func (s *maternidadeService) ListarLeitoes(ctx context.Context, leitegadaID uuid.UUID) ([]dto.LeitaoResponse, error) {
	leitoes, err := s.repo.ListLeitoes(ctx, leitegadaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LeitaoResponse, len(leitoes))
	for i := range leitoes {
		resp[i] = *leitaoToResponse(&leitoes[i])
	}
	return resp, nil
}

// calcularMetricas is the pure weaning computation over the litter's piglets.
// When any live piglet lacks a current weight, all weight-derived fields
// collapse to zero so partial data never produces misleading averages.
func calcularMetricas(leitegadaID uuid.UUID, leitoes []model.Leitao, ref time.Time) *dto.MetricasDesmameResponse {
	resp := &dto.MetricasDesmameResponse{
		LeitegadaID:      leitegadaID.String(),
		PesoTotal:        decimal.Zero,
		PesoMedio:        decimal.Zero,
		GanhoMedioDiario: decimal.Zero,
	}

	var vivos []model.Leitao
	for _, l := range leitoes {
		if l.Status == model.LeitaoVivo {
			vivos = append(vivos, l)
		}
	}
	resp.TotalDesmamados = len(vivos)
	if len(vivos) == 0 {
		return resp
	}

	somaIdade := 0
	for _, l := range vivos {
		somaIdade += int(ref.Sub(l.DataNascimento).Hours() / 24)
	}
	resp.IdadeMediaDias = somaIdade / len(vivos)

	pesoTotal := decimal.Zero
	for _, l := range vivos {
		if l.PesoAtual == nil {
			return resp
		}
		pesoTotal = pesoTotal.Add(*l.PesoAtual)
	}
	n := decimal.NewFromInt(int64(len(vivos)))
	resp.PesoTotal = pesoTotal
	resp.PesoMedio = pesoTotal.Div(n).Round(3)

	// Mean daily gain in g/day, only when birth weights exist
	somaGanho := decimal.Zero
	comGanho := 0
	for _, l := range vivos {
		if l.PesoNascimento == nil {
			continue
		}
		idade := int(ref.Sub(l.DataNascimento).Hours() / 24)
		if idade <= 0 {
			continue
		}
		ganho := l.PesoAtual.Sub(*l.PesoNascimento).
			Mul(decimal.NewFromInt(1000)).
			Div(decimal.NewFromInt(int64(idade)))
		somaGanho = somaGanho.Add(ganho)
		comGanho++
	}
	if comGanho > 0 {
		resp.GanhoMedioDiario = somaGanho.Div(decimal.NewFromInt(int64(comGanho))).Round(2)
	}
	return resp
}

func (s *maternidadeService) CalcularMetricas(ctx context.Context, leitegadaID uuid.UUID) (*dto.MetricasDesmameResponse, error) {
	if _, err := s.repo.FindLeitegadaByID(ctx, leitegadaID); err != nil {
		return nil, errors.New("leitegada não encontrada")
	}
	leitoes, err := s.repo.ListLeitoes(ctx, leitegadaID)
	if err != nil {
		return nil, err
	}
	return calcularMetricas(leitegadaID, leitoes, time.Now()), nil
}

// RegistrarDesmame commits the weaning cascade in one transaction:
//  1. persist the Desmame with the computed metrics
//  2. mark the litter's live piglets as Desmamado
//  3. finalize the maternity stay with exit date
//  4. restore the sow's category to Matriz
//  5. close the sow's active pen allocation, reason "Desmame"
//  6. when destination is Creche, open a cohort allocation in the target pen
func (s *maternidadeService) RegistrarDesmame(ctx context.Context, req dto.RegistrarDesmameRequest) (*dto.DesmameResponse, error) {
	leitegadaID, err := uuid.Parse(req.LeitegadaID)
	if err != nil {
		return nil, errors.New("leitegada_id inválido")
	}
	if !model.DestinosLeitoes[req.DestinoLeitoes] {
		return nil, fmt.Errorf("destino_leitoes inválido: %s", req.DestinoLeitoes)
	}
	if !model.DestinosMatriz[req.DestinoMatriz] {
		return nil, fmt.Errorf("destino_matriz inválido: %s", req.DestinoMatriz)
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return nil, errors.New("data inválida, use YYYY-MM-DD")
	}

	leitegada, err := s.repo.FindLeitegadaByID(ctx, leitegadaID)
	if err != nil {
		return nil, errors.New("leitegada não encontrada")
	}
	if _, err := s.repo.FindDesmameByLeitegada(ctx, leitegadaID); err == nil {
		return nil, errors.New("leitegada já desmamada")
	}
	maternidade, err := s.repo.FindMaternidadeByID(ctx, leitegada.MaternidadeID)
	if err != nil {
		return nil, errors.New("maternidade não encontrada")
	}
	leitoes, err := s.repo.ListLeitoes(ctx, leitegadaID)
	if err != nil {
		return nil, err
	}
	metricas := calcularMetricas(leitegadaID, leitoes, data)

	var baiaDestinoID *uuid.UUID
	var baiaDestino *model.Baia
	if req.DestinoLeitoes == "Creche" {
		if req.BaiaDestinoID == "" {
			return nil, errors.New("destino Creche exige baia_destino_id")
		}
		id, err := uuid.Parse(req.BaiaDestinoID)
		if err != nil {
			return nil, errors.New("baia_destino_id inválido")
		}
		if baiaDestino, err = s.baiaRepo.FindByID(ctx, id); err != nil {
			return nil, errors.New("baia de destino não encontrada")
		}
		baiaDestinoID = &id
	}

	desmame := &model.Desmame{
		LeitegadaID:      leitegadaID,
		AnimalID:         maternidade.AnimalID,
		Data:             data,
		IdadeMediaDias:   metricas.IdadeMediaDias,
		TotalDesmamados:  metricas.TotalDesmamados,
		PesoTotal:        metricas.PesoTotal,
		PesoMedio:        metricas.PesoMedio,
		GanhoMedioDiario: metricas.GanhoMedioDiario,
		DestinoLeitoes:   req.DestinoLeitoes,
		DestinoMatriz:    req.DestinoMatriz,
		BaiaDestinoID:    baiaDestinoID,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateDesmameTx(tx, desmame); err != nil {
			return err
		}
		restantes := metricas.TotalDesmamados
		for i := range leitoes {
			if restantes == 0 {
				break
			}
			if leitoes[i].Status != model.LeitaoVivo {
				continue
			}
			if err := s.repo.UpdateLeitaoStatusTx(tx, leitoes[i].ID, model.LeitaoDesmamado, data); err != nil {
				return err
			}
			restantes--
		}
		maternidade.Status = model.MaternidadeFinalizada
		maternidade.DataSaida = &data
		if err := s.repo.UpdateMaternidadeTx(tx, maternidade); err != nil {
			return err
		}
		if err := s.animalRepo.UpdateCategoriaTx(tx, maternidade.AnimalID, model.CategoriaMatriz); err != nil {
			return err
		}
		if aloc, err := s.baiaRepo.FindAlocacaoAtivaByAnimal(ctx, maternidade.AnimalID); err == nil {
			if err := s.baiaRepo.FecharAlocacaoTx(tx, aloc.ID, data, "Desmame"); err != nil {
				return err
			}
		}
		if baiaDestino != nil {
			descricao := fmt.Sprintf("Leitegada %s desmamada", leitegadaID)
			return alocarComCapacidade(s.baiaRepo, tx, baiaDestino, &model.AlocacaoBaia{
				BaiaID:        baiaDestino.ID,
				LoteDescricao: &descricao,
				QtdAnimais:    metricas.TotalDesmamados,
				DataEntrada:   data,
				Status:        model.AlocacaoAtiva,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.DesmameResponse{
		ID:               desmame.ID.String(),
		LeitegadaID:      leitegadaID.String(),
		AnimalID:         maternidade.AnimalID.String(),
		Data:             data.Format(layoutData),
		IdadeMediaDias:   desmame.IdadeMediaDias,
		TotalDesmamados:  desmame.TotalDesmamados,
		PesoTotal:        desmame.PesoTotal,
		PesoMedio:        desmame.PesoMedio,
		GanhoMedioDiario: desmame.GanhoMedioDiario,
		DestinoLeitoes:   desmame.DestinoLeitoes,
		DestinoMatriz:    desmame.DestinoMatriz,
	}, nil
}

func maternidadeToResponse(m *model.Maternidade) *dto.MaternidadeResponse {
	resp := &dto.MaternidadeResponse{
		ID:          m.ID.String(),
		AnimalID:    m.AnimalID.String(),
		BaiaID:      m.BaiaID.String(),
		DataEntrada: m.DataEntrada.Format(layoutData),
		DataParto:   m.DataParto.Format(layoutData),
		Status:      m.Status,
	}
	if m.DataSaida != nil {
		v := m.DataSaida.Format(layoutData)
		resp.DataSaida = &v
	}
	return resp
}

func leitegadaToResponse(l *model.Leitegada) *dto.LeitegadaResponse {
	return &dto.LeitegadaResponse{
		ID:              l.ID.String(),
		MaternidadeID:   l.MaternidadeID.String(),
		AnimalID:        l.AnimalID.String(),
		DataParto:       l.DataParto.Format(layoutData),
		TotalNascidos:   l.TotalNascidos,
		NascidosVivos:   l.NascidosVivos,
		Natimortos:      l.Natimortos,
		Mumificados:     l.Mumificados,
		PesoTotal:       l.PesoTotal,
		PesoMedio:       l.PesoMedio,
		TamanhoAjustado: l.TamanhoAjustado,
	}
}

func leitaoToResponse(l *model.Leitao) *dto.LeitaoResponse {
	return &dto.LeitaoResponse{
		ID:             l.ID.String(),
		LeitegadaID:    l.LeitegadaID.String(),
		Identificacao:  l.Identificacao,
		Sexo:           l.Sexo,
		DataNascimento: l.DataNascimento.Format(layoutData),
		PesoNascimento: l.PesoNascimento,
		PesoAtual:      l.PesoAtual,
		Status:         l.Status,
		DataStatus:     l.DataStatus.Format(layoutData),
	}
}
