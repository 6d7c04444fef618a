package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"suinotrack/internal/dto"
	"suinotrack/internal/model"
	"suinotrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReproducaoService interface {
	RegistrarCio(ctx context.Context, req dto.RegistrarCioRequest) (*dto.CicloResponse, error)
	ListarCiclos(ctx context.Context, animalID uuid.UUID) ([]dto.CicloResponse, error)
	RegistrarInseminacao(ctx context.Context, req dto.RegistrarInseminacaoRequest) (*dto.InseminacaoResponse, error)
	AbrirGestacao(ctx context.Context, req dto.AbrirGestacaoRequest) (*dto.GestacaoResponse, error)
	RegistrarParto(ctx context.Context, gestacaoID uuid.UUID, req dto.RegistrarPartoRequest) (*dto.GestacaoResponse, error)

	RegistrarCioRufiao(ctx context.Context, req dto.RegistrarCioRufiaoRequest) (*model.RegistroCio, error)
	AnalisarIntervalos(ctx context.Context, animalID uuid.UUID) (*dto.AnaliseIntervaloResponse, error)
	PreverProximoCio(ctx context.Context, animalID uuid.UUID) (*dto.PrevisaoCioResponse, error)
	RelatorioCios(ctx context.Context, inicio, fim time.Time) ([]dto.RegistroCioItem, error)

	ProximosCios(ctx context.Context, ate time.Time) ([]dto.ProximoCioItem, error)
	PartosPrevistos(ctx context.Context) ([]dto.PartoPrevistoItem, error)
}

type reproducaoService struct {
	repo       repository.ReproducaoRepository
	animalRepo repository.AnimalRepository
}

func NewReproducaoService(repo repository.ReproducaoRepository, animalRepo repository.AnimalRepository) ReproducaoService {
	return &reproducaoService{repo: repo, animalRepo: animalRepo}
}

func (s *reproducaoService) femeaAtiva(ctx context.Context, animalID uuid.UUID) (*model.Animal, error) {
	a, err := s.animalRepo.FindByID(ctx, animalID)
	if err != nil {
		return nil, errors.New("animal não encontrado")
	}
	if a.Status != model.StatusAnimalAtivo {
		return nil, errors.New("animal removido não aceita novos registros")
	}
	if a.Sexo != model.SexoFemea {
		return nil, errors.New("operação reprodutiva exige animal Fêmea")
	}
	return a, nil
}

func (s *reproducaoService) RegistrarCio(ctx context.Context, req dto.RegistrarCioRequest) (*dto.CicloResponse, error) {
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, errors.New("animal_id inválido")
	}
	if _, err := s.femeaAtiva(ctx, animalID); err != nil {
		return nil, err
	}
	if !model.IntensidadesCio[req.IntensidadeCio] {
		return nil, fmt.Errorf("intensidade_cio inválida: %s", req.IntensidadeCio)
	}
	dataCio, err := time.Parse(layoutData, req.DataCio)
	if err != nil {
		return nil, errors.New("data_cio inválida, use YYYY-MM-DD")
	}

	ultimo, err := s.repo.MaxNumeroCiclo(ctx, animalID)
	if err != nil {
		return nil, err
	}

	ciclo := &model.CicloReprodutivo{
		AnimalID:       animalID,
		NumeroCiclo:    ultimo + 1,
		DataCio:        dataCio,
		IntensidadeCio: req.IntensidadeCio,
		Irmas:          model.StringList(req.Irmas),
		QtdIrmas:       len(req.Irmas),
		Status:         model.CicloDetectado,
		Observacao:     req.Observacao,
	}
	if err := s.repo.CreateCiclo(ctx, ciclo); err != nil {
		return nil, err
	}
	return cicloToResponse(ciclo), nil
}

func (s *reproducaoService) ListarCiclos(ctx context.Context, animalID uuid.UUID) ([]dto.CicloResponse, error) {
	ciclos, err := s.repo.ListCiclos(ctx, animalID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CicloResponse, len(ciclos))
	for i := range ciclos {
		resp[i] = *cicloToResponse(&ciclos[i])
	}
	return resp, nil
}

// RegistrarInseminacao persists the event and, inside the same transaction,
// transitions the most recent cycle whose estrus date falls within ±5 days of
// the insemination date to Inseminado.
func (s *reproducaoService) RegistrarInseminacao(ctx context.Context, req dto.RegistrarInseminacaoRequest) (*dto.InseminacaoResponse, error) {
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, errors.New("animal_id inválido")
	}
	if _, err := s.femeaAtiva(ctx, animalID); err != nil {
		return nil, err
	}
	if !model.OrdensDose[req.OrdemDose] {
		return nil, fmt.Errorf("ordem_dose inválida: %s", req.OrdemDose)
	}
	if !model.MetodosInseminacao[req.Metodo] {
		return nil, fmt.Errorf("método inválido: %s", req.Metodo)
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return nil, errors.New("data inválida, use YYYY-MM-DD")
	}

	// Most recent cycle within the matching window, resolved before the tx
	ciclos, err := s.repo.ListCiclos(ctx, animalID)
	if err != nil {
		return nil, err
	}
	var alvo *model.CicloReprodutivo
	for i := range ciclos {
		diff := data.Sub(ciclos[i].DataCio).Hours() / 24
		if math.Abs(diff) <= model.JanelaCioDias {
			if alvo == nil || ciclos[i].DataCio.After(alvo.DataCio) {
				alvo = &ciclos[i]
			}
		}
	}

	ins := &model.Inseminacao{
		AnimalID:       animalID,
		Data:           data,
		LoteSemen:      req.LoteSemen,
		LinhagemSemen:  req.LinhagemSemen,
		IdadeSemenDias: req.IdadeSemenDias,
		VolumeDoseMl:   req.VolumeDoseMl,
		OrdemDose:      req.OrdemDose,
		Metodo:         req.Metodo,
		Tecnico:        req.Tecnico,
		SemanaSuina:    semanaSuina(data),
		DataRegistro:   time.Now(),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateInseminacaoTx(tx, ins); err != nil {
			return err
		}
		if alvo != nil {
			alvo.Status = model.CicloInseminado
			nota := fmt.Sprintf("Inseminada em %s (lote %s)", data.Format(layoutData), req.LoteSemen)
			if alvo.Observacao != "" {
				alvo.Observacao += "; " + nota
			} else {
				alvo.Observacao = nota
			}
			return s.repo.UpdateCicloTx(tx, alvo)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.InseminacaoResponse{
		ID:              ins.ID.String(),
		AnimalID:        animalID.String(),
		Data:            data.Format(layoutData),
		LoteSemen:       ins.LoteSemen,
		OrdemDose:       ins.OrdemDose,
		Metodo:          ins.Metodo,
		SemanaSuina:     ins.SemanaSuina,
		CicloAtualizado: alvo != nil,
	}, nil
}

func (s *reproducaoService) AbrirGestacao(ctx context.Context, req dto.AbrirGestacaoRequest) (*dto.GestacaoResponse, error) {
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, errors.New("animal_id inválido")
	}
	if _, err := s.femeaAtiva(ctx, animalID); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindGestacaoAberta(ctx, animalID); err == nil {
		return nil, errors.New("animal já possui gestação em aberto")
	}
	cobertura, err := time.Parse(layoutData, req.DataCobertura)
	if err != nil {
		return nil, errors.New("data_cobertura inválida, use YYYY-MM-DD")
	}
	status := req.Status
	if status == "" {
		status = model.GestacaoConfirmada
	}

	g := &model.Gestacao{
		AnimalID:      animalID,
		DataCobertura: cobertura,
		PrevisaoParto: cobertura.AddDate(0, 0, model.DiasGestacao),
		Status:        status,
	}
	if err := s.repo.CreateGestacao(ctx, g); err != nil {
		return nil, err
	}
	return gestacaoToResponse(g), nil
}

func (s *reproducaoService) RegistrarParto(ctx context.Context, gestacaoID uuid.UUID, req dto.RegistrarPartoRequest) (*dto.GestacaoResponse, error) {
	g, err := s.repo.FindGestacaoByID(ctx, gestacaoID)
	if err != nil {
		return nil, errors.New("gestação não encontrada")
	}
	if g.DataParto != nil {
		return nil, errors.New("gestação já encerrada")
	}
	dataParto, err := time.Parse(layoutData, req.DataParto)
	if err != nil {
		return nil, errors.New("data_parto inválida, use YYYY-MM-DD")
	}
	// PrevisaoParto stays fixed even when the farrowing lands elsewhere
	g.DataParto = &dataParto
	g.QtdLeitoes = &req.QtdLeitoes
	if err := s.repo.UpdateGestacao(ctx, g); err != nil {
		return nil, err
	}
	return gestacaoToResponse(g), nil
}

func (s *reproducaoService) RegistrarCioRufiao(ctx context.Context, req dto.RegistrarCioRufiaoRequest) (*model.RegistroCio, error) {
	rufiaoID, err := uuid.Parse(req.RufiaoID)
	if err != nil {
		return nil, errors.New("rufiao_id inválido")
	}
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, errors.New("animal_id inválido")
	}
	rufiao, err := s.animalRepo.FindByID(ctx, rufiaoID)
	if err != nil {
		return nil, errors.New("rufião não encontrado")
	}
	if rufiao.Categoria != model.CategoriaRufiao {
		return nil, errors.New("animal indicado não é um rufião")
	}
	if _, err := s.femeaAtiva(ctx, animalID); err != nil {
		return nil, err
	}
	if !model.IntensidadesRegistroCio[req.Intensidade] {
		return nil, fmt.Errorf("intensidade inválida: %s", req.Intensidade)
	}
	dataHora, err := time.Parse(time.RFC3339, req.DataHora)
	if err != nil {
		return nil, errors.New("data_hora inválida, use RFC3339")
	}

	rc := &model.RegistroCio{
		RufiaoID:       rufiaoID,
		AnimalID:       animalID,
		DataHora:       dataHora,
		Intensidade:    req.Intensidade,
		Comportamentos: model.StringList(req.Comportamentos),
		DuracaoMin:     req.DuracaoMin,
		SinaisExternos: req.SinaisExternos,
		Confirmado:     req.Confirmado,
		Responsavel:    req.Responsavel,
	}
	if err := s.repo.CreateRegistroCio(ctx, rc); err != nil {
		return nil, err
	}
	return rc, nil
}

// intervalosConfirmados returns the day gaps between consecutive confirmed
// detections, oldest first.
func intervalosConfirmados(registros []model.RegistroCio) []int {
	var out []int
	for i := 1; i < len(registros); i++ {
		dias := int(math.Round(registros[i].DataHora.Sub(registros[i-1].DataHora).Hours() / 24))
		out = append(out, dias)
	}
	return out
}

func (s *reproducaoService) AnalisarIntervalos(ctx context.Context, animalID uuid.UUID) (*dto.AnaliseIntervaloResponse, error) {
	registros, err := s.repo.ListRegistrosCioConfirmados(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if len(registros) < 2 {
		return nil, errors.New("análise exige ao menos dois registros confirmados")
	}
	intervalos := intervalosConfirmados(registros)

	soma, min, max := 0, intervalos[0], intervalos[0]
	for _, d := range intervalos {
		soma += d
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	media := decimal.NewFromInt(int64(soma)).Div(decimal.NewFromInt(int64(len(intervalos)))).Round(2)

	return &dto.AnaliseIntervaloResponse{
		AnimalID:        animalID.String(),
		QtdRegistros:    len(registros),
		UltimoIntervalo: intervalos[len(intervalos)-1],
		MediaIntervalo:  media,
		MinIntervalo:    min,
		MaxIntervalo:    max,
	}, nil
}

func (s *reproducaoService) PreverProximoCio(ctx context.Context, animalID uuid.UUID) (*dto.PrevisaoCioResponse, error) {
	analise, err := s.AnalisarIntervalos(ctx, animalID)
	if err != nil {
		return nil, err
	}
	registros, err := s.repo.ListRegistrosCioConfirmados(ctx, animalID)
	if err != nil {
		return nil, err
	}
	ultima := registros[len(registros)-1].DataHora

	media, _ := analise.MediaIntervalo.Float64()
	previsto := ultima.AddDate(0, 0, int(math.Round(media)))

	confianca := "Média"
	if media >= 20 && media <= 22 {
		confianca = "Alta"
	}

	return &dto.PrevisaoCioResponse{
		AnimalID:        animalID.String(),
		UltimaDeteccao:  ultima.Format(layoutData),
		ProximoPrevisto: previsto.Format(layoutData),
		Confianca:       confianca,
	}, nil
}

func (s *reproducaoService) RelatorioCios(ctx context.Context, inicio, fim time.Time) ([]dto.RegistroCioItem, error) {
	registros, err := s.repo.ListRegistrosCioPeriodo(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RegistroCioItem, 0, len(registros))
	for _, rc := range registros {
		rufiao, animal := "", ""
		if rc.Rufiao != nil {
			rufiao = rc.Rufiao.Identificacao
		}
		if rc.Animal != nil {
			animal = rc.Animal.Identificacao
		}
		items = append(items, dto.RegistroCioItem{
			ID:          rc.ID.String(),
			Rufiao:      rufiao,
			Animal:      animal,
			DataHora:    rc.DataHora.Format(time.RFC3339),
			Intensidade: rc.Intensidade,
			DuracaoMin:  rc.DuracaoMin,
			Confirmado:  rc.Confirmado,
			Responsavel: rc.Responsavel,
		})
	}
	return items, nil
}

// ProximosCios lists cycles whose derived next estrus lands up to the given
// horizon. The prediction is computed on the fly, never read from storage.
func (s *reproducaoService) ProximosCios(ctx context.Context, ate time.Time) ([]dto.ProximoCioItem, error) {
	inicio := ate.AddDate(0, 0, -model.DiasCicloEstral)
	ciclos, err := s.repo.ListCiclosPeriodo(ctx, inicio, ate)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProximoCioItem, 0, len(ciclos))
	for _, c := range ciclos {
		if c.Status == model.CicloInseminado {
			continue
		}
		ident := ""
		if c.Animal != nil {
			ident = c.Animal.Identificacao
		}
		items = append(items, dto.ProximoCioItem{
			AnimalID:      c.AnimalID.String(),
			Identificacao: ident,
			NumeroCiclo:   c.NumeroCiclo,
			DataCio:       c.DataCio.Format(layoutData),
			ProximoCio:    c.ProximoCio().Format(layoutData),
		})
	}
	return items, nil
}

func (s *reproducaoService) PartosPrevistos(ctx context.Context) ([]dto.PartoPrevistoItem, error) {
	gestacoes, err := s.repo.ListGestacoesAbertas(ctx)
	if err != nil {
		return nil, err
	}
	hoje := time.Now()
	items := make([]dto.PartoPrevistoItem, 0, len(gestacoes))
	for _, g := range gestacoes {
		ident := ""
		if g.Animal != nil {
			ident = g.Animal.Identificacao
		}
		items = append(items, dto.PartoPrevistoItem{
			AnimalID:      g.AnimalID.String(),
			Identificacao: ident,
			DataCobertura: g.DataCobertura.Format(layoutData),
			PrevisaoParto: g.PrevisaoParto.Format(layoutData),
			DiasRestantes: int(g.PrevisaoParto.Sub(hoje).Hours() / 24),
		})
	}
	return items, nil
}

// semanaSuina is the ISO week of the insemination date, clipped to 52.
func semanaSuina(data time.Time) int {
	_, semana := data.ISOWeek()
	if semana > 52 {
		semana = 52
	}
	return semana
}

func cicloToResponse(c *model.CicloReprodutivo) *dto.CicloResponse {
	return &dto.CicloResponse{
		ID:             c.ID.String(),
		AnimalID:       c.AnimalID.String(),
		NumeroCiclo:    c.NumeroCiclo,
		DataCio:        c.DataCio.Format(layoutData),
		IntensidadeCio: c.IntensidadeCio,
		Irmas:          c.Irmas,
		QtdIrmas:       c.QtdIrmas,
		Status:         c.Status,
		ProximoCio:     c.ProximoCio().Format(layoutData),
		Observacao:     c.Observacao,
	}
}

func gestacaoToResponse(g *model.Gestacao) *dto.GestacaoResponse {
	resp := &dto.GestacaoResponse{
		ID:            g.ID.String(),
		AnimalID:      g.AnimalID.String(),
		DataCobertura: g.DataCobertura.Format(layoutData),
		PrevisaoParto: g.PrevisaoParto.Format(layoutData),
		QtdLeitoes:    g.QtdLeitoes,
		Status:        g.Status,
	}
	if g.DataParto != nil {
		v := g.DataParto.Format(layoutData)
		resp.DataParto = &v
	}
	return resp
}
