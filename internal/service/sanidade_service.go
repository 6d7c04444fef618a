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
)

type SanidadeService interface {
	CriarVacina(ctx context.Context, req dto.CriarVacinaRequest) (*dto.VacinaResponse, error)
	ListarVacinas(ctx context.Context) ([]dto.VacinaResponse, error)
	CriarProtocolo(ctx context.Context, req dto.CriarProtocoloRequest) (*model.ProtocoloVacinacao, error)
	RegistrarVacinacao(ctx context.Context, req dto.RegistrarVacinacaoRequest) (*model.RegistroVacinacao, error)
	// ProximasVacinacoes intersects the protocols of the animal's category
	// against its application history.
	ProximasVacinacoes(ctx context.Context, animalID uuid.UUID) ([]dto.ProximaVacinacaoItem, error)

	RegistrarMortalidade(ctx context.Context, req dto.RegistrarMortalidadeRequest) (*model.RegistroMortalidade, error)
	EstatisticasMortalidade(ctx context.Context, filter dto.MortalidadeFilter) (*dto.EstatisticasMortalidadeResponse, error)
}

type sanidadeService struct {
	repo       repository.SanidadeRepository
	animalRepo repository.AnimalRepository
}

func NewSanidadeService(repo repository.SanidadeRepository, animalRepo repository.AnimalRepository) SanidadeService {
	return &sanidadeService{repo: repo, animalRepo: animalRepo}
}

func (s *sanidadeService) CriarVacina(ctx context.Context, req dto.CriarVacinaRequest) (*dto.VacinaResponse, error) {
	v := &model.Vacina{
		Nome:         req.Nome,
		Fabricante:   req.Fabricante,
		Doencas:      req.Doencas,
		DoseMl:       req.DoseMl,
		ViaAplicacao: req.ViaAplicacao,
	}
	if err := s.repo.CreateVacina(ctx, v); err != nil {
		return nil, err
	}
	return vacinaToResponse(v), nil
}

func (s *sanidadeService) ListarVacinas(ctx context.Context) ([]dto.VacinaResponse, error) {
	vs, err := s.repo.ListVacinas(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VacinaResponse, len(vs))
	for i := range vs {
		resp[i] = *vacinaToResponse(&vs[i])
	}
	return resp, nil
}

func (s *sanidadeService) CriarProtocolo(ctx context.Context, req dto.CriarProtocoloRequest) (*model.ProtocoloVacinacao, error) {
	vacinaID, err := uuid.Parse(req.VacinaID)
	if err != nil {
		return nil, errors.New("vacina_id inválido")
	}
	if _, err := s.repo.FindVacinaByID(ctx, vacinaID); err != nil {
		return nil, errors.New("vacina não encontrada")
	}
	if !model.CategoriasAnimal[req.CategoriaAnimal] {
		return nil, fmt.Errorf("categoria inválida: %s", req.CategoriaAnimal)
	}
	p := &model.ProtocoloVacinacao{
		VacinaID:             vacinaID,
		CategoriaAnimal:      req.CategoriaAnimal,
		IdadeAplicacaoDias:   req.IdadeAplicacaoDias,
		IntervaloReforcoDias: req.IntervaloReforcoDias,
		Observacao:           req.Observacao,
	}
	if err := s.repo.CreateProtocolo(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *sanidadeService) RegistrarVacinacao(ctx context.Context, req dto.RegistrarVacinacaoRequest) (*model.RegistroVacinacao, error) {
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, errors.New("animal_id inválido")
	}
	vacinaID, err := uuid.Parse(req.VacinaID)
	if err != nil {
		return nil, errors.New("vacina_id inválido")
	}
	if _, err := s.animalRepo.FindByID(ctx, animalID); err != nil {
		return nil, errors.New("animal não encontrado")
	}
	if _, err := s.repo.FindVacinaByID(ctx, vacinaID); err != nil {
		return nil, errors.New("vacina não encontrada")
	}
	data, err := time.Parse(layoutData, req.DataAplicacao)
	if err != nil {
		return nil, errors.New("data_aplicacao inválida, use YYYY-MM-DD")
	}

	rv := &model.RegistroVacinacao{
		AnimalID:      animalID,
		VacinaID:      vacinaID,
		DataAplicacao: data,
		DoseMl:        req.DoseMl,
		Lote:          req.Lote,
		Responsavel:   req.Responsavel,
	}
	if req.ProtocoloID != "" {
		protocoloID, err := uuid.Parse(req.ProtocoloID)
		if err != nil {
			return nil, errors.New("protocolo_id inválido")
		}
		rv.ProtocoloID = &protocoloID
	}
	if err := s.repo.CreateRegistroVacinacao(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *sanidadeService) ProximasVacinacoes(ctx context.Context, animalID uuid.UUID) ([]dto.ProximaVacinacaoItem, error) {
	animal, err := s.animalRepo.FindByID(ctx, animalID)
	if err != nil {
		return nil, errors.New("animal não encontrado")
	}
	protocolos, err := s.repo.ListProtocolosPorCategoria(ctx, animal.Categoria)
	if err != nil {
		return nil, err
	}

	hoje := time.Now()
	idade := animal.IdadeDias(hoje)

	items := make([]dto.ProximaVacinacaoItem, 0)
	for _, p := range protocolos {
		if idade < p.IdadeAplicacaoDias {
			continue
		}
		corte := hoje.AddDate(0, 0, -p.IntervaloReforcoDias)
		if _, err := s.repo.FindAplicacaoRecente(ctx, animalID, p.ID, corte); err == nil {
			continue // applied within the booster interval
		}
		nome := ""
		if p.Vacina != nil {
			nome = p.Vacina.Nome
		}
		items = append(items, dto.ProximaVacinacaoItem{
			AnimalID:       animalID.String(),
			Identificacao:  animal.Identificacao,
			ProtocoloID:    p.ID.String(),
			Vacina:         nome,
			IdadeDias:      idade,
			IdadeAplicacao: p.IdadeAplicacaoDias,
			DiasAtraso:     idade - p.IdadeAplicacaoDias,
		})
	}
	return items, nil
}

func (s *sanidadeService) RegistrarMortalidade(ctx context.Context, req dto.RegistrarMortalidadeRequest) (*model.RegistroMortalidade, error) {
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, errors.New("animal_id inválido")
	}
	animal, err := s.animalRepo.FindByID(ctx, animalID)
	if err != nil {
		return nil, errors.New("animal não encontrado")
	}
	dataMorte, err := time.Parse(layoutData, req.DataMorte)
	if err != nil {
		return nil, errors.New("data_morte inválida, use YYYY-MM-DD")
	}

	rm := &model.RegistroMortalidade{
		AnimalID:           animalID,
		DataMorte:          dataMorte,
		Causa:              req.Causa,
		Categoria:          animal.Categoria,
		IdadeDias:          animal.IdadeDias(dataMorte),
		PesoMorteKg:        req.PesoMorteKg,
		Local:              req.Local,
		Necropsia:          req.Necropsia,
		ResultadoNecropsia: req.ResultadoNecropsia,
		MedidasPreventivas: req.MedidasPreventivas,
		Responsavel:        req.Responsavel,
		Observacoes:        req.Observacoes,
	}
	if err := s.repo.CreateMortalidade(ctx, rm); err != nil {
		return nil, err
	}
	// The animal leaves the registry via soft removal
	if err := s.animalRepo.Remover(ctx, animalID); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *sanidadeService) EstatisticasMortalidade(ctx context.Context, filter dto.MortalidadeFilter) (*dto.EstatisticasMortalidadeResponse, error) {
	inicio, fim, err := parsePeriodo(filter.Inicio, filter.Fim)
	if err != nil {
		return nil, err
	}
	registros, err := s.repo.ListMortalidadePeriodo(ctx, inicio, fim, filter.Categoria)
	if err != nil {
		return nil, err
	}

	resp := &dto.EstatisticasMortalidadeResponse{
		Total:          len(registros),
		PorCausa:       map[string]int{},
		PorLocal:       map[string]int{},
		IdadeMediaDias: decimal.Zero,
	}
	if len(registros) == 0 {
		return resp, nil
	}
	somaIdade := 0
	for _, r := range registros {
		resp.PorCausa[r.Causa]++
		if r.Local != "" {
			resp.PorLocal[r.Local]++
		}
		somaIdade += r.IdadeDias
	}
	resp.IdadeMediaDias = decimal.NewFromInt(int64(somaIdade)).
		Div(decimal.NewFromInt(int64(len(registros)))).Round(1)
	return resp, nil
}

// parsePeriodo defaults to the last 30 days when bounds are missing.
func parsePeriodo(inicioStr, fimStr string) (time.Time, time.Time, error) {
	fim := time.Now()
	inicio := fim.AddDate(0, 0, -30)
	var err error
	if fimStr != "" {
		if fim, err = time.Parse(layoutData, fimStr); err != nil {
			return inicio, fim, errors.New("fim inválido, use YYYY-MM-DD")
		}
	}
	if inicioStr != "" {
		if inicio, err = time.Parse(layoutData, inicioStr); err != nil {
			return inicio, fim, errors.New("inicio inválido, use YYYY-MM-DD")
		}
	}
	if fim.Before(inicio) {
		return inicio, fim, errors.New("fim anterior ao início")
	}
	return inicio, fim, nil
}

func vacinaToResponse(v *model.Vacina) *dto.VacinaResponse {
	return &dto.VacinaResponse{
		ID:           v.ID.String(),
		Nome:         v.Nome,
		Fabricante:   v.Fabricante,
		Doencas:      v.Doencas,
		DoseMl:       v.DoseMl,
		ViaAplicacao: v.ViaAplicacao,
	}
}
