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

const layoutData = "2006-01-02"

type AnimalService interface {
	Criar(ctx context.Context, req dto.CriarAnimalRequest) (*dto.AnimalResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error)
	Listar(ctx context.Context, filter dto.AnimalFilter) (*dto.AnimalListResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarAnimalRequest) (*dto.AnimalResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error

	RegistrarPeso(ctx context.Context, req dto.RegistrarPesoRequest) error
	ListarPesos(ctx context.Context, animalID uuid.UUID) ([]model.RegistroPeso, error)
}

type animalService struct {
	repo repository.AnimalRepository
}

func NewAnimalService(repo repository.AnimalRepository) AnimalService {
	return &animalService{repo: repo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func validarCategoriaSexo(categoria, sexo string) error {
	if !model.CategoriasAnimal[categoria] {
		return fmt.Errorf("categoria inválida: %s", categoria)
	}
	if sexo != model.SexoFemea && sexo != model.SexoMacho {
		return fmt.Errorf("sexo inválido: %s", sexo)
	}
	if model.CategoriasFemea[categoria] && sexo != model.SexoFemea {
		return fmt.Errorf("categoria %s exige sexo Fêmea", categoria)
	}
	return nil
}

func (s *animalService) Criar(ctx context.Context, req dto.CriarAnimalRequest) (*dto.AnimalResponse, error) {
	if err := validarCategoriaSexo(req.Categoria, req.Sexo); err != nil {
		return nil, err
	}
	nascimento, err := time.Parse(layoutData, req.DataNascimento)
	if err != nil {
		return nil, errors.New("data_nascimento inválida, use YYYY-MM-DD")
	}
	if nascimento.After(time.Now()) {
		return nil, errors.New("data_nascimento não pode ser futura")
	}
	if _, err := s.repo.FindByIdentificacao(ctx, req.Identificacao); err == nil {
		return nil, fmt.Errorf("identificação %s já cadastrada", req.Identificacao)
	}

	a := &model.Animal{
		Identificacao:  req.Identificacao,
		Brinco:         req.Brinco,
		Tatuagem:       req.Tatuagem,
		Nome:           req.Nome,
		Categoria:      req.Categoria,
		Sexo:           req.Sexo,
		Raca:           req.Raca,
		Origem:         req.Origem,
		DataNascimento: nascimento,
		DataRegistro:   time.Now(),
		Status:         model.StatusAnimalAtivo,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return animalToResponse(a), nil
}

func (s *animalService) Buscar(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("animal não encontrado")
	}
	return animalToResponse(a), nil
}

func (s *animalService) Listar(ctx context.Context, filter dto.AnimalFilter) (*dto.AnimalListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	animais, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AnimalResponse, len(animais))
	for i := range animais {
		items[i] = *animalToResponse(&animais[i])
	}
	return &dto.AnimalListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *animalService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarAnimalRequest) (*dto.AnimalResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("animal não encontrado")
	}
	if req.Categoria != "" && req.Categoria != a.Categoria {
		if err := validarCategoriaSexo(req.Categoria, a.Sexo); err != nil {
			return nil, err
		}
		a.Categoria = req.Categoria
	}
	if req.Brinco != nil {
		a.Brinco = req.Brinco
	}
	if req.Tatuagem != nil {
		a.Tatuagem = req.Tatuagem
	}
	if req.Nome != nil {
		a.Nome = req.Nome
	}
	if req.Raca != "" {
		a.Raca = req.Raca
	}
	if req.Origem != "" {
		a.Origem = req.Origem
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return animalToResponse(a), nil
}

func (s *animalService) Remover(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("animal não encontrado")
	}
	return s.repo.Remover(ctx, id)
}

func (s *animalService) RegistrarPeso(ctx context.Context, req dto.RegistrarPesoRequest) error {
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return errors.New("animal_id inválido")
	}
	a, err := s.repo.FindByID(ctx, animalID)
	if err != nil {
		return errors.New("animal não encontrado")
	}
	if a.Status != model.StatusAnimalAtivo {
		return errors.New("animal removido não aceita novos registros")
	}
	data, err := time.Parse(layoutData, req.Data)
	if err != nil {
		return errors.New("data inválida, use YYYY-MM-DD")
	}
	return s.repo.CreatePeso(ctx, &model.RegistroPeso{
		AnimalID: animalID,
		Data:     data,
		PesoKg:   req.PesoKg,
	})
}

func (s *animalService) ListarPesos(ctx context.Context, animalID uuid.UUID) ([]model.RegistroPeso, error) {
	return s.repo.ListPesos(ctx, animalID)
}

func animalToResponse(a *model.Animal) *dto.AnimalResponse {
	return &dto.AnimalResponse{
		ID:             a.ID.String(),
		Identificacao:  a.Identificacao,
		Brinco:         a.Brinco,
		Tatuagem:       a.Tatuagem,
		Nome:           a.Nome,
		Categoria:      a.Categoria,
		Sexo:           a.Sexo,
		Raca:           a.Raca,
		Origem:         a.Origem,
		DataNascimento: a.DataNascimento.Format(layoutData),
		DataRegistro:   a.DataRegistro.Format(layoutData),
		Status:         a.Status,
	}
}
