package service

import (
	"context"
	"errors"
	"time"

	"suinotrack/internal/config"
	"suinotrack/internal/dto"
	"suinotrack/internal/model"
	"suinotrack/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService interface {
	// Login authenticates by registration number alone. Field access is
	// controlled physically; the matricula identifies who did what.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	RegistrarFuncionario(ctx context.Context, req dto.RegistrarFuncionarioRequest) (*dto.FuncionarioResponse, error)
	ListarFuncionarios(ctx context.Context) ([]dto.FuncionarioResponse, error)
	AlterarStatus(ctx context.Context, id uuid.UUID, status string) (*dto.FuncionarioResponse, error)

	// PermissoesDoPapel resolves a role to its permission tags, falling back
	// to the built-in defaults when no stored mapping exists.
	PermissoesDoPapel(ctx context.Context, papel string) []string
	TemPermissao(ctx context.Context, papel string, tags ...string) bool
	DefinirPermissoes(ctx context.Context, req dto.PermissaoPapelRequest) (*dto.PermissaoPapelResponse, error)
	ListarPermissoes(ctx context.Context) ([]dto.PermissaoPapelResponse, error)
}

type authService struct {
	repo repository.FuncionarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.FuncionarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	f, err := s.repo.FindByMatricula(ctx, req.Matricula)
	if err != nil {
		return nil, errors.New("matrícula não encontrada")
	}
	if f.Status != model.FuncionarioAtivo {
		return nil, errors.New("funcionário inativo")
	}

	agora := time.Now()
	f.UltimoAcesso = &agora
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	token, err := s.generateToken(f, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Funcionario: *funcionarioToResponse(f),
	}, nil
}

func (s *authService) RegistrarFuncionario(ctx context.Context, req dto.RegistrarFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	if _, err := s.repo.FindByMatricula(ctx, req.Matricula); err == nil {
		return nil, errors.New("matrícula já cadastrada")
	}
	f := &model.Funcionario{
		NomeCompleto: req.NomeCompleto,
		Matricula:    req.Matricula,
		Papel:        req.Papel,
		Setor:        req.Setor,
		DataAdmissao: time.Now(),
		Status:       model.FuncionarioAtivo,
		Observacao:   req.Observacao,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return funcionarioToResponse(f), nil
}

func (s *authService) ListarFuncionarios(ctx context.Context) ([]dto.FuncionarioResponse, error) {
	fs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FuncionarioResponse, len(fs))
	for i := range fs {
		resp[i] = *funcionarioToResponse(&fs[i])
	}
	return resp, nil
}

func (s *authService) AlterarStatus(ctx context.Context, id uuid.UUID, status string) (*dto.FuncionarioResponse, error) {
	if !model.StatusFuncionario[status] {
		return nil, errors.New("status inválido")
	}
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("funcionário não encontrado")
	}
	f.Status = status
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return funcionarioToResponse(f), nil
}

func (s *authService) PermissoesDoPapel(ctx context.Context, papel string) []string {
	if p, err := s.repo.FindPermissoes(ctx, papel); err == nil {
		return p.Permissoes
	}
	return model.PermissoesPadrao[papel]
}

// TemPermissao grants when the role holds at least one of the tags. An empty
// tag list means any authenticated employee.
func (s *authService) TemPermissao(ctx context.Context, papel string, tags ...string) bool {
	if len(tags) == 0 {
		return true
	}
	held := s.PermissoesDoPapel(ctx, papel)
	for _, tag := range tags {
		for _, h := range held {
			if h == tag {
				return true
			}
		}
	}
	return false
}

func (s *authService) DefinirPermissoes(ctx context.Context, req dto.PermissaoPapelRequest) (*dto.PermissaoPapelResponse, error) {
	p := &model.PermissaoPapel{
		Papel:      req.Papel,
		Permissoes: model.StringList(req.Permissoes),
	}
	if err := s.repo.UpsertPermissoes(ctx, p); err != nil {
		return nil, err
	}
	return &dto.PermissaoPapelResponse{Papel: p.Papel, Permissoes: p.Permissoes}, nil
}

func (s *authService) ListarPermissoes(ctx context.Context) ([]dto.PermissaoPapelResponse, error) {
	ps, err := s.repo.ListPermissoes(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PermissaoPapelResponse, len(ps))
	overridden := make(map[string]bool, len(ps))
	for i, p := range ps {
		resp[i] = dto.PermissaoPapelResponse{Papel: p.Papel, Permissoes: p.Permissoes}
		overridden[p.Papel] = true
	}
	// Defaults still apply to roles without a stored row
	for papel, perms := range model.PermissoesPadrao {
		if !overridden[papel] {
			resp = append(resp, dto.PermissaoPapelResponse{Papel: papel, Permissoes: perms})
		}
	}
	return resp, nil
}

func (s *authService) generateToken(f *model.Funcionario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"funcionario_id": f.ID.String(),
		"matricula":      f.Matricula,
		"papel":          f.Papel,
		"exp":            time.Now().Add(duration).Unix(),
		"iat":            time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func funcionarioToResponse(f *model.Funcionario) *dto.FuncionarioResponse {
	var ultimoAcesso *string
	if f.UltimoAcesso != nil {
		v := f.UltimoAcesso.Format(time.RFC3339)
		ultimoAcesso = &v
	}
	return &dto.FuncionarioResponse{
		ID:           f.ID.String(),
		NomeCompleto: f.NomeCompleto,
		Matricula:    f.Matricula,
		Papel:        f.Papel,
		Setor:        f.Setor,
		Status:       f.Status,
		UltimoAcesso: ultimoAcesso,
	}
}
