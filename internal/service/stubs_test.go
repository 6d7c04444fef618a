package service

import (
	"context"
	"errors"
	"time"

	"suinotrack/internal/dto"
	"suinotrack/internal/model"
	"suinotrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil, so runTx executes the
// callback without a transaction and the Tx variants receive a nil *gorm.DB.

// ── Animais ───────────────────────────────────────────────────────────────────

type stubAnimalRepo struct {
	animais map[uuid.UUID]*model.Animal
	pesos   []model.RegistroPeso

	categoriaAtualizada map[uuid.UUID]string
}

func newStubAnimalRepo() *stubAnimalRepo {
	return &stubAnimalRepo{
		animais:             make(map[uuid.UUID]*model.Animal),
		categoriaAtualizada: make(map[uuid.UUID]string),
	}
}

func (r *stubAnimalRepo) Create(_ context.Context, a *model.Animal) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.animais[a.ID] = a
	return nil
}

func (r *stubAnimalRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Animal, error) {
	a, ok := r.animais[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return a, nil
}

func (r *stubAnimalRepo) FindByIdentificacao(_ context.Context, identificacao string) (*model.Animal, error) {
	for _, a := range r.animais {
		if a.Identificacao == identificacao {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubAnimalRepo) List(_ context.Context, _ dto.AnimalFilter) ([]model.Animal, int64, error) {
	out := make([]model.Animal, 0, len(r.animais))
	for _, a := range r.animais {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *stubAnimalRepo) Update(_ context.Context, a *model.Animal) error {
	r.animais[a.ID] = a
	return nil
}

func (r *stubAnimalRepo) Remover(_ context.Context, id uuid.UUID) error {
	a, ok := r.animais[id]
	if !ok {
		return errors.New("not found")
	}
	a.Status = model.StatusAnimalRemovido
	return nil
}

func (r *stubAnimalRepo) Count(_ context.Context, _ string) (int64, error) {
	return int64(len(r.animais)), nil
}

func (r *stubAnimalRepo) UpdateCategoriaTx(_ *gorm.DB, id uuid.UUID, categoria string) error {
	r.categoriaAtualizada[id] = categoria
	if a, ok := r.animais[id]; ok {
		a.Categoria = categoria
	}
	return nil
}

func (r *stubAnimalRepo) CreatePeso(_ context.Context, p *model.RegistroPeso) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pesos = append(r.pesos, *p)
	return nil
}

func (r *stubAnimalRepo) ListPesos(_ context.Context, animalID uuid.UUID) ([]model.RegistroPeso, error) {
	var out []model.RegistroPeso
	for _, p := range r.pesos {
		if p.AnimalID == animalID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubAnimalRepo) DB() *gorm.DB { return nil }

var _ repository.AnimalRepository = (*stubAnimalRepo)(nil)

// novaFemea registers an active sow and returns it.
func (r *stubAnimalRepo) novaFemea(identificacao, categoria string, nascimento time.Time) *model.Animal {
	a := &model.Animal{
		ID:             uuid.New(),
		Identificacao:  identificacao,
		Categoria:      categoria,
		Sexo:           model.SexoFemea,
		DataNascimento: nascimento,
		DataRegistro:   time.Now(),
		Status:         model.StatusAnimalAtivo,
	}
	r.animais[a.ID] = a
	return a
}

// ── Reprodução ────────────────────────────────────────────────────────────────

type stubReproducaoRepo struct {
	ciclos       []*model.CicloReprodutivo
	inseminacoes []*model.Inseminacao
	gestacoes    map[uuid.UUID]*model.Gestacao
	registrosCio []*model.RegistroCio
}

func newStubReproducaoRepo() *stubReproducaoRepo {
	return &stubReproducaoRepo{gestacoes: make(map[uuid.UUID]*model.Gestacao)}
}

func (r *stubReproducaoRepo) CreateCiclo(_ context.Context, c *model.CicloReprodutivo) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.ciclos = append(r.ciclos, c)
	return nil
}

func (r *stubReproducaoRepo) MaxNumeroCiclo(_ context.Context, animalID uuid.UUID) (int, error) {
	max := 0
	for _, c := range r.ciclos {
		if c.AnimalID == animalID && c.NumeroCiclo > max {
			max = c.NumeroCiclo
		}
	}
	return max, nil
}

func (r *stubReproducaoRepo) ListCiclos(_ context.Context, animalID uuid.UUID) ([]model.CicloReprodutivo, error) {
	var out []model.CicloReprodutivo
	for _, c := range r.ciclos {
		if c.AnimalID == animalID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubReproducaoRepo) ListCiclosPeriodo(_ context.Context, inicio, fim time.Time) ([]model.CicloReprodutivo, error) {
	var out []model.CicloReprodutivo
	for _, c := range r.ciclos {
		if !c.DataCio.Before(inicio) && !c.DataCio.After(fim) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubReproducaoRepo) UpdateCicloTx(_ *gorm.DB, c *model.CicloReprodutivo) error {
	for i := range r.ciclos {
		if r.ciclos[i].ID == c.ID {
			*r.ciclos[i] = *c
			return nil
		}
	}
	return errors.New("not found")
}

func (r *stubReproducaoRepo) CreateInseminacaoTx(_ *gorm.DB, i *model.Inseminacao) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	r.inseminacoes = append(r.inseminacoes, i)
	return nil
}

func (r *stubReproducaoRepo) ListInseminacoes(_ context.Context, animalID uuid.UUID) ([]model.Inseminacao, error) {
	var out []model.Inseminacao
	for _, i := range r.inseminacoes {
		if i.AnimalID == animalID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *stubReproducaoRepo) CreateGestacao(_ context.Context, g *model.Gestacao) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.gestacoes[g.ID] = g
	return nil
}

func (r *stubReproducaoRepo) FindGestacaoAberta(_ context.Context, animalID uuid.UUID) (*model.Gestacao, error) {
	for _, g := range r.gestacoes {
		if g.AnimalID == animalID && g.DataParto == nil {
			return g, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubReproducaoRepo) FindGestacaoByID(_ context.Context, id uuid.UUID) (*model.Gestacao, error) {
	g, ok := r.gestacoes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return g, nil
}

func (r *stubReproducaoRepo) UpdateGestacao(_ context.Context, g *model.Gestacao) error {
	r.gestacoes[g.ID] = g
	return nil
}

func (r *stubReproducaoRepo) ListGestacoesAbertas(_ context.Context) ([]model.Gestacao, error) {
	var out []model.Gestacao
	for _, g := range r.gestacoes {
		if g.DataParto == nil {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *stubReproducaoRepo) CountGestacoesAbertas(ctx context.Context) (int64, error) {
	abertas, _ := r.ListGestacoesAbertas(ctx)
	return int64(len(abertas)), nil
}

func (r *stubReproducaoRepo) CreateRegistroCio(_ context.Context, rc *model.RegistroCio) error {
	if rc.ID == uuid.Nil {
		rc.ID = uuid.New()
	}
	r.registrosCio = append(r.registrosCio, rc)
	return nil
}

func (r *stubReproducaoRepo) ListRegistrosCioConfirmados(_ context.Context, animalID uuid.UUID) ([]model.RegistroCio, error) {
	var out []model.RegistroCio
	for _, rc := range r.registrosCio {
		if rc.AnimalID == animalID && rc.Confirmado {
			out = append(out, *rc)
		}
	}
	return out, nil
}

func (r *stubReproducaoRepo) ListRegistrosCioPeriodo(_ context.Context, inicio, fim time.Time) ([]model.RegistroCio, error) {
	var out []model.RegistroCio
	for _, rc := range r.registrosCio {
		if !rc.DataHora.Before(inicio) && !rc.DataHora.After(fim) {
			out = append(out, *rc)
		}
	}
	return out, nil
}

func (r *stubReproducaoRepo) DB() *gorm.DB { return nil }

var _ repository.ReproducaoRepository = (*stubReproducaoRepo)(nil)

// ── Baias ─────────────────────────────────────────────────────────────────────

type stubBaiaRepo struct {
	baias     map[uuid.UUID]*model.Baia
	alocacoes []*model.AlocacaoBaia
}

func newStubBaiaRepo() *stubBaiaRepo {
	return &stubBaiaRepo{baias: make(map[uuid.UUID]*model.Baia)}
}

func (r *stubBaiaRepo) Create(_ context.Context, b *model.Baia) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.baias[b.ID] = b
	return nil
}

func (r *stubBaiaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Baia, error) {
	b, ok := r.baias[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func (r *stubBaiaRepo) List(_ context.Context, setor string) ([]model.Baia, error) {
	var out []model.Baia
	for _, b := range r.baias {
		if setor == "" || b.Setor == setor {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBaiaRepo) CreateAlocacaoTx(_ *gorm.DB, a *model.AlocacaoBaia) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.alocacoes = append(r.alocacoes, a)
	return nil
}

func (r *stubBaiaRepo) CountAtivasTx(_ *gorm.DB, baiaID uuid.UUID) (int64, error) {
	return r.CountAtivas(context.Background(), baiaID)
}

func (r *stubBaiaRepo) CountAtivas(_ context.Context, baiaID uuid.UUID) (int64, error) {
	var total int64
	for _, a := range r.alocacoes {
		if a.BaiaID == baiaID && a.Status == model.AlocacaoAtiva {
			total++
		}
	}
	return total, nil
}

func (r *stubBaiaRepo) FindAlocacaoAtivaByAnimal(_ context.Context, animalID uuid.UUID) (*model.AlocacaoBaia, error) {
	for _, a := range r.alocacoes {
		if a.AnimalID != nil && *a.AnimalID == animalID && a.Status == model.AlocacaoAtiva {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubBaiaRepo) FecharAlocacaoTx(_ *gorm.DB, id uuid.UUID, saida time.Time, motivo string) error {
	for _, a := range r.alocacoes {
		if a.ID == id {
			a.Status = model.AlocacaoInativa
			a.DataSaida = &saida
			a.MotivoSaida = motivo
			return nil
		}
	}
	return errors.New("not found")
}

func (r *stubBaiaRepo) ListAlocacoes(_ context.Context, baiaID uuid.UUID, somenteAtivas bool) ([]model.AlocacaoBaia, error) {
	var out []model.AlocacaoBaia
	for _, a := range r.alocacoes {
		if a.BaiaID != baiaID {
			continue
		}
		if somenteAtivas && a.Status != model.AlocacaoAtiva {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubBaiaRepo) DB() *gorm.DB { return nil }

var _ repository.BaiaRepository = (*stubBaiaRepo)(nil)

// ── Maternidade ───────────────────────────────────────────────────────────────

type stubMaternidadeRepo struct {
	maternidades map[uuid.UUID]*model.Maternidade
	leitegadas   map[uuid.UUID]*model.Leitegada
	leitoes      map[uuid.UUID]*model.Leitao
	desmames     map[uuid.UUID]*model.Desmame // by LeitegadaID
}

func newStubMaternidadeRepo() *stubMaternidadeRepo {
	return &stubMaternidadeRepo{
		maternidades: make(map[uuid.UUID]*model.Maternidade),
		leitegadas:   make(map[uuid.UUID]*model.Leitegada),
		leitoes:      make(map[uuid.UUID]*model.Leitao),
		desmames:     make(map[uuid.UUID]*model.Desmame),
	}
}

func (r *stubMaternidadeRepo) CreateMaternidadeTx(_ *gorm.DB, m *model.Maternidade) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.maternidades[m.ID] = m
	return nil
}

func (r *stubMaternidadeRepo) FindMaternidadeByID(_ context.Context, id uuid.UUID) (*model.Maternidade, error) {
	m, ok := r.maternidades[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return m, nil
}

func (r *stubMaternidadeRepo) FindMaternidadeAtiva(_ context.Context, animalID uuid.UUID) (*model.Maternidade, error) {
	for _, m := range r.maternidades {
		if m.AnimalID == animalID && m.Status == model.MaternidadeAtiva {
			return m, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubMaternidadeRepo) UpdateMaternidadeTx(_ *gorm.DB, m *model.Maternidade) error {
	r.maternidades[m.ID] = m
	return nil
}

func (r *stubMaternidadeRepo) CountMaternidadesAtivas(_ context.Context) (int64, error) {
	var total int64
	for _, m := range r.maternidades {
		if m.Status == model.MaternidadeAtiva {
			total++
		}
	}
	return total, nil
}

func (r *stubMaternidadeRepo) CreateLeitegada(_ context.Context, l *model.Leitegada) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.leitegadas[l.ID] = l
	return nil
}

func (r *stubMaternidadeRepo) FindLeitegadaByID(_ context.Context, id uuid.UUID) (*model.Leitegada, error) {
	l, ok := r.leitegadas[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return l, nil
}

func (r *stubMaternidadeRepo) FindLeitegadaByMaternidade(_ context.Context, maternidadeID uuid.UUID) (*model.Leitegada, error) {
	for _, l := range r.leitegadas {
		if l.MaternidadeID == maternidadeID {
			return l, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubMaternidadeRepo) CreateLeitoes(_ context.Context, leitoes []model.Leitao) error {
	for i := range leitoes {
		if leitoes[i].ID == uuid.Nil {
			leitoes[i].ID = uuid.New()
		}
		cp := leitoes[i]
		r.leitoes[cp.ID] = &cp
	}
	return nil
}

func (r *stubMaternidadeRepo) ListLeitoes(_ context.Context, leitegadaID uuid.UUID) ([]model.Leitao, error) {
	var out []model.Leitao
	for _, l := range r.leitoes {
		if l.LeitegadaID == leitegadaID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubMaternidadeRepo) FindLeitaoByID(_ context.Context, id uuid.UUID) (*model.Leitao, error) {
	l, ok := r.leitoes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return l, nil
}

func (r *stubMaternidadeRepo) UpdateLeitao(_ context.Context, l *model.Leitao) error {
	r.leitoes[l.ID] = l
	return nil
}

func (r *stubMaternidadeRepo) UpdateLeitaoStatusTx(_ *gorm.DB, id uuid.UUID, status string, data time.Time) error {
	l, ok := r.leitoes[id]
	if !ok {
		return errors.New("not found")
	}
	l.Status = status
	l.DataStatus = data
	return nil
}

func (r *stubMaternidadeRepo) CreateDesmameTx(_ *gorm.DB, d *model.Desmame) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.desmames[d.LeitegadaID] = d
	return nil
}

func (r *stubMaternidadeRepo) FindDesmameByLeitegada(_ context.Context, leitegadaID uuid.UUID) (*model.Desmame, error) {
	d, ok := r.desmames[leitegadaID]
	if !ok {
		return nil, errors.New("not found")
	}
	return d, nil
}

func (r *stubMaternidadeRepo) FindDesmameByID(_ context.Context, id uuid.UUID) (*model.Desmame, error) {
	for _, d := range r.desmames {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubMaternidadeRepo) ListDesmamesPeriodo(_ context.Context, inicio, fim time.Time) ([]model.Desmame, error) {
	var out []model.Desmame
	for _, d := range r.desmames {
		if !d.Data.Before(inicio) && !d.Data.After(fim) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubMaternidadeRepo) DB() *gorm.DB { return nil }

var _ repository.MaternidadeRepository = (*stubMaternidadeRepo)(nil)

// ── Funcionários ──────────────────────────────────────────────────────────────

type stubFuncionarioRepo struct {
	funcionarios map[uuid.UUID]*model.Funcionario
	permissoes   map[string]*model.PermissaoPapel
}

func newStubFuncionarioRepo() *stubFuncionarioRepo {
	return &stubFuncionarioRepo{
		funcionarios: make(map[uuid.UUID]*model.Funcionario),
		permissoes:   make(map[string]*model.PermissaoPapel),
	}
}

func (r *stubFuncionarioRepo) Create(_ context.Context, f *model.Funcionario) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.funcionarios[f.ID] = f
	return nil
}

func (r *stubFuncionarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Funcionario, error) {
	f, ok := r.funcionarios[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return f, nil
}

func (r *stubFuncionarioRepo) FindByMatricula(_ context.Context, matricula string) (*model.Funcionario, error) {
	for _, f := range r.funcionarios {
		if f.Matricula == matricula {
			return f, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubFuncionarioRepo) List(_ context.Context) ([]model.Funcionario, error) {
	out := make([]model.Funcionario, 0, len(r.funcionarios))
	for _, f := range r.funcionarios {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFuncionarioRepo) Update(_ context.Context, f *model.Funcionario) error {
	r.funcionarios[f.ID] = f
	return nil
}

func (r *stubFuncionarioRepo) FindPermissoes(_ context.Context, papel string) (*model.PermissaoPapel, error) {
	p, ok := r.permissoes[papel]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubFuncionarioRepo) UpsertPermissoes(_ context.Context, p *model.PermissaoPapel) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.permissoes[p.Papel] = p
	return nil
}

func (r *stubFuncionarioRepo) ListPermissoes(_ context.Context) ([]model.PermissaoPapel, error) {
	out := make([]model.PermissaoPapel, 0, len(r.permissoes))
	for _, p := range r.permissoes {
		out = append(out, *p)
	}
	return out, nil
}

var _ repository.FuncionarioRepository = (*stubFuncionarioRepo)(nil)

// ── Sincronização ─────────────────────────────────────────────────────────────

type stubSincronizacaoRepo struct {
	registros []*model.RegistroSincronizacao
}

func newStubSincronizacaoRepo() *stubSincronizacaoRepo {
	return &stubSincronizacaoRepo{}
}

func (r *stubSincronizacaoRepo) Upsert(_ context.Context, reg *model.RegistroSincronizacao) error {
	for _, e := range r.registros {
		if e.UsuarioID == reg.UsuarioID && e.Colecao == reg.Colecao && e.RegistroID == reg.RegistroID {
			e.Dados = reg.Dados
			e.AtualizadoEm = reg.AtualizadoEm
			return nil
		}
	}
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	r.registros = append(r.registros, reg)
	return nil
}

func (r *stubSincronizacaoRepo) ListPorColecao(_ context.Context, usuarioID uuid.UUID, colecao string) ([]model.RegistroSincronizacao, error) {
	var out []model.RegistroSincronizacao
	for _, e := range r.registros {
		if e.UsuarioID == usuarioID && e.Colecao == colecao {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubSincronizacaoRepo) ListColecoes(_ context.Context, usuarioID uuid.UUID) ([]string, error) {
	vistas := make(map[string]bool)
	var out []string
	for _, e := range r.registros {
		if e.UsuarioID == usuarioID && !vistas[e.Colecao] {
			vistas[e.Colecao] = true
			out = append(out, e.Colecao)
		}
	}
	return out, nil
}

func (r *stubSincronizacaoRepo) ListDesde(_ context.Context, usuarioID uuid.UUID, desde time.Time) ([]model.RegistroSincronizacao, error) {
	var out []model.RegistroSincronizacao
	for _, e := range r.registros {
		if e.UsuarioID == usuarioID && !e.AtualizadoEm.Before(desde) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubSincronizacaoRepo) DB() *gorm.DB { return nil }

var _ repository.SincronizacaoRepository = (*stubSincronizacaoRepo)(nil)

// ── Sanidade ──────────────────────────────────────────────────────────────────

type stubSanidadeRepo struct {
	vacinas      map[uuid.UUID]*model.Vacina
	protocolos   []*model.ProtocoloVacinacao
	vacinacoes   []*model.RegistroVacinacao
	mortalidades []*model.RegistroMortalidade
}

func newStubSanidadeRepo() *stubSanidadeRepo {
	return &stubSanidadeRepo{vacinas: make(map[uuid.UUID]*model.Vacina)}
}

func (r *stubSanidadeRepo) CreateVacina(_ context.Context, v *model.Vacina) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vacinas[v.ID] = v
	return nil
}

func (r *stubSanidadeRepo) FindVacinaByID(_ context.Context, id uuid.UUID) (*model.Vacina, error) {
	v, ok := r.vacinas[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}

func (r *stubSanidadeRepo) ListVacinas(_ context.Context) ([]model.Vacina, error) {
	out := make([]model.Vacina, 0, len(r.vacinas))
	for _, v := range r.vacinas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubSanidadeRepo) CreateProtocolo(_ context.Context, p *model.ProtocoloVacinacao) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.protocolos = append(r.protocolos, p)
	return nil
}

func (r *stubSanidadeRepo) ListProtocolos(_ context.Context) ([]model.ProtocoloVacinacao, error) {
	out := make([]model.ProtocoloVacinacao, 0, len(r.protocolos))
	for _, p := range r.protocolos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubSanidadeRepo) ListProtocolosPorCategoria(_ context.Context, categoria string) ([]model.ProtocoloVacinacao, error) {
	var out []model.ProtocoloVacinacao
	for _, p := range r.protocolos {
		if p.CategoriaAnimal == categoria {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubSanidadeRepo) CreateRegistroVacinacao(_ context.Context, rv *model.RegistroVacinacao) error {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}
	r.vacinacoes = append(r.vacinacoes, rv)
	return nil
}

func (r *stubSanidadeRepo) ListRegistrosVacinacao(_ context.Context, animalID uuid.UUID) ([]model.RegistroVacinacao, error) {
	var out []model.RegistroVacinacao
	for _, rv := range r.vacinacoes {
		if rv.AnimalID == animalID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *stubSanidadeRepo) FindAplicacaoRecente(_ context.Context, animalID, protocoloID uuid.UUID, desde time.Time) (*model.RegistroVacinacao, error) {
	for _, rv := range r.vacinacoes {
		if rv.AnimalID != animalID || rv.ProtocoloID == nil || *rv.ProtocoloID != protocoloID {
			continue
		}
		if rv.DataAplicacao.After(desde) {
			return rv, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubSanidadeRepo) CreateMortalidade(_ context.Context, rm *model.RegistroMortalidade) error {
	if rm.ID == uuid.Nil {
		rm.ID = uuid.New()
	}
	r.mortalidades = append(r.mortalidades, rm)
	return nil
}

func (r *stubSanidadeRepo) ListMortalidadePeriodo(_ context.Context, inicio, fim time.Time, categoria string) ([]model.RegistroMortalidade, error) {
	var out []model.RegistroMortalidade
	for _, rm := range r.mortalidades {
		if rm.DataMorte.Before(inicio) || rm.DataMorte.After(fim) {
			continue
		}
		if categoria != "" && rm.Categoria != categoria {
			continue
		}
		out = append(out, *rm)
	}
	return out, nil
}

func (r *stubSanidadeRepo) DB() *gorm.DB { return nil }

var _ repository.SanidadeRepository = (*stubSanidadeRepo)(nil)

// ── Marrãs ────────────────────────────────────────────────────────────────────

type stubMarraRepo struct {
	marras   map[uuid.UUID]*model.Marra
	selecoes []*model.SelecaoMarra
	descartes []*model.DescarteMarra
}

func newStubMarraRepo() *stubMarraRepo {
	return &stubMarraRepo{marras: make(map[uuid.UUID]*model.Marra)}
}

func (r *stubMarraRepo) Create(_ context.Context, m *model.Marra) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.marras[m.ID] = m
	return nil
}

func (r *stubMarraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Marra, error) {
	m, ok := r.marras[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return m, nil
}

func (r *stubMarraRepo) List(_ context.Context, status string) ([]model.Marra, error) {
	var out []model.Marra
	for _, m := range r.marras {
		if status == "" || m.Status == status {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMarraRepo) UpdateTx(_ *gorm.DB, m *model.Marra) error {
	r.marras[m.ID] = m
	return nil
}

func (r *stubMarraRepo) CreateSelecaoTx(_ *gorm.DB, s *model.SelecaoMarra) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.selecoes = append(r.selecoes, s)
	return nil
}

func (r *stubMarraRepo) ListSelecoes(_ context.Context, marraID uuid.UUID) ([]model.SelecaoMarra, error) {
	var out []model.SelecaoMarra
	for _, s := range r.selecoes {
		if s.MarraID == marraID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubMarraRepo) CountSelecoesPorRecomendacao(_ context.Context, recomendacao string) (int64, error) {
	var total int64
	for _, s := range r.selecoes {
		if s.Recomendacao == recomendacao {
			total++
		}
	}
	return total, nil
}

func (r *stubMarraRepo) CreateDescarteTx(_ *gorm.DB, d *model.DescarteMarra) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.descartes = append(r.descartes, d)
	return nil
}

func (r *stubMarraRepo) DB() *gorm.DB { return nil }

var _ repository.MarraRepository = (*stubMarraRepo)(nil)
