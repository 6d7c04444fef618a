package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"suinotrack/internal/calendario"
	"suinotrack/internal/config"
	"suinotrack/internal/dto"
	"suinotrack/internal/infra"
	"suinotrack/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cachePainelKey = "relatorio:painel"
	cachePainelTTL = 2 * time.Minute
)

type RelatorioService interface {
	Painel(ctx context.Context) (*dto.PainelResponse, error)
	RelatorioDesmames(ctx context.Context, inicio, fim time.Time) (*dto.RelatorioDesmameResponse, error)
	// EnviarRelatorioDesmames renders the PDF and delivers it by email in the
	// same request; there is no background queue.
	EnviarRelatorioDesmames(ctx context.Context, req dto.EnviarRelatorioRequest) error
}

type relatorioService struct {
	animalRepo      repository.AnimalRepository
	reproducaoRepo  repository.ReproducaoRepository
	maternidadeRepo repository.MaternidadeRepository
	crecheRepo      repository.CrecheRepository
	reproducao      ReproducaoService
	cache           *redis.Client
	mailer          *infra.Mailer
	cfg             *config.Config
}

func NewRelatorioService(
	animalRepo repository.AnimalRepository,
	reproducaoRepo repository.ReproducaoRepository,
	maternidadeRepo repository.MaternidadeRepository,
	crecheRepo repository.CrecheRepository,
	reproducao ReproducaoService,
	cache *redis.Client,
	mailer *infra.Mailer,
	cfg *config.Config,
) RelatorioService {
	return &relatorioService{
		animalRepo:      animalRepo,
		reproducaoRepo:  reproducaoRepo,
		maternidadeRepo: maternidadeRepo,
		crecheRepo:      crecheRepo,
		reproducao:      reproducao,
		cache:           cache,
		mailer:          mailer,
		cfg:             cfg,
	}
}

// Painel aggregates the dashboard counters. Results are cached briefly; a nil
// cache client degrades to recomputing every call.
func (s *relatorioService) Painel(ctx context.Context) (*dto.PainelResponse, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cachePainelKey).Bytes(); err == nil {
			var cached dto.PainelResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	totalAnimais, err := s.animalRepo.Count(ctx, "")
	if err != nil {
		return nil, err
	}
	totalMatrizes, err := s.animalRepo.Count(ctx, "Matriz")
	if err != nil {
		return nil, err
	}
	gestacoes, err := s.reproducaoRepo.CountGestacoesAbertas(ctx)
	if err != nil {
		return nil, err
	}
	maternidades, err := s.maternidadeRepo.CountMaternidadesAtivas(ctx)
	if err != nil {
		return nil, err
	}
	lotesCreche, err := s.crecheRepo.CountLotesAtivos(ctx)
	if err != nil {
		return nil, err
	}
	proximosCios, err := s.reproducao.ProximosCios(ctx, time.Now().AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	partos, err := s.reproducao.PartosPrevistos(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.PainelResponse{
		TotalAnimais:       totalAnimais,
		TotalMatrizes:      totalMatrizes,
		GestacoesAbertas:   gestacoes,
		MaternidadesAtivas: maternidades,
		LotesCrecheAtivos:  lotesCreche,
		ProximosCios:       proximosCios,
		PartosPrevistos:    partos,
		DiaSuinoHoje:       calendario.CivilParaSuino(time.Now()),
	}

	if s.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cachePainelKey, raw, cachePainelTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("painel: falha ao gravar cache")
			}
		}
	}
	return resp, nil
}

func (s *relatorioService) RelatorioDesmames(ctx context.Context, inicio, fim time.Time) (*dto.RelatorioDesmameResponse, error) {
	desmames, err := s.maternidadeRepo.ListDesmamesPeriodo(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}

	resp := &dto.RelatorioDesmameResponse{
		Inicio:         inicio.Format(layoutData),
		Fim:            fim.Format(layoutData),
		Itens:          make([]dto.RelatorioDesmameItem, 0, len(desmames)),
		PesoMedioGeral: decimal.Zero,
	}

	pesoPonderado := decimal.Zero
	for _, d := range desmames {
		matriz := d.AnimalID.String()
		if animal, err := s.animalRepo.FindByID(ctx, d.AnimalID); err == nil {
			matriz = animal.Identificacao
		}
		resp.Itens = append(resp.Itens, dto.RelatorioDesmameItem{
			Matriz:           matriz,
			Data:             d.Data.Format(layoutData),
			TotalDesmamados:  d.TotalDesmamados,
			PesoMedio:        d.PesoMedio,
			GanhoMedioDiario: d.GanhoMedioDiario,
			DestinoLeitoes:   d.DestinoLeitoes,
		})
		resp.TotalDesmamados += d.TotalDesmamados
		pesoPonderado = pesoPonderado.Add(d.PesoMedio.Mul(decimal.NewFromInt(int64(d.TotalDesmamados))))
	}
	if resp.TotalDesmamados > 0 {
		resp.PesoMedioGeral = pesoPonderado.
			Div(decimal.NewFromInt(int64(resp.TotalDesmamados))).Round(3)
	}
	return resp, nil
}

func (s *relatorioService) EnviarRelatorioDesmames(ctx context.Context, req dto.EnviarRelatorioRequest) error {
	inicio, fim, err := parsePeriodo(req.Inicio, req.Fim)
	if err != nil {
		return err
	}
	rel, err := s.RelatorioDesmames(ctx, inicio, fim)
	if err != nil {
		return err
	}
	if s.mailer == nil {
		return errors.New("envio de e-mail não configurado")
	}

	pdfPath, err := infra.GerarRelatorioDesmamePDF(rel, s.cfg.PDFStoragePath)
	if err != nil {
		return err
	}
	log.Info().Str("destino", req.Email).Str("pdf", pdfPath).Msg("enviando relatório de desmames")

	assunto := "Relatório de Desmames " + rel.Inicio + " a " + rel.Fim
	corpo := "Segue em anexo o relatório de desmames do período."
	return s.mailer.EnviarRelatorio(req.Email, assunto, corpo, pdfPath)
}
