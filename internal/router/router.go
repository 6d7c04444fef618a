package router

import (
	"time"

	"suinotrack/internal/config"
	"suinotrack/internal/handler"
	"suinotrack/internal/infra"
	"suinotrack/internal/middleware"
	"suinotrack/internal/repository"
	"suinotrack/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	funcionarioRepo := repository.NewFuncionarioRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	reproducaoRepo := repository.NewReproducaoRepository(db)
	baiaRepo := repository.NewBaiaRepository(db)
	maternidadeRepo := repository.NewMaternidadeRepository(db)
	crecheRepo := repository.NewCrecheRepository(db)
	recriaRepo := repository.NewRecriaRepository(db)
	sanidadeRepo := repository.NewSanidadeRepository(db)
	marraRepo := repository.NewMarraRepository(db)
	sincronizacaoRepo := repository.NewSincronizacaoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(funcionarioRepo, cfg)
	animalSvc := service.NewAnimalService(animalRepo)
	reproducaoSvc := service.NewReproducaoService(reproducaoRepo, animalRepo)
	baiaSvc := service.NewBaiaService(baiaRepo)
	maternidadeSvc := service.NewMaternidadeService(maternidadeRepo, animalRepo, baiaRepo)
	crecheSvc := service.NewCrecheService(crecheRepo, maternidadeRepo, baiaRepo)
	recriaSvc := service.NewRecriaService(recriaRepo)
	sanidadeSvc := service.NewSanidadeService(sanidadeRepo, animalRepo)
	marraSvc := service.NewMarraService(marraRepo)
	sincronizacaoSvc := service.NewSincronizacaoService(sincronizacaoRepo)
	relatorioSvc := service.NewRelatorioService(
		animalRepo, reproducaoRepo, maternidadeRepo, crecheRepo,
		reproducaoSvc, rdb, mailer, cfg,
	)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	animaisH := handler.NewAnimaisHandler(animalSvc)
	reproducaoH := handler.NewReproducaoHandler(reproducaoSvc)
	baiasH := handler.NewBaiasHandler(baiaSvc)
	maternidadeH := handler.NewMaternidadeHandler(maternidadeSvc)
	crecheH := handler.NewCrecheHandler(crecheSvc)
	recriaH := handler.NewRecriaHandler(recriaSvc)
	sanidadeH := handler.NewSanidadeHandler(sanidadeSvc)
	marrasH := handler.NewMarrasHandler(marraSvc)
	sincronizacaoH := handler.NewSincronizacaoHandler(sincronizacaoSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes. Permission tags are resolved against the role's stored
	// mapping (with built-in defaults); grant requires at least one tag.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	permitir := func(tags ...string) gin.HandlerFunc {
		return middleware.RequirePermissao(authSvc.TemPermissao, tags...)
	}

	v1 := r.Group("/v1", jwtMW)
	{
		// Animal registry — reads open to any authenticated employee
		v1.GET("/animais", animaisH.Listar)
		v1.GET("/animais/:id", animaisH.Buscar)
		v1.GET("/animais/:id/pesos", animaisH.ListarPesos)
		animais := v1.Group("/animais", permitir("manage_animals"))
		{
			animais.POST("", animaisH.Criar)
			animais.PUT("/:id", animaisH.Atualizar)
			animais.DELETE("/:id", animaisH.Remover)
			animais.POST("/pesos", animaisH.RegistrarPeso)
		}

		// Reproduction
		v1.GET("/reproducao/animais/:id/ciclos", reproducaoH.ListarCiclos)
		v1.GET("/reproducao/animais/:id/intervalos", reproducaoH.AnalisarIntervalos)
		v1.GET("/reproducao/animais/:id/previsao-cio", reproducaoH.PreverProximoCio)
		v1.GET("/reproducao/proximos-cios", reproducaoH.ProximosCios)
		v1.GET("/reproducao/partos-previstos", reproducaoH.PartosPrevistos)
		v1.GET("/reproducao/cios/relatorio", permitir("view_reports"), reproducaoH.RelatorioCios)
		reproducao := v1.Group("/reproducao", permitir("manage_reproduction"))
		{
			reproducao.POST("/cios", reproducaoH.RegistrarCio)
			reproducao.POST("/inseminacoes", reproducaoH.RegistrarInseminacao)
			reproducao.POST("/gestacoes", reproducaoH.AbrirGestacao)
			reproducao.PUT("/gestacoes/:id/parto", reproducaoH.RegistrarParto)
			reproducao.POST("/deteccoes", reproducaoH.RegistrarCioRufiao)
		}

		// Pens
		v1.GET("/baias", baiasH.Listar)
		v1.GET("/baias/disponibilidade", baiasH.Disponibilidade)
		v1.GET("/baias/:id/alocacoes", baiasH.ListarAlocacoes)
		baias := v1.Group("/baias", permitir("manage_animals"))
		{
			baias.POST("", baiasH.Criar)
			baias.POST("/alocacoes", baiasH.Alocar)
			baias.DELETE("/alocacoes/:id", baiasH.Liberar)
		}

		// Maternity
		v1.GET("/maternidade/leitegadas/:id/leitoes", maternidadeH.ListarLeitoes)
		v1.GET("/maternidade/leitegadas/:id/metricas", maternidadeH.CalcularMetricas)
		maternidade := v1.Group("/maternidade", permitir("manage_reproduction"))
		{
			maternidade.POST("", maternidadeH.Abrir)
			maternidade.POST("/leitegadas", maternidadeH.RegistrarLeitegada)
			maternidade.POST("/leitoes", maternidadeH.RegistrarLeitoes)
			maternidade.PUT("/leitoes/:id", maternidadeH.AtualizarLeitao)
			maternidade.POST("/desmames", maternidadeH.RegistrarDesmame)
		}

		// Nursery
		v1.GET("/creche/lotes", crecheH.ListarLotes)
		v1.GET("/creche/lotes/:id", crecheH.DetalharLote)
		creche := v1.Group("/creche", permitir("manage_growth"))
		{
			creche.POST("/lotes", crecheH.FormarLote)
			creche.POST("/lotes/:id/pesagens", crecheH.RegistrarPesagem)
			creche.POST("/lotes/:id/mortalidade", crecheH.RegistrarMortalidade)
			creche.POST("/lotes/:id/medicacoes", crecheH.RegistrarMedicacao)
			creche.POST("/lotes/:id/saida", crecheH.RegistrarSaida)
		}

		// Grow-out
		v1.GET("/recria/lotes", recriaH.ListarLotes)
		v1.GET("/recria/lotes/:id/animais", recriaH.ListarAnimais)
		recria := v1.Group("/recria", permitir("manage_growth"))
		{
			recria.POST("/lotes", recriaH.CriarLote)
			recria.POST("/animais", recriaH.AdicionarAnimal)
			recria.POST("/pesagens", recriaH.RegistrarPesagem)
			recria.POST("/transferencias", recriaH.TransferirAnimal)
			recria.POST("/arracoamentos", recriaH.RegistrarArracoamento)
			recria.POST("/medicacoes", recriaH.RegistrarMedicacao)
			recria.PUT("/animais/:id/finalizar", recriaH.FinalizarAnimal)
			recria.PUT("/lotes/:id/finalizar", recriaH.FinalizarLote)
		}

		// Health
		v1.GET("/sanidade/vacinas", sanidadeH.ListarVacinas)
		v1.GET("/sanidade/animais/:id/proximas-vacinacoes", sanidadeH.ProximasVacinacoes)
		v1.GET("/sanidade/mortalidade/estatisticas", permitir("view_reports"), sanidadeH.EstatisticasMortalidade)
		sanidade := v1.Group("/sanidade", permitir("manage_health"))
		{
			sanidade.POST("/vacinas", sanidadeH.CriarVacina)
			sanidade.POST("/protocolos", sanidadeH.CriarProtocolo)
			sanidade.POST("/vacinacoes", sanidadeH.RegistrarVacinacao)
			sanidade.POST("/mortalidade", sanidadeH.RegistrarMortalidade)
		}

		// Gilt selection
		v1.GET("/marras", marrasH.Listar)
		v1.GET("/marras/taxa-selecao", permitir("view_reports"), marrasH.TaxaSelecao)
		marras := v1.Group("/marras", permitir("manage_reproduction"))
		{
			marras.POST("", marrasH.Criar)
			marras.POST("/avaliacoes", marrasH.Avaliar)
			marras.POST("/descartes", marrasH.Descartar)
		}

		// Employees & permissions — administration only
		funcionarios := v1.Group("/funcionarios", permitir("manage_users"))
		{
			funcionarios.POST("", authH.RegistrarFuncionario)
			funcionarios.GET("", authH.ListarFuncionarios)
			funcionarios.PUT("/:id/status", authH.AlterarStatus)
		}
		v1.GET("/permissoes", permitir("manage_users"), authH.ListarPermissoes)
		v1.PUT("/permissoes", permitir("admin"), authH.DefinirPermissoes)

		// Offline sync
		v1.POST("/sincronizacao/importar", permitir("import_data"), sincronizacaoH.Importar)
		v1.POST("/sincronizacao/exportar", permitir("export_data"), sincronizacaoH.Exportar)
		v1.GET("/sincronizacao/colecoes", permitir("export_data"), sincronizacaoH.ListarColecoes)

		// Swine-calendar conversion, any authenticated user
		v1.GET("/calendario", relatoriosH.CalendarioSuino)

		// Reports
		relatorios := v1.Group("/relatorios", permitir("view_reports"))
		{
			relatorios.GET("/painel", relatoriosH.Painel)
			relatorios.GET("/desmames", relatoriosH.RelatorioDesmames)
			relatorios.POST("/desmames/enviar", permitir("export_data"), relatoriosH.EnviarRelatorioDesmames)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
