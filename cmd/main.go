package main

import (
	"context"
	"database/sql"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"partshub/config"
	"partshub/internal/pkg/cache"
	"partshub/internal/pkg/database"
	"partshub/internal/pkg/logger"
	"partshub/internal/pkg/metrics"
	"partshub/internal/pkg/token"
	"partshub/internal/scheduler"
	"partshub/internal/store"
	"partshub/migrations"

	// Camadas para Injeção de Dependências
	"partshub/internal/api/cart"
	"partshub/internal/api/catalog"
	"partshub/internal/api/invoice"
	"partshub/internal/api/order"
	"partshub/internal/api/report"
	"partshub/internal/api/router"
	"partshub/internal/api/sale"
	"partshub/internal/api/session"
	"partshub/internal/domain"
	"partshub/internal/repository/ledgerrepo"
	"partshub/internal/repository/prefrepo"
	"partshub/internal/service/cartservice"
	"partshub/internal/service/catalogservice"
	"partshub/internal/service/invoiceservice"
	"partshub/internal/service/orderservice"
	"partshub/internal/service/reportservice"
	"partshub/internal/service/saleservice"
	"partshub/internal/service/sessionservice"
)

// ledgerArchiver é o que os serviços de pedido, venda e fatura gravam fora do processo.
type ledgerArchiver interface {
	ArchiveSales(ctx context.Context, records []domain.SalesRecord) error
	ArchiveWarehouseOrder(ctx context.Context, order domain.WarehouseOrder, invoice domain.Invoice) error
	ArchiveInvoicePayment(ctx context.Context, invoice domain.Invoice) error
}

func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	stdlog.Println("⚡ Inicializando serviço PartsHub...")
	if err := godotenv.Load(); err != nil {
		stdlog.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer zl.Sync()
	}
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "port": cfg.Port})

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	// 2. Infraestrutura opcional

	// A. Arquivo do ledger (PostgreSQL)
	var archive ledgerArchiver = ledgerrepo.NopRepository{}
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.NewPostgresDB(startCtx, cfg.DatabaseURL, cfg.DBTimeout)
		if err != nil {
			log.Fatal("Falha ao conectar ao banco de dados.", err)
		}
		defer db.Close()

		if err := database.Migrate(startCtx, db, migrations.FS, "up"); err != nil {
			log.Fatal("Falha ao aplicar migrações do ledger.", err)
		}
		archive = ledgerrepo.NewLedgerRepository(db, cfg.DBTimeout, log.Named("ledgerrepo"))
		log.Info("Arquivo do ledger em PostgreSQL habilitado.", nil)
	} else {
		log.Warn("DATABASE_URL vazio. Arquivamento do ledger desativado.", nil)
	}

	// B. Cache (Redis ou memória)
	var cacheClient cache.Client
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(startCtx, cfg.RedisAddr, cfg.CacheTimeout)
		if err != nil {
			log.Fatal("Falha ao conectar ao Redis.", err)
		}
		cacheClient = redisClient
		log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	} else {
		cacheClient = cache.NewMemoryClient()
		log.Warn("REDIS_ADDR vazio. Usando cache em memória.", nil)
	}
	defer cacheClient.Close()

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Store/Repository -> Service -> Handler

	appStore := store.NewSeeded()
	serverMetrics := metrics.NewServerMetrics()
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	prefRepo := prefrepo.NewPreferenceRepository(cacheClient, cfg.CacheTimeout, log.Named("prefrepo"))

	cartSvc := cartservice.NewService(appStore, log.Named("cartservice"))
	catalogSvc := catalogservice.NewService(appStore, log.Named("catalogservice"))
	orderSvc := orderservice.NewService(appStore, archive, serverMetrics, orderservice.Config{
		OrderDelay:       cfg.OrderDelay,
		DarkstoreDelay:   cfg.DarkstoreDelay,
		WarehouseDelay:   cfg.WarehouseDelay,
		ActiveRetailerID: cfg.ActiveRetailerID,
	}, log.Named("orderservice"))
	saleSvc := saleservice.NewService(appStore, archive, serverMetrics, cfg.ActiveRetailerID, cfg.SaleDelay, log.Named("saleservice"))
	invoiceSvc := invoiceservice.NewService(appStore, archive, serverMetrics, log.Named("invoiceservice"))
	sessionSvc := sessionservice.NewService(appStore, prefRepo, tokenSvc, log.Named("sessionservice"))
	reportSvc := reportservice.NewService(appStore, cfg.ActiveRetailerID, log.Named("reportservice"))
	log.Debug("Serviços inicializados.", nil)

	// O tema é o único valor persistido; é lido uma vez na subida.
	theme := sessionSvc.LoadTheme(startCtx)
	log.Info("Tema carregado.", map[string]interface{}{"theme": theme})

	handlers := router.Handlers{
		Cart:    cart.NewHandler(cartSvc, log.Named("cart")),
		Catalog: catalog.NewHandler(catalogSvc, log.Named("catalog")),
		Order:   order.NewHandler(orderSvc, log.Named("order")),
		Sale:    sale.NewHandler(saleSvc, log.Named("sale")),
		Invoice: invoice.NewHandler(invoiceSvc, log.Named("invoice")),
		Session: session.NewHandler(sessionSvc, log.Named("session")),
		Report:  report.NewHandler(reportSvc, log.Named("report")),
	}

	// 4. Agendador de relatórios
	sched := scheduler.NewScheduler(cfg.ReportSchedule, reportSvc, log.Named("scheduler"))
	if err := sched.Start(); err != nil {
		log.Fatal("Falha ao iniciar o agendador.", err)
	}

	// 5. Roteador e Servidor
	r := router.NewRouter(handlers, router.Options{
		TokenService:    tokenSvc,
		Cache:           cacheClient,
		Metrics:         serverMetrics,
		RateLimit:       cfg.RateLimitMaxRequests,
		RateLimitWindow: cfg.RateLimitPeriod,
		Logger:          log.Named("http"),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor PartsHub ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	sched.Stop(ctx)
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
