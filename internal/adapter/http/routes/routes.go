package routes

import (
	"context"
	"fmt"
	_ "precifica_ti/docs" // This will be auto-generated
	"precifica_ti/internal/adapter/http/handlers"
	"precifica_ti/internal/adapter/persistence/repository"
	"precifica_ti/internal/domain/extraction"
	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/domain/taxtable"
	"precifica_ti/internal/domain/telephony"
	"precifica_ti/internal/infrastructure/cache"
	"precifica_ti/internal/infrastructure/config"
	"precifica_ti/internal/infrastructure/database"
	"precifica_ti/internal/infrastructure/logger"
	"precifica_ti/internal/infrastructure/payments"
	"precifica_ti/internal/infrastructure/storage"
	"precifica_ti/internal/infrastructure/textdecode"
	"precifica_ti/internal/usecase"
	"precifica_ti/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type handlerSet struct {
	pricing       *handlers.PricingHandler
	telephony     *handlers.TelephonyHandler
	quotes        *handlers.TelephonyQuoteHandler
	worksheets    *handlers.WorksheetHandler
	proposal      *handlers.ProposalHandler
	configuration *handlers.ConfigurationHandler
	analysis      *handlers.AnalysisHandler
	payment       *handlers.ProposalPaymentHandler
}

// Run will start the server
func Run(ctx context.Context, cfg *config.Config) error {
	logger.Setup(cfg.Log)
	gin.SetMode(cfg.Server.GinMode)

	h, err := getHandlers(ctx, cfg)
	if err != nil {
		return err
	}

	router := newRouter(h)
	logrus.WithField("port", cfg.Server.Port).Info("[server] listening")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func newRouter(h handlerSet) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, h.pricing, h.telephony, h.quotes)
	addWorksheetRoutes(v1, h.worksheets)
	addProposalRoutes(v1, h.proposal)
	addConfigurationRoutes(v1, h.configuration)
	addAnalysisRoutes(v1, h.analysis)
	addPaymentRoutes(v1, h.payment)
	return router
}

func getHandlers(ctx context.Context, cfg *config.Config) (handlerSet, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return handlerSet{}, err
	}
	rdb, err := cache.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return handlerSet{}, err
	}

	var documentStorage interfaces.IDocumentStorage
	if cfg.MinIO.Enabled {
		minioStorage, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return handlerSet{}, err
		}
		documentStorage = minioStorage
	} else {
		logrus.Info("[server] minio disabled; uploaded editais are not kept")
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
	if err != nil {
		logrus.WithError(err).Warn("[server] Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	configurationRepo := repository.NewConfigurationDynamoRepository(ddb, cfg.Tables.Configuration)
	proposalRepo := repository.NewProposalDynamoRepository(ddb, cfg.Tables.Proposals, cfg.Tables.Configuration)
	paymentRepo := repository.NewProposalPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	analysisRepo := repository.NewAnalysisRedisRepository(rdb, cfg.Redis.AnalysisTTL)
	quoteRepo := repository.NewTelephonyQuoteRedisRepository(rdb)
	worksheetRepo := repository.NewWorksheetRedisRepository(rdb, cfg.Redis.WorksheetTTL)

	engine := pricing.NewEngine(PricingRates(cfg.Pricing))
	calculator := telephony.NewCalculator(telephony.TablesFrom(taxtable.Default()))

	configurationUseCase := usecase.NewConfigurationUseCase(configurationRepo)
	pricingUseCase := usecase.NewPricingUseCase(engine, configurationRepo)
	worksheetUseCase := usecase.NewWorksheetUseCase(worksheetRepo, pricingUseCase)
	telephonyUseCase := usecase.NewTelephonyUseCase(calculator)
	quoteUseCase := usecase.NewTelephonyQuoteUseCase(quoteRepo, telephonyUseCase)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, pricingUseCase, telephonyUseCase)
	analysisUseCase := usecase.NewAnalysisUseCase(analysisRepo, documentStorage, textdecode.NewPlainTextExtractor(), extraction.NewAnalyzer())
	paymentUseCase := usecase.NewProposalPaymentUseCase(paymentRepo, proposalRepo, paymentGateway, usecase.PaymentOptions{
		Mock:            cfg.MercadoPago.Mock,
		AccessToken:     cfg.MercadoPago.AccessToken,
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	})

	return handlerSet{
		pricing:       handlers.NewPricingHandler(pricingUseCase),
		telephony:     handlers.NewTelephonyHandler(telephonyUseCase),
		quotes:        handlers.NewTelephonyQuoteHandler(quoteUseCase),
		worksheets:    handlers.NewWorksheetHandler(worksheetUseCase),
		proposal:      handlers.NewProposalHandler(proposalUseCase),
		configuration: handlers.NewConfigurationHandler(configurationUseCase),
		analysis:      handlers.NewAnalysisHandler(analysisUseCase),
		payment:       handlers.NewProposalPaymentHandler(paymentUseCase, cfg.MercadoPago.Mock),
	}, nil
}

// PricingRates maps the configured rates onto the pricing engine.
func PricingRates(cfg config.PricingConfig) pricing.Rates {
	return pricing.Rates{
		SalesTaxRate:     cfg.SalesTaxRate,
		RentalTaxRate:    cfg.RentalTaxRate,
		ServiceTaxRate:   cfg.ServiceTaxRate,
		OriginICMSRate:   cfg.OriginICMSRate,
		FallbackICMSRate: cfg.FallbackICMSRate,
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("panic", recovered).Error("[server] recovered from panic")
		c.AbortWithStatus(500)
	}))
}
