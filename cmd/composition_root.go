package cmd

import (
	"log/slog"
	"os"
	"time"

	"carcheck/internal/adapters/in/http"
	"carcheck/internal/adapters/out/gemini"
	"carcheck/internal/adapters/out/postgres"
	"carcheck/internal/adapters/out/resend"
	"carcheck/internal/core/application/usecases/commands"
	"carcheck/internal/core/application/usecases/queries"
	"carcheck/internal/core/domain/model/checklist"
	"carcheck/internal/core/domain/services"
	"carcheck/internal/jobs"
	"carcheck/internal/pkg/metrics"
	"carcheck/internal/pkg/sendqueue"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const (
	// Resend allows two requests per second on the free tier.
	notificationDelay = 600 * time.Millisecond

	notificationRetries = 2
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	logger      *slog.Logger
	pipeline    *metrics.Pipeline
	catalog     checklist.Catalog
	validator   services.InspectionValidator
	synthesizer services.ReportSynthesizer
	dispatcher  services.NotificationDispatcher

	getOrderHandler queries.GetOrderQueryHandler
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	catalog := checklist.DefaultCatalog()
	if configs.ChecklistPath != "" {
		loaded, err := checklist.LoadCatalog(configs.ChecklistPath)
		if err != nil {
			return CompositionRoot{}, err
		}
		catalog = loaded
	}

	geminiOpts := []gemini.Option{}
	if configs.GeminiModel != "" {
		geminiOpts = append(geminiOpts, gemini.WithModel(configs.GeminiModel))
	}
	generator := gemini.NewClient(configs.GeminiAPIKey, geminiOpts...)

	sender := resend.NewClient(configs.ResendAPIKey, configs.ResendFromAddress)
	queue := sendqueue.New(sender, notificationDelay, notificationRetries, logger)

	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:          logger,
		pipeline:        metrics.NewPipeline(prometheus.DefaultRegisterer),
		catalog:         catalog,
		validator:       services.NewInspectionValidator(),
		synthesizer:     services.NewReportSynthesizer(generator, logger),
		dispatcher:      services.NewNotificationDispatcher(queue, configs.InspectorEmail, logger),
		getOrderHandler: queries.NewGetOrderQueryHandler(gormDB),
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingCommandHandler(f, c.dispatcher, c.pipeline, c.logger)
}

func (c *CompositionRoot) CreateSubmitInspectionCommandHandler() commands.SubmitInspectionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitInspectionCommandHandler(
		f, c.catalog, c.validator, c.synthesizer, c.dispatcher, c.pipeline, c.logger)
}

func (c *CompositionRoot) CreateSendAppointmentRemindersCommandHandler() commands.SendAppointmentRemindersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendAppointmentRemindersCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return c.getOrderHandler
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateBookingCommandHandler(),
		c.CreateSubmitInspectionCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSendAppointmentRemindersCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
