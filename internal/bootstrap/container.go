package bootstrap

import (
	"context"
	"log"

	"dept-tracker-be/internal/config"
	"dept-tracker-be/internal/controller"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/internal/pkg/serverutils"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/failover"
	"dept-tracker-be/internal/repository/implementation"
	"dept-tracker-be/internal/repository/memory"
	"dept-tracker-be/internal/search"
	"dept-tracker-be/internal/service"

	pktNats "dept-tracker-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	NoteController     controller.INoteController
	TaskController     controller.ITaskController
	SearchController   controller.ISearchController
	HardwareController controller.IHardwareController

	// Background services (exposed for main.go to run)
	NotificationService service.INotificationService

	Logger logger.ILogger
}

// NewContainer wires the whole dependency graph. db may be nil: every
// gateway then runs fallback-only and the process still serves traffic.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Primary repositories, absent without a database connection.
	var (
		noteRepo     contract.NoteRepository
		taskRepo     contract.TaskRepository
		userRepo     contract.UserRepository
		hardwareRepo contract.ServiceRecordRepository
	)
	if db != nil {
		noteRepo = implementation.NewNoteRepository(db)
		taskRepo = implementation.NewTaskRepository(db)
		userRepo = implementation.NewUserRepository(db)
		hardwareRepo = implementation.NewServiceRecordRepository(db)
	}

	// Fallback tier and the gateways that arbitrate between the stores.
	noteGateway := failover.NewNoteGateway(noteRepo, memory.NewNoteStore(), sysLogger)
	taskGateway := failover.NewTaskGateway(taskRepo, memory.NewTaskStore(), sysLogger)
	userGateway := failover.NewUserGateway(userRepo, memory.NewUserStore(), sysLogger)
	userGateway.WarmFallback(context.Background())

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub)
	notificationService := service.NewNotificationService(pubSub, cfg.App.EventTopic, natsPub, sysLogger)

	authService := service.NewAuthService(userGateway, cfg.Auth)
	noteService := service.NewNoteService(noteGateway, publisherService, sysLogger)
	taskService := service.NewTaskService(taskGateway, userGateway, publisherService, sysLogger)
	searchService := service.NewSearchService(noteGateway, taskGateway, search.NewScorer(), sysLogger)
	hardwareService := service.NewHardwareService(hardwareRepo)

	var authMiddleware fiber.Handler = serverutils.JwtMiddleware(cfg.Auth.JwtSecret)

	return &Container{
		AuthController:      controller.NewAuthController(authService, authMiddleware),
		NoteController:      controller.NewNoteController(noteService, cfg.Uploads, authMiddleware),
		TaskController:      controller.NewTaskController(taskService, authMiddleware),
		SearchController:    controller.NewSearchController(searchService, authMiddleware),
		HardwareController:  controller.NewHardwareController(hardwareService, authMiddleware),
		NotificationService: notificationService,
		Logger:              sysLogger,
	}
}
