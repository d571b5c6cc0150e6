package initialize

import (
	"fmt"
	"net/http"
	"os"
	"worksuite/app/controllers"
	"worksuite/app/db"
	jwtutil "worksuite/app/jwt"
	"worksuite/app/middleware"
	"worksuite/app/models"
	"worksuite/app/repo"
	"worksuite/app/services"
	"worksuite/app/socket"
	"worksuite/app/storage"
	"worksuite/app/workspace"
	"worksuite/config"
	"worksuite/global"
	"worksuite/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const version = "1.0.0"

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
	Hub    *socket.Hub
	Items  *services.ItemService
	Batch  *services.BatchService
	Users  *services.UserService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	if err := os.MkdirAll(cfg.DataPath, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	files, err := storage.New(cfg.FilesPath())
	if err != nil {
		return nil, fmt.Errorf("init file storage: %w", err)
	}

	gdb, err := db.Connect(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Item{}, &models.Tag{}, &models.ItemTag{}, &models.Theme{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	wsClient := workspace.New(cfg.Workspace.BaseURL, cfg.Workspace.Timeout)

	// repositories and services
	itemRepo := repo.NewItemRepository(gdb)
	tagRepo := repo.NewTagRepository(gdb)
	userRepo := repo.NewUserRepository(gdb)
	themeRepo := repo.NewThemeRepository(gdb)
	itemSvc := services.NewItemService(itemRepo, tagRepo, files, wsClient)
	tagSvc := services.NewTagService(tagRepo)
	batchSvc := services.NewBatchService(itemSvc)
	userSvc := services.NewUserService(userRepo)
	themeSvc := services.NewThemeService(themeRepo)

	hub := socket.NewHub(global.Rdb, cfg.Redis.Channel)

	// controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpDays: cfg.JWT.ExpDays}
	mw := &middleware.Auth{Signer: signer}
	h := router.NewRouter(
		controllers.NewHealthController(version),
		controllers.NewAuthController(userSvc, signer),
		controllers.NewItemController(itemSvc),
		controllers.NewUploadController(itemSvc, files),
		controllers.NewTagController(tagSvc),
		controllers.NewThemeController(themeSvc),
		controllers.NewSchemaController(),
		controllers.NewBatchController(batchSvc),
		controllers.NewWorkspaceController(wsClient),
		controllers.NewSocketController(hub),
		mw,
	)
	handler := middleware.CORS(middleware.Logging(h))

	return &App{Cfg: cfg, DB: gdb, Router: handler, Hub: hub, Items: itemSvc, Batch: batchSvc, Users: userSvc}, nil
}
