package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"promptcraft/backend/internal/config"
	catalog "promptcraft/backend/internal/features/catalog/domain"
	catalog_http "promptcraft/backend/internal/features/catalog/presentation/http"
	chat_application "promptcraft/backend/internal/features/chat/application"
	"promptcraft/backend/internal/features/chat/infrastructure"
	chat_http "promptcraft/backend/internal/features/chat/presentation/http"
	config_application "promptcraft/backend/internal/features/config/application"
	config_http "promptcraft/backend/internal/features/config/presentation/http"
	export_application "promptcraft/backend/internal/features/export/application"
	export_infrastructure "promptcraft/backend/internal/features/export/infrastructure"
	export_http "promptcraft/backend/internal/features/export/presentation/http"
	notification_application "promptcraft/backend/internal/features/notification/application"
	notification_http "promptcraft/backend/internal/features/notification/presentation/http"
	wizard_application "promptcraft/backend/internal/features/wizard/application"
	wizard_http "promptcraft/backend/internal/features/wizard/presentation/http"
	"promptcraft/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()
	env := config.LoadEnv()

	appConfigService := config.NewAppConfigService(env.AppConfigPath)
	appConfig, err := appConfigService.LoadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load app config: %v", err)
	}

	store, err := storage.Open(env.StoreDriver, env.DataDir)
	if err != nil {
		log.Fatalf("Failed to open %s store in %s: %v", env.StoreDriver, env.DataDir, err)
	}
	defer store.Close()

	// Initialize AI client; without a key every chat reply reports the invalid credential
	options := map[string]string{}
	if env.OpenAIBaseURL != "" {
		options["base_url"] = env.OpenAIBaseURL
	}
	aiClient, err := infrastructure.NewAIClientFactory().CreateClient(ctx, infrastructure.AIConfig{
		Provider: appConfig.Provider,
		APIKey:   env.APIKey(appConfig.Provider),
		Model:    appConfig.ModelParams.Model,
		Options:  options,
	})
	if err != nil {
		log.Println("[ERROR] AI client unavailable:", err)
		aiClient = infrastructure.UnavailableClient{Err: err}
	}
	defer aiClient.Close()
	log.Println("Using AI client", aiClient.Name())

	// Initialize services
	cat := catalog.Default()
	toastService := notification_application.NewToastService(time.Duration(appConfig.ToastDurationMs) * time.Millisecond)
	wizardService := wizard_application.NewWizardService(ctx, cat, store, toastService)
	chatService := chat_application.NewChatService(ctx, aiClient, store, wizardService, cat)
	exportService := export_application.NewExportService(wizardService, export_infrastructure.NewSystemClipboard(), toastService)
	configService := config_application.NewConfigService(appConfigService)

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	catalog_http.NewCatalogHandler(cat).Register(api)
	wizard_http.NewWizardHandler(wizardService).Register(api)
	chat_http.NewChatHandler(chatService, appConfigService).Register(api)
	export_http.NewExportHandler(exportService).Register(api)
	api.GET("/notifications", notification_http.NewNotificationHandler(toastService).ListHandler)

	// Config API routes
	configGroup := api.Group("/config")
	{
		configHandler := config_http.NewAppConfigHandler(configService)
		configGroup.GET("/app", configHandler.GetAppConfigHandler)
		configGroup.POST("/app", configHandler.SaveAppConfigHandler)
	}

	if err := r.Run(env.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
