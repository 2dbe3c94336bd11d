package main

import (
	"os"
	"os/signal"
	"syscall"

	"nishan.dev/configs"
	"nishan.dev/configs/configsdatabase"
	"nishan.dev/configs/configslog"
	"nishan.dev/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:           configs.GetString("APP_NAME", "nishan.dev"),
		Views:             configs.SetupViews(),
		PassLocalsToViews: true,
	})

	app.Static("/static", "./static")
	app.Static("/media", configs.GetString("MEDIA_ROOT", "./media"))

	routes.SetupRoutes(app)

	addr := ":" + configs.GetString("APP_PORT", "3000")

	errChannel := make(chan error, 1)
	go func() {
		configslog.SLog.Infof("Server listening on %s", addr)
		errChannel <- app.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChannel:
		if err != nil {
			configslog.Log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	case sig := <-quit:
		configslog.SLog.Infof("Received signal %s, shutting down", sig)
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Graceful shutdown failed", zap.Error(err))
		}
	}
}
