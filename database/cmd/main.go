package main

import (
	"flag"

	"nishan.dev/configs"
	"nishan.dev/configs/configsdatabase"
	"nishan.dev/configs/configslog"
	"nishan.dev/database"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Run database migrations")
	seedFlag := flag.Bool("seed", false, "Run database seeders")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Running database initialization...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Database initialization done.")
}
