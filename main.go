package main

import (
	"log"

	"github.com/meinhoongagan/service-marketplace/app"
	"github.com/meinhoongagan/service-marketplace/config"
	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	var upload controllers.UploadFunc
	if cfg.CloudinaryCloudName != "" {
		uploader, err := utils.NewUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary: ", err)
		}
		upload = uploader.Upload
	}

	server := app.New(cfg, conn, upload)
	log.Fatal(server.Listen(":" + cfg.Port))
}
