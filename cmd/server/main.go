package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/DanteA11/TweetsApi/config"
	"github.com/DanteA11/TweetsApi/crud"
	"github.com/DanteA11/TweetsApi/filestore"
	"github.com/DanteA11/TweetsApi/janitor"
	"github.com/DanteA11/TweetsApi/model"
	"github.com/DanteA11/TweetsApi/server"
	"github.com/DanteA11/TweetsApi/utils"
)

func main() {
	initLogger()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	db, err := utils.GetDBConnection(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to the database")
	}
	if err := model.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("failed to migrate schema")
	}

	var store filestore.FileStore
	mediaDir := ""
	if cfg.S3Bucket != "" {
		store, err = filestore.NewS3(cfg.S3Bucket)
	} else {
		var local *filestore.Local
		local, err = filestore.NewLocal(cfg.MediaPath)
		if local != nil {
			store = local
			mediaDir = local.Dir()
		}
	}
	if err != nil {
		logrus.WithError(err).Fatal("failed to set up media storage")
	}

	ctrl := crud.NewController(db, store)

	j := janitor.New(db, store, cfg.OrphanRetention)
	if err := j.Start(); err != nil {
		logrus.WithError(err).Fatal("failed to start media janitor")
	}
	defer j.Stop()

	srv := server.New(cfg, ctrl, mediaDir)
	logrus.WithField("port", cfg.Port).Info("===== Tweets API started =====")
	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

func initLogger() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}
}
