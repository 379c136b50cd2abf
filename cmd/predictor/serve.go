package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"yolofeed/internal/lifecycle"
	"yolofeed/internal/predictor/config"
	"yolofeed/internal/predictor/service"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the prediction service",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	conf, err := config.LoadConfig(configDir)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	logrus.Infof("config: %+v", conf)

	svc, err := service.New(conf)
	if err != nil {
		logrus.WithError(err).Fatal("new prediction service")
	}
	go svc.Start()

	shutdown := lifecycle.New()
	go func() {
		shutdown.WaitForSignal()
	}()
	<-shutdown.Done()

	logrus.Info("prediction service is shutting down...")
	svc.Stop()
}
