package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"yolofeed/internal/capture/config"
	"yolofeed/internal/capture/service"
	"yolofeed/internal/lifecycle"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the capture service",
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
		logrus.WithError(err).Fatal("new capture service")
	}
	go svc.Start()

	shutdown := lifecycle.New()
	go func() {
		shutdown.WaitForSignal()
	}()
	<-shutdown.Done()

	logrus.Info("capture service is shutting down...")
	svc.Stop()
}
