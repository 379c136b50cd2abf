package main

import (
	"os"

	"github.com/spf13/cobra"

	"yolofeed/internal/version"
	"yolofeed/pkg/log"
)

var (
	logLevel  string
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "yolo-capture",
	Short: "yolo-capture streams a local camera with live YOLOv8 detections",
	Long: `yolo-capture reads a local video device, streams it as MJPEG with
detections overlaid, and submits frames to a yolo-predictor gRPC service.
Version: ` + version.VERSION + `/` + version.COMMIT,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.InitLog(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "configuration/capture", "Path to config directory")

	rootCmd.AddCommand(serveCommand)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
