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
	Use:   "yolo-predictor",
	Short: "yolo-predictor runs the YOLOv8 prediction gRPC service",
	Long: `yolo-predictor serves object detection over gRPC, backed by a pool
of ONNX Runtime sessions.
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
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "configuration/predictor", "Path to config directory")

	rootCmd.AddCommand(serveCommand)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
