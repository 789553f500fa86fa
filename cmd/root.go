package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/khanhnv2901/iotscan/internal/shared/constants"
)

var cfgFile string
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "iotscan",
	Short: "IoT & IP camera security assessment tools (for lawful testing only)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".iotscan")
			viper.SetConfigType("yaml")
		}

		viper.SetDefault("signatures_file", "iot_signatures.json")
		viper.SetDefault("disclosure_file", "legal_warning.md")
		viper.SetDefault("scanner_binary", "nmap")
		viper.SetDefault("http_client_binary", "curl")
		viper.SetDefault("stream_prober_binary", "ffprobe")
		viper.SetDefault("process_timeout_seconds", 60)
		viper.SetDefault("credentials_per_second", 2.0)
		viper.SetDefault("rate_window_seconds", int(constants.RateWindow.Seconds()))
		viper.SetDefault("rate_max_scans", constants.RateMaxScans)

		_ = viper.ReadInConfig()

		// init logger; MCP stdio owns stdout, so logs go to stderr only
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logger = l.Sugar()

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.iotscan.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(versionCmd)
}
