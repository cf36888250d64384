package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func showBanner() {
	color.New(color.FgGreen, color.Bold).Println("H2O db-like-benchmark data generation.")
	color.New(color.FgRed, color.Italic).Println("This implementation is unofficial!")
	fmt.Println("For the official implementation please check https://github.com/duckdblabs/db-benchmark/tree/main/_data")
}

var rootCmd = &cobra.Command{
	Use:   "falsa",
	Short: "H2O db-like-benchmark data generation",
	Long: `Generate reproducible H2O db-benchmark datasets at 1e7, 1e8 or 1e9 rows.

Available commands are:
- groupby: generate the GroupBy dataset;
- join: generate the Join datasets (LHS plus small, medium, big RHS);

Output formats: CSV, PARQUET, DELTA. Generation is batched, so peak memory
stays bounded by the batch size regardless of the dataset size.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./falsa.yaml)")
}

func initConfig() {
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.falsa")
		viper.SetConfigType("yaml")
		viper.SetConfigName("falsa")
	}

	viper.ReadInConfig()
}
