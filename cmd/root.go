package cmd

import (
	"fmt"
	"os"

	"parambuster/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "parambuster",
	Short: "Web Parameter Discovery",
	Long:  `ParamBuster - Discover candidate parameter names in a web page's source: query keys, path segments, form fields, script variables, and comments.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.PrintBanner(version)
		utils.InitLogger(verbose)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/default.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}
