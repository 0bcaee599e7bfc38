/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/spf13/viper"
	"os"
	"strings"

	"choque/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "choque",
	Short: "Fetch, search, serve, and export community classified listings.",
	Long: `
**********************************************
*                CHỢ QUÊ                     *
**********************************************

This CLI pulls the published spreadsheets behind the six listing boards
(food, jobs, realestate, vehicles, market, services), normalizes every row
into a listing record, and lets you search, serve, or export the result.

Supported local input formats:
- CSV: .csv, .txt
- Excel: .xlsx, .xlsm (legacy .xls is not supported)
`,
	Example: `
  # Create configuration file
  choque config create

  # Fetch every dataset and print a summary
  choque fetch

  # Search available market listings for a phone under 2 million
  choque fetch --dataset market --query "dien thoai" --price 500k-2m

  # Normalize a local spreadsheet export
  choque fetch --dataset realestate --input ./nha-dat.xlsx

  # Serve the JSON API
  choque serve --port 8080

  # Export the current jobs board to Excel
  choque export --dataset jobs --output ./viec-lam.xlsx
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.choque.yaml, then ./.choque.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".choque" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".choque")
	}

	viper.SetEnvPrefix("choque")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in. Built-in defaults apply otherwise.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: choque config create")
	}
}
