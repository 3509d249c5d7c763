package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pinpt/go-common/v10/log"
	"github.com/pinpt/lexoffice/sdk"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "save the api token and base uri to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.NewCommandLogger(cmd)
		defer logger.Close()
		fn, err := configFilename(cmd.Flags())
		if err != nil {
			log.Fatal(logger, "error finding config file", "err", err)
		}
		current, err := loadFileConfig(fn)
		if err != nil {
			log.Fatal(logger, "error loading config", "err", err)
		}
		if current.BaseURI == "" {
			current.BaseURI = sdk.DefaultBaseURI
		}
		var answers fileConfig
		if err := survey.Ask([]*survey.Question{
			{
				Name: "base_uri",
				Prompt: &survey.Input{
					Message: "API base uri:",
					Default: current.BaseURI,
				},
				Validate: survey.Required,
			},
			{
				Name: "api_token",
				Prompt: &survey.Password{
					Message: "API token:",
					Help:    "Create one at https://app.lexoffice.de/addons/public-api",
				},
				Validate: survey.Required,
			},
		}, &answers); err != nil {
			log.Fatal(logger, "error asking questions", "err", err)
		}
		if err := answers.save(fn); err != nil {
			log.Fatal(logger, "error saving config", "err", err)
		}
		log.Info(logger, "saved config", "file", fn)
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
}
