package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/vidinfo-cli/vidinfo/auth"
	"github.com/vidinfo-cli/vidinfo/color"
	"github.com/vidinfo-cli/vidinfo/config"
	"github.com/vidinfo-cli/vidinfo/icon"
	"github.com/vidinfo-cli/vidinfo/style"
	"github.com/zalando/go-keyring"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authStatusCmd, authDeleteCmd)
}

// authCmd groups the commands managing the catalog API key.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the catalog API key stored in the system keyring",
}

var authSetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the API key in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var apiKey string
		if len(args) > 0 {
			apiKey = args[0]
		} else {
			prompt := survey.Password{
				Message: "API key:",
				Help:    "Create one in the Google Cloud console with the YouTube Data API v3 enabled",
			}
			handleErr(survey.AskOne(&prompt, &apiKey, survey.WithValidator(survey.Required)))
		}

		apiKey = strings.TrimSpace(apiKey)
		if apiKey == "" {
			handleErr(errors.New("api key is empty"))
		}

		handleErr(auth.SetKey(apiKey))
		fmt.Printf("%s stored api key %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Yellow)(config.Mask(apiKey)))
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which API key would be used",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, source, err := auth.Resolve()
		if errors.Is(err, auth.ErrNoKey) {
			fmt.Printf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), err)
			return
		}
		handleErr(err)

		fmt.Printf(
			"%s using %s from %s\n",
			style.Fg(color.Green)(icon.Get(icon.Key)),
			style.Fg(color.Yellow)(config.Mask(apiKey)),
			style.Fg(color.Purple)(string(source)),
		)
	},
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Remove the API key from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		err := auth.DeleteKey()
		if errors.Is(err, keyring.ErrNotFound) {
			err = errors.New("no api key stored in the keyring")
		}
		handleErr(err)

		fmt.Printf("%s deleted api key\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
