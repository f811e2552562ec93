package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/catalog"
	"github.com/vidinfo-cli/vidinfo/inline"
	"github.com/vidinfo-cli/vidinfo/key"
	"github.com/vidinfo-cli/vidinfo/lookup"
	"github.com/vidinfo-cli/vidinfo/open"
	"github.com/vidinfo-cli/vidinfo/recent"
	"github.com/vidinfo-cli/vidinfo/util"
)

// exportNoName is the value --export takes when given without a name.
const exportNoName = " "

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolP("json", "j", false, "Print the projected sections as JSON")
	fetchCmd.Flags().BoolP("raw", "r", false, "Print the record exactly as the catalog returned it")
	fetchCmd.Flags().BoolP("plain", "p", false, "Print uncolored tables")
	fetchCmd.MarkFlagsMutuallyExclusive("json", "raw", "plain")

	fetchCmd.Flags().StringP("export", "e", "", "Export the raw record to a JSON file, optionally naming it")
	fetchCmd.Flags().Lookup("export").NoOptDefVal = exportNoName

	fetchCmd.Flags().BoolP("open", "o", false, "Open the watch page in the browser")
}

// fetchCmd looks up a single video without the interactive interface.
var fetchCmd = &cobra.Command{
	Use:   "fetch [id|url]",
	Short: "Look up a video and print its metadata",
	Long: `Look up a video and print its metadata.

The identifier can be a bare video ID or any watch, share, shorts or embed URL.
When it is omitted and stdin is a terminal, it is prompted for.`,
	Example: `  vidinfo fetch dQw4w9WgXcQ
  vidinfo fetch https://youtu.be/dQw4w9WgXcQ --json
  vidinfo fetch dQw4w9WgXcQ --export=clip --export-dir ./exports`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionRecentIDs,
	Run: func(cmd *cobra.Command, args []string) {
		var input string
		if len(args) > 0 {
			input = args[0]
		} else {
			input = promptID()
		}

		client, err := newClient()
		handleErr(err)

		projector, err := newProjector()
		handleErr(err)

		options := inline.Options{
			Out:        cmd.OutOrStdout(),
			Err:        cmd.ErrOrStderr(),
			Controller: lookup.New(client),
			Projector:  projector,
			ID:         catalog.ParseID(input),
			Format:     fetchFormat(cmd),
			Width:      terminalWidth(),
			ExportDir:  viper.GetString(key.ExportDir),
			Open:       lo.Must(cmd.Flags().GetBool("open")),
			Browser:    open.URL,
		}

		if cmd.Flags().Changed("export") {
			options.Export = mo.Some(strings.TrimSpace(lo.Must(cmd.Flags().GetString("export"))))
		}

		err = inline.Run(context.Background(), &options)

		// The failure was already printed as JSON; exit without repeating it.
		var failure *inline.FailureError
		if errors.As(err, &failure) && options.Format == inline.JSON {
			os.Exit(1)
		}
		handleErr(err)
	},
}

func fetchFormat(cmd *cobra.Command) inline.Format {
	switch {
	case lo.Must(cmd.Flags().GetBool("json")):
		return inline.JSON
	case lo.Must(cmd.Flags().GetBool("raw")):
		return inline.Raw
	case lo.Must(cmd.Flags().GetBool("plain")):
		return inline.Plain
	default:
		return inline.Styled
	}
}

// promptID asks for an identifier when stdin is interactive. Otherwise it returns an empty
// string, which the lookup reports as a missing identifier.
func promptID() string {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return ""
	}

	input := survey.Input{
		Message: "Video ID or URL:",
		Default: recent.Suggest("").OrEmpty(),
		Suggest: recent.SuggestMany,
	}

	var response string
	handleErr(survey.AskOne(&input, &response))
	return response
}

func terminalWidth() int {
	if width, _, err := util.TerminalSize(); err == nil && width > 0 {
		return width
	}
	return 80
}
