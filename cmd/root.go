// Package cmd implements the command-line interface for vidinfo.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/color"
	"github.com/vidinfo-cli/vidinfo/constant"
	"github.com/vidinfo-cli/vidinfo/icon"
	"github.com/vidinfo-cli/vidinfo/key"
	"github.com/vidinfo-cli/vidinfo/log"
	"github.com/vidinfo-cli/vidinfo/open"
	"github.com/vidinfo-cli/vidinfo/recent"
	"github.com/vidinfo-cli/vidinfo/style"
	"github.com/vidinfo-cli/vidinfo/tui"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("export-dir", "d", "", "Directory raw JSON exports are written to")
	lo.Must0(viper.BindPFlag(key.ExportDir, rootCmd.PersistentFlags().Lookup("export-dir")))

	rootCmd.PersistentFlags().String("timezone", "", "Time zone timestamps are displayed in (e.g., UTC, Europe/Berlin)")
	lo.Must0(viper.BindPFlag(key.FormatTimezone, rootCmd.PersistentFlags().Lookup("timezone")))
}

// rootCmd opens the interactive interface, optionally looking up an identifier right away.
var rootCmd = &cobra.Command{
	Use:   constant.Vidinfo + " [id|url]",
	Short: "Inspect the public metadata of a YouTube video",
	Long: constant.Logo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Inspect the public metadata of a YouTube video"),
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionRecentIDs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		client, err := newClient()
		handleErr(err)

		projector, err := newProjector()
		handleErr(err)

		options := tui.Options{
			Retriever: client,
			Projector: projector,
			ExportDir: viper.GetString(key.ExportDir),
			Browser:   open.URL,
		}
		if len(args) > 0 {
			options.ID = args[0]
		}

		handleErr(tui.Run(context.Background(), &options))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiRed + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func completionRecentIDs(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return recent.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
