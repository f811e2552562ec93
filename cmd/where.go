package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/color"
	"github.com/vidinfo-cli/vidinfo/key"
	"github.com/vidinfo-cli/vidinfo/style"
	"github.com/vidinfo-cli/vidinfo/where"
)

// location is a path vidinfo reads or writes, selectable with its own flag.
type location struct {
	Name string `json:"name"`
	Path string `json:"path"`

	flag    string
	short   string
	resolve func() string
	hidden  bool
}

func locations() []location {
	return []location{
		{Name: "Config", flag: "config", short: "c", resolve: where.Config},
		{Name: "Logs", flag: "logs", short: "l", resolve: where.Logs},
		{Name: "Exports", flag: "exports", short: "e", resolve: exportDir},
		{Name: "Cache", flag: "cache", resolve: where.Cache, hidden: true},
		{Name: "Recent", flag: "recent", resolve: where.Recent, hidden: true},
	}
}

func init() {
	rootCmd.AddCommand(whereCmd)

	flags := whereCmd.Flags()
	for _, l := range locations() {
		flags.BoolP(l.flag, l.short, false, l.Name+" path")
		if l.hidden {
			lo.Must0(flags.MarkHidden(l.flag))
		}
	}
	flags.BoolP("json", "j", false, "Format the paths as JSON")

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations(), func(l location, _ int) string {
		return l.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

// exportDir resolves the configured export directory to an absolute path.
func exportDir() string {
	dir := viper.GetString(key.ExportDir)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

// whereCmd prints the paths of config, logs and exports, or only the one selected by a flag.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the filesystem paths vidinfo reads and writes",
	Run: func(cmd *cobra.Command, args []string) {
		all := locations()

		if selected, ok := lo.Find(all, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(selected.resolve())
			return
		}

		visible := lo.FilterMap(all, func(l location, _ int) (location, bool) {
			l.Path = l.resolve()
			return l, !l.hidden
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(visible))
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, l := range visible {
			cmd.Printf("%s %s\n%s\n", header(l.Name+"?"), style.Fg(color.Yellow)("--"+l.flag), l.Path)
			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
