package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidinfo-cli/vidinfo/icon"
	"github.com/vidinfo-cli/vidinfo/recent"
	"github.com/vidinfo-cli/vidinfo/util"
	"github.com/vidinfo-cli/vidinfo/where"
)

// clearTarget is a resource the clear command can remove.
type clearTarget struct {
	flag, short string
	what        string
	// before reports what is about to be removed, when that is worth saying.
	before func() string
	clear  func() error
}

var clearTargets = []clearTarget{
	{
		flag: "recent", short: "r", what: "recent identifiers",
		before: func() string {
			return "forgetting " + util.Quantify(recent.Count(), "identifier", "identifiers")
		},
		clear: recent.Forget,
	},
	{
		flag: "logs", short: "l", what: "logs",
		clear: func() error { return util.Delete(where.Logs()) },
	},
	{
		flag: "cache", short: "c", what: "cache directory",
		clear: func() error { return util.Delete(where.Cache()) },
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		clearCmd.Flags().BoolP(target.flag, target.short, false, "clear "+target.what)
	}
}

// clearCmd removes remembered and cached artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear remembered identifiers, logs and cached files",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(target clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(target.flag))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range selected {
			if target.before != nil {
				fmt.Printf("%s %s\n", icon.Get(icon.Info), target.before())
			}

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.what))
			err := target.clear()
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.what))
		}
	},
}
