package cmd

import (
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidinfo-cli/vidinfo/color"
	"github.com/vidinfo-cli/vidinfo/config"
	"github.com/vidinfo-cli/vidinfo/style"
	"github.com/vidinfo-cli/vidinfo/where"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

type envVar struct {
	name   string
	secret bool
}

// envVars lists every variable the program reads, sorted by name.
func envVars() []envVar {
	vars := lo.MapToSlice(config.Default, func(_ string, field config.Field) envVar {
		return envVar{name: field.Env(), secret: field.Secret}
	})
	vars = append(vars, envVar{name: where.EnvConfigPath})

	sort.Slice(vars, func(i, j int) bool {
		return vars[i].name < vars[j].name
	})
	return vars
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, v := range envVars() {
			value, present := os.LookupEnv(v.name)
			present = present && value != ""

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(v.name))
			cmd.Print("=")

			switch {
			case !present:
				cmd.Println(style.Fg(color.Red)("unset"))
			case v.secret:
				cmd.Println(style.Fg(color.Green)(config.Mask(value)))
			default:
				cmd.Println(style.Fg(color.Green)(value))
			}
		}
	},
}
