// Package main is the entry point for vidinfo.
package main

import (
	"github.com/samber/lo"
	"github.com/vidinfo-cli/vidinfo/cmd"
	"github.com/vidinfo-cli/vidinfo/config"
	"github.com/vidinfo-cli/vidinfo/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
