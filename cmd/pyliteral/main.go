package main

import (
	"github.com/acorn-io/cmd"
	"github.com/jturner314/py-literal/cli/pkg/cmds"
)

func main() {
	cmd.Main(cmds.New())
}
