package cmds

import (
	"os"

	"github.com/acorn-io/cmd"
	pyliteral "github.com/jturner314/py-literal"
	"github.com/jturner314/py-literal/value"
	"github.com/spf13/cobra"
)

type Eval struct {
	root *PyLiteral
}

func NewEval(root *PyLiteral) *cobra.Command {
	return cmd.Command(&Eval{root: root}, cobra.Command{
		Use:   "eval [flags] FILE",
		Short: "Parse a Python literal file and print the value",
		Args:  cobra.ExactArgs(1),
	})
}

func (e *Eval) Run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var val value.Value
	err = pyliteral.Unmarshal(data, &val, pyliteral.Option{
		SourceName: args[0],
	})
	if err != nil {
		return err
	}

	return e.root.Print(val)
}
