package cmds

import (
	"bytes"
	"fmt"
	"os"

	"github.com/acorn-io/cmd"
	pyliteral "github.com/jturner314/py-literal"
	"github.com/spf13/cobra"
)

type Fmt struct {
	root *PyLiteral
}

func NewFmt(root *PyLiteral) *cobra.Command {
	return cmd.Command(&Fmt{root: root}, cobra.Command{
		Use:   "fmt [flags] FILE...",
		Short: "Rewrite literal files in canonical form, writing back only on change",
		Args:  cobra.MinimumNArgs(1),
	})
}

func (f *Fmt) Run(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		data, err := os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("reading %s: %w", arg, err)
		}

		val, err := pyliteral.Parse(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}

		newData := []byte(pyliteral.Format(val) + "\n")
		if !bytes.Equal(data, newData) {
			if err := os.WriteFile(arg, newData, 0644); err != nil {
				return err
			}
		}
	}

	return nil
}
