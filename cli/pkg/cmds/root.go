package cmds

import (
	"encoding/json"
	"fmt"

	"github.com/acorn-io/cmd"
	"github.com/jturner314/py-literal/value"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type PyLiteral struct {
	Output string `usage:"Output format (json, yaml, or py)" short:"o" default:"json"`
}

func New() *cobra.Command {
	return cmd.Command(&PyLiteral{}, cobra.Command{
		Use:          "py-literal",
		SilenceUsage: true,
	})
}

func (p *PyLiteral) Customize(c *cobra.Command) {
	c.CompletionOptions.HiddenDefaultCmd = true
	c.AddCommand(NewEval(p), NewFmt(p))
}

func (p *PyLiteral) Run(cmd *cobra.Command, args []string) error {
	return cmd.Usage()
}

func (p *PyLiteral) Print(val value.Value) error {
	switch p.Output {
	case "json":
		data, err := json.MarshalIndent(val.NativeValue(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(val.NativeValue())
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case "py":
		fmt.Println(value.Format(val))
	default:
		return fmt.Errorf("unknown output format %q", p.Output)
	}
	return nil
}
