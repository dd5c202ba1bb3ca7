package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/st4info/internal/calc"
)

var evalDump bool

var evalCmd = &cobra.Command{
	Use:   "eval <key>...",
	Short: "Evaluate scratch pad keys",
	Long: `Evaluates pseudo keys of the form name[_operation[_operand]] in order
against a fresh scratch pad and prints each result. Keys that produce
nothing print "-". Errors are logged and make the command fail.

Examples:
  st4info eval idx idx idx
  st4info eval x_set_0xff x_mul_2n x_get x_isL
  st4info eval --dump n_set_3 n_sadd_2 n`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalDump, "dump", false, "print the scratch pad contents afterwards")
}

func runEval(cmd *cobra.Command, args []string) error {
	r, err := newRun(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	inf, err := r.newInfo()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, key := range args {
		fmt.Fprintf(out, "%s = %s\n", key, formatResult(inf.Calc.Evaluate(key)))
	}

	if evalDump {
		dumpPad(cmd, inf.Calc)
	}
	return r.result("evaluation")
}

func formatResult(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func dumpPad(cmd *cobra.Command, pad *calc.Pad) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d numbers\n", pad.Len())

	for _, name := range pad.Names() {
		n, _ := pad.Lookup(name)
		if op, operand, ok := n.Sticky(); ok {
			fmt.Fprintf(out, "  %s = %d (sticky %s %d)\n", name, n.Value(), op, operand)
		} else {
			fmt.Fprintf(out, "  %s = %d\n", name, n.Value())
		}
	}
}
