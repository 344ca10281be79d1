package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/numsign/sign"
)

type parityRow struct {
	Input  string    `json:"input" yaml:"input"`
	Parity sign.Sign `json:"parity" yaml:"parity"`
}

func newParityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parity VALUE...",
		Short: `Print "+" for even values and "-" for odd ones`,
		Long: `Print the parity sign of each value: "+" when even, "-" when odd.

Values are 32-bit integers or the booleans true (1) and false (0).`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParity,
	}
}

func runParity(cmd *cobra.Command, args []string) error {
	rows := make([]parityRow, 0, len(args))
	for _, arg := range args {
		p, err := parity(arg)
		if err != nil {
			return err
		}
		rows = append(rows, parityRow{Input: arg, Parity: p})
	}

	return render(cmd, rows, func(r parityRow) string {
		return fmt.Sprintf("%s\t%s", r.Input, r.Parity)
	})
}

func parity(text string) (sign.Sign, error) {
	switch text {
	case "true":
		return sign.ParityBool(true), nil
	case "false":
		return sign.ParityBool(false), nil
	}
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing %q as int32 or bool: %w", text, err)
	}
	return sign.Parity(int32(n)), nil
}
