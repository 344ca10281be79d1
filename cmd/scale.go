package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/numsign/internal/log"
	"github.com/zjrosen/numsign/sign"
)

type scaleRow struct {
	Sign   sign.Sign `json:"sign" yaml:"sign"`
	Input  string    `json:"input" yaml:"input"`
	Result string    `json:"result" yaml:"result"`
}

func newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale [SIGN] NUMBER",
		Short: "Multiply a number by a sign",
		Long: `Multiply NUMBER by SIGN: "+" keeps it, "-" negates it.

When SIGN is omitted the configured default_sign is used. Integers stay
integers (wrapping at the int64 range); anything else is scaled as float64.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runScale,
	}
}

func runScale(cmd *cobra.Command, args []string) error {
	s := cfg.DefaultSign
	input := args[0]
	if len(args) == 2 {
		parsed, err := sign.Parse(args[0])
		if err != nil {
			return err
		}
		s, input = parsed, args[1]
	}

	result, err := scale(s, input)
	if err != nil {
		return err
	}
	log.Debug(log.CatSign, "Scaled value", "sign", s, "input", input, "result", result)

	rows := []scaleRow{{Sign: s, Input: input, Result: result}}
	return render(cmd, rows, func(r scaleRow) string {
		return r.Result
	})
}

func scale(s sign.Sign, text string) (string, error) {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return strconv.FormatInt(sign.Mul(s, i), 10), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return "", fmt.Errorf("parsing %q as a number: %w", text, err)
	}
	return strconv.FormatFloat(sign.Mul(s, f), 'g', -1, 64), nil
}
