package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/numsign/internal/log"
	"github.com/zjrosen/numsign/sign"
)

type classifyRow struct {
	Input string     `json:"input" yaml:"input"`
	Width string     `json:"width" yaml:"width"`
	Sign  *sign.Sign `json:"sign" yaml:"sign"` // nil when the value has no sign
}

func newClassifyCmd() *cobra.Command {
	var width string

	cmd := &cobra.Command{
		Use:   "classify NUMBER...",
		Short: "Print the sign of each number",
		Long: `Print the sign of each number at the chosen width.

Integer zero has no sign. Floating-point zero is signed: 0 is "+" and -0 is "-".
NaN has no sign. Values without a sign print the configured zero_label.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width == "" {
				width = cfg.Width
			}
			return runClassify(cmd, width, args)
		},
	}
	cmd.Flags().StringVarP(&width, "width", "w", "", "numeric width: int, int8, int16, int32, int64, float32 or float64")
	return cmd
}

func runClassify(cmd *cobra.Command, width string, args []string) error {
	rows := make([]classifyRow, 0, len(args))
	for _, arg := range args {
		s, ok, err := classify(width, arg)
		if err != nil {
			return err
		}
		log.Debug(log.CatSign, "Classified value", "input", arg, "width", width, "sign", s, "signed", ok)

		row := classifyRow{Input: arg, Width: width}
		if ok {
			row.Sign = &s
		}
		rows = append(rows, row)
	}

	return render(cmd, rows, func(r classifyRow) string {
		label := cfg.ZeroLabel
		if r.Sign != nil {
			label = r.Sign.String()
		}
		return fmt.Sprintf("%s\t%s", r.Input, label)
	})
}

// classify parses text at the given width and returns its sign.
func classify(width, text string) (sign.Sign, bool, error) {
	var (
		s  sign.Sign
		ok bool
	)

	switch width {
	case "int", "int8", "int16", "int32", "int64":
		bits := strconv.IntSize
		if width != "int" {
			bits, _ = strconv.Atoi(width[len("int"):])
		}
		v, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return 0, false, fmt.Errorf("parsing %q as %s: %w", text, width, err)
		}
		switch width {
		case "int":
			s, ok = sign.Of(int(v))
		case "int8":
			s, ok = sign.Of(int8(v))
		case "int16":
			s, ok = sign.Of(int16(v))
		case "int32":
			s, ok = sign.Of(int32(v))
		default:
			s, ok = sign.OfInt64(v)
		}
	case "float32":
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return 0, false, fmt.Errorf("parsing %q as %s: %w", text, width, err)
		}
		s, ok = sign.Of(float32(v))
	case "float64":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false, fmt.Errorf("parsing %q as %s: %w", text, width, err)
		}
		s, ok = sign.OfFloat64(v)
	default:
		return 0, false, fmt.Errorf("unknown width %q", width)
	}
	return s, ok, nil
}
