package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/numsign/internal/log"
	"github.com/zjrosen/numsign/sign"
)

type parseRow struct {
	Token string    `json:"token" yaml:"token"`
	Sign  sign.Sign `json:"sign" yaml:"sign"`
	Int   int       `json:"int" yaml:"int"`
	Float float64   `json:"float" yaml:"float"`
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TOKEN...",
		Short: "Parse sign tokens",
		Long:  `Parse each token as a sign. Valid tokens are "+" and "-".`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	rows := make([]parseRow, 0, len(args))
	for i, token := range args {
		s, err := sign.Parse(token)
		if err != nil {
			log.ErrorErr(log.CatSign, "Failed to parse sign", err, "token", token)
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		rows = append(rows, parseRow{
			Token: token,
			Sign:  s,
			Int:   s.ToInt(),
			Float: s.ToFloat64(),
		})
	}

	return render(cmd, rows, func(r parseRow) string {
		return fmt.Sprintf("%s\t%d\t%.1f", r.Sign, r.Int, r.Float)
	})
}
