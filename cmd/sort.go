package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/zjrosen/numsign/sign"
)

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort TOKEN...",
		Short: `Sort sign tokens ("-" before "+")`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSort,
	}
}

func runSort(cmd *cobra.Command, args []string) error {
	signs := make([]sign.Sign, 0, len(args))
	for i, token := range args {
		s, err := sign.Parse(token)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		signs = append(signs, s)
	}
	slices.SortFunc(signs, sign.Compare)

	return render(cmd, signs, sign.Sign.String)
}
