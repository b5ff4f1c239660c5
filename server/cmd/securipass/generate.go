package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Orsy-git/securiPass/server/internal/config"
	"github.com/Orsy-git/securiPass/server/internal/password"
)

func newGenerateCmd() *cobra.Command {
	var (
		length int
		count  int
		copyTo bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print freshly generated passwords",
		Long: `Prints passwords holding at least one lowercase letter, uppercase letter,
digit and symbol. Lengths below 4 are raised to 4.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			gen := password.NewGenerator(nil)
			out := make([]string, 0, count)
			for i := 0; i < count; i++ {
				out = append(out, gen.Generate(length))
			}

			for _, pw := range out {
				fmt.Fprintln(cmd.OutOrStdout(), pw)
			}

			if copyTo {
				if err := clipboard.WriteAll(strings.Join(out, "\n")); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", config.DefaultLength, "password length")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	cmd.Flags().BoolVar(&copyTo, "copy", false, "also copy the output to the clipboard")
	return cmd
}
