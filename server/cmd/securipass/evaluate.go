package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Orsy-git/securiPass/server/internal/password"
)

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate [password]",
		Short: "Score the strength of a password",
		Long: `Scores a password on 7 points: up to 3 for length and one for each of
lowercase, uppercase, digit and symbol. Without an argument the password is
read from standard input; on a terminal it is prompted for without echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pw string
			if len(args) == 1 {
				pw = args[0]
			} else {
				read, err := readPassword(cmd)
				if err != nil {
					return err
				}
				pw = read
			}

			res := password.Evaluate(pw)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%d/%d)\n", res.Label, res.Score, password.MaxScore)
			for _, f := range res.Feedback {
				fmt.Fprintf(w, "  - %s\n", f)
			}
			return nil
		},
	}
}

// readPassword reads one line from the command's input, without echo when
// that input is a terminal.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
