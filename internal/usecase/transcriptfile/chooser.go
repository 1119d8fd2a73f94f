package transcriptfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// StdinChooser returns a ChooseFunc that lists the candidates on out and
// reads a 1-based selection from in. Entering q/quit/exit cancels.
func StdinChooser(in io.Reader, out io.Writer) ChooseFunc {
	return func(candidates []Candidate) (int, error) {
		fmt.Fprintf(out, "\n📁 Found %d transcript files:\n", len(candidates))
		for i, c := range candidates {
			fmt.Fprintf(out, "  %d. %s (%d bytes, modified: %s)\n",
				i+1, c.Name, c.Size, c.ModTime.Format("2006-01-02 15:04"))
		}

		scanner := bufio.NewScanner(in)
		for {
			fmt.Fprintf(out, "\nSelect a file (1-%d): ", len(candidates))
			if !scanner.Scan() {
				return 0, entities.ErrSelectionCancelled
			}
			choice := strings.TrimSpace(scanner.Text())
			switch strings.ToLower(choice) {
			case "q", "quit", "exit":
				return 0, entities.ErrSelectionCancelled
			}

			idx, err := strconv.Atoi(choice)
			if err != nil {
				fmt.Fprintln(out, "❌ Invalid input. Please enter a number or 'q' to quit")
				continue
			}
			if idx < 1 || idx > len(candidates) {
				fmt.Fprintf(out, "❌ Invalid choice. Please enter a number between 1 and %d\n", len(candidates))
				continue
			}
			return idx - 1, nil
		}
	}
}
