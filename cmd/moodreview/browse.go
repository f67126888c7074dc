package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/moodreview"
)

func runBrowse(cfg moodreview.Config, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	dataPath := fs.String("data", cfg.DataPath, "path to the review CSV")
	modelDir := fs.String("model", cfg.ModelDir, "directory holding a trained model")
	if err := fs.Parse(args); err != nil {
		return err
	}

	browser, _, _, err := newBrowser(cfg, *dataPath, *modelDir)
	if err != nil {
		return err
	}
	return browse(browser, in, out)
}

// browse shows the current review, then the next one on every Enter until
// "q" or end of input.
func browse(browser *moodreview.Browser, in io.Reader, out io.Writer) error {
	fb, err := browser.Current()
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		printFeedback(out, fb, browser.Len())
		fmt.Fprint(out, "[Enter] next review, [q] quit: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "q") {
			return nil
		}
		if fb, err = browser.Next(); err != nil {
			return err
		}
	}
}

func printFeedback(w io.Writer, fb moodreview.Feedback, total int) {
	fmt.Fprintf(w, "\n%s  %s  (review %d of %d)\n\n", fb.Emoji.Glyph, fb.Sentiment, fb.Index+1, total)
	if len(fb.Sentences) == 0 {
		fmt.Fprintln(w, "  (no review text)")
	}
	for _, sentence := range fb.Sentences {
		fmt.Fprintf(w, "  %s\n", sentence)
	}
	fmt.Fprintln(w)
}
