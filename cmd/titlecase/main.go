// Command titlecase prints its arguments, or each line of stdin, in title case.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kivattt/getopt"
	"golang.org/x/term"

	"titlebot/titlecase"
)

const usage = `Usage: titlecase [options] [words...]

Prints the words in title case. Without words, converts stdin line by line.

Options:
`

// maxLineBytes bounds a single input line
const maxLineBytes = 1 << 20

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := getopt.NewFlagSet("titlecase", flag.ContinueOnError)
	flags.SetOutput(stderr)
	explain := flags.Bool("explain", false, "show the strategy chosen for each word")
	help := flags.Bool("help", false, "show this help")
	flags.Alias("e", "explain")
	flags.Alias("h", "help")
	printUsage := func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	// Parse errors are followed by printUsage below
	flags.Usage = func() {}

	if err := flags.Parse(args); err != nil {
		printUsage()
		return 2
	}
	if *help {
		printUsage()
		return 0
	}

	out := bufio.NewWriter(stdout)
	convert := func(line string) {
		if *explain {
			writeExplained(out, line)
			return
		}
		fmt.Fprintln(out, titlecase.String(line))
	}

	if flags.NArg() > 0 {
		convert(strings.Join(flags.Args(), " "))
		return flush(out, stderr)
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		printUsage()
		return 2
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		convert(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "titlecase: %v\n", err)
		return 1
	}
	return flush(out, stderr)
}

// writeExplained prints one "input<TAB>strategy<TAB>output" line per word,
// followed by a blank line
func writeExplained(w io.Writer, line string) {
	for _, word := range titlecase.Explain(line) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", word.Input, word.Strategy, word.Output)
	}
	fmt.Fprintln(w)
}

func flush(out *bufio.Writer, stderr io.Writer) int {
	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "titlecase: %v\n", err)
		return 1
	}
	return 0
}
