package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"linerev/internal/config"
	"linerev/internal/engine"
)

var log = logrus.New()

// errUsage marks a wrong argument count so Execute can print the usage
// line instead of a generic error.
var errUsage = errors.New("expected exactly two file arguments")

var (
	terminator string
	verbose    bool
)

// rootCmd is the whole CLI: linerev has no subcommands.
var rootCmd = &cobra.Command{
	Use:   "linerev [in-file] [out-file]",
	Short: "Reverse each line of a text file",
	Long: `linerev reads a text file line by line, reverses the byte order within
each line, and writes the result to an output file. Line order and line
terminators are preserved; only the bytes inside each line move.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errUsage
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1])
	},
}

// run opens both files, runs the engine, and reports every failure on
// stderr exactly once. Both handles are released via defer on every exit
// path.
func run(inPath, outPath string) error {
	if verbose || config.Verbose() {
		log.SetLevel(logrus.DebugLevel)
	}

	term, err := terminatorByte(terminator)
	if err != nil {
		log.Errorf("invalid terminator: %v", err)
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %s\n", inPath)
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %s\n", outPath)
		return err
	}
	defer out.Close()

	eng := engine.New(in, out, term, engine.Options{
		BufferSize: config.BufferSize(),
		Logger:     log,
	})
	if err := eng.Run(); err != nil {
		log.Errorf("processing %s failed: %v", inPath, err)
		return err
	}
	log.Debugf("wrote %d lines to %s", eng.Lines(), outPath)
	return nil
}

// terminatorByte parses the terminator flag into a single byte. Named
// escapes are accepted so the flag is typable from a shell.
func terminatorByte(s string) (byte, error) {
	switch s {
	case "\n", `\n`, "lf":
		return '\n', nil
	case "\t", `\t`, "tab":
		return '\t', nil
	case "\x00", `\0`, "nul":
		return 0, nil
	}
	if len(s) == 1 {
		return s[0], nil
	}
	return 0, fmt.Errorf("terminator must be a single byte, got %q", s)
}

// Execute runs the root command and maps its outcome to the process exit
// code: 0 on success, 1 on usage error, open failure, or I/O failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Usage: %s [in-file] [out-file]\n", os.Args[0])
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&terminator, "terminator", "t", config.Terminator(),
		"line terminator byte (accepts \\n, \\t, \\0, lf, tab, nul, or a literal character)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
