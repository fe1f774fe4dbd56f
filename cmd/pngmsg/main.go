// Command pngmsg hides, recovers and removes secret messages in PNG
// files.
//
// Usage:
//
//	pngmsg encode <file> <chunk type> <message> [output]
//	pngmsg decode <file> <chunk type>
//	pngmsg remove <file> <chunk type>
//	pngmsg print <file>
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	pngmsg "github.com/logicossoftware/go-pngmsg"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return fmt.Errorf("subcommand required")
	}
	switch args[0] {
	case "encode":
		return runEncode(args[1:], stdout)
	case "decode":
		return runDecode(args[1:], stdout)
	case "remove":
		return runRemove(args[1:], stdout)
	case "print":
		return runPrint(args[1:], stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	}
	return fmt.Errorf("unknown command %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `pngmsg hides secret messages in PNG files.

Usage:
  pngmsg encode <file> <chunk type> <message> [output]
  pngmsg decode <file> <chunk type>
  pngmsg remove <file> <chunk type>
  pngmsg print <file>

Flags for encode:
  --compress string   compress the message payload (none, zip, zstd, lz4, brotli)

The chunk type is four ASCII letters, e.g. "ruSt". When encode is
given no output file, the input file is overwritten.
`)
}

func runEncode(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	compressName := fs.String("compress", "none", "compress the message payload")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 3 || len(rest) > 4 {
		return fmt.Errorf("usage: pngmsg encode <file> <chunk type> <message> [output]")
	}
	comp, err := pngmsg.ParseCompression(*compressName)
	if err != nil {
		return err
	}

	in, err := os.ReadFile(rest[0])
	if err != nil {
		return err
	}
	out, err := pngmsg.EmbedMessage(in, rest[1], rest[2], pngmsg.WithCompression(comp))
	if err != nil {
		return err
	}
	target := rest[0]
	if len(rest) == 4 {
		target = rest[3]
	}
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s\n", target)
	return nil
}

func runDecode(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: pngmsg decode <file> <chunk type>")
	}
	in, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	msg, ok, err := pngmsg.ExtractMessage(in, args[1])
	if err != nil {
		return err
	}
	if !ok {
		// Querying for an absent message is a valid use, not a failure.
		fmt.Fprintf(stdout, "no %q chunk found\n", args[1])
		return nil
	}
	fmt.Fprintln(stdout, msg)
	return nil
}

func runRemove(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: pngmsg remove <file> <chunk type>")
	}
	in, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	out, removed, err := pngmsg.RemoveMessage(in, args[1])
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "removed chunk: %s\n", removed)
	return nil
}

func runPrint(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pngmsg print <file>")
	}
	in, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	infos, err := pngmsg.ListChunks(in)
	if err != nil {
		return err
	}
	for _, ci := range infos {
		fmt.Fprintln(stdout, ci)
	}
	return nil
}
