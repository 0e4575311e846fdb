package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-huffman/archive"
	"github.com/forestrie/go-huffman/archivestore"
	"github.com/forestrie/go-huffman/archivestore/localstore"
	"github.com/forestrie/go-huffman/huffman"
)

var (
	ErrUsage = errors.New("usage")
)

func run(ctx context.Context, log logger.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		printUsage(os.Stderr)
		return ErrUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "encode":
		return withIO(args, stdin, stdout, func(in io.Reader, out io.Writer) error {
			h, err := archive.Encode(ctx, in, out, archive.WithLogger(log))
			if err != nil {
				return err
			}
			log.Infof("encoded %d symbols into %d payload bits", h.SymbolCount, h.PayloadBits)
			return nil
		})
	case "decode":
		return withIO(args, stdin, stdout, func(in io.Reader, out io.Writer) error {
			h, err := archive.Decode(ctx, in, out, archive.WithLogger(log))
			if err != nil {
				return err
			}
			log.Infof("decoded %d symbols", h.SymbolCount)
			return nil
		})
	case "codes":
		data, err := readInput(args, stdin)
		if err != nil {
			return err
		}
		return printCodes(stdout, data)
	case "stats":
		data, err := readInput(args, stdin)
		if err != nil {
			return err
		}
		return printStats(stdout, data)
	case "put":
		if len(args) < 1 {
			return fmt.Errorf("%w: put <dir> [file]", ErrUsage)
		}
		store, err := localstore.New(log, args[0])
		if err != nil {
			return err
		}
		data, err := readInput(args[1:], stdin)
		if err != nil {
			return err
		}
		id, h, err := archivestore.PutArchive(ctx, store, data, archive.WithLogger(log))
		if err != nil {
			return err
		}
		log.Infof("stored %s: %d symbols", id, h.SymbolCount)
		_, err = fmt.Fprintln(stdout, id)
		return err
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("%w: get <dir> <id>", ErrUsage)
		}
		store, err := localstore.New(log, args[0])
		if err != nil {
			return err
		}
		id, err := archivestore.ParseArchiveID(args[1])
		if err != nil {
			return err
		}
		data, _, err := archivestore.GetArchive(ctx, store, id, archive.WithLogger(log))
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	case "list":
		if len(args) < 1 {
			return fmt.Errorf("%w: list <dir>", ErrUsage)
		}
		store, err := localstore.New(log, args[0])
		if err != nil {
			return err
		}
		ids, err := store.List(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if _, err := fmt.Fprintln(stdout, id); err != nil {
				return err
			}
		}
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func openInput(args []string, stdin io.Reader) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(args[0])
}

func readInput(args []string, stdin io.Reader) ([]byte, error) {
	in, err := openInput(args, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return io.ReadAll(in)
}

// withIO resolves the optional [in] [out] arguments.
func withIO(args []string, stdin io.Reader, stdout io.Writer, f func(io.Reader, io.Writer) error) error {
	in, err := openInput(args, stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	if len(args) < 2 || args[1] == "-" {
		return f(in, stdout)
	}
	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	if err := f(in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func printCodes(w io.Writer, data []byte) error {
	c, err := huffman.NewCodec(huffman.CountBytes(data))
	if err != nil {
		return err
	}
	freqs := c.Frequencies()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tCOUNT\tCODE")
	for _, sym := range freqs.Symbols() {
		code, _ := c.Code(sym)
		fmt.Fprintf(tw, "%s\t%d\t%s\n", symbolLabel(sym), freqs[sym], code)
	}
	return tw.Flush()
}

func printStats(w io.Writer, data []byte) error {
	c, err := huffman.NewCodec(huffman.CountBytes(data))
	if err != nil {
		return err
	}
	wpl := c.WeightedPathLength()
	plainBits := uint64(len(data)) * 8

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "symbols\t%d\n", len(data))
	fmt.Fprintf(tw, "distinct\t%d\n", len(c.Frequencies()))
	fmt.Fprintf(tw, "depth\t%d\n", huffman.Depth(c.Root()))
	fmt.Fprintf(tw, "encoded bits\t%d\n", wpl)
	fmt.Fprintf(tw, "bits per symbol\t%.3f\n", float64(wpl)/float64(len(data)))
	fmt.Fprintf(tw, "ratio\t%.3f\n", float64(wpl)/float64(plainBits))
	return tw.Flush()
}

func symbolLabel(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return strconv.QuoteRune(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
