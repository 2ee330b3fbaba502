package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	witabi "github.com/wippyai/wit-abi"
	"github.com/wippyai/wit-abi/abi"
	"github.com/wippyai/wit-abi/errors"
	"github.com/wippyai/wit-abi/markdown"
)

const inputSuffix = ".wit.json"

func main() {
	var (
		check       = flag.Bool("check", false, "Check that outputs are up to date instead of writing them")
		abiName     = flag.String("abi", "caller", "ABI variant: caller or callee")
		hrefs       = flag.Bool("hrefs", false, "Also write the anchor map as a .hrefs.json sidecar")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive browser for a single file")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: witdoc [-check] [-abi caller|callee] [-hrefs] <files-or-dirs>")
		fmt.Fprintln(os.Stderr, "       witdoc -i <file.wit.json>  (interactive mode)")
		os.Exit(1)
	}

	variant, ok := abi.Parse(*abiName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown ABI variant %q\n", *abiName)
		os.Exit(1)
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			markdown.SetLogger(l)
			defer l.Sync()
		}
	}

	if *interactive {
		if flag.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: -i takes exactly one file")
			os.Exit(1)
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(flag.Arg(0), variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := options{check: *check, hrefs: *hrefs, variant: variant}
	for _, arg := range flag.Args() {
		info, err := os.Stat(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if info.IsDir() {
			err = opts.renderDir(arg)
		} else {
			err = opts.renderFile(arg)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

type options struct {
	variant abi.Variant
	check   bool
	hrefs   bool
}

func (o options) renderDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Load("read directory "+dir, err)
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			err = o.renderDir(path)
		} else {
			err = o.renderFile(path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (o options) renderFile(path string) error {
	stem, ok := strings.CutSuffix(path, inputSuffix)
	if !ok {
		return nil
	}
	dst := stem + ".abi.md"

	doc, err := witabi.RenderFile(path, o.variant)
	if err != nil {
		return err
	}

	if o.check {
		prev, err := os.ReadFile(dst)
		if err != nil {
			return errors.Load("read "+dst, err)
		}
		if string(prev) != doc.Text {
			return errors.NotUpToDate(dst)
		}
		return nil
	}

	if err := os.WriteFile(dst, []byte(doc.Text), 0o644); err != nil {
		return errors.Load("write "+dst, err)
	}
	fmt.Printf("wrote %s\n", dst)

	if o.hrefs {
		sidecar := stem + ".hrefs.json"
		data, err := json.MarshalIndent(doc.Hrefs, "", "  ")
		if err != nil {
			return errors.Load("encode "+sidecar, err)
		}
		if err := os.WriteFile(sidecar, append(data, '\n'), 0o644); err != nil {
			return errors.Load("write "+sidecar, err)
		}
		fmt.Printf("wrote %s\n", sidecar)
	}
	return nil
}
