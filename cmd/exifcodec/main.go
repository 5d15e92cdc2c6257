package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fedragon/exif-codec/exif"
	"github.com/fedragon/exif-codec/internal/output"
	"github.com/fedragon/exif-codec/jpeg"
	"github.com/fedragon/exif-codec/metadata"
)

type Action string

const (
	ShowAction Action = "show"
	CopyAction Action = "copy"
	DumpAction Action = "dump"
)

func ConvertAction(actionArgument string) (Action, error) {
	switch Action(actionArgument) {
	case ShowAction, CopyAction, DumpAction:
		return Action(actionArgument), nil
	}
	return "", fmt.Errorf("invalid action: %s", actionArgument)
}

type config struct {
	input    string
	output   string
	action   Action
	software string
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	var actionArg string

	fs := flag.NewFlagSet("exifcodec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "f", "", "Input filename (JPEG, TIFF or raw Exif blob)")
	fs.StringVar(&cfg.output, "o", "", "Output filename, required by copy and dump")
	fs.StringVar(&actionArg, "a", "show", "Action to perform: show, copy, dump")
	fs.StringVar(&cfg.software, "software", "exifcodec", "Software tag written by copy")
	fs.BoolVar(&cfg.verbose, "v", false, "Log decoding details")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.input == "" {
		fs.PrintDefaults()
		return cfg, errors.New("invalid input filename")
	}
	action, err := ConvertAction(actionArg)
	if err != nil {
		fs.PrintDefaults()
		return cfg, err
	}
	cfg.action = action
	if cfg.action != ShowAction && cfg.output == "" {
		return cfg, fmt.Errorf("action %s needs an output filename", cfg.action)
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isJPEG(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF})
}

// metadataOf returns the Exif blob embedded in a JPEG file, or the file itself.
func metadataOf(data []byte) ([]byte, error) {
	if !isJPEG(data) {
		return data, nil
	}
	return jpeg.ReadExif(bytes.NewReader(data))
}

func show(p *output.Printer, data []byte, logger *slog.Logger) error {
	blob, err := metadataOf(data)
	if err != nil {
		return err
	}
	c, err := exif.NewCursor(blob)
	if err != nil {
		return err
	}
	d := exif.NewDecoder(c, exif.WithLogger(logger))
	t, err := d.Decode()
	if err != nil {
		return err
	}

	p.PrintForm("Byte order", c.ByteOrder(), 10)
	p.Println()
	for i, ifd := range t.Directories() {
		printIFD(p, fmt.Sprintf("IFD #%d", i), ifd)
	}
	printIFD(p, "Exif IFD", t.ExifIFD())
	if w := d.Warnings(); w != nil {
		p.PrintHeader("Warnings")
		p.Indented().Println(w)
	}
	return nil
}

func printIFD(p *output.Printer, name string, ifd *exif.IFD) {
	p.PrintHeader("%s (%d fields)", name, ifd.Len())
	for _, f := range ifd.Fields() {
		p.Indented().PrintForm(f.Tag().String(), f, 24)
	}
	p.Println()
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.verbose)

	data, err := os.ReadFile(cfg.input)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	switch cfg.action {
	case ShowAction:
		return show(output.NewPrinter(stdout), data, logger)
	case CopyAction:
		if !isJPEG(data) {
			return errors.New("copy needs a JPEG input")
		}
		source, err := jpeg.ReadExif(bytes.NewReader(data))
		if err != nil && !errors.Is(err, jpeg.ErrNoExif) {
			return err
		}
		var out bytes.Buffer
		if err := jpeg.WriteExif(&out, bytes.NewReader(data), metadata.Export(source, cfg.software, logger)); err != nil {
			return err
		}
		return os.WriteFile(cfg.output, out.Bytes(), 0o644)
	case DumpAction:
		blob, err := metadataOf(data)
		if err != nil {
			return err
		}
		t, err := exif.Decode(blob, exif.WithLogger(logger))
		if err != nil {
			return err
		}
		encoded, err := exif.Encode(t)
		if err != nil {
			return err
		}
		return os.WriteFile(cfg.output, encoded, 0o644)
	}
	return nil
}

func main() {
	output.Setup()
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
