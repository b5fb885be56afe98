// Copyright 2026 burstgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/tools/txtar"

	"github.com/ajroetker/burstgen/burst"
	"github.com/ajroetker/burstgen/kernels"
)

type options struct {
	output        string
	archive       string
	embedded      bool
	inputTemplate string
	workers       int
	verbose       bool
}

func addFlags(flags *pflag.FlagSet, o *options) {
	flags.StringVarP(&o.output, "output", "o", "", "Write the kernels to this file instead of stdout")
	flags.StringVar(&o.archive, "archive", "", "Resolve the template path inside this txtar archive")
	flags.BoolVar(&o.embedded, "embedded", false, "Resolve the template path inside the built-in templates ("+fmt.Sprint(kernels.Families)+")")
	flags.StringVar(&o.inputTemplate, "input-template", burst.DefaultInputTemplate, "Declaration of one projection argument")
	flags.IntVarP(&o.workers, "workers", "j", 1, "Number of kernels assembled concurrently")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log progress to stderr")
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "burstgen [flags] <template> <constant> <start> <stop>",
		Short: "Generate burst backprojection OpenCL kernels",
		Long: "Generate one backprojection kernel per burst size in [start, stop].\n\n" +
			"  template  kernel template file, siblings common.in and definitions.in\n" +
			"  constant  0 = vectorized sin/cos LUT, 1 = LUT in constant memory\n" +
			"  start     minimum number of projections processed by one kernel invocation\n" +
			"  stop      maximum number of projections processed by one kernel invocation",
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&o, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	addFlags(cmd.Flags(), &o)
	return cmd
}

func run(o *options, args []string, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	burst.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	gen, err := parseArgs(args[1:])
	if err != nil {
		return err
	}
	gen.Workers = o.workers
	// The range is rejected before any file is touched.
	if err := gen.Validate(); err != nil {
		return err
	}

	fsys, name, err := o.source(args[0])
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := gen.Run(fsys, name, &buf, burst.WithInputTemplate(o.inputTemplate)); err != nil {
		return err
	}

	if o.output == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	return writeFileAtomic(o.output, buf.Bytes())
}

// parseArgs parses the <constant> <start> <stop> positional arguments.
func parseArgs(args []string) (*burst.Generator, error) {
	enc, err := burst.ParseEncoding(args[0])
	if err != nil {
		return nil, err
	}
	start, err := parseInt("start", args[1])
	if err != nil {
		return nil, err
	}
	stop, err := parseInt("stop", args[2])
	if err != nil {
		return nil, err
	}
	return &burst.Generator{Encoding: enc, Start: start, Stop: stop}, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &burst.ConfigError{Op: "parse " + name, Err: fmt.Errorf("invalid int value: %q", s)}
	}
	return v, nil
}

// source returns the file system holding the template file and the name of
// the template file inside it.
func (o *options) source(template string) (fs.FS, string, error) {
	switch {
	case o.archive != "" && o.embedded:
		return nil, "", &burst.ConfigError{Op: "select source", Err: fmt.Errorf("--archive and --embedded are mutually exclusive")}
	case o.archive != "":
		a, err := txtar.ParseFile(o.archive)
		if err != nil {
			return nil, "", &burst.ConfigError{Op: "read", Path: o.archive, Err: err}
		}
		fsys, err := txtar.FS(a)
		if err != nil {
			return nil, "", &burst.ConfigError{Op: "open archive", Path: o.archive, Err: err}
		}
		return fsys, filepath.ToSlash(template), nil
	case o.embedded:
		return kernels.Templates, filepath.ToSlash(template), nil
	}
	dir, base := filepath.Split(template)
	if dir == "" {
		dir = "."
	}
	return os.DirFS(dir), base, nil
}

// writeFileAtomic replaces filename with data. A failed write leaves any
// previous file untouched.
func writeFileAtomic(filename string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
