// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program sjson converts and formats SJSON documents.
//
// Usage:
//
//	sjson to-json [--indent=STR] [FILE]
//	sjson from-json [FILE]
//	sjson fmt [-w] [-l] [FILE...]
//	sjson check FILE...
//
// Commands that take an optional FILE read standard input when it is omitted
// or is "-".
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/sjson"
	"github.com/creachadair/sjson/jsonconv"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var cli struct {
	Verbose bool `short:"v" env:"SJSON_VERBOSE" help:"Enable debug logging."`

	ToJSON   toJSONCmd   `cmd:"" name:"to-json" help:"Convert an SJSON document to JSON."`
	FromJSON fromJSONCmd `cmd:"" name:"from-json" help:"Convert a JSON document to canonical SJSON."`
	Fmt      fmtCmd      `cmd:"" help:"Rewrite SJSON documents in canonical form."`
	Check    checkCmd    `cmd:"" help:"Report syntax errors in SJSON documents."`
}

// runEnv carries the I/O endpoints shared by all commands.
type runEnv struct {
	logger log.Logger
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("sjson"),
		kong.Description("Convert and format SJSON documents."),
		kong.UsageOnError(),
	)
	env := &runEnv{
		logger: newLogger(os.Stderr, cli.Verbose),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	ctx.FatalIfErrorf(ctx.Run(env))
}

// newLogger returns a logfmt logger writing to w, filtered at info level, or
// at debug level if verbose is true.
func newLogger(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

// readInput returns the contents of the named file, or of standard input if
// path is empty or "-".
func (e *runEnv) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		level.Debug(e.logger).Log("msg", "reading standard input")
		return io.ReadAll(e.stdin)
	}
	level.Debug(e.logger).Log("msg", "reading file", "path", path)
	return os.ReadFile(path)
}

type toJSONCmd struct {
	Indent  string `default:"    " help:"Indentation for each level of nesting."`
	Compact bool   `help:"Write JSON without insignificant whitespace."`
	File    string `arg:"" optional:"" type:"path" help:"SJSON input file."`
}

func (c *toJSONCmd) Run(env *runEnv) error {
	data, err := env.readInput(c.File)
	if err != nil {
		return err
	}
	obj, err := sjson.Parse(data)
	if err != nil {
		return fileError(c.File, err)
	}
	level.Debug(env.logger).Log("msg", "parsed document", "members", len(obj))

	var out []byte
	if c.Compact {
		out = jsonconv.Compact(obj)
	} else {
		out = jsonconv.Indent(obj, "", c.Indent)
	}
	_, err = fmt.Fprintf(env.stdout, "%s\n", out)
	return err
}

type fromJSONCmd struct {
	File string `arg:"" optional:"" type:"path" help:"JSON input file."`
}

func (c *fromJSONCmd) Run(env *runEnv) error {
	data, err := env.readInput(c.File)
	if err != nil {
		return err
	}
	v, err := jsonconv.FromJSON(data)
	if err != nil {
		return fileError(c.File, err)
	}
	return sjson.Format(env.stdout, v)
}

type fmtCmd struct {
	Write bool     `short:"w" help:"Write the result back to the source file."`
	List  bool     `short:"l" help:"List files whose formatting differs from canonical form."`
	Files []string `arg:"" optional:"" type:"path" help:"SJSON files to format."`
}

func (c *fmtCmd) Run(env *runEnv) error {
	if len(c.Files) == 0 {
		data, err := env.readInput("")
		if err != nil {
			return err
		}
		obj, err := sjson.Parse(data)
		if err != nil {
			return fileError("", err)
		}
		return sjson.Format(env.stdout, obj)
	}
	for _, path := range c.Files {
		if err := c.formatFile(env, path); err != nil {
			return err
		}
	}
	return nil
}

func (c *fmtCmd) formatFile(env *runEnv, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	obj, err := sjson.Parse(data)
	if err != nil {
		return fileError(path, err)
	}
	out := []byte(sjson.Stringify(obj))
	changed := !bytes.Equal(data, out)
	level.Debug(env.logger).Log("msg", "formatted file", "path", path, "changed", changed)

	if c.List && changed {
		fmt.Fprintln(env.stdout, path)
	}
	if c.Write {
		if !changed {
			return nil
		}
		fi, err := os.Stat(path)
		if err != nil {
			return err
		}
		return os.WriteFile(path, out, fi.Mode().Perm())
	} else if !c.List {
		_, err = env.stdout.Write(out)
	}
	return err
}

type checkCmd struct {
	Files []string `arg:"" type:"existingfile" help:"SJSON files to check."`
}

func (c *checkCmd) Run(env *runEnv) error {
	var nfail int
	for _, path := range c.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := sjson.Parse(data); err != nil {
			nfail++
			level.Error(env.logger).Log("msg", "syntax error", "path", path, "err", err)
			fmt.Fprintln(env.stdout, fileError(path, err))
			continue
		}
		level.Debug(env.logger).Log("msg", "file OK", "path", path)
	}
	if nfail != 0 {
		return fmt.Errorf("%d of %d files failed", nfail, len(c.Files))
	}
	return nil
}

// fileError annotates a syntax error with the file name and position.
func fileError(path string, err error) error {
	if path == "" || path == "-" {
		path = "<stdin>"
	}
	var serr *sjson.SyntaxError
	if errors.As(err, &serr) {
		return fmt.Errorf("%s:%v: %w", path, serr.Location, err)
	}
	return fmt.Errorf("%s: %w", path, err)
}
