// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fpaq compresses and decompresses files with the fpaq context
// mixing compressors.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"
	"github.com/pkg/errors"
	"github.com/ulikunitz/fpaq/cm"
	"github.com/ulikunitz/fpaq/xlog"
)

const version = "0.1.0"

const usageStr = `Usage: fpaq [OPTION]... [FILE]...
Compress or uncompress FILEs in the .fpaq format (by default, compress FILES
in place).

  -c, --stdout          write to standard output and don't delete input files
  -d, --decompress      force decompression
  -f, --force           force overwrite of output file and compress links
  -h, --help            give this help
  -k, --keep            keep (don't delete) input files
  -m, --method=METHOD   context model: apm, statemap, order0 or count;
                        default apm
  -o, --output=FILE     write output to FILE; only a single input file
  -q, --quiet           suppress all warnings
  -v, --verbose         verbose mode
  -V, --version         display version string
  -z, --compress        force compression

With no FILE, or when FILE is -, read standard input. The stream doesn't
record the method; decompression requires the method used for
compression.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// options collects the command line flags.
type options struct {
	decompress bool
	stdout     bool
	force      bool
	keep       bool
	method     cm.Method
	output     string
}

// check verifies the consistency of the options for the given
// number of files.
func (o *options) check(files []string) error {
	if o.output != "" {
		if o.stdout {
			return errors.New("options -c and -o exclude each other")
		}
		if len(files) != 1 {
			return errors.New("option -o requires a single file")
		}
	}
	return nil
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	xlog.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	xlog.SetFlags(xlog.Lnodebug | xlog.Lnoprint)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help       = pflag.BoolP("help", "h", false, "")
		stdout     = pflag.BoolP("stdout", "c", false, "")
		compress   = pflag.BoolP("compress", "z", false, "")
		decompress = pflag.BoolP("decompress", "d", false, "")
		force      = pflag.BoolP("force", "f", false, "")
		keep       = pflag.BoolP("keep", "k", false, "")
		quiet      = pflag.BoolP("quiet", "q", false, "")
		verbose    = pflag.BoolP("verbose", "v", false, "")
		showVer    = pflag.BoolP("version", "V", false, "")
		method     = pflag.StringP("method", "m", cm.MethodAPM.String(), "")
		output     = pflag.StringP("output", "o", "", "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *showVer {
		fmt.Printf("%s %s\n", cmdName, version)
		os.Exit(0)
	}
	if *compress && *decompress {
		xlog.Fatal("options -z and -d exclude each other")
	}
	if *quiet {
		xlog.SetFlags(xlog.Flags() | xlog.Lnowarn)
	}
	if *verbose {
		xlog.SetFlags(xlog.Flags() &^ xlog.Lnoprint)
	}

	m, err := cm.ParseMethod(*method)
	if err != nil {
		xlog.Fatal(err)
	}
	opts := &options{
		decompress: *decompress,
		stdout:     *stdout,
		force:      *force,
		keep:       *keep,
		method:     m,
		output:     *output,
	}

	files := pflag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	if err = opts.check(files); err != nil {
		xlog.Fatal(err)
	}

	exit := 0
	for _, path := range files {
		if err := processFile(path, opts); err != nil {
			exit = 1
		}
	}
	os.Exit(exit)
}
