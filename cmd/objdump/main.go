// SPDX-FileCopyrightText: 2022 The margaret Authors
//
// SPDX-License-Identifier: MIT

// objdump prints objpack encoded values as JSON.
//
//	objdump [-v] [-any] file...
//	objdump [-v] [-any] -store badger|badger-small|sqlite|mkv -path dir [-ref id]
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"go.mindeco.de/log"
	"go.mindeco.de/log/level"
	"go.mindeco.de/logging"

	"github.com/ssbc/objpack"
	"github.com/ssbc/objpack/codec/json"
	"github.com/ssbc/objpack/namespace"
	"github.com/ssbc/objpack/objstore"
	"github.com/ssbc/objpack/stream"
)

var check = logging.CheckFatal

func main() {
	var (
		backend = flag.String("store", "", "read objects from a store of this backend (badger, badger-small, sqlite, mkv) instead of files")
		path    = flag.String("path", "", "location of the store")
		ref     = flag.Uint64("ref", 0, "only dump this object of the store")
		lenient = flag.Bool("any", false, "define unknown namespaces on the fly instead of failing")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logging.SetupLogging(nil)
	var logger log.Logger = logging.Logger("objdump")
	if *verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	var resolver objpack.NamespaceResolver = namespace.Default()
	if *lenient {
		resolver = autoResolver{namespace.Default()}
	}

	out := newJSONSink(os.Stdout)
	ctx := context.Background()

	if *backend != "" {
		s, err := objstore.Open(*backend, *path,
			objstore.WithLogger(logger),
			objstore.WithResolver(resolver))
		check(errors.Wrap(err, "error opening store"))
		defer s.Close()

		refs := s.Refs()
		if *ref != 0 {
			refs = []objstore.Ref{{ID: *ref}}
		}
		for _, r := range refs {
			v, err := s.Get(r)
			check(err)
			check(out.Pour(ctx, map[string]interface{}{"ref": r.ID, "value": v}))
		}
		check(out.Close())
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	exts, err := objpack.NewExtensions(objstore.RefExtension)
	check(err)

	for _, name := range flag.Args() {
		f, err := os.Open(name)
		check(errors.Wrapf(err, "error opening %s", name))

		src := stream.NewSource(bufio.NewReader(f),
			objpack.WithResolver(resolver),
			objpack.WithExtensions(exts))

		err = luigi.Pump(ctx, out, src)
		f.Close()
		check(errors.Wrapf(err, "error dumping %s", name))
		level.Debug(logger).Log("event", "dumped", "file", name, "values", out.enc.Count())
	}
	check(out.Close())
}

// autoResolver defines every namespace it is asked about.
type autoResolver struct {
	*namespace.Registry
}

func (ar autoResolver) ResolveNamespace(name string) (objpack.Namespace, bool) {
	if ns, ok := ar.Registry.ResolveNamespace(name); ok {
		return ns, true
	}
	ns, err := ar.Define(name)
	if err != nil {
		// lost a race against another definition
		return ar.Registry.ResolveNamespace(name)
	}
	return ns, true
}

// jsonSink adapts a json.Encoder to luigi.
type jsonSink struct {
	enc *json.Encoder
}

func newJSONSink(w io.Writer) *jsonSink {
	return &jsonSink{enc: json.NewEncoder(w)}
}

func (js *jsonSink) Pour(ctx context.Context, v interface{}) error {
	return js.enc.Encode(v)
}

func (js *jsonSink) Close() error {
	return js.enc.Flush()
}
