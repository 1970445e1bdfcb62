// Command jsonrewrite copies a JSON document from a file or stdin to
// stdout token by token, optionally renaming or dropping object keys
// along the way. The output is compact; numbers and member order pass
// through unchanged.
package main

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dryproject/librfc/digest"
)

var config struct {
	In     string
	Rules  string
	Gzip   bool
	Digest bool
}

func main() {
	flag.StringVar(&config.In, "in", "-", "Input file (- for stdin)")
	flag.StringVar(&config.Rules, "rules", "", "YAML file with rename-keys/drop-keys rules")
	flag.BoolVar(&config.Gzip, "gzip", false, "Input is gzip-compressed")
	flag.BoolVar(&config.Digest, "digest", false, "Print the SHA-1 of the output on stderr")
	flag.Parse()

	rules := &Rules{}
	if config.Rules != "" {
		var err error
		rules, err = LoadRules(config.Rules)
		if err != nil {
			log.Fatal(err)
		}
	}

	var in io.Reader = os.Stdin
	if config.In != "-" {
		f, err := os.Open(config.In)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	if config.Gzip {
		zr, err := gzip.NewReader(in)
		if err != nil {
			log.Fatalf("could not create gzip reader: %s", err)
		}
		defer zr.Close()
		in = zr
	}

	bw := bufio.NewWriter(os.Stdout)
	var out io.Writer = bw
	var hashed *bytes.Buffer
	if config.Digest {
		hashed = new(bytes.Buffer)
		out = io.MultiWriter(bw, hashed)
	}

	dec := json.NewDecoder(in)
	dec.UseNumber()

	err := NewRewriter(out, dec, rules).Run()
	if err != nil {
		log.Fatal(err)
	}

	err = bw.Flush()
	if err != nil {
		log.Fatalf("could not write output: %s", err)
	}

	if hashed != nil {
		fmt.Fprintln(os.Stderr, digest.Format(digest.Compute(hashed.Bytes())))
	}
}
