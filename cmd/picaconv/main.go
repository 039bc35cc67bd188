// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command picaconv decodes raw register words into their numeric values.
//
//	picaconv -format f24 0x3f0000 0xc04000
//	picaconv -format fix12p4 -json 0xffd4
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/avdva/pica"
	"github.com/avdva/pica/pfloat"
)

type result struct {
	Raw    string `json:"raw"`
	Format string `json:"format"`
	Value  string `json:"value"`
	Bits   string `json:"bits,omitempty"`
}

type decoder struct {
	width  uint
	decode func(raw uint32) (value, bits string)
}

func floatDecoder[F pfloat.Format]() decoder {
	var f F
	return decoder{
		width: f.MantissaBits() + f.ExponentBits() + 1,
		decode: func(raw uint32) (string, string) {
			v := pfloat.FromRaw[F](raw)
			return v.String(), fmt.Sprintf("%#08x", math.Float32bits(v.Float32()))
		},
	}
}

var decoders = map[string]decoder{
	"f24": floatDecoder[pfloat.F24](),
	"f20": floatDecoder[pfloat.F20](),
	"f16": floatDecoder[pfloat.F16](),
	"fix12p4": {
		width: 16,
		decode: func(raw uint32) (string, string) {
			v := pica.FromRaw(int16(uint16(raw)))
			return v.String(), fmt.Sprintf("%d:%d", v.Int(), v.Frac())
		},
	},
}

func formatNames() string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), err
	}
	output := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}

func parseWord(s string, width uint) (uint32, error) {
	raw, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad raw word %q: %w", s, err)
	}
	if raw>>width != 0 {
		return 0, fmt.Errorf("raw word %q exceeds %d bits", s, width)
	}
	return uint32(raw), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("picaconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "f24", "raw word format: "+formatNames())
	asJSON := fs.Bool("json", false, "print one json object per word")
	level := fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log, err := newLogger(stderr, *level)
	if err != nil {
		fmt.Fprintf(stderr, "bad log level %q: %v\n", *level, err)
		return 2
	}
	dec, found := decoders[*format]
	if !found {
		log.Error().Str("format", *format).Msg("unknown format, expected one of " + formatNames())
		return 2
	}
	if fs.NArg() == 0 {
		log.Error().Msg("no raw words given")
		return 2
	}

	enc := json.NewEncoder(stdout)
	failed := false
	for _, arg := range fs.Args() {
		raw, err := parseWord(arg, dec.width)
		if err != nil {
			log.Error().Err(err).Msg("skipping word")
			failed = true
			continue
		}
		value, bits := dec.decode(raw)
		log.Debug().Str("format", *format).Uint32("raw", raw).Str("bits", bits).Msg("decoded")
		if *asJSON {
			res := result{Raw: fmt.Sprintf("%#x", raw), Format: *format, Value: value, Bits: bits}
			if err := enc.Encode(res); err != nil {
				log.Error().Err(err).Msg("write failed")
				return 1
			}
			continue
		}
		fmt.Fprintf(stdout, "%#x -> %s\n", raw, value)
	}
	if failed {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
