// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"reflect"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/hostenv/lib/codec"
)

// Output adds --json and --cbor machine-readable output to a command.
//
// Usage:
//
//	var output cli.Output
//	Flags: func() *pflag.FlagSet {
//	    flagSet := pflag.NewFlagSet("probe", pflag.ContinueOnError)
//	    output.AddFlags(flagSet)
//	    return flagSet
//	},
//	Run: func(args []string) error {
//	    if done, err := output.Emit(stdout, info); done {
//	        return err
//	    }
//	    // ... text formatting ...
//	}
type Output struct {
	JSON bool
	CBOR bool
}

// AddFlags registers --json and --cbor on flagSet.
func (o *Output) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.BoolVar(&o.JSON, "json", false, "output as JSON")
	flagSet.BoolVar(&o.CBOR, "cbor", false, "output as deterministic CBOR")
}

// Emit writes result in the selected machine format. Returns (true, nil)
// on success, (true, err) on failure, or (false, nil) when neither
// format is selected and the caller should print text.
func (o *Output) Emit(w io.Writer, result any) (bool, error) {
	switch {
	case o.JSON && o.CBOR:
		return true, errors.New("--json and --cbor are mutually exclusive")
	case o.JSON:
		return true, writeStyledJSON(w, normalizeNilSlice(result), NewStyler(w))
	case o.CBOR:
		return true, WriteCBOR(w, result)
	}
	return false, nil
}

// WriteJSON marshals value as indented JSON and writes it to w.
func WriteJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// writeStyledJSON is WriteJSON with syntax highlighting when styler is
// enabled.
func writeStyledJSON(w io.Writer, value any, styler *Styler) error {
	var buffer bytes.Buffer
	if err := WriteJSON(&buffer, value); err != nil {
		return err
	}
	data, err := styler.HighlightJSON(buffer.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteCBOR writes value to w as a single Core Deterministic CBOR item.
func WriteCBOR(w io.Writer, value any) error {
	return codec.NewEncoder(w).Encode(value)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// normalizeNilSlice returns an empty slice of the same type if value
// is a nil slice, so that JSON serialization produces [] instead of
// null.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
