// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hostenv/lib/codec"
)

type sample struct {
	ID      string   `json:"id"`
	Aliases []string `json:"aliases,omitempty"`
}

func TestOutputFlags(t *testing.T) {
	var output Output
	flagSet := pflag.NewFlagSet("probe", pflag.ContinueOnError)
	output.AddFlags(flagSet)

	if err := flagSet.Parse([]string{"--cbor"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if output.JSON || !output.CBOR {
		t.Errorf("JSON=%v CBOR=%v after --cbor", output.JSON, output.CBOR)
	}
}

func TestOutputEmitText(t *testing.T) {
	var output Output
	var buffer bytes.Buffer

	done, err := output.Emit(&buffer, sample{ID: "fedora"})
	if done || err != nil {
		t.Errorf("Emit() = %v, %v without flags; want false, nil", done, err)
	}
	if buffer.Len() != 0 {
		t.Errorf("Emit wrote %q in text mode", buffer.String())
	}
}

func TestOutputEmitJSON(t *testing.T) {
	output := Output{JSON: true}
	var buffer bytes.Buffer

	done, err := output.Emit(&buffer, sample{ID: "fedora"})
	if !done || err != nil {
		t.Fatalf("Emit() = %v, %v; want true, nil", done, err)
	}

	var decoded sample
	if err := json.Unmarshal(buffer.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buffer.String())
	}
	if decoded.ID != "fedora" {
		t.Errorf("decoded ID = %q, want fedora", decoded.ID)
	}
	if !strings.Contains(buffer.String(), "\n  \"id\"") {
		t.Errorf("JSON output not indented: %q", buffer.String())
	}
}

func TestOutputEmitJSONNilSlice(t *testing.T) {
	output := Output{JSON: true}
	var buffer bytes.Buffer

	var empty []sample
	if _, err := output.Emit(&buffer, empty); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if strings.TrimSpace(buffer.String()) != "[]" {
		t.Errorf("nil slice encoded as %q, want []", buffer.String())
	}
}

func TestOutputEmitCBOR(t *testing.T) {
	output := Output{CBOR: true}
	var buffer bytes.Buffer

	done, err := output.Emit(&buffer, sample{ID: "debian", Aliases: []string{"sid"}})
	if !done || err != nil {
		t.Fatalf("Emit() = %v, %v; want true, nil", done, err)
	}

	var decoded sample
	if err := codec.Unmarshal(buffer.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not CBOR: %v", err)
	}
	if decoded.ID != "debian" || len(decoded.Aliases) != 1 {
		t.Errorf("decoded = %+v", decoded)
	}

	expected, err := codec.Marshal(sample{ID: "debian", Aliases: []string{"sid"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(buffer.Bytes(), expected) {
		t.Error("streamed CBOR differs from codec.Marshal")
	}
}

func TestOutputEmitBothIsError(t *testing.T) {
	output := Output{JSON: true, CBOR: true}
	var buffer bytes.Buffer

	done, err := output.Emit(&buffer, sample{})
	if !done || err == nil {
		t.Errorf("Emit() = %v, %v; want true and an error", done, err)
	}
	if buffer.Len() != 0 {
		t.Errorf("Emit wrote output despite conflicting flags: %q", buffer.String())
	}
}

func TestIsTerminalNonFile(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(buffer) = true")
	}
}

func TestWriteStyledJSONHighlights(t *testing.T) {
	var buffer bytes.Buffer
	styler := NewStylerWithProfile(&buffer, termenv.ANSI256)

	if err := writeStyledJSON(&buffer, sample{ID: "rocky"}, styler); err != nil {
		t.Fatalf("writeStyledJSON: %v", err)
	}
	if !strings.Contains(buffer.String(), "\x1b[") {
		t.Errorf("styled JSON has no escape sequences: %q", buffer.String())
	}

	var decoded sample
	if err := json.Unmarshal([]byte(ansi.Strip(buffer.String())), &decoded); err != nil {
		t.Fatalf("stripped output is not JSON: %v", err)
	}
	if decoded.ID != "rocky" {
		t.Errorf("decoded ID = %q, want rocky", decoded.ID)
	}
}
