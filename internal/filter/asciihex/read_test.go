// seehuhn.de/go/rawimage - decode raw image samples from PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package asciihex

import (
	"encoding/hex"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{">", []byte{}},
		{"414243>", []byte("ABC")},
		{"41 42\n43\r\n>", []byte("ABC")},
		{"000ff0FF>", []byte{0x00, 0x0F, 0xF0, 0xFF}},
		{"123>", []byte{0x12, 0x30}},
		{"12>ignored", []byte{0x12}},
	}
	for _, c := range cases {
		got, err := io.ReadAll(Decode(strings.NewReader(c.in)))
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%q: (-want +got):\n%s", c.in, diff)
		}
	}
}

// TestSplitReads checks that byte pairs can straddle calls to Read.
func TestSplitReads(t *testing.T) {
	want := []byte("The quick brown fox")
	in := hex.EncodeToString(want) + ">"

	r := Decode(iotest.OneByteReader(strings.NewReader(in)))
	got, err := io.ReadAll(iotest.OneByteReader(r))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	for _, in := range []string{"41x>", "4142"} {
		r := Decode(strings.NewReader(in))
		_, err := io.ReadAll(r)
		if err == nil {
			t.Errorf("%q: missing error", in)
		}
		if r.Close() == nil {
			t.Errorf("%q: Close did not report the error", in)
		}
	}
}
