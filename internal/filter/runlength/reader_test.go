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

package runlength

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

// encode is a simple run-length encoder, using runs for every repeated
// byte pair.
func encode(data []byte) []byte {
	var out []byte
	for len(data) > 0 {
		run := 1
		for run < len(data) && run < 128 && data[run] == data[0] {
			run++
		}
		if run > 1 {
			out = append(out, byte(257-run), data[0])
			data = data[run:]
			continue
		}
		lit := 1
		for lit < len(data) && lit < 128 && (lit+1 >= len(data) || data[lit] != data[lit+1]) {
			lit++
		}
		out = append(out, byte(lit-1))
		out = append(out, data[:lit]...)
		data = data[lit:]
	}
	return append(out, 128)
}

func TestDecode(t *testing.T) {
	cases := [][]byte{
		{},
		{0},
		{0, 0},
		{1, 2, 3, 4, 5},
		{1, 1, 1, 1, 1},
		{0, 1, 2, 3, 0, 0, 0, 0, 4, 5, 6},
		bytes.Repeat([]byte{7}, 128),
		bytes.Repeat([]byte{8}, 300),
		bytes.Repeat([]byte{1, 2, 3}, 100),
	}
	for i, data := range cases {
		enc := encode(data)
		got, err := io.ReadAll(Decode(bytes.NewReader(enc)))
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if diff := cmp.Diff(data, got); diff != "" {
			t.Errorf("case %d: (-want +got):\n%s", i, diff)
		}

		got, err = io.ReadAll(iotest.OneByteReader(Decode(bytes.NewReader(enc))))
		if err != nil {
			t.Fatalf("case %d, one byte reads: %v", i, err)
		}
		if !bytes.Equal(data, got) {
			t.Errorf("case %d: one byte reads give %v", i, got)
		}
	}
}

func TestMissingEOD(t *testing.T) {
	got, err := io.ReadAll(Decode(bytes.NewReader([]byte{2, 'a', 'b', 'c', 254, 'x'})))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abcxxx" {
		t.Errorf("got %q", got)
	}
}

func TestTruncated(t *testing.T) {
	for _, in := range [][]byte{{5, 'a', 'b'}, {200}} {
		_, err := io.ReadAll(Decode(bytes.NewReader(in)))
		if err != io.ErrUnexpectedEOF {
			t.Errorf("%v: got %v, want io.ErrUnexpectedEOF", in, err)
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("Hello, World!"))
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{1, 1, 1, 2, 2, 2, 2})

	f.Fuzz(func(t *testing.T, data []byte) {
		got, err := io.ReadAll(Decode(bytes.NewReader(encode(data))))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, got) {
			t.Errorf("round trip failed: %v != %v", data, got)
		}
	})
}
