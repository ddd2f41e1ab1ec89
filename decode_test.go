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

package rawimage

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRGB8(t *testing.T) {
	buf := []byte{255, 0, 0, 0, 255, 0}
	img, err := Decode(buf, 2, 1, 8, "RGB")
	if err != nil {
		t.Fatal(err)
	}

	want := []uint8{255, 0, 0, 0, 255, 0}
	if diff := cmp.Diff(want, img.Pix); diff != "" {
		t.Errorf("pixel data mismatch (-want +got):\n%s", diff)
	}
	if c := img.RGBAAt(0, 0); c != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel (0,0) = %v", c)
	}
	if c := img.RGBAAt(1, 0); c != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("pixel (1,0) = %v", c)
	}
}

func TestDecodeGray1(t *testing.T) {
	img, err := Decode([]byte{0b10000000}, 1, 1, 1, "G")
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(0, 0); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel (0,0) = %v, want white", c)
	}
}

func TestDecodeGrayDepths(t *testing.T) {
	cases := []struct {
		bpc  int
		buf  []byte
		want []uint8
	}{
		{1, []byte{0b01000000}, []uint8{0, 255}},
		{2, []byte{0b00011011}, []uint8{0, 85, 170, 255}},
		{4, []byte{0x0F, 0x73}, []uint8{0, 255, 119, 51}},
		{8, []byte{0, 17, 254, 255}, []uint8{0, 17, 254, 255}},
		{16, []byte{0x00, 0xFF, 0x80, 0x00, 0xFF, 0xFF}, []uint8{0x00, 0x80, 0xFF}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("bpc%d", c.bpc), func(t *testing.T) {
			img, err := Decode(c.buf, len(c.want), 1, c.bpc, "DeviceGray")
			if err != nil {
				t.Fatal(err)
			}
			var got []uint8
			for x := range c.want {
				px := img.RGBAAt(x, 0)
				if px.R != px.G || px.G != px.B {
					t.Errorf("pixel %d is not gray: %v", x, px)
				}
				got = append(got, px.R)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("gray values (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRGB16(t *testing.T) {
	buf := []byte{0x12, 0x34, 0xAB, 0xCD, 0xFF, 0x00}
	img, err := Decode(buf, 1, 1, 16, "DeviceRGB")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint8{0x12, 0xAB, 0xFF}, img.Pix); diff != "" {
		t.Errorf("pixel data mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCMYK(t *testing.T) {
	cases := []struct {
		name string
		bpc  int
		buf  []byte
		want color.RGBA
	}{
		{"white", 8, []byte{0, 0, 0, 0}, color.RGBA{255, 255, 255, 255}},
		{"black", 8, []byte{0, 0, 0, 255}, color.RGBA{0, 0, 0, 255}},
		{"cyan", 8, []byte{255, 0, 0, 0}, color.RGBA{0, 255, 255, 255}},
		{"magenta", 8, []byte{0, 255, 0, 0}, color.RGBA{255, 0, 255, 255}},
		{"yellow", 8, []byte{0, 0, 255, 0}, color.RGBA{255, 255, 0, 255}},
		{"cyan16", 16, []byte{0xFF, 0xFF, 0, 0, 0, 0, 0, 0}, color.RGBA{0, 255, 255, 255}},
		{"black16", 16, []byte{0, 0, 0, 0, 0, 0, 0xFF, 0xFF}, color.RGBA{0, 0, 0, 255}},
		{"cyan1", 1, []byte{0b10000000}, color.RGBA{0, 255, 255, 255}},
		{"black4", 4, []byte{0x00, 0x0F}, color.RGBA{0, 0, 0, 255}},
		{"white4", 4, []byte{0x00, 0x00}, color.RGBA{255, 255, 255, 255}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			img, err := Decode(c.buf, 1, 1, c.bpc, "DeviceCMYK")
			if err != nil {
				t.Fatal(err)
			}
			if got := img.RGBAAt(0, 0); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestCMYKToRGB(t *testing.T) {
	r, g, b := cmykToRGB(0.5, 0, 0, 0.5)
	if r != 63 || g != 127 || b != 127 {
		t.Errorf("got (%d, %d, %d), want (63, 127, 127)", r, g, b)
	}
}

// TestFullBuffer checks that a buffer of the full packed length sets every
// pixel of the image.
func TestFullBuffer(t *testing.T) {
	for _, cs := range []ColorSpace{RGB, Gray, CMYK} {
		for _, bpc := range []int{1, 2, 4, 8, 16} {
			for _, size := range [][2]int{{1, 1}, {3, 2}, {5, 3}, {7, 4}, {16, 2}} {
				desc := &Descriptor{
					Width:            size[0],
					Height:           size[1],
					BitsPerComponent: bpc,
					ColorSpace:       cs,
				}

				// all ones is white for RGB and gray, all zeros is white for CMYK
				fill := byte(0xFF)
				if cs == CMYK {
					fill = 0x00
				}
				buf := bytes.Repeat([]byte{fill}, desc.Len())

				img, err := DecodeImage(buf, desc, nil)
				if err != nil {
					t.Fatalf("%s %d bit %dx%d: %v", cs, bpc, size[0], size[1], err)
				}
				if len(img.Pix) != 3*size[0]*size[1] {
					t.Fatalf("%s %d bit: wrong bitmap size %d", cs, bpc, len(img.Pix))
				}
				for i, v := range img.Pix {
					if v != 255 {
						t.Errorf("%s %d bit %dx%d: byte %d not set",
							cs, bpc, size[0], size[1], i)
						break
					}
				}
			}
		}
	}
}

func TestTruncated(t *testing.T) {
	for _, cs := range []ColorSpace{RGB, Gray, CMYK} {
		for _, bpc := range []int{1, 2, 4, 8, 16} {
			desc := &Descriptor{Width: 10, Height: 4, BitsPerComponent: bpc, ColorSpace: cs}
			buf := make([]byte, desc.minLen()-1)
			img, err := DecodeImage(buf, desc, nil)
			if !errors.Is(err, ErrTruncatedBuffer) {
				t.Errorf("%s %d bit: expected ErrTruncatedBuffer, got %v", cs, bpc, err)
			}
			if img != nil {
				t.Errorf("%s %d bit: got a bitmap for truncated data", cs, bpc)
			}
		}
	}
}

func TestPartialLastRow(t *testing.T) {
	// 5 pixels of 12 bits each use 60 bits, so rows are padded to 8 bytes.
	// The aggregate check only requires 15 bytes.
	desc := &Descriptor{Width: 5, Height: 2, BitsPerComponent: 4, ColorSpace: RGB}
	if desc.Len() != 16 || desc.minLen() != 15 {
		t.Fatalf("unexpected lengths %d, %d", desc.Len(), desc.minLen())
	}
	buf := bytes.Repeat([]byte{0xFF}, 15)

	img, err := DecodeImage(buf, desc, nil)
	if err != nil {
		t.Fatal(err)
	}
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			want := white
			if x == 4 && y == 1 {
				want = black
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPartialSubByteRows(t *testing.T) {
	// Three 1-bit pixels per row: the aggregate check needs 0 bytes, each
	// padded row uses one byte.
	desc := &Descriptor{Width: 3, Height: 2, BitsPerComponent: 1, ColorSpace: Gray}
	img, err := DecodeImage([]byte{0b10100000}, desc, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{
		255, 255, 255, 0, 0, 0, 255, 255, 255,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, img.Pix); diff != "" {
		t.Errorf("pixel data mismatch (-want +got):\n%s", diff)
	}
}

func TestRowPadding(t *testing.T) {
	// each row of three 2-bit pixels starts on a new byte
	buf := []byte{
		0b11011000, // 3, 1, 2, padding
		0b00111100, // 0, 3, 3, padding
	}
	img, err := Decode(buf, 3, 2, 2, "G")
	if err != nil {
		t.Fatal(err)
	}
	var got []uint8
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			got = append(got, img.RGBAAt(x, y).R)
		}
	}
	want := []uint8{255, 85, 170, 0, 255, 255}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("gray values (-want +got):\n%s", diff)
	}
}

func TestAliases(t *testing.T) {
	buf := make([]byte, 48)
	for i := range buf {
		buf[i] = byte(i * 37)
	}
	pairs := [][2]string{
		{"DeviceRGB", "RGB"},
		{"DeviceGray", "G"},
		{"DeviceCMYK", "CMYK"},
	}
	for _, p := range pairs {
		for _, bpc := range []int{1, 8} {
			img1, err := Decode(buf, 4, 2, bpc, p[0])
			if err != nil {
				t.Fatal(err)
			}
			img2, err := Decode(buf, 4, 2, bpc, p[1])
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(img1, img2); diff != "" {
				t.Errorf("%s and %s differ (-%s +%s):\n%s", p[0], p[1], p[0], p[1], diff)
			}
		}
	}
}

func TestRejections(t *testing.T) {
	buf := make([]byte, 64)
	cases := []struct {
		width, height, bpc int
		cs                 string
		want               error
	}{
		{0, 1, 8, "RGB", ErrInvalidDimension},
		{1, -1, 8, "RGB", ErrInvalidDimension},
		{0, 1, 3, "Indexed", ErrInvalidDimension},
		{1, 1, 3, "RGB", ErrInvalidBitDepth},
		{1, 1, 0, "RGB", ErrInvalidBitDepth},
		{1, 1, 32, "Indexed", ErrInvalidBitDepth},
		{1, 1, 8, "Indexed", ErrUnsupportedColorSpace},
		{1, 1, 8, "I", ErrUnsupportedColorSpace},
		{1, 1, 8, "ICCBased", ErrUnsupportedColorSpace},
		{1, 1, 8, "DeviceN", ErrUnsupportedColorSpace},
		{1, 1, 8, "devicergb", ErrUnsupportedColorSpace},
		{1, 1, 8, "", ErrUnsupportedColorSpace},
	}
	for _, c := range cases {
		img, err := Decode(buf, c.width, c.height, c.bpc, c.cs)
		if !errors.Is(err, c.want) {
			t.Errorf("Decode(%d, %d, %d, %q): got %v, want %v",
				c.width, c.height, c.bpc, c.cs, err, c.want)
		}
		if img != nil {
			t.Errorf("Decode(%d, %d, %d, %q) returned a bitmap",
				c.width, c.height, c.bpc, c.cs)
		}
	}
}

func TestInvalidDescriptor(t *testing.T) {
	desc := &Descriptor{Width: 1, Height: 1, BitsPerComponent: 8}
	_, err := DecodeImage([]byte{0, 0, 0}, desc, nil)
	if !errors.Is(err, ErrUnsupportedColorSpace) {
		t.Errorf("missing color space: got %v", err)
	}
}

func TestMaxPixels(t *testing.T) {
	desc := &Descriptor{Width: 4, Height: 4, BitsPerComponent: 8, ColorSpace: Gray}
	buf := make([]byte, desc.Len())

	_, err := DecodeImage(buf, desc, &Options{MaxPixels: 15})
	if !errors.Is(err, ErrAllocation) {
		t.Errorf("expected ErrAllocation, got %v", err)
	}

	_, err = DecodeImage(buf, desc, &Options{MaxPixels: 16})
	if err != nil {
		t.Errorf("image at the limit: %v", err)
	}
}

func TestLogPartial(t *testing.T) {
	var out strings.Builder
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	desc := &Descriptor{Width: 5, Height: 2, BitsPerComponent: 4, ColorSpace: RGB}
	_, err := DecodeImage(make([]byte, 15), desc, &Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	msg := out.String()
	if !strings.Contains(msg, "image data ends early") || !strings.Contains(msg, "x=4 y=1") {
		t.Errorf("unexpected log output %q", msg)
	}

	out.Reset()
	_, err = DecodeImage(make([]byte, 16), desc, &Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected log output for complete image: %q", out.String())
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, bpc := range []int{1, 8, 16} {
		desc := &Descriptor{Width: 640, Height: 480, BitsPerComponent: bpc, ColorSpace: RGB}
		buf := make([]byte, desc.Len())
		b.Run(fmt.Sprintf("bpc%d", bpc), func(b *testing.B) {
			b.SetBytes(int64(len(buf)))
			for i := 0; i < b.N; i++ {
				_, err := DecodeImage(buf, desc, nil)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
