// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trace

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
)

// Image is a row-major grid of linear colors, row 0 at the top.
type Image struct {
	Width, Height int
	Pix           []Color
}

// NewImage allocates a width x height image.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]Color, width*height)}
}

// At returns the pixel at (row, col).
func (im *Image) At(row, col int) Color { return im.Pix[row*im.Width+col] }

// Set stores c at (row, col).
func (im *Image) Set(row, col int, c Color) { im.Pix[row*im.Width+col] = c }

func clampByte(c float32) uint8 {
	return uint8(min(255, int(float32(c*255)+0.5)))
}

// EncodeGamma maps a linear channel value to an 8-bit sRGB value with the
// piecewise sRGB transfer function, rounded to nearest. NaN encodes as 0.
func EncodeGamma(c float32) uint8 {
	switch {
	case !(c >= 0):
		return 0
	case c < 0.0031308:
		return clampByte(12.92 * c)
	case c < 1:
		return clampByte(float32(1.055*math32.Pow(c, 1/2.4)) - 0.055)
	default:
		return 255
	}
}

const (
	bmpFileHeaderSize = 14
	bmpInfoHeaderSize = 40
)

// bmpHeader is BITMAPFILEHEADER followed by BITMAPINFOHEADER.
type bmpHeader struct {
	Type       [2]byte
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32

	InfoSize      uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	ImageSize     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ColorsUsed    uint32
	ColorsImp     uint32
}

// WriteBMP writes the image as an uncompressed 24-bit BMP. The height is
// stored negative so rows are written top to bottom; each row is padded to
// a multiple of four bytes.
func (im *Image) WriteBMP(w io.Writer) error {
	stride := (im.Width*3 + 3) &^ 3
	dataSize := stride * im.Height
	hdr := bmpHeader{
		Type:          [2]byte{'B', 'M'},
		FileSize:      uint32(bmpFileHeaderSize + bmpInfoHeaderSize + dataSize),
		DataOffset:    bmpFileHeaderSize + bmpInfoHeaderSize,
		InfoSize:      bmpInfoHeaderSize,
		Width:         int32(im.Width),
		Height:        -int32(im.Height),
		Planes:        1,
		BitCount:      24,
		ImageSize:     uint32(dataSize),
		XPelsPerMeter: 2835, // 72 DPI
		YPelsPerMeter: 2835,
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("writing bmp header: %w", err)
	}
	row := make([]byte, stride)
	for y := range im.Height {
		for x := range im.Width {
			c := im.At(y, x)
			row[x*3+0] = EncodeGamma(c.B)
			row[x*3+1] = EncodeGamma(c.G)
			row[x*3+2] = EncodeGamma(c.R)
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("writing bmp row %d: %w", y, err)
		}
	}
	return bw.Flush()
}

// Save writes the image to path as a BMP, creating parent directories.
func (im *Image) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := im.WriteBMP(f); err != nil {
		f.Close()
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return f.Close()
}
