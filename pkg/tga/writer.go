// Package tga implements an encoder for Truevision TGA images.
//
// Images are written as 24-bit true-color, either raw (image type 2) or
// run-length encoded (image type 10), with a top-left origin and a TGA 2.0
// footer. Alpha is discarded.
package tga

import (
	"bufio"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
)

const (
	typeTrueColor    = 2
	typeTrueColorRLE = 10

	descriptorTopLeft = 0x20
	maxPacket         = 128
	maxDimension      = 1<<16 - 1
)

var footer = []byte("TRUEVISION-XFILE.\x00")

// ErrTooLarge is returned when an image dimension does not fit the 16-bit
// fields of the TGA header.
var ErrTooLarge = errors.New("tga: image dimensions exceed 65535")

// Options are the encoding parameters.
type Options struct {
	// RLE enables run-length encoding. Packets never cross scanlines.
	RLE bool
}

type header struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	ColorMapOrigin  uint16
	ColorMapLength  uint16
	ColorMapDepth   uint8
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	BitsPerPixel    uint8
	ImageDescriptor uint8
}

// Encode writes m to w in TGA format. A nil o writes an uncompressed image.
func Encode(w io.Writer, m image.Image, o *Options) error {
	b := m.Bounds()
	if b.Dx() > maxDimension || b.Dy() > maxDimension {
		return ErrTooLarge
	}
	rle := o != nil && o.RLE

	h := header{
		ImageType:       typeTrueColor,
		Width:           uint16(b.Dx()),
		Height:          uint16(b.Dy()),
		BitsPerPixel:    24,
		ImageDescriptor: descriptorTopLeft,
	}
	if rle {
		h.ImageType = typeTrueColorRLE
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, h); err != nil {
		return err
	}

	row := make([]bgr, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		readRow(m, y, row)
		var err error
		if rle {
			err = writeRLERow(bw, row)
		} else {
			err = writeRawPixels(bw, row)
		}
		if err != nil {
			return err
		}
	}

	// Extension and developer area offsets, then the signature.
	if _, err := bw.Write(make([]byte, 8)); err != nil {
		return err
	}
	if _, err := bw.Write(footer); err != nil {
		return err
	}
	return bw.Flush()
}

type bgr [3]byte

func readRow(m image.Image, y int, row []bgr) {
	b := m.Bounds()
	if rgba, ok := m.(*image.RGBA); ok {
		off := rgba.PixOffset(b.Min.X, y)
		for i := range row {
			p := rgba.Pix[off+i*4 : off+i*4+3]
			row[i] = bgr{p[2], p[1], p[0]}
		}
		return
	}
	for i := range row {
		c := color.NRGBAModel.Convert(m.At(b.Min.X+i, y)).(color.NRGBA)
		row[i] = bgr{c.B, c.G, c.R}
	}
}

func writeRawPixels(w *bufio.Writer, px []bgr) error {
	for _, p := range px {
		if _, err := w.Write(p[:]); err != nil {
			return err
		}
	}
	return nil
}

// writeRLERow emits run packets for repeated pixels and raw packets for
// everything in between, each covering at most 128 pixels.
func writeRLERow(w *bufio.Writer, px []bgr) error {
	n := len(px)
	for i := 0; i < n; {
		run := 1
		for i+run < n && run < maxPacket && px[i+run] == px[i] {
			run++
		}
		if run > 1 {
			if err := w.WriteByte(0x80 | byte(run-1)); err != nil {
				return err
			}
			if _, err := w.Write(px[i][:]); err != nil {
				return err
			}
			i += run
			continue
		}

		j := i + 1
		for j < n && j-i < maxPacket && !(j+1 < n && px[j] == px[j+1]) {
			j++
		}
		if err := w.WriteByte(byte(j - i - 1)); err != nil {
			return err
		}
		if err := writeRawPixels(w, px[i:j]); err != nil {
			return err
		}
		i = j
	}
	return nil
}
