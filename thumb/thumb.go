package thumb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Image is a small preview picture embedded after the fixed header fields of
// a save file. Pixels are RGB565, row-major.
type Image struct {
	Width  int
	Height int
	Pix    []uint16
}

// Compression indicates how the pixel payload of a thumbnail block is stored.
type Compression uint8

const (
	CompNone Compression = 0
	CompZstd Compression = 1
)

const (
	blockMagic   = "THMB"
	blockVersion = 1

	// Preview images are tiny; anything past these bounds is a corrupt or
	// foreign block, not a thumbnail.
	maxDim     = 640
	maxPayload = 1 << 20
)

var errMalformed = errors.New("thumb: malformed thumbnail block")

// NewImage returns a zeroed Width x Height thumbnail.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint16, width*height),
	}
}

// Set stores an RGB565 pixel. Out-of-range coordinates are ignored.
func (im *Image) Set(x, y int, pix uint16) {
	if x < 0 || y < 0 || x >= im.Width || y >= im.Height {
		return
	}
	im.Pix[y*im.Width+x] = pix
}

// RGB565 packs 8-bit color channels into a single RGB565 pixel.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// ToRGBA converts the thumbnail into a stdlib image for display or export.
func (im *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			p := im.Pix[y*im.Width+x]
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(p>>11) << 3,
				G: uint8(p>>5&0x3f) << 2,
				B: uint8(p&0x1f) << 3,
				A: 0xff,
			})
		}
	}
	return out
}

// Encode writes im to w as a self-delimiting thumbnail block: magic, version,
// dimensions, compression byte and a length-prefixed pixel payload. The
// payload is stored zstd-compressed when that is the smaller encoding.
func Encode(w io.Writer, im *Image) error {
	if im.Width <= 0 || im.Height <= 0 || im.Width > maxDim || im.Height > maxDim {
		return fmt.Errorf("thumb: bad dimensions %dx%d", im.Width, im.Height)
	}
	if len(im.Pix) != im.Width*im.Height {
		return fmt.Errorf("thumb: pixel buffer has %d entries, want %d", len(im.Pix), im.Width*im.Height)
	}

	raw := make([]byte, 2*len(im.Pix))
	for i, p := range im.Pix {
		binary.BigEndian.PutUint16(raw[2*i:], p)
	}

	payload := raw
	comp := CompNone

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	zb := enc.EncodeAll(raw, nil)
	enc.Close()
	if len(zb) < len(raw) {
		payload = zb
		comp = CompZstd
	}

	buf := &bytes.Buffer{}
	buf.WriteString(blockMagic)
	buf.WriteByte(blockVersion)
	if err := binary.Write(buf, binary.BigEndian, uint16(im.Width)); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.BigEndian, uint16(im.Height)); err != nil {
		return err
	}
	buf.WriteByte(byte(comp))
	if err := binary.Write(buf, binary.BigEndian, uint32(len(payload))); err != nil {
		return err
	}
	buf.Write(payload)

	_, err = w.Write(buf.Bytes())
	return err
}

// Decode reads one thumbnail block from r. Unlike DecodeIfPresent it reports
// why a block could not be read.
func Decode(r io.Reader) (*Image, error) {
	head := make([]byte, 4+1+2+2+1+4)
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, errMalformed
	}
	if string(head[:4]) != blockMagic {
		return nil, errMalformed
	}
	if head[4] != blockVersion {
		return nil, fmt.Errorf("thumb: unsupported block version %d", head[4])
	}

	width := int(binary.BigEndian.Uint16(head[5:]))
	height := int(binary.BigEndian.Uint16(head[7:]))
	comp := Compression(head[9])
	plen := binary.BigEndian.Uint32(head[10:])

	if width == 0 || height == 0 || width > maxDim || height > maxDim || plen > maxPayload {
		return nil, errMalformed
	}

	payload := make([]byte, plen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, errMalformed
	}

	switch comp {
	case CompNone:
	case CompZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		payload, err = dec.DecodeAll(payload, nil)
		dec.Close()
		if err != nil {
			return nil, errMalformed
		}
	default:
		return nil, fmt.Errorf("thumb: unknown compression %d", comp)
	}

	if len(payload) != width*height*2 {
		return nil, errMalformed
	}

	im := NewImage(width, height)
	for i := range im.Pix {
		im.Pix[i] = binary.BigEndian.Uint16(payload[2*i:])
	}
	return im, nil
}

// DecodeIfPresent attempts to read a trailing thumbnail block and returns nil
// when the stream holds none or the block is malformed. Saves written before
// thumbnails existed simply end after the fixed header fields, so absence is
// the common case, not a failure.
func DecodeIfPresent(r io.Reader) *Image {
	im, err := Decode(r)
	if err != nil {
		return nil
	}
	return im
}
