package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		if c != 0 {
			putRGBA(buf, i, rOn, gOn, bOn, aOn)
			continue
		}
		putRGBA(buf, i, rOff, gOff, bOff, aOff)
	}
}

// markPixel recolours the pixel of cell (x, y) in a w-wide buffer. Cells
// outside the buffer are ignored.
func markPixel(buf []byte, w, x, y int, c color.Color) {
	if w <= 0 || x < 0 || x >= w || y < 0 {
		return
	}
	i := y*w + x
	if (i+1)*4 > len(buf) {
		return
	}
	r, g, b, a := c.RGBA()
	putRGBA(buf, i, r, g, b, a)
}

func putRGBA(buf []byte, i int, r, g, b, a uint32) {
	base := i * 4
	buf[base+0] = uint8(r >> 8)
	buf[base+1] = uint8(g >> 8)
	buf[base+2] = uint8(b >> 8)
	buf[base+3] = uint8(a >> 8)
}
