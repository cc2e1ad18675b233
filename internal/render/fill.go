package render

// Every fill queries the surface size once, before touching any cell. If the
// size is unavailable nothing is drawn and the error is returned.

// FillRow paints square pixel row y across the surface. Each square pixel
// consumes two real cells, so the row holds width/2 of them.
func (c *Canvas) FillRow(y uint16, col Color) error {
	w, _, err := c.dimensions("fill row")
	if err != nil {
		return err
	}
	c.fillRow(y, w, col)
	return nil
}

func (c *Canvas) fillRow(y, width uint16, col Color) {
	for x := uint16(0); x < width/2; x++ {
		c.SquarePixel(x, y, col)
	}
}

// FillColumn paints real cell column x from top to bottom, without aspect
// doubling.
func (c *Canvas) FillColumn(x uint16, col Color) error {
	_, h, err := c.dimensions("fill column")
	if err != nil {
		return err
	}
	c.fillColumn(x, h, col)
	return nil
}

func (c *Canvas) fillColumn(x, height uint16, col Color) {
	for y := uint16(0); y < height; y++ {
		c.RealCell(x, y, col)
	}
}

// FillSquareColumn paints square pixel column x by filling both of its real
// columns.
func (c *Canvas) FillSquareColumn(x uint16, col Color) error {
	_, h, err := c.dimensions("fill square column")
	if err != nil {
		return err
	}
	first, second := SquarePixelCells(x, 0)
	c.fillColumn(first.Col, h, col)
	c.fillColumn(second.Col, h, col)
	return nil
}

// FillScreen paints every square pixel row of the surface.
func (c *Canvas) FillScreen(col Color) error {
	w, h, err := c.dimensions("fill screen")
	if err != nil {
		return err
	}
	for y := uint16(0); y < h; y++ {
		c.fillRow(y, w, col)
	}
	return nil
}

// RandomRow paints square pixel row y with a fresh color per pixel.
func (c *Canvas) RandomRow(y uint16) error {
	w, _, err := c.dimensions("random row")
	if err != nil {
		return err
	}
	for x := uint16(0); x < w/2; x++ {
		c.SquarePixel(x, y, c.colors.Next())
	}
	return nil
}

// RandomScreen paints the surface with a fresh color per square pixel.
// Row 0 and square column 0 are left untouched.
func (c *Canvas) RandomScreen() error {
	w, h, err := c.dimensions("random screen")
	if err != nil {
		return err
	}
	for y := uint16(1); y < h; y++ {
		for x := uint16(1); x < w/2; x++ {
			c.SquarePixel(x, y, c.colors.Next())
		}
	}
	return nil
}
