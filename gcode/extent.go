package gcode

// Extent is the XY bounding box of toolpath motion.
type Extent struct {
	MinX float64 `json:"min_x" yaml:"min_x"`
	MinY float64 `json:"min_y" yaml:"min_y"`
	MaxX float64 `json:"max_x" yaml:"max_x"`
	MaxY float64 `json:"max_y" yaml:"max_y"`
}

type bounds struct {
	set      bool
	min, max float64
}

func (b *bounds) expand(value float64) {
	if !b.set {
		b.min, b.max, b.set = value, value, true
		return
	}
	b.min = min(b.min, value)
	b.max = max(b.max, value)
}

// Extent computes the XY extent of all G0 / G1 motion, honoring G90 / G91 distance modes. Z is
// not considered.
func (p Program) Extent() (*Extent, error) {
	var pos positioning
	var x, y bounds
	axisBounds := []struct {
		axis   Axis
		bounds *bounds
	}{
		{AxisX, &x},
		{AxisY, &y},
	}

	err := p.walk(extentCommands, func(lineIdx int, cmd *Command, b behavior) error {
		if b != behaviorMotion {
			pos.apply(b)
			return nil
		}
		for _, ab := range axisBounds {
			word := cmd.Argument(ab.axis.Letter())
			if word == nil {
				continue
			}
			value, err := pos.resolve(lineIdx, ab.axis, word.Number())
			if err != nil {
				return err
			}
			ab.bounds.expand(value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !x.set || !y.set {
		return nil, ErrEmptyExtent
	}
	return &Extent{
		MinX: x.min,
		MinY: y.min,
		MaxX: x.max,
		MaxY: y.max,
	}, nil
}
