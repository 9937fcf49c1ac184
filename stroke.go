package sketch

import "image/color"

// Stroke records the input of one pen-down to pen-up gesture: the tool
// settings it was drawn with and the point sequence. Consecutive identical
// points are stored once.
type Stroke struct {
	Mode     DrawMode
	MaxWidth float64
	Color    color.NRGBA
	Points   []PenPoint

	sealed bool
}

// Sealed reports whether the stroke has been ended and no longer accepts
// points.
func (s *Stroke) Sealed() bool { return s.sealed }

// add appends p unless the stroke is sealed or p repeats the last point.
// Tool settings are taken from the first point. It reports whether p was
// stored.
func (s *Stroke) add(p PenPoint, mode DrawMode, maxWidth float64, c color.Color) bool {
	if s.sealed {
		return false
	}
	n := len(s.Points)
	if n > 0 && s.Points[n-1].Equal(p) {
		return false
	}
	if n == 0 {
		s.Mode = mode
		s.MaxWidth = maxWidth
		s.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	s.Points = append(s.Points, p)
	return true
}

// strokeLog is the ordered list of strokes a layer has received. The
// last stroke is open until it is sealed. With a positive limit only the
// newest limit strokes are kept.
type strokeLog struct {
	strokes []*Stroke
	limit   int
}

// begin seals the open stroke, if any, and opens a new empty one.
func (l *strokeLog) begin() {
	l.end()
	l.strokes = append(l.strokes, &Stroke{})
	l.trim()
}

// trim drops the oldest strokes beyond the limit.
func (l *strokeLog) trim() {
	if n := len(l.strokes); l.limit > 0 && n > l.limit {
		l.strokes = append(l.strokes[:0], l.strokes[n-l.limit:]...)
	}
}

// end seals the open stroke. A stroke that never received a point is
// dropped.
func (l *strokeLog) end() {
	s := l.open()
	if s == nil {
		return
	}
	if len(s.Points) == 0 {
		l.strokes = l.strokes[:len(l.strokes)-1]
		return
	}
	s.sealed = true
}

// open returns the stroke accepting points, or nil.
func (l *strokeLog) open() *Stroke {
	n := len(l.strokes)
	if n == 0 || l.strokes[n-1].sealed {
		return nil
	}
	return l.strokes[n-1]
}

func (l *strokeLog) reset() { l.strokes = nil }

// snapshot returns copies of the recorded strokes.
func (l *strokeLog) snapshot() []Stroke {
	out := make([]Stroke, len(l.strokes))
	for i, s := range l.strokes {
		out[i] = *s
		out[i].Points = append([]PenPoint(nil), s.Points...)
	}
	return out
}
