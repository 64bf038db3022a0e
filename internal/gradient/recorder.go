package gradient

// Stop is one color stop of a linear gradient.
type Stop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// Linear is a serializable linear gradient.
type Linear struct {
	Type  string  `json:"type"`
	X0    float64 `json:"x0"`
	Y0    float64 `json:"y0"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	Stops []Stop  `json:"stops"`
}

// AddColorStop appends a stop.
func (l *Linear) AddColorStop(offset float64, color string) {
	l.Stops = append(l.Stops, Stop{Offset: offset, Color: color})
}

// Recorder is a Context that produces Linear values instead of drawing.
// It keeps no state between calls.
type Recorder struct{}

// CreateLinearGradient starts a new Linear gradient.
func (Recorder) CreateLinearGradient(x0, y0, x1, y1 float64) Gradient {
	return &Linear{Type: "linear", X0: x0, Y0: y0, X1: x1, Y1: y1}
}
