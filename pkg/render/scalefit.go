package render

import "fmt"

// ScaleFitView is a View that follows the terminal size. Call Update in
// place of Clear at the start of each frame.
type ScaleFitView struct {
	*View
	// EmptyRowCount is the number of rows left free below the view, for
	// status text printed after a frame.
	EmptyRowCount int
	// Terminal reports the terminal size. It defaults to StdoutSize.
	Terminal SizeFunc
}

// NewScaleFitView creates a view sized to the terminal, leaving one empty
// row below it.
func NewScaleFitView(background ColChar, size SizeFunc) (*ScaleFitView, error) {
	if size == nil {
		size = StdoutSize
	}
	v := &ScaleFitView{
		View:          NewView(0, 0, background),
		EmptyRowCount: 1,
		Terminal:      size,
	}
	if err := v.Update(); err != nil {
		return nil, err
	}
	return v, nil
}

// IntendedSize is the terminal size minus EmptyRowCount+1 rows, never
// negative.
func (v *ScaleFitView) IntendedSize() (Vec2, error) {
	size, err := v.Terminal()
	if err != nil {
		return Vec2{}, fmt.Errorf("scale fit view: %w", err)
	}
	size.Y -= v.EmptyRowCount + 1
	return size.Max(Vec2{}), nil
}

// Update resizes the view to the intended size and clears it.
func (v *ScaleFitView) Update() error {
	size, err := v.IntendedSize()
	if err != nil {
		return err
	}
	if size != v.View.Size() {
		Logger().Debug("resizing view", "from", v.View.Size(), "to", size)
		v.Resize(size.X, size.Y)
		return nil
	}
	v.Clear()
	return nil
}
