package reorder

// Drag adapts pointer drag-and-drop to Engine.Move. The source index is
// captured when the drag starts and the move happens on drop.
type Drag struct {
	engine    *Engine
	source    int
	indicator int
	active    bool
}

// NewDrag returns a pointer adapter for engine.
func NewDrag(engine *Engine) *Drag {
	return &Drag{engine: engine, source: -1, indicator: -1}
}

// Start captures the source index.
func (d *Drag) Start(index int) {
	if index < 0 || index >= d.engine.Len() {
		d.Cancel()
		return
	}

	d.source = index
	d.indicator = index
	d.active = true
}

// Over records the index currently under the pointer.
func (d *Drag) Over(index int) {
	if !d.active {
		return
	}

	d.indicator = index
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Source returns the index being dragged, or -1.
func (d *Drag) Source() int {
	return d.source
}

// Indicator returns the index the item would be dropped at, or -1.
func (d *Drag) Indicator() int {
	return d.indicator
}

// Drop moves the dragged item to target and ends the drag.
func (d *Drag) Drop(target int) (bool, error) {
	if !d.active {
		return false, nil
	}

	source := d.source

	d.Cancel()

	return d.engine.Move(source, target)
}

// Cancel abandons the drag.
func (d *Drag) Cancel() {
	d.source = -1
	d.indicator = -1
	d.active = false
}
