package interact

import (
	"fmt"
	"math"
)

const (
	defaultMaxVisibleItems = 5
	dropdownTextInset      float32 = 5
	dropdownBorder         float32 = 2
	scrollIndicatorSize    float32 = 10
)

// Dropdown is a single-selection list that opens below its header.
// When more items exist than fit, the open list scrolls with the mouse wheel.
type Dropdown struct {
	bounds     Rect
	items      []string
	selected   int // -1 = none
	hover      int // -1 = none
	open       bool
	changed    bool
	maxVisible int
	scroll     int
	wheel      float32 // unconsumed fractional wheel motion

	backgroundColor uint32
	borderColor     uint32
	textColor       uint32
	hoverColor      uint32
	fontSize        int
}

// NewDropdown creates a closed dropdown with no selection.
// The header is width x height and each open item has the same size.
func NewDropdown(x, y, width, height float32, items []string) *Dropdown {
	return &Dropdown{
		bounds:          NewRect(x, y, width, height),
		items:           append([]string(nil), items...),
		selected:        -1,
		hover:           -1,
		maxVisible:      defaultMaxVisibleItems,
		backgroundColor: ColorWhite,
		borderColor:     ColorBlack,
		textColor:       ColorBlack,
		hoverColor:      ColorLightGray,
		fontSize:        20,
	}
}

// itemBounds returns the rectangle of the i-th visible row.
func (d *Dropdown) itemBounds(i int) Rect {
	return NewRect(d.bounds.X, d.bounds.Y+d.bounds.H*float32(i+1), d.bounds.W, d.bounds.H)
}

func (d *Dropdown) visibleCount() int {
	return min(len(d.items)-d.scroll, d.maxVisible)
}

// itemAt returns the item index under p, or -1.
func (d *Dropdown) itemAt(p Vec2) int {
	for i := 0; i < d.visibleCount(); i++ {
		if d.itemBounds(i).Contains(p) {
			return i + d.scroll
		}
	}
	return -1
}

func (d *Dropdown) maxScroll() int {
	return max(len(d.items)-d.maxVisible, 0)
}

// Update handles header and item presses, wheel scrolling and hover.
// A press outside both header and list closes an open dropdown.
func (d *Dropdown) Update(in *InputState) {
	mouse := in.MousePos()
	d.hover = -1
	d.changed = false

	if in.MouseClicked(MouseButtonLeft) {
		switch {
		case d.bounds.Contains(mouse):
			d.open = !d.open
		case d.open:
			if i := d.itemAt(mouse); i >= 0 {
				d.changed = i != d.selected
				d.selected = i
			}
			d.open = false
		}
	}

	if d.open && d.IsScrollable() {
		d.scrollBy(in.MouseWheelY)
	} else {
		d.wheel = 0
	}

	if d.open {
		d.hover = d.itemAt(mouse)
	}
}

// scrollBy accumulates wheel motion and scrolls by whole items, so trackpads
// reporting fractional deltas still move the list.
func (d *Dropdown) scrollBy(wheel float32) {
	w := float64(wheel)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return
	}
	d.wheel += wheel
	steps := int(d.wheel)
	if steps == 0 {
		return
	}
	d.wheel -= float32(steps)
	d.scroll = clampInt(d.scroll-steps, 0, d.maxScroll())
}

// Draw renders the header with the selected item and, when open, the list.
func (d *Dropdown) Draw(c Canvas) {
	d.drawRow(c, d.bounds, d.backgroundColor, d.SelectedItemOrEmpty())

	arrow := float32(d.fontSize) * 0.5
	ax := d.bounds.X + d.bounds.W - arrow - dropdownTextInset
	ay := d.bounds.Y + (d.bounds.H-arrow)/2
	c.Triangle(
		Vec2{X: ax, Y: ay},
		Vec2{X: ax + arrow, Y: ay},
		Vec2{X: ax + arrow/2, Y: ay + arrow},
		d.textColor,
	)

	if !d.open {
		return
	}

	for i := 0; i < d.visibleCount(); i++ {
		idx := i + d.scroll
		bg := d.backgroundColor
		if idx == d.hover {
			bg = d.hoverColor
		}
		d.drawRow(c, d.itemBounds(i), bg, d.items[idx])
	}

	if d.IsScrollable() {
		x := d.bounds.X + d.bounds.W - 15
		if d.scroll > 0 {
			y := d.bounds.Y + d.bounds.H
			c.Triangle(
				Vec2{X: x, Y: y + scrollIndicatorSize},
				Vec2{X: x + scrollIndicatorSize, Y: y + scrollIndicatorSize},
				Vec2{X: x + scrollIndicatorSize/2, Y: y},
				d.textColor,
			)
		}
		if d.scroll < d.maxScroll() {
			y := d.bounds.Y + d.bounds.H*float32(d.maxVisible+1)
			c.Triangle(
				Vec2{X: x, Y: y},
				Vec2{X: x + scrollIndicatorSize, Y: y},
				Vec2{X: x + scrollIndicatorSize/2, Y: y + scrollIndicatorSize},
				d.textColor,
			)
		}
	}
}

func (d *Dropdown) drawRow(c Canvas, r Rect, bg uint32, text string) {
	c.FillRect(r, bg)
	c.StrokeRect(r, dropdownBorder, d.borderColor)
	if text == "" {
		return
	}
	// Leave room for the arrow on the right.
	maxW := r.W - 3*dropdownTextInset - float32(d.fontSize)*0.5
	text = FitText(c, text, d.fontSize, maxW)
	c.Text(text, r.X+dropdownTextInset, textY(r, d.fontSize), d.fontSize, d.textColor)
}

// SelectedIndex returns the selected item index, or -1.
func (d *Dropdown) SelectedIndex() int { return d.selected }

// SelectedItem returns the selected item.
func (d *Dropdown) SelectedItem() (string, bool) {
	if d.selected < 0 || d.selected >= len(d.items) {
		return "", false
	}
	return d.items[d.selected], true
}

// SelectedItemOrEmpty returns the selected item or "".
func (d *Dropdown) SelectedItemOrEmpty() string {
	s, _ := d.SelectedItem()
	return s
}

// SetSelectedIndex selects item i, or clears the selection for -1.
// Other out-of-range values are ignored.
func (d *Dropdown) SetSelectedIndex(i int) {
	if i < -1 || i >= len(d.items) {
		return
	}
	d.selected = i
}

// Changed reports whether the last Update changed the selection.
func (d *Dropdown) Changed() bool { return d.changed }

// IsOpen reports whether the list is shown.
func (d *Dropdown) IsOpen() bool { return d.open }

// Open shows the list.
func (d *Dropdown) Open() { d.open = true }

// Close hides the list.
func (d *Dropdown) Close() { d.open = false }

// Toggle opens a closed dropdown and closes an open one.
func (d *Dropdown) Toggle() { d.open = !d.open }

// HoverIndex returns the index of the item under the pointer, or -1.
func (d *Dropdown) HoverIndex() int { return d.hover }

// HoverItem returns the item under the pointer.
func (d *Dropdown) HoverItem() (string, bool) {
	if d.hover < 0 || d.hover >= len(d.items) {
		return "", false
	}
	return d.items[d.hover], true
}

// Items returns a copy of the items.
func (d *Dropdown) Items() []string {
	return append([]string(nil), d.items...)
}

// ItemCount returns the number of items.
func (d *Dropdown) ItemCount() int { return len(d.items) }

// SetItems replaces the items, clearing the selection and scroll offset.
func (d *Dropdown) SetItems(items []string) {
	d.items = append(d.items[:0], items...)
	d.selected = -1
	d.hover = -1
	d.scroll = 0
	d.wheel = 0
}

// AddItem appends an item.
func (d *Dropdown) AddItem(item string) {
	d.items = append(d.items, item)
}

// RemoveItem removes item i, keeping the selection on the same item.
// Removing the selected item clears the selection. Out-of-range i is ignored.
func (d *Dropdown) RemoveItem(i int) {
	if i < 0 || i >= len(d.items) {
		return
	}
	d.items = append(d.items[:i], d.items[i+1:]...)
	switch {
	case d.selected == i:
		d.selected = -1
	case d.selected > i:
		d.selected--
	}
	d.hover = -1
	d.scroll = min(d.scroll, d.maxScroll())
}

// ClearItems removes all items.
func (d *Dropdown) ClearItems() {
	d.SetItems(nil)
}

// Reset clears the selection and scroll offset and closes the list.
func (d *Dropdown) Reset() {
	d.selected = -1
	d.scroll = 0
	d.wheel = 0
	d.open = false
}

// MaxVisibleItems returns how many items the open list shows at once.
func (d *Dropdown) MaxVisibleItems() int { return d.maxVisible }

// SetMaxVisibleItems sets how many items the open list shows at once.
// Non-positive counts are ignored.
func (d *Dropdown) SetMaxVisibleItems(n int) {
	if n <= 0 {
		return
	}
	d.maxVisible = n
	d.scroll = min(d.scroll, d.maxScroll())
}

// ScrollOffset returns the index of the first visible item.
func (d *Dropdown) ScrollOffset() int { return d.scroll }

// SetScrollOffset sets the first visible item, clamped to the valid range.
func (d *Dropdown) SetScrollOffset(offset int) {
	d.scroll = clampInt(offset, 0, d.maxScroll())
}

// IsEmpty reports whether the dropdown has no items.
func (d *Dropdown) IsEmpty() bool { return len(d.items) == 0 }

// IsScrollable reports whether there are more items than fit in the list.
func (d *Dropdown) IsScrollable() bool { return len(d.items) > d.maxVisible }

// IsScrolled reports whether the list is scrolled past the first item.
func (d *Dropdown) IsScrolled() bool { return d.scroll > 0 }

// Bounds returns the header rectangle.
func (d *Dropdown) Bounds() Rect { return d.bounds }

// SetBounds moves or resizes the header and, with it, every item row.
func (d *Dropdown) SetBounds(r Rect) { d.bounds = r }

// SetColors sets all dropdown colors.
func (d *Dropdown) SetColors(background, border, text, hover uint32) {
	d.backgroundColor = background
	d.borderColor = border
	d.textColor = text
	d.hoverColor = hover
}

// Color accessors.
func (d *Dropdown) BackgroundColor() uint32 { return d.backgroundColor }
func (d *Dropdown) BorderColor() uint32     { return d.borderColor }
func (d *Dropdown) TextColor() uint32       { return d.textColor }
func (d *Dropdown) HoverColor() uint32      { return d.hoverColor }

// FontSize returns the item font size.
func (d *Dropdown) FontSize() int { return d.fontSize }

// SetFontSize sets the item font size. Non-positive sizes are ignored.
func (d *Dropdown) SetFontSize(size int) {
	if size > 0 {
		d.fontSize = size
	}
}

// ApplyStyle copies colors and font size from s.
func (d *Dropdown) ApplyStyle(s Style) {
	d.SetColors(s.BackgroundColor, s.BorderColor, s.TextColor, s.HoverColor)
	d.SetFontSize(s.FontSize)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Choice is a Dropdown over typed options labelled by their String method.
// Items are fixed at construction; use the embedded Dropdown only for
// selection and display.
type Choice[T fmt.Stringer] struct {
	*Dropdown
	options []T
}

// DropdownFromStringers creates a Choice listing options in order.
func DropdownFromStringers[T fmt.Stringer](x, y, width, height float32, options []T) *Choice[T] {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.String()
	}
	return &Choice[T]{
		Dropdown: NewDropdown(x, y, width, height, labels),
		options:  append([]T(nil), options...),
	}
}

// Selected returns the selected option.
func (c *Choice[T]) Selected() (T, bool) {
	var zero T
	i := c.SelectedIndex()
	if i < 0 || i >= len(c.options) {
		return zero, false
	}
	return c.options[i], true
}

// Select selects the first option labelled v.String() and reports whether
// one was found.
func (c *Choice[T]) Select(v T) bool {
	s := v.String()
	for i, o := range c.options {
		if o.String() == s {
			c.SetSelectedIndex(i)
			return true
		}
	}
	return false
}

// Options returns a copy of the options.
func (c *Choice[T]) Options() []T {
	return append([]T(nil), c.options...)
}
