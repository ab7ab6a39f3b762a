package reveal

import "image"

// VisibleClass is added to an element once it has been revealed.
const VisibleClass = "is-visible"

// Element is a block of page content tagged for scroll reveal. Bounds are
// in page coordinates, before scrolling.
type Element struct {
	ID      string
	Bounds  image.Rectangle
	classes map[string]struct{}
}

func NewElement(id string, bounds image.Rectangle, classes ...string) *Element {
	el := &Element{ID: id, Bounds: bounds, classes: map[string]struct{}{}}
	for _, c := range classes {
		el.classes[c] = struct{}{}
	}
	return el
}

func (e *Element) AddClass(c string) { e.classes[c] = struct{}{} }

func (e *Element) HasClass(c string) bool {
	_, ok := e.classes[c]
	return ok
}

// Visible reports whether the element has been revealed.
func (e *Element) Visible() bool { return e.HasClass(VisibleClass) }

// Observer reveals elements the first time they intersect the viewport by
// at least Threshold of their own area.
type Observer struct {
	Threshold float64

	// OnReveal, if set, is called once per revealed element.
	OnReveal func(*Element)

	observed []*Element
}

func NewObserver(threshold float64) *Observer {
	return &Observer{Threshold: threshold}
}

// Observe starts watching el. Already-revealed or already-watched
// elements are ignored.
func (o *Observer) Observe(el *Element) {
	if el.Visible() {
		return
	}
	for _, e := range o.observed {
		if e == el {
			return
		}
	}
	o.observed = append(o.observed, el)
}

func (o *Observer) Unobserve(el *Element) {
	for i, e := range o.observed {
		if e == el {
			o.observed = append(o.observed[:i], o.observed[i+1:]...)
			return
		}
	}
}

// Observed reports how many elements are still being watched.
func (o *Observer) Observed() int { return len(o.observed) }

// Check compares every watched element against viewport, in page
// coordinates. Each element that qualifies gets VisibleClass and is no
// longer watched.
func (o *Observer) Check(viewport image.Rectangle) {
	var revealed []*Element
	for _, el := range o.observed {
		ratio, intersecting := IntersectionRatio(el.Bounds, viewport)
		if intersecting && ratio >= o.Threshold {
			revealed = append(revealed, el)
		}
	}
	for _, el := range revealed {
		el.AddClass(VisibleClass)
		o.Unobserve(el)
		if o.OnReveal != nil {
			o.OnReveal(el)
		}
	}
}

// IntersectionRatio is the share of target's area inside viewport.
// Empty targets count as intersecting when they lie inside viewport.
func IntersectionRatio(target, viewport image.Rectangle) (float64, bool) {
	if target.Empty() {
		in := target.Min.In(viewport)
		if in {
			return 1, true
		}
		return 0, false
	}
	inter := target.Intersect(viewport)
	if inter.Empty() {
		return 0, false
	}
	area := func(r image.Rectangle) float64 { return float64(r.Dx()) * float64(r.Dy()) }
	return area(inter) / area(target), true
}
