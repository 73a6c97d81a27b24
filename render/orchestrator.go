package render

import "fmt"

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator runs registered renderers against a surface in priority order
type Orchestrator struct {
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an empty orchestrator
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Len returns the number of registered renderers
func (o *Orchestrator) Len() int {
	return len(o.renderers)
}

// RenderFrame draws one frame: every visible renderer in order, then present
func (o *Orchestrator) RenderFrame(ctx RenderContext, s Surface) error {
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, s)
	}

	if p, ok := s.(Presenter); ok {
		if err := p.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", ctx.FrameNumber, err)
		}
	}
	return nil
}
