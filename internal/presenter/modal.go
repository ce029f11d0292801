package presenter

import (
	"sync"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
)

// ModalView is what the modal surface currently renders.
type ModalView struct {
	Open    bool                `json:"open"`
	Kind    model.OverlayKind   `json:"kind"`
	Content *model.ModalContent `json:"content,omitempty"`
}

// ModalPresenter renders the store's overlay state, with an optional
// controlled mode: explicitly supplied content takes precedence over the
// store, so the same surface can be reused outside the global store.
type ModalPresenter struct {
	store *store.Store

	mu       sync.RWMutex
	override *model.ModalContent
}

func NewModalPresenter(st *store.Store) *ModalPresenter {
	return &ModalPresenter{store: st}
}

// SetOverride switches to controlled mode with the given content.
func (p *ModalPresenter) SetOverride(content model.ModalContent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := content
	p.override = &c
}

// ClearOverride returns the presenter to store-driven mode.
func (p *ModalPresenter) ClearOverride() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.override = nil
}

// View resolves the current render state. Override beats store; otherwise
// the store's overlay decides, and a closed overlay renders nothing.
func (p *ModalPresenter) View() ModalView {
	p.mu.RLock()
	override := p.override
	p.mu.RUnlock()

	if override != nil {
		c := *override
		return ModalView{Open: true, Kind: model.OverlayModal, Content: &c}
	}

	snap := p.store.State()
	switch snap.Overlay.Kind {
	case model.OverlayModal:
		return ModalView{Open: true, Kind: model.OverlayModal, Content: snap.Overlay.Modal}
	case model.OverlayIdleWarning:
		return ModalView{Open: true, Kind: model.OverlayIdleWarning}
	default:
		return ModalView{Open: false, Kind: model.OverlayNone}
	}
}
