package upload

import (
	"doclib/internal/core/domain"
)

// CancelUpload aborts the running transfer, waits for it to stop and deletes any uncommitted object.
// The pipeline is idle afterwards.
func (p *Pipeline) CancelUpload() {
	p.mu.Lock()
	t := p.current
	if t != nil && p.state.Status == domain.UploadStatusUploading {
		t.cancelled = true
		t.cancel()
	}
	p.mu.Unlock()

	if t != nil {
		<-t.done
	}

	p.mu.Lock()
	if p.current != t {
		// a new upload took over and already discarded what t left behind
		p.mu.Unlock()
		return
	}
	slot := p.state.Slot()
	if p.committed {
		slot = domain.UploadSlot{}
	}
	p.state = domain.ProvisionalUpload{Status: domain.UploadStatusIdle}
	p.current = nil
	p.committed = false
	p.mu.Unlock()

	if !slot.IsZero() {
		p.discard(slot)
	}
}

// Reset cancels like CancelUpload and refuses any further upload
func (p *Pipeline) Reset() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.CancelUpload()
}
