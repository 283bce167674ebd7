package tabs

import (
	"fmt"

	"coinscope/internal/app/errors"
	"coinscope/internal/config/logger"
)

// Host lazily builds one page per tab and keeps it for the screen's lifetime
type Host interface {
	// Activate returns the page of a tab, building it on first use; created reports a new page
	Activate(id ID) (page Page, created bool, err error)
	// Page returns the page of an already activated tab
	Page(id ID) (Page, bool)
	// CurrentPages returns a snapshot of the cache
	CurrentPages() map[ID]Page
	// Release closes every cached page; the host is unusable afterwards
	Release()
}

type host struct {
	registry Registry
	pages    map[ID]Page
	released bool
	log      logger.Logger
}

// NewHost creates a page host for the registry
func NewHost(registry Registry, log logger.Logger) Host {
	return &host{
		registry: registry,
		pages:    make(map[ID]Page, registry.Len()),
		log:      log,
	}
}

func (h *host) Activate(id ID) (Page, bool, error) {
	if h.released {
		return nil, false, fmt.Errorf("%w: activate '%s'", errors.ErrHostReleased, id)
	}

	if page, ok := h.pages[id]; ok {
		return page, false, nil
	}

	descriptor, err := h.registry.Lookup(id)
	if err != nil {
		return nil, false, err
	}

	page := descriptor.Factory()
	h.pages[id] = page

	h.log.Debug().Msgf("Created page for tab '%s'", id)

	return page, true, nil
}

func (h *host) Page(id ID) (Page, bool) {
	page, ok := h.pages[id]
	return page, ok
}

func (h *host) CurrentPages() map[ID]Page {
	out := make(map[ID]Page, len(h.pages))
	for id, page := range h.pages {
		out[id] = page
	}

	return out
}

func (h *host) Release() {
	if h.released {
		return
	}

	h.released = true

	for _, d := range h.registry.Tabs() {
		page, ok := h.pages[d.ID]
		if !ok {
			continue
		}

		page.Close()
		delete(h.pages, d.ID)
	}

	h.log.Debug().Msg("Released all pages")
}
