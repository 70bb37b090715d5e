package inventory

import "sync/atomic"

type handlerWrapper func(*Inventory, Handler) Handler

var inventoryHandlerWrap atomic.Value

func init() {
	inventoryHandlerWrap.Store(handlerWrapper(func(_ *Inventory, h Handler) Handler {
		return h
	}))
}

// SetHandlerWrap installs a function that may substitute an alternate Handler
// each time Inventory.SetItem consults the inventory's handler, e.g. so a plugin-free deployment can
// still log every slot mutation across every chest/crafting/armor/main
// inventory in the server without each call site knowing about it.
func SetHandlerWrap(w func(*Inventory, Handler) Handler) {
	if w == nil {
		inventoryHandlerWrap.Store(handlerWrapper(func(_ *Inventory, h Handler) Handler {
			return h
		}))
		return
	}
	inventoryHandlerWrap.Store(handlerWrapper(w))
}

func wrapInventoryHandler(inv *Inventory, h Handler) Handler {
	return inventoryHandlerWrap.Load().(handlerWrapper)(inv, h)
}
