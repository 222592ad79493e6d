package lpsolve

// #include <stdlib.h>
import "C"

import (
	"context"
	"sync"
	"unsafe"
)

// This file works around the garbage collector to let a Go context.Context
// survive a round-trip through a C callback handle: lp_solve's
// put_abortfunc takes an opaque void* it hands back unchanged on every
// abort-check call, so we store the context behind a malloc'd token instead
// of passing a Go pointer directly across the cgo boundary.

var (
	contextsMu sync.Mutex
	contexts   = make(map[unsafe.Pointer]context.Context)
)

func saveContext(ctx context.Context) unsafe.Pointer {
	contextsMu.Lock()
	defer contextsMu.Unlock()

	p := C.malloc(1)
	if p == nil {
		panic("lpsolve: could not allocate memory for cgo pointer tracking")
	}
	contexts[p] = ctx
	return p
}

func loadContext(ptr unsafe.Pointer) context.Context {
	contextsMu.Lock()
	defer contextsMu.Unlock()
	return contexts[ptr]
}

func dropContext(ptr unsafe.Pointer) {
	contextsMu.Lock()
	defer contextsMu.Unlock()
	delete(contexts, ptr)
	C.free(ptr)
}
