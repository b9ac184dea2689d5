package variable

// handle is the COW-shared storage behind one or more Variables. Dims,
// strides, and offset are never part of handle: two Variables can share a
// handle while disagreeing about shape (a cheap reshape, or a relabelling)
// because handle's flat buffer is addressed purely by position.
type handle struct {
    refs int
    c    concept
}

func newHandle(c concept) *handle {
    return &handle{refs: 1, c: c}
}

// retain returns h after recording one more Variable referencing it.
func (h *handle) retain() *handle {
    h.refs++
    return h
}

// release records that one fewer Variable references h.
func (h *handle) release() {
    if h.refs > 0 {
        h.refs--
    }
}

// unique clones h's storage into a fresh, privately-owned handle if more
// than one Variable currently references h. The caller's old handle has its
// refcount decremented to reflect the caller dropping its reference to it.
func (h *handle) unique() *handle {
    if h.refs <= 1 {
        return h
    }
    h.release()
    return newHandle(h.c.Clone())
}
