package dimensions

// NewUnchecked behaves like [New], but permits zero-length sizes (an axis
// with no elements) and an empty sizes slice (the 0-dimensional, scalar
// case), neither of which New accepts.
//
// Callers that rely on this relaxed construction must not call Index or
// Offsets on a D with zero Size - row-major index arithmetic is undefined
// for an empty matrix, and an axis of length zero makes every offset modulo
// that axis a division by zero. Size, Dimensionality, Length, Lengths, and
// Contains all remain well-defined.
func NewUnchecked(sizes ...int) D {
    return DN(append([]int{}, sizes...))
}
