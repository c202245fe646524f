package imageio

// Image1D is a single-axis image owning a contiguous sample buffer of
// length X. Any sample may hold NaN to mark it missing.
type Image1D[T Pixel] struct {
	X   int
	Pix []T
}

// NewImage1D allocates a 1-D image. The buffer is allocated exactly once,
// before any read or write touches it.
func NewImage1D[T Pixel](x int) Image1D[T] {
	return Image1D[T]{X: x, Pix: make([]T, x)}
}

// Size returns the total sample count.
func (img Image1D[T]) Size() int {
	return img.X
}

// Extents returns the axis extents, fastest-varying axis first.
func (img Image1D[T]) Extents() []int {
	return []int{img.X}
}

// Pixels returns the backing sample buffer.
func (img Image1D[T]) Pixels() []T {
	return img.Pix
}

// At returns the sample at index x.
func (img Image1D[T]) At(x int) T {
	return img.Pix[x]
}

// Set stores a sample at index x.
func (img Image1D[T]) Set(x int, v T) {
	img.Pix[x] = v
}

// Image2D is a two-axis image owning a contiguous row-major buffer of
// length X*Y. Axis order is preserved from the file's own axis ordering:
// X is the fastest-varying axis.
type Image2D[T Pixel] struct {
	X, Y int
	Pix  []T
}

// NewImage2D allocates a 2-D image.
func NewImage2D[T Pixel](x, y int) Image2D[T] {
	return Image2D[T]{X: x, Y: y, Pix: make([]T, x*y)}
}

// Size returns the total sample count.
func (img Image2D[T]) Size() int {
	return img.X * img.Y
}

// Extents returns the axis extents, fastest-varying axis first.
func (img Image2D[T]) Extents() []int {
	return []int{img.X, img.Y}
}

// Pixels returns the backing sample buffer.
func (img Image2D[T]) Pixels() []T {
	return img.Pix
}

// At returns the sample at (x, y).
func (img Image2D[T]) At(x, y int) T {
	return img.Pix[y*img.X+x]
}

// Set stores a sample at (x, y).
func (img Image2D[T]) Set(x, y int, v T) {
	img.Pix[y*img.X+x] = v
}
