package imageio

import "math"

// Stats is a NaN-aware summary of an image's sample buffer. Min, Max and
// Mean are NaN when every sample is null.
type Stats struct {
	Samples int
	Nulls   int
	Min     float64
	Max     float64
	Mean    float64
}

// Driver is the type-erased image handle. Exactly one concrete
// TypedDriver variant is alive behind each instance; the handle owns its
// image data exclusively and outlives the file it was read from.
type Driver interface {
	// Source returns the path the image was read from.
	Source() string
	// Settings returns the settings the driver was constructed with.
	Settings() Settings
	// Format returns the pixel encoding of the underlying container.
	Format() PixelFormat
	// Dims returns the dimensionality of the underlying container.
	Dims() Dimensionality
	// Extents returns the axis extents, fastest-varying axis first.
	Extents() []int
	// Size returns the total sample count.
	Size() int
	// Stats summarizes the sample buffer, skipping null samples.
	Stats() Stats
	// WriteTo serializes the held container to a newly created file.
	WriteTo(path string) error
}

// container is the capability a TypedDriver needs from its image.
type container[T Pixel] interface {
	Size() int
	Extents() []int
	Pixels() []T
}

// TypedDriver is the concrete, fully-typed unit of work: one Settings
// plus one container. It is constructed by the dispatch table and
// immediately upcast to Driver.
type TypedDriver[T Pixel, C container[T]] struct {
	settings Settings
	image    C
}

// NewTypedDriver wraps a settings value and a populated container.
func NewTypedDriver[T Pixel, C container[T]](settings Settings, image C) *TypedDriver[T, C] {
	return &TypedDriver[T, C]{settings: settings, image: image}
}

// Source returns the path the image was read from.
func (d *TypedDriver[T, C]) Source() string {
	return d.settings.Source
}

// Settings returns the settings the driver was constructed with.
func (d *TypedDriver[T, C]) Settings() Settings {
	return d.settings
}

// Format returns the pixel encoding of the underlying container.
func (d *TypedDriver[T, C]) Format() PixelFormat {
	return pixelFormatOf[T]()
}

// Dims returns the dimensionality of the underlying container.
func (d *TypedDriver[T, C]) Dims() Dimensionality {
	return Dimensionality(len(d.image.Extents()))
}

// Extents returns the axis extents, fastest-varying axis first.
func (d *TypedDriver[T, C]) Extents() []int {
	return d.image.Extents()
}

// Size returns the total sample count.
func (d *TypedDriver[T, C]) Size() int {
	return d.image.Size()
}

// Image returns the typed container for callers that know the concrete
// instantiation.
func (d *TypedDriver[T, C]) Image() C {
	return d.image
}

// Stats summarizes the sample buffer, skipping null samples.
func (d *TypedDriver[T, C]) Stats() Stats {
	s := Stats{
		Samples: d.image.Size(),
		Min:     math.NaN(),
		Max:     math.NaN(),
		Mean:    math.NaN(),
	}
	sum := 0.0
	for _, p := range d.image.Pixels() {
		v := float64(p)
		if math.IsNaN(v) {
			s.Nulls++
			continue
		}
		if math.IsNaN(s.Min) || v < s.Min {
			s.Min = v
		}
		if math.IsNaN(s.Max) || v > s.Max {
			s.Max = v
		}
		sum += v
	}
	if valid := s.Samples - s.Nulls; valid > 0 {
		s.Mean = sum / float64(valid)
	}
	return s
}

// WriteTo serializes the held container to a newly created file.
func (d *TypedDriver[T, C]) WriteTo(path string) error {
	return writeImage[T](path, d.image.Extents(), d.image.Pixels())
}
