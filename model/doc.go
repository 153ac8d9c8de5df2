package model

// PointSource is the external collaborator spec.md §1 names but leaves
// undesigned: something that can hand the builder n points of dimension
// d without the core caring whether they came from a local file, an S3
// bucket, or memory. Build reads every point once, in order, during
// construction; sources are not consulted again afterward.
type PointSource interface {
	// Len returns the number of points the source holds.
	Len() (int, error)

	// Dim returns the vector dimension. Every point must have this
	// length; Build rejects a point of another length with a
	// DimensionMismatchError.
	Dim() (int, error)

	// Point returns the vector for original id oid. Implementations may
	// block on I/O; callers should not assume repeated calls are free.
	Point(oid int) ([]float32, error)

	// Close releases any resources (file handles, network clients) the
	// source holds.
	Close() error
}

// AttributeSource is the filter-value counterpart to PointSource: one
// float attribute per original id, consumed once during Build to
// produce the attribute axis (component C).
type AttributeSource interface {
	// Len returns the number of attributes the source holds.
	Len() (int, error)

	// Attribute returns the attribute value for original id oid.
	Attribute(oid int) (float64, error)

	// Close releases any resources the source holds.
	Close() error
}
