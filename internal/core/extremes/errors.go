package extremes

import "errors"

var (
	// ErrUnknownSeries is returned by summary queries naming a series that
	// was not part of the Build input.
	ErrUnknownSeries = errors.New("unknown series")

	// ErrNonUniqueExtreme is returned by UniqueExtreme when the extreme value
	// occurs at more than one point.
	ErrNonUniqueExtreme = errors.New("extreme value is not unique")

	// ErrNoExtreme is returned by UniqueExtreme when the series has no valued points.
	ErrNoExtreme = errors.New("series has no extreme")
)
