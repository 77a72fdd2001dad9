package domain

import "fmt"

// TimestampSelector picks which timestamp of a file drives its destination.
type TimestampSelector int

const (
	Created TimestampSelector = iota
	Modified
	Accessed
	// Taken is the EXIF DateTimeOriginal of a photo.
	Taken
)

func ParseTimestampSelector(value string) (TimestampSelector, error) {
	switch value {
	case "c", "":
		return Created, nil
	case "m":
		return Modified, nil
	case "a":
		return Accessed, nil
	case "e":
		return Taken, nil
	default:
		return Created, fmt.Errorf("unknown date type %q, use one of c, m, a, e", value)
	}
}

func (s TimestampSelector) String() string {
	switch s {
	case Created:
		return "creation"
	case Modified:
		return "modification"
	case Accessed:
		return "access"
	case Taken:
		return "exif"
	default:
		return fmt.Sprintf("selector(%d)", int(s))
	}
}
