package entity

// Size is the closed set of pizza sizes. Every pizza on the menu must
// carry a price for all three.
type Size string

const (
	SizeRegular Size = "Regular"
	SizeMedium  Size = "Medium"
	SizeLarge   Size = "Large"
)

// Sizes lists all sizes in ascending order.
var Sizes = []Size{SizeRegular, SizeMedium, SizeLarge}

// ParseSize maps wire input to a Size. Empty input is ErrMissingSize;
// anything else outside the closed set is an InvalidSizeError.
func ParseSize(s string) (Size, error) {
	switch Size(s) {
	case SizeRegular, SizeMedium, SizeLarge:
		return Size(s), nil
	case "":
		return "", ErrMissingSize
	default:
		return "", &InvalidSizeError{Size: s}
	}
}
