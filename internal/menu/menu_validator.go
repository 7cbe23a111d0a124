package menu

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func ValidateImageExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedImageExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}

var ErrInvalidDish = errors.New("invalid menu item")

// ValidateDish checks an admin form payload before it reaches the backend.
func ValidateDish(in DishInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDish)
	}
	if !IsCategory(in.Category) {
		return fmt.Errorf("%w: category is not valid", ErrInvalidDish)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidDish)
	}
	if strings.TrimSpace(in.Quantity) == "" {
		return fmt.Errorf("%w: quantity is required", ErrInvalidDish)
	}
	if in.SpiceLevel < 1 || in.SpiceLevel > 5 {
		return fmt.Errorf("%w: spice level must be between 1 and 5", ErrInvalidDish)
	}
	return nil
}
