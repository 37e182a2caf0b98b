package alert

import (
	"fmt"
	"strings"
)

// Category is a predefined semantic style.
type Category int

const (
	CategorySuccess Category = iota
	CategoryError
	CategoryNotice
	CategoryWarning
	CategoryInfo
	CategoryEdit
	CategoryWait
)

var categoryNames = [...]string{"success", "error", "notice", "warning", "info", "edit", "wait"}

var categoryAccents = [...]uint32{
	0x22B573,
	0xC1272D,
	0x727375,
	0xFFD110,
	0x2866BF,
	0xA429FF,
	0xD62DA5,
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategorySuccess, CategoryError, CategoryNotice, CategoryWarning,
		CategoryInfo, CategoryEdit, CategoryWait,
	}
}

func (c Category) valid() bool {
	return c >= CategorySuccess && c <= CategoryWait
}

func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory is case-insensitive.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return CategorySuccess, fmt.Errorf("unknown category %q (want one of %s)", s, strings.Join(categoryNames[:], ", "))
}

// AccentColor returns the category's default accent as "#RRGGBB".
func AccentColor(c Category) string {
	if !c.valid() {
		c = CategorySuccess
	}
	return fmt.Sprintf("#%06X", categoryAccents[c])
}

// AppearanceFor returns the default appearance styled for c.
func AppearanceFor(c Category) Appearance {
	a := DefaultAppearance()
	a.Category = c
	return a
}
