// Package config loads theme files: YAML documents that pick a built-in base
// theme and override palette colours and spacing scales.
package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/glintkit/glint/internal/theme"
	glinterrors "github.com/glintkit/glint/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ColourOverride replaces a palette slot's base colour. Both tones are
// optional; an empty tone keeps the base theme's value.
type ColourOverride struct {
	Light string `yaml:"light" validate:"omitempty,hex_colour"`
	Dark  string `yaml:"dark" validate:"omitempty,hex_colour"`
}

// SpacingOverride replaces the spacing scales. Each list carries up to six
// cell counts, ordered none, xs, sm, md, lg, xl.
type SpacingOverride struct {
	Padding []int `yaml:"padding" validate:"omitempty,max=6,dive,gte=0,lte=12"`
	Margin  []int `yaml:"margin" validate:"omitempty,max=6,dive,gte=0,lte=12"`
}

// ThemeFile is the YAML document describing a custom theme.
type ThemeFile struct {
	Name    string                    `yaml:"name" validate:"required,theme_name"`
	Base    string                    `yaml:"base" validate:"omitempty,oneof=default dark"`
	Palette map[string]ColourOverride `yaml:"palette" validate:"omitempty,dive"`
	Spacing SpacingOverride           `yaml:"spacing"`
}

// LoadTheme reads, validates, and materialises a theme file.
func LoadTheme(path string) (theme.Theme, error) {
	file, err := ParseThemeFile(path)
	if err != nil {
		return theme.Theme{}, err
	}
	return BuildTheme(file)
}

// ParseThemeFile loads a theme file from disk and validates it.
func ParseThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, glinterrors.NewParseError(path, 0, err)
	}

	var file ThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, glinterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateThemeFile(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// ValidateThemeFile checks field constraints and palette slot names.
func ValidateThemeFile(file *ThemeFile) error {
	if err := validatorInstance().Struct(file); err != nil {
		return translateValidatorError(err)
	}

	slots := paletteSlotNames()
	for name := range file.Palette {
		if _, ok := slots[name]; !ok {
			return glinterrors.NewValidationError(
				fmt.Sprintf("palette.%s", name),
				fmt.Sprintf("unknown palette slot (declared: %s)", slotNameList()),
				nil,
			)
		}
	}
	return nil
}

// BuildTheme materialises a validated theme file into a Theme, starting from
// the declared base and regenerating typography so overridden palette
// colours propagate.
func BuildTheme(file *ThemeFile) (theme.Theme, error) {
	base := theme.DefaultTheme()
	if file.Base == "dark" {
		base = theme.DarkTheme()
	}
	base.Name = file.Name

	for name, override := range file.Palette {
		slot := paletteSlot(&base.Palette, name)
		if slot == nil {
			return theme.Theme{}, glinterrors.NewValidationError(
				fmt.Sprintf("palette.%s", name), "unknown palette slot", nil)
		}
		if override.Light != "" {
			slot.Base.Light = override.Light
		}
		if override.Dark != "" {
			slot.Base.Dark = override.Dark
		}
	}

	applySpacing(&base, file.Spacing)
	base.Typography = theme.RegenerateTypography(base.Palette)
	return base.Normalize(), nil
}

func applySpacing(t *theme.Theme, override SpacingOverride) {
	for i, value := range override.Padding {
		if i < len(t.Spacing.Padding) {
			t.Spacing.Padding[i] = value
		}
	}
	for i, value := range override.Margin {
		if i < len(t.Spacing.Margin) {
			t.Spacing.Margin[i] = value
		}
	}
}

func paletteSlot(p *theme.Palette, name string) *theme.ColourSet {
	switch name {
	case "primary":
		return &p.Primary
	case "secondary":
		return &p.Secondary
	case "surface":
		return &p.Surface
	case "success":
		return &p.Success
	case "warning":
		return &p.Warning
	case "danger":
		return &p.Danger
	case "info":
		return &p.Info
	case "neutral":
		return &p.Neutral
	default:
		return nil
	}
}

func paletteSlotNames() map[string]struct{} {
	return map[string]struct{}{
		"primary": {}, "secondary": {}, "surface": {}, "success": {},
		"warning": {}, "danger": {}, "info": {}, "neutral": {},
	}
}

func slotNameList() string {
	names := lo.Keys(paletteSlotNames())
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
