package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/glintkit/glint/internal/config"
	"github.com/glintkit/glint/internal/theme"
)

// resolveTheme picks the theme the flags ask for. A theme file wins over a
// built-in name.
func resolveTheme(flags *rootFlags) (theme.Theme, error) {
	if strings.TrimSpace(flags.themeFile) != "" {
		return config.LoadTheme(flags.themeFile)
	}

	builtins := theme.BuiltinThemes()
	selected, ok := builtins[flags.themeName]
	if !ok {
		names := lo.Keys(builtins)
		sort.Strings(names)
		return theme.Theme{}, fmt.Errorf("unknown theme %q (built-in themes: %s)", flags.themeName, strings.Join(names, ", "))
	}
	return selected, nil
}
