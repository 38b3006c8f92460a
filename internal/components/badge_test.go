package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeRendersText(t *testing.T) {
	t.Parallel()

	assert.Contains(t, NewBadge("v1.0.0").View(), "v1.0.0")
}

func TestBadgeVariantsResolveDistinctFragments(t *testing.T) {
	t.Parallel()

	seen := map[string]BadgeVariant{}
	for variant, name := range badgeVariantNames {
		resolved := badgeScheme.MustResolve(map[string]string{"tone": name}, "")
		if prior, dup := seen[resolved]; dup {
			t.Fatalf("variants %v and %v resolve to the same fragment %q", prior, variant, resolved)
		}
		seen[resolved] = variant
	}
}

func TestBadgeOverrideResolvesLast(t *testing.T) {
	t.Parallel()

	resolved := badgeScheme.MustResolve(map[string]string{"tone": "primary"}, "px=lg")
	assert.True(t, strings.HasSuffix(resolved, "px=lg"))
}

func TestBadgeConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BadgeSuccess, SuccessBadge("ok").variant)
	assert.Equal(t, BadgeError, ErrorBadge("bad").variant)
	assert.Equal(t, BadgeInfo, InfoBadge("fyi").variant)
}
