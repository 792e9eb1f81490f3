package rule_test

import (
	"testing"

	"github.com/katalvlaran/collapse/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_Simple(t *testing.T) {
	a := rule.Simple{Token: "Sand"}
	b := rule.Simple{Token: "Sand"}
	c := rule.Simple{Token: "Grass"}

	assert.True(t, rule.Match(a, b))
	assert.True(t, rule.Match(b, a))
	assert.False(t, rule.Match(a, c))
}

func TestMatch_Negated(t *testing.T) {
	reef := rule.Simple{Token: "Reef"}
	notReef := rule.Negated{Inner: reef}

	assert.False(t, rule.Match(notReef, reef))
	assert.False(t, rule.Match(reef, notReef))
	assert.True(t, rule.Match(notReef, rule.Simple{Token: "Sand"}))
}

func TestMatch_DirectionalCheckerboard(t *testing.T) {
	w := rule.Directional{Origin: rule.Simple{Token: "W"}, Destination: rule.Simple{Token: "B"}}
	b := rule.Directional{Origin: rule.Simple{Token: "B"}, Destination: rule.Simple{Token: "W"}}

	require.True(t, rule.Match(w, b))
	require.True(t, rule.Match(b, w))
}

func TestMatch_DirectionalNeverMatchesItself(t *testing.T) {
	d := rule.Directional{Origin: rule.Simple{Token: "A"}, Destination: rule.Simple{Token: "A"}}
	assert.False(t, rule.Match(d, d))

	w := rule.Directional{Origin: rule.Simple{Token: "W"}, Destination: rule.Simple{Token: "B"}}
	assert.False(t, rule.Match(w, w))
}

func TestMatch_Compound(t *testing.T) {
	ab := rule.Compound{Parts: []rule.Rule{rule.Simple{Token: "A"}, rule.Simple{Token: "B"}}}
	ba := rule.Compound{Parts: []rule.Rule{rule.Simple{Token: "B"}, rule.Simple{Token: "A"}}}

	// Position-sensitive: A+B does not match B+A.
	assert.False(t, rule.Match(ab, ba))
	assert.True(t, rule.Match(ab, ab))
}

func TestMatch_Choice(t *testing.T) {
	choice := rule.Choice{Options: []rule.Rule{rule.Simple{Token: "Sand"}, rule.Simple{Token: "Grass"}}}

	assert.True(t, rule.Match(choice, rule.Simple{Token: "Sand"}))
	assert.True(t, rule.Match(rule.Simple{Token: "Grass"}, choice))
	assert.False(t, rule.Match(choice, rule.Simple{Token: "Forest"}))
}

func TestMatch_CrossKindIsFalse(t *testing.T) {
	simple := rule.Simple{Token: "A"}
	compound := rule.Compound{Parts: []rule.Rule{rule.Simple{Token: "A"}}}

	assert.False(t, rule.Match(simple, compound))
}

func TestMatchSymmetry(t *testing.T) {
	cases := []struct{ a, b rule.Rule }{
		{rule.Simple{Token: "A"}, rule.Simple{Token: "A"}},
		{rule.Negated{Inner: rule.Simple{Token: "A"}}, rule.Simple{Token: "B"}},
		{rule.Choice{Options: []rule.Rule{rule.Simple{Token: "A"}, rule.Simple{Token: "B"}}}, rule.Simple{Token: "B"}},
		{rule.Compound{Parts: []rule.Rule{rule.Simple{Token: "A"}, rule.Simple{Token: "B"}}},
			rule.Compound{Parts: []rule.Rule{rule.Simple{Token: "A"}, rule.Simple{Token: "B"}}}},
	}
	for _, c := range cases {
		assert.Equal(t, rule.Match(c.a, c.b), rule.Match(c.b, c.a))
	}
}

func TestMatchSymmetry_Directional(t *testing.T) {
	xy := rule.Directional{Origin: rule.Simple{Token: "x"}, Destination: rule.Simple{Token: "y"}}
	uv := rule.Directional{Origin: rule.Simple{Token: "u"}, Destination: rule.Simple{Token: "v"}}
	yx := rule.Directional{Origin: rule.Simple{Token: "y"}, Destination: rule.Simple{Token: "x"}}
	vu := rule.Directional{Origin: rule.Simple{Token: "v"}, Destination: rule.Simple{Token: "u"}}

	// match([x>y],[u>v]) == match([y>x],[v>u])
	assert.Equal(t, rule.Match(xy, uv), rule.Match(yx, vu))
}
