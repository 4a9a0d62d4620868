package vocab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomain_ResolvesIgnoringCase(t *testing.T) {
	v := Default()

	for _, token := range []string{"hydra", "HYDRA", "HyDrA"} {
		m, err := v.Machine.Resolve(token)
		assert.NoError(t, err)
		assert.EqualValues(t, Hydra, m, token)
	}
}

func TestDomain_ResolvesEveryDefaultSpelling(t *testing.T) {
	v := Default()
	for _, d := range []*Domain{v.Machine, v.Color, v.Location, v.Event} {
		for i, s := range d.Spellings() {
			m, err := d.Resolve(s)
			require.NoError(t, err)
			assert.EqualValues(t, i, m, "%s %s", d.Name(), s)
		}
	}
}

func TestDomain_NoPrefixMatch(t *testing.T) {
	v := Default()

	_, err := v.Location.Resolve("city")
	assert.ErrorIs(t, err, ErrUnknownToken)

	_, err = v.Location.Resolve("cityhalls")
	assert.ErrorIs(t, err, ErrUnknownToken)

	_, err = v.Location.Resolve("")
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestDomain_UnknownTokenError(t *testing.T) {
	_, err := Default().Color.Resolve("purple")

	var unknown *UnknownTokenError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, ColorDomain, unknown.Domain)
	assert.Equal(t, "purple", unknown.Token)
	assert.EqualError(t, err, `unrecognized token "purple" for color`)
}

func TestDomain_NoneMeansUnknownColorAndNoEvent(t *testing.T) {
	v := Default()

	m, err := v.Color.Resolve("None")
	assert.NoError(t, err)
	assert.EqualValues(t, UnknownColor, m)

	m, err = v.Event.Resolve("none")
	assert.NoError(t, err)
	assert.EqualValues(t, NoEvent, m)
}

func TestDefault_Sizes(t *testing.T) {
	v := Default()
	assert.Equal(t, 2, v.Machine.Len())
	assert.Equal(t, 4, v.Color.Len())
	assert.Equal(t, 12, v.Location.Len())
	assert.Equal(t, 15, v.Event.Len())
	assert.Equal(t, "skyplatform", v.Location.Spelling(SkyPlatform))
	assert.Equal(t, "restorationspot", v.Event.Spelling(RestorationSpot))
	assert.Equal(t, "", v.Event.Spelling(15))
	assert.Equal(t, "", v.Event.Spelling(-1))
}

func TestNewDomain_RejectsUnresolvableSpellings(t *testing.T) {
	_, err := NewDomain("location")
	assert.Error(t, err)

	_, err = NewDomain("location", "coral", "")
	assert.Error(t, err)

	_, err = NewDomain("location", "coral", "sky platform")
	assert.ErrorContains(t, err, "non-letter")

	_, err = NewDomain("location", "coral", "Coral")
	assert.ErrorContains(t, err, "duplicate")
}

func TestResolveFlag(t *testing.T) {
	yes, err := ResolveFlag("YES")
	assert.NoError(t, err)
	assert.True(t, yes)

	yes, err = ResolveFlag("no")
	assert.NoError(t, err)
	assert.False(t, yes)

	_, err = ResolveFlag("y")
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestVocabulary_With(t *testing.T) {
	v := Default()
	locations := MustDomain(LocationDomain, "coral", "underhouses")

	replaced, err := v.With(locations)
	require.NoError(t, err)
	assert.Same(t, locations, replaced.Location)
	assert.Same(t, v.Machine, replaced.Machine)
	assert.Equal(t, 12, v.Location.Len(), "receiver must be untouched")

	_, err = v.With(MustDomain(FlagDomain, "yes"))
	assert.Error(t, err)

	d, err := v.Domain(FlagDomain)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	_, err = v.Domain("weather")
	assert.Error(t, err)
}
