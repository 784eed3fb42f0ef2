package thoth

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/s0up4200/thoth/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "0.6.0", want: "0.6.0"},
		{input: "v0.6.0", want: "0.6.0"},
		{input: "060", want: "0.6.0"},
		{input: " 0.9.0 ", want: "0.9.0"},
		{input: "latest", wantErr: true},
		{input: "0.6", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeVersion(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupportedVersions(t *testing.T) {
	assert.Equal(t, []string{"0.4.2", "0.5.0", "0.6.0", "0.8.0", "0.8.4", "0.9.0"}, SupportedVersions())
	assert.True(t, IsSupported("v0.8.4"))
	assert.False(t, IsSupported("0.7.0"))
}

func TestNewAPI(t *testing.T) {
	exec := graphql.NewExecutor(&stubTransport{}, zerolog.Nop())

	tests := []struct {
		version string
		want    API
	}{
		{version: "0.4.2", want: &Thoth042{}},
		{version: "050", want: &Thoth050{}},
		{version: "v0.6.0", want: &Thoth060{}},
		{version: "0.8.0", want: &Thoth080{}},
		{version: "0.8.4", want: &Thoth084{}},
		{version: "0.9.0", want: &Thoth090{}},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			api, err := NewAPI(tt.version, exec, zerolog.Nop())
			require.NoError(t, err)
			assert.IsType(t, tt.want, api)
		})
	}

	_, err := NewAPI("0.7.0", exec, zerolog.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestSchemaDifferences(t *testing.T) {
	exec := graphql.NewExecutor(&stubTransport{}, zerolog.Nop())
	bind := func(version string) API {
		api, err := NewAPI(version, exec, zerolog.Nop())
		require.NoError(t, err)
		return api
	}

	v042, v060, v080, v090 := bind("0.4.2"), bind("0.6.0"), bind("0.8.0"), bind("0.9.0")

	works042, _ := v042.Query("works")
	works080, _ := v080.Query("works")
	assert.Contains(t, works042.Fields, "width")
	assert.NotContains(t, works080.Fields, "width")
	assert.Contains(t, works080.Fields, "pageInterval")
	assert.True(t, works042.Accepts("workStatus"))
	assert.True(t, works080.Accepts("workStatuses"))

	contributions042, _ := v042.Query("contributions")
	contributions060, _ := v060.Query("contributions")
	assert.Contains(t, contributions042.Fields, "institution")
	assert.NotContains(t, contributions060.Fields, "institution")
	assert.Contains(t, contributions060.Fields, affiliationSelection)

	assert.True(t, v042.Supports("createFunder"))
	assert.False(t, v060.Supports("createFunder"))
	assert.True(t, v060.Supports("createAffiliation"))
	assert.False(t, v060.Supports("createLocation"))
	assert.True(t, v080.Supports("updateWork"))
	assert.False(t, v080.Supports("createReference"))
	assert.True(t, v090.Supports("referenceCount"))

	publication080, _ := v080.Mutation("createPublication")
	assert.True(t, publication080.Has("widthMm"))
	assert.False(t, publication080.Has("publicationUrl"))

	// Tables of older versions are untouched by later derivations
	works042Again, _ := bind("0.4.2").Query("works")
	assert.Equal(t, works042.Fields, works042Again.Fields)
	assert.NotContains(t, v042.Queries(), "locations")
	assert.Contains(t, v090.Queries(), "locations")
}
