package urn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	u, err := Parse("urn:li:fs_miniProfile:ACoAAB12cdE")
	require.NoError(t, err)
	require.Equal(t, "fs_miniProfile", u.Namespace)
	require.Equal(t, "ACoAAB12cdE", u.ID)
}

func TestParseExtraComponents(t *testing.T) {
	u, err := Parse("urn:li:fs_updateV2:(urn:li:activity:123,COMPANY_FEED)")
	require.NoError(t, err)
	require.Equal(t, "fs_updateV2", u.Namespace)
	require.Equal(t, "(urn", u.ID)
}

func TestParseTooFewComponents(t *testing.T) {
	for _, raw := range []string{"", "urn", "urn:li", "urn:li:member"} {
		_, err := Parse(raw)
		require.ErrorIs(t, err, ErrInvalid, "raw: %q", raw)
	}
}

func TestString(t *testing.T) {
	u, err := Parse("urn:custom:member:12345:extra")
	require.NoError(t, err)
	require.Equal(t, "urn:li:member:12345", u.String())
}

func TestIDOf(t *testing.T) {
	require.Equal(t, "12345", IDOf("urn:li:member:12345"))
	require.Equal(t, "", IDOf("not-a-urn"))
}
