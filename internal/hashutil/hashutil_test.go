package hashutil_test

import (
	"testing"

	"dutchghostwriter/backend/internal/hashutil"

	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	key := hashutil.Fingerprint("I eat bread.", "Ik eet brood.")
	require.Len(t, key, 64)
	require.Equal(t, key, hashutil.Fingerprint("I eat bread.", "Ik eet brood."))
}

func TestFingerprint_KeepsWhitespace(t *testing.T) {
	base := hashutil.Fingerprint("I eat bread.", "Ik eet brood.")
	require.NotEqual(t, base, hashutil.Fingerprint("I eat bread.", "Ik eet brood.   "))
	require.NotEqual(t, base, hashutil.Fingerprint(" I eat bread.", "Ik eet brood."))
}

func TestFingerprint_PartBoundaries(t *testing.T) {
	require.NotEqual(t, hashutil.Fingerprint("ab", "c"), hashutil.Fingerprint("a", "bc"))
	require.NotEqual(t, hashutil.Fingerprint("a\x00", "b"), hashutil.Fingerprint("a", "\x00b"))
	require.NotEqual(t, hashutil.Fingerprint("", ""), hashutil.Fingerprint(""))
}
