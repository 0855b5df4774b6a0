// Released under an MIT license. See LICENSE.

package history

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	t.Setenv("CHAIN_HISTORY", filepath.Join(t.TempDir(), "history"))

	require.NoError(t, Load(func(r io.Reader) (int, error) {
		t.Fatal("read called for a missing file")
		return 0, nil
	}))

	require.NoError(t, Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "get a b\n")
	}))

	var got strings.Builder

	require.NoError(t, Load(func(r io.Reader) (int, error) {
		n, err := io.Copy(&got, r)
		return int(n), err
	}))

	require.Equal(t, "get a b\n", got.String())
}
