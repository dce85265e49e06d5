package npy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeNPZ stores members in a zip archive, deflating all but the first.
func writeNPZ(t *testing.T, members map[string][]byte, order ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arrays.npz")
	out, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(out)
	for i, name := range order {
		method := zip.Deflate
		if i == 0 {
			method = zip.Store
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: method})
		require.NoError(t, err)
		_, err = w.Write(members[name])
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())
	return path
}

func TestArchive(t *testing.T) {
	members := map[string][]byte{
		"weights.npy": rawNPY(matrixDict, floatWords(matrixValues...)...),
		"ids.npy":     rawNPY("{'descr': '<i8', 'fortran_order': False, 'shape': (3,), }", intWords(7, 8, 9)...),
		"README.txt":  []byte("not an array"),
	}
	path := writeNPZ(t, members, "weights.npy", "ids.npy", "README.txt")

	a, err := OpenArchive(path)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, path, a.Path())
	assert.Equal(t, []string{"ids", "weights"}, a.Names())

	weights, err := a.Open("weights")
	require.NoError(t, err)
	table, err := weights.Table()
	require.NoError(t, err)
	assert.Equal(t, -7.0, table.At(1, 2))

	ids, err := a.Open("ids.npy")
	require.NoError(t, err)
	values, err := ids.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 8, 9}, values)
	assert.Equal(t, path+":ids.npy", ids.Path())

	_, err = a.Open("README")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArchiveBadMember(t *testing.T) {
	members := map[string][]byte{
		"bad.npy": []byte("garbage that is not an npy payload"),
	}
	path := writeNPZ(t, members, "bad.npy")

	a, err := OpenArchive(path)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Open("bad")
	assert.ErrorIs(t, err, ErrNotNPY)
}

func TestArchiveClosed(t *testing.T) {
	path := writeNPZ(t, map[string][]byte{"x.npy": rawNPY(matrixDict, floatWords(matrixValues...)...)}, "x.npy")

	a, err := OpenArchive(path)
	require.NoError(t, err)

	x, err := a.Open("x")
	require.NoError(t, err)
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	_, err = a.Open("x")
	assert.ErrorIs(t, err, ErrClosed)

	// Members are held in memory.
	values, err := x.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, matrixValues, values)
}

func TestOpenArchiveNotZip(t *testing.T) {
	path := writeTemp(t, "plain.npz", rawNPY(matrixDict))

	_, err := OpenArchive(path)
	assert.Error(t, err)
}

func TestArchiveMemberSizeLimit(t *testing.T) {
	member := rawNPY(matrixDict, floatWords(matrixValues...)...)
	path := writeNPZ(t, map[string][]byte{"big.npy": member, "small.npy": member}, "big.npy", "small.npy")

	a, err := OpenArchive(path, WithMaxDecodedSize(int64(len(member)-1)))
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Open("big")
	assert.ErrorIs(t, err, ErrTooLarge)
	_, err = a.Open("small")
	assert.ErrorIs(t, err, ErrTooLarge)

	b, err := OpenArchive(path, WithMaxDecodedSize(int64(len(member))))
	require.NoError(t, err)
	defer b.Close()

	f, err := b.Open("big")
	require.NoError(t, err)
	values, err := f.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, matrixValues, values)
}
