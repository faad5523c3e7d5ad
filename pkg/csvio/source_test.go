package csvio

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-Botos/data-cleanse/pkg/model"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func collectChunks(t *testing.T, s *Source) []*model.Chunk {
	t.Helper()
	var chunks []*model.Chunk
	err := s.Chunks(context.Background(), func(chunk *model.Chunk) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)
	return chunks
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	t.Run("missing input path", func(t *testing.T) {
		t.Parallel()
		_, err := NewSource(filepath.Join(t.TempDir(), "absent.csv"), 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInputNotFound)
	})

	t.Run("invalid chunk size", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "in.csv", "a,b\n1,2\n")
		_, err := NewSource(path, 0)
		assert.Error(t, err)
	})
}

func TestSourceChunks(t *testing.T) {
	t.Parallel()

	t.Run("splits records into fixed-size groups", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "in.csv", "a,b\n1,2\n3,4\n5,6\n7,8\n9,10\n")
		s, err := NewSource(path, 2)
		require.NoError(t, err)

		chunks := collectChunks(t, s)
		require.Len(t, chunks, 3)
		assert.Equal(t, 1, chunks[0].Index)
		assert.Equal(t, 3, chunks[2].Index)
		assert.Len(t, chunks[0].Rows, 2)
		assert.Len(t, chunks[2].Rows, 1)
		assert.Equal(t, []string{"a", "b"}, chunks[0].Columns)
		assert.Equal(t, "5", chunks[1].Rows[0]["a"])
	})

	t.Run("empty and missing cells are nil", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "in.csv", "a,b,c\n1,,3\n")
		s, err := NewSource(path, 10)
		require.NoError(t, err)

		chunks := collectChunks(t, s)
		require.Len(t, chunks, 1)
		row := chunks[0].Rows[0]
		assert.Equal(t, "1", row["a"])
		assert.Nil(t, row["b"])
		assert.Equal(t, "3", row["c"])
	})

	t.Run("blank header fields get positional names", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "in.csv", "a,b,\n1,2,3\n")
		s, err := NewSource(path, 10)
		require.NoError(t, err)

		chunks := collectChunks(t, s)
		assert.Equal(t, []string{"a", "b", "Unnamed: 2"}, chunks[0].Columns)
		assert.Equal(t, "3", chunks[0].Rows[0]["Unnamed: 2"])
	})

	t.Run("header-only file yields no chunks", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "in.csv", "a,b\n")
		s, err := NewSource(path, 10)
		require.NoError(t, err)

		chunks := collectChunks(t, s)
		assert.Empty(t, chunks)
	})

	t.Run("empty file is an error", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "in.csv", "")
		s, err := NewSource(path, 10)
		require.NoError(t, err)

		err = s.Chunks(context.Background(), func(*model.Chunk) error { return nil })
		assert.Error(t, err)
	})

	t.Run("gzip compressed input", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "in.csv.gz")
		f, err := os.Create(path)
		require.NoError(t, err)
		gz := gzip.NewWriter(f)
		_, err = gz.Write([]byte("a,b\n1,2\n"))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		require.NoError(t, f.Close())

		s, err := NewSource(path, 10)
		require.NoError(t, err)

		chunks := collectChunks(t, s)
		require.Len(t, chunks, 1)
		assert.Equal(t, "2", chunks[0].Rows[0]["b"])
	})

	t.Run("cancelled context stops iteration", func(t *testing.T) {
		t.Parallel()
		path := writeTempFile(t, "in.csv", "a\n1\n2\n")
		s, err := NewSource(path, 1)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err = s.Chunks(ctx, func(*model.Chunk) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWriteRecords(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows in column order", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out", "clean_chunk_1.csv")
		rows := []model.Record{
			{"a": "1", "b": nil, "dup": true},
			{"a": "2", "b": "x", "dup": false},
		}
		require.NoError(t, WriteRecords(path, []string{"a", "b", "dup"}, rows))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a,b,dup\n1,,true\n2,x,false\n", string(data))
	})

	t.Run("empty record set writes header only", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "clean_chunk_1.csv")
		require.NoError(t, WriteRecords(path, []string{"a", "b"}, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a,b\n", string(data))
	})
}

func TestOutputPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "out/Clean_China_chunk_3.csv", ChunkPath("out/Clean_China", 3))
	assert.Equal(t, "out/Garbage_China_final.csv", FinalPath("out/Garbage_China"))
}
