package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", CellString(nil))
	assert.Equal(t, "abc", CellString("abc"))
	assert.Equal(t, "abc", CellString([]byte("abc")))
	assert.Equal(t, "true", CellString(true))
	assert.Equal(t, "false", CellString(false))
	assert.Equal(t, "42", CellString(42))
}

func TestFlagsClean(t *testing.T) {
	t.Parallel()

	allValid := Flags{
		VINValid:      true,
		IDNumberValid: true,
		EmailValid:    true,
		MobileValid:   true,
		BirthdayValid: true,
	}
	assert.True(t, allValid.AllValid())
	assert.True(t, allValid.Clean())

	dup := allValid
	dup.Duplicate = true
	assert.True(t, dup.AllValid())
	assert.False(t, dup.Clean(), "a duplicate never routes clean, even when every field check passes")

	badMobile := allValid
	badMobile.MobileValid = false
	assert.False(t, badMobile.Clean())
}

func TestFlagsApply(t *testing.T) {
	t.Parallel()

	r := Record{}
	Flags{EmailValid: true, Duplicate: true}.Apply(r)

	assert.Equal(t, true, r[ColDuplicate])
	assert.Equal(t, true, r[ColEmailValid])
	assert.Equal(t, false, r[ColVINValid])

	for _, col := range FlagColumns() {
		assert.Contains(t, r, col)
	}
}

func TestRunSummaryAccounting(t *testing.T) {
	t.Parallel()

	s := NewRunSummary("run-1")
	s.AddOutcome(ChunkOutcome{Index: 1, RowsRead: 10, CleanRows: 7, GarbageRows: 3})
	s.AddOutcome(ChunkOutcome{Index: 3, RowsRead: 5, CleanRows: 5})
	s.AddChunkError(2, assert.AnError)
	s.Complete()

	assert.Equal(t, 2, s.ChunksProcessed)
	assert.Equal(t, 1, s.ChunksFailed)
	assert.Equal(t, 15, s.RowsRead)
	assert.Equal(t, 12, s.CleanRows)
	assert.Equal(t, 3, s.GarbageRows)
	assert.True(t, s.HasFailures())
	assert.ErrorIs(t, s.ChunkErrors[0], assert.AnError)
	assert.Contains(t, s.ChunkErrors[0].Error(), "chunk 2")
}
