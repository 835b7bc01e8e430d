package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashInput(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashInput(nil))
	assert.NotEqual(t, HashInput([]byte("a")), HashInput([]byte("b")))
}

func TestSaveAnswer_Validation(t *testing.T) {
	db := setupTestDB(t)

	assert.ErrorIs(t, SaveAnswer(nil, &Answer{}), errDBNotInitialized)
	assert.Error(t, SaveAnswer(db, nil))
	assert.Error(t, SaveAnswer(db, &Answer{Day: 0, Half: 1, InputHash: "x"}))
	assert.Error(t, SaveAnswer(db, &Answer{Day: 1, Half: 3, InputHash: "x"}))
	assert.Error(t, SaveAnswer(db, &Answer{Day: 1, Half: 1}))
}

func TestSaveAndQueryAnswers(t *testing.T) {
	db := setupTestDB(t)
	base := time.Date(2022, 12, 3, 5, 0, 0, 0, time.UTC)

	answers := []*Answer{
		{Day: 1, Half: 1, InputPath: "1.input", InputHash: "h1", Result: 24000, SolvedAt: base},
		{Day: 1, Half: 2, InputPath: "1.input", InputHash: "h1", Result: 45000, SolvedAt: base.Add(time.Minute)},
		{Day: 3, Half: 1, InputPath: "3.input", InputHash: "h3", Result: 157, SolvedAt: base.Add(2 * time.Minute)},
	}
	for _, a := range answers {
		require.NoError(t, SaveAnswer(db, a))
	}

	all, err := QueryAnswers(db, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 3, all[0].Day)
	assert.Equal(t, 45000, all[1].Result)
	assert.True(t, all[2].SolvedAt.Equal(base))

	day1, err := QueryAnswers(db, 1, 10)
	require.NoError(t, err)
	assert.Len(t, day1, 2)

	limited, err := QueryAnswers(db, 0, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := QueryAnswers(db, 9, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSaveAnswer_Upsert(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SaveAnswer(db, &Answer{Day: 2, Half: 1, InputPath: "a", InputHash: "h", Result: 1}))
	require.NoError(t, SaveAnswer(db, &Answer{Day: 2, Half: 1, InputPath: "b", InputHash: "h", Result: 2}))

	list, err := QueryAnswers(db, 2, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].InputPath)
	assert.Equal(t, 2, list[0].Result)
	assert.False(t, list[0].SolvedAt.IsZero())
}

func TestGetDataState(t *testing.T) {
	db := setupTestDB(t)

	state, err := GetDataState(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), state["answers"])

	require.NoError(t, SaveAnswer(db, &Answer{Day: 1, Half: 1, InputHash: "a", Result: 1}))
	require.NoError(t, SaveAnswer(db, &Answer{Day: 1, Half: 2, InputHash: "a", Result: 2}))
	require.NoError(t, SaveAnswer(db, &Answer{Day: 2, Half: 1, InputHash: "b", Result: 3}))

	state, err = GetDataState(db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), state["answers"])
	assert.Equal(t, int64(2), state["days"])
	assert.Equal(t, int64(2), state["inputs"])

	_, err = GetDataState(nil)
	assert.Error(t, err)
}
