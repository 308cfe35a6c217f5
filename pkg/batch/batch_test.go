package batch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectAllOk(t *testing.T) {
	values, err := Collect([]Result[int]{Ok(1), Ok(2), Ok(3)})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestCollectReportsEveryFailure(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	values, err := Collect([]Result[string]{
		Ok("first"),
		Fail[string](errA),
		Ok("second"),
		Fail[string](errB),
	})

	// Successes are still returned alongside the error.
	assert.Equal(t, []string{"first", "second"}, values)

	var batchErr *Error
	require.ErrorAs(t, err, &batchErr)
	require.Len(t, batchErr.Failures, 2)
	assert.Equal(t, 1, batchErr.Failures[0].Index)
	assert.Equal(t, errA, batchErr.Failures[0].Err)
	assert.Equal(t, 3, batchErr.Failures[1].Index)
	assert.Equal(t, errB, batchErr.Failures[1].Err)
}

func TestCollectEmpty(t *testing.T) {
	values, err := Collect[int](nil)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestErrorUnwrapMatchesWrappedErrors(t *testing.T) {
	sentinel := errors.New("sentinel")
	_, err := Collect([]Result[int]{Fail[int](sentinel)})
	assert.ErrorIs(t, err, sentinel)
}

func TestErrorMessageListsIndexes(t *testing.T) {
	_, err := Collect([]Result[int]{
		Ok(1),
		Fail[int](errors.New("boom")),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of the items failed")
	assert.Contains(t, err.Error(), "1: boom")
}
