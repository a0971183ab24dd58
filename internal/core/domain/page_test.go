package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_ReadyTransition(t *testing.T) {
	p := NewPage[Resource]()
	assert.Equal(t, PageIdle, p.State())
	assert.Empty(t, p.Items())

	require.NoError(t, p.Begin())
	assert.Equal(t, PageLoading, p.State())

	require.NoError(t, p.Resolve([]Resource{{ID: "r1"}}, nil))
	assert.Equal(t, PageReady, p.State())
	assert.Len(t, p.Items(), 1)
	assert.NoError(t, p.Err())
}

func TestPage_FailedTransitionKeepsItemsEmpty(t *testing.T) {
	p := NewPage[Roadmap]()
	require.NoError(t, p.Begin())

	cause := NewFetchError(CollectionRoadmaps, errors.New("connection refused"))
	require.NoError(t, p.Resolve([]Roadmap{{ID: "ignored"}}, cause))

	assert.Equal(t, PageFailed, p.State())
	assert.NotNil(t, p.Items())
	assert.Empty(t, p.Items())
	assert.ErrorIs(t, p.Err(), ErrFetchFailure)
}

func TestPage_RejectsInvalidTransitions(t *testing.T) {
	p := NewPage[Resource]()
	assert.ErrorIs(t, p.Resolve(nil, nil), ErrInvalidPageTransition)

	require.NoError(t, p.Begin())
	assert.ErrorIs(t, p.Begin(), ErrInvalidPageTransition)

	require.NoError(t, p.Resolve(nil, nil))
	assert.ErrorIs(t, p.Resolve(nil, nil), ErrInvalidPageTransition)
	assert.ErrorIs(t, p.Begin(), ErrInvalidPageTransition)
}

func TestFetchError_WrapsOnce(t *testing.T) {
	base := errors.New("timeout")
	err := NewFetchError(CollectionResources, base)
	again := NewFetchError(CollectionRoadmaps, err)

	assert.ErrorIs(t, again, ErrFetchFailure)
	assert.ErrorIs(t, again, base)

	var fe *FetchError
	require.ErrorAs(t, again, &fe)
	assert.Equal(t, CollectionResources, fe.Collection)
	assert.Nil(t, NewFetchError(CollectionResources, nil))
}
