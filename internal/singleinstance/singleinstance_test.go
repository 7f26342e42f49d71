package singleinstance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniqueRole(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("Test-%s", t.Name())
}

func TestSecondAcquireIsContended(t *testing.T) {
	role := uniqueRole(t)

	first, err := Acquire(role)
	require.NoError(t, err)
	defer first.Release()
	require.True(t, first.Acquired())

	second, err := Acquire(role)
	require.NoError(t, err, "contention is not an error")
	defer second.Release()
	assert.False(t, second.Acquired())
}

func TestReleaseMakesRoleAvailableAgain(t *testing.T) {
	role := uniqueRole(t)

	first, err := Acquire(role)
	require.NoError(t, err)
	require.True(t, first.Acquired())

	second, err := Acquire(role)
	require.NoError(t, err)
	require.False(t, second.Acquired())

	first.Release()
	second.Release()

	third, err := Acquire(role)
	require.NoError(t, err)
	defer third.Release()
	assert.True(t, third.Acquired(), "released role must be reacquirable")
}

func TestReleaseIsIdempotent(t *testing.T) {
	handle, err := Acquire(uniqueRole(t))
	require.NoError(t, err)
	require.True(t, handle.Acquired())

	handle.Release()
	handle.Release()
	handle.Release()
}

func TestReleasingContendedHandleLeavesOwnerAlone(t *testing.T) {
	role := uniqueRole(t)

	owner, err := Acquire(role)
	require.NoError(t, err)
	defer owner.Release()

	loser, err := Acquire(role)
	require.NoError(t, err)
	loser.Release()

	// The owner must still hold the lock after the loser released.
	probe, err := Acquire(role)
	require.NoError(t, err)
	defer probe.Release()
	assert.False(t, probe.Acquired())
}

func TestLockNameCarriesAppPrefix(t *testing.T) {
	handle, err := Acquire(uniqueRole(t))
	require.NoError(t, err)
	defer handle.Release()

	assert.Contains(t, handle.Name(), "Skybound-")
}
