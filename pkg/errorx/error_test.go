package errorx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	err := New(InsufficientCredits, "Need %d credits", 3)
	require.Equal(t, "Need 3 credits", err.Error())
	require.True(t, Is(err, InsufficientCredits))
	require.False(t, Is(err, AlreadyClaimed))

	wrapped := fmt.Errorf("spend: %w", err)
	require.True(t, Is(wrapped, InsufficientCredits))

	require.False(t, Is(fmt.Errorf("plain"), InsufficientCredits))
	require.False(t, Is(nil, InsufficientCredits))
}
