package wmf2svg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDeviceContext(t *testing.T) {
	dc := defaultDeviceContext()
	require.True(t, dc.strokeSet)
	require.Equal(t, ColorRef{0, 0, 0}, dc.strokeColor)
	require.True(t, dc.fillSet)
	require.Equal(t, ColorRef{255, 255, 255}, dc.fillColor)
	require.Equal(t, uint16(ropCopyPen), dc.rop2Mode)
}

func TestDCStackSaveRestoreRoundTrip(t *testing.T) {
	var stack dcStack
	dc1 := defaultDeviceContext()
	dc1.strokeColor = ColorRef{10, 20, 30}
	stack.push(dc1)

	dc2 := dc1
	dc2.strokeColor = ColorRef{40, 50, 60}
	stack.push(dc2)

	restored, ok := stack.restore(1)
	require.True(t, ok)
	require.Equal(t, ColorRef{40, 50, 60}, restored.strokeColor)

	restored, ok = stack.restore(1)
	require.True(t, ok)
	require.Equal(t, ColorRef{10, 20, 30}, restored.strokeColor)

	_, ok = stack.restore(1)
	require.False(t, ok, "stack should be empty after popping every frame")
}

func TestDCStackRestoreMoreThanAvailable(t *testing.T) {
	var stack dcStack
	stack.push(defaultDeviceContext())
	_, ok := stack.restore(5)
	require.True(t, ok, "restoring more than available should still return the last frame popped")
	require.Empty(t, stack.frames)
}
