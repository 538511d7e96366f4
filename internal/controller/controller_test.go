package controller

import "testing"

func TestReadOrderAndExhaustion(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonStart, true)
	c.SetButton(ButtonRight, true)

	c.Write(1)
	c.Write(0)

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Fatalf("read %d = %d, want %d", i, got, w)
		}
	}
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("exhausted read %d = %d, want 1", i, got)
		}
	}
}

func TestStrobeHighAlwaysReportsButtonA(t *testing.T) {
	c := New()
	c.Write(1) // strobe high

	c.SetButton(ButtonA, true)
	if got := c.Read(); got != 1 {
		t.Errorf("Read() with strobe high = %d, want 1", got)
	}
	c.SetButton(ButtonA, false)
	if got := c.Read(); got != 0 {
		t.Errorf("Read() with strobe high after release = %d, want 0", got)
	}
}

func TestStrobeResetsCursorOnFallingEdge(t *testing.T) {
	c := New()
	c.Write(1)
	c.Write(0)
	c.Read() // advance the cursor past A and B
	c.Read()
	c.Write(1)
	c.Write(0) // falling edge: cursor resets to button 0

	c.SetButton(ButtonA, true)
	if got := c.Read(); got != 1 {
		t.Errorf("first read after strobe reset = %d, want ButtonA's state (1)", got)
	}
}
