package lzimg

import "testing"

func TestSearchBufferFindBestMatchNoMatch(t *testing.T) {
	input := []byte("abc")
	sb := newSearchBuffer(input)
	sb.slide(1) // insert position 0

	_, matchLen, found := sb.findBestMatch(1)
	if found && matchLen >= matchThreshold {
		t.Fatalf("expected no match above threshold, got matchLen=%d", matchLen)
	}
}

func TestSearchBufferFindsRepeatedRun(t *testing.T) {
	input := []byte("ABCABCABCABC")
	sb := newSearchBuffer(input)

	// Insert positions 0..2 ("ABC") before searching from position 3,
	// where the whole remaining tail repeats the first three bytes.
	sb.slide(3)

	pos, matchLen, found := sb.findBestMatch(3)
	if !found {
		t.Fatal("expected a match")
	}
	if pos != 0 {
		t.Fatalf("expected match at position 0, got %d", pos)
	}
	if matchLen < matchThreshold {
		t.Fatalf("expected matchLen >= %d, got %d", matchThreshold, matchLen)
	}
}

func TestSearchBufferSlideEvictsOldPositions(t *testing.T) {
	input := make([]byte, windowSize+32)
	for i := range input {
		input[i] = byte(i)
	}
	// Plant a short run at the very start that will fall out of the window.
	// The ascending byte(i) fill never contains 1,3,5, so position 0 is the
	// only other place the run occurs.
	copy(input[0:4], []byte{1, 3, 5, 7})
	copy(input[windowSize+10:windowSize+14], []byte{1, 3, 5, 7})

	// Window is now [10, windowSize+10): position 0 is evicted and the
	// search position itself is not yet inserted.
	sb := newSearchBuffer(input)
	sb.slide(windowSize + 10)

	_, matchLen, found := sb.findBestMatch(windowSize + 10)
	if found && matchLen >= matchThreshold {
		t.Fatalf("expected the stale match at position 0 to have been evicted, got matchLen=%d", matchLen)
	}
}

func TestSearchBufferCommonPrefixLenQuirk(t *testing.T) {
	input := []byte{0x10, 0x20, 0x30}
	sb := newSearchBuffer(input)

	if got := sb.commonPrefixLen(0, 1); got != 1 {
		t.Fatalf("mismatch at byte 0 should still score 1 in commonPrefixLen, got %d", got)
	}
}

func TestSearchBufferMatchLengthIsExact(t *testing.T) {
	input := []byte{0x10, 0x20, 0x30}
	sb := newSearchBuffer(input)

	if got := sb.matchLength(0, 1); got != 0 {
		t.Fatalf("mismatch at byte 0 should yield a true length of 0, got %d", got)
	}

	same := []byte("ABCABC")
	sb2 := newSearchBuffer(same)
	if got := sb2.matchLength(0, 3); got != 3 {
		t.Fatalf("expected a true match length of 3 for \"ABC\"/\"ABC\", got %d", got)
	}
}

func TestSearchBufferMatchLengthClampsToBufferEnd(t *testing.T) {
	input := []byte("AAAA")
	sb := newSearchBuffer(input)

	// Comparing position 0 against position 1 ("AAAA" vs "AAA") should stop
	// at the true remaining length (3), never overshoot past the buffer.
	if got := sb.matchLength(0, 1); got != 3 {
		t.Fatalf("expected matchLength to clamp to the 3 remaining bytes, got %d", got)
	}
}

func TestSearchBufferDeleteTwoChildNode(t *testing.T) {
	// Force a two-child deletion by filling a small window with distinct
	// single-byte-prefix keys, then sliding past all of them.
	input := make([]byte, windowSize*2)
	for i := range input {
		input[i] = byte(i % 251)
	}

	sb := newSearchBuffer(input)
	sb.slide(len(input))

	// After sliding past 2*windowSize positions, exactly windowSize of them
	// (the trailing window) remain live in the arena.
	if sb.freeTop != 0 {
		t.Fatalf("expected 0 free arena slots with a full trailing window live, got %d free", sb.freeTop)
	}
}
