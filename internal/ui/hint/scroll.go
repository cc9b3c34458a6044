package hint

// moveDown advances the highlight one row, wrapping from last to first, and
// returns the new index and window start. The window holds rows entries; it
// advances just enough for index to be its last visible row, or snaps back
// to the top on wrap.
func moveDown(index, start, n, rows int) (int, int) {
	if n == 0 {
		return 0, 0
	}
	if index < n-1 {
		index++
	} else {
		index = 0
	}

	if index+1 > start+rows {
		start = index + 1 - rows
	} else if index == 0 {
		start = 0
	}
	return index, start
}

// moveUp moves the highlight one row back, wrapping from first to last. The
// window follows the highlight upward, or snaps to the last page on wrap.
func moveUp(index, start, n, rows int) (int, int) {
	if n == 0 {
		return 0, 0
	}
	if index > 0 {
		index--
	} else {
		index = n - 1
	}

	if start > index {
		start = index
	} else if index == n-1 {
		start = max(0, n-rows)
	}
	return index, start
}
