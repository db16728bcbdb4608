package btree

// insertAt inserts value into a slice at idx, shifting the tail right.
func insertAt[T any](src []T, idx int, value T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	var zero T
	src = append(src, zero)
	copy(src[idx+1:], src[idx:])
	src[idx] = value
	return src
}

// truncate drops all elements from idx on and clears them for the GC.
func truncate[T any](src []T, idx int) []T {
	assert(idx >= 0 && idx <= len(src), "truncate index out of range")
	var zero T
	for i := idx; i < len(src); i++ {
		src[i] = zero
	}
	return src[:idx]
}

// search returns the index of the first key in n which is not less than key,
// and whether that key equals key. The index coincides with the position of
// the child to descend into if the key is not present.
func (n *Node) search(key Key) (int, bool) {
	low, high := 0, len(n.keys)
	for low < high {
		mid := (low + high) / 2
		switch k := n.keys[mid]; {
		case key > k:
			low = mid + 1
		case key < k:
			high = mid
		default:
			return mid, true
		}
	}
	return low, false
}
