package measure

// Mean returns the arithmetic mean of the raw byte values, independent of analysis mode.
// The mean of an empty buffer is NaN.
func Mean(data []byte) float64 {
	var sum float64
	for _, b := range data {
		sum += float64(b)
	}

	return sum / float64(len(data))
}
