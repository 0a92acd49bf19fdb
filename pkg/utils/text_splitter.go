package utils

import "unicode"

// SplitText splits a long string into chunks of approximately 'chunkSize'
// characters with 'overlap' characters carried over from the previous chunk.
// Deterministic: the same text and parameters always produce the same chunks.
func SplitText(text string, chunkSize int, overlap int) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end >= totalLen {
			// Final window: keep the tail intact, never retract it.
			end = totalLen
		} else {
			// Back up to a whitespace boundary so words are not cut in half.
			// Never back up past the next chunk's start, or text would be lost.
			end = backUpToBoundary(runes, i+step, end)
		}

		chunks = append(chunks, string(runes[i:end]))

		if i+chunkSize >= totalLen {
			break
		}
	}

	return chunks
}

func backUpToBoundary(runes []rune, floor, end int) int {
	for i := end; i > floor; i-- {
		if unicode.IsSpace(runes[i-1]) {
			return i
		}
	}
	return end
}
