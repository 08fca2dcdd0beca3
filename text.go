package interact

// Ellipsis is appended to text cut short by TruncateText.
const Ellipsis = "..."

// TruncateText shortens text with Ellipsis until it fits within maxWidth at
// fontSize. Text that already fits is returned unchanged; if not even one rune
// fits, the bare ellipsis is returned.
func TruncateText(c Canvas, text string, fontSize int, maxWidth float32) string {
	return TruncateTextWithSuffix(c, text, fontSize, maxWidth, Ellipsis)
}

// TruncateTextWithSuffix truncates text and adds a custom suffix.
func TruncateTextWithSuffix(c Canvas, text string, fontSize int, maxWidth float32, suffix string) string {
	if c.MeasureText(text, fontSize) <= maxWidth {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 {
		truncated := string(runes) + suffix
		if c.MeasureText(truncated, fontSize) <= maxWidth {
			return truncated
		}
		runes = runes[:len(runes)-1]
	}

	return suffix
}

// FitText returns text that fits within maxWidth, trying "...", then "." and
// finally returning "" for widths too small for any suffix.
// Unlike TruncateText, the result never overflows.
func FitText(c Canvas, text string, fontSize int, maxWidth float32) string {
	if maxWidth <= 0 {
		return ""
	}
	if c.MeasureText(text, fontSize) <= maxWidth {
		return text
	}

	for _, suffix := range []string{Ellipsis, "."} {
		result := TruncateTextWithSuffix(c, text, fontSize, maxWidth, suffix)
		if c.MeasureText(result, fontSize) <= maxWidth {
			return result
		}
	}

	return ""
}

// textY returns the y coordinate that vertically centers a line of fontSize
// within r.
func textY(r Rect, fontSize int) float32 {
	return r.Y + (r.H-float32(fontSize))/2
}
