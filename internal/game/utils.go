package game

import (
	"image/color"
	"strings"
)

// faded scales c to opacity, premultiplied.
func faded(c color.RGBA, opacity float64) color.RGBA {
	o := clamp01(opacity) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * o),
		G: uint8(float64(c.G) * o),
		B: uint8(float64(c.B) * o),
		A: uint8(255 * o),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrapText breaks s into lines of at most width runes, on spaces where it
// can. Existing newlines are kept.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, w := range words {
			for len([]rune(w)) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				r := []rune(w)
				lines = append(lines, string(r[:width]))
				w = string(r[width:])
			}
			switch {
			case line == "":
				line = w
			case len([]rune(line))+1+len([]rune(w)) <= width:
				line += " " + w
			default:
				lines = append(lines, line)
				line = w
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// tail keeps the last n runes of s.
func tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
