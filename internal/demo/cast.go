package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version int    `json:"version"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Title   string `json:"title,omitempty"`
}

// clearScreen homes the cursor and clears the screen before each frame.
const clearScreen = "\x1b[H\x1b[2J"

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// is an output event at the sum of the delays before it; annotations become
// marker events.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(castHeader{Version: 2, Width: width, Height: height, Title: "numbox"}); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var elapsed float64
	for i, f := range frames {
		elapsed += f.Delay.Seconds()
		out := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{elapsed, "o", out}); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
		if f.Annotation != "" {
			if err := enc.Encode([]any{elapsed, "m", f.Annotation}); err != nil {
				return fmt.Errorf("writing marker %d: %w", i, err)
			}
		}
	}
	return nil
}
