package renderer

import "context"

// Renderer writes a titled notes document to disk.
type Renderer interface {
	Render(ctx context.Context, title, notes, outputPath string) error
	// Extension is the file extension without a dot, also used for object keys.
	Extension() string
	ContentType() string
}
