package problemgen

import "context"

// Generator produces candidate questions from a generation request.
type Generator interface {
	// Generate returns the questions recovered from the generation service.
	// The result may hold more or fewer questions than requested; the
	// Pipeline truncates and pads. An error means nothing usable came back.
	Generate(ctx context.Context, req GenerationRequest) ([]GeneratedQuestion, error)
}
