package main

// Exit codes for arx commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing workspace, invalid paths)
	ExitDataError   = 3 // Data error (malformed input, missing artifacts, Ollama down)
	ExitNotFound    = 4 // Requested node or paper not found
	ExitAPIError    = 5 // External API failure (Semantic Scholar, arXiv)
)
