package interfaces

// Logger defines the interface for logging throughout the application.
// Fields are attached as structured key/value pairs.
//
// Example usage:
//
//	logger.Info("Fetching source page", map[string]interface{}{
//		"url":   "https://example.com",
//		"relay": "corsproxy",
//	})
//
//	convLog := logger.With(map[string]interface{}{"project_id": project.ID})
//	convLog.Error("Reconstruction failed", map[string]interface{}{
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})

	// With returns a logger that adds fields to every entry.
	With(fields map[string]interface{}) Logger
}
