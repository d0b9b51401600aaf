package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

var registry = map[string]ErrorTemplate{
	// Reconciler (E001-E009)
	"E001": {
		Category: CategoryReconcile,
		Message:  "State type mismatch",
		Detail:   "A state cell declared with this key holds a value of a different type. Two declarations of different types share one call site.",
	},
	"E002": {
		Category: CategoryReconcile,
		Message:  "Render object type mismatch",
		Detail:   "A render node declared with this key holds an object of a different type. Two declarations of different widgets share one call site.",
	},
	"E003": {
		Category: CategoryReconcile,
		Message:  "Tree poisoned",
		Detail:   "A previous build pass aborted on a fatal error and left the tree partially reconciled. Create a new root.",
	},

	// Configuration (E010-E019)
	"E010": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "coat.json contains an invalid value.",
	},
	"E011": {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "coat.json exists but could not be read or parsed.",
	},

	// CLI (E020-E029)
	"E020": {
		Category: CategoryCLI,
		Message:  "Inspector failed",
		Detail:   "The inspector HTTP server stopped with an error.",
	},
	"E021": {
		Category: CategoryCLI,
		Message:  "Configuration file exists",
		Detail:   "coat init will not overwrite an existing coat.json.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
