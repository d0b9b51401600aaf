// Package errors provides structured, coded errors for coat.
//
// Every error carries a code (e.g. "E001") that maps to a registered
// template with a short message, a longer explanation and a category. Errors
// raised by the reconciler point at the declaration call site that caused
// them:
//
//	err := errors.New("E001").
//	    WithLocation("app/view.go", 42, 0).
//	    WithSuggestion("Give each declaration its own call site or index")
//
//	fmt.Println(err.Format())
//	// ERROR E001: State type mismatch
//	//
//	//   app/view.go:42
//	//
//	//     41 │ ui.State(u, k, func() int { return 0 }, ...)
//	//   → 42 │ ui.State(u, k, func() string { return "" }, ...)
//	//   ...
package errors
