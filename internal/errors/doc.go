// Package errors provides structured error handling for the creature-api.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping for each code
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("creature not found")
//	err := errors.InvalidArgumentf("invalid creature id: %d", id)
//
// Adding metadata:
//
//	err := errors.NotFound("creature not found").
//	    WithMeta("name", name)
//
// Wrapping errors:
//
//	if err := client.GetSpecies(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to fetch species detail")
//	}
//
// Wrap preserves the code of an existing *Error, so upstream NotFound
// errors stay NotFound all the way to the HTTP boundary.
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	status := code.HTTPStatus()
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.CatalogClient == nil {
//	    vb.RequiredField("CatalogClient")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Client layer:
//   - Map upstream HTTP responses to NotFound/Unavailable/ResourceExhausted
//   - Include the requested identifier and upstream status in metadata
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap client errors with business context, preserving codes
//
// Handler layer:
//   - Convert codes to HTTP statuses via Code.HTTPStatus
//   - Extract user-friendly messages with GetMessage
package errors
