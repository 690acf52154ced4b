// Package logger wraps zap with a global sugared logger, context helpers
// (ToContext/FromContext/WithName/WithKV) and level utilities.
//
// Services accept a context and log through the package-level functions,
// which pick up the logger stored in the context, so component names and
// fields attached upstream follow the call into every stage.
package logger
