// Package services implements the driving port interfaces.
// Services validate user input and orchestrate calls to driven ports
// (adapters and connectors).
//
// Services are pure Go with no CGO or external dependencies.
package services
