// Package cli parses command-line arguments, prompts for missing input and
// maps failures to process exit codes. It turns flags, environment
// configuration and scenario files into a single app.Request.
package cli
