// Package config builds the strgen configuration from command line flags and STRGEN_ environment variables.
//
// Flags take precedence over the environment, and the environment takes precedence over defaults.
// Since layers are merged by filling in zero values, a boolean flag can turn an option on but can't turn off an option enabled in the environment.
package config
