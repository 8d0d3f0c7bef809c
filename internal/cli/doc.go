// Package cli implements the pocketrest command line client.
package cli
