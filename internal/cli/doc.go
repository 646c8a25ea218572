// Package cli wires the dwgate cobra commands to the deployment and
// validation services.
package cli
