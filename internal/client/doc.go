// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive application runtime.
//
// It wires the terminal UI, the orchestration services and the background
// batch runner into a single process lifecycle.
package client
