// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI flows to the client services: session restore or
// login, the form screens, and the background refresh of raw results used by
// the offline report fallback.
package client
