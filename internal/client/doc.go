// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the login flow once, then alternates between thread selection and
// chat sessions until the user quits. A rejected token sends the user back
// through login.
package client
