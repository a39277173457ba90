// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Participant is a thread member as known to the backend.
type Participant struct {
	ID          string
	DisplayName string
}
