// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

// Base provides the common fields shared by the model implementations.
type Base struct {
	model string
}

// NewBase creates a new [Base] with the given model name.
func NewBase(modelName string) *Base {
	return &Base{
		model: modelName,
	}
}

// Name returns the name of the model.
func (b *Base) Name() string {
	return b.model
}
