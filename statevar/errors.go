// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statevar

import "errors"

// lookup and size errors
var (
	// ErrNotFound indicates a field name that is not part of the layout
	ErrNotFound = errors.New("statevar: field not found")

	// ErrBufferSize indicates a buffer whose length does not match the layout
	ErrBufferSize = errors.New("statevar: buffer size does not match layout")
)
