// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize   = errors.New("dst size must be multiple of channels")
	ErrInvalidParameter = errors.New("invalid audio parameter")
	ErrConsistency      = errors.New("inconsistent waveform")
)
