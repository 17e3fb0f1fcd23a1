// SPDX-License-Identifier: EPL-2.0

package payload

import "errors"

// ErrMalformedInput indicates the payload is not valid base64 text
var ErrMalformedInput = errors.New("malformed base64 input")
