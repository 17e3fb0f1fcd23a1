// SPDX-License-Identifier: EPL-2.0

// Package payload turns the base64 text carried by speech API responses back
// into raw bytes.
//
// Decoding follows the forgiving rules browsers apply in atob: ASCII
// whitespace is ignored anywhere, one or two trailing '=' are accepted when
// the whitespace-free length is a multiple of four, and unpadded input is
// accepted as long as its length is not 1 modulo 4.
//
//	pcm, err := payload.Decode(resp.Data)
//	if errors.Is(err, payload.ErrMalformedInput) {
//	    // the error message carries the offset of the offending character
//	}
//
// On error no partial output is returned.
package payload
