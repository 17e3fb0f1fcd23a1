// SPDX-License-Identifier: EPL-2.0

package pcm_test

import (
	"fmt"

	"github.com/ik5/ttsaudio/formats/pcm"
)

// Example_decode shows the layout of a decoded mono payload.
func Example_decode() {
	w, err := pcm.Decode([]byte{0x00, 0x40, 0x00, 0xC0, 0x7f}, 24000, 1)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Frames: %d\n", w.Frames())
	fmt.Printf("Samples: %v\n", w.Data[0])
	// Output:
	// Frames: 2
	// Samples: [0.5 -0.5]
}
