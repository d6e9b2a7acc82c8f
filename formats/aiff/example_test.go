// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audgrain/formats/aiff"
)

// Example_errorNotAIFF shows how invalid input is reported.
func Example_errorNotAIFF() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff stream")))

	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("not an AIFF file")
	}
	// Output: not an AIFF file
}
