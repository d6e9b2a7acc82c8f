// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audgrain/audio"
	"github.com/ik5/audgrain/formats/mp3"
)

// Example_registry wires the decoder under its file extension.
func Example_registry() {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})

	dec, err := reg.ForPath("loops/drums.MP3")
	if err != nil {
		fmt.Println(err)
		return
	}

	_, err = dec.Decode(bytes.NewReader([]byte("not really an mp3")))
	fmt.Println(err != nil)
	// Output: true
}
