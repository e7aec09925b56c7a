// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ik5/alwav/formats/mp3"
)

func ExampleDecoder_Decode() {
	_, err := mp3.Decoder{}.Decode(strings.NewReader("not an mp3"))
	fmt.Println(errors.Is(err, mp3.ErrInvalidStream))
	// Output:
	// true
}
