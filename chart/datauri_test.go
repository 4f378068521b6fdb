// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"testing"
)

func TestDataURIRoundTrip(t *testing.T) {
	for _, doc := range []string{
		"",
		"<svg></svg>",
		`<svg><text>€ &amp; ünïcode</text></svg>`,
	} {
		got, err := DecodeDataURI(EncodeDataURI(doc))
		if err != nil {
			t.Errorf("decoding %q: %v", doc, err)
			continue
		}
		if got != doc {
			t.Errorf("round trip of %q gave %q", doc, got)
		}
	}
}

func TestDecodeDataURIErrors(t *testing.T) {
	for _, uri := range []string{
		"",
		"data:image/png;base64,AAAA",
		DataURIPrefix + "not base64!",
	} {
		if _, err := DecodeDataURI(uri); !errors.Is(err, ErrDataURI) {
			t.Errorf("DecodeDataURI(%q): got %v; want %v", uri, err, ErrDataURI)
		}
	}
}
