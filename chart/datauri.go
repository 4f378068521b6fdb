// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURIPrefix begins every data URI produced by EncodeDataURI.
const DataURIPrefix = "data:image/svg+xml;base64,"

// EncodeDataURI returns svg as a base64 data URI.
func EncodeDataURI(svg string) string {
	uri := bytes.NewBufferString(DataURIPrefix)
	w := base64.NewEncoder(base64.StdEncoding, uri)
	w.Write([]byte(svg))
	w.Close()
	return uri.String()
}

// DecodeDataURI returns the SVG document encoded in uri.
func DecodeDataURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, DataURIPrefix) {
		return "", ErrDataURI
	}
	b, err := base64.StdEncoding.DecodeString(uri[len(DataURIPrefix):])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDataURI, err)
	}
	return string(b), nil
}
