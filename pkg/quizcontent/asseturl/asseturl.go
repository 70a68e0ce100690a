// Package asseturl resolves stored Rive asset references to absolute URLs.
//
// References are persisted relative and expanded only when shaping a
// response, so the backing document never depends on the host serving it.
package asseturl

import (
	"strings"
)

// RivePrefix is the sub-path bare filenames are served under.
const RivePrefix = "/rive/"

// Resolve expands ref against the requesting origin (e.g.
// "https://game.example.com"). A nil ref resolves to nil. A ref that
// already begins with a path separator is joined to the origin directly;
// anything else is treated as a bare filename under RivePrefix.
func Resolve(origin string, ref *string) *string {
	if ref == nil {
		return nil
	}

	origin = strings.TrimSuffix(origin, "/")

	var url string
	if strings.HasPrefix(*ref, "/") {
		url = origin + *ref
	} else {
		url = origin + RivePrefix + *ref
	}
	return &url
}
