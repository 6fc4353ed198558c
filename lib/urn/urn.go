package urn

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalid = errors.New("invalid urn")

// URN is the colon-delimited resource reference the voyager api uses
// throughout its payloads, e.g. "urn:li:fs_miniProfile:ACoAAB12cdE".
// Only the namespace and id components matter; qualifier variants in
// the leading components are tolerated and ignored.
type URN struct {
	Namespace string
	ID        string
}

// Parse splits raw on ":". At least four components are required,
// the third is the namespace and the fourth is the id. Components past
// the fourth are ignored.
func Parse(raw string) (URN, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 4 {
		return URN{}, fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	return URN{Namespace: parts[2], ID: parts[3]}, nil
}

// String renders the canonical "urn:li:<namespace>:<id>" form. This is
// not guaranteed to byte-reproduce the string the urn was parsed from,
// only the id round-trips.
func (u URN) String() string {
	return fmt.Sprintf("urn:li:%s:%s", u.Namespace, u.ID)
}

// IDOf extracts the id component of a raw urn, or "" when the urn does
// not parse.
func IDOf(raw string) string {
	u, err := Parse(raw)
	if err != nil {
		return ""
	}
	return u.ID
}
