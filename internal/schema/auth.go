package schema

import (
	"slices"
	"strconv"
)

// AuthMode is a closed enumeration of supported authentication modes.
type AuthMode string

const (
	// AuthToken is plain token-based authentication.
	AuthToken AuthMode = "token"

	// AuthOAuthDCR is OAuth with dynamic client registration.
	AuthOAuthDCR AuthMode = "oauth_dcr"
)

// authModes is the full closed set, in declaration order.
var authModes = []AuthMode{AuthToken, AuthOAuthDCR}

// ValidAuthMode reports whether s is a recognized auth-mode tag.
func ValidAuthMode(s string) bool {
	return slices.Contains(authModes, AuthMode(s))
}

// AuthModes returns all recognized auth-mode tags.
func AuthModes() []AuthMode {
	return slices.Clone(authModes)
}

// OAuthDCR describes OAuth dynamic-client-registration support.
type OAuthDCR struct {
	// RedirectURIPatterns is a non-empty ordered list of redirect URI
	// patterns. Patterns may contain wildcard segments ("*") and are
	// otherwise opaque; no URL well-formedness check is applied.
	RedirectURIPatterns []string `json:"redirect_uri_patterns"`
}

// OAuth describes a client's OAuth capability. An empty object is valid and
// means OAuth without dynamic registration support.
type OAuth struct {
	DCR *OAuthDCR `json:"dcr,omitempty"`
}

// ParseOAuth validates an untyped OAuth descriptor (safe mode).
func ParseOAuth(raw any) (*OAuth, error) {
	d := &decoder{}
	oauth := d.parseOAuth(nil, raw)
	if err := d.err(); err != nil {
		return nil, err
	}
	return oauth, nil
}

// MustOAuth is the strict form of [ParseOAuth]; it panics with a [*Error]
// on invalid input.
func MustOAuth(raw any) *OAuth {
	oauth, err := ParseOAuth(raw)
	if err != nil {
		panic(err)
	}
	return oauth
}

// parseOAuth decodes an oauth object at the given path prefix.
func (d *decoder) parseOAuth(prefix []string, raw any) *OAuth {
	obj, ok := d.object(prefix, raw)
	if !ok {
		return nil
	}

	oauth := &OAuth{}
	if dcrObj, ok := d.optionalObject(obj, append(prefix, "dcr")...); ok {
		oauth.DCR = d.parseOAuthDCR(append(prefix, "dcr"), dcrObj)
	}
	return oauth
}

// parseOAuthDCR decodes a dcr object, enforcing the non-empty pattern list.
func (d *decoder) parseOAuthDCR(prefix []string, obj map[string]any) *OAuthDCR {
	patterns, ok := d.requireStringSlice(obj, append(prefix, "redirect_uri_patterns")...)
	if !ok {
		return nil
	}
	if len(patterns) == 0 {
		d.add(append(prefix, "redirect_uri_patterns"), "must contain at least one pattern")
		return nil
	}
	return &OAuthDCR{RedirectURIPatterns: patterns}
}

// parseAuthModes validates a supportedAuth value. The field is mandatory on
// client descriptors; an empty list is valid, omission is not.
func (d *decoder) parseAuthModes(prefix []string, obj map[string]any) []AuthMode {
	key := prefix[len(prefix)-1]
	v, ok := obj[key]
	if !ok {
		d.add(prefix, "required")
		return nil
	}

	tags, ok := d.stringSlice(prefix, v)
	if !ok {
		return nil
	}

	modes := make([]AuthMode, 0, len(tags))
	for i, tag := range tags {
		if !ValidAuthMode(tag) {
			d.add(append(prefix, strconv.Itoa(i)), "unrecognized auth mode %q", tag)
			continue
		}
		modes = append(modes, AuthMode(tag))
	}
	return modes
}
