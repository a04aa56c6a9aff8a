// Package route maps inbound request paths onto the fixed upstream endpoints.
//
// The table is an ordered list of (marker, endpoint) pairs. A path resolves to
// the first entry whose marker it contains; matching is case-sensitive
// substring containment, not prefix or exact match, so
// "/api/v2/findInformNotice.do?x" and "/findInformNotice.do" both resolve to
// the notice endpoint. Paths matching no entry yield ErrInvalidEndpoint.
package route
