// Package domain contains the core domain model for postline.
//
// The domain is transport-agnostic: it does not depend on net/http, JSON
// decoding, or the filesystem. The blogapi package validates wire payloads
// and maps them into these types.
package domain
