package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. Bumping RecordVersion
// changes every identifier.
const (
	DomainProblem    = "kybur/problem/v" + RecordVersion
	DomainSubmission = "kybur/submission/v" + RecordVersion
)

// hashWithDomain computes SHA256(domain + 0x00 + data). The null byte keeps
// the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ProblemID computes the content-addressed ID of a problem record. The same
// lesson, number and equation always produce the same ID.
func ProblemID(p Problem) (string, error) {
	canonical, err := MarshalCanonical(p.Object())
	if err != nil {
		return "", fmt.Errorf("ProblemID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainProblem, canonical), nil
}

// SubmissionID computes the content-addressed ID of a graded answer.
func SubmissionID(s Submission) (string, error) {
	canonical, err := MarshalCanonical(s.Object())
	if err != nil {
		return "", fmt.Errorf("SubmissionID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainSubmission, canonical), nil
}

// MustProblemID is like ProblemID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustProblemID(p Problem) string {
	id, err := ProblemID(p)
	if err != nil {
		panic(err)
	}
	return id
}
