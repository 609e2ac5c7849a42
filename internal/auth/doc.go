// Package auth verifies bearer credentials issued by Firebase Authentication.
//
// A [FirebaseVerifier] is created once in main, initialized explicitly with
// [FirebaseVerifier.Init] and then shared by reference with the HTTP layer.
// It checks RS256 ID tokens against the provider's x509 certificates, which
// are cached process-wide by a [KeySet] for as long as the provider allows.
// An optional [RevocationChecker] rejects tokens issued before a per-user
// "valid after" mark.
//
// Every failure is reported as one of the sentinel errors in errors.go so the
// transport layer can map it to a status code with [errors.Is].
package auth
