// Package envelope implements hybrid (envelope) encryption: the plaintext is
// sealed once with a fresh symmetric content key, and that content key is
// wrapped per recipient with their RSA public key under OAEP.
//
// One ciphertext serves any number of recipients, so cost is one symmetric
// encryption plus one cheap asymmetric wrap per reader, never one bulk
// encryption per reader.
//
// Payloads carry a version and algorithm tag; Decrypt branches on them so a
// future cipher change can coexist with old payloads. Decryption failures
// are uniform: callers cannot tell a bad key unwrap from a bad ciphertext
// tag.
package envelope
