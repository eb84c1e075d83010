// Package commands implements the notelock CLI: key setup, passphrase
// management, encrypting and decrypting payloads, and portable backups.
package commands
