/*
Package strscreen hides constant strings from passive binary analysis by screening them with a key derived from the string's name.

Note that this is NOT encryption.
The key is stored right next to the screened data, so anyone who can read the binary and knows the algorithm can recover the plain text.
It's only intended to keep secrets and other sensitive strings from showing up in the output of tools like strings(1).

# How it works:

A Key is derived deterministically from the entry name with DeriveKey.
The name is hashed with FNV-1a (see Hash), and the hash seeds an xorshift stream that yields the key bytes.
Key bytes are never zero.

Encode transforms the UTF-8 bytes of the plain text in three stages:
  - Each byte has its position (mod 256) added to it.
  - The bytes are rotated to the right by half the payload length.
  - The result is XOR screened with the key, cycling through the key as needed.

Decode undoes those stages in reverse order, and requires the recovered bytes to be valid UTF-8.

# Orchestration:

Screen reads entries from a Provider, screens each one independently, and hands the resulting Screened tuple to an Emitter.
Emitters are responsible for turning Screened tuples into something a consumer can use, like generated Go source or a side-loaded resource.
A Table is an in-memory Emitter that decodes entries on every lookup.
*/
package strscreen
