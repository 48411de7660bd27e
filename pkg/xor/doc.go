/*
Package xor provides the keyed XOR screen used as the last stage of string screening.

Note that this is NOT encryption, since it is easily reversible.
It only hides plain text from passive observation of a compiled binary.

# How it works:

Every byte that passes through a Reader or Writer is XOR'd with the current key byte.
Once a key byte is used, the screen will progress to the next byte in the key.
When the last byte is used, the first will be used again, operating like a ring buffer.
Byte i of a payload screened from offset 0 is therefore XOR'd with key[i % len(key)].

Providing an offset will make the screen start at the given offset instead of the first byte.

# Important note:

The same key and offset parameters must be provided to accurately reverse the process.
Since XOR is its own inverse, reversing is the same operation as screening.
*/
package xor
