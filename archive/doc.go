package archive

/*

# HUF1 archives

An archive is a self-contained Huffman compressed byte stream. The layout is
big endian throughout:

	+--------------------------------------------------------------+
	| HeaderV1 (HeaderBytesV1 = 32)                                 |
	|   [0:4]   magic "HUF1"                                        |
	|   [4]     version                                             |
	|   [5]     bitOrder (BitOrderMSB0)                             |
	|   [6]     flags                                               |
	|   [7]     zero                                                |
	|   [8:16]  symbolCount, the plaintext length                   |
	|   [16:24] payloadBits                                         |
	|   [24:32] checksum, xxhash64 of the plaintext                 |
	+--------------------------------------------------------------+
	| tableLen u32 | frequency table, deterministic CBOR            |
	+--------------------------------------------------------------+
	| payload, payloadBits bits MSB first, zero padded to a byte    |
	+--------------------------------------------------------------+

The archive carries the frequency table rather than the codes. Tree
construction is deterministic, so the decoder rebuilds exactly the tree the
encoder used.

An empty plaintext has symbolCount 0, an empty table and no payload.

*/
