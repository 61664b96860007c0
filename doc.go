// Package httpwire implements an incremental, byte-fed HTTP/1.x message
// parser. A Parser is fed arbitrary-sized byte slices through Execute and
// invokes callbacks on a host-supplied Settings as it recognizes method,
// path, version, headers and body boundaries, without requiring the full
// message to be buffered in memory.
package httpwire
