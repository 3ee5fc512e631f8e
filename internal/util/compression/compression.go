// Package compression abstracts the codec used for post content stored as
// blobs in the database.
package compression

type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}
