package blake2s

// Sum returns the unkeyed 32-byte BLAKE2s digest of data.
func Sum(data []byte) Hash {
	return defaultParams.Hash(data)
}

// New returns an incremental state producing size-byte digests, keyed with
// key when it is non-empty. It is the hash.Hash constructor; use NewParams
// for salt, personalization, and tree parameters.
func New(size int, key []byte) (*State, error) {
	p, err := NewParams().HashLength(size).Key(key).Build()
	if err != nil {
		return nil, err
	}
	return NewState(p), nil
}
