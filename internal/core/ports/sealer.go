package ports

// KeySealer protects stored key material at rest. This lets us swap the
// implementation (AES-GCM today) without touching the repositories that
// use it.
//
// Yes, we guard toy cipher keys with real cryptography. The irony is noted.
type KeySealer interface {
	// Seal takes raw key material and returns an opaque sealed blob.
	Seal(material []byte) (sealed []byte, err error)

	// Open takes a sealed blob and returns the original material.
	Open(sealed []byte) (material []byte, err error)
}
