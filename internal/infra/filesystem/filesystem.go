package filesystem

type (
	// Decoder turns raw file contents into a generic value tree.
	Decoder interface {
		DecodeTree(data []byte) (any, error)
	}
)
