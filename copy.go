package arena

// Copy duplicates src into the arena and returns the copy. A nil or empty
// src returns nil with no allocation, no error, and nothing recorded on the
// arena.
func (a *Arena) Copy(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst, err := a.Alloc(len(src))
	if err != nil {
		return nil, err
	}
	copy(dst, src)
	return dst, nil
}

// CopyString duplicates s into the arena and returns the bytes. An empty s
// returns nil without allocating.
func (a *Arena) CopyString(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	dst, err := a.Alloc(len(s))
	if err != nil {
		return nil, err
	}
	copy(dst, s)
	return dst, nil
}
