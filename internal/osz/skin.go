package osz

// ListSkin returns the file names of a skin archive. Skins are only
// inspected, never applied.
func ListSkin(data []byte) ([]string, error) {
	a, err := Open(data)
	if nil != err {
		return nil, err
	}
	return a.Files(), nil
}
