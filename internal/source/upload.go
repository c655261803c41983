package source

import "context"

// Upload wraps image bytes supplied by the user (HTTP upload or a local
// file passed on the command line).
type Upload struct {
	data []byte
}

func NewUpload(data []byte) *Upload {
	return &Upload{data: data}
}

func (u *Upload) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(u.data) == 0 {
		return nil, ErrEmptyUpload
	}
	if !sniffImage(u.data) {
		return nil, ErrUnsupportedType
	}

	return u.data, nil
}
