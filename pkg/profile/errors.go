package profile

import "errors"

var (
	// Discovery errors 🔍
	ErrNoStampsFound    = errors.New("❌ no stamp images found")
	ErrStampsDirMissing = errors.New("❌ stamps directory not found")

	// Archive errors 📦
	ErrBadHeader    = errors.New("❌ missing version header")
	ErrBadArchive   = errors.New("❌ malformed profile archive")
	ErrDanglingIcon = errors.New("❌ action icon missing from archive")
)
