package upload

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ============================
// 🏷 Upload Namer
//
// StoredName turns a client-supplied filename into the on-disk name
// `{unix_timestamp}_{sanitized_stem}_{8_hex_chars}{extension}`. The stem
// keeps only letters, digits, hyphen and underscore; the timestamp plus
// random suffix make collisions with earlier uploads astronomically
// unlikely, so nothing is ever overwritten.
func StoredName(original string) string {
	base := filepath.Base(original)
	ext := extensionChain(base)
	stem := sanitizeStem(strings.TrimSuffix(base, ext))
	return fmt.Sprintf("%d_%s_%s%s", time.Now().Unix(), stem, randomHex(4), ext)
}

// extensionChain returns the dotted suffix of the name, folding a
// preceding ".tar" into compound archive extensions such as ".tar.gz".
func extensionChain(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	if tar := filepath.Ext(strings.TrimSuffix(name, ext)); strings.EqualFold(tar, ".tar") {
		ext = tar + ext
	}
	return ext
}

func sanitizeStem(stem string) string {
	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand does not fail on supported platforms
	}
	return hex.EncodeToString(buf)
}
