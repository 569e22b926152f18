package upload

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoredName_CompoundExtension(t *testing.T) {
	name := StoredName("my report.v2.tar.gz")
	assert.Regexp(t, regexp.MustCompile(`^\d+_myreportv2_[0-9a-f]{8}\.tar\.gz$`), name)
}

func TestStoredName_SimpleImage(t *testing.T) {
	name := StoredName("Team Photo (1).png")
	assert.Regexp(t, `^\d+_TeamPhoto1_[0-9a-f]{8}\.png$`, name)
}

func TestStoredName_KeepsHyphenAndUnderscore(t *testing.T) {
	name := StoredName("logo_v2-final.jpeg")
	assert.Regexp(t, `^\d+_logo_v2-final_[0-9a-f]{8}\.jpeg$`, name)
}

func TestStoredName_EmptyStemFallsBackToFile(t *testing.T) {
	name := StoredName("???.jpg")
	assert.Regexp(t, `^\d+_file_[0-9a-f]{8}\.jpg$`, name)
}

func TestStoredName_NoExtension(t *testing.T) {
	name := StoredName("README")
	assert.Regexp(t, `^\d+_README_[0-9a-f]{8}$`, name)
}

func TestStoredName_StripsDirectoryComponents(t *testing.T) {
	name := StoredName("../../etc/passwd.png")
	assert.Regexp(t, `^\d+_passwd_[0-9a-f]{8}\.png$`, name)
}

func TestStoredName_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		n := StoredName("a.png")
		assert.False(t, seen[n], "duplicate name %s", n)
		seen[n] = true
	}
}
