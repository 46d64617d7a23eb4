package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSocialLink(t *testing.T) {
	valid := []string{"", "http://facebook.com/post/1", "https://x.com/status/2"}
	for _, v := range valid {
		assert.True(t, IsValidSocialLink(v), v)
	}
	invalid := []string{"ftp://host/file", "facebook.com/post/1", "httpss://typo", "//relative"}
	for _, v := range invalid {
		assert.False(t, IsValidSocialLink(v), v)
	}
}
